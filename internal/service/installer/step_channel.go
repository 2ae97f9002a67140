package installer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type channel struct {
	title    string
	http     bool
	telegram bool
}

// ChannelStep selects which long-running transports `serve` starts
type ChannelStep struct {
	choices []channel
	cursor  int
}

func NewChannelStep() Step {
	return &ChannelStep{
		choices: []channel{
			{title: "HTTP API", http: true},
			{title: "Telegram", telegram: true},
			{title: "HTTP API and Telegram", http: true, telegram: true},
			{title: "None (CLI and MCP only)"},
		},
	}
}

func (s *ChannelStep) Init() tea.Cmd {
	return nil
}

func (s *ChannelStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.choices)-1 {
				s.cursor++
			}
		case "enter":
			c := s.choices[s.cursor]
			state.App.EnableHTTP = c.http
			state.App.EnableTelegram = c.telegram
			return nil, nil
		}
	}
	return s, nil
}

func (s *ChannelStep) View(state *InstallState) string {
	var b strings.Builder
	b.WriteString("Select the transports to serve:\n\n")
	for i, choice := range s.choices {
		if s.cursor == i {
			b.WriteString(selStyle.Render(fmt.Sprintf("> %s", choice.title)) + "\n")
		} else {
			b.WriteString(itemStyle.Render(fmt.Sprintf("  %s", choice.title)) + "\n")
		}
	}
	b.WriteString("\n(press ctrl+c to quit)\n")
	return b.String()
}
