package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sandevgo/tuskmemo/internal/core"
	"github.com/sandevgo/tuskmemo/internal/service/render"
	"github.com/sandevgo/tuskmemo/internal/service/ui"
)

const footerHeight = 1

// Pager shows a rendered memo in a scrollable viewport.
type Pager struct {
	memo     *core.Memo
	viewport viewport.Model
	ready    bool
}

func NewPager(m *core.Memo) Pager {
	return Pager{memo: m}
}

func (p Pager) Init() tea.Cmd {
	return nil
}

func (p Pager) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return p, tea.Quit
		}
	case tea.WindowSizeMsg:
		height := max(msg.Height-footerHeight, 1)
		if !p.ready {
			p.viewport = viewport.New(msg.Width, height)
			p.ready = true
		} else {
			p.viewport.Width = msg.Width
			p.viewport.Height = height
		}
		// Rewrap on resize
		p.viewport.SetContent(render.Terminal(p.memo, msg.Width))
	}

	if !p.ready {
		return p, nil
	}

	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

func (p Pager) View() string {
	if !p.ready {
		return "Loading...\n"
	}
	return p.viewport.View() + "\n" + p.footer()
}

func (p Pager) footer() string {
	status := ui.StatusBarStyle.Render(fmt.Sprintf("%s %3.f%%", p.memo.Metadata.Confidence, p.viewport.ScrollPercent()*100))
	help := ui.DescStyle.Render(" ↑/↓ scroll · q quit")
	line := lipgloss.JoinHorizontal(lipgloss.Top, status, help)
	if lipgloss.Width(line) > p.viewport.Width {
		return status
	}
	return line
}

// Run blocks until the user quits the pager or ctx is done.
func Run(ctx context.Context, m *core.Memo, in io.Reader, out io.Writer) error {
	if m == nil {
		return errors.New("no memo to display")
	}

	prog := tea.NewProgram(NewPager(m),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	if _, err := prog.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
