package installer

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// InputStep asks for a single value. apply validates the value and stores
// it in the state; a non-nil error keeps the step open.
type InputStep struct {
	prompt string
	input  textinput.Model
	apply  func(value string, state *InstallState) error
	skip   func(state *InstallState) bool
	err    error
}

func newInputStep(prompt, value string, apply func(string, *InstallState) error) *InputStep {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	ti.SetValue(value)

	return &InputStep{
		prompt: prompt,
		input:  ti,
		apply:  apply,
	}
}

func (s *InputStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *InputStep) Skip(state *InstallState) bool {
	return s.skip != nil && s.skip(state)
}

func (s *InputStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" {
		if err := s.apply(strings.TrimSpace(s.input.Value()), state); err != nil {
			s.err = err
			return s, nil
		}
		return nil, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *InputStep) View(state *InstallState) string {
	var b strings.Builder
	b.WriteString(s.prompt + "\n\n")
	b.WriteString(s.input.View() + "\n\n")
	if s.err != nil {
		b.WriteString(errorStyle.Render(s.err.Error()) + "\n\n")
	}
	b.WriteString("(press enter to confirm)\n")
	return b.String()
}

func NewTelegramTokenStep() Step {
	s := newInputStep("Enter your Telegram Bot Token:", "", func(v string, state *InstallState) error {
		if v == "" {
			return fmt.Errorf("token must not be empty")
		}
		state.Telegram.Token = v
		return nil
	})
	s.input.Placeholder = "123456789:ABCDEF..."
	s.input.EchoMode = textinput.EchoPassword
	s.input.EchoCharacter = '*'
	s.skip = withoutTelegram
	return s
}

func NewTelegramOwnerStep() Step {
	s := newInputStep("Enter your Telegram User ID (Owner):", "", func(v string, state *InstallState) error {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			return fmt.Errorf("owner id must be a positive number")
		}
		state.Telegram.OwnerID = id
		return nil
	})
	s.input.Placeholder = "123456789"
	s.skip = withoutTelegram
	return s
}

func NewHTTPAddrStep() Step {
	s := newInputStep("HTTP listen address:", ":8080", func(v string, state *InstallState) error {
		if _, _, err := net.SplitHostPort(v); err != nil {
			return fmt.Errorf("invalid address: %w", err)
		}
		state.HTTP.Addr = v
		return nil
	})
	s.skip = func(state *InstallState) bool { return !state.App.EnableHTTP }
	return s
}

func NewTimezoneStep() Step {
	return newInputStep("Timezone for memo dates (IANA name or Local):", "Local", func(v string, state *InstallState) error {
		if _, err := time.LoadLocation(v); err != nil {
			return fmt.Errorf("unknown timezone %q", v)
		}
		state.Memo.Timezone = v
		return nil
	})
}

func NewBundlesDirStep() Step {
	return newInputStep("Bundles directory (relative to the runtime path):", "bundles", func(v string, state *InstallState) error {
		if v == "" {
			return fmt.Errorf("directory must not be empty")
		}
		state.App.BundlesDir = v
		return nil
	})
}

func withoutTelegram(state *InstallState) bool {
	return !state.App.EnableTelegram
}
