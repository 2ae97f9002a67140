package installer

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var ErrInterrupted = errors.New("configuration wizard interrupted")

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	itemStyle  = lipgloss.NewStyle().PaddingLeft(2)
	selStyle   = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("5"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// Step represents a single step in the configuration wizard
type Step interface {
	Init() tea.Cmd
	Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd)
	View(state *InstallState) string
}

// Skipper is implemented by steps that only apply to some answers.
type Skipper interface {
	Skip(state *InstallState) bool
}

func getSteps() []Step {
	return []Step{
		NewChannelStep(),
		NewTelegramTokenStep(),
		NewTelegramOwnerStep(),
		NewHTTPAddrStep(),
		NewTimezoneStep(),
		NewBundlesDirStep(),
		NewSaveEnvStep(),
		NewInitializeFilesStep(),
	}
}

type nextMsg struct{}

func next() tea.Msg { return nextMsg{} }

// model is the main Bubble Tea model that orchestrates the steps
type model struct {
	steps       []Step
	currentStep int
	state       *InstallState
	quitting    bool
	width       int
	height      int
}

func newModel(state *InstallState, steps []Step) model {
	m := model{steps: steps, state: state}
	m.currentStep = m.skipFrom(0)
	return m
}

func (m model) Init() tea.Cmd {
	if m.currentStep < len(m.steps) {
		return m.steps[m.currentStep].Init()
	}
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
	}

	if m.done() {
		return m, tea.Quit
	}

	nextStep, cmd := m.steps[m.currentStep].Update(msg, m.state, m.width, m.height)
	if nextStep == nil {
		m.currentStep = m.skipFrom(m.currentStep + 1)
		if m.done() {
			return m, tea.Quit
		}
		return m, m.steps[m.currentStep].Init()
	}

	m.steps[m.currentStep] = nextStep
	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return "Configuration cancelled.\n"
	}

	if m.done() {
		return "Configuration complete!\n"
	}

	return titleStyle.Render("Configuring TuskMemo") + "\n\n" + m.steps[m.currentStep].View(m.state)
}

func (m model) done() bool {
	return m.currentStep >= len(m.steps)
}

// skipFrom returns the index of the first step at or after i that applies.
func (m model) skipFrom(i int) int {
	for ; i < len(m.steps); i++ {
		s, ok := m.steps[i].(Skipper)
		if !ok || !s.Skip(m.state) {
			break
		}
	}
	return i
}

// RunWizard starts the TUI
func RunWizard(state *InstallState) (*InstallState, error) {
	p := tea.NewProgram(newModel(state, getSteps()), tea.WithAltScreen())
	m, err := p.Run()
	if err != nil {
		return nil, err
	}

	finalModel := m.(model)
	if finalModel.quitting {
		return nil, ErrInterrupted
	}
	if !finalModel.done() {
		return nil, fmt.Errorf("wizard stopped at step %d", finalModel.currentStep+1)
	}

	return finalModel.state, nil
}
