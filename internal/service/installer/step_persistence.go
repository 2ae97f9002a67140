package installer

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// SaveEnvStep writes the collected configuration to .env file
type SaveEnvStep struct {
	err  error
	path string
}

func NewSaveEnvStep() Step {
	return &SaveEnvStep{}
}

func (s *SaveEnvStep) Init() tea.Cmd {
	return next
}

func (s *SaveEnvStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if _, ok := msg.(nextMsg); !ok || s.err != nil {
		return s, nil
	}

	path, err := SaveEnv(state)
	if err != nil {
		s.err = err
		return s, nil
	}

	s.path = path
	return nil, nil
}

func (s *SaveEnvStep) View(state *InstallState) string {
	if s.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", s.err)) + "\n\n(press ctrl+c to quit)\n"
	}
	return "Saving configuration...\n"
}

// InitializeFilesStep seeds the bundles directory with the sample bundle
type InitializeFilesStep struct {
	err error
}

func NewInitializeFilesStep() Step {
	return &InitializeFilesStep{}
}

func (s *InitializeFilesStep) Init() tea.Cmd {
	return next
}

func (s *InitializeFilesStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if _, ok := msg.(nextMsg); !ok || s.err != nil {
		return s, nil
	}

	if _, err := WriteExampleBundle(state); err != nil {
		s.err = err
		return s, nil
	}
	return nil, nil
}

func (s *InitializeFilesStep) View(state *InstallState) string {
	if s.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", s.err)) + "\n\n(press ctrl+c to quit)\n"
	}
	return "Initializing bundles directory...\n"
}
