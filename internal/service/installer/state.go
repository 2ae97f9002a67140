package installer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	fs "github.com/sandevgo/tuskmemo/configs"
	"github.com/sandevgo/tuskmemo/internal/config"
	"github.com/sandevgo/tuskmemo/pkg/env"
)

var ErrEnvExists = errors.New(".env file already exists")

// InstallState collects the wizard answers as the configs they end up in.
type InstallState struct {
	App      config.AppConfig
	Memo     config.MemoConfig
	HTTP     config.HTTPConfig
	Telegram config.TelegramConfig

	// Overwrite an existing .env
	Force bool
}

func NewInstallState(runtimePath string, force bool) *InstallState {
	return &InstallState{
		App: config.AppConfig{
			RuntimePath: runtimePath,
			EnableHTTP:  true,
		},
		Force: force,
	}
}

// Render returns the .env content for the collected answers. Unanswered
// values keep their defaults.
func (s *InstallState) Render() (string, error) {
	sections := []any{&s.App, &s.Memo}
	if s.App.EnableHTTP {
		sections = append(sections, &s.HTTP)
	}
	if s.App.EnableTelegram {
		sections = append(sections, &s.Telegram)
	}
	return env.MarshalEnvSections(sections...)
}

// SaveEnv writes the rendered configuration to the runtime .env file.
func SaveEnv(state *InstallState) (string, error) {
	path := state.App.GetEnvPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create runtime directory: %w", err)
	}

	if _, err := os.Stat(path); err == nil && !state.Force {
		return "", fmt.Errorf("%w at %s", ErrEnvExists, path)
	}

	content, err := state.Render()
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return "", err
	}
	return path, nil
}

// WriteExampleBundle copies the embedded sample bundle into the bundles
// directory. An existing file is left untouched.
func WriteExampleBundle(state *InstallState) (string, error) {
	dir := state.App.GetBundlesPath()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create bundles directory: %w", err)
	}

	dst := filepath.Join(dir, fs.ExampleBundle)
	if _, err := os.Stat(dst); err == nil {
		return dst, nil
	}

	data, err := fs.FS.ReadFile(fs.ExampleBundle)
	if err != nil {
		return "", fmt.Errorf("failed to read embedded %s: %w", fs.ExampleBundle, err)
	}

	if err := os.WriteFile(dst, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", dst, err)
	}
	return dst, nil
}
