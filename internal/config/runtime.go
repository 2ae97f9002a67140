package config

import (
	"os"
	"path/filepath"
)

func GetRuntimePath() string {
	return resolveHome(os.Getenv("TUSK_RUNTIME_PATH"))
}

func resolveHome(path string) string {
	if path == "" {
		path = ".tuskmemo"
	}

	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return path
}
