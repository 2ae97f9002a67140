package bundle

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sandevgo/tuskmemo/internal/core"
	"github.com/sandevgo/tuskmemo/pkg/log"
)

var extensions = []string{".yaml", ".yml", ".json"}

// Dir serves bundles stored as files in one directory. The bundle name is
// the file name without extension.
type Dir struct {
	path string
}

func NewDir(path string) *Dir {
	return &Dir{path: path}
}

func (d *Dir) Path() string {
	return d.path
}

func (d *Dir) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(d.path)
	if err != nil {
		if os.IsNotExist(err) {
			log.FromCtx(ctx).Debug().Str("path", d.path).Msg("bundles directory does not exist")
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read bundles directory: %w", err)
	}

	seen := make(map[string]struct{})
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if _, err := FormatFromPath(e.Name()); err != nil {
			continue
		}
		name := nameFromPath(e.Name())
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	sort.Strings(names)
	return names, nil
}

func (d *Dir) Get(ctx context.Context, name string) (*core.Bundle, error) {
	if err := validName(name); err != nil {
		return nil, err
	}

	for _, ext := range extensions {
		path := filepath.Join(d.path, name+ext)
		if _, err := os.Stat(path); err != nil {
			continue
		}

		log.FromCtx(ctx).Debug().Str("bundle", name).Str("path", path).Msg("loading bundle")
		b, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		b.Name = name
		return b, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

func validName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
