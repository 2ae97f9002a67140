package bundle

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/sandevgo/tuskmemo/internal/core"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// MaxBundleSize bounds how much of a file or response body is decoded.
const MaxBundleSize = 1 << 20

var (
	ErrUnknownFormat = errors.New("unknown bundle format")
	ErrNotFound      = errors.New("bundle not found")
	ErrInvalidName   = errors.New("invalid bundle name")
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// FormatFromContentType maps a MIME type to a format.
func FormatFromContentType(contentType string) (Format, error) {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, contentType)
	}
	switch {
	case mt == "application/json" || strings.HasSuffix(mt, "+json"):
		return FormatJSON, nil
	case strings.Contains(mt, "yaml"):
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, contentType)
}

// Decode reads one bundle and normalizes its free-text fields.
func Decode(r io.Reader, format Format) (*core.Bundle, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxBundleSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read bundle: %w", err)
	}
	if len(data) > MaxBundleSize {
		return nil, fmt.Errorf("bundle exceeds %d bytes", MaxBundleSize)
	}

	b := &core.Bundle{}
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(b); err != nil {
			return nil, fmt.Errorf("failed to decode json bundle: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(b); err != nil {
			return nil, fmt.Errorf("failed to decode yaml bundle: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err := Normalize(b); err != nil {
		return nil, err
	}
	return b, nil
}

// LoadFile decodes a bundle file. A bundle without a name is named after
// the file.
func LoadFile(path string) (*core.Bundle, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bundle: %w", err)
	}
	defer f.Close()

	b, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	if b.Name == "" {
		b.Name = nameFromPath(path)
	}
	return b, nil
}

func nameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
