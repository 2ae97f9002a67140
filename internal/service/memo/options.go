package memo

import (
	"fmt"
	"strings"
	"time"

	"github.com/sandevgo/tuskmemo/internal/core"
)

type Options struct {
	RecencyWindowDays       int
	MaxRenderedInteractions int
	RecentContactDays       int
	NewsFreshnessDays       int
	Location                *time.Location
}

type Option func(*Options)

func defaultOptions() Options {
	return Options{
		RecencyWindowDays:       DefaultRecencyWindowDays,
		MaxRenderedInteractions: DefaultMaxRenderedInteractions,
		RecentContactDays:       DefaultRecentContactDays,
		NewsFreshnessDays:       DefaultNewsFreshnessDays,
		Location:                time.Local,
	}
}

func WithRecencyWindowDays(days int) Option {
	return func(o *Options) { o.RecencyWindowDays = days }
}

func WithMaxRenderedInteractions(limit int) Option {
	return func(o *Options) { o.MaxRenderedInteractions = limit }
}

func WithRecentContactDays(days int) Option {
	return func(o *Options) { o.RecentContactDays = days }
}

func WithNewsFreshnessDays(days int) Option {
	return func(o *Options) { o.NewsFreshnessDays = days }
}

func WithLocation(loc *time.Location) Option {
	return func(o *Options) {
		if loc != nil {
			o.Location = loc
		}
	}
}

// OptionsFromConfig translates env-backed settings into generator options.
func OptionsFromConfig(cfg core.MemoConfig) ([]Option, error) {
	loc, err := loadLocation(cfg.GetTimezone())
	if err != nil {
		return nil, err
	}
	return []Option{
		WithRecencyWindowDays(cfg.GetRecencyWindowDays()),
		WithMaxRenderedInteractions(cfg.GetMaxRenderedInteractions()),
		WithRecentContactDays(cfg.GetRecentContactDays()),
		WithNewsFreshnessDays(cfg.GetNewsFreshnessDays()),
		WithLocation(loc),
	}, nil
}

func loadLocation(name string) (*time.Location, error) {
	switch strings.TrimSpace(name) {
	case "", "Local":
		return time.Local, nil
	case "UTC":
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}
	return loc, nil
}
