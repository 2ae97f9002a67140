package memo

import (
	"context"
	"strings"
	"time"

	"github.com/sandevgo/tuskmemo/internal/core"
	"github.com/sandevgo/tuskmemo/pkg/log"
)

const (
	// DateNotAvailable replaces any date that cannot be displayed.
	DateNotAvailable = "Date not available"
	// StaleDays is reported for unparsable dates so recency filters drop them.
	StaleDays = 999

	longDateLayout = "Monday, January 2, 2006 at 3:04 PM MST"
	day            = 24 * time.Hour
)

var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// Dates converts ISO-8601 strings into display text and day counts relative
// to an injected clock.
type Dates struct {
	clock core.Clock
	loc   *time.Location
}

func NewDates(clock core.Clock, loc *time.Location) *Dates {
	if loc == nil {
		loc = time.Local
	}
	return &Dates{clock: clock, loc: loc}
}

func (d *Dates) Now() time.Time {
	return d.clock.Now()
}

func (d *Dates) Location() *time.Location {
	return d.loc
}

// Parse accepts RFC 3339, a date-time without offset (read in the display
// location) and a bare date (UTC midnight).
func (d *Dates) Parse(iso string) (time.Time, bool) {
	s := strings.TrimSpace(iso)
	if s == "" {
		return time.Time{}, false
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, d.loc); err == nil {
			return t, true
		}
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// FormatLong renders iso as "Saturday, November 15, 2025 at 2:00 PM MST".
func (d *Dates) FormatLong(ctx context.Context, iso string) string {
	t, ok := d.Parse(iso)
	if !ok {
		log.FromCtx(ctx).Warn().Str("date", iso).Msg("invalid date string provided to FormatLong")
		return DateNotAvailable
	}
	return d.format(t)
}

// FormatTime renders an instant with the same layout as FormatLong.
func (d *Dates) FormatTime(t time.Time) string {
	return d.format(t)
}

func (d *Dates) format(t time.Time) string {
	return t.In(d.loc).Format(longDateLayout)
}

// DaysSince returns the absolute number of whole days between iso and now.
func (d *Dates) DaysSince(ctx context.Context, iso string) int {
	t, ok := d.Parse(iso)
	if !ok {
		log.FromCtx(ctx).Warn().Str("date", iso).Msg("invalid date string provided to DaysSince")
		return StaleDays
	}

	diff := d.clock.Now().Sub(t)
	if diff < 0 {
		diff = -diff
	}
	return int(diff / day)
}
