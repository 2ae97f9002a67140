package memo

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sandevgo/tuskmemo/internal/core"
)

const (
	DefaultRecencyWindowDays       = 90
	DefaultMaxRenderedInteractions = 3

	NoRecentInteractions = "No recent interactions on record."
)

type datedInteraction struct {
	core.Interaction
	at    time.Time
	valid bool
}

// RankRecent keeps interactions at most windowDays old, newest first, and
// renders up to limit of them as "{type} {relative}: {summary}".
func RankRecent(ctx context.Context, dates *Dates, interactions []core.Interaction, windowDays, limit int) []string {
	recent := make([]datedInteraction, 0, len(interactions))
	for _, i := range interactions {
		if dates.DaysSince(ctx, i.Date) > windowDays {
			continue
		}
		at, ok := dates.Parse(i.Date)
		recent = append(recent, datedInteraction{Interaction: i, at: at, valid: ok})
	}

	sortNewestFirst(recent)

	if limit < 0 {
		limit = 0
	}
	if len(recent) > limit {
		recent = recent[:limit]
	}

	rendered := make([]string, 0, len(recent))
	for _, i := range recent {
		days := dates.DaysSince(ctx, i.Date)
		rendered = append(rendered, fmt.Sprintf("%s %s: %s", i.Type, relativeDays(days), i.Summary))
	}
	return rendered
}

// RenderInteractions joins ranked interactions into one narrative.
func RenderInteractions(rendered []string) string {
	if len(rendered) == 0 {
		return NoRecentInteractions
	}
	return strings.Join(rendered, " ")
}

func relativeDays(days int) string {
	switch days {
	case 0:
		return "today"
	case 1:
		return "yesterday"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}

// sortNewestFirst is stable; undated entries sink to the end.
func sortNewestFirst(items []datedInteraction) {
	sort.SliceStable(items, func(a, b int) bool {
		if items[a].valid != items[b].valid {
			return items[a].valid
		}
		return items[a].at.After(items[b].at)
	})
}

// latestInteractionDate returns the date of the newest interaction, or an
// empty string when there is none so callers fall into the stale path.
func latestInteractionDate(dates *Dates, interactions []core.Interaction) string {
	if len(interactions) == 0 {
		return ""
	}

	items := make([]datedInteraction, 0, len(interactions))
	for _, i := range interactions {
		at, ok := dates.Parse(i.Date)
		items = append(items, datedInteraction{Interaction: i, at: at, valid: ok})
	}
	sortNewestFirst(items)
	return items[0].Date
}
