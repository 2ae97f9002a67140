package memo

import (
	"context"

	"github.com/sandevgo/tuskmemo/internal/core"
)

const (
	DefaultRecentContactDays = 60
	DefaultNewsFreshnessDays = 30
)

// Signals are the freshness and completeness checks behind a confidence label.
type Signals struct {
	AllProfilesRecentlyContacted bool
	HasFreshNews                 bool
	AllProfilesComplete          bool
}

// Confidence maps the signals to a label. Incomplete profiles alone never
// yield low: only stale contacts together with stale news do.
func (s Signals) Confidence() core.Confidence {
	switch {
	case s.AllProfilesRecentlyContacted && s.HasFreshNews && s.AllProfilesComplete:
		return core.ConfidenceHigh
	case !s.AllProfilesRecentlyContacted && !s.HasFreshNews:
		return core.ConfidenceLow
	default:
		return core.ConfidenceMedium
	}
}

func EvaluateSignals(ctx context.Context, dates *Dates, profiles []core.Profile, org *core.Organization, recentContactDays, newsFreshnessDays int) Signals {
	s := Signals{
		AllProfilesRecentlyContacted: true,
		AllProfilesComplete:          true,
	}

	for _, p := range profiles {
		if !contactedWithin(ctx, dates, p.RecentInteractions, recentContactDays) {
			s.AllProfilesRecentlyContacted = false
		}
		if p.Bio == "" || len(p.Priorities) == 0 || len(p.RecentInteractions) == 0 {
			s.AllProfilesComplete = false
		}
	}

	if org != nil {
		for _, n := range org.RecentNews {
			if dates.DaysSince(ctx, n.Date) <= newsFreshnessDays {
				s.HasFreshNews = true
				break
			}
		}
	}

	return s
}

func ScoreConfidence(ctx context.Context, dates *Dates, profiles []core.Profile, org *core.Organization, recentContactDays, newsFreshnessDays int) core.Confidence {
	return EvaluateSignals(ctx, dates, profiles, org, recentContactDays, newsFreshnessDays).Confidence()
}

func contactedWithin(ctx context.Context, dates *Dates, interactions []core.Interaction, days int) bool {
	for _, i := range interactions {
		if dates.DaysSince(ctx, i.Date) <= days {
			return true
		}
	}
	return false
}
