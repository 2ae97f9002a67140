package memo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sandevgo/tuskmemo/internal/core"
	"github.com/sandevgo/tuskmemo/pkg/log"
)

const (
	maxListedPriorities = 3
	maxDevelopments     = 3

	fallbackDescription = "upcoming initiatives and collaboration opportunities"
	fallbackHeadline    = "organizational initiatives"
)

var (
	ErrMissingEvent         = errors.New("missing required event")
	ErrMissingProfiles      = errors.New("missing required profiles")
	ErrMissingOrganization  = errors.New("missing required organization")
	ErrMissingEventDatetime = errors.New("event missing required datetime field")
	ErrMissingBundle        = errors.New("missing bundle")
)

var dataSources = []string{
	"Event calendar",
	"Contact profiles",
	"Organization database",
	"News aggregator",
	"Interaction history",
}

// Generator synthesizes meeting memos. It holds no mutable state and may be
// shared between goroutines.
type Generator struct {
	opts  Options
	dates *Dates
}

func NewGenerator(clock core.Clock, opts ...Option) *Generator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Generator{
		opts:  o,
		dates: NewDates(clock, o.Location),
	}
}

func (g *Generator) Options() Options {
	return g.opts
}

func (g *Generator) Dates() *Dates {
	return g.dates
}

// GenerateBundle is Generate over the contents of a bundle.
func (g *Generator) GenerateBundle(ctx context.Context, b *core.Bundle) (*core.Memo, error) {
	if b == nil {
		return nil, ErrMissingBundle
	}
	return g.Generate(ctx, b.Event, b.Profiles, b.Organization)
}

// Generate builds a memo for event. A nil profiles slice counts as missing;
// an empty one does not.
func (g *Generator) Generate(ctx context.Context, event *core.Event, profiles []core.Profile, org *core.Organization) (*core.Memo, error) {
	if err := validate(event, profiles, org); err != nil {
		return nil, err
	}

	logger := log.FromCtx(ctx)
	meetingDate := g.dates.FormatLong(ctx, event.Datetime)
	generatedAt := g.dates.Now()

	topics := ExtractTopics(event, org, profiles)
	signals := EvaluateSignals(ctx, g.dates, profiles, org, g.opts.RecentContactDays, g.opts.NewsFreshnessDays)

	m := &core.Memo{
		MeetingTitle: event.Title,
		Date:         meetingDate,
		Sections: core.MemoSections{
			MeetingContext:         g.meetingContext(meetingDate, event, profiles, org),
			AttendeeBackgrounds:    g.attendeeBackgrounds(ctx, profiles),
			KeyTopics:              topics,
			SuggestedTalkingPoints: BuildTalkingPoints(ctx, g.dates, topics, org, profiles),
			RecentDevelopments:     g.recentDevelopments(ctx, org),
			RelationshipHistory:    relationshipHistory(org, len(profiles)),
		},
		Metadata: core.MemoMetadata{
			GeneratedAt: g.dates.FormatTime(generatedAt),
			DataSources: append([]string(nil), dataSources...),
			Confidence:  signals.Confidence(),
		},
	}

	logger.Debug().
		Str("event", event.ID).
		Str("confidence", string(m.Metadata.Confidence)).
		Int("topics", len(topics)).
		Int("talking_points", len(m.Sections.SuggestedTalkingPoints)).
		Bool("recent_contacts", signals.AllProfilesRecentlyContacted).
		Bool("fresh_news", signals.HasFreshNews).
		Bool("complete_profiles", signals.AllProfilesComplete).
		Msg("memo generated")

	return m, nil
}

func validate(event *core.Event, profiles []core.Profile, org *core.Organization) error {
	switch {
	case event == nil:
		return ErrMissingEvent
	case profiles == nil:
		return ErrMissingProfiles
	case org == nil:
		return ErrMissingOrganization
	case strings.TrimSpace(event.Datetime) == "":
		return ErrMissingEventDatetime
	}
	return nil
}

func (g *Generator) meetingContext(meetingDate string, event *core.Event, profiles []core.Profile, org *core.Organization) string {
	description := event.Description
	if description == "" {
		description = fallbackDescription
	}

	headline := fallbackHeadline
	if news, ok := g.latestNews(org); ok && news.Headline != "" {
		headline = news.Headline
	}

	return fmt.Sprintf("This meeting is scheduled for %s in %s. ", meetingDate, event.Location) +
		fmt.Sprintf("The discussion will focus on %s. ", description) +
		fmt.Sprintf("This is a %s meeting with %d key %s from %s. ",
			event.MeetingType, len(profiles), plural(len(profiles), "attendee", "attendees"), org.Name) +
		fmt.Sprintf("Given recent developments including %s, ", headline) +
		"this meeting presents an opportunity to align on priorities and explore partnership opportunities."
}

// latestNews picks the newest dated item, falling back to the first one
// when no date parses.
func (g *Generator) latestNews(org *core.Organization) (core.NewsItem, bool) {
	if len(org.RecentNews) == 0 {
		return core.NewsItem{}, false
	}

	best := -1
	for i, n := range org.RecentNews {
		at, ok := g.dates.Parse(n.Date)
		if !ok {
			continue
		}
		if best == -1 {
			best = i
			continue
		}
		if cur, _ := g.dates.Parse(org.RecentNews[best].Date); at.After(cur) {
			best = i
		}
	}
	if best == -1 {
		best = 0
	}
	return org.RecentNews[best], true
}

func (g *Generator) attendeeBackgrounds(ctx context.Context, profiles []core.Profile) []core.AttendeeBackground {
	backgrounds := make([]core.AttendeeBackground, 0, len(profiles))

	for _, p := range profiles {
		ranked := RankRecent(ctx, g.dates, p.RecentInteractions, g.opts.RecencyWindowDays, g.opts.MaxRenderedInteractions)

		priorities := p.Priorities
		if len(priorities) > maxListedPriorities {
			priorities = priorities[:maxListedPriorities]
		}

		var sb strings.Builder
		sb.WriteString(p.Bio)
		sb.WriteString(" ")
		sb.WriteString("Current priorities include: ")
		sb.WriteString(strings.Join(priorities, ", "))
		sb.WriteString(". ")
		sb.WriteString("Recent engagement: ")
		sb.WriteString(RenderInteractions(ranked))
		sb.WriteString(" ")
		if p.RelationshipNotes != "" {
			sb.WriteString("Communication preferences: ")
			sb.WriteString(p.RelationshipNotes)
		}

		backgrounds = append(backgrounds, core.AttendeeBackground{
			Name:    p.Name,
			Context: strings.TrimRight(sb.String(), " \t\r\n"),
		})
	}

	return backgrounds
}

func (g *Generator) recentDevelopments(ctx context.Context, org *core.Organization) []core.Development {
	news := org.RecentNews
	if len(news) > maxDevelopments {
		news = news[:maxDevelopments]
	}

	developments := make([]core.Development, 0, len(news))
	for _, n := range news {
		developments = append(developments, core.Development{
			Topic:  n.Headline,
			Detail: fmt.Sprintf("%s (Source: %s, %s)", n.Summary, n.Source, g.dates.FormatLong(ctx, n.Date)),
		})
	}
	return developments
}

func relationshipHistory(org *core.Organization, contacts int) string {
	return fmt.Sprintf("The relationship with %s is characterized as a %s relationship. ", org.Name, org.Relationship) +
		fmt.Sprintf("Recent interactions have been positive, with %d key %s engaged in regular communication. ",
			contacts, plural(contacts, "contact", "contacts")) +
		"The organization has been responsive to city initiatives and has shown interest in expanded partnership opportunities. " +
		"Communication patterns suggest preference for detailed, data-driven discussions with advance preparation."
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
