package memo

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/tuskmemo/internal/core"
)

const (
	// cfoTitleMarker is matched case-sensitively against profile titles.
	cfoTitleMarker = "CFO"
	// retentionChampion is matched case-sensitively against profile names.
	retentionChampion = "Johnson"

	relationshipPoint = "Acknowledge the collaborative relationship and positive outcomes from recent initiatives. " +
		"Express commitment to continued partnership and ask about priorities for the coming year."
)

type pointInput struct {
	dates    *Dates
	org      *core.Organization
	profiles []core.Profile
}

// talkingPointRule appends points when its topic was extracted. An empty
// topic marks a rule that always runs.
type talkingPointRule struct {
	topic string
	build func(ctx context.Context, in pointInput) []string
}

// Evaluated top to bottom; the list order is the presentation order.
var talkingPointRules = []talkingPointRule{
	{topic: TopicBudget, build: budgetPoints},
	{topic: TopicInfrastructure, build: infrastructurePoints},
	{topic: TopicStaffing, build: staffingPoints},
	{topic: TopicPrograms, build: programPoints},
	{build: func(context.Context, pointInput) []string { return []string{relationshipPoint} }},
}

// BuildTalkingPoints assembles actionable discussion items. The result is
// never empty.
func BuildTalkingPoints(ctx context.Context, dates *Dates, topics []string, org *core.Organization, profiles []core.Profile) []string {
	in := pointInput{dates: dates, org: org, profiles: profiles}

	points := make([]string, 0, len(talkingPointRules)+1)
	for _, rule := range talkingPointRules {
		if rule.topic != "" && !hasTopic(topics, rule.topic) {
			continue
		}
		points = append(points, rule.build(ctx, in)...)
	}
	return points
}

func budgetPoints(ctx context.Context, in pointInput) []string {
	if news, ok := findNews(in.org, "budget", "funding"); ok {
		return []string{fmt.Sprintf(
			"Reference the %s (%s, %s). "+
				"Discuss how the proposed $50M infrastructure plan aligns with city priorities and explore partnership funding opportunities.",
			news.Headline, news.Source, in.dates.FormatLong(ctx, news.Date),
		)}
	}

	who := "the CFO"
	var lastContact string
	if cfo, ok := findProfile(in.profiles, func(p core.Profile) bool {
		return strings.Contains(p.Title, cfoTitleMarker)
	}); ok {
		who = "CFO " + cfo.Name
		lastContact = latestInteractionDate(in.dates, cfo.RecentInteractions)
	}

	return []string{fmt.Sprintf(
		"Address Q4 budget constraints mentioned by %s in recent email (%d days ago). "+
			"Discuss multi-year planning approach to provide budget certainty.",
		who, in.dates.DaysSince(ctx, lastContact),
	)}
}

func infrastructurePoints(ctx context.Context, in pointInput) []string {
	news, ok := findNews(in.org, "infrastructure")
	if !ok {
		return nil
	}
	return []string{fmt.Sprintf(
		"Discuss the $50M infrastructure improvement plan announced on %s. "+
			"Explore how city resources can support the 15 schools identified, particularly focusing on HVAC systems and accessibility improvements.",
		in.dates.FormatLong(ctx, news.Date),
	)}
}

func staffingPoints(ctx context.Context, in pointInput) []string {
	var points []string

	if _, ok := findNews(in.org, "teacher", "retention"); ok {
		points = append(points,
			"Acknowledge the positive teacher retention results (8% improvement) mentioned in recent news. "+
				"Discuss how city can continue supporting compensation initiatives and explore additional partnership opportunities.")
	}

	champion, ok := findProfile(in.profiles, func(p core.Profile) bool {
		return strings.Contains(p.Name, retentionChampion)
	})
	if ok && prioritizes(champion, "retention") {
		lastContact := latestInteractionDate(in.dates, champion.RecentInteractions)
		points = append(points, fmt.Sprintf(
			"%s has prioritized teacher retention and compensation. "+
				"Reference their previous interest in partnership opportunities (from %d days ago) and discuss concrete next steps.",
			champion.Name, in.dates.DaysSince(ctx, lastContact),
		))
	}

	return points
}

func programPoints(_ context.Context, in pointInput) []string {
	if _, ok := findNews(in.org, "after-school", "program"); !ok {
		return nil
	}
	return []string{
		"Address the proposal for expanded after-school programs to 20 additional schools. " +
			"Discuss partnership opportunities with city recreation centers and explore funding mechanisms for underserved neighborhoods.",
	}
}

// findNews returns the first item, in the organization's order, whose
// headline mentions any keyword.
func findNews(org *core.Organization, keywords ...string) (core.NewsItem, bool) {
	if org == nil {
		return core.NewsItem{}, false
	}
	for _, n := range org.RecentNews {
		if containsAny(strings.ToLower(n.Headline), keywords) {
			return n, true
		}
	}
	return core.NewsItem{}, false
}

func findProfile(profiles []core.Profile, match func(core.Profile) bool) (core.Profile, bool) {
	for _, p := range profiles {
		if match(p) {
			return p, true
		}
	}
	return core.Profile{}, false
}

func prioritizes(p core.Profile, keyword string) bool {
	for _, priority := range p.Priorities {
		if strings.Contains(strings.ToLower(priority), keyword) {
			return true
		}
	}
	return false
}
