package memo

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sandevgo/tuskmemo/internal/config"
	"github.com/sandevgo/tuskmemo/internal/core"
	"github.com/sandevgo/tuskmemo/pkg/clock"
	"github.com/sandevgo/tuskmemo/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(opts ...Option) *Generator {
	return NewGenerator(clock.NewFixed(test.Now), append([]Option{WithLocation(test.MST)}, opts...)...)
}

func TestGenerator_Validation(t *testing.T) {
	ctx := context.Background()
	g := newTestGenerator()

	noDatetime := test.DenverEvent()
	noDatetime.Datetime = "   "

	tests := []struct {
		name     string
		event    *core.Event
		profiles []core.Profile
		org      *core.Organization
		wantErr  error
	}{
		{"missing event", nil, test.DenverProfiles(), test.DenverOrganization(), ErrMissingEvent},
		{"missing profiles", test.DenverEvent(), nil, test.DenverOrganization(), ErrMissingProfiles},
		{"missing organization", test.DenverEvent(), test.DenverProfiles(), nil, ErrMissingOrganization},
		{"blank datetime", noDatetime, test.DenverProfiles(), test.DenverOrganization(), ErrMissingEventDatetime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := g.Generate(ctx, tt.event, tt.profiles, tt.org)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, m)
		})
	}
}

func TestGenerator_GenerateBundle(t *testing.T) {
	ctx := context.Background()
	g := newTestGenerator()

	_, err := g.GenerateBundle(ctx, nil)
	assert.ErrorIs(t, err, ErrMissingBundle)

	_, err = g.GenerateBundle(ctx, &core.Bundle{Name: "empty"})
	assert.ErrorIs(t, err, ErrMissingEvent)

	m, err := g.GenerateBundle(ctx, test.DenverBundleValue())
	require.NoError(t, err)
	assert.Equal(t, "Q4 Budget Discussion with Denver Public Schools", m.MeetingTitle)
}

func TestGenerator_DenverMemo(t *testing.T) {
	g := newTestGenerator()

	m, err := g.Generate(context.Background(), test.DenverEvent(), test.DenverProfiles(), test.DenverOrganization())
	require.NoError(t, err)

	assert.Equal(t, "Q4 Budget Discussion with Denver Public Schools", m.MeetingTitle)
	assert.Equal(t, "Saturday, November 15, 2025 at 2:00 PM MST", m.Date)
	assert.Equal(t, "Monday, November 10, 2025 at 5:00 AM MST", m.Metadata.GeneratedAt)
	assert.Equal(t, core.ConfidenceHigh, m.Metadata.Confidence)
	assert.Equal(t, []string{
		"Event calendar",
		"Contact profiles",
		"Organization database",
		"News aggregator",
		"Interaction history",
	}, m.Metadata.DataSources)

	s := m.Sections
	assert.Equal(t, []string{TopicBudget, TopicInfrastructure, TopicStaffing, TopicPrograms}, s.KeyTopics)
	assert.Len(t, s.SuggestedTalkingPoints, 6)
	assert.Equal(t, relationshipPoint, s.SuggestedTalkingPoints[5])

	assert.Equal(t,
		"This meeting is scheduled for Saturday, November 15, 2025 at 2:00 PM MST in Mayor's Conference Room. "+
			"The discussion will focus on Quarterly budget review and discussion of upcoming initiatives for Denver Public Schools. "+
			"Focus on capital improvements and staffing allocations.. "+
			"This is a external meeting with 2 key attendees from Denver Public Schools. "+
			"Given recent developments including DPS Announces $50M Infrastructure Improvement Plan, "+
			"this meeting presents an opportunity to align on priorities and explore partnership opportunities.",
		s.MeetingContext)

	require.Len(t, s.AttendeeBackgrounds, 2)
	johnson := s.AttendeeBackgrounds[0]
	assert.Equal(t, "Dr. Alex Johnson", johnson.Name)
	assert.Equal(t,
		"Dr. Johnson has served as Superintendent of Denver Public Schools since 2021, bringing over 20 years of educational leadership experience. "+
			"Current priorities include: Teacher retention and compensation, Infrastructure improvements in underserved schools, Expanding after-school programs. "+
			"Recent engagement: email 5 days ago: Follow-up on teacher retention program proposal. "+
			"meeting 56 days ago: Q3 budget review meeting. "+
			"call 82 days ago: Brief call regarding summer program outcomes. "+
			"Communication preferences: Prefers detailed data and concrete proposals.",
		johnson.Context)
	assert.NotContains(t, johnson.Context, "Addressing achievement gaps")

	rodriguez := s.AttendeeBackgrounds[1]
	assert.Equal(t, "Maria Rodriguez", rodriguez.Name)
	assert.Contains(t, rodriguez.Context, "email 13 days ago: Requested clarification on capital improvement timeline.")

	require.Len(t, s.RecentDevelopments, 3)
	assert.Equal(t, "DPS Announces $50M Infrastructure Improvement Plan", s.RecentDevelopments[0].Topic)
	assert.Equal(t,
		"Denver Public Schools unveiled a comprehensive plan to address aging infrastructure across 15 schools. "+
			"(Source: Denver Post, Saturday, November 1, 2025 at 5:00 PM MST)",
		s.RecentDevelopments[0].Detail)

	assert.True(t, strings.HasPrefix(s.RelationshipHistory,
		"The relationship with Denver Public Schools is characterized as a constituent relationship. "+
			"Recent interactions have been positive, with 2 key contacts engaged in regular communication. "))
}

func TestGenerator_SparseInputs(t *testing.T) {
	event := &core.Event{
		ID:          "evt_council_sync",
		Title:       "Council Staff Sync",
		Datetime:    "2025-11-12T09:30:00-07:00",
		Location:    "Room 4B",
		MeetingType: core.MeetingInternal,
	}
	profiles := []core.Profile{{Name: "Sam Lee", Title: "Chief of Staff", Bio: "Runs the council office."}}
	org := &core.Organization{Name: "City Council", Relationship: core.RelationshipPartner}

	m, err := newTestGenerator().Generate(context.Background(), event, profiles, org)
	require.NoError(t, err)

	s := m.Sections
	assert.Contains(t, s.MeetingContext, "focus on "+fallbackDescription+". ")
	assert.Contains(t, s.MeetingContext, "with 1 key attendee from City Council. ")
	assert.Contains(t, s.MeetingContext, "including "+fallbackHeadline+", ")
	assert.Contains(t, s.RelationshipHistory, "with 1 key contact engaged")

	require.Len(t, s.AttendeeBackgrounds, 1)
	assert.Equal(t,
		"Runs the council office. Current priorities include: . Recent engagement: "+NoRecentInteractions,
		s.AttendeeBackgrounds[0].Context)

	assert.NotNil(t, s.KeyTopics)
	assert.Empty(t, s.KeyTopics)
	assert.NotNil(t, s.RecentDevelopments)
	assert.Empty(t, s.RecentDevelopments)
	assert.Equal(t, []string{relationshipPoint}, s.SuggestedTalkingPoints)
	assert.Equal(t, core.ConfidenceLow, m.Metadata.Confidence)
}

func TestGenerator_EmptyProfiles(t *testing.T) {
	m, err := newTestGenerator().Generate(context.Background(), test.DenverEvent(), []core.Profile{}, test.DenverOrganization())
	require.NoError(t, err)

	assert.Empty(t, m.Sections.AttendeeBackgrounds)
	assert.Contains(t, m.Sections.MeetingContext, "with 0 key attendees from")
	assert.Contains(t, m.Sections.RelationshipHistory, "with 0 key contacts engaged")
}

func TestGenerator_BioIsPreserved(t *testing.T) {
	profiles := []core.Profile{
		{Name: "A", Bio: "  Leading spaces are kept."},
		{Name: "B", Bio: "Second."},
		{Name: "C"},
	}

	m, err := newTestGenerator().Generate(context.Background(), test.DenverEvent(), profiles, test.DenverOrganization())
	require.NoError(t, err)

	require.Len(t, m.Sections.AttendeeBackgrounds, len(profiles))
	for i, p := range profiles {
		assert.Equal(t, p.Name, m.Sections.AttendeeBackgrounds[i].Name)
		assert.True(t, strings.HasPrefix(m.Sections.AttendeeBackgrounds[i].Context, p.Bio))
	}
}

func TestGenerator_DoesNotAliasInputs(t *testing.T) {
	ctx := context.Background()
	g := newTestGenerator()

	org := test.DenverOrganization()
	profiles := test.DenverProfiles()
	before := test.DenverProfiles()

	m, err := g.Generate(ctx, test.DenverEvent(), profiles, org)
	require.NoError(t, err)

	assert.Equal(t, before, profiles)

	m.Metadata.DataSources[0] = "changed"
	m.Sections.KeyTopics[0] = "changed"

	again, err := g.Generate(ctx, test.DenverEvent(), profiles, org)
	require.NoError(t, err)
	assert.Equal(t, "Event calendar", again.Metadata.DataSources[0])
	assert.Equal(t, TopicBudget, again.Sections.KeyTopics[0])
}

func TestGenerator_Deterministic(t *testing.T) {
	ctx := context.Background()
	g := newTestGenerator()

	first, err := g.Generate(ctx, test.DenverEvent(), test.DenverProfiles(), test.DenverOrganization())
	require.NoError(t, err)
	second, err := g.Generate(ctx, test.DenverEvent(), test.DenverProfiles(), test.DenverOrganization())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerator_Options(t *testing.T) {
	ctx := context.Background()

	t.Run("rendered interactions limit", func(t *testing.T) {
		g := newTestGenerator(WithMaxRenderedInteractions(1))
		m, err := g.Generate(ctx, test.DenverEvent(), test.DenverProfiles(), test.DenverOrganization())
		require.NoError(t, err)

		johnson := m.Sections.AttendeeBackgrounds[0].Context
		assert.Contains(t, johnson, "email 5 days ago")
		assert.NotContains(t, johnson, "meeting 56 days ago")
	})

	t.Run("recency window", func(t *testing.T) {
		g := newTestGenerator(WithRecencyWindowDays(30))
		m, err := g.Generate(ctx, test.DenverEvent(), test.DenverProfiles(), test.DenverOrganization())
		require.NoError(t, err)

		johnson := m.Sections.AttendeeBackgrounds[0].Context
		assert.Contains(t, johnson, "email 5 days ago")
		assert.NotContains(t, johnson, "call 82 days ago")
	})

	t.Run("freshness thresholds", func(t *testing.T) {
		g := newTestGenerator(WithRecentContactDays(1), WithNewsFreshnessDays(1))
		m, err := g.Generate(ctx, test.DenverEvent(), test.DenverProfiles(), test.DenverOrganization())
		require.NoError(t, err)
		assert.Equal(t, core.ConfidenceLow, m.Metadata.Confidence)
	})

	t.Run("clock drives relative dates", func(t *testing.T) {
		c := clock.NewFixed(test.Now)
		g := NewGenerator(c, WithLocation(test.MST))
		c.Advance(24 * time.Hour)

		m, err := g.Generate(ctx, test.DenverEvent(), test.DenverProfiles(), test.DenverOrganization())
		require.NoError(t, err)
		assert.Contains(t, m.Sections.AttendeeBackgrounds[0].Context, "email 6 days ago")
		assert.Equal(t, "Tuesday, November 11, 2025 at 5:00 AM MST", m.Metadata.GeneratedAt)
	})
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.MemoConfig{
		RecencyWindowDays:       45,
		MaxRenderedInteractions: 2,
		RecentContactDays:       10,
		NewsFreshnessDays:       5,
		Timezone:                "UTC",
	}

	opts, err := OptionsFromConfig(cfg)
	require.NoError(t, err)

	g := NewGenerator(clock.NewFixed(test.Now), opts...)
	assert.Equal(t, Options{
		RecencyWindowDays:       45,
		MaxRenderedInteractions: 2,
		RecentContactDays:       10,
		NewsFreshnessDays:       5,
		Location:                time.UTC,
	}, g.Options())

	cfg.Timezone = "Not/AZone"
	_, err = OptionsFromConfig(cfg)
	assert.Error(t, err)
}
