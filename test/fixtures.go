package test

import "github.com/sandevgo/tuskmemo/internal/core"

func DenverEvent() *core.Event {
	return &core.Event{
		ID:          "evt_2025_q4_budget_dps",
		Title:       "Q4 Budget Discussion with Denver Public Schools",
		Datetime:    "2025-11-15T14:00:00-07:00",
		Location:    "Mayor's Conference Room",
		Description: "Quarterly budget review and discussion of upcoming initiatives for Denver Public Schools. Focus on capital improvements and staffing allocations.",
		MeetingType: core.MeetingExternal,
		Attendees: []core.Attendee{
			{Name: "Dr. Alex Johnson", Title: "Superintendent", Organization: "Denver Public Schools", ProfileID: "prof_alex_johnson"},
			{Name: "Maria Rodriguez", Title: "Chief Financial Officer", Organization: "Denver Public Schools", ProfileID: "prof_maria_rodriguez"},
		},
	}
}

func DenverProfiles() []core.Profile {
	return []core.Profile{
		{
			ID:           "prof_alex_johnson",
			Name:         "Dr. Alex Johnson",
			Title:        "Superintendent",
			Organization: "Denver Public Schools",
			Bio:          "Dr. Johnson has served as Superintendent of Denver Public Schools since 2021, bringing over 20 years of educational leadership experience.",
			RecentInteractions: []core.Interaction{
				{Date: "2025-11-05", Type: core.InteractionEmail, Summary: "Follow-up on teacher retention program proposal."},
				{Date: "2025-09-15", Type: core.InteractionMeeting, Summary: "Q3 budget review meeting."},
				{Date: "2025-08-20", Type: core.InteractionCall, Summary: "Brief call regarding summer program outcomes."},
			},
			Priorities: []string{
				"Teacher retention and compensation",
				"Infrastructure improvements in underserved schools",
				"Expanding after-school programs",
				"Addressing achievement gaps",
			},
			RelationshipNotes: "Prefers detailed data and concrete proposals.",
		},
		{
			ID:           "prof_maria_rodriguez",
			Name:         "Maria Rodriguez",
			Title:        "Chief Financial Officer",
			Organization: "Denver Public Schools",
			Bio:          "Maria Rodriguez joined DPS in 2019 as CFO, bringing extensive experience in public sector finance.",
			RecentInteractions: []core.Interaction{
				{Date: "2025-10-28", Type: core.InteractionEmail, Summary: "Requested clarification on capital improvement timeline."},
				{Date: "2025-10-22", Type: core.InteractionMeeting, Summary: "Attended city budget workshop."},
				{Date: "2025-09-18", Type: core.InteractionEmail, Summary: "Shared updated enrollment projections."},
			},
			Priorities: []string{
				"Maintaining fiscal responsibility",
				"Multi-year budget planning",
				"Capital improvement funding",
				"Staffing cost management",
			},
			RelationshipNotes: "Detail-oriented and data-focused.",
		},
	}
}

func DenverOrganization() *core.Organization {
	return &core.Organization{
		Name:        "Denver Public Schools",
		Description: "Denver Public Schools is the largest school district in Colorado.",
		RecentNews: []core.NewsItem{
			{
				Headline: "DPS Announces $50M Infrastructure Improvement Plan",
				Date:     "2025-11-02",
				Source:   "Denver Post",
				Summary:  "Denver Public Schools unveiled a comprehensive plan to address aging infrastructure across 15 schools.",
			},
			{
				Headline: "Teacher Retention Rates Improve Following Compensation Increases",
				Date:     "2025-10-30",
				Source:   "Chalkbeat Colorado",
				Summary:  "Early data shows teacher retention improved by 8% following implementation of new compensation structure.",
			},
			{
				Headline: "DPS Seeks City Support for Expanded After-School Programs",
				Date:     "2025-10-25",
				Source:   "Denver Gazette",
				Summary:  "District leadership is requesting additional city funding to expand after-school programming.",
			},
		},
		KeyInitiatives: []string{
			"Infrastructure modernization (2025-2027)",
			"Teacher retention and compensation program",
			"Expansion of after-school and enrichment programs",
			"Achievement gap reduction initiatives",
			"Technology infrastructure upgrades",
		},
		Relationship: core.RelationshipConstituent,
	}
}

func DenverBundleValue() *core.Bundle {
	return &core.Bundle{
		Name:         DenverBundle,
		Event:        DenverEvent(),
		Profiles:     DenverProfiles(),
		Organization: DenverOrganization(),
	}
}
