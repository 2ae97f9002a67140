package render

import (
	"fmt"
	"strings"

	"github.com/sandevgo/tuskmemo/internal/core"
)

const (
	noTopics        = "No key topics identified."
	noDevelopments  = "No recent developments on record."
	noAttendees     = "No attendee profiles provided."
	footerSeparator = " · "
)

// Markdown renders a memo for chat, MCP clients and files.
func Markdown(m *core.Memo) string {
	if m == nil {
		return ""
	}
	s := m.Sections

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", m.MeetingTitle)
	fmt.Fprintf(&sb, "**Date:** %s\n\n", m.Date)

	sb.WriteString("## Meeting Context\n\n")
	sb.WriteString(s.MeetingContext)
	sb.WriteString("\n\n")

	sb.WriteString("## Attendee Backgrounds\n\n")
	if len(s.AttendeeBackgrounds) == 0 {
		fmt.Fprintf(&sb, "_%s_\n\n", noAttendees)
	}
	for _, a := range s.AttendeeBackgrounds {
		fmt.Fprintf(&sb, "### %s\n\n%s\n\n", a.Name, a.Context)
	}

	sb.WriteString("## Key Topics\n\n")
	writeBullets(&sb, s.KeyTopics, noTopics)

	sb.WriteString("## Suggested Talking Points\n\n")
	for i, p := range s.SuggestedTalkingPoints {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, p)
	}
	sb.WriteString("\n")

	sb.WriteString("## Recent Developments\n\n")
	developments := make([]string, 0, len(s.RecentDevelopments))
	for _, d := range s.RecentDevelopments {
		developments = append(developments, fmt.Sprintf("**%s**: %s", d.Topic, d.Detail))
	}
	writeBullets(&sb, developments, noDevelopments)

	sb.WriteString("## Relationship History\n\n")
	sb.WriteString(s.RelationshipHistory)
	sb.WriteString("\n\n---\n\n")
	fmt.Fprintf(&sb, "_%s_\n", footer(m.Metadata))

	return sb.String()
}

func writeBullets(sb *strings.Builder, items []string, empty string) {
	if len(items) == 0 {
		fmt.Fprintf(sb, "_%s_\n\n", empty)
		return
	}
	for _, item := range items {
		fmt.Fprintf(sb, "- %s\n", item)
	}
	sb.WriteString("\n")
}

func footer(md core.MemoMetadata) string {
	return strings.Join([]string{
		"Generated " + md.GeneratedAt,
		"Confidence: " + string(md.Confidence),
		"Sources: " + strings.Join(md.DataSources, ", "),
	}, footerSeparator)
}
