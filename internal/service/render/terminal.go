package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sandevgo/tuskmemo/internal/core"
	"github.com/sandevgo/tuskmemo/internal/service/ui"
)

const DefaultTerminalWidth = 80

var confidenceStyles = map[core.Confidence]lipgloss.Style{
	core.ConfidenceHigh:   ui.SuccessStyle,
	core.ConfidenceMedium: ui.FlagStyle,
	core.ConfidenceLow:    ui.ErrorStyle,
}

// Terminal renders a memo as styled text wrapped to width columns.
func Terminal(m *core.Memo, width int) string {
	if m == nil {
		return ""
	}
	if width <= 0 {
		width = DefaultTerminalWidth
	}
	s := m.Sections
	body := lipgloss.NewStyle().Width(width)
	item := lipgloss.NewStyle().Width(width - 4)

	var sb strings.Builder
	section := func(title string) {
		sb.WriteString(ui.TitleStyle.Render(strings.ToUpper(title)))
		sb.WriteString("\n")
	}
	list := func(items []string, numbered bool, empty string) {
		if len(items) == 0 {
			sb.WriteString(ui.DescStyle.Render(empty))
			sb.WriteString("\n\n")
			return
		}
		for i, it := range items {
			marker := "  • "
			if numbered {
				marker = fmt.Sprintf("%3d ", i+1)
			}
			lines := strings.Split(item.Render(it), "\n")
			for j, line := range lines {
				if j == 0 {
					sb.WriteString(ui.UsageStyle.Render(marker))
				} else {
					sb.WriteString("    ")
				}
				sb.WriteString(line)
				sb.WriteString("\n")
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString(ui.TitleStyle.Render(m.MeetingTitle))
	sb.WriteString("\n")
	sb.WriteString(ui.DescStyle.Render(m.Date))
	sb.WriteString("\n\n")

	section("Meeting Context")
	sb.WriteString(body.Render(s.MeetingContext))
	sb.WriteString("\n\n")

	section("Attendee Backgrounds")
	if len(s.AttendeeBackgrounds) == 0 {
		sb.WriteString(ui.DescStyle.Render(noAttendees))
		sb.WriteString("\n\n")
	}
	for _, a := range s.AttendeeBackgrounds {
		sb.WriteString(ui.FlagStyle.Render(a.Name))
		sb.WriteString("\n")
		sb.WriteString(body.Render(a.Context))
		sb.WriteString("\n\n")
	}

	section("Key Topics")
	list(s.KeyTopics, false, noTopics)

	section("Suggested Talking Points")
	list(s.SuggestedTalkingPoints, true, "")

	section("Recent Developments")
	developments := make([]string, 0, len(s.RecentDevelopments))
	for _, d := range s.RecentDevelopments {
		developments = append(developments, d.Topic+": "+d.Detail)
	}
	list(developments, false, noDevelopments)

	section("Relationship History")
	sb.WriteString(body.Render(s.RelationshipHistory))
	sb.WriteString("\n\n")

	style, ok := confidenceStyles[m.Metadata.Confidence]
	if !ok {
		style = ui.DescStyle
	}
	sb.WriteString(body.Inherit(ui.DescStyle).Render("Generated " + m.Metadata.GeneratedAt))
	sb.WriteString("\n")
	sb.WriteString(ui.DescStyle.Render("Confidence: "))
	sb.WriteString(style.Render(string(m.Metadata.Confidence)))
	sb.WriteString("\n")

	return sb.String()
}
