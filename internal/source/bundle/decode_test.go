package bundle

import (
	"strings"
	"testing"

	"github.com/sandevgo/tuskmemo/internal/core"
	"github.com/sandevgo/tuskmemo/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_YAML(t *testing.T) {
	b, err := LoadFile(test.GetBundlePath(t, test.DenverFixture))
	require.NoError(t, err)

	assert.Equal(t, test.DenverBundle, b.Name)
	require.NotNil(t, b.Event)
	assert.Equal(t, "2025-11-15T14:00:00-07:00", b.Event.Datetime)
	assert.Equal(t, core.MeetingExternal, b.Event.MeetingType)
	require.Len(t, b.Profiles, 2)
	assert.Equal(t, "Maria Rodriguez", b.Profiles[1].Name)
	assert.Equal(t, core.InteractionEmail, b.Profiles[1].RecentInteractions[0].Type)
	require.NotNil(t, b.Organization)
	assert.Equal(t, core.RelationshipConstituent, b.Organization.Relationship)
	require.Len(t, b.Organization.RecentNews, 3)

	summary := b.Organization.RecentNews[0].Summary
	assert.True(t, strings.HasPrefix(summary, "Denver Public Schools unveiled a comprehensive plan"))
	assert.Contains(t, summary, "15 schools")
	assert.NotContains(t, summary, "<p>")
	assert.NotContains(t, summary, "<strong>")

	assert.Equal(t,
		"Early data shows teacher retention improved by 8% following implementation of new compensation structure.",
		b.Organization.RecentNews[1].Summary)
}

func TestLoadFile_JSON(t *testing.T) {
	b, err := LoadFile(test.GetBundlePath(t, "city-council-sync.json"))
	require.NoError(t, err)

	assert.Equal(t, "city-council-sync", b.Name)
	assert.Equal(t, core.MeetingInternal, b.Event.MeetingType)
	assert.Empty(t, b.Event.Description)
	require.Len(t, b.Profiles, 1)
	assert.Empty(t, b.Profiles[0].Bio)
	assert.NotNil(t, b.Profiles[0].RecentInteractions)
	assert.Empty(t, b.Organization.RecentNews)
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile("bundle.txt")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = LoadFile(test.GetBundlePath(t, "missing.yaml"))
	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		format  Format
		wantErr string
	}{
		{
			name:   "json",
			input:  `{"event":{"title":"Sync","datetime":"2025-11-12T09:30:00Z"},"profiles":[],"organization":{"name":"Org"}}`,
			format: FormatJSON,
		},
		{
			name:   "yaml",
			input:  "event:\n  title: Sync\n  datetime: \"2025-11-12T09:30:00Z\"\nprofiles: []\norganization:\n  name: Org\n",
			format: FormatYAML,
		},
		{
			name:    "unknown json field",
			input:   `{"event":{"title":"Sync","when":"now"}}`,
			format:  FormatJSON,
			wantErr: "failed to decode json bundle",
		},
		{
			name:    "unknown yaml field",
			input:   "event:\n  title: Sync\n  when: now\n",
			format:  FormatYAML,
			wantErr: "failed to decode yaml bundle",
		},
		{
			name:    "unknown format",
			input:   "{}",
			format:  Format("toml"),
			wantErr: ErrUnknownFormat.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Decode(strings.NewReader(tt.input), tt.format)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Sync", b.Event.Title)
			assert.NotNil(t, b.Profiles)
			assert.Equal(t, "Org", b.Organization.Name)
		})
	}
}

func TestDecode_TooLarge(t *testing.T) {
	big := `{"event":{"description":"` + strings.Repeat("a", MaxBundleSize) + `"}}`
	_, err := Decode(strings.NewReader(big), FormatJSON)
	assert.ErrorContains(t, err, "exceeds")
}

func TestFormatFromContentType(t *testing.T) {
	tests := []struct {
		contentType string
		want        Format
		wantErr     bool
	}{
		{"application/json", FormatJSON, false},
		{"application/json; charset=utf-8", FormatJSON, false},
		{"application/vnd.memo+json", FormatJSON, false},
		{"application/yaml", FormatYAML, false},
		{"text/x-yaml", FormatYAML, false},
		{"text/html", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			got, err := FormatFromContentType(tt.contentType)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize(t *testing.T) {
	b := &core.Bundle{
		Event: &core.Event{Description: "<p>Budget &amp; staffing</p>"},
		Profiles: []core.Profile{
			{Bio: "<b>kept</b> as is"},
		},
		Organization: &core.Organization{
			Description: "Plain description.",
			RecentNews:  []core.NewsItem{{Headline: "<i>Headline</i>", Summary: "<div>Summary</div>"}},
		},
	}

	require.NoError(t, Normalize(b))

	assert.Equal(t, "Budget & staffing", b.Event.Description)
	assert.Equal(t, "<b>kept</b> as is", b.Profiles[0].Bio)
	assert.Equal(t, "Plain description.", b.Organization.Description)
	assert.Equal(t, "<i>Headline</i>", b.Organization.RecentNews[0].Headline)
	assert.Equal(t, "Summary", b.Organization.RecentNews[0].Summary)

	assert.NoError(t, Normalize(nil))
	assert.NoError(t, Normalize(&core.Bundle{}))
}
