package main

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sandevgo/tuskmemo/internal/core"
	"github.com/sandevgo/tuskmemo/internal/service/briefing"
	"github.com/sandevgo/tuskmemo/internal/service/memo"
	"github.com/sandevgo/tuskmemo/internal/source/bundle"
	"github.com/sandevgo/tuskmemo/pkg/clock"
	"github.com/sandevgo/tuskmemo/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp(t *testing.T) *App {
	t.Helper()
	gen := memo.NewGenerator(clock.NewFixed(test.Now), memo.WithLocation(test.MST))
	return &App{
		briefing: briefing.New(gen, bundle.NewDir(test.GetBundlesDir(t)), nil),
		fetcher:  bundle.NewDefaultFetcher(),
	}
}

func TestLoadMemo(t *testing.T) {
	ctx := context.Background()
	app := testApp(t)

	byName, err := loadMemo(ctx, app, []string{test.DenverBundle}, "", "")
	require.NoError(t, err)

	byFile, err := loadMemo(ctx, app, nil, test.GetBundlePath(t, test.DenverFixture), "")
	require.NoError(t, err)

	assert.Equal(t, byName, byFile)
	assert.Equal(t, core.ConfidenceHigh, byName.Metadata.Confidence)
}

func TestLoadMemo_NeedsExactlyOneSource(t *testing.T) {
	ctx := context.Background()
	app := testApp(t)

	for _, tc := range []struct {
		name string
		args []string
		file string
		url  string
	}{
		{name: "none"},
		{name: "name and file", args: []string{"a"}, file: "a.yaml"},
		{name: "file and url", file: "a.yaml", url: "http://localhost/a.json"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loadMemo(ctx, app, tc.args, tc.file, tc.url)
			assert.ErrorContains(t, err, "exactly one")
		})
	}
}

func TestLoadMemo_UnknownBundle(t *testing.T) {
	_, err := loadMemo(context.Background(), testApp(t), []string{"missing"}, "", "")
	assert.ErrorIs(t, err, bundle.ErrNotFound)
}

func TestRenderMemo(t *testing.T) {
	m, err := loadMemo(context.Background(), testApp(t), []string{test.DenverBundle}, "", "")
	require.NoError(t, err)

	md, err := renderMemo(m, formatMarkdown, 0)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(md, "# Q4 Budget Discussion with Denver Public Schools"))

	raw, err := renderMemo(m, formatJSON, 0)
	require.NoError(t, err)
	var decoded core.Memo
	require.NoError(t, json.Unmarshal([]byte(raw), &decoded))
	assert.Equal(t, m.MeetingTitle, decoded.MeetingTitle)

	page, err := renderMemo(m, formatHTML, 0)
	require.NoError(t, err)
	assert.Contains(t, page, "Meeting Context</h2>")

	text, err := renderMemo(m, formatText, 60)
	require.NoError(t, err)
	assert.Contains(t, text, "MEETING CONTEXT")

	_, err = renderMemo(m, "pdf", 0)
	assert.Error(t, err)
}
