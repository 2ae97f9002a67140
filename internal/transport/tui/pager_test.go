package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sandevgo/tuskmemo/internal/core"
	"github.com/sandevgo/tuskmemo/internal/service/memo"
	"github.com/sandevgo/tuskmemo/pkg/clock"
	"github.com/sandevgo/tuskmemo/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func denverMemo(t *testing.T) *core.Memo {
	t.Helper()
	g := memo.NewGenerator(clock.NewFixed(test.Now), memo.WithLocation(test.MST))
	m, err := g.GenerateBundle(context.Background(), test.DenverBundleValue())
	require.NoError(t, err)
	return m
}

func update(t *testing.T, p Pager, msg tea.Msg) (Pager, tea.Cmd) {
	t.Helper()
	next, cmd := p.Update(msg)
	return next.(Pager), cmd
}

func TestPager_WaitsForWindowSize(t *testing.T) {
	p := NewPager(denverMemo(t))
	assert.Equal(t, "Loading...\n", p.View())

	p, _ = update(t, p, tea.KeyMsg{Type: tea.KeyDown})
	assert.False(t, p.ready)
}

func TestPager_RendersMemo(t *testing.T) {
	p := NewPager(denverMemo(t))

	p, _ = update(t, p, tea.WindowSizeMsg{Width: 80, Height: 12})
	require.True(t, p.ready)

	view := p.View()
	assert.Contains(t, view, "Q4 Budget Discussion with Denver Public Schools")
	assert.Contains(t, view, "high")

	for _, line := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 80)
	}
}

func TestPager_Scrolls(t *testing.T) {
	p := NewPager(denverMemo(t))
	p, _ = update(t, p, tea.WindowSizeMsg{Width: 60, Height: 8})
	require.True(t, p.viewport.AtTop())

	p, _ = update(t, p, tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Positive(t, p.viewport.YOffset)
	assert.NotContains(t, p.View(), "Q4 Budget Discussion")
}

func TestPager_ResizeRewraps(t *testing.T) {
	p := NewPager(denverMemo(t))
	p, _ = update(t, p, tea.WindowSizeMsg{Width: 100, Height: 20})
	wide := p.viewport.TotalLineCount()

	p, _ = update(t, p, tea.WindowSizeMsg{Width: 50, Height: 20})
	assert.Equal(t, 50, p.viewport.Width)
	assert.Greater(t, p.viewport.TotalLineCount(), wide)
}

func TestPager_Quit(t *testing.T) {
	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := update(t, NewPager(denverMemo(t)), k)
		require.NotNil(t, cmd, k.String())
		assert.Equal(t, tea.Quit(), cmd(), k.String())
	}
}

func TestRun_NilMemo(t *testing.T) {
	assert.Error(t, Run(context.Background(), nil, strings.NewReader(""), &strings.Builder{}))
}
