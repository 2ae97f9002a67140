package briefing

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sandevgo/tuskmemo/internal/core"
	"github.com/sandevgo/tuskmemo/internal/metrics"
	"github.com/sandevgo/tuskmemo/internal/service/memo"
	"github.com/sandevgo/tuskmemo/internal/source/bundle"
	"github.com/sandevgo/tuskmemo/pkg/clock"
	"github.com/sandevgo/tuskmemo/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *metrics.Metrics) {
	t.Helper()
	m := metrics.New()
	gen := memo.NewGenerator(clock.NewFixed(test.Now), memo.WithLocation(test.MST))
	return New(gen, bundle.NewDir(test.GetBundlesDir(t)), m), m
}

func TestService_Bundles(t *testing.T) {
	s, m := newTestService(t)

	names, err := s.Bundles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"city-council-sync", test.DenverBundle}, names)

	count, err := testutil.GatherAndCount(m.Registry(), "tuskmemo_bundles_available")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestService_MemoFor(t *testing.T) {
	s, m := newTestService(t)
	ctx := WithRequestID(context.Background(), TransportCLI)

	memoValue, err := s.MemoFor(ctx, TransportCLI, test.DenverBundle)
	require.NoError(t, err)
	assert.Equal(t, core.ConfidenceHigh, memoValue.Metadata.Confidence)
	assert.Equal(t, "Saturday, November 15, 2025 at 2:00 PM MST", memoValue.Date)

	_, err = s.MemoFor(ctx, TransportCLI, "nope")
	assert.ErrorIs(t, err, bundle.ErrNotFound)

	count, err := testutil.GatherAndCount(m.Registry(), "tuskmemo_memos_generated_total", "tuskmemo_memo_failures_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestService_Memo(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	_, err := s.Memo(ctx, TransportHTTP, nil)
	assert.ErrorIs(t, err, memo.ErrMissingBundle)

	_, err = s.Memo(ctx, TransportHTTP, &core.Bundle{Event: test.DenverEvent()})
	assert.ErrorIs(t, err, memo.ErrMissingProfiles)

	m, err := s.Memo(ctx, TransportHTTP, test.DenverBundleValue())
	require.NoError(t, err)
	assert.Len(t, m.Sections.AttendeeBackgrounds, 2)
}

func TestReason(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{memo.ErrMissingEvent, ReasonInvalidInput},
		{fmt.Errorf("wrapped: %w", memo.ErrMissingEventDatetime), ReasonInvalidInput},
		{bundle.ErrInvalidName, ReasonInvalidInput},
		{fmt.Errorf("%w: x", bundle.ErrNotFound), ReasonNotFound},
		{errors.New("disk on fire"), ReasonSource},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, Reason(tt.err))
		})
	}
}
