package briefing

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sandevgo/tuskmemo/internal/core"
	"github.com/sandevgo/tuskmemo/internal/metrics"
	"github.com/sandevgo/tuskmemo/internal/service/memo"
	"github.com/sandevgo/tuskmemo/internal/source/bundle"
	"github.com/sandevgo/tuskmemo/pkg/log"
)

// Transport labels used in logs and metrics.
const (
	TransportCLI      = "cli"
	TransportHTTP     = "http"
	TransportTelegram = "telegram"
	TransportMCP      = "mcp"
)

// Failure reasons reported to metrics.
const (
	ReasonInvalidInput = "invalid_input"
	ReasonNotFound     = "not_found"
	ReasonSource       = "source"
)

// Service is what every transport talks to: it resolves bundles, runs the
// generator and records the outcome.
type Service struct {
	gen     *memo.Generator
	source  core.BundleSource
	metrics *metrics.Metrics
}

func New(gen *memo.Generator, source core.BundleSource, m *metrics.Metrics) *Service {
	return &Service{
		gen:     gen,
		source:  source,
		metrics: m,
	}
}

// WithRequestID attaches a fresh request id to the context logger.
func WithRequestID(ctx context.Context, transport string) context.Context {
	return log.WithFields(ctx, "request_id", uuid.NewString(), "transport", transport)
}

func (s *Service) Bundles(ctx context.Context) ([]string, error) {
	names, err := s.source.List(ctx)
	if err != nil {
		return nil, err
	}
	s.metrics.SetBundles(len(names))
	return names, nil
}

// MemoFor generates a memo from a named bundle of the configured source.
func (s *Service) MemoFor(ctx context.Context, transport, name string) (*core.Memo, error) {
	start := time.Now()
	b, err := s.source.Get(ctx, name)
	if err != nil {
		s.fail(ctx, transport, name, err)
		return nil, err
	}
	return s.generate(ctx, transport, b, start)
}

// Memo generates a memo from a bundle handed over by the caller.
func (s *Service) Memo(ctx context.Context, transport string, b *core.Bundle) (*core.Memo, error) {
	return s.generate(ctx, transport, b, time.Now())
}

func (s *Service) generate(ctx context.Context, transport string, b *core.Bundle, start time.Time) (*core.Memo, error) {
	name := ""
	if b != nil {
		name = b.Name
	}

	m, err := s.gen.GenerateBundle(ctx, b)
	if err != nil {
		s.fail(ctx, transport, name, err)
		return nil, err
	}

	elapsed := time.Since(start)
	s.metrics.ObserveMemo(transport, string(m.Metadata.Confidence), elapsed)
	log.FromCtx(ctx).Info().
		Str("bundle", name).
		Str("confidence", string(m.Metadata.Confidence)).
		Dur("elapsed", elapsed).
		Msg("memo ready")
	return m, nil
}

func (s *Service) fail(ctx context.Context, transport, name string, err error) {
	reason := Reason(err)
	s.metrics.ObserveFailure(transport, reason)
	log.FromCtx(ctx).Warn().Err(err).Str("bundle", name).Str("reason", reason).Msg("memo failed")
}

// Reason classifies an error for metrics and transport status codes.
func Reason(err error) string {
	switch {
	case IsInvalidInput(err):
		return ReasonInvalidInput
	case errors.Is(err, bundle.ErrNotFound):
		return ReasonNotFound
	default:
		return ReasonSource
	}
}

// IsInvalidInput reports errors caused by the caller's bundle rather than
// by the service.
func IsInvalidInput(err error) bool {
	for _, target := range []error{
		memo.ErrMissingBundle,
		memo.ErrMissingEvent,
		memo.ErrMissingProfiles,
		memo.ErrMissingOrganization,
		memo.ErrMissingEventDatetime,
		bundle.ErrInvalidName,
		bundle.ErrUnknownFormat,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
