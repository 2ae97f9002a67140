package bundle

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"time"

	"github.com/sandevgo/tuskmemo/internal/core"
	"github.com/sandevgo/tuskmemo/pkg/log"
	"github.com/sandevgo/tuskmemo/pkg/retry"
)

const defaultFetchTimeout = 15 * time.Second

// Fetcher downloads bundles over HTTP. Server errors and transport failures
// are retried; client errors and undecodable bodies are not.
type Fetcher struct {
	client  *http.Client
	retrier *retry.Retrier
}

func NewFetcher(timeout time.Duration, retryCfg *retry.Config) *Fetcher {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &Fetcher{
		client:  &http.Client{Timeout: timeout},
		retrier: retry.NewRetrier(retryCfg),
	}
}

func NewDefaultFetcher() *Fetcher {
	return NewFetcher(defaultFetchTimeout, nil)
}

// Close drops idle keep-alive connections.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*core.Bundle, error) {
	logger := log.FromCtx(ctx)

	var b *core.Bundle
	err := f.retrier.Do(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return retry.Permanent(fmt.Errorf("failed to create request: %w", err))
		}
		req.Header.Set("User-Agent", core.TuskUserAgent)
		req.Header.Set("Accept", "application/json, application/yaml;q=0.9")

		resp, err := f.client.Do(req)
		if err != nil {
			logger.Debug().Err(err).Str("url", url).Msg("bundle fetch failed, retrying")
			return fmt.Errorf("failed to fetch bundle: %w", err)
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode >= 500:
			return fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
		case resp.StatusCode >= 400:
			return retry.Permanent(fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status))
		}

		format, err := FormatFromContentType(resp.Header.Get("Content-Type"))
		if err != nil {
			if format, err = FormatFromPath(req.URL.Path); err != nil {
				return retry.Permanent(err)
			}
		}

		decoded, err := Decode(resp.Body, format)
		if err != nil {
			return retry.Permanent(err)
		}
		if decoded.Name == "" {
			decoded.Name = nameFromPath(path.Base(req.URL.Path))
		}
		b = decoded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}
