package srv

import (
	"context"
	"fmt"
	"time"

	"github.com/sandevgo/tuskmemo/pkg/log"
)

const DefaultShutdownTimeout = 10 * time.Second

type Service interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// Named lets a service report a readable name in logs.
type Named interface {
	Name() string
}

func nameOf(s Service) string {
	if n, ok := s.(Named); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", s)
}

// StartServices starts every service in its own goroutine. A start failure
// is fatal.
func StartServices(ctx context.Context, services []Service) {
	logger := log.FromCtx(ctx)
	for _, service := range services {
		go func(service Service) {
			logger.Debug().Str("service", nameOf(service)).Msg("starting service")
			if err := service.Start(ctx); err != nil {
				logger.Fatal().Err(err).Str("service", nameOf(service)).Msg("failed to start")
			}
		}(service)
	}
}

// ShutdownServices blocks until ctx is done, then stops services in reverse
// order of registration, each under a fresh deadline.
func ShutdownServices(ctx context.Context, services []Service) {
	<-ctx.Done()

	logger := log.FromCtx(ctx)
	for i := len(services) - 1; i >= 0; i-- {
		service := services[i]
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), DefaultShutdownTimeout)
		if err := service.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Str("service", nameOf(service)).Msg("failed to shutdown")
		}
		cancel()
	}
}
