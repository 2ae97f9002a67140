package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/tuskmemo/internal/config"
	"github.com/sandevgo/tuskmemo/internal/core"
	"github.com/sandevgo/tuskmemo/internal/metrics"
	"github.com/sandevgo/tuskmemo/internal/service/briefing"
	"github.com/sandevgo/tuskmemo/internal/service/command"
	"github.com/sandevgo/tuskmemo/internal/service/memo"
	"github.com/sandevgo/tuskmemo/internal/source/bundle"
	"github.com/sandevgo/tuskmemo/internal/transport/httpapi"
	"github.com/sandevgo/tuskmemo/internal/transport/telegram"
	"github.com/sandevgo/tuskmemo/pkg/clock"
	"github.com/sandevgo/tuskmemo/pkg/log"
	"github.com/sandevgo/tuskmemo/pkg/srv"
)

// App holds the pieces every subcommand shares.
type App struct {
	cfg      *config.AppConfig
	metrics  *metrics.Metrics
	briefing *briefing.Service
	fetcher  *bundle.Fetcher
}

func NewApp(ctx context.Context) *App {
	logger := log.FromCtx(ctx)

	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	appCfg := config.NewAppConfig(ctx)
	memoCfg := config.NewMemoConfig(ctx)

	opts, err := memo.OptionsFromConfig(memoCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid memo configuration")
	}

	m := metrics.New()
	source := bundle.NewDir(appCfg.GetBundlesPath())
	gen := memo.NewGenerator(clock.System{}, opts...)

	logger.Debug().Str("bundles", source.Path()).Msg("bundle directory")

	return &App{
		cfg:      appCfg,
		metrics:  m,
		briefing: briefing.New(gen, source, m),
		fetcher:  bundle.NewDefaultFetcher(),
	}
}

// NewServices builds the long-running transports selected in the config.
func NewServices(ctx context.Context, app *App) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	transports, err := initTransports(ctx, app)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize transports")
	}
	services = append(services, transports...)

	if len(services) == 0 {
		logger.Warn().Msg("no transports enabled, set ENABLE_HTTP or ENABLE_TELEGRAM")
		return services
	}

	// Stopped last, after the transports that fetch bundles
	return append([]srv.Service{srv.NewCleanup("fetcher", app.fetcher.Close)}, services...)
}

func initTransports(ctx context.Context, app *App) ([]srv.Service, error) {
	var services []srv.Service

	// HTTP API
	if app.cfg.IsHTTPSelected() {
		httpCfg := config.NewHTTPConfig(ctx)
		services = append(services, httpapi.NewServer(ctx, httpCfg, app.briefing, app.metrics))
	}

	// Telegram Bot
	if app.cfg.IsTelegramSelected() {
		tgCfg := config.NewTelegramConfig(ctx)
		router := command.NewRouter(app.briefing, briefing.TransportTelegram)
		bot, err := telegram.NewBot(ctx, tgCfg, router, app.briefing, app.fetcher)
		if err != nil {
			return nil, err
		}
		services = append(services, bot)
	}

	return services, nil
}

// loadMemo generates a memo from exactly one of a bundle name, a file or a URL.
func loadMemo(ctx context.Context, app *App, args []string, file, url string) (*core.Memo, error) {
	sources := len(args)
	if file != "" {
		sources++
	}
	if url != "" {
		sources++
	}
	if sources != 1 {
		return nil, errors.New("pass exactly one of a bundle name, --file or --url")
	}

	switch {
	case file != "":
		b, err := bundle.LoadFile(file)
		if err != nil {
			return nil, err
		}
		return app.briefing.Memo(ctx, briefing.TransportCLI, b)
	case url != "":
		b, err := app.fetcher.Fetch(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch bundle: %w", err)
		}
		return app.briefing.Memo(ctx, briefing.TransportCLI, b)
	default:
		return app.briefing.MemoFor(ctx, briefing.TransportCLI, args[0])
	}
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
