package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sandevgo/tuskmemo/internal/config"
	"github.com/sandevgo/tuskmemo/internal/metrics"
	"github.com/sandevgo/tuskmemo/internal/service/briefing"
	"github.com/sandevgo/tuskmemo/pkg/log"
)

// Server is the memo HTTP API.
type Server struct {
	cfg      *config.HTTPConfig
	briefing *briefing.Service
	metrics  *metrics.Metrics
	router   *gin.Engine
	srv      *http.Server
}

func NewServer(ctx context.Context, cfg *config.HTTPConfig, b *briefing.Service, m *metrics.Metrics) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	s := &Server{
		cfg:      cfg,
		briefing: b,
		metrics:  m,
		router:   router,
	}

	router.Use(gin.Recovery(), s.requestContext(ctx))

	router.GET("/healthz", s.handleHealth)
	router.GET("/metrics", gin.WrapH(m.Handler()))

	api := router.Group("/api")
	{
		api.GET("/bundles", s.handleListBundles)
		api.GET("/bundles/:name/memo", s.handleBundleMemo)
		api.POST("/memos", s.handleCreateMemo)
	}

	s.srv = &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

func (s *Server) Name() string {
	return "http"
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("addr", s.cfg.Addr).Msg("starting http server")
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// requestContext swaps the request context for one carrying the base
// logger and a request id, then logs the outcome.
func (s *Server) requestContext(base context.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		ctx := briefing.WithRequestID(log.FromCtx(base).WithContext(c.Request.Context()), briefing.TransportHTTP)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		log.FromCtx(ctx).Debug().
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request served")
	}
}
