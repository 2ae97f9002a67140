package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	stdlog "log"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sandevgo/tuskmemo/internal/core"
	"github.com/sandevgo/tuskmemo/internal/service/briefing"
	"github.com/sandevgo/tuskmemo/internal/service/render"
	"github.com/sandevgo/tuskmemo/pkg/log"
)

const (
	toolGenerateMemo = "generate_memo"
	toolListBundles  = "list_bundles"

	formatMarkdown = "markdown"
	formatJSON     = "json"
)

// BundleFetcher loads a bundle from a URL.
type BundleFetcher interface {
	Fetch(ctx context.Context, url string) (*core.Bundle, error)
}

// Server exposes memo generation as MCP tools over stdio.
type Server struct {
	briefing *briefing.Service
	fetcher  BundleFetcher
	mcp      *server.MCPServer
	in       io.Reader
	out      io.Writer
}

func NewServer(b *briefing.Service, fetcher BundleFetcher, in io.Reader, out io.Writer) *Server {
	s := &Server{
		briefing: b,
		fetcher:  fetcher,
		in:       in,
		out:      out,
		mcp: server.NewMCPServer(
			core.TuskName,
			core.TaskVersion,
			server.WithToolCapabilities(false),
			server.WithRecovery(),
		),
	}

	s.mcp.AddTool(mcp.NewTool(toolListBundles,
		mcp.WithDescription("List the briefing bundles available for memo generation"),
	), s.handleListBundles)

	s.mcp.AddTool(mcp.NewTool(toolGenerateMemo,
		mcp.WithDescription("Generate a pre-meeting briefing memo from a named bundle or a bundle URL"),
		mcp.WithString("bundle",
			mcp.Description("Bundle name as returned by list_bundles"),
		),
		mcp.WithString("url",
			mcp.Description("HTTP(S) URL of a JSON or YAML bundle, used when bundle is empty"),
		),
		mcp.WithString("format",
			mcp.Description("Output format"),
			mcp.Enum(formatMarkdown, formatJSON),
		),
	), s.handleGenerateMemo)

	return s
}

func (s *Server) Name() string {
	return "mcp"
}

// Start serves MCP over the configured streams until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Msg("starting mcp stdio server")

	stdio := server.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(stdlog.New(logger, "", 0))
	stdio.SetContextFunc(func(reqCtx context.Context) context.Context {
		return briefing.WithRequestID(logger.WithContext(reqCtx), briefing.TransportMCP)
	})

	if err := stdio.Listen(ctx, s.in, s.out); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp server stopped: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return nil
}

func (s *Server) handleListBundles(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names, err := s.briefing.Bundles(ctx)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("failed to list bundles", err), nil
	}
	if len(names) == 0 {
		return mcp.NewToolResultText("No bundles available."), nil
	}
	return mcp.NewToolResultText(strings.Join(names, "\n")), nil
}

func (s *Server) handleGenerateMemo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := strings.TrimSpace(req.GetString("bundle", ""))
	url := strings.TrimSpace(req.GetString("url", ""))
	format := req.GetString("format", formatMarkdown)

	var (
		m   *core.Memo
		err error
	)
	switch {
	case name != "":
		m, err = s.briefing.MemoFor(ctx, briefing.TransportMCP, name)
	case url != "" && s.fetcher != nil:
		var b *core.Bundle
		if b, err = s.fetcher.Fetch(ctx, url); err == nil {
			m, err = s.briefing.Memo(ctx, briefing.TransportMCP, b)
		}
	default:
		return mcp.NewToolResultError("either bundle or url is required"), nil
	}
	if err != nil {
		return mcp.NewToolResultErrorFromErr("failed to generate memo", err), nil
	}

	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode memo: %w", err)
		}
		return mcp.NewToolResultText(string(data)), nil
	case formatMarkdown:
		return mcp.NewToolResultText(render.Markdown(m)), nil
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unsupported format %q", format)), nil
	}
}
