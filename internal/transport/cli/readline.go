package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sandevgo/tuskmemo/internal/config"
	"github.com/sandevgo/tuskmemo/internal/core"
	"github.com/sandevgo/tuskmemo/internal/service/briefing"
	"github.com/sandevgo/tuskmemo/pkg/log"
)

const shellChatID = "cli-local"

// BundleLister feeds bundle names to tab completion.
type BundleLister interface {
	Bundles(ctx context.Context) ([]string, error)
}

// ReadLine is an interactive shell over the chat commands. A bare bundle
// name is shorthand for /memo <name>.
type ReadLine struct {
	router core.CmdRouter
	rl     *readline.Instance
}

func NewReadLine(ctx context.Context, router core.CmdRouter, bundles BundleLister, cfg *config.AppConfig) (*ReadLine, error) {
	// Ensure runtime directory exists
	if err := os.MkdirAll(cfg.RuntimePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "memo> ",
		HistoryFile:     filepath.Join(cfg.RuntimePath, "shell_history"),
		AutoComplete:    completer(ctx, router, bundles),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{
		router: router,
		rl:     rl,
	}, nil
}

func completer(ctx context.Context, router core.CmdRouter, bundles BundleLister) readline.AutoCompleter {
	names := func(string) []string {
		list, err := bundles.Bundles(ctx)
		if err != nil {
			return nil
		}
		return list
	}

	items := make([]readline.PrefixCompleterInterface, 0, len(router.ListCommands())+1)
	for _, cmd := range router.ListCommands() {
		if cmd.Name() == "memo" {
			items = append(items, readline.PcItem("/memo", readline.PcItemDynamic(names)))
			continue
		}
		items = append(items, readline.PcItem("/"+cmd.Name()))
	}
	items = append(items, readline.PcItemDynamic(names))
	return readline.NewPrefixCompleter(items...)
}

func (r *ReadLine) Name() string {
	return "shell"
}

func (r *ReadLine) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Msg("Memo shell started. Type /help for commands, 'exit' to quit.")

	for {
		// Check context before blocking read
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if len(line) == 0 {
					return nil // Exit on Ctrl+C
				}
				continue
			} else if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if handle(ctx, r.router, r.rl.Stdout(), line) {
			return nil
		}
	}
}

// handle runs one input line and reports whether the shell should exit.
func handle(ctx context.Context, router core.CmdRouter, out io.Writer, line string) bool {
	line = strings.TrimSpace(line)
	switch line {
	case "":
		return false
	case "exit", "quit":
		return true
	}

	if !strings.HasPrefix(line, "/") {
		line = "/memo " + line
	}

	res, _ := router.Execute(briefing.WithRequestID(ctx, briefing.TransportCLI), shellChatID, line)
	fmt.Fprintln(out, res)
	return false
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}
