package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sandevgo/tuskmemo/internal/core"
	"github.com/sandevgo/tuskmemo/internal/service/briefing"
	"github.com/sandevgo/tuskmemo/internal/service/render"
	"github.com/spf13/cobra"
)

const (
	formatMarkdown = "markdown"
	formatJSON     = "json"
	formatHTML     = "html"
	formatText     = "text"
)

var (
	genFile   string
	genURL    string
	genFormat string
	genOut    string
	genWidth  int
)

var generateCmd = &cobra.Command{
	Use:   "generate [bundle]",
	Short: "Generate a memo and print it",
	Long: `Generates a briefing memo from a named bundle in the bundles directory,
from a local JSON/YAML file (--file) or from a URL (--url).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		app := NewApp(ctx)
		ctx = briefing.WithRequestID(ctx, briefing.TransportCLI)

		m, err := loadMemo(ctx, app, args, genFile, genURL)
		if err != nil {
			return err
		}

		out, err := renderMemo(m, genFormat, genWidth)
		if err != nil {
			return err
		}

		if genOut != "" {
			return os.WriteFile(genOut, []byte(out), 0644)
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	},
}

func renderMemo(m *core.Memo, format string, width int) (string, error) {
	switch format {
	case formatMarkdown:
		return render.Markdown(m), nil
	case formatJSON:
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode memo: %w", err)
		}
		return string(data) + "\n", nil
	case formatHTML:
		return render.HTML(m)
	case formatText:
		return render.Terminal(m, width), nil
	default:
		return "", fmt.Errorf("unknown format %q, use markdown, json, html or text", format)
	}
}

func init() {
	generateCmd.Flags().StringVarP(&genFile, "file", "f", "", "read the bundle from a JSON or YAML file")
	generateCmd.Flags().StringVarP(&genURL, "url", "u", "", "fetch the bundle from a URL")
	generateCmd.Flags().StringVar(&genFormat, "format", formatMarkdown, "output format: markdown, json, html or text")
	generateCmd.Flags().StringVarP(&genOut, "out", "o", "", "write to a file instead of stdout")
	generateCmd.Flags().IntVarP(&genWidth, "width", "w", render.DefaultTerminalWidth, "wrap width for text output")
	rootCmd.AddCommand(generateCmd)
}
