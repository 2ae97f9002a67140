package command

import (
	"context"
	"fmt"

	"github.com/sandevgo/tuskmemo/internal/core"
	"github.com/sandevgo/tuskmemo/internal/service/briefing"
)

type ListCommand struct {
	briefing  *briefing.Service
	formatter *ResponseFormatter
}

func NewListCommand(b *briefing.Service) core.Command {
	return &ListCommand{
		briefing:  b,
		formatter: NewResponseFormatter(),
	}
}

func (c *ListCommand) Name() string {
	return "list"
}

func (c *ListCommand) Description() string {
	return "Show available bundles"
}

func (c *ListCommand) Execute(ctx context.Context, chatID string, args []string) (string, error) {
	names, err := c.briefing.Bundles(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list bundles: %w", err)
	}

	if len(names) == 0 {
		return c.formatter.Combine(
			c.formatter.Info("Bundles"),
			c.formatter.Label("Status", "No bundles found"),
			c.formatter.Tip("Upload a .yaml or .json bundle to this chat"),
		), nil
	}

	items := make([]string, len(names))
	for i, n := range names {
		items[i] = fmt.Sprintf("`%s`", n)
	}

	return c.formatter.Combine(
		c.formatter.Info("Bundles"),
		c.formatter.List(items),
		c.formatter.Usage("/memo <bundle>"),
	), nil
}
