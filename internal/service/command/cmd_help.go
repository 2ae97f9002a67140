package command

import (
	"context"
	"fmt"

	"github.com/sandevgo/tuskmemo/internal/core"
)

// HelpCommand lists the commands of the router it is registered with.
type HelpCommand struct {
	list      func() []core.Command
	formatter *ResponseFormatter
}

func (c *HelpCommand) Name() string {
	return "help"
}

func (c *HelpCommand) Description() string {
	return "Show available commands"
}

func (c *HelpCommand) Execute(ctx context.Context, chatID string, args []string) (string, error) {
	cmds := c.list()
	items := make([]string, len(cmds))
	for i, cmd := range cmds {
		items[i] = fmt.Sprintf("/%s - %s", cmd.Name(), cmd.Description())
	}
	return c.formatter.Combine(
		c.formatter.Info("Commands"),
		c.formatter.List(items),
	), nil
}
