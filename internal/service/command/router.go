package command

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sandevgo/tuskmemo/internal/core"
	"github.com/sandevgo/tuskmemo/pkg/log"
)

type Router struct {
	commands  map[string]core.Command
	formatter *ResponseFormatter
}

func New(commands []core.Command) *Router {
	c := &Router{
		commands:  make(map[string]core.Command),
		formatter: NewResponseFormatter(),
	}

	for _, cmd := range commands {
		c.commands[cmd.Name()] = cmd
	}
	return c
}

// Execute runs a slash command. The bool is false when input is not a
// command at all.
func (c *Router) Execute(ctx context.Context, chatID, input string) (string, bool) {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, "/") {
		return "", false
	}

	parts := strings.Fields(input)
	name := strings.TrimPrefix(parts[0], "/")
	// "/memo@tuskmemo_bot" in group chats
	if at := strings.IndexByte(name, '@'); at >= 0 {
		name = name[:at]
	}
	args := parts[1:]

	cmd, ok := c.commands[name]
	if !ok {
		return c.formatter.Combine(
			c.formatter.Error(fmt.Errorf("unknown command: /%s", name)),
			c.formatter.Tip("Send /help to see available commands"),
		), true
	}

	log.FromCtx(ctx).Debug().Str("command", name).Strs("args", args).Str("chat", chatID).Msg("executing command")

	result, err := cmd.Execute(ctx, chatID, args)
	if err != nil {
		return c.formatter.Error(err), true
	}
	return result, true
}

// ListCommands returns commands sorted by name.
func (c *Router) ListCommands() []core.Command {
	res := make([]core.Command, 0, len(c.commands))
	for _, cmd := range c.commands {
		res = append(res, cmd)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name() < res[j].Name() })
	return res
}
