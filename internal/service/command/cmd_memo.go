package command

import (
	"context"
	"errors"

	"github.com/sandevgo/tuskmemo/internal/core"
	"github.com/sandevgo/tuskmemo/internal/service/briefing"
	"github.com/sandevgo/tuskmemo/internal/service/render"
)

type MemoCommand struct {
	briefing  *briefing.Service
	transport string
	formatter *ResponseFormatter
}

func NewMemoCommand(b *briefing.Service, transport string) core.Command {
	return &MemoCommand{
		briefing:  b,
		transport: transport,
		formatter: NewResponseFormatter(),
	}
}

func (c *MemoCommand) Name() string {
	return "memo"
}

func (c *MemoCommand) Description() string {
	return "Generate a briefing memo from a bundle"
}

func (c *MemoCommand) Execute(ctx context.Context, chatID string, args []string) (string, error) {
	if len(args) != 1 {
		return c.formatter.Combine(
			c.formatter.Usage("/memo <bundle>"),
			c.formatter.Tip("Send /list to see available bundles"),
		), nil
	}

	m, err := c.briefing.MemoFor(ctx, c.transport, args[0])
	if err != nil {
		if briefing.Reason(err) == briefing.ReasonSource {
			return "", errors.New("failed to load bundle, see logs for details")
		}
		return "", err
	}
	return render.Markdown(m), nil
}
