package command

import (
	"github.com/sandevgo/tuskmemo/internal/core"
	"github.com/sandevgo/tuskmemo/internal/service/briefing"
)

// NewRouter wires the chat commands, including /help over the result.
// transport labels the memos in logs and metrics.
func NewRouter(b *briefing.Service, transport string) *Router {
	help := &HelpCommand{formatter: NewResponseFormatter()}
	r := New([]core.Command{
		NewMemoCommand(b, transport),
		NewListCommand(b),
		help,
	})
	help.list = r.ListCommands
	return r
}
