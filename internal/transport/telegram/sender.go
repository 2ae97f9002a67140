package telegram

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sandevgo/tuskmemo/pkg/conv"
	"github.com/sandevgo/tuskmemo/pkg/log"
	"github.com/sandevgo/tuskmemo/pkg/retry"
	tele "gopkg.in/telebot.v3"
)

const maxTelegramMsgLen = 4000 // Safety margin below 4096

type messenger interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

type sender struct {
	bot     messenger
	retrier *retry.Retrier
}

func newSender(bot messenger, retrier *retry.Retrier) *sender {
	return &sender{bot: bot, retrier: retrier}
}

// sendMarkdown converts Markdown to Telegram HTML and sends it in chunks.
// Each chunk is retried on its own so a flood wait does not resend earlier
// chunks.
func (s *sender) sendMarkdown(ctx context.Context, to tele.Recipient, md string) error {
	logger := log.FromCtx(ctx)
	html := strings.TrimSpace(conv.MarkdownToTelegramHTML([]byte(md)))
	if html == "" {
		return nil
	}

	for i, chunk := range splitHTML(html, maxTelegramMsgLen) {
		err := s.retrier.Do(ctx, func() error {
			_, err := s.bot.Send(to, chunk, tele.ModeHTML)
			if err != nil && !isTransient(err) {
				return retry.Permanent(err)
			}
			return err
		})
		if err != nil {
			logger.Error().Err(err).Int("chunk", i).Int("len", len(chunk)).Msg("failed to send telegram chunk")
			return err
		}
	}
	return nil
}

// isTransient reports whether Telegram may accept the same request later.
func isTransient(err error) bool {
	var flood tele.FloodError
	if errors.As(err, &flood) {
		return true
	}
	var apiErr *tele.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= http.StatusInternalServerError
	}
	// network failures carry no API code
	return true
}

// splitHTML splits text into chunks respecting Telegram's limit.
// It tries to split at newlines to preserve formatting.
func splitHTML(text string, maxLen int) []string {
	if len(text) <= maxLen {
		return []string{text}
	}

	var chunks []string
	for len(text) > 0 {
		if len(text) <= maxLen {
			chunks = append(chunks, text)
			break
		}

		cut := maxLen
		if idx := strings.LastIndex(text[:maxLen], "\n"); idx > maxLen/3 {
			cut = idx
		}

		chunks = append(chunks, text[:cut])
		text = strings.TrimSpace(text[cut:])
	}
	return chunks
}
