package telegram

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sandevgo/tuskmemo/internal/core"
	"github.com/sandevgo/tuskmemo/internal/service/briefing"
	"github.com/sandevgo/tuskmemo/internal/service/render"
	"github.com/sandevgo/tuskmemo/internal/source/bundle"
	"github.com/sandevgo/tuskmemo/pkg/log"
	"github.com/sandevgo/tuskmemo/pkg/retry"
	tele "gopkg.in/telebot.v3"
)

const baseContextKey = "base_context"

const notACommand = "Send /help to see what I can do, upload a bundle file or send a bundle link."

// BundleFetcher downloads bundles from links sent to the bot.
type BundleFetcher interface {
	Fetch(ctx context.Context, url string) (*core.Bundle, error)
}

type Bot struct {
	bot      *tele.Bot
	router   core.CmdRouter
	briefing *briefing.Service
	fetcher  BundleFetcher
	sender   *sender
	ownerID  int64
}

func NewBot(
	ctx context.Context,
	cfg core.TelegramConfig,
	router core.CmdRouter,
	b *briefing.Service,
	fetcher BundleFetcher,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.GetTelegramToken(),
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	tb, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:      tb,
		router:   router,
		briefing: b,
		fetcher:  fetcher,
		sender:   newSender(tb, retry.NewDefaultRetrier()),
		ownerID:  cfg.GetTelegramOwnerID(),
	}

	// Use context from Signal with logger
	tb.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, briefing.WithRequestID(ctx, briefing.TransportTelegram))
			return next(c)
		}
	})

	// Middleware: Only allow the owner
	tb.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Sender() == nil || c.Sender().ID != bot.ownerID {
				return nil // Ignore unauthorized users
			}
			return next(c)
		}
	})

	tb.Handle(tele.OnText, bot.handleText)
	tb.Handle(tele.OnDocument, bot.handleDocument)

	return bot, nil
}

func (b *Bot) Name() string {
	return "telegram"
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting telegram bot")

	cmds := b.router.ListCommands()
	menu := make([]tele.Command, 0, len(cmds))
	for _, cmd := range cmds {
		menu = append(menu, tele.Command{Text: cmd.Name(), Description: cmd.Description()})
	}
	if err := b.bot.SetCommands(menu); err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("failed to set telegram command menu")
	}

	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handleText(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	chatID := strconv.FormatInt(c.Chat().ID, 10)

	_ = c.Notify(tele.Typing)

	if link, ok := bundleLink(c.Text()); ok && b.fetcher != nil {
		reply, err := memoFromURL(ctx, b.briefing, b.fetcher, link)
		if err != nil {
			log.FromCtx(ctx).Warn().Err(err).Str("url", link).Msg("failed to build memo from link")
			reply = fmt.Sprintf("❌ **Could not build memo**\n\n%s", err.Error())
		}
		return b.sender.sendMarkdown(ctx, c.Chat(), reply)
	}

	reply, ok := b.router.Execute(ctx, chatID, c.Text())
	if !ok {
		reply = notACommand
	}
	return b.sender.sendMarkdown(ctx, c.Chat(), reply)
}

// bundleLink reports whether text is nothing but an http(s) link.
func bundleLink(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" || strings.ContainsAny(text, " \t\n") {
		return "", false
	}
	u, err := url.Parse(text)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", false
	}
	return text, true
}

func memoFromURL(ctx context.Context, svc *briefing.Service, fetcher BundleFetcher, link string) (string, error) {
	bd, err := fetcher.Fetch(ctx, link)
	if err != nil {
		return "", err
	}

	m, err := svc.Memo(ctx, briefing.TransportTelegram, bd)
	if err != nil {
		return "", err
	}
	return render.Markdown(m), nil
}

func (b *Bot) handleDocument(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	logger := log.FromCtx(ctx)
	doc := c.Message().Document

	_ = c.Notify(tele.Typing)

	reply, err := b.memoFromDocument(ctx, doc)
	if err != nil {
		logger.Warn().Err(err).Str("file", doc.FileName).Msg("failed to build memo from upload")
		reply = fmt.Sprintf("❌ **Could not build memo**\n\n%s", err.Error())
	}
	return b.sender.sendMarkdown(ctx, c.Chat(), reply)
}

func (b *Bot) memoFromDocument(ctx context.Context, doc *tele.Document) (string, error) {
	format, err := bundle.FormatFromPath(doc.FileName)
	if err != nil {
		return "", err
	}
	if doc.FileSize > bundle.MaxBundleSize {
		return "", fmt.Errorf("file is larger than %d bytes", bundle.MaxBundleSize)
	}

	rc, err := b.bot.File(&doc.File)
	if err != nil {
		return "", fmt.Errorf("failed to download file: %w", err)
	}
	defer rc.Close()

	return memoFromReader(ctx, b.briefing, rc, format, doc.FileName)
}

func memoFromReader(ctx context.Context, svc *briefing.Service, r io.Reader, format bundle.Format, fileName string) (string, error) {
	bd, err := bundle.Decode(r, format)
	if err != nil {
		return "", err
	}
	if bd.Name == "" {
		bd.Name = fileName
	}

	m, err := svc.Memo(ctx, briefing.TransportTelegram, bd)
	if err != nil {
		return "", err
	}
	return render.Markdown(m), nil
}
