package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/tuskmemo/pkg/log"
)

type MemoConfig struct {
	RecencyWindowDays       int    `env:"MEMO_RECENCY_WINDOW_DAYS" envDefault:"90"`
	MaxRenderedInteractions int    `env:"MEMO_MAX_RENDERED_INTERACTIONS" envDefault:"3"`
	RecentContactDays       int    `env:"MEMO_RECENT_CONTACT_DAYS" envDefault:"60"`
	NewsFreshnessDays       int    `env:"MEMO_NEWS_FRESHNESS_DAYS" envDefault:"30"`
	Timezone                string `env:"MEMO_TIMEZONE" envDefault:"Local"`
}

func NewMemoConfig(ctx context.Context) *MemoConfig {
	c := &MemoConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Memo config")
	}
	return c
}

func (c MemoConfig) GetRecencyWindowDays() int       { return c.RecencyWindowDays }
func (c MemoConfig) GetMaxRenderedInteractions() int { return c.MaxRenderedInteractions }
func (c MemoConfig) GetRecentContactDays() int       { return c.RecentContactDays }
func (c MemoConfig) GetNewsFreshnessDays() int       { return c.NewsFreshnessDays }
func (c MemoConfig) GetTimezone() string             { return c.Timezone }
