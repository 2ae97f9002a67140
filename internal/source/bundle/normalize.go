package bundle

import (
	"fmt"

	"github.com/sandevgo/tuskmemo/internal/core"
	"github.com/sandevgo/tuskmemo/pkg/conv"
)

// Normalize flattens HTML that feeds often leave in descriptions and news
// summaries. Names, titles, bios and dates are left as they are.
func Normalize(b *core.Bundle) error {
	if b == nil {
		return nil
	}

	if b.Event != nil {
		if err := toText(&b.Event.Description); err != nil {
			return fmt.Errorf("event description: %w", err)
		}
	}

	if b.Organization != nil {
		if err := toText(&b.Organization.Description); err != nil {
			return fmt.Errorf("organization description: %w", err)
		}
		for i := range b.Organization.RecentNews {
			if err := toText(&b.Organization.RecentNews[i].Summary); err != nil {
				return fmt.Errorf("news item %d summary: %w", i, err)
			}
		}
	}

	return nil
}

func toText(s *string) error {
	text, err := conv.HTMLToText(*s)
	if err != nil {
		return err
	}
	*s = text
	return nil
}
