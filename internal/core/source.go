package core

import "context"

// BundleSource hands out briefing bundles by name. Bundles are decoded and
// normalized but not validated; the generator does that.
type BundleSource interface {
	List(ctx context.Context) ([]string, error)
	Get(ctx context.Context, name string) (*Bundle, error)
}
