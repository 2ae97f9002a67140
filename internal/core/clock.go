package core

import "time"

// Clock supplies "now" to everything that computes recency.
type Clock interface {
	Now() time.Time
}
