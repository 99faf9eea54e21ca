package metrics

import (
	"context"
)

// Observer samples a gauge-like value, such as a repository size,
// whenever the collector is asked to observe.
type Observer interface {
	Observe(ctx context.Context, collector *Collector)
}
