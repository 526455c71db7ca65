// SPDX-License-Identifier: MIT

package ancestry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/coachtree/metrics"
)

// Option configures a search. Invalid values are recorded and surfaced as
// ErrOptionViolation when the search runs.
type Option func(*options)

type options struct {
	ctx        context.Context
	maxFanOut  int
	maxDepth   int
	logger     *slog.Logger
	collectors *metrics.Collectors
	err        error
}

func newOptions(opts ...Option) options {
	o := options{
		ctx:    context.Background(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithContext sets a context checked between BFS levels.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithMaxFanOut caps the admissible mentor edges expanded from one state.
// 0 means unlimited.
func WithMaxFanOut(n int) Option {
	return func(o *options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxFanOut cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.maxFanOut = n
	}
}

// WithMaxDepth caps the number of lineage steps from each coach.
// 0 means unlimited.
func WithMaxDepth(d int) Option {
	return func(o *options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.maxDepth = d
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics attaches Prometheus collectors.
func WithMetrics(m *metrics.Collectors) Option {
	return func(o *options) { o.collectors = m }
}
