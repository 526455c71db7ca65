// SPDX-License-Identifier: MIT
//
// options.go: functional options for Build.
//
// Option constructors panic on nil inputs; Build itself never panics.

package builder

import (
	"log/slog"

	"github.com/katalvlaran/coachtree/metrics"
	"github.com/katalvlaran/coachtree/seniority"
)

// BuilderOption customizes Build by mutating a builderConfig.
type BuilderOption func(*builderConfig)

type builderConfig struct {
	mapping *seniority.Mapping
	logger  *slog.Logger
	metrics *metrics.Collectors
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		mapping: seniority.Default(),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeniority sets the position ranking.
func WithSeniority(m *seniority.Mapping) BuilderOption {
	if m == nil {
		panic("builder: WithSeniority(nil)")
	}
	return func(c *builderConfig) { c.mapping = m }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *slog.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) { c.logger = l }
}

// WithMetrics attaches Prometheus collectors. A nil value disables metrics.
func WithMetrics(m *metrics.Collectors) BuilderOption {
	return func(c *builderConfig) { c.metrics = m }
}
