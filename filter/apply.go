// SPDX-License-Identifier: MIT

package filter

import (
	"log/slog"

	"github.com/katalvlaran/coachtree/core"
	"github.com/katalvlaran/coachtree/metrics"
)

// Option customizes Apply.
type Option func(*config)

type config struct {
	policy     Policy
	subject    string
	year       int
	hasYear    bool
	logger     *slog.Logger
	collectors *metrics.Collectors
}

// WithPolicy selects the mentorship policy (default Strict).
func WithPolicy(p Policy) Option {
	return func(c *config) { c.policy = p }
}

// WithSubject enables the current-staff reduction for coach. The subject
// year defaults to the as-of year.
func WithSubject(coach string) Option {
	return func(c *config) { c.subject = coach }
}

// WithSubjectYear overrides the year used to resolve the subject's team.
func WithSubjectYear(year int) Option {
	return func(c *config) { c.year, c.hasYear = year, true }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("filter: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithMetrics attaches Prometheus collectors.
func WithMetrics(m *metrics.Collectors) Option {
	return func(c *config) { c.collectors = m }
}

// Summary reports what Apply removed.
type Summary struct {
	Input             int
	RemovedMentorship int
	RemovedFuture     int
	RemovedStaff      int
	Output            int

	// Teams lists every team the subject worked for in the subject year;
	// TeamFound is false when there is none and the current-staff
	// reduction was skipped.
	Teams     []string
	TeamFound bool
}

// Apply runs the three reductions over g and returns a new working graph.
// g is left untouched.
func Apply(g *core.Graph, asOf int, opts ...Option) (*core.Graph, *Summary, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	cfg := config{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&cfg)
	}
	year := asOf
	if cfg.hasYear {
		year = cfg.year
	}

	sum := &Summary{}
	staffKeep := func(*core.Edge) bool { return true }
	if cfg.subject != "" {
		sum.Teams = TeamsOf(g, cfg.subject, year)
		sum.TeamFound = len(sum.Teams) > 0
		if sum.TeamFound {
			staffKeep = notCurrentStaff(sum.Teams, year)
		} else {
			cfg.logger.Debug("subject has no team in year; current-staff reduction skipped",
				"coach", cfg.subject, "year", year)
		}
	}

	keepMentor, keepPast := mentorship(cfg.policy), notFuture(asOf)
	drop := make(map[string]struct{})
	for _, e := range g.Edges() {
		sum.Input++
		switch {
		case !keepMentor(e):
			sum.RemovedMentorship++
		case !keepPast(e):
			sum.RemovedFuture++
		case !staffKeep(e):
			sum.RemovedStaff++
		default:
			continue
		}
		drop[e.ID] = struct{}{}
	}
	out := core.WithoutEdges(g, drop)
	sum.Output = out.EdgeCount()

	cfg.collectors.ObserveReduction(metrics.ReductionMentorship, sum.RemovedMentorship)
	cfg.collectors.ObserveReduction(metrics.ReductionFuture, sum.RemovedFuture)
	cfg.collectors.ObserveReduction(metrics.ReductionCurrentStaff, sum.RemovedStaff)
	cfg.logger.Debug("lineage graph filtered",
		"policy", cfg.policy, "as_of", asOf, "input", sum.Input,
		"mentorship", sum.RemovedMentorship, "future", sum.RemovedFuture,
		"current_staff", sum.RemovedStaff, "teams", sum.Teams, "output", sum.Output)

	return out, sum, nil
}
