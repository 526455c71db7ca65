// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/coachtree/builder"
	"github.com/katalvlaran/coachtree/core"
	"github.com/katalvlaran/coachtree/filter"
	"github.com/katalvlaran/coachtree/roster"
	"github.com/katalvlaran/coachtree/seniority"
)

// ErrNoInput is returned when a command needs job records and none were named.
var ErrNoInput = errors.New("cli: no input file (use --input or COACHTREE_INPUT)")

// loadGraph reads the configured CSV and builds the canonical graph.
func (s *session) loadGraph() (*core.Graph, *builder.Report, error) {
	if s.cfg.Input == "" {
		return nil, nil, ErrNoInput
	}
	fh, err := os.Open(s.cfg.Input)
	if err != nil {
		return nil, nil, fmt.Errorf("cli: open input: %w", err)
	}
	defer fh.Close()

	raws, err := roster.ReadCSV(fh)
	if err != nil {
		return nil, nil, fmt.Errorf("cli: read %s: %w", s.cfg.Input, err)
	}

	opts := []builder.BuilderOption{builder.WithLogger(s.logger), builder.WithMetrics(s.metrics)}
	if s.cfg.SeniorityFile != "" {
		m, err := seniority.LoadFile(s.cfg.SeniorityFile)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, builder.WithSeniority(m))
	}

	return builder.FromRaw(raws, opts...)
}

// workingGraph filters g for lineage queries about subject. An empty subject
// skips the current-staff reduction.
func (s *session) workingGraph(g *core.Graph, subject string) (*core.Graph, *filter.Summary, error) {
	opts := []filter.Option{
		filter.WithPolicy(s.cfg.FilterPolicy()),
		filter.WithSubjectYear(s.cfg.SubjectYear),
		filter.WithLogger(s.logger),
		filter.WithMetrics(s.metrics),
	}
	if subject != "" {
		opts = append(opts, filter.WithSubject(subject))
	}

	return filter.Apply(g, s.cfg.AsOf, opts...)
}
