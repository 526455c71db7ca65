// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"slices"
	"time"

	"github.com/katalvlaran/coachtree/core"
	"github.com/katalvlaran/coachtree/roster"
	"github.com/katalvlaran/coachtree/season"
	"github.com/katalvlaran/coachtree/seniority"
)

// tenure is a validated record with its rank.
type tenure struct {
	rec   roster.JobRecord
	level seniority.Level
}

// Build creates the lineage graph from records. See the package doc for the
// algorithm. The returned error is non-nil only when the graph itself
// rejects an edge; data problems are reported through Report, where
// DataQualityError.Line is the record's source line, or its 1-based index
// into records when it has none.
func Build(records []roster.JobRecord, opts ...BuilderOption) (*core.Graph, *Report, error) {
	cfg := newBuilderConfig(opts...)
	started := time.Now()

	g := core.NewGraph()
	rep := &Report{Records: len(records), ByStatus: make(map[core.MentorStatus]int, 3)}
	classifier := seniority.NewClassifier(cfg.mapping)

	var (
		teams  []string
		groups = make(map[string][]tenure)
	)
	for i, rec := range records {
		if dq := validate(i, rec); dq != nil {
			rep.Skipped = append(rep.Skipped, dq)
			cfg.logger.Warn("skipping job record", "line", dq.Line, "coach", dq.Coach, "field", dq.Field, "err", dq.Err)
			continue
		}
		if err := g.AddVertex(rec.ID(), rec.Name); err != nil {
			return nil, nil, fmt.Errorf("%w: vertex %q: %v", ErrConstructFailed, rec.ID(), err)
		}
		before := len(classifier.Unclassified())
		level, _ := classifier.Classify(rec.Position)
		if misses := classifier.Unclassified(); len(misses) > before {
			cfg.logger.Warn("position not in seniority mapping", "position", misses[len(misses)-1].Position, "coach", rec.Name)
		}

		if _, ok := groups[rec.Team]; !ok {
			teams = append(teams, rec.Team)
		}
		groups[rec.Team] = append(groups[rec.Team], tenure{rec: rec, level: level})
		rep.Accepted++
	}
	rep.Unclassified = classifier.Unclassified()

	processed := make(map[string]struct{})
	for _, team := range teams {
		group := groups[team]
		for _, a := range group {
			for _, b := range group {
				if a.rec.ID() == b.rec.ID() {
					continue
				}
				overlap := a.rec.Seasons.Intersect(b.rec.Seasons)
				if overlap.IsEmpty() {
					continue
				}
				key := pairKey(a.rec.ID(), b.rec.ID(), team, overlap)
				if _, dup := processed[key]; dup {
					rep.Duplicates++
					continue
				}
				processed[key] = struct{}{}

				status := core.ClassifyMentorStatus(a.level, b.level)
				_, err := g.AddEdge(a.rec.ID(), b.rec.ID(), core.Relation{
					Team:            team,
					Years:           overlap,
					SourcePosition:  a.rec.Position,
					TargetPosition:  b.rec.Position,
					SourceSeniority: a.level,
					TargetSeniority: b.level,
					Status:          status,
				})
				if err != nil {
					return nil, nil, fmt.Errorf("%w: %s→%s at %s: %v", ErrConstructFailed, a.rec.ID(), b.rec.ID(), team, err)
				}
				rep.ByStatus[status]++
			}
		}
	}
	rep.Vertices = g.VertexCount()
	rep.Edges = g.EdgeCount()

	byStatus := make(map[string]int, len(rep.ByStatus))
	for s, n := range rep.ByStatus {
		byStatus[s.String()] = n
	}
	cfg.metrics.ObserveBuild(rep.Accepted, len(rep.Skipped), len(rep.Unclassified), byStatus, time.Since(started))
	cfg.logger.Info("lineage graph built",
		"records", rep.Records, "coaches", rep.Vertices, "edges", rep.Edges,
		"skipped", len(rep.Skipped), "unclassified", len(rep.Unclassified))

	return g, rep, nil
}

// FromRaw normalizes raw records and builds the graph. Report.Skipped holds
// the records rejected by either step, ordered by source line.
func FromRaw(raws []roster.RawRecord, opts ...BuilderOption) (*core.Graph, *Report, error) {
	records, bad := roster.NormalizeAll(raws)
	cfg := newBuilderConfig(opts...)
	for _, dq := range bad {
		cfg.logger.Warn("skipping job record", "line", dq.Line, "coach", dq.Coach, "field", dq.Field, "err", dq.Err)
	}
	g, rep, err := Build(records, opts...)
	if err != nil {
		return nil, nil, err
	}
	rep.Records += len(bad)
	rep.Skipped = append(bad, rep.Skipped...)
	slices.SortStableFunc(rep.Skipped, func(a, b *roster.DataQualityError) int {
		return a.Line - b.Line
	})

	return g, rep, nil
}

func validate(i int, rec roster.JobRecord) *roster.DataQualityError {
	line := rec.Line
	if line == 0 {
		line = i + 1
	}
	dq := func(field, value string, err error) *roster.DataQualityError {
		return &roster.DataQualityError{Line: line, Coach: rec.Name, Field: field, Value: value, Err: err}
	}
	switch {
	case rec.ID() == "":
		return dq("name", rec.Name, roster.ErrMissingName)
	case rec.Team == "":
		return dq("team", rec.Team, roster.ErrMissingTeam)
	case rec.Seasons.IsEmpty():
		return dq("seasons", rec.Seasons.String(), season.ErrEmpty)
	}

	return nil
}

func pairKey(a, b, team string, overlap season.Years) string {
	return a + "\x00" + b + "\x00" + team + "\x00" + overlap.Key()
}
