// SPDX-License-Identifier: MIT

package ancestry

import (
	"time"

	"github.com/katalvlaran/coachtree/bfs"
	"github.com/katalvlaran/coachtree/core"
)

// Result is the outcome of LowestCommonAncestor. When Status is not Found,
// Ancestor is empty, TotalDistance is 0 and both paths are empty.
type Result struct {
	CoachA, CoachB string
	Status         Status
	Ancestor       string
	TotalDistance  int
	PathA, PathB   Path

	// Candidates is the number of shared ancestors before chronological
	// verification.
	Candidates int
}

// Ancestors returns every coach reachable from coach along Mentors, ignoring
// time, in BFS order. The coach itself is excluded.
func Ancestors(g *core.Graph, coach string, opts ...Option) ([]string, error) {
	o := newOptions(opts...)
	if err := validate(g, o, coach); err != nil {
		return nil, err
	}

	return ancestors(g, coach, o)
}

func ancestors(g *core.Graph, coach string, o options) ([]string, error) {
	res, err := bfs.BFS(g, coach,
		bfs.WithContext(o.ctx),
		bfs.WithDirection(bfs.TowardMentors),
		bfs.WithMaxDepth(o.maxDepth),
	)
	if err != nil {
		return nil, err
	}

	return res.Order[1:], nil
}

// LowestCommonAncestor finds the shared lineage ancestor of a and b with the
// smallest combined chronological distance.
func LowestCommonAncestor(g *core.Graph, a, b string, opts ...Option) (*Result, error) {
	o := newOptions(opts...)
	s := &search{
		g: g,
		o: o,
		shortlist: func(c string) ([]string, error) {
			return ancestors(g, c, o)
		},
		explore: func(c string) (*Tree, error) {
			return explore(g, c, "", o)
		},
	}

	return s.run(a, b)
}

// search wires the two phases to their data sources, cached or not.
type search struct {
	g         *core.Graph
	o         options
	shortlist func(coach string) ([]string, error)
	explore   func(coach string) (*Tree, error)
}

func (s *search) run(a, b string) (*Result, error) {
	if err := validate(s.g, s.o, a, b); err != nil {
		return nil, err
	}
	if a == b {
		return nil, ErrSameCoach
	}
	started := time.Now()
	res := &Result{CoachA: a, CoachB: b}
	defer func() {
		s.o.collectors.ObserveSearch(res.Status.String(), time.Since(started))
	}()

	ancA, err := s.shortlist(a)
	if err != nil {
		return nil, err
	}
	ancB, err := s.shortlist(b)
	if err != nil {
		return nil, err
	}
	inB := make(map[string]struct{}, len(ancB))
	for _, c := range ancB {
		inB[c] = struct{}{}
	}
	var candidates []string
	for _, c := range ancA {
		if _, ok := inB[c]; ok {
			candidates = append(candidates, c)
		}
	}
	res.Candidates = len(candidates)
	if len(candidates) == 0 {
		res.Status = NoSharedAncestors
		s.o.logger.Debug("no shared ancestors", "a", a, "b", b, "ancestors_a", len(ancA), "ancestors_b", len(ancB))
		return res, nil
	}

	treeA, err := s.explore(a)
	if err != nil {
		return nil, err
	}
	treeB, err := s.explore(b)
	if err != nil {
		return nil, err
	}

	best, bestTotal := "", 0
	for _, c := range candidates {
		dA, okA := treeA.Distance(c)
		dB, okB := treeB.Distance(c)
		if !okA || !okB {
			continue
		}
		if best == "" || dA+dB < bestTotal {
			best, bestTotal = c, dA+dB
		}
	}
	s.o.logger.Debug("ancestor candidates verified", "a", a, "b", b, "candidates", len(candidates), "ancestor", best)
	if best == "" {
		res.Status = NoChronologicalPath
		return res, nil
	}

	res.Status = Found
	res.Ancestor = best
	res.TotalDistance = bestTotal
	res.PathA, _ = treeA.PathTo(best)
	res.PathB, _ = treeB.PathTo(best)

	return res, nil
}
