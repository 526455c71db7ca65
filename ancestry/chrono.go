// SPDX-License-Identifier: MIT

package ancestry

import (
	"fmt"
	"math"

	"github.com/katalvlaran/coachtree/core"
)

// Path is a lineage path. Coaches[0] is the start; Edges[i] leads from
// Coaches[i] to Coaches[i+1].
type Path struct {
	Coaches []string
	Edges   []*core.Edge
}

// Len returns the number of edges on the path.
func (p Path) Len() int { return len(p.Edges) }

// Chronological reports whether every edge's seasons are all at or before
// the earliest season of the edge before it.
func (p Path) Chronological() bool {
	for i := 1; i < len(p.Edges); i++ {
		bound, _ := p.Edges[i-1].Years.Min()
		if !p.Edges[i].Years.AllAtMost(bound) {
			return false
		}
	}

	return true
}

// state is one (coach, bound) pair reached by the chronological BFS.
type state struct {
	coach  string
	bound  int
	depth  int
	edge   *core.Edge
	parent *state
}

// Tree is the result of a chronological exploration from one coach.
// It is immutable and safe for concurrent readers.
type Tree struct {
	root  string
	first map[string]*state
	order []string
}

// Root returns the start coach.
func (t *Tree) Root() string { return t.root }

// Reached returns every coach reached, root excluded, in discovery order.
func (t *Tree) Reached() []string { return append([]string(nil), t.order...) }

// Distance returns the shortest chronological distance to coach.
func (t *Tree) Distance(coach string) (int, bool) {
	s, ok := t.first[coach]
	if !ok {
		return 0, false
	}

	return s.depth, true
}

// PathTo returns the shortest chronological path from the root to coach.
func (t *Tree) PathTo(coach string) (Path, bool) {
	s, ok := t.first[coach]
	if !ok {
		return Path{}, false
	}
	n := s.depth
	p := Path{Coaches: make([]string, n+1), Edges: make([]*core.Edge, n)}
	for cur := s; cur != nil; cur = cur.parent {
		p.Coaches[cur.depth] = cur.coach
		if cur.edge != nil {
			p.Edges[cur.depth-1] = cur.edge
		}
	}

	return p, true
}

// Explore runs the chronological BFS from coach over the whole reachable
// lineage and returns the resulting Tree.
func Explore(g *core.Graph, coach string, opts ...Option) (*Tree, error) {
	o := newOptions(opts...)
	if err := validate(g, o, coach); err != nil {
		return nil, err
	}

	return explore(g, coach, "", o)
}

// ChronoPath returns the shortest chronological path from one coach back to
// another. ok is false when no such path exists. The search stops after the
// first level that reaches to.
func ChronoPath(g *core.Graph, from, to string, opts ...Option) (p Path, ok bool, err error) {
	o := newOptions(opts...)
	if err = validate(g, o, from, to); err != nil {
		return Path{}, false, err
	}
	t, err := explore(g, from, to, o)
	if err != nil {
		return Path{}, false, err
	}
	p, ok = t.PathTo(to)

	return p, ok, nil
}

// explore is the level-synchronised chronological BFS. When target is set it
// stops after the first complete level that contains target.
func explore(g *core.Graph, from, target string, o options) (*Tree, error) {
	root := &state{coach: from, bound: math.MaxInt}
	t := &Tree{root: from, first: map[string]*state{from: root}}
	if target == from {
		return t, nil
	}
	best := map[string]int{from: math.MaxInt}

	frontier := []*state{root}
	for depth := 0; len(frontier) > 0; depth++ {
		if o.maxDepth > 0 && depth >= o.maxDepth {
			break
		}
		if err := o.ctx.Err(); err != nil {
			return nil, err
		}

		var next []*state
		for _, s := range frontier {
			edges, err := g.Mentors(s.coach)
			if err != nil {
				return nil, fmt.Errorf("ancestry: mentors of %q: %w", s.coach, err)
			}
			admitted := 0
			for _, e := range edges {
				if !e.Years.AllAtMost(s.bound) {
					continue
				}
				if o.maxFanOut > 0 && admitted >= o.maxFanOut {
					break
				}
				admitted++

				lo, _ := e.Years.Min()
				if b, seen := best[e.To]; seen && b >= lo {
					continue
				}
				best[e.To] = lo
				ns := &state{coach: e.To, bound: lo, depth: depth + 1, edge: e, parent: s}
				next = append(next, ns)
				if _, ok := t.first[e.To]; !ok {
					t.first[e.To] = ns
					t.order = append(t.order, e.To)
				}
			}
		}
		if _, hit := t.first[target]; target != "" && hit {
			break
		}
		frontier = next
	}

	return t, nil
}

func validate(g *core.Graph, o options, coaches ...string) error {
	if g == nil {
		return ErrGraphNil
	}
	if o.err != nil {
		return o.err
	}
	for _, c := range coaches {
		if c == "" {
			return ErrEmptyCoach
		}
		if !g.HasVertex(c) {
			return fmt.Errorf("%w: %q", ErrCoachNotFound, c)
		}
	}

	return nil
}
