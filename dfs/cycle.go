// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/coachtree/core"
)

// DetectCycles lists the simple mentorship cycles found by a three-colour
// walk over every coach along Mentors, restricted to edges keep accepts
// (all edges when keep is nil). Each cycle is closed ([a, b, a]) and rotated
// to its lexicographically smallest form; the list is sorted.
//
// In a mentor-only graph a cycle means two coaches each ranked above the
// other at some point, typically at different teams. The chronological
// search never follows one all the way round, but the cycle is worth
// reporting as a data curiosity.
//
// Like every back-edge enumeration this finds at least one cycle per
// strongly connected component, not every simple cycle.
func DetectCycles(g *core.Graph, keep func(*core.Edge) bool) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if keep == nil {
		keep = func(*core.Edge) bool { return true }
	}

	ids := g.VertexIDs()
	state := make(map[string]int, len(ids))
	path := make([]string, 0, len(ids))
	seen := make(map[string]struct{})
	var cycles [][]string

	var visit func(id string) error
	visit = func(id string) error {
		state[id] = Gray
		path = append(path, id)

		edges, err := g.Mentors(id)
		if err != nil {
			return fmt.Errorf("dfs: DetectCycles: mentors of %q: %w", id, err)
		}
		for _, e := range edges {
			if !keep(e) {
				continue
			}
			switch state[e.To] {
			case White:
				if err := visit(e.To); err != nil {
					return err
				}
			case Gray:
				idx := IndexOf(path, e.To)
				closed := append(append([]string(nil), path[idx:]...), e.To)
				sig, canon := canonical(closed)
				if _, dup := seen[sig]; !dup {
					seen[sig] = struct{}{}
					cycles = append(cycles, canon)
				}
			}
		}

		path = path[:len(path)-1]
		state[id] = Black

		return nil
	}

	for _, id := range ids {
		if state[id] == White {
			if err := visit(id); err != nil {
				return nil, err
			}
		}
	}
	sort.Slice(cycles, func(i, j int) bool {
		return strings.Join(cycles[i], ",") < strings.Join(cycles[j], ",")
	})

	return cycles, nil
}

// canonical rotates a closed directed cycle to its minimal form. Direction
// carries meaning here, so the reversed cycle is a different cycle.
func canonical(closed []string) (string, []string) {
	rot := MinimalRotation(closed[:len(closed)-1])
	out := append(rot, rot[0])

	return strings.Join(out, ","), out
}
