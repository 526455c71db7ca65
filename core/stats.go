// SPDX-License-Identifier: MIT

package core

import "sync/atomic"

// Stats summarises a graph.
type Stats struct {
	Vertices int
	Edges    int
	Teams    int
	ByStatus map[MentorStatus]int
}

// Stats computes vertex, edge, team and per-status counts.
func (g *Graph) Stats() Stats {
	s := Stats{Vertices: g.VertexCount(), ByStatus: make(map[MentorStatus]int, 3)}
	teams := make(map[string]struct{})
	for _, e := range g.Edges() {
		s.Edges++
		s.ByStatus[e.Status]++
		teams[e.Team] = struct{}{}
	}
	s.Teams = len(teams)

	return s
}

func (g *Graph) lastEdgeSeq() uint64 {
	return atomic.LoadUint64(&g.nextEdgeID)
}
