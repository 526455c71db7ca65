// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating graph views.
// Determinism:
//   - Views keep every vertex (with its order key) and preserve edge IDs and
//     sequence numbers of the edges they keep.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

// Subgraph returns a new Graph holding every vertex of g and the edges for
// which keep returns true. A nil keep copies every edge. g is not mutated.
//
// keep runs on a snapshot of g's edges, in creation order, before the result
// is assembled, so it may freely query g.
// Complexity: O(V + E).
func Subgraph(g *Graph, keep func(*Edge) bool) *Graph {
	out := g.CloneEmpty()
	for _, e := range g.Edges() {
		if keep != nil && !keep(e) {
			continue
		}
		cp := *e
		linkEdge(out, &cp)
		if cp.seq > out.nextEdgeID {
			out.nextEdgeID = cp.seq
		}
	}

	return out
}

// WithoutEdges returns a copy of g lacking the edges whose IDs are in drop.
func WithoutEdges(g *Graph, drop map[string]struct{}) *Graph {
	return Subgraph(g, func(e *Edge) bool {
		_, gone := drop[e.ID]
		return !gone
	})
}

// InducedSubgraph returns a copy of g restricted to the vertices in keep and
// the edges with both endpoints kept.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	out := NewGraph()
	for _, v := range g.Vertices() {
		if keep[v.ID] {
			cp := v
			out.vertices[v.ID] = &cp
			ensureBuckets(out, v.ID)
		}
	}
	g.muVert.RLock()
	out.nextOrder = g.nextOrder
	g.muVert.RUnlock()
	out.nextEdgeID = g.lastEdgeSeq()
	for _, e := range g.Edges() {
		if keep[e.From] && keep[e.To] {
			cp := *e
			linkEdge(out, &cp)
		}
	}

	return out
}
