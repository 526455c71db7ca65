// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Directional adjacency queries (mentor side / protégé side) and degrees.
// Determinism:
//   - Every edge listing is in creation order (Edge.Seq asc).
// Concurrency:
//   - Read locks only.

package core

// OutEdges returns the edges leaving id.
func (g *Graph) OutEdges(id string) ([]*Edge, error) {
	return g.collect(id, g.out)
}

// InEdges returns the edges entering id.
func (g *Graph) InEdges(id string) ([]*Edge, error) {
	return g.collect(id, g.in)
}

// Mentors returns the lineage predecessors of id: the edges id→m for every
// staff relation id had, where m is the colleague on the other end. With
// Status == Mentor, m mentored id. Walking Mentors goes back in the lineage.
func (g *Graph) Mentors(id string) ([]*Edge, error) {
	return g.OutEdges(id)
}

// Proteges returns the edges p→id, the lineage successors of id.
func (g *Graph) Proteges(id string) ([]*Edge, error) {
	return g.InEdges(id)
}

// Incident returns every edge touching id, in creation order.
func (g *Graph) Incident(id string) ([]*Edge, error) {
	out, err := g.OutEdges(id)
	if err != nil {
		return nil, err
	}
	in, _ := g.InEdges(id)
	all := append(out, in...)
	sortBySeq(all)

	return all, nil
}

// EdgesBetween returns the parallel edges from→to.
func (g *Graph) EdgesBetween(from, to string) []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	inner := g.out[from][to]
	out := make([]*Edge, 0, len(inner))
	for eid := range inner {
		out = append(out, g.edges[eid])
	}
	sortBySeq(out)

	return out
}

func (g *Graph) collect(id string, adj map[string]map[string]map[string]struct{}) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	out := make([]*Edge, 0, len(adj[id]))
	for _, inner := range adj[id] {
		for eid := range inner {
			out = append(out, g.edges[eid])
		}
	}
	g.muEdgeAdj.RUnlock()
	sortBySeq(out)

	return out, nil
}
