// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/RemoveEdges/HasEdge/GetEdge/Edges.
// Determinism:
//   - Edges() returns edges in creation order (Edge.Seq asc).
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock, reads under its read lock.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

const edgeIDPrefix = "e"

// AddEdge creates the edge from→to carrying rel and returns its ID.
// Missing endpoints are added with the ID as display name.
//
// Returns ErrEmptyVertexID, ErrLoopNotAllowed, ErrEmptyYears.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, rel Relation) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}
	if rel.Years.IsEmpty() {
		return "", ErrEmptyYears
	}
	if err := g.AddVertex(from, ""); err != nil {
		return "", err
	}
	if err := g.AddVertex(to, ""); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	seq := atomic.AddUint64(&g.nextEdgeID, 1)
	e := &Edge{ID: edgeIDPrefix + strconv.FormatUint(seq, 10), From: from, To: to, Relation: rel, seq: seq}
	linkEdge(g, e)

	return e.ID, nil
}

// RemoveEdge deletes one edge.
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	unlinkEdge(g, e)

	return nil
}

// RemoveEdges deletes every listed edge that exists and returns how many
// were removed. Unknown IDs are ignored.
func (g *Graph) RemoveEdges(eids []string) int {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	n := 0
	for _, eid := range eids {
		if e, ok := g.edges[eid]; ok {
			unlinkEdge(g, e)
			n++
		}
	}

	return n
}

// HasEdge reports whether at least one edge from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.out[from][to]) > 0
}

// GetEdge returns the edge with the given ID. The returned *Edge must be
// treated as read-only.
func (g *Graph) GetEdge(eid string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges in creation order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	g.muEdgeAdj.RUnlock()
	sortBySeq(out)

	return out
}

// EdgeCount returns the total number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// linkEdge stores e in the catalog and both adjacency maps. Caller holds muEdgeAdj.
func linkEdge(g *Graph, e *Edge) {
	g.edges[e.ID] = e
	ensureBuckets(g, e.From)
	ensureBuckets(g, e.To)
	if g.out[e.From][e.To] == nil {
		g.out[e.From][e.To] = make(map[string]struct{})
	}
	g.out[e.From][e.To][e.ID] = struct{}{}
	if g.in[e.To][e.From] == nil {
		g.in[e.To][e.From] = make(map[string]struct{})
	}
	g.in[e.To][e.From][e.ID] = struct{}{}
}

// unlinkEdge removes e from the catalog and both adjacency maps, dropping
// empty inner buckets. Caller holds muEdgeAdj.
func unlinkEdge(g *Graph, e *Edge) {
	delete(g.edges, e.ID)
	if inner := g.out[e.From][e.To]; inner != nil {
		delete(inner, e.ID)
		if len(inner) == 0 {
			delete(g.out[e.From], e.To)
		}
	}
	if inner := g.in[e.To][e.From]; inner != nil {
		delete(inner, e.ID)
		if len(inner) == 0 {
			delete(g.in[e.To], e.From)
		}
	}
}

func sortBySeq(es []*Edge) {
	sort.Slice(es, func(i, j int) bool { return es[i].seq < es[j].seq })
}
