// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle and queries.
// Determinism:
//   - Vertices() and VertexIDs() return first-insertion order (Vertex.Order asc).
// Concurrency:
//   - muVert guards the catalog; adjacency buckets are created under muEdgeAdj.

package core

import "sort"

// AddVertex inserts a coach with the given ID and display name. An empty
// name defaults to the ID. Adding an existing ID is a no-op that keeps the
// first name and ordering key.
func (g *Graph) AddVertex(id, name string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if name == "" {
		name = id
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, Name: name, Order: g.nextOrder}
	g.nextOrder++

	g.muEdgeAdj.Lock()
	ensureBuckets(g, id)
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns a copy of the vertex with the given ID.
func (g *Graph) Vertex(id string) (Vertex, error) {
	if id == "" {
		return Vertex{}, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, ErrVertexNotFound
	}

	return *v, nil
}

// Vertices returns copies of all vertices in first-insertion order.
func (g *Graph) Vertices() []Vertex {
	g.muVert.RLock()
	out := make([]Vertex, 0, len(g.vertices))
	for _, v := range g.vertices {
		out = append(out, *v)
	}
	g.muVert.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })

	return out
}

// VertexIDs returns all vertex IDs in first-insertion order.
func (g *Graph) VertexIDs() []string {
	vs := g.Vertices()
	ids := make([]string, len(vs))
	for i, v := range vs {
		ids[i] = v.ID
	}

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// RemoveVertex deletes the vertex and every incident edge.
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}
	for eid, e := range g.edges {
		if e.From == id || e.To == id {
			unlinkEdge(g, e)
			delete(g.edges, eid)
		}
	}
	delete(g.out, id)
	delete(g.in, id)
	delete(g.vertices, id)

	return nil
}

// ensureBuckets creates the outer adjacency buckets of id. Caller holds muEdgeAdj.
func ensureBuckets(g *Graph, id string) {
	if _, ok := g.out[id]; !ok {
		g.out[id] = make(map[string]map[string]struct{})
	}
	if _, ok := g.in[id]; !ok {
		g.in[id] = make(map[string]map[string]struct{})
	}
}
