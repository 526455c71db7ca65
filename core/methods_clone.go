// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning, clearing and in-place filtering.
// Determinism:
//   - Clones keep vertex order keys, edge IDs and sequence numbers, and carry
//     nextEdgeID so new edges on a clone never collide with copied ones.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

import "sync/atomic"

// CloneEmpty returns a new Graph with the same vertices and no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	clone := NewGraph()
	clone.nextOrder = g.nextOrder
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	for id, v := range g.vertices {
		cp := *v
		clone.vertices[id] = &cp
		ensureBuckets(clone, id)
	}

	return clone
}

// Clone returns a deep copy of the Graph. Season sets are immutable and
// shared between the copies.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	return Subgraph(g, nil)
}
