// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a lineage core.Graph,
// returning hop distances, parent links, and visit order.
//
// The walk proceeds one generation at a time: every coach at hop d is
// visited before any coach at hop d+1, and neighbours are discovered in the
// edge order core.Graph reports. Direction picks the side of the lineage:
// TowardMentors (default) walks Graph.Mentors, TowardProteges walks
// Graph.Proteges. Hooks fire on discovery (OnEnqueue), before a visit
// (OnDequeue) and on the visit itself (OnVisit, which may abort).
// BFSResult.Generations regroups the visit order by hop count.
//
// Time plays no part here: this is plain reachability. The ancestry package
// uses it to shortlist candidate common ancestors before verifying them
// chronologically.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "Kirby Smart",
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterEdge(func(e *core.Edge) bool { return e.Status == core.Mentor }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start coach does not exist.
//   - ErrOptionViolation      on a negative MaxDepth or unknown Direction.
//   - ErrNeighbors            if edge iteration fails for any coach.
//   - Wrapped user-supplied hook errors from OnVisit.
//   - ctx.Err() on cancellation.
package bfs
