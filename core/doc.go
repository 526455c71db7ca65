// SPDX-License-Identifier: MIT

// Package core defines the lineage graph: a thread-safe directed multigraph
// whose vertices are coaches and whose edges are shared tenures.
//
// An edge a→b says that a and b were on the same staff at one team for a
// non-empty set of seasons. Its Relation records that team, the overlapping
// seasons, both position titles, both seniority levels, and a MentorStatus
// computed from the levels when the edge was created:
//
//   - Mentor: b outranked a, so b mentored a.
//   - EqualStanding: same level.
//   - NotAMentor: a outranked b, or either level is undefined.
//
// Every shared tenure yields one edge in each direction, and two coaches who
// worked together at several teams are joined by several parallel edges.
//
// Direction and lineage:
//
//	Mentors(id)   edges leaving id; their targets are the coaches id served
//	              under. Walking these edges goes back in the lineage.
//	Proteges(id)  edges entering id; their sources served under id.
//
// Storage mirrors a classic adjacency-map multigraph:
//
//	out[from][to][edgeID] = struct{}{}
//	in[to][from][edgeID]  = struct{}{}
//
// giving O(1) insertion, removal and existence checks. Edge IDs are "e1",
// "e2", … from an atomic counter, and every listing (Vertices, Edges,
// Mentors, …) is deterministic: vertices by first-insertion order, edges by
// creation sequence. Clones and views keep IDs and sequence numbers, so
// results computed on a reduced graph map back to the canonical one.
//
// Concurrency: muVert guards vertices, muEdgeAdj guards edges and adjacency.
// All methods are safe for concurrent use. The lineage pipeline treats a
// built graph as read-only and derives reduced graphs with Subgraph or
// Clone, so concurrent queries never contend on writes.
//
// Errors:
//
//	ErrEmptyVertexID  - zero-length vertex ID.
//	ErrVertexNotFound - missing vertex.
//	ErrEdgeNotFound   - missing edge.
//	ErrLoopNotAllowed - from == to.
//	ErrEmptyYears     - relation without any shared season.
package core
