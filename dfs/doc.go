// SPDX-License-Identifier: MIT

// Package dfs implements depth-first walks over a lineage graph.
//
// DFS walks one side of a coach's lineage: TowardMentors goes back through
// the people they served under, TowardProteges builds their coaching tree.
// It supports cancellation, pre- and post-order hooks, a depth limit and an
// edge filter, and records discovery order, depths and the tree edges.
//
// DetectCycles reports mentorship cycles with the classic White/Gray/Black
// colouring and Booth's minimal rotation to deduplicate them.
//
// Complexity:
//
//   - DFS:          Time O(V+E), Memory O(V)
//   - DetectCycles: Time O(V+E+C·L), Memory O(V+L_max)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start coach not in graph
//   - ErrOptionViolation      negative depth or unknown direction
//   - context.Canceled        walk cancelled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
