// SPDX-License-Identifier: MIT

// Package coachtree traces coaching lineages: who learned the trade under
// whom, and which mentor two coaches have in common.
//
// Job records (coach, team, position, seasons) become a directed multigraph
// in which an edge a→b records that a and b shared a staff, with the
// seniority of both positions deciding whether b mentored a. Queries then
// run on a filtered copy of that graph.
//
//	season/      season-year sets and their two text encodings
//	roster/      job records, normalisation and the CSV loader
//	seniority/   position title → seniority level tables
//	core/        thread-safe lineage multigraph
//	builder/     records → graph, with a diagnostics Report
//	filter/      mentorship policy, as-of cut, current-staff reduction
//	bfs/, dfs/   traversals toward mentors or proteges
//	ancestry/    chronological lowest common ancestor search
//	staff/       staff hierarchies, careers and the team/season catalog
//	export/      graph and search results as Cytoscape-style JSON
//	metrics/     Prometheus collectors
//
// Quick ASCII example:
//
//	    Z (head coach 2015)
//	    │
//	    Y (head coach 2008-2011)
//	   ╱ ╲
//	  X   W
//
// X and W share Y as their closest chronological mentor. Z is not an
// ancestor of X: Y worked under Z only after X had left Y's staff.
//
// The coachtree command in cmd/coachtree wraps all of this in a CLI.
package coachtree
