// SPDX-License-Identifier: MIT

// Package export turns lineage graphs and search results into flat
// presentation records and JSON.
//
// The element format is the one graph front-ends such as Cytoscape load: a
// list of {"data": {...}} objects, nodes first, then edges. Every edge carries
// a stable ID derived from its endpoints, team and seasons, so two exports of
// the same data agree on IDs regardless of build order.
//
// Each co-employment produces an edge in both directions. Elements(g, false)
// keeps only the canonical one, the direction whose source appeared first in
// the input, which halves the payload for display while losing nothing a
// viewer needs. Elements(g, true) keeps both for exploration.
package export
