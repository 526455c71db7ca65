// SPDX-License-Identifier: MIT

// Package ancestry finds lowest common coaching ancestors under a
// chronological constraint.
//
// Walking back from a coach means following Graph.Mentors: the edge c→m says
// c served on m's staff during e.Years. A lineage path
//
//	c0 →e1→ c1 →e2→ c2 → … → ck
//
// is chronological when every edge happened no later than the one before it:
// all of e(i+1).Years ≤ min(e(i).Years). Ignoring this admits impossible
// lineages, such as a coach "inheriting" from someone their mentor only met
// years after mentoring them.
//
// The search runs in two phases.
//
//  1. Shortlist. Ancestors(a) and Ancestors(b) are plain reachability sets
//     along Mentors (package bfs), the start excluded. Their intersection,
//     in a's BFS order, is the candidate list. An empty list yields
//     NoSharedAncestors.
//  2. Verification. Explore runs a level-synchronised chronological BFS from
//     each start. States are (coach, bound) where bound is the minimum year
//     of the edge that reached the coach. A whole level is expanded before
//     any result is read, and a state is dropped when the same coach was
//     already reached, at this or an earlier level, with a bound at least as
//     large. The first state recorded for a coach is therefore at its
//     shortest chronological distance. Candidates unreachable from either
//     side are discarded; among survivors the smallest distA+distB wins,
//     ties going to the earlier candidate. No survivor yields
//     NoChronologicalPath.
//
// Neither outcome is an error. Errors are returned only for invalid input:
// nil graph, empty or unknown coach, identical coaches, bad options.
//
// WithMaxFanOut bounds the admissible edges expanded per state on very dense
// staffs; WithMaxDepth bounds the number of levels. Both trade completeness
// for time and are off by default.
//
// Searcher keeps an LRU cache of shortlists and exploration trees for one
// graph, so repeated queries about the same coaches skip recomputation. The
// graph must not change while a Searcher uses it.
package ancestry
