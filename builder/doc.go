// SPDX-License-Identifier: MIT

// Package builder turns coaching job records into the lineage multigraph.
//
// Algorithm (Build):
//
//  1. Records are validated; an unusable one is skipped and reported as a
//     *roster.DataQualityError. Every coach becomes a vertex in record order,
//     so Vertex.Order is the index of the coach's first record.
//  2. Each record's position is ranked once through a seniority.Classifier.
//     Unranked titles leave the level undefined and are reported once each.
//  3. Records are grouped by team. For every ordered pair (a, b) of records
//     of different coaches in a group, overlap = a.Seasons ∩ b.Seasons. An
//     empty overlap is skipped.
//  4. The key (a, b, team, overlap) is deduplicated, so the same pair of
//     tenures never produces a second edge.
//  5. Edge a→b is added with the overlap, both positions, both levels and
//     core.ClassifyMentorStatus(level(a), level(b)).
//
// Because the pair loop is ordered, both a→b and b→a exist for every shared
// tenure; at most one of them is Mentor.
//
// Options:
//
//	WithSeniority(m)  position ranking (default seniority.Default()).
//	WithLogger(l)     *slog.Logger for diagnostics (default: discard).
//	WithMetrics(c)    Prometheus collectors (default: none).
//
// Nothing in Build is fatal for dirty data: the Report carries every skipped
// record and unranked title, and Report.Err folds them into one error for
// callers that want it.
//
// Complexity: O(Σ g_t² · s) for team groups of size g_t and season sets of
// size s.
package builder
