// SPDX-License-Identifier: MIT

// Package staff answers roster questions over a lineage graph: who was on
// one team's staff in one season, how that staff was layered by seniority,
// and what a single coach's career looked like year by year.
//
// Every answer is derived from edges alone. A coach appears on a staff for
// (team, year) when some edge at team carries year in its seasons. Coaches
// who never overlapped anyone are therefore invisible here, exactly as they
// are invisible to the lineage search.
//
// Hierarchy compares seniority by position in the sorted list of levels
// actually present, so a staff with levels 1, 2 and 5 still forms a tree:
// 5 is adjacent to 2.
package staff
