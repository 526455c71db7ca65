// SPDX-License-Identifier: MIT

package testutil

import (
	"github.com/katalvlaran/coachtree/roster"
	"github.com/katalvlaran/coachtree/season"
)

// Job returns a record for coach name at team, holding position from first
// through last season inclusive.
func Job(name, team, position string, first, last int) roster.JobRecord {
	return roster.JobRecord{
		Name:      name,
		Team:      team,
		Position:  position,
		StartYear: first,
		EndYear:   last,
		Seasons:   season.Span(first, last),
	}
}

// Lineage is a small dataset with one valid and one anachronistic chain.
//
//	X served under Y at Tech (2010-2011); Y served under Z at Tech (2015-2016).
//	W served under Y at State (2009); Y was head coach there 2008-2009.
//	V and U share nobody with the rest.
func Lineage() []roster.JobRecord {
	return []roster.JobRecord{
		Job("Y", "Tech", "Head Coach", 2010, 2011),
		Job("X", "Tech", "Quarterbacks Coach", 2010, 2011),
		Job("Z", "Tech", "Head Coach", 2015, 2016),
		Job("Y", "Tech", "Offensive Coordinator", 2015, 2016),
		Job("Y", "State", "Head Coach", 2008, 2009),
		Job("W", "State", "Linebackers Coach", 2009, 2009),
		Job("V", "Coast", "Head Coach", 2012, 2013),
		Job("U", "Plains", "Head Coach", 2012, 2013),
	}
}
