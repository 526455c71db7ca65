// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"

	"github.com/katalvlaran/coachtree/core"
	"github.com/katalvlaran/coachtree/season"
	"github.com/katalvlaran/coachtree/seniority"
)

// ExampleGraph_Mentors builds the two directed edges of one shared tenure
// and walks back from the junior coach.
func ExampleGraph_Mentors() {
	g := core.NewGraph()
	_ = g.AddVertex("smart", "Kirby Smart")
	_ = g.AddVertex("saban", "Nick Saban")

	years := season.New(2008, 2009, 2010)
	_, _ = g.AddEdge("smart", "saban", core.Relation{
		Team: "Alabama", Years: years,
		SourceSeniority: seniority.Coordinator, TargetSeniority: seniority.HeadCoach,
		Status: core.ClassifyMentorStatus(seniority.Coordinator, seniority.HeadCoach),
	})
	_, _ = g.AddEdge("saban", "smart", core.Relation{
		Team: "Alabama", Years: years,
		SourceSeniority: seniority.HeadCoach, TargetSeniority: seniority.Coordinator,
		Status: core.ClassifyMentorStatus(seniority.HeadCoach, seniority.Coordinator),
	})

	mentors, _ := g.Mentors("smart")
	for _, e := range mentors {
		fmt.Println(e.ID, e.To, e.Team, e.Years, e.Status)
	}
	back, _ := g.Mentors("saban")
	fmt.Println(back[0].Status)

	// Output:
	// e1 saban Alabama [2008 2009 2010] Mentor
	// Not a Mentor
}
