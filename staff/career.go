// SPDX-License-Identifier: MIT

package staff

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/coachtree/core"
)

// Job is one season of a coach's career.
type Job struct {
	Coach    string `json:"coach"`
	Team     string `json:"team"`
	Position string `json:"position"`
	Year     int    `json:"year"`
}

// Sentence renders the job for display.
func (j Job) Sentence() string {
	return fmt.Sprintf("%s coached for %s as the %s in %d", j.Coach, j.Team, j.Position, j.Year)
}

// Career returns one Job per season coach worked alongside someone, most
// recent first. When several edges cover the same season, the earliest
// created edge decides team and position.
func Career(g *core.Graph, coach string) ([]Job, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	v, err := g.Vertex(coach)
	if err != nil {
		return nil, fmt.Errorf("staff: career of %q: %w", coach, err)
	}
	name := v.Name
	if name == "" {
		name = v.ID
	}
	edges, err := g.Incident(coach)
	if err != nil {
		return nil, fmt.Errorf("staff: career of %q: %w", coach, err)
	}

	seen := make(map[int]struct{})
	var jobs []Job
	for _, e := range edges {
		position := e.TargetPosition
		if e.From == coach {
			position = e.SourcePosition
		}
		for _, y := range e.Years.Values() {
			if _, dup := seen[y]; dup {
				continue
			}
			seen[y] = struct{}{}
			jobs = append(jobs, Job{Coach: name, Team: e.Team, Position: position, Year: y})
		}
	}
	slices.SortStableFunc(jobs, func(a, b Job) int { return cmp.Compare(b.Year, a.Year) })

	return jobs, nil
}

// Index lists the teams and seasons present in a graph.
type Index struct {
	// Teams in ascending order.
	Teams []string `json:"teams"`
	// Years in descending order.
	Years []int `json:"years"`
}

// Catalog collects every team and season that appears on an edge.
func Catalog(g *core.Graph) (Index, error) {
	if g == nil {
		return Index{}, ErrGraphNil
	}
	teams := make(map[string]struct{})
	years := make(map[int]struct{})
	for _, e := range g.Edges() {
		teams[e.Team] = struct{}{}
		for _, y := range e.Years.Values() {
			years[y] = struct{}{}
		}
	}
	var idx Index
	for t := range teams {
		idx.Teams = append(idx.Teams, t)
	}
	for y := range years {
		idx.Years = append(idx.Years, y)
	}
	slices.Sort(idx.Teams)
	slices.SortFunc(idx.Years, func(a, b int) int { return cmp.Compare(b, a) })

	return idx, nil
}
