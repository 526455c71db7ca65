// SPDX-License-Identifier: MIT

package staff

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/coachtree/core"
	"github.com/katalvlaran/coachtree/seniority"
)

// Sentinel errors.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("staff: graph is nil")

	// ErrStaffNotFound indicates no edge at the team covers the year.
	ErrStaffNotFound = errors.New("staff: no staff for team and year")
)

// Member is one coach on a staff.
type Member struct {
	Coach    string          `json:"coach"`
	Position string          `json:"position"`
	Level    seniority.Level `json:"level"`
}

// Tree is the seniority layering of one staff.
type Tree struct {
	Team string
	Year int

	// Levels are the defined seniority levels present, most senior first.
	Levels []seniority.Level

	// Roots are the coaches holding Levels[0], in first-seen order.
	Roots []string

	// Members lists every coach on the staff, by level then first appearance.
	// Coaches with an unranked position carry seniority.Undefined and sort last.
	Members []Member

	// Edges link each coach to the colleagues one level above, pointing from
	// the junior coach to the senior one.
	Edges []*core.Edge
}

// onStaff returns the edges at team whose seasons include year, in
// creation order.
func onStaff(g *core.Graph, team string, year int) ([]*core.Edge, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	var out []*core.Edge
	for _, e := range g.Edges() {
		if e.Team == team && e.Years.Contains(year) {
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s %d", ErrStaffNotFound, team, year)
	}

	return out, nil
}

// Graph returns the staff of team in year as a graph of its own: the coaches
// on that staff and the edges between them at team whose seasons include
// year. Vertex order keys are kept, so export's canonical flag still holds.
func Graph(g *core.Graph, team string, year int) (*core.Graph, error) {
	edges, err := onStaff(g, team, year)
	if err != nil {
		return nil, err
	}
	members := make(map[string]bool)
	for _, e := range edges {
		members[e.From], members[e.To] = true, true
	}
	atTeam := core.Subgraph(g, func(e *core.Edge) bool {
		return e.Team == team && e.Years.Contains(year)
	})

	return core.InducedSubgraph(atTeam, members), nil
}

// Levels returns the defined seniority levels present on the staff of team in
// year, sorted most senior first.
func Levels(g *core.Graph, team string, year int) ([]seniority.Level, error) {
	edges, err := onStaff(g, team, year)
	if err != nil {
		return nil, err
	}

	return levelsOf(edges), nil
}

func levelsOf(edges []*core.Edge) []seniority.Level {
	seen := make(map[seniority.Level]struct{})
	var out []seniority.Level
	for _, e := range edges {
		for _, l := range [2]seniority.Level{e.SourceSeniority, e.TargetSeniority} {
			if _, dup := seen[l]; dup || !l.Defined() {
				continue
			}
			seen[l] = struct{}{}
			out = append(out, l)
		}
	}
	slices.Sort(out)

	return out
}

// Hierarchy builds the staff tree of team in year.
func Hierarchy(g *core.Graph, team string, year int) (*Tree, error) {
	edges, err := onStaff(g, team, year)
	if err != nil {
		return nil, err
	}
	t := &Tree{Team: team, Year: year, Levels: levelsOf(edges)}
	index := make(map[seniority.Level]int, len(t.Levels))
	for i, l := range t.Levels {
		index[l] = i
	}

	members := make(map[string]Member)
	var order []string
	add := func(coach, position string, lvl seniority.Level) {
		if _, ok := members[coach]; ok {
			return
		}
		members[coach] = Member{Coach: coach, Position: position, Level: lvl}
		order = append(order, coach)
	}
	for _, e := range edges {
		add(e.From, e.SourcePosition, e.SourceSeniority)
		add(e.To, e.TargetPosition, e.TargetSeniority)

		src, okSrc := index[e.SourceSeniority]
		tgt, okTgt := index[e.TargetSeniority]
		if okSrc && okTgt && tgt == src-1 {
			t.Edges = append(t.Edges, e)
		}
	}

	for _, c := range order {
		m := members[c]
		t.Members = append(t.Members, m)
		if len(t.Levels) > 0 && m.Level == t.Levels[0] {
			t.Roots = append(t.Roots, c)
		}
	}
	slices.SortStableFunc(t.Members, func(a, b Member) int {
		return rank(a.Level) - rank(b.Level)
	})

	return t, nil
}

// rank orders Undefined after every defined level.
func rank(l seniority.Level) int {
	if !l.Defined() {
		return int(seniority.MaxLevel) + 1
	}

	return int(l)
}
