// SPDX-License-Identifier: MIT

package filter

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/coachtree/core"
)

// ErrGraphNil indicates a nil input graph.
var ErrGraphNil = errors.New("filter: graph is nil")

// ErrUnknownPolicy indicates an unrecognised policy name.
var ErrUnknownPolicy = errors.New("filter: unknown policy")

// Policy selects which mentor statuses survive MentorshipOnly.
type Policy int

// Policies.
const (
	// Strict keeps Mentor edges only.
	Strict Policy = iota
	// Permissive keeps Mentor and EqualStanding edges.
	Permissive
)

// String returns "strict" or "permissive".
func (p Policy) String() string {
	if p == Permissive {
		return "permissive"
	}

	return "strict"
}

// ParsePolicy parses "strict" or "permissive", case-insensitively.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict", "":
		return Strict, nil
	case "permissive":
		return Permissive, nil
	}

	return Strict, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// Admits reports whether status survives under p.
func (p Policy) Admits(status core.MentorStatus) bool {
	switch status {
	case core.Mentor:
		return true
	case core.EqualStanding:
		return p == Permissive
	default:
		return false
	}
}

// MentorshipOnly returns a copy of g holding only the edges p admits.
func MentorshipOnly(g *core.Graph, p Policy) *core.Graph {
	return core.Subgraph(g, mentorship(p))
}

// RemoveFuture returns a copy of g without the edges whose seasons are all
// later than asOf.
func RemoveFuture(g *core.Graph, asOf int) *core.Graph {
	return core.Subgraph(g, notFuture(asOf))
}

// RemoveCurrentStaff returns a copy of g without the edges at any of teams
// whose seasons include year.
func RemoveCurrentStaff(g *core.Graph, year int, teams ...string) *core.Graph {
	return core.Subgraph(g, notCurrentStaff(teams, year))
}

// TeamsOf returns every team coach worked for in year, in the creation order
// of the first edge touching coach at each team whose seasons include year.
// A coach who changed jobs mid-season has two. The result is empty when the
// coach is unknown or no such edge exists.
func TeamsOf(g *core.Graph, coach string, year int) []string {
	es, err := g.Incident(coach)
	if err != nil {
		return nil
	}
	var teams []string
	for _, e := range es {
		if e.Years.Contains(year) && !slices.Contains(teams, e.Team) {
			teams = append(teams, e.Team)
		}
	}

	return teams
}

// TeamOf returns the first team TeamsOf reports; ok is false when there is
// none.
func TeamOf(g *core.Graph, coach string, year int) (team string, ok bool) {
	teams := TeamsOf(g, coach, year)
	if len(teams) == 0 {
		return "", false
	}

	return teams[0], true
}

func mentorship(p Policy) func(*core.Edge) bool {
	return func(e *core.Edge) bool { return p.Admits(e.Status) }
}

func notFuture(asOf int) func(*core.Edge) bool {
	return func(e *core.Edge) bool { return !e.Years.AllAfter(asOf) }
}

func notCurrentStaff(teams []string, year int) func(*core.Edge) bool {
	return func(e *core.Edge) bool {
		return !(e.Years.Contains(year) && slices.Contains(teams, e.Team))
	}
}
