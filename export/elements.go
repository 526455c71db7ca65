// SPDX-License-Identifier: MIT

package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/katalvlaran/coachtree/core"
	"github.com/katalvlaran/coachtree/season"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("export: graph is nil")

// Namespace seeds the UUIDv5 edge identifiers.
var Namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/katalvlaran/coachtree/edge"))

// Node is one coach.
type Node struct {
	ID   string `json:"id"`
	Name string `json:"coach_name"`
}

// Edge is one mentorship relation.
type Edge struct {
	ID             string            `json:"id"`
	Description    string            `json:"description"`
	Source         string            `json:"source"`
	Target         string            `json:"target"`
	Team           string            `json:"team_of_connection"`
	Years          season.Years      `json:"years_of_connection"`
	MentorStatus   core.MentorStatus `json:"mentor_status"`
	SourcePosition string            `json:"source_position"`
	TargetPosition string            `json:"target_position"`
	SeniorityPair  [2]int            `json:"encoded_connection"`
	Canonical      bool              `json:"canonical"`
}

// Document holds the exported nodes and edges in graph order.
type Document struct {
	Nodes []Node
	Edges []Edge
}

// EdgeID returns the stable identifier of the relation source→target at team
// over years.
func EdgeID(source, target, team string, years season.Years) string {
	name := strings.Join([]string{source, target, team, years.Key()}, "\x1f")

	return uuid.NewSHA1(Namespace, []byte(name)).String()
}

// Elements exports g. With full unset only canonical edges are kept.
func Elements(g *core.Graph, full bool) (*Document, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	verts := g.Vertices()
	order := make(map[string]int, len(verts))
	doc := &Document{Nodes: make([]Node, 0, len(verts))}
	for _, v := range verts {
		order[v.ID] = v.Order
		doc.Nodes = append(doc.Nodes, nodeOf(v))
	}
	for _, e := range g.Edges() {
		rec := edgeOf(e, order[e.From] < order[e.To])
		if !full && !rec.Canonical {
			continue
		}
		doc.Edges = append(doc.Edges, rec)
	}

	return doc, nil
}

func nodeOf(v core.Vertex) Node {
	name := v.Name
	if name == "" {
		name = v.ID
	}

	return Node{ID: v.ID, Name: name}
}

func edgeOf(e *core.Edge, canonical bool) Edge {
	return Edge{
		ID:             EdgeID(e.From, e.To, e.Team, e.Years),
		Description:    fmt.Sprintf("%s -> %s", e.From, e.To),
		Source:         e.From,
		Target:         e.To,
		Team:           e.Team,
		Years:          e.Years,
		MentorStatus:   e.Status,
		SourcePosition: e.SourcePosition,
		TargetPosition: e.TargetPosition,
		SeniorityPair:  [2]int{int(e.SourceSeniority), int(e.TargetSeniority)},
		Canonical:      canonical,
	}
}
