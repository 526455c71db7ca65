// SPDX-License-Identifier: MIT

package export

import (
	"github.com/katalvlaran/coachtree/ancestry"
	"github.com/katalvlaran/coachtree/core"
)

// Path is the presentation form of an ancestry.Path.
type Path struct {
	Coaches []string `json:"coaches"`
	Edges   []Edge   `json:"edges"`
}

// Result is the presentation form of an ancestry.Result. Ancestor and
// TotalDistance are nil (JSON null) unless Status is Found.
type Result struct {
	CoachA        string          `json:"coach_a"`
	CoachB        string          `json:"coach_b"`
	Status        ancestry.Status `json:"status"`
	Ancestor      *string         `json:"ancestor"`
	TotalDistance *int            `json:"total_distance"`
	Candidates    int             `json:"candidates"`
	PathA         Path            `json:"path_a"`
	PathB         Path            `json:"path_b"`
}

// FromResult converts res; g supplies the vertex order for the canonical flag.
func FromResult(g *core.Graph, res *ancestry.Result) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	order := make(map[string]int)
	for _, v := range g.Vertices() {
		order[v.ID] = v.Order
	}
	conv := func(p ancestry.Path) Path {
		out := Path{Coaches: append([]string{}, p.Coaches...), Edges: make([]Edge, 0, len(p.Edges))}
		for _, e := range p.Edges {
			out.Edges = append(out.Edges, edgeOf(e, order[e.From] < order[e.To]))
		}
		return out
	}

	out := &Result{
		CoachA:     res.CoachA,
		CoachB:     res.CoachB,
		Status:     res.Status,
		Candidates: res.Candidates,
		PathA:      conv(res.PathA),
		PathB:      conv(res.PathB),
	}
	if res.Status == ancestry.Found {
		ancestor, dist := res.Ancestor, res.TotalDistance
		out.Ancestor, out.TotalDistance = &ancestor, &dist
	}

	return out, nil
}
