// SPDX-License-Identifier: MIT

package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/coachtree/core"
)

// ErrNeighbors is returned when the graph cannot list a coach's edges.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// walker holds the state of one traversal. The frontier is processed one
// generation at a time; next collects the coaches discovered from it.
type walker struct {
	g        *core.Graph
	o        BFSOptions
	frontier []string
	next     []string
	res      *BFSResult
}

// BFS explores g from startID one generation at a time.
//
// Returns ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
// ErrNeighbors, the context error, or a wrapped OnVisit error. On error the
// partial result is returned alongside it.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	n := g.VertexCount()
	w := &walker{
		g: g,
		o: o,
		res: &BFSResult{
			Order:      make([]string, 0, n),
			Depth:      make(map[string]int, n),
			Parent:     make(map[string]string, n),
			ParentEdge: make(map[string]string, n),
		},
	}
	w.discover(startID, 0, nil)
	w.frontier, w.next = w.next, nil

	for depth := 0; len(w.frontier) > 0; depth++ {
		if err := w.generation(depth); err != nil {
			return w.res, err
		}
		w.frontier, w.next = w.next, w.frontier[:0]
	}

	return w.res, nil
}

// generation visits every coach of the current frontier at depth and
// discovers the coaches one step further.
func (w *walker) generation(depth int) error {
	expand := w.o.MaxDepth == 0 || depth < w.o.MaxDepth
	for _, id := range w.frontier {
		if err := w.o.Ctx.Err(); err != nil {
			return err
		}
		w.o.OnDequeue(id, depth)
		w.res.Order = append(w.res.Order, id)
		if err := w.o.OnVisit(id, depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", id, err)
		}
		if !expand {
			continue
		}
		edges, err := w.edges(id)
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrNeighbors, id, err)
		}
		for _, e := range edges {
			if !w.o.FilterEdge(e) {
				continue
			}
			if far := w.far(e); !w.res.Reached(far) {
				w.discover(far, depth+1, e)
			}
		}
	}

	return nil
}

// discover records id at depth d, reached over via (nil for the start).
func (w *walker) discover(id string, d int, via *core.Edge) {
	w.res.Depth[id] = d
	if via != nil {
		w.res.Parent[id] = w.near(via)
		w.res.ParentEdge[id] = via.ID
	}
	w.o.OnEnqueue(id, d)
	w.next = append(w.next, id)
}

func (w *walker) edges(id string) ([]*core.Edge, error) {
	if w.o.Direction == TowardProteges {
		return w.g.Proteges(id)
	}

	return w.g.Mentors(id)
}

// far is the end of e the walk moves to, near the end it comes from.
func (w *walker) far(e *core.Edge) string {
	if w.o.Direction == TowardProteges {
		return e.From
	}

	return e.To
}

func (w *walker) near(e *core.Edge) string {
	if w.o.Direction == TowardProteges {
		return e.To
	}

	return e.From
}
