// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/coachtree/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs a depth-first walk from startID in the configured direction.
// Parallel edges to an already visited coach are ignored. On error the
// partial result is returned with Order cleared.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return nil, dopts.err
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	n := g.VertexCount()
	res := &DFSResult{
		Order:      make([]string, 0, n),
		Preorder:   make([]string, 0, n),
		Depth:      make(map[string]int, n),
		Parent:     make(map[string]string, n),
		ParentEdge: make(map[string]*core.Edge, n),
		Visited:    make(map[string]bool, n),
	}
	w := &dfsWalker{graph: g, opts: dopts, res: res}
	if err := w.traverse(startID, 0); err != nil {
		res.Order = nil
		return res, err
	}
	res.SkippedEdges = w.opts.SkippedEdges

	return res, nil
}

func (w *dfsWalker) edges(id string) ([]*core.Edge, error) {
	if w.opts.Direction == TowardProteges {
		return w.graph.Proteges(id)
	}

	return w.graph.Mentors(id)
}

func (w *dfsWalker) far(e *core.Edge) string {
	if w.opts.Direction == TowardProteges {
		return e.From
	}

	return e.To
}

// traverse visits id at depth and recurses into unvisited neighbours.
func (w *dfsWalker) traverse(id string, depth int) error {
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}

	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	w.res.Preorder = append(w.res.Preorder, id)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	if w.opts.MaxDepth == 0 || depth < w.opts.MaxDepth {
		edges, err := w.edges(id)
		if err != nil {
			return fmt.Errorf("dfs: neighbours of %q: %w", id, err)
		}
		for _, e := range edges {
			if !w.opts.FilterEdge(e) {
				w.opts.SkippedEdges++
				continue
			}
			nid := w.far(e)
			if w.res.Visited[nid] {
				continue
			}
			w.res.Parent[nid] = id
			w.res.ParentEdge[nid] = e
			if err = w.traverse(nid, depth+1); err != nil {
				return err
			}
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}
