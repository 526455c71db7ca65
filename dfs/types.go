// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/coachtree/core"
)

// Vertex visitation states.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or
	// DetectCycles.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start coach is not in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Direction selects which side of the lineage a walk follows.
type Direction int

const (
	// TowardMentors follows Graph.Mentors, back in the lineage.
	TowardMentors Direction = iota
	// TowardProteges follows Graph.Proteges, building a coaching tree.
	TowardProteges
)

// Option configures DFS.
type Option func(*DFSOptions)

// DFSOptions holds the traversal parameters.
type DFSOptions struct {
	// Ctx allows cancellation; checked on every vertex entry.
	Ctx context.Context

	Direction Direction

	// OnVisit is invoked on discovery (pre-order) with the vertex depth.
	// Returning an error aborts traversal.
	OnVisit func(id string, depth int) error

	// OnExit is invoked after all descendants are explored (post-order).
	OnExit func(id string) error

	// MaxDepth limits recursion; 0 means unlimited.
	MaxDepth int

	// FilterEdge skips edges for which it returns false.
	FilterEdge func(e *core.Edge) bool

	// SkippedEdges counts edges rejected by FilterEdge.
	SkippedEdges int

	err error
}

// DefaultOptions returns Background context, TowardMentors, no hooks, no
// depth limit and no filtering.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:        context.Background(),
		Direction:  TowardMentors,
		FilterEdge: func(*core.Edge) bool { return true },
	}
}

// WithContext sets the cancellation context. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDirection selects the lineage side to follow.
func WithDirection(d Direction) Option {
	return func(o *DFSOptions) {
		if d != TowardMentors && d != TowardProteges {
			o.err = fmt.Errorf("%w: unknown direction %d", ErrOptionViolation, d)
			return
		}
		o.Direction = d
	}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *DFSOptions) { o.OnVisit = fn }
}

// WithOnExit installs a post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *DFSOptions) { o.OnExit = fn }
}

// WithMaxDepth limits the walk to d edges from the start; 0 disables the
// limit and a negative d is rejected.
func WithMaxDepth(d int) Option {
	return func(o *DFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterEdge skips edges when fn returns false. nil is ignored.
func WithFilterEdge(fn func(e *core.Edge) bool) Option {
	return func(o *DFSOptions) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}

// DFSResult captures a traversal.
type DFSResult struct {
	// Order lists vertices in finishing (post-order) sequence.
	Order []string

	// Preorder lists vertices in discovery sequence.
	Preorder []string

	// Depth is the tree depth at which each vertex was discovered.
	Depth map[string]int

	// Parent maps each discovered vertex to its tree parent; the start has none.
	Parent map[string]string

	// ParentEdge is the edge that discovered each vertex.
	ParentEdge map[string]*core.Edge

	Visited map[string]bool

	SkippedEdges int
}

// Children returns the tree children of id in discovery order.
func (r *DFSResult) Children(id string) []string {
	var out []string
	for _, v := range r.Preorder {
		if p, ok := r.Parent[v]; ok && p == id {
			out = append(out, v)
		}
	}

	return out
}
