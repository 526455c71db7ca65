// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/coachtree/core"
)

// Sentinel errors.
var (
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")
	ErrGraphNil            = errors.New("bfs: graph is nil")
	ErrOptionViolation     = errors.New("bfs: invalid option supplied")
)

// Direction selects which side of the lineage the walk follows.
type Direction int

const (
	// TowardMentors walks Graph.Mentors, back in the lineage.
	TowardMentors Direction = iota
	// TowardProteges walks Graph.Proteges, forward in the lineage.
	TowardProteges
)

// Option mutates BFSOptions. An invalid value is remembered and reported
// by BFS as ErrOptionViolation.
type Option func(*BFSOptions)

// BFSOptions configures a traversal. Hooks are never nil after
// DefaultOptions.
type BFSOptions struct {
	Ctx       context.Context
	Direction Direction

	// OnEnqueue fires when a coach is discovered, OnDequeue right before it
	// is visited. OnVisit may abort the walk by returning an error.
	OnEnqueue func(id string, depth int)
	OnDequeue func(id string, depth int)
	OnVisit   func(id string, depth int) error

	// MaxDepth caps the hop count; 0 means no cap.
	MaxDepth int

	// FilterEdge drops edges for which it returns false.
	FilterEdge func(e *core.Edge) bool

	err error
}

// DefaultOptions walks toward mentors, unbounded and unfiltered, under
// context.Background.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:        context.Background(),
		Direction:  TowardMentors,
		OnEnqueue:  func(string, int) {},
		OnDequeue:  func(string, int) {},
		OnVisit:    func(string, int) error { return nil },
		FilterEdge: func(*core.Edge) bool { return true },
	}
}

// WithContext sets the cancellation context. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDirection sets the direction of travel.
func WithDirection(d Direction) Option {
	return func(o *BFSOptions) {
		if d != TowardMentors && d != TowardProteges {
			o.err = fmt.Errorf("%w: unknown direction %d", ErrOptionViolation, d)
			return
		}
		o.Direction = d
	}
}

// WithOnEnqueue installs the discovery hook.
func WithOnEnqueue(fn func(id string, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue installs the pre-visit hook.
func WithOnDequeue(fn func(id string, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit installs the visit hook; its error stops the walk.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth caps the walk at d hops. 0 removes the cap; negative d is
// rejected.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterEdge skips edges when fn returns false.
func WithFilterEdge(fn func(e *core.Edge) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}

// BFSResult is the outcome of a traversal.
type BFSResult struct {
	// Order lists coaches in visit sequence, the start first.
	Order []string

	// Depth is the hop count from the start.
	Depth map[string]int

	// Parent and ParentEdge record the coach and edge ID each coach was
	// first reached from. The start has neither.
	Parent     map[string]string
	ParentEdge map[string]string
}

// Reached reports whether id was discovered.
func (r *BFSResult) Reached(id string) bool {
	_, ok := r.Depth[id]
	return ok
}

// Generations groups the visited coaches by depth, in visit order.
func (r *BFSResult) Generations() [][]string {
	var out [][]string
	for _, id := range r.Order {
		d := r.Depth[id]
		for len(out) <= d {
			out = append(out, nil)
		}
		out[d] = append(out[d], id)
	}

	return out
}

// PathTo returns the coaches from the start to dest along parent links.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	path := []string{dest}
	for cur := dest; ; {
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	slices.Reverse(path)

	return path, nil
}
