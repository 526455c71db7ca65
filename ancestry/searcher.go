// SPDX-License-Identifier: MIT

package ancestry

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"

	"github.com/katalvlaran/coachtree/core"
)

// DefaultCacheSize is the number of cached entries used when NewSearcher is
// given a non-positive size.
const DefaultCacheSize = 256

// cache key prefixes
const (
	shortlistKey = "a:"
	treeKey      = "t:"
)

// Searcher answers repeated queries against one graph, caching shortlists
// and exploration trees per coach. It is safe for concurrent use.
type Searcher struct {
	g     *core.Graph
	o     options
	cache *lru.Cache
}

// NewSearcher returns a Searcher over g. Options apply to every query.
func NewSearcher(g *core.Graph, cacheSize int, opts ...Option) (*Searcher, error) {
	o := newOptions(opts...)
	if g == nil {
		return nil, ErrGraphNil
	}
	if o.err != nil {
		return nil, o.err
	}
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, fmt.Errorf("ancestry: create cache: %w", err)
	}

	return &Searcher{g: g, o: o, cache: cache}, nil
}

// Ancestors is the cached form of the package-level Ancestors.
func (s *Searcher) Ancestors(coach string) ([]string, error) {
	if err := validate(s.g, s.o, coach); err != nil {
		return nil, err
	}
	out, err := s.shortlist(coach)
	if err != nil {
		return nil, err
	}

	return append([]string(nil), out...), nil
}

// Explore is the cached form of the package-level Explore.
func (s *Searcher) Explore(coach string) (*Tree, error) {
	if err := validate(s.g, s.o, coach); err != nil {
		return nil, err
	}

	return s.explore(coach)
}

// LowestCommonAncestor is the cached form of the package-level function.
func (s *Searcher) LowestCommonAncestor(a, b string) (*Result, error) {
	q := &search{g: s.g, o: s.o, shortlist: s.shortlist, explore: s.explore}

	return q.run(a, b)
}

// Purge drops every cached entry.
func (s *Searcher) Purge() { s.cache.Purge() }

// Len returns the number of cached entries.
func (s *Searcher) Len() int { return s.cache.Len() }

func (s *Searcher) shortlist(coach string) ([]string, error) {
	if v, ok := s.cache.Get(shortlistKey + coach); ok {
		s.o.collectors.ObserveShortlist(true)
		return v.([]string), nil
	}
	s.o.collectors.ObserveShortlist(false)
	out, err := ancestors(s.g, coach, s.o)
	if err != nil {
		return nil, err
	}
	s.cache.Add(shortlistKey+coach, out)

	return out, nil
}

func (s *Searcher) explore(coach string) (*Tree, error) {
	if v, ok := s.cache.Get(treeKey + coach); ok {
		return v.(*Tree), nil
	}
	t, err := explore(s.g, coach, "", s.o)
	if err != nil {
		return nil, err
	}
	s.cache.Add(treeKey+coach, t)

	return t, nil
}
