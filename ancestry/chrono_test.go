// SPDX-License-Identifier: MIT

package ancestry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coachtree/ancestry"
	"github.com/katalvlaran/coachtree/builder"
	"github.com/katalvlaran/coachtree/core"
	"github.com/katalvlaran/coachtree/filter"
	"github.com/katalvlaran/coachtree/internal/testutil"
	"github.com/katalvlaran/coachtree/season"
)

// lineage returns the strict-filtered graph of testutil.Lineage.
func lineage(t *testing.T) *core.Graph {
	t.Helper()
	g, _, err := builder.Build(testutil.Lineage())
	require.NoError(t, err)
	out, _, err := filter.Apply(g, 2024)
	require.NoError(t, err)

	return out
}

// mentor adds "protege served under mentor" for the given seasons.
func mentor(t *testing.T, g *core.Graph, protege, mentor string, years ...int) {
	t.Helper()
	_, err := g.AddEdge(protege, mentor, core.Relation{Team: "T", Years: season.New(years...), Status: core.Mentor})
	require.NoError(t, err)
}

func TestExplore_Lineage(t *testing.T) {
	g := lineage(t)

	tree, err := ancestry.Explore(g, "X")
	require.NoError(t, err)
	assert.Equal(t, "X", tree.Root())
	assert.Equal(t, []string{"Y"}, tree.Reached())

	d, ok := tree.Distance("Y")
	require.True(t, ok)
	assert.Equal(t, 1, d)

	// Y only served under Z after X had left, so Z is not a chronological ancestor of X.
	_, ok = tree.Distance("Z")
	assert.False(t, ok)

	d, ok = tree.Distance("X")
	require.True(t, ok)
	assert.Equal(t, 0, d)
}

func TestExplore_LooserBoundRevisits(t *testing.T) {
	g := core.NewGraph()
	mentor(t, g, "A", "B", 2010)
	mentor(t, g, "A", "C", 2020)
	mentor(t, g, "C", "B", 2015)
	mentor(t, g, "B", "D", 2014)

	tree, err := ancestry.Explore(g, "A")
	require.NoError(t, err)

	d, ok := tree.Distance("B")
	require.True(t, ok)
	assert.Equal(t, 1, d)

	// D is reachable only through the later visit to B.
	p, ok := tree.PathTo("D")
	require.True(t, ok)
	assert.Equal(t, []string{"A", "C", "B", "D"}, p.Coaches)
	assert.Equal(t, 3, p.Len())
	assert.True(t, p.Chronological())
}

func TestExplore_PathsAreChronological(t *testing.T) {
	g := core.NewGraph()
	mentor(t, g, "A", "B", 2018, 2019)
	mentor(t, g, "B", "C", 2012, 2013)
	mentor(t, g, "B", "E", 2019)
	mentor(t, g, "C", "D", 2005)
	mentor(t, g, "E", "D", 2001)
	mentor(t, g, "D", "F", 2006)

	tree, err := ancestry.Explore(g, "A")
	require.NoError(t, err)
	for _, c := range tree.Reached() {
		p, ok := tree.PathTo(c)
		require.True(t, ok)
		assert.True(t, p.Chronological(), "path to %s", c)
		d, _ := tree.Distance(c)
		assert.Equal(t, d, p.Len())
	}
	// E's edge (2019) is not at or before B's earliest season (2018).
	_, ok := tree.Distance("E")
	assert.False(t, ok)
	_, ok = tree.Distance("F")
	assert.False(t, ok)
}

func TestExplore_Limits(t *testing.T) {
	g := core.NewGraph()
	mentor(t, g, "A", "B", 2012)
	mentor(t, g, "A", "E", 2012)
	mentor(t, g, "B", "C", 2011)
	mentor(t, g, "C", "D", 2010)

	tree, err := ancestry.Explore(g, "A", ancestry.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "E", "C"}, tree.Reached())

	tree, err = ancestry.Explore(g, "A", ancestry.WithMaxFanOut(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "D"}, tree.Reached())
}

func TestExplore_Errors(t *testing.T) {
	g := lineage(t)

	_, err := ancestry.Explore(nil, "X")
	assert.ErrorIs(t, err, ancestry.ErrGraphNil)
	_, err = ancestry.Explore(g, "")
	assert.ErrorIs(t, err, ancestry.ErrEmptyCoach)
	_, err = ancestry.Explore(g, "Nobody")
	assert.ErrorIs(t, err, ancestry.ErrCoachNotFound)
	_, err = ancestry.Explore(g, "X", ancestry.WithMaxDepth(-1))
	assert.ErrorIs(t, err, ancestry.ErrOptionViolation)
	_, err = ancestry.Explore(g, "X", ancestry.WithMaxFanOut(-3))
	assert.ErrorIs(t, err, ancestry.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ancestry.Explore(g, "X", ancestry.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestChronoPath(t *testing.T) {
	g := lineage(t)

	p, ok, err := ancestry.ChronoPath(g, "W", "Y")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"W", "Y"}, p.Coaches)
	require.Len(t, p.Edges, 1)
	assert.Equal(t, "State", p.Edges[0].Team)

	_, ok, err = ancestry.ChronoPath(g, "X", "Z")
	require.NoError(t, err)
	assert.False(t, ok)

	p, ok, err = ancestry.ChronoPath(g, "X", "X")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 0, p.Len())
}
