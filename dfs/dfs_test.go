// SPDX-License-Identifier: MIT

package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coachtree/core"
	"github.com/katalvlaran/coachtree/dfs"
	"github.com/katalvlaran/coachtree/season"
)

// link adds protege→mentor with the given status.
func link(t testing.TB, g *core.Graph, protege, mentor string, status core.MentorStatus) {
	t.Helper()
	_, err := g.AddEdge(protege, mentor, core.Relation{Team: "T", Years: season.New(2010), Status: status})
	require.NoError(t, err)
}

// diamond: A served under B and C, both of whom served under D, who served
// under E and F.
func diamond(t testing.TB) *core.Graph {
	g := core.NewGraph()
	for _, p := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"D", "E"}, {"D", "F"}} {
		link(t, g, p[0], p[1], core.Mentor)
	}

	return g
}

func TestDFS_TowardMentors(t *testing.T) {
	res, err := dfs.DFS(diamond(t), "A")
	require.NoError(t, err)

	assert.Equal(t, []string{"E", "F", "D", "B", "C", "A"}, res.Order)
	assert.Equal(t, []string{"A", "B", "D", "E", "F", "C"}, res.Preorder)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "D": 2, "E": 3, "F": 3, "C": 1}, res.Depth)
	assert.Equal(t, "B", res.Parent["D"])
	assert.Equal(t, []string{"B", "C"}, res.Children("A"))
	assert.Equal(t, "D", res.ParentEdge["E"].From)
	assert.Zero(t, res.SkippedEdges)
}

func TestDFS_TowardProteges(t *testing.T) {
	res, err := dfs.DFS(diamond(t), "D", dfs.WithDirection(dfs.TowardProteges))
	require.NoError(t, err)

	assert.Equal(t, []string{"D", "B", "A", "C"}, res.Preorder)
	assert.Equal(t, []string{"B", "C"}, res.Children("D"))
	assert.Equal(t, "B", res.ParentEdge["B"].From)
	assert.False(t, res.Visited["E"])
}

func TestDFS_MaxDepth(t *testing.T) {
	res, err := dfs.DFS(diamond(t), "A", dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Preorder)
}

func TestDFS_FilterEdge(t *testing.T) {
	g := diamond(t)
	link(t, g, "A", "G", core.NotAMentor)

	res, err := dfs.DFS(g, "A", dfs.WithFilterEdge(func(e *core.Edge) bool {
		return e.Status == core.Mentor
	}))
	require.NoError(t, err)
	assert.False(t, res.Visited["G"])
	assert.Equal(t, 1, res.SkippedEdges)
}

func TestDFS_Hooks(t *testing.T) {
	var visits, exits []string
	_, err := dfs.DFS(diamond(t), "C",
		dfs.WithOnVisit(func(id string, depth int) error {
			visits = append(visits, id)
			return nil
		}),
		dfs.WithOnExit(func(id string) error {
			exits = append(exits, id)
			return nil
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "D", "E", "F"}, visits)
	assert.Equal(t, []string{"E", "F", "D", "C"}, exits)
}

func TestDFS_HookErrorStops(t *testing.T) {
	stop := errors.New("stop")
	res, err := dfs.DFS(diamond(t), "A", dfs.WithOnVisit(func(id string, _ int) error {
		if id == "D" {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	assert.Nil(t, res.Order)
	assert.True(t, res.Visited["D"])

	_, err = dfs.DFS(diamond(t), "A", dfs.WithOnExit(func(string) error { return stop }))
	assert.ErrorIs(t, err, stop)
}

func TestDFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.DFS(diamond(t), "A", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS(nil, "A")
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.DFS(diamond(t), "Nobody")
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)

	_, err = dfs.DFS(diamond(t), "A", dfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, dfs.ErrOptionViolation)

	_, err = dfs.DFS(diamond(t), "A", dfs.WithDirection(dfs.Direction(9)))
	assert.ErrorIs(t, err, dfs.ErrOptionViolation)
}
