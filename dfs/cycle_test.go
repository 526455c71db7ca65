// SPDX-License-Identifier: MIT

package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coachtree/core"
	"github.com/katalvlaran/coachtree/dfs"
)

func mentorOnly(e *core.Edge) bool { return e.Status == core.Mentor }

func TestDetectCycles_Acyclic(t *testing.T) {
	cycles, err := dfs.DetectCycles(diamond(t), nil)
	require.NoError(t, err)
	assert.Empty(t, cycles)
}

func TestDetectCycles_TwoCoaches(t *testing.T) {
	g := core.NewGraph()
	link(t, g, "A", "B", core.Mentor)
	link(t, g, "B", "A", core.Mentor)

	cycles, err := dfs.DetectCycles(g, nil)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B", "A"}}, cycles)
}

func TestDetectCycles_Rotated(t *testing.T) {
	g := core.NewGraph()
	link(t, g, "C", "A", core.Mentor)
	link(t, g, "A", "B", core.Mentor)
	link(t, g, "B", "C", core.Mentor)

	cycles, err := dfs.DetectCycles(g, nil)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B", "C", "A"}}, cycles)
}

func TestDetectCycles_Filtered(t *testing.T) {
	g := core.NewGraph()
	link(t, g, "A", "B", core.Mentor)
	link(t, g, "B", "A", core.NotAMentor)

	all, err := dfs.DetectCycles(g, nil)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	strict, err := dfs.DetectCycles(g, mentorOnly)
	require.NoError(t, err)
	assert.Empty(t, strict)
}

func TestDetectCycles_Sorted(t *testing.T) {
	g := core.NewGraph()
	link(t, g, "Y", "Z", core.Mentor)
	link(t, g, "Z", "Y", core.Mentor)
	link(t, g, "B", "A", core.Mentor)
	link(t, g, "A", "B", core.Mentor)

	cycles, err := dfs.DetectCycles(g, nil)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B", "A"}, {"Y", "Z", "Y"}}, cycles)
}

func TestDetectCycles_NilGraph(t *testing.T) {
	_, err := dfs.DetectCycles(nil, nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestMinimalRotation(t *testing.T) {
	assert.Equal(t, []string{"A", "B", "C"}, dfs.MinimalRotation([]string{"B", "C", "A"}))
	assert.Equal(t, []string{"A", "A", "B"}, dfs.MinimalRotation([]string{"A", "B", "A"}))
	assert.Nil(t, dfs.MinimalRotation(nil))
	assert.Equal(t, 1, dfs.IndexOf([]string{"x", "y"}, "y"))
	assert.Equal(t, -1, dfs.IndexOf([]string{"x"}, "z"))
}
