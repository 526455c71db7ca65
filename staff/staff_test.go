// SPDX-License-Identifier: MIT

package staff_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coachtree/builder"
	"github.com/katalvlaran/coachtree/core"
	"github.com/katalvlaran/coachtree/internal/testutil"
	"github.com/katalvlaran/coachtree/roster"
	"github.com/katalvlaran/coachtree/seniority"
	"github.com/katalvlaran/coachtree/staff"
)

// staffGraph: Tech 2012 has levels 1, 2 and 5 plus one unranked title.
func staffGraph(t *testing.T) *core.Graph {
	t.Helper()
	g, _, err := builder.Build([]roster.JobRecord{
		testutil.Job("A", "Tech", "Head Coach", 2011, 2013),
		testutil.Job("B", "Tech", "Offensive Coordinator", 2012, 2013),
		testutil.Job("C", "Tech", "Graduate Assistant", 2012, 2012),
		testutil.Job("D", "Tech", "Water Boy", 2012, 2012),
		testutil.Job("A", "State", "Head Coach", 2010, 2010),
		testutil.Job("E", "State", "Quarterbacks Coach", 2010, 2010),
	})
	require.NoError(t, err)

	return g
}

func TestLevels(t *testing.T) {
	g := staffGraph(t)

	lv, err := staff.Levels(g, "Tech", 2012)
	require.NoError(t, err)
	assert.Equal(t, []seniority.Level{seniority.HeadCoach, seniority.Coordinator, seniority.Support}, lv)

	lv, err = staff.Levels(g, "Tech", 2013)
	require.NoError(t, err)
	assert.Equal(t, []seniority.Level{seniority.HeadCoach, seniority.Coordinator}, lv)

	_, err = staff.Levels(g, "Tech", 1999)
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)
	_, err = staff.Levels(nil, "Tech", 2012)
	assert.ErrorIs(t, err, staff.ErrGraphNil)
}

func TestHierarchy_NonContiguousLevels(t *testing.T) {
	g := staffGraph(t)

	tree, err := staff.Hierarchy(g, "Tech", 2012)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, tree.Roots)

	wantMembers := []staff.Member{
		{Coach: "A", Position: "Head Coach", Level: seniority.HeadCoach},
		{Coach: "B", Position: "Offensive Coordinator", Level: seniority.Coordinator},
		{Coach: "C", Position: "Graduate Assistant", Level: seniority.Support},
		{Coach: "D", Position: "Water Boy", Level: seniority.Undefined},
	}
	if diff := cmp.Diff(wantMembers, tree.Members); diff != "" {
		t.Errorf("members mismatch (-want +got):\n%s", diff)
	}

	// Level 5 hangs off level 2 because 3 and 4 are absent.
	var links [][2]string
	for _, e := range tree.Edges {
		links = append(links, [2]string{e.From, e.To})
	}
	assert.Equal(t, [][2]string{{"B", "A"}, {"C", "B"}}, links)
}

func TestGraph(t *testing.T) {
	g := staffGraph(t)

	sub, err := staff.Graph(g, "Tech", 2013)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, sub.VertexIDs())
	require.Equal(t, 2, sub.EdgeCount())
	for _, e := range sub.Edges() {
		assert.Equal(t, "Tech", e.Team)
		assert.True(t, e.Years.Contains(2013))
	}

	sub, err = staff.Graph(g, "Tech", 2012)
	require.NoError(t, err)
	assert.Equal(t, 4, sub.VertexCount())
	assert.Equal(t, 12, sub.EdgeCount())
	assert.False(t, sub.HasVertex("E"))
	assert.Equal(t, 14, g.EdgeCount())

	_, err = staff.Graph(g, "Nowhere", 2012)
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)
}

func TestHierarchy_Missing(t *testing.T) {
	_, err := staff.Hierarchy(staffGraph(t), "Nowhere", 2012)
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)
}

func TestCareer(t *testing.T) {
	g := staffGraph(t)

	jobs, err := staff.Career(g, "A")
	require.NoError(t, err)
	want := []staff.Job{
		{Coach: "A", Team: "Tech", Position: "Head Coach", Year: 2013},
		{Coach: "A", Team: "Tech", Position: "Head Coach", Year: 2012},
		{Coach: "A", Team: "State", Position: "Head Coach", Year: 2010},
	}
	if diff := cmp.Diff(want, jobs); diff != "" {
		t.Errorf("career mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "A coached for Tech as the Head Coach in 2013", jobs[0].Sentence())

	jobs, err = staff.Career(g, "B")
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "Offensive Coordinator", jobs[1].Position)

	_, err = staff.Career(g, "Nobody")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestCatalog(t *testing.T) {
	idx, err := staff.Catalog(staffGraph(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"State", "Tech"}, idx.Teams)
	assert.Equal(t, []int{2013, 2012, 2010}, idx.Years)

	idx, err = staff.Catalog(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, idx.Teams)
}
