// SPDX-License-Identifier: MIT

package filter_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coachtree/builder"
	"github.com/katalvlaran/coachtree/core"
	"github.com/katalvlaran/coachtree/filter"
	"github.com/katalvlaran/coachtree/internal/testutil"
	"github.com/katalvlaran/coachtree/metrics"
	"github.com/katalvlaran/coachtree/roster"
)

func ids(g *core.Graph) []string {
	var out []string
	for _, e := range g.Edges() {
		out = append(out, e.ID)
	}

	return out
}

func subset(t *testing.T, sub, super *core.Graph) {
	t.Helper()
	all := make(map[string]bool)
	for _, id := range ids(super) {
		all[id] = true
	}
	for _, id := range ids(sub) {
		assert.True(t, all[id], "edge %s not in input", id)
	}
}

// staffGraph: a head coach H, coordinator C and position coach P at Tech in
// 2020-2021, plus C and P at Tech 2023-2024 with C promoted to head coach,
// plus an equal-standing pair.
func staffGraph(t *testing.T) *core.Graph {
	t.Helper()
	g, _, err := builder.Build([]roster.JobRecord{
		testutil.Job("H", "Tech", "Head Coach", 2018, 2021),
		testutil.Job("C", "Tech", "Defensive Coordinator", 2020, 2021),
		testutil.Job("P", "Tech", "Quarterbacks Coach", 2020, 2024),
		testutil.Job("C", "Tech", "Head Coach", 2023, 2024),
		testutil.Job("Q", "Tech", "Quarterbacks Coach", 2024, 2024),
	})
	require.NoError(t, err)

	return g
}

func TestPolicy(t *testing.T) {
	p, err := filter.ParsePolicy("Permissive")
	require.NoError(t, err)
	assert.Equal(t, filter.Permissive, p)
	assert.Equal(t, "permissive", p.String())

	_, err = filter.ParsePolicy("loose")
	assert.ErrorIs(t, err, filter.ErrUnknownPolicy)

	assert.True(t, filter.Strict.Admits(core.Mentor))
	assert.False(t, filter.Strict.Admits(core.EqualStanding))
	assert.True(t, filter.Permissive.Admits(core.EqualStanding))
	assert.False(t, filter.Permissive.Admits(core.NotAMentor))
}

func TestMentorshipOnly(t *testing.T) {
	g := staffGraph(t)
	before := g.EdgeCount()

	strict := filter.MentorshipOnly(g, filter.Strict)
	for _, e := range strict.Edges() {
		assert.Equal(t, core.Mentor, e.Status)
	}
	permissive := filter.MentorshipOnly(g, filter.Permissive)
	assert.Greater(t, permissive.EdgeCount(), strict.EdgeCount())
	subset(t, strict, permissive)
	subset(t, permissive, g)
	assert.Equal(t, before, g.EdgeCount(), "input must not change")
}

func TestRemoveFuture(t *testing.T) {
	g := staffGraph(t)
	out := filter.RemoveFuture(g, 2021)
	for _, e := range out.Edges() {
		lo, _ := e.Years.Min()
		assert.LessOrEqual(t, lo, 2021)
	}
	// P and C share 2020-2021 and 2023-2024 in separate records; only the later
	// overlap is entirely in the future.
	assert.Len(t, out.EdgesBetween("P", "C"), 1)
	assert.Len(t, g.EdgesBetween("P", "C"), 2)
	assert.Empty(t, out.EdgesBetween("Q", "C"))
}

func TestTeamOf(t *testing.T) {
	g := staffGraph(t)
	team, ok := filter.TeamOf(g, "C", 2024)
	require.True(t, ok)
	assert.Equal(t, "Tech", team)

	_, ok = filter.TeamOf(g, "C", 2022)
	assert.False(t, ok)
	_, ok = filter.TeamOf(g, "nobody", 2024)
	assert.False(t, ok)
}

func TestRemoveCurrentStaff(t *testing.T) {
	g := staffGraph(t)
	out := filter.RemoveCurrentStaff(g, 2024, "Tech")
	for _, e := range out.Edges() {
		assert.False(t, e.Years.Contains(2024))
	}
	assert.NotEmpty(t, out.EdgesBetween("P", "H"))
}

func TestApply(t *testing.T) {
	g := staffGraph(t)
	before := ids(g)

	out, sum, err := filter.Apply(g, 2024, filter.WithSubject("C"), filter.WithLogger(testutil.NewTestLogger(t)))
	require.NoError(t, err)
	assert.Equal(t, before, ids(g))
	assert.True(t, sum.TeamFound)
	assert.Equal(t, []string{"Tech"}, sum.Teams)
	assert.Equal(t, sum.Input, sum.RemovedMentorship+sum.RemovedFuture+sum.RemovedStaff+sum.Output)

	for _, e := range out.Edges() {
		assert.Equal(t, core.Mentor, e.Status)
		assert.False(t, e.Team == "Tech" && e.Years.Contains(2024), e.ID)
	}
	// P→C at 2023-2024 is the subject's own staff; P→C at 2020-2021 survives.
	pc := out.EdgesBetween("P", "C")
	require.Len(t, pc, 1)
	assert.Equal(t, []int{2020, 2021}, pc[0].Years.Values())
	subset(t, out, g)
}

func TestApply_Idempotent(t *testing.T) {
	g := staffGraph(t)
	once, _, err := filter.Apply(g, 2021, filter.WithPolicy(filter.Permissive))
	require.NoError(t, err)
	twice, _, err := filter.Apply(once, 2021, filter.WithPolicy(filter.Permissive))
	require.NoError(t, err)
	assert.Equal(t, ids(once), ids(twice))

	again, _, err := filter.Apply(g, 2021, filter.WithPolicy(filter.Permissive))
	require.NoError(t, err)
	assert.Equal(t, ids(once), ids(again))
}

// moveGraph: S coached at Alpha through 2020 and at Beta from 2020, so the
// move season lists S on both staffs.
func moveGraph(t *testing.T) *core.Graph {
	t.Helper()
	g, _, err := builder.Build([]roster.JobRecord{
		testutil.Job("S", "Alpha", "Quarterbacks Coach", 2018, 2020),
		testutil.Job("HA", "Alpha", "Head Coach", 2018, 2020),
		testutil.Job("S", "Beta", "Offensive Coordinator", 2020, 2022),
		testutil.Job("HB", "Beta", "Head Coach", 2020, 2022),
	})
	require.NoError(t, err)

	return g
}

func TestTeamsOf_MoveSeason(t *testing.T) {
	g := moveGraph(t)
	assert.Equal(t, []string{"Alpha", "Beta"}, filter.TeamsOf(g, "S", 2020))
	assert.Equal(t, []string{"Beta"}, filter.TeamsOf(g, "S", 2021))
	assert.Empty(t, filter.TeamsOf(g, "S", 2017))

	team, ok := filter.TeamOf(g, "S", 2020)
	require.True(t, ok)
	assert.Equal(t, "Alpha", team)
}

func TestApply_SubjectOnTwoStaffs(t *testing.T) {
	g := moveGraph(t)
	opts := []filter.Option{filter.WithSubject("S"), filter.WithSubjectYear(2020)}

	once, sum, err := filter.Apply(g, 2025, opts...)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "Beta"}, sum.Teams)
	assert.Empty(t, once.EdgesBetween("S", "HA"))
	assert.Empty(t, once.EdgesBetween("S", "HB"))
	assert.Zero(t, once.EdgeCount())

	twice, sum2, err := filter.Apply(once, 2025, opts...)
	require.NoError(t, err)
	assert.False(t, sum2.TeamFound)
	assert.Zero(t, sum2.RemovedStaff)
	assert.Equal(t, ids(once), ids(twice))
}

func TestApply_IdempotentWithSubject(t *testing.T) {
	g := staffGraph(t)
	once, _, err := filter.Apply(g, 2024, filter.WithSubject("C"))
	require.NoError(t, err)
	twice, _, err := filter.Apply(once, 2024, filter.WithSubject("C"))
	require.NoError(t, err)
	assert.Equal(t, ids(once), ids(twice))
}

func TestApply_UnresolvedSubjectIsNoOp(t *testing.T) {
	g := staffGraph(t)
	with, sum, err := filter.Apply(g, 2024, filter.WithSubject("nobody"))
	require.NoError(t, err)
	assert.False(t, sum.TeamFound)
	assert.Zero(t, sum.RemovedStaff)

	without, _, err := filter.Apply(g, 2024)
	require.NoError(t, err)
	assert.Equal(t, ids(without), ids(with))

	_, sum, err = filter.Apply(g, 2024, filter.WithSubject("C"), filter.WithSubjectYear(2022))
	require.NoError(t, err)
	assert.False(t, sum.TeamFound)
}

func TestApply_Errors(t *testing.T) {
	_, _, err := filter.Apply(nil, 2020)
	assert.ErrorIs(t, err, filter.ErrGraphNil)
	assert.Panics(t, func() { filter.WithLogger(nil) })
}

func TestApply_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, _, err := filter.Apply(staffGraph(t), 2024, filter.WithMetrics(metrics.New(reg)))
	require.NoError(t, err)
	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, mfs)
}
