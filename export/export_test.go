// SPDX-License-Identifier: MIT

package export_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coachtree/ancestry"
	"github.com/katalvlaran/coachtree/builder"
	"github.com/katalvlaran/coachtree/core"
	"github.com/katalvlaran/coachtree/export"
	"github.com/katalvlaran/coachtree/filter"
	"github.com/katalvlaran/coachtree/internal/testutil"
	"github.com/katalvlaran/coachtree/season"
)

func lineage(t *testing.T) *core.Graph {
	t.Helper()
	g, _, err := builder.Build(testutil.Lineage())
	require.NoError(t, err)

	return g
}

func TestElements_CanonicalHalf(t *testing.T) {
	g := lineage(t)

	full, err := export.Elements(g, true)
	require.NoError(t, err)
	assert.Len(t, full.Nodes, 6)
	assert.Len(t, full.Edges, 6)

	half, err := export.Elements(g, false)
	require.NoError(t, err)
	assert.Len(t, half.Nodes, 6)
	var got []string
	for _, e := range half.Edges {
		assert.True(t, e.Canonical)
		got = append(got, e.Description)
	}
	assert.Equal(t, []string{"Y -> X", "Y -> Z", "Y -> W"}, got)

	_, err = export.Elements(nil, true)
	assert.ErrorIs(t, err, export.ErrGraphNil)
}

func TestElements_EdgeRecord(t *testing.T) {
	doc, err := export.Elements(lineage(t), true)
	require.NoError(t, err)

	e := doc.Edges[1]
	assert.Equal(t, "X", e.Source)
	assert.Equal(t, "Y", e.Target)
	assert.Equal(t, "Tech", e.Team)
	assert.Equal(t, []int{2010, 2011}, e.Years.Values())
	assert.Equal(t, core.Mentor, e.MentorStatus)
	assert.Equal(t, [2]int{4, 1}, e.SeniorityPair)
	assert.Equal(t, "Quarterbacks Coach", e.SourcePosition)
	assert.False(t, e.Canonical)
}

func TestEdgeID_Stable(t *testing.T) {
	a := export.EdgeID("X", "Y", "Tech", season.New(2010, 2011))
	b := export.EdgeID("X", "Y", "Tech", season.New(2011, 2010))
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, export.EdgeID("Y", "X", "Tech", season.New(2010, 2011)))
	assert.NotEqual(t, a, export.EdgeID("X", "Y", "State", season.New(2010, 2011)))

	first, err := export.Elements(lineage(t), true)
	require.NoError(t, err)
	second, err := export.Elements(lineage(t), true)
	require.NoError(t, err)
	assert.Equal(t, first.Edges[0].ID, second.Edges[0].ID)
}

func TestElements_RoundTrip(t *testing.T) {
	doc, err := export.Elements(lineage(t), true)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, export.WriteElements(&buf, doc, true))
	assert.Contains(t, buf.String(), `"mentor_status": "Mentor"`)
	assert.Contains(t, buf.String(), `"years_of_connection": [`)

	back, err := export.ReadElements(&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(doc, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestReadElements_Malformed(t *testing.T) {
	_, err := export.ReadElements(strings.NewReader(`[{"data": {"coach_name": "nameless"}}]`))
	assert.ErrorIs(t, err, export.ErrMalformedElement)

	_, err = export.ReadElements(strings.NewReader(`{`))
	assert.Error(t, err)
}

func TestFromResult(t *testing.T) {
	g := lineage(t)
	work, _, err := filter.Apply(g, 2024)
	require.NoError(t, err)
	res, err := ancestry.LowestCommonAncestor(work, "X", "W")
	require.NoError(t, err)

	view, err := export.FromResult(work, res)
	require.NoError(t, err)
	require.NotNil(t, view.Ancestor)
	assert.Equal(t, "Y", *view.Ancestor)
	require.Len(t, view.PathA.Edges, 1)
	assert.Equal(t, export.EdgeID("X", "Y", "Tech", season.New(2010, 2011)), view.PathA.Edges[0].ID)
	assert.Equal(t, []string{"W", "Y"}, view.PathB.Coaches)

	var buf bytes.Buffer
	require.NoError(t, export.WriteJSON(&buf, view, false))
	assert.Contains(t, buf.String(), `"status":"Found"`)
	assert.Contains(t, buf.String(), `"total_distance":2`)
}

func TestFromResult_NotFoundIsNull(t *testing.T) {
	work, _, err := filter.Apply(lineage(t), 2024)
	require.NoError(t, err)
	res, err := ancestry.LowestCommonAncestor(work, "V", "U")
	require.NoError(t, err)
	require.Equal(t, ancestry.NoSharedAncestors, res.Status)

	view, err := export.FromResult(work, res)
	require.NoError(t, err)
	assert.Nil(t, view.Ancestor)
	assert.Nil(t, view.TotalDistance)

	var buf bytes.Buffer
	require.NoError(t, export.WriteJSON(&buf, view, false))
	assert.Contains(t, buf.String(), `"ancestor":null`)
	assert.Contains(t, buf.String(), `"total_distance":null`)
	assert.Contains(t, buf.String(), `"status":"NoSharedAncestors"`)
}
