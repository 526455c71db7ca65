// SPDX-License-Identifier: MIT

// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/coachtree/core"
)

// BenchmarkAddEdge measures adding relations from one coach to many colleagues.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph()
	r := rel("T", core.Mentor, 2010, 2011)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge("Root", fmt.Sprintf("N%d", i), r)
	}
}

// BenchmarkAddEdge_Parallel measures many parallel edges between few coaches.
func BenchmarkAddEdge_Parallel(b *testing.B) {
	g := core.NewGraph()
	r := rel("T", core.Mentor, 2010)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge("Root", fmt.Sprintf("N%d", i%100), r)
	}
}

// BenchmarkMentors measures the sorted out-edge listing on a star.
func BenchmarkMentors(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 1000; i++ {
		_, _ = g.AddEdge("Center", fmt.Sprintf("Node%d", i), rel("T", core.Mentor, 2010))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Mentors("Center")
	}
}

// BenchmarkSubgraph measures deriving a filtered working copy.
func BenchmarkSubgraph(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 1000; i++ {
		status := core.MentorStatus(i % 3)
		_, _ = g.AddEdge("A", fmt.Sprintf("V%d", i), rel("T", status, 2010))
	}
	keep := func(e *core.Edge) bool { return e.Status == core.Mentor }
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = core.Subgraph(g, keep)
	}
}
