// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Relation, Edge, MentorStatus, Graph and sentinel errors.

package core

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/coachtree/season"
	"github.com/katalvlaran/coachtree/seniority"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a coach related to themself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrEmptyYears indicates a relation with no shared season.
	ErrEmptyYears = errors.New("core: relation has no shared seasons")

	// ErrBadMentorStatus indicates an unknown mentor status label.
	ErrBadMentorStatus = errors.New("core: unknown mentor status")
)

// MentorStatus classifies an edge a→b by comparing seniority levels.
type MentorStatus uint8

// Mentor statuses. The zero value is NotAMentor.
const (
	NotAMentor MentorStatus = iota
	EqualStanding
	Mentor
)

var mentorStatusNames = [...]string{
	NotAMentor:    "Not a Mentor",
	EqualStanding: "Equal Standing",
	Mentor:        "Mentor",
}

// String returns the human label ("Mentor", "Equal Standing", "Not a Mentor").
func (s MentorStatus) String() string {
	if int(s) < len(mentorStatusNames) {
		return mentorStatusNames[s]
	}

	return fmt.Sprintf("MentorStatus(%d)", uint8(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s MentorStatus) MarshalText() ([]byte, error) {
	if int(s) >= len(mentorStatusNames) {
		return nil, fmt.Errorf("%w: %d", ErrBadMentorStatus, uint8(s))
	}

	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *MentorStatus) UnmarshalText(text []byte) error {
	for i, name := range mentorStatusNames {
		if name == string(text) {
			*s = MentorStatus(i)
			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrBadMentorStatus, text)
}

// ClassifyMentorStatus returns the status of an edge whose source holds
// level source and whose target holds level target. Undefined levels on
// either side give NotAMentor.
func ClassifyMentorStatus(source, target seniority.Level) MentorStatus {
	switch {
	case !source.Defined() || !target.Defined():
		return NotAMentor
	case target < source:
		return Mentor
	case target == source:
		return EqualStanding
	default:
		return NotAMentor
	}
}

// Vertex is a coach.
type Vertex struct {
	// ID is the unique node key (record key, or name when none was given).
	ID string

	// Name is the display name.
	Name string

	// Order is the first-insertion index; it is a stable ordering key.
	Order int
}

// Relation holds the attributes of a shared tenure.
type Relation struct {
	Team            string
	Years           season.Years
	SourcePosition  string
	TargetPosition  string
	SourceSeniority seniority.Level
	TargetSeniority seniority.Level
	Status          MentorStatus
}

// Edge is a directed, keyed relation From→To.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", …).
	ID string

	// From is the source vertex ID.
	From string

	// To is the target vertex ID.
	To string

	Relation

	seq uint64
}

// Seq returns the creation sequence number of the edge.
func (e *Edge) Seq() uint64 { return e.seq }

// Graph is the lineage multigraph.
//
// muVert protects vertices and nextOrder; muEdgeAdj protects edges and both
// adjacency maps. nextEdgeID is an atomic counter for Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	nextEdgeID uint64
	nextOrder  int
	vertices   map[string]*Vertex
	edges      map[string]*Edge

	// out[from][to][edgeID], in[to][from][edgeID]
	out map[string]map[string]map[string]struct{}
	in  map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		vertices: make(map[string]*Vertex),
		edges:    make(map[string]*Edge),
		out:      make(map[string]map[string]map[string]struct{}),
		in:       make(map[string]map[string]map[string]struct{}),
	}
}
