// SPDX-License-Identifier: MIT

package ancestry

import (
	"errors"
	"fmt"
)

// Sentinel errors for ancestry searches.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("ancestry: graph is nil")

	// ErrEmptyCoach indicates an empty coach ID.
	ErrEmptyCoach = errors.New("ancestry: coach ID is empty")

	// ErrCoachNotFound indicates a coach absent from the graph.
	ErrCoachNotFound = errors.New("ancestry: coach not found")

	// ErrSameCoach indicates a query of a coach against themself.
	ErrSameCoach = errors.New("ancestry: coaches must differ")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("ancestry: invalid option supplied")
)

// Status is the outcome of a lowest common ancestor search.
type Status int

// Search outcomes.
const (
	// Found means a chronologically valid common ancestor exists.
	Found Status = iota
	// NoSharedAncestors means the plain ancestor sets do not intersect.
	NoSharedAncestors
	// NoChronologicalPath means shared ancestors exist but none is reachable
	// from both coaches along chronological paths.
	NoChronologicalPath
)

var statusNames = [...]string{
	Found:               "Found",
	NoSharedAncestors:   "NoSharedAncestors",
	NoChronologicalPath: "NoChronologicalPath",
}

// String returns the status name.
func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}

	return fmt.Sprintf("Status(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
