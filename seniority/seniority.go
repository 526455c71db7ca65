// SPDX-License-Identifier: MIT

// Package seniority ranks coaching position titles on a fixed 1..5 scale.
//
// Level 1 carries the most authority over the on-field product (head coach),
// level 5 the least (analysts, quality control, support staff). The mapping
// from title to level is data, not code: Default returns the reference tables
// and LoadYAML replaces them with a researcher's own hierarchy.
//
// A title that no table lists is not an error that stops anything. Lookup
// reports ok=false, and a Classifier remembers each distinct miss once so the
// caller can surface it as an UnclassifiedPositionError.
package seniority

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Level is a seniority rank. Lower is more senior. Undefined marks a title
// absent from the mapping.
type Level int

// Known levels.
const (
	Undefined Level = 0

	HeadCoach   Level = 1
	Coordinator Level = 2
	Assistant   Level = 3
	Position    Level = 4
	Support     Level = 5
)

// MinLevel and MaxLevel bound the defined levels.
const (
	MinLevel = HeadCoach
	MaxLevel = Support
)

// Defined reports whether l is inside [MinLevel, MaxLevel].
func (l Level) Defined() bool { return l >= MinLevel && l <= MaxLevel }

// String renders the level number, or "undefined".
func (l Level) String() string {
	if !l.Defined() {
		return "undefined"
	}

	return strconv.Itoa(int(l))
}

// Sentinel errors for mapping construction.
var (
	// ErrInvalidLevel indicates a level outside [MinLevel, MaxLevel].
	ErrInvalidLevel = errors.New("seniority: level out of range")

	// ErrConflictingPosition indicates one title listed under two levels.
	ErrConflictingPosition = errors.New("seniority: position listed under two levels")

	// ErrEmptyPosition indicates a blank title in a table.
	ErrEmptyPosition = errors.New("seniority: empty position title")
)

// UnclassifiedPositionError reports a title the mapping does not rank.
type UnclassifiedPositionError struct {
	Position string
}

// Error implements error.
func (e *UnclassifiedPositionError) Error() string {
	return fmt.Sprintf("seniority: position %q is not classified", e.Position)
}

// Mapping is an immutable title → Level table. Titles match after trimming
// surrounding space, case-insensitively.
type Mapping struct {
	levels map[string]Level
	tables map[Level][]string
}

// NewMapping builds a Mapping from per-level title lists.
func NewMapping(tables map[Level][]string) (*Mapping, error) {
	m := &Mapping{
		levels: make(map[string]Level),
		tables: make(map[Level][]string, len(tables)),
	}
	for lvl, titles := range tables {
		if !lvl.Defined() {
			return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, int(lvl))
		}
		for _, title := range titles {
			key := normalize(title)
			if key == "" {
				return nil, fmt.Errorf("%w: level %d", ErrEmptyPosition, int(lvl))
			}
			if prev, ok := m.levels[key]; ok && prev != lvl {
				return nil, fmt.Errorf("%w: %q at %d and %d", ErrConflictingPosition, title, int(prev), int(lvl))
			}
			m.levels[key] = lvl
			m.tables[lvl] = append(m.tables[lvl], strings.TrimSpace(title))
		}
	}

	return m, nil
}

// Lookup returns the level of position; ok is false when it is not ranked.
func (m *Mapping) Lookup(position string) (Level, bool) {
	lvl, ok := m.levels[normalize(position)]
	if !ok {
		return Undefined, false
	}

	return lvl, true
}

// Len returns the number of ranked titles.
func (m *Mapping) Len() int { return len(m.levels) }

// Titles returns the titles ranked at lvl, sorted.
func (m *Mapping) Titles(lvl Level) []string {
	out := append([]string(nil), m.tables[lvl]...)
	sort.Strings(out)

	return out
}

func normalize(title string) string {
	return strings.ToLower(strings.Join(strings.Fields(title), " "))
}

// Classifier wraps a Mapping and records every distinct unranked title once,
// in first-seen order.
type Classifier struct {
	mapping *Mapping
	seen    map[string]struct{}
	misses  []*UnclassifiedPositionError
}

// NewClassifier returns a Classifier over m. A nil m uses Default().
func NewClassifier(m *Mapping) *Classifier {
	if m == nil {
		m = Default()
	}

	return &Classifier{mapping: m, seen: make(map[string]struct{})}
}

// Classify returns the level of position. For an unranked title it returns
// Undefined, false and records the miss unless that title was already seen.
func (c *Classifier) Classify(position string) (Level, bool) {
	lvl, ok := c.mapping.Lookup(position)
	if ok {
		return lvl, true
	}
	key := normalize(position)
	if _, dup := c.seen[key]; !dup {
		c.seen[key] = struct{}{}
		c.misses = append(c.misses, &UnclassifiedPositionError{Position: strings.TrimSpace(position)})
	}

	return Undefined, false
}

// Unclassified returns the recorded misses in first-seen order.
func (c *Classifier) Unclassified() []*UnclassifiedPositionError {
	return append([]*UnclassifiedPositionError(nil), c.misses...)
}
