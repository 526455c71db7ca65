// SPDX-License-Identifier: MIT
//
// File: years.go
// Role: Years value type and set algebra.
// Determinism:
//   - Values() and String() are always ascending.
// Concurrency:
//   - Years is immutable after construction and safe to share.

package season

import (
	"slices"
	"strconv"
	"strings"
)

// Years is an ascending, duplicate-free set of season years.
// The zero value is the empty set.
type Years struct {
	ys []int
}

// New returns the set of the given years, sorted and de-duplicated.
// New does not range-check; use Parse for untrusted input.
func New(years ...int) Years {
	if len(years) == 0 {
		return Years{}
	}
	ys := slices.Clone(years)
	slices.Sort(ys)

	return Years{ys: slices.Compact(ys)}
}

// Span returns the set {from, from+1, ..., to}. Empty if to < from.
func Span(from, to int) Years {
	if to < from {
		return Years{}
	}
	ys := make([]int, 0, to-from+1)
	for y := from; y <= to; y++ {
		ys = append(ys, y)
	}

	return Years{ys: ys}
}

// Len returns the number of years in the set.
func (s Years) Len() int { return len(s.ys) }

// IsEmpty reports whether the set holds no year.
func (s Years) IsEmpty() bool { return len(s.ys) == 0 }

// Values returns a fresh ascending slice of the years.
func (s Years) Values() []int { return slices.Clone(s.ys) }

// Min returns the earliest year; ok is false for the empty set.
func (s Years) Min() (year int, ok bool) {
	if len(s.ys) == 0 {
		return 0, false
	}

	return s.ys[0], true
}

// Max returns the latest year; ok is false for the empty set.
func (s Years) Max() (year int, ok bool) {
	if len(s.ys) == 0 {
		return 0, false
	}

	return s.ys[len(s.ys)-1], true
}

// Contains reports whether year is in the set.
// Complexity: O(log n).
func (s Years) Contains(year int) bool {
	_, found := slices.BinarySearch(s.ys, year)

	return found
}

// Intersect returns the years present in both s and o.
// Complexity: O(n+m) merge over the two sorted slices.
func (s Years) Intersect(o Years) Years {
	var out []int
	i, j := 0, 0
	for i < len(s.ys) && j < len(o.ys) {
		switch {
		case s.ys[i] < o.ys[j]:
			i++
		case s.ys[i] > o.ys[j]:
			j++
		default:
			out = append(out, s.ys[i])
			i++
			j++
		}
	}

	return Years{ys: out}
}

// Union returns the years present in either s or o.
func (s Years) Union(o Years) Years {
	out := make([]int, 0, len(s.ys)+len(o.ys))
	out = append(out, s.ys...)
	out = append(out, o.ys...)

	return New(out...)
}

// Equal reports whether both sets hold exactly the same years.
func (s Years) Equal(o Years) bool { return slices.Equal(s.ys, o.ys) }

// AllAfter reports whether every year is strictly greater than year.
// The empty set reports false: there is nothing to place after year.
func (s Years) AllAfter(year int) bool {
	lo, ok := s.Min()

	return ok && lo > year
}

// AllAtMost reports whether every year is <= bound.
// The empty set reports true.
func (s Years) AllAtMost(bound int) bool {
	hi, ok := s.Max()

	return !ok || hi <= bound
}

// Key returns a compact canonical encoding ("2010,2011") usable as a map key.
func (s Years) Key() string {
	var b strings.Builder
	for i, y := range s.ys {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(y))
	}

	return b.String()
}

// String renders the set as a bracketed list, e.g. "[2010 2011]".
func (s Years) String() string {
	return "[" + strings.ReplaceAll(s.Key(), ",", " ") + "]"
}
