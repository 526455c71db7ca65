// SPDX-License-Identifier: MIT

package roster

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/coachtree/season"
)

// Sentinel errors for record validation.
var (
	// ErrMissingName indicates a record without a coach name.
	ErrMissingName = errors.New("roster: missing coach name")

	// ErrMissingTeam indicates a record without a team.
	ErrMissingTeam = errors.New("roster: missing team")

	// ErrBadYear indicates a start or end year that is not an integer.
	ErrBadYear = errors.New("roster: malformed year")
)

// JobRecord is one validated tenure.
type JobRecord struct {
	// Line is the source line of the record, 0 when it did not come from a
	// table.
	Line int

	// Key optionally disambiguates coaches that share a display name.
	Key       string
	Name      string
	Team      string
	Position  string
	StartYear int // 0 when unknown
	EndYear   int // 0 when unknown or ongoing
	Seasons   season.Years
}

// ID returns the node identifier of the coach: Key when set, else Name.
func (r JobRecord) ID() string {
	if r.Key != "" {
		return r.Key
	}

	return r.Name
}

// RawRecord is a record as read from a table, before validation.
type RawRecord struct {
	Line      int
	Key       string
	Name      string
	Team      string
	Position  string
	StartYear string
	EndYear   string
	Seasons   string
}

// DataQualityError reports a record that could not be turned into a JobRecord.
type DataQualityError struct {
	Line  int
	Coach string
	Field string
	Value string
	Err   error
}

// Error implements error.
func (e *DataQualityError) Error() string {
	return fmt.Sprintf("roster: line %d (%s): bad %s %q: %v", e.Line, e.Coach, e.Field, e.Value, e.Err)
}

// Unwrap returns the underlying cause.
func (e *DataQualityError) Unwrap() error { return e.Err }

// Normalize validates raw into a JobRecord.
//
// Seasons come from the seasons column. When it is blank and both start and
// end years are integers, the inclusive span is used instead. An end year of
// "present" is accepted and stored as 0.
func Normalize(raw RawRecord) (JobRecord, error) {
	rec := JobRecord{
		Line:     raw.Line,
		Key:      strings.TrimSpace(raw.Key),
		Name:     strings.TrimSpace(raw.Name),
		Team:     strings.TrimSpace(raw.Team),
		Position: strings.TrimSpace(raw.Position),
	}
	fail := func(field, value string, err error) (JobRecord, error) {
		return JobRecord{}, &DataQualityError{Line: raw.Line, Coach: rec.Name, Field: field, Value: value, Err: err}
	}
	if rec.Name == "" {
		return fail("name", raw.Name, ErrMissingName)
	}
	if rec.Team == "" {
		return fail("team", raw.Team, ErrMissingTeam)
	}

	var err error
	if rec.StartYear, err = parseYear(raw.StartYear); err != nil {
		return fail("start year", raw.StartYear, err)
	}
	if rec.EndYear, err = parseYear(raw.EndYear); err != nil {
		return fail("end year", raw.EndYear, err)
	}

	if strings.TrimSpace(raw.Seasons) == "" && rec.StartYear > 0 && rec.EndYear >= rec.StartYear {
		rec.Seasons = season.Span(rec.StartYear, rec.EndYear)
		return rec, nil
	}
	if rec.Seasons, err = season.Parse(raw.Seasons); err != nil {
		return fail("seasons", raw.Seasons, err)
	}

	return rec, nil
}

func parseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "present") {
		return 0, nil
	}
	// Spreadsheet exports sometimes write years as floats.
	s = strings.TrimSuffix(s, ".0")
	y, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrBadYear
	}

	return y, nil
}

// NormalizeAll validates every raw record. Bad records are skipped and
// returned as diagnostics; order of the good records is preserved.
func NormalizeAll(raws []RawRecord) ([]JobRecord, []*DataQualityError) {
	out := make([]JobRecord, 0, len(raws))
	var bad []*DataQualityError
	for _, raw := range raws {
		rec, err := Normalize(raw)
		if err != nil {
			var dq *DataQualityError
			if errors.As(err, &dq) {
				bad = append(bad, dq)
			}
			continue
		}
		out = append(out, rec)
	}

	return out, bad
}
