// SPDX-License-Identifier: MIT

package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoHeader indicates an input without a usable header row.
var ErrNoHeader = errors.New("roster: missing header row")

// column aliases, lower-cased.
var columns = map[string]string{
	"key":                 "key",
	"id":                  "key",
	"name":                "name",
	"coach":               "name",
	"team":                "team",
	"position":            "position",
	"start year":          "start",
	"end year":            "end",
	"seasons at position": "seasons",
	"seasons with team":   "seasons",
	"seasons":             "seasons",
}

// ReadCSV reads raw records from a CSV table with a header row. Blank rows
// are skipped. Line numbers are input lines, the header being line 1.
func ReadCSV(r io.Reader) ([]RawRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("roster: read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if field, ok := columns[h]; ok {
			if _, dup := index[field]; !dup {
				index[field] = i
			}
		}
	}
	for _, required := range []string{"name", "team", "seasons"} {
		if _, ok := index[required]; !ok {
			if required == "seasons" {
				if _, hasStart := index["start"]; hasStart {
					continue
				}
			}
			return nil, fmt.Errorf("%w: no %q column", ErrNoHeader, required)
		}
	}

	var out []RawRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return out, fmt.Errorf("roster: %w", err)
		}
		line, _ := reader.FieldPos(0)
		if blank(row) {
			continue
		}
		get := func(field string) string {
			i, ok := index[field]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}
		out = append(out, RawRecord{
			Line:      line,
			Key:       get("key"),
			Name:      get("name"),
			Team:      get("team"),
			Position:  get("position"),
			StartYear: get("start"),
			EndYear:   get("end"),
			Seasons:   get("seasons"),
		})
	}

	return out, nil
}

func blank(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}

	return true
}
