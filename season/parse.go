// SPDX-License-Identifier: MIT
//
// File: parse.go
// Role: Boundary parsing of season encodings into Years, plus JSON codec.
// Policy:
//   - Parse is strict: any token that is not an integer year is an error.
//   - Errors are sentinels wrapped with the offending token via %w.

package season

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Bounds for accepted season years. 1869 is the first intercollegiate season.
const (
	MinYear = 1869
	MaxYear = 2999
)

// Sentinel errors for season parsing.
var (
	// ErrEmpty indicates the input holds no year at all.
	ErrEmpty = errors.New("season: no seasons present")

	// ErrMalformed indicates a token that is not an integer.
	ErrMalformed = errors.New("season: malformed season list")

	// ErrOutOfRange indicates a year outside [MinYear, MaxYear].
	ErrOutOfRange = errors.New("season: year out of range")
)

// literalBrackets maps an opening delimiter of a literal collection to its closer.
var literalBrackets = map[byte]byte{'[': ']', '{': '}', '(': ')'}

// Parse converts a raw seasons value into Years.
//
// Both encodings seen in coach-history tables are accepted: a literal
// list/set/tuple ("[2010, 2011]") and a bare comma-separated list
// ("2010,2011"). Items may be quoted. Empty items (trailing commas) are ignored.
func Parse(raw string) (Years, error) {
	body := strings.TrimSpace(raw)
	if n := len(body); n >= 2 {
		if closer, ok := literalBrackets[body[0]]; ok {
			if body[n-1] != closer {
				return Years{}, fmt.Errorf("%w: unbalanced %q", ErrMalformed, raw)
			}
			body = body[1 : n-1]
		}
	}

	tokens := strings.Split(body, ",")
	years := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.Trim(strings.TrimSpace(tok), `'"`)
		if tok == "" {
			continue
		}
		y, err := strconv.Atoi(tok)
		if err != nil {
			return Years{}, fmt.Errorf("%w: %q", ErrMalformed, tok)
		}
		if y < MinYear || y > MaxYear {
			return Years{}, fmt.Errorf("%w: %d", ErrOutOfRange, y)
		}
		years = append(years, y)
	}
	if len(years) == 0 {
		return Years{}, ErrEmpty
	}

	return New(years...), nil
}

// MustParse is Parse for fixtures and tests; it panics on error.
func MustParse(raw string) Years {
	ys, err := Parse(raw)
	if err != nil {
		panic(err)
	}

	return ys
}

// MarshalJSON encodes the set as an ascending JSON array of integers.
func (s Years) MarshalJSON() ([]byte, error) {
	if s.ys == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(s.ys)
}

// UnmarshalJSON accepts either a JSON array of integers or a JSON string in
// any encoding understood by Parse.
func (s *Years) UnmarshalJSON(data []byte) error {
	var list []int
	if err := json.Unmarshal(data, &list); err == nil {
		*s = New(list...)
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %s", ErrMalformed, data)
	}
	ys, err := Parse(raw)
	if err != nil {
		return err
	}
	*s = ys

	return nil
}
