// SPDX-License-Identifier: MIT

package builder

import (
	"go.uber.org/multierr"

	"github.com/katalvlaran/coachtree/core"
	"github.com/katalvlaran/coachtree/roster"
	"github.com/katalvlaran/coachtree/seniority"
)

// Report describes one build.
type Report struct {
	// Records is the number of input records, Accepted of those used.
	Records  int
	Accepted int

	// Skipped lists records that could not be used, in input order.
	Skipped []*roster.DataQualityError

	// Unclassified lists each unranked position title once.
	Unclassified []*seniority.UnclassifiedPositionError

	// Duplicates counts pairs suppressed by the (a, b, team, years) key.
	Duplicates int

	Vertices int
	Edges    int
	ByStatus map[core.MentorStatus]int
}

// Clean reports whether the build produced no diagnostics.
func (r *Report) Clean() bool {
	return len(r.Skipped) == 0 && len(r.Unclassified) == 0
}

// Err combines every diagnostic into one error, or returns nil. Individual
// causes are reachable with multierr.Errors, errors.Is and errors.As.
func (r *Report) Err() error {
	var err error
	for _, dq := range r.Skipped {
		err = multierr.Append(err, dq)
	}
	for _, up := range r.Unclassified {
		err = multierr.Append(err, up)
	}

	return err
}
