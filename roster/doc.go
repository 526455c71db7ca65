// SPDX-License-Identifier: MIT

// Package roster holds coaching job records, the input of the lineage builder.
//
// A JobRecord says that one coach held one position at one team for an
// explicit set of seasons. Records arrive as RawRecord string columns (from a
// CSV export of staff histories) and are validated once by Normalize, so the
// rest of the module only ever sees a season.Years value.
//
// Normalize never panics on dirty data. A record whose seasons cannot be
// parsed yields a *DataQualityError naming the input line, the coach and the
// offending value; NormalizeAll collects those and keeps going.
//
// ReadCSV is the loader used by the command line tool. Headers are matched
// case-insensitively; the seasons column may be called "Seasons at Position",
// "Seasons with Team" or "Seasons".
package roster
