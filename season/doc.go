// SPDX-License-Identifier: MIT

// Package season provides Years, the single validated representation of the
// seasons a coach worked or two coaches shared.
//
// Years is an immutable, ascending, duplicate-free set of season years.
// It is built once at the system boundary (Parse, New) so that every other
// package can rely on a canonical shape and never branch on how the seasons
// were originally encoded.
//
// Accepted encodings for Parse:
//
//	[2010, 2011]      literal list
//	{2010, 2011}      literal set
//	(2010,)           literal tuple (trailing comma allowed)
//	2010,2011         comma-separated integers
//	'2010', "2011"    quoted items inside any of the above
//
// Set algebra:
//
//	Intersect(o)   O(n+m) merge of two sorted sets
//	Contains(y)    O(log n)
//	Min/Max        O(1)
//	AllAfter(y)    every year > y
//	AllAtMost(y)   every year <= y
//
// Errors:
//
//	ErrEmpty       no year present in the input
//	ErrMalformed   a token is not an integer
//	ErrOutOfRange  a year outside [MinYear, MaxYear]
package season
