// SPDX-License-Identifier: MIT

// Package filter derives reduced working graphs for a lineage query.
//
// Nothing here mutates its input: every function returns a fresh graph built
// with core.Subgraph, so one canonical graph can serve many queries. Each
// reduction computes its removal set over a snapshot before the result is
// assembled.
//
// Reductions, applied in this order by Apply:
//
//  1. MentorshipOnly keeps Mentor edges (Strict) or Mentor and EqualStanding
//     edges (Permissive).
//  2. RemoveFuture drops edges whose seasons all fall after the as-of year.
//     An edge with any season at or before it survives.
//  3. RemoveCurrentStaff drops edges at the subject's teams that include the
//     subject year, so the subject's own staff cannot pose as a lineage.
//
// The subject's teams come from TeamsOf on the unreduced input. Every team
// of that year is dropped at once, so a second Apply finds none and changes
// nothing. When it cannot
// be resolved the third reduction is skipped; that is a normal outcome, not
// an error.
package filter
