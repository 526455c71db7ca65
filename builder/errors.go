// SPDX-License-Identifier: MIT
//
// errors.go: sentinel errors for the builder package.
//
// Callers branch with errors.Is; context is attached with %w.

package builder

import "errors"

// ErrConstructFailed indicates that the graph rejected an edge the builder
// produced. It signals a bug, not dirty data.
var ErrConstructFailed = errors.New("builder: construction failed")

