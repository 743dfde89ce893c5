// SPDX-License-Identifier: MIT
// Package: csrgraph/labeling

package labeling

import "errors"

// ErrNegativeSize indicates a DisjointSet requested with fewer than 0 elements.
var ErrNegativeSize = errors.New("labeling: negative set size")
