// SPDX-License-Identifier: MIT

package maxtree

import "errors"

var (
	// ErrNilImage indicates a nil image or comparison function.
	ErrNilImage = errors.New("maxtree: image is nil")
	// ErrLambda indicates a negative area threshold.
	ErrLambda = errors.New("maxtree: area threshold must be non-negative")
)
