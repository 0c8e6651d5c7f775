// SPDX-License-Identifier: MIT

package ctree

import "errors"

var (
	// ErrCorrupt indicates a tree that violates a structural invariant.
	ErrCorrupt = errors.New("ctree: tree invariant violated")
	// ErrNilPredicate indicates a nil keep function passed to a filter.
	ErrNilPredicate = errors.New("ctree: predicate is nil")
	// ErrPredicate wraps a panic raised by a filter predicate.
	ErrPredicate = errors.New("ctree: predicate failed")
	// ErrStrategy indicates an unknown filtering strategy.
	ErrStrategy = errors.New("ctree: unknown filtering strategy")
	// ErrSizeMismatch indicates an attribute slice whose length differs from the node count.
	ErrSizeMismatch = errors.New("ctree: attribute size does not match node count")
)
