package tos

import "errors"

var (
	// ErrNilImage indicates a nil image or comparison function.
	ErrNilImage = errors.New("tos: image is nil")
	// ErrStart indicates a start coordinate outside the image domain.
	ErrStart = errors.New("tos: start point outside the domain")
	// ErrIntervals indicates interval arrays that do not match the grid.
	ErrIntervals = errors.New("tos: interval arrays do not match the grid")
)
