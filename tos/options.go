package tos

import (
	"io"

	"github.com/charmbracelet/log"
)

// Option configures a tree-of-shapes build.
type Option func(*Options)

// Options is the resolved configuration of a build.
type Options struct {
	start  []int // nil ⇒ origin
	logger *log.Logger
}

// WithStart sets the original-image coordinate the propagation starts
// from; the root of the tree is the shape containing it. Defaults to the
// origin.
func WithStart(coord ...int) Option {
	c := append([]int(nil), coord...)

	return func(o *Options) { o.start = c }
}

// WithLogger sends debug traces of the build phases to l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.logger = l }
}

func gatherOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}

	return o
}
