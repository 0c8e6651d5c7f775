// SPDX-License-Identifier: MIT

package maxtree

import (
	"io"
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/lvlset/ctree"
)

// Defaults (single source of truth for zero-option behavior).
const (
	// DefaultDirection builds max-trees.
	DefaultDirection = ctree.MaxTree

	// DefaultTilesPerWorker is the number of slabs BuildParallel cuts per
	// worker when WithTiles is not given.
	DefaultTilesPerWorker = 2
)

const (
	panicWorkersInvalid   = "maxtree: WithWorkers: n must be ≥ 1"
	panicTilesInvalid     = "maxtree: WithTiles: n must be ≥ 1"
	panicDirectionInvalid = "maxtree: WithDirection: unknown direction"
)

// Option configures a build. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options is the resolved configuration of a build.
type Options struct {
	dir     ctree.Direction
	workers int
	tiles   int // 0 ⇒ workers × DefaultTilesPerWorker
	logger  *log.Logger
}

// WithDirection selects MaxTree (default) or MinTree.
func WithDirection(d ctree.Direction) Option {
	if d != ctree.MaxTree && d != ctree.MinTree {
		panic(panicDirectionInvalid)
	}

	return func(o *Options) { o.dir = d }
}

// WithWorkers bounds the number of goroutines BuildParallel runs at once.
// Defaults to runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithTiles sets how many slabs BuildParallel splits the first axis into.
// The count is clamped to the first extent.
func WithTiles(n int) Option {
	if n < 1 {
		panic(panicTilesInvalid)
	}

	return func(o *Options) { o.tiles = n }
}

// WithLogger sends debug traces of the build phases to l.
// A nil logger keeps the build silent.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.logger = l }
}

func gatherOptions(opts []Option) Options {
	o := Options{
		dir:     DefaultDirection,
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	if o.tiles == 0 {
		o.tiles = o.workers * DefaultTilesPerWorker
	}

	return o
}
