// Package canvas dispatches the generic builders of maxtree and tos over
// buffers whose sample type is only known at run time (ndimage.Dynamic),
// as produced by image decoders.
//
// Scalar kinds use their natural order. RGB8 samples use the lexicographic
// order of ndimage.CompareRGB; area filters are not defined for them.
package canvas

import "github.com/katalvlaran/lvlset/ndimage"

// ErrUnsupportedKind is returned for sample kinds an operation cannot
// handle. It is the ndimage sentinel, re-exported for convenience.
var ErrUnsupportedKind = ndimage.ErrUnsupportedKind
