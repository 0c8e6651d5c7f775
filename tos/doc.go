// Package tos computes the tree of shapes of an N-D image: the
// self-dual hierarchy of connected components of upper and lower level
// sets with their holes filled.
//
// The construction runs in four steps:
//
//  1. Quantize maps sample values to dense ranks 0..L-1.
//  2. Immerse interpolates the image onto a grid of 2n−1 points per axis
//     where every point carries the interval [min, max] of the original
//     pixels it touches.
//  3. Propagate floods that grid from a start point with a hierarchical
//     queue, following level lines, and records the depth at which every
//     point was reached.
//  4. The max-tree of the depth map (face connectivity) is the tree of
//     shapes; node levels are mapped back to original sample values.
//
// Multi-channel images are handled through a total order on vectors
// (BuildFunc, BuildVector); the tree is that of the rank image.
package tos
