package tos

import "github.com/katalvlaran/lvlset/ndimage"

// LexRank ranks color samples in lexicographic channel order.
func LexRank(vals []ndimage.RGB) (ranks []int, levels []ndimage.RGB) {
	return Quantize(vals, ndimage.CompareRGB)
}

// BuildVector computes the tree of shapes of a color image. Colors are
// totally ordered lexicographically (R, then G, then B) and the tree is
// the one of the resulting rank image; Levels hold the colors.
func BuildVector(img ndimage.Image[ndimage.RGB], opts ...Option) (*Result[ndimage.RGB], error) {
	return BuildFunc(img, ndimage.CompareRGB, opts...)
}

// MeanChannels returns, for every node of r, the per-channel mean color of
// the original pixels of its shape. img must be the image r was built
// from. Nodes whose shape holds interpolated points only get the mean of
// their parent.
func MeanChannels(r *Result[ndimage.RGB], img ndimage.Image[ndimage.RGB]) [][3]float64 {
	n := r.Len()
	sum := make([][3]float64, n)
	count := make([]int, n)
	for p := 0; p < r.shape.Len(); p++ {
		id := r.NodeOfPixel(p)
		c := img.At(p)
		for ch := range c {
			sum[id][ch] += float64(c[ch])
		}
		count[id]++
	}
	for i := n - 1; i > 0; i-- {
		par := r.ParentOf(i)
		for ch := range sum[i] {
			sum[par][ch] += sum[i][ch]
		}
		count[par] += count[i]
	}

	mean := make([][3]float64, n)
	for i := range mean {
		if count[i] == 0 {
			// parents precede children, so mean[parent] is final
			mean[i] = mean[r.ParentOf(i)]
			continue
		}
		for ch := range mean[i] {
			mean[i][ch] = sum[i][ch] / float64(count[i])
		}
	}

	return mean
}
