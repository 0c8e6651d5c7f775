package ndimage_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlset/ndimage"
)

func TestShape_IndexCoordRoundTrip(t *testing.T) {
	s := ndimage.Shape{3, 4, 5}
	require.NoError(t, s.Validate())
	assert.Equal(t, 60, s.Len())
	assert.Equal(t, []int{20, 5, 1}, s.Strides())

	var coord []int
	for p := 0; p < s.Len(); p++ {
		coord = s.Coord(p, coord)
		require.True(t, s.Contains(coord))
		assert.Equal(t, p, s.Index(coord))
	}
}

func TestShape_Validate(t *testing.T) {
	assert.ErrorIs(t, ndimage.Shape{}.Validate(), ndimage.ErrEmptyDomain)
	assert.ErrorIs(t, ndimage.Shape{2, 0}.Validate(), ndimage.ErrEmptyDomain)
	assert.ErrorIs(t, ndimage.Shape{-1}.Validate(), ndimage.ErrEmptyDomain)
	assert.NoError(t, ndimage.Shape{1}.Validate())

	assert.ErrorIs(t, ndimage.Shape{4, 1<<62 + 1}.Validate(), ndimage.ErrTooLarge)
	assert.ErrorIs(t, ndimage.Shape{1 << 32, 1 << 32}.Validate(), ndimage.ErrTooLarge)
	assert.NoError(t, ndimage.Shape{1 << 31, 1 << 31}.Validate())

	_, err := ndimage.New[uint8](4, 1<<62+1)
	assert.ErrorIs(t, err, ndimage.ErrTooLarge)
}

func TestBuffer_Constructors(t *testing.T) {
	_, err := ndimage.New[uint8]()
	assert.ErrorIs(t, err, ndimage.ErrEmptyDomain)

	_, err = ndimage.FromSlice([]int{1, 2, 3}, 2, 2)
	assert.ErrorIs(t, err, ndimage.ErrSizeMismatch)

	_, err = ndimage.From2D[int](nil)
	assert.ErrorIs(t, err, ndimage.ErrEmptyDomain)

	_, err = ndimage.From2D([][]int{{1, 2}, {3}})
	assert.ErrorIs(t, err, ndimage.ErrNonRectangular)

	b, err := ndimage.From2D([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	assert.Equal(t, ndimage.Shape{2, 3}, b.Shape())
	assert.Equal(t, 6, b.AtCoord(1, 2))
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}}, b.Rows())

	c := b.Clone()
	c.Set(0, 42)
	assert.Equal(t, 1, b.At(0), "Clone must not share storage")
}

func TestConnectivity_Offsets(t *testing.T) {
	assert.Len(t, ndimage.Face.Offsets(1), 2)
	assert.Len(t, ndimage.Conn4.Offsets(2), 4)
	assert.Len(t, ndimage.Conn8.Offsets(2), 8)
	assert.Len(t, ndimage.Conn6.Offsets(3), 6)
	assert.Len(t, ndimage.Conn26.Offsets(3), 26)
}

func TestConnectivity_Check(t *testing.T) {
	assert.NoError(t, ndimage.Conn4.Check(ndimage.Shape{2, 2}))
	assert.ErrorIs(t, ndimage.Conn4.Check(ndimage.Shape{2, 2, 2}), ndimage.ErrConnectivity)
	assert.ErrorIs(t, ndimage.Conn26.Check(ndimage.Shape{5}), ndimage.ErrConnectivity)
	assert.NoError(t, ndimage.Full.Check(ndimage.Shape{2, 2, 2, 2}))
	assert.ErrorIs(t, ndimage.Connectivity(99).Check(ndimage.Shape{2}), ndimage.ErrConnectivity)

	c, err := ndimage.ParseConnectivity("c8")
	require.NoError(t, err)
	assert.Equal(t, ndimage.Conn8, c)
	_, err = ndimage.ParseConnectivity("c5")
	assert.ErrorIs(t, err, ndimage.ErrConnectivity)
}

// TestNeighborhood_Corners checks neighbor counts on a 3×3 grid:
// corner, edge-middle and center pixels under C4 and C8.
func TestNeighborhood_Corners(t *testing.T) {
	s := ndimage.Shape{3, 3}
	c4, err := ndimage.NewNeighborhood(s, ndimage.Conn4)
	require.NoError(t, err)
	c8, err := ndimage.NewNeighborhood(s, ndimage.Conn8)
	require.NoError(t, err)

	cases := []struct {
		p      int
		n4, n8 int
	}{
		{0, 2, 3},
		{1, 3, 5},
		{4, 4, 8},
		{8, 2, 3},
	}
	for _, tc := range cases {
		assert.Len(t, c4.Neighbors(tc.p, nil), tc.n4, "c4 p=%d", tc.p)
		assert.Len(t, c8.Neighbors(tc.p, nil), tc.n8, "c8 p=%d", tc.p)
	}

	got := c4.Neighbors(4, nil)
	sort.Ints(got)
	assert.Equal(t, []int{1, 3, 5, 7}, got)
}

func TestNeighborhood_NeighborsIn(t *testing.T) {
	s := ndimage.Shape{4, 2}
	nh, err := ndimage.NewNeighborhood(s, ndimage.Conn4)
	require.NoError(t, err)

	slabs := s.SplitAxis0(2)
	require.Len(t, slabs, 2)
	assert.Equal(t, []int{0, 1, 2, 3}, slabs[0].Indices(s))
	assert.Equal(t, []int{4, 5, 6, 7}, slabs[1].Indices(s))

	// pixel 2 = (1,0): neighbors (0,0)=0, (2,0)=4, (1,1)=3; 4 lies in the other slab.
	got := nh.NeighborsIn(2, slabs[0], nil)
	sort.Ints(got)
	assert.Equal(t, []int{0, 3}, got)
}

func TestShape_SplitAxis0(t *testing.T) {
	s := ndimage.Shape{5, 3}
	boxes := s.SplitAxis0(3)
	require.Len(t, boxes, 3)
	total := 0
	for _, b := range boxes {
		total += b.Len()
	}
	assert.Equal(t, s.Len(), total)
	assert.Len(t, s.SplitAxis0(10), 5, "slab count clamps to the first extent")
	assert.Len(t, s.SplitAxis0(0), 1)
}

func TestDynamic(t *testing.T) {
	b, err := ndimage.New[uint16](2, 2)
	require.NoError(t, err)
	d, err := ndimage.NewDynamic(b)
	require.NoError(t, err)
	assert.Equal(t, ndimage.Uint16, d.Kind())
	assert.True(t, d.Kind().Scalar())
	assert.Equal(t, ndimage.Shape{2, 2}, d.Shape())

	got, ok := ndimage.AsBuffer[uint16](d)
	assert.True(t, ok)
	assert.Same(t, b, got)
	_, ok = ndimage.AsBuffer[uint8](d)
	assert.False(t, ok)

	_, err = ndimage.NewDynamic([]int{1})
	assert.ErrorIs(t, err, ndimage.ErrUnsupportedKind)

	assert.Equal(t, -1, ndimage.CompareRGB(ndimage.RGB{1, 2, 3}, ndimage.RGB{1, 3, 0}))
	assert.Equal(t, 0, ndimage.CompareRGB(ndimage.RGB{1, 2, 3}, ndimage.RGB{1, 2, 3}))
}
