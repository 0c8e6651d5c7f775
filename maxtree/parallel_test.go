// SPDX-License-Identifier: MIT

package maxtree_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlset/ctree"
	"github.com/katalvlaran/lvlset/maxtree"
	"github.com/katalvlaran/lvlset/ndimage"
)

func TestBuildParallel_MatchesSequential(t *testing.T) {
	cases := []struct {
		shape []int
		conn  ndimage.Connectivity
		dir   ctree.Direction
	}{
		{[]int{17, 13}, ndimage.Conn4, ctree.MaxTree},
		{[]int{17, 13}, ndimage.Conn8, ctree.MaxTree},
		{[]int{16, 9}, ndimage.Conn8, ctree.MinTree},
		{[]int{6, 5, 4}, ndimage.Conn6, ctree.MaxTree},
		{[]int{6, 5, 4}, ndimage.Conn26, ctree.MinTree},
		{[]int{40}, ndimage.Conn2, ctree.MaxTree},
	}
	for i, tc := range cases {
		img := randomBuffer(int64(100+i), 6, tc.shape...)
		want, err := maxtree.Build[uint8](img, tc.conn, maxtree.WithDirection(tc.dir))
		require.NoError(t, err)

		for _, tiles := range []int{1, 2, 3, 5, 64} {
			for _, workers := range []int{1, 4} {
				name := fmt.Sprintf("%v/%v/%v/tiles=%d/workers=%d", tc.shape, tc.conn, tc.dir, tiles, workers)
				t.Run(name, func(t *testing.T) {
					got, err := maxtree.BuildParallel[uint8](img, tc.conn,
						maxtree.WithDirection(tc.dir), maxtree.WithTiles(tiles), maxtree.WithWorkers(workers))
					require.NoError(t, err)
					assert.Equal(t, want.Parents(), got.Parents())
					assert.Equal(t, want.Values(), got.Values())
					assert.Equal(t, want.NodeMap(), got.NodeMap())
				})
			}
		}
	}
}

// TestBuildParallel_FewLevels stresses the border merge with large flat
// zones spanning every slab.
func TestBuildParallel_FewLevels(t *testing.T) {
	img := randomBuffer(5, 2, 32, 8)
	want, err := maxtree.Build[uint8](img, ndimage.Conn4)
	require.NoError(t, err)

	got, err := maxtree.BuildParallel[uint8](img, ndimage.Conn4, maxtree.WithTiles(32), maxtree.WithWorkers(8))
	require.NoError(t, err)
	assert.Equal(t, want.Parents(), got.Parents())
	assert.Equal(t, want.NodeMap(), got.NodeMap())
}

func TestBuildParallel_Errors(t *testing.T) {
	_, err := maxtree.BuildParallel[uint8](nil, ndimage.Conn4)
	assert.ErrorIs(t, err, maxtree.ErrNilImage)

	img := randomBuffer(1, 3, 4, 4)
	_, err = maxtree.BuildParallel[uint8](img, ndimage.Conn26)
	assert.ErrorIs(t, err, ndimage.ErrConnectivity)
}
