package canvas_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlset/canvas"
	"github.com/katalvlaran/lvlset/ctree"
	"github.com/katalvlaran/lvlset/maxtree"
	"github.com/katalvlaran/lvlset/ndimage"
	"github.com/katalvlaran/lvlset/tos"
)

func dynamic[V any](t *testing.T, rows [][]V) ndimage.Dynamic {
	t.Helper()
	b, err := ndimage.From2D(rows)
	require.NoError(t, err)
	d, err := ndimage.NewDynamic(b)
	require.NoError(t, err)

	return d
}

func TestBuild_EveryScalarKind(t *testing.T) {
	inputs := map[string]ndimage.Dynamic{
		"uint8":   dynamic(t, [][]uint8{{1, 2}, {2, 3}}),
		"uint16":  dynamic(t, [][]uint16{{1, 2}, {2, 3}}),
		"int32":   dynamic(t, [][]int32{{1, 2}, {2, 3}}),
		"float32": dynamic(t, [][]float32{{1, 2}, {2, 3}}),
		"float64": dynamic(t, [][]float64{{1, 2}, {2, 3}}),
	}
	for name, d := range inputs {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, name, d.Kind().String())

			tr, err := canvas.Build(d, ndimage.Conn4, ctree.MaxTree)
			require.NoError(t, err)
			assert.Equal(t, 3, tr.Len())
			assert.Equal(t, 1, tr.NodeOf(1))
			assert.Equal(t, []int{4, 3, 1}, tr.Area())

			par, err := canvas.BuildParallel(d, ndimage.Conn4, ctree.MaxTree, maxtree.WithTiles(2))
			require.NoError(t, err)
			for n := 0; n < tr.Len(); n++ {
				assert.Equal(t, tr.ParentOf(n), par.ParentOf(n))
				assert.Equal(t, tr.Level(n), par.Level(n))
			}

			minT, err := canvas.Build(d, ndimage.Conn4, ctree.MinTree)
			require.NoError(t, err)
			assert.Equal(t, ctree.MinTree, minT.Direction())
			assert.Equal(t, 3, minT.Len())
		})
	}
}

func TestBuild_RGB(t *testing.T) {
	d := dynamic(t, [][]ndimage.RGB{{{0, 0, 9}, {1, 0, 0}}, {{1, 0, 0}, {0, 0, 9}}})
	tr, err := canvas.Build(d, ndimage.Conn8, ctree.MaxTree)
	require.NoError(t, err)
	assert.Equal(t, 2, tr.Len())
	assert.Equal(t, ndimage.RGB{0, 0, 9}, tr.Level(ctree.Root))
}

func TestBuildToS(t *testing.T) {
	gray := dynamic(t, [][]uint8{{0, 0, 0}, {0, 7, 0}, {0, 0, 0}})
	tr, err := canvas.BuildToS(gray)
	require.NoError(t, err)
	assert.Equal(t, 2, tr.Len())
	assert.Equal(t, uint8(7), tr.Level(1))

	color := dynamic(t, [][]ndimage.RGB{{{1, 1, 1}, {1, 1, 1}}, {{1, 1, 1}, {1, 1, 1}}})
	tr, err = canvas.BuildToS(color)
	require.NoError(t, err)
	assert.Equal(t, 1, tr.Len())
}

func TestAreaFilter(t *testing.T) {
	d := dynamic(t, [][]uint16{{0, 0, 0}, {0, 7, 0}, {3, 3, 3}})
	out, err := canvas.AreaFilter(d, ndimage.Conn4, ctree.MaxTree, 2)
	require.NoError(t, err)
	b, ok := ndimage.AsBuffer[uint16](out)
	require.True(t, ok)
	assert.Equal(t, []uint16{0, 0, 0, 0, 3, 0, 3, 3, 3}, b.Data(), "the peak drops to the 3-plateau it touches")

	out, err = canvas.AreaFilter(d, ndimage.Conn4, ctree.MinTree, 7)
	require.NoError(t, err)
	b, _ = ndimage.AsBuffer[uint16](out)
	assert.Equal(t, []uint16{3, 3, 3, 3, 7, 3, 3, 3, 3}, b.Data())

	color := dynamic(t, [][]ndimage.RGB{{{1, 1, 1}}})
	_, err = canvas.AreaFilter(color, ndimage.Conn4, ctree.MaxTree, 2)
	assert.ErrorIs(t, err, canvas.ErrUnsupportedKind)
}

func TestGrainFilter(t *testing.T) {
	d := dynamic(t, [][]float64{{0, 0, 0}, {0, 7, 0}, {0, 0, 0}})
	out, err := canvas.GrainFilter(d, 2)
	require.NoError(t, err)
	b, ok := ndimage.AsBuffer[float64](out)
	require.True(t, ok)
	assert.Equal(t, make([]float64, 9), b.Data())
}

func TestGrainFilter_Start(t *testing.T) {
	d := dynamic(t, [][]uint8{{0, 9, 0}})

	out, err := canvas.GrainFilter(d, 2, tos.WithStart(0, 1))
	require.NoError(t, err)
	b, ok := ndimage.AsBuffer[uint8](out)
	require.True(t, ok)
	assert.Equal(t, []uint8{9, 9, 9}, b.Data())

	_, err = canvas.GrainFilter(d, 2, tos.WithStart(1, 0))
	assert.ErrorIs(t, err, tos.ErrStart)
}

func TestBuild_KeepsCallerOptions(t *testing.T) {
	d := dynamic(t, [][]uint8{{1, 2}, {2, 3}})
	opts := make([]maxtree.Option, 1, 2)
	opts[0] = maxtree.WithWorkers(2)

	_, err := canvas.Build(d, ndimage.Conn4, ctree.MinTree, opts...)
	require.NoError(t, err)
	_, err = canvas.BuildParallel(d, ndimage.Conn4, ctree.MinTree, opts...)
	require.NoError(t, err)
	_, err = canvas.AreaFilter(d, ndimage.Conn4, ctree.MinTree, 2, opts...)
	require.NoError(t, err)
	assert.Nil(t, opts[:cap(opts)][1])
}

func TestUnsupportedKind(t *testing.T) {
	var zero ndimage.Dynamic
	_, err := canvas.Build(zero, ndimage.Conn4, ctree.MaxTree)
	assert.ErrorIs(t, err, canvas.ErrUnsupportedKind)
	_, err = canvas.BuildToS(zero)
	assert.ErrorIs(t, err, canvas.ErrUnsupportedKind)
	_, err = canvas.GrainFilter(zero, 1)
	assert.ErrorIs(t, err, canvas.ErrUnsupportedKind)
}
