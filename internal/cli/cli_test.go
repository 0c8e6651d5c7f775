package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlset/imageio"
	"github.com/katalvlaran/lvlset/ndimage"
)

// writeImage saves rows as a gray PNG in a temporary directory.
func writeImage(t *testing.T, rows [][]uint8) string {
	t.Helper()
	b, err := ndimage.From2D(rows)
	require.NoError(t, err)
	d, err := ndimage.NewDynamic(b)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "in.png")
	require.NoError(t, imageio.Save(path, d))

	return path
}

var speck = [][]uint8{
	{0, 0, 0, 0},
	{0, 9, 0, 5},
	{0, 0, 0, 5},
}

// run executes the root command and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return out.String(), err
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2026-01-01")
	assert.Equal(t, "1.0.0", version)
	assert.Equal(t, "abc123", commit)
	assert.Equal(t, "2026-01-01", date)
}

func TestTreeCmd(t *testing.T) {
	path := writeImage(t, speck)

	out, err := run(t, "tree", path, "--conn", "c4")
	require.NoError(t, err)
	assert.Contains(t, out, "nodes:     3\n")
	assert.Contains(t, out, "leaves:    2\n")
	assert.Contains(t, out, "shape:     [3 4]\n")

	par, err := run(t, "tree", path, "--conn", "c4", "--workers", "2", "--tiles", "3")
	require.NoError(t, err)
	assert.Equal(t, out, par)

	_, err = run(t, "tree", path, "--conn", "c26")
	assert.Error(t, err)
}

func TestToSCmd(t *testing.T) {
	out, err := run(t, "tos", writeImage(t, speck), "--start", "0,0")
	require.NoError(t, err)
	assert.Contains(t, out, "shape:     [5 7]\n")
	assert.Contains(t, out, "nodes:     3\n")
}

func TestFilterCmd(t *testing.T) {
	in := writeImage(t, speck)
	out := filepath.Join(t.TempDir(), "out.png")

	_, err := run(t, "filter", in, out, "--area", "2")
	require.NoError(t, err)
	d, err := imageio.Load(out)
	require.NoError(t, err)
	b, ok := ndimage.AsBuffer[uint8](d)
	require.True(t, ok)
	assert.Equal(t, []uint8{0, 0, 0, 0, 0, 0, 0, 5, 0, 0, 0, 5}, b.Data())

	_, err = run(t, "filter", in, out, "--area", "3", "--grain")
	require.NoError(t, err)
	d, err = imageio.Load(out)
	require.NoError(t, err)
	b, _ = ndimage.AsBuffer[uint8](d)
	assert.Equal(t, make([]uint8, 12), b.Data())

	_, err = run(t, "filter", in, out, "--closing", "--grain")
	assert.Error(t, err)
}

// loadGray reads a gray PNG written by a command.
func loadGray(t *testing.T, path string) []uint8 {
	t.Helper()
	d, err := imageio.Load(path)
	require.NoError(t, err)
	b, ok := ndimage.AsBuffer[uint8](d)
	require.True(t, ok)

	return b.Data()
}

func TestFilterCmd_GrainStart(t *testing.T) {
	in := writeImage(t, [][]uint8{{0, 9, 0}})
	out := filepath.Join(t.TempDir(), "out.png")

	// From the left pixel, the right 0 is a single-pixel hole in the 9.
	_, err := run(t, "filter", in, out, "--grain", "--area", "2", "--start", "0,0")
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 9, 9}, loadGray(t, out))

	// From the center, both 0s are single-pixel shapes.
	_, err = run(t, "filter", in, out, "--grain", "--area", "2", "--start", "0,1")
	require.NoError(t, err)
	assert.Equal(t, []uint8{9, 9, 9}, loadGray(t, out))

	_, err = run(t, "filter", in, out, "--grain", "--start", "0,5")
	assert.Error(t, err)
}

func TestFilterCmd_GrainFromConfig(t *testing.T) {
	in := writeImage(t, [][]uint8{{0, 9, 0}})
	out := filepath.Join(t.TempDir(), "out.png")
	cfg := filepath.Join(t.TempDir(), "lvlset.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("[filter]\narea = 5\n\n[tos]\nstart = [0, 1]\ngrain = 2\n"), 0o600))

	_, err := run(t, "filter", in, out, "--grain", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, []uint8{9, 9, 9}, loadGray(t, out))

	_, err = run(t, "filter", in, out, "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 0, 0}, loadGray(t, out), "filter.area drives the opening")
}

func TestFilterCmd_NoTreeFlags(t *testing.T) {
	in := writeImage(t, speck)
	out := filepath.Join(t.TempDir(), "out.png")

	for _, flag := range []string{"--dir", "--workers", "--tiles"} {
		_, err := run(t, "filter", in, out, flag, "1")
		assert.Error(t, err, flag)
	}
}

func TestDotCmd(t *testing.T) {
	in := writeImage(t, speck)

	out, err := run(t, "dot", in)
	require.NoError(t, err)
	assert.Contains(t, out, "digraph G {")
	assert.Contains(t, out, "n0 -> n1;")

	svgPath := filepath.Join(t.TempDir(), "tree.svg")
	_, err = run(t, "dot", in, "-o", svgPath, "--tos")
	require.NoError(t, err)
	svg, err := os.ReadFile(svgPath)
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")

	_, err = run(t, "dot", in, "-o", svgPath, "--max-width", "10")
	require.NoError(t, err)
	svg, err = os.ReadFile(svgPath)
	require.NoError(t, err)
	assert.Contains(t, string(svg), `<svg width="10"`)

	_, err = run(t, "dot", in, "--max-nodes", "1")
	assert.Error(t, err)
}

func TestConfigFlag(t *testing.T) {
	in := writeImage(t, speck)
	cfg := filepath.Join(t.TempDir(), "lvlset.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("[tree]\ndirection = \"min\"\n"), 0o600))

	out, err := run(t, "tree", in, "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "nodes:     3\n")

	require.NoError(t, os.WriteFile(cfg, []byte("[tree]\ndirection = \"up\"\n"), 0o600))
	_, err = run(t, "tree", in, "--config", cfg)
	assert.Error(t, err)
}
