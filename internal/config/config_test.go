package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlset/ctree"
	"github.com/katalvlaran/lvlset/internal/config"
	"github.com/katalvlaran/lvlset/ndimage"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lvlset.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	c, err := cfg.Tree.Conn()
	require.NoError(t, err)
	assert.Equal(t, ndimage.Face, c)
	d, err := cfg.Tree.Dir()
	require.NoError(t, err)
	assert.Equal(t, ctree.MaxTree, d)
	assert.Equal(t, config.FormatDOT, cfg.Render.Format)
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
[tree]
connectivity = "c8"
direction = "min"
workers = 4

[filter]
area = 25

[tos]
start = [1, 2]
grain = 7

[render]
format = "svg"
detailed = true
max_width = 800.5
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "c8", cfg.Tree.Connectivity)
	assert.Equal(t, 4, cfg.Tree.Workers)
	assert.Equal(t, 0, cfg.Tree.Tiles)
	assert.Equal(t, 25, cfg.Filter.Area)
	assert.Equal(t, []int{1, 2}, cfg.ToS.Start)
	assert.Equal(t, 7, cfg.ToS.Grain)
	assert.Equal(t, 800.5, cfg.Render.MaxWidth)
	assert.Equal(t, config.FormatSVG, cfg.Render.Format)
	assert.True(t, cfg.Render.Detailed)
	assert.Equal(t, 2000, cfg.Render.MaxNodes, "untouched keys keep defaults")
}

func TestLoad_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":  "[tree]\ncolour = \"red\"\n",
		"connectivity": "[tree]\nconnectivity = \"c5\"\n",
		"direction":    "[tree]\ndirection = \"up\"\n",
		"workers":      "[tree]\nworkers = -1\n",
		"area":         "[filter]\narea = -3\n",
		"format":       "[render]\nformat = \"pdf\"\n",
		"start":        "[tos]\nstart = [-1]\n",
		"grain":        "[tos]\ngrain = -2\n",
		"max width":    "[render]\nmax_width = -1.0\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, body))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	_, err := config.Load(writeFile(t, "[tree\n"))
	assert.Error(t, err, "malformed TOML")

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
