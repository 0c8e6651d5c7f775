// Package config loads the lvlset command-line configuration from TOML.
//
// A configuration file looks like:
//
//	[tree]
//	connectivity = "c8"
//	direction = "min"
//	workers = 4
//	tiles = 16
//
//	[filter]
//	area = 25
//
//	[tos]
//	start = [0, 0]
//	grain = 25
//
//	[render]
//	format = "svg"
//	detailed = true
//	max_nodes = 500
//	max_width = 1200
//
// Missing keys keep their Default value; command-line flags override the
// file.
package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/lvlset/ctree"
	"github.com/katalvlaran/lvlset/ndimage"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Render formats.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
)

// Config is the full CLI configuration.
type Config struct {
	Tree   Tree   `toml:"tree"`
	Filter Filter `toml:"filter"`
	ToS    ToS    `toml:"tos"`
	Render Render `toml:"render"`
}

// Tree configures max-tree and min-tree builds.
type Tree struct {
	Connectivity string `toml:"connectivity"` // face, full, c4, c8, ...
	Direction    string `toml:"direction"`    // max or min
	Workers      int    `toml:"workers"`      // 0 ⇒ sequential build; >0 ⇒ tile-parallel with that many workers
	Tiles        int    `toml:"tiles"`        // 0 ⇒ builder default
}

// Filter configures area filters.
type Filter struct {
	Area int `toml:"area"`
}

// ToS configures tree-of-shapes builds.
type ToS struct {
	Start []int `toml:"start"` // empty ⇒ origin
	Grain int   `toml:"grain"` // area threshold of filter --grain
}

// Render configures tree export.
type Render struct {
	Format   string  `toml:"format"`
	Detailed bool    `toml:"detailed"`
	MaxNodes int     `toml:"max_nodes"`
	MaxWidth float64 `toml:"max_width"` // SVG width cap in user units; 0 ⇒ natural size
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Tree:   Tree{Connectivity: ndimage.Face.String(), Direction: ctree.MaxTree.String()},
		Render: Render{Format: FormatDOT, MaxNodes: 2000},
	}
}

// Load reads path over Default and validates the result. Unknown keys
// are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("unknown key %q: %w", undecoded[0].String(), ErrInvalid)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if _, err := c.Tree.Conn(); err != nil {
		return err
	}
	if _, err := c.Tree.Dir(); err != nil {
		return err
	}
	switch {
	case c.Tree.Workers < 0:
		return fmt.Errorf("tree.workers=%d: %w", c.Tree.Workers, ErrInvalid)
	case c.Tree.Tiles < 0:
		return fmt.Errorf("tree.tiles=%d: %w", c.Tree.Tiles, ErrInvalid)
	case c.Filter.Area < 0:
		return fmt.Errorf("filter.area=%d: %w", c.Filter.Area, ErrInvalid)
	case c.ToS.Grain < 0:
		return fmt.Errorf("tos.grain=%d: %w", c.ToS.Grain, ErrInvalid)
	case c.Render.MaxNodes < 0:
		return fmt.Errorf("render.max_nodes=%d: %w", c.Render.MaxNodes, ErrInvalid)
	case c.Render.MaxWidth < 0:
		return fmt.Errorf("render.max_width=%g: %w", c.Render.MaxWidth, ErrInvalid)
	}
	for _, v := range c.ToS.Start {
		if v < 0 {
			return fmt.Errorf("tos.start=%v: %w", c.ToS.Start, ErrInvalid)
		}
	}
	if c.Render.Format != FormatDOT && c.Render.Format != FormatSVG {
		return fmt.Errorf("render.format=%q: %w", c.Render.Format, ErrInvalid)
	}

	return nil
}

// Conn parses the connectivity name.
func (t Tree) Conn() (ndimage.Connectivity, error) {
	c, err := ndimage.ParseConnectivity(t.Connectivity)
	if err != nil {
		return 0, fmt.Errorf("tree.connectivity: %w: %w", ErrInvalid, err)
	}

	return c, nil
}

// Dir parses the direction name.
func (t Tree) Dir() (ctree.Direction, error) {
	d, err := ctree.ParseDirection(t.Direction)
	if err != nil {
		return 0, fmt.Errorf("tree.direction: %w: %w", ErrInvalid, err)
	}

	return d, nil
}
