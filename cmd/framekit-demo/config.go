package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"framekit"
)

// demoConfig is the top-level TOML structure for demo settings.
type demoConfig struct {
	Backend string       `toml:"backend"` // "app" or "tea"
	Aspect  aspectConfig `toml:"aspect"`
	Scroll  scrollConfig `toml:"scroll"`
	Nested  nestedConfig `toml:"nested"`
}

type aspectConfig struct {
	RatioW float64 `toml:"ratio_w"`
	RatioH float64 `toml:"ratio_h"`
	Anchor string  `toml:"anchor"`
}

type scrollConfig struct {
	ContentWidth  int    `toml:"content_width"`
	ContentHeight int    `toml:"content_height"`
	Policy        string `toml:"policy"` // "auto", "always", "never"
	WheelStep     int    `toml:"wheel_step"`
}

type nestedConfig struct {
	Depth int `toml:"depth"`
}

func defaultConfig() demoConfig {
	return demoConfig{
		Backend: "app",
		Aspect:  aspectConfig{RatioW: 16, RatioH: 9, Anchor: "center"},
		Scroll:  scrollConfig{ContentHeight: 60, Policy: "auto", WheelStep: 3},
		Nested:  nestedConfig{Depth: 3},
	}
}

// loadConfig reads TOML settings from path, layered over the defaults.
// A missing file is not an error; a malformed one is.
func loadConfig(path string) (demoConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

var anchorsByName = map[string]framekit.Anchor{
	"center": framekit.AnchorCenter,
	"n":      framekit.AnchorN,
	"ne":     framekit.AnchorNE,
	"e":      framekit.AnchorE,
	"se":     framekit.AnchorSE,
	"s":      framekit.AnchorS,
	"sw":     framekit.AnchorSW,
	"w":      framekit.AnchorW,
	"nw":     framekit.AnchorNW,
}

func (c aspectConfig) anchor() (framekit.Anchor, error) {
	a, ok := anchorsByName[c.Anchor]
	if !ok {
		return 0, fmt.Errorf("unknown anchor %q", c.Anchor)
	}
	return a, nil
}

func (c scrollConfig) policy() (framekit.ScrollbarPolicy, error) {
	switch c.Policy {
	case "", "auto":
		return framekit.ScrollbarAuto, nil
	case "always":
		return framekit.ScrollbarAlways, nil
	case "never":
		return framekit.ScrollbarNever, nil
	}
	return 0, fmt.Errorf("unknown scrollbar policy %q", c.Policy)
}
