package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/mengzhisuoliu/libpag/drawable"
)

// config holds the demo settings. A TOML file may provide them:
//
//	width = 1280
//	height = 720
//	duration = 300
//	api = "vulkan"
type config struct {
	Width    int    `toml:"width"`
	Height   int    `toml:"height"`
	Duration int64  `toml:"duration"`
	API      string `toml:"api"`
	Verbose  bool   `toml:"verbose"`
}

func defaultConfig() config {
	return config{
		Width:    640,
		Height:   360,
		Duration: 150,
		API:      string(drawable.APINoop),
	}
}

// loadConfig overwrites cfg with the settings found in the TOML file at path.
func loadConfig(path string, cfg *config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// mergeConfig returns file with the flags named in set taken from flags.
func mergeConfig(file, flags config, set map[string]bool) config {
	out := file
	if set["width"] {
		out.Width = flags.Width
	}
	if set["height"] {
		out.Height = flags.Height
	}
	if set["duration"] {
		out.Duration = flags.Duration
	}
	if set["api"] {
		out.API = flags.API
	}
	if set["v"] {
		out.Verbose = flags.Verbose
	}
	return out
}
