// Package config provides YAML-based engine configuration with an embedded
// default, a user override in ~/.square and an explicit --config path.
package config

import "github.com/miyoosquare/square/internal/core"

// EngineConfig is the top-level configuration for the square engine.
type EngineConfig struct {
	Window   WindowConfig   `yaml:"window"`
	Language string         `yaml:"language"`
	Storage  StorageConfig  `yaml:"storage"`
	Assets   AssetsConfig   `yaml:"assets"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// WindowConfig describes the logical screen the engine renders into.
type WindowConfig struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Title    string `yaml:"title"`
	TickRate int    `yaml:"tick_rate"`
}

// StorageConfig points at the scores/settings database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// AssetsConfig points at the asset manifest.
type AssetsConfig struct {
	Manifest string `yaml:"manifest"`
}

// GameplayConfig tunes the demo gameplay state.
type GameplayConfig struct {
	MoveEveryTicks int `yaml:"move_every_ticks"` // Ticks between square moves while a direction is held
	PickupTarget   int `yaml:"pickup_target"`    // Pickups to collect before the run ends
}

// Runtime converts the window section into the core runtime config the
// platform layer consumes.
func (c EngineConfig) Runtime() core.RuntimeConfig {
	rc := core.DefaultRuntimeConfig()
	if c.Window.Width > 0 {
		rc.ScreenW = c.Window.Width
	}
	if c.Window.Height > 0 {
		rc.ScreenH = c.Window.Height
	}
	if c.Window.TickRate > 0 {
		rc.TickRate = c.Window.TickRate
	}
	return rc
}
