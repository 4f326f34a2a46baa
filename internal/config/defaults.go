package config

import (
	_ "embed"
)

//go:embed defaults/square.yaml
var defaultEngineYAML []byte

// DefaultEngineConfig returns the hardcoded default configuration, used as
// the last fallback if the embedded YAML cannot be parsed.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Window: WindowConfig{
			Width:    80,
			Height:   24,
			Title:    "Miyoo Square",
			TickRate: 60,
		},
		Language: "en",
		Storage: StorageConfig{
			Path: "~/.square/square.db",
		},
		Gameplay: GameplayConfig{
			MoveEveryTicks: 3,
			PickupTarget:   10,
		},
	}
}
