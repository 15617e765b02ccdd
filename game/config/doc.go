// Package config provides preset and settings management for the Tower of Hanoi game.
//
// The config package handles:
//   - Loading puzzle presets from JSON files
//   - Preset validation and caching
//   - Default preset selection
//   - Process settings from hanoi.toml and HANOI_* environment variables
//
// Preset Format:
//
// Presets are stored as JSON files in the configs directory. The file name
// without extension is the preset ID used to create sessions. Each preset
// defines the peg count, the starting ring count and the range the player
// may change it within, plus the messages shown on each transition:
//
//	{
//	  "name": "Classic",
//	  "description": "Three pegs and five rings",
//	  "stick_count": 3,
//	  "ring_count": 5,
//	  "ring_min": 3,
//	  "ring_max": 20,
//	  "messages": {"welcome": "...", "victory": "...", "ring_count": "Playing with %d rings."}
//	}
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	gameConfig, err := manager.LoadConfig("four_pegs")
//	if errors.Is(err, config.ErrConfigNotFound) {
//		// err names the closest preset ID when one is near
//	}
//
//	settings, err := config.LoadSettings()
package config
