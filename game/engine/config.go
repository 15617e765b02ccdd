package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

var defaultMessages = Messages{
	Welcome:   "Move the whole stack onto another peg. A ring may never rest on a smaller one.",
	Picked:    "Ring lifted. Choose a destination peg.",
	Moved:     "Ring moved.",
	Illegal:   "Illegal move, selection cancelled.",
	Cancelled: "Selection cleared.",
	Victory:   "Congratulations! The tower has been moved.",
	RingCount: "Playing with %d rings.",
}

// DefaultGameConfig returns the classic three peg, five ring preset
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Name:        "classic",
		Description: "Three pegs and five rings",
		StickCount:  DefaultStickCount,
		RingCount:   DefaultRingCount,
		RingMin:     DefaultRingMin,
		RingMax:     DefaultRingMax,
		Messages:    defaultMessages,
	}
}

// ValidateGameConfig validates a preset for correctness and playability
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config is nil")
	}

	// Validate required fields
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}

	if config.StickCount < MinStickCount || config.StickCount > MaxStickCount {
		return fmt.Errorf("config validation: stick_count must be between %d and %d, got %d",
			MinStickCount, MaxStickCount, config.StickCount)
	}

	// Validate ring range
	if config.RingMin < MinRings || config.RingMax > MaxRings {
		return fmt.Errorf("config validation: ring range must lie within [%d, %d], got [%d, %d]",
			MinRings, MaxRings, config.RingMin, config.RingMax)
	}
	if config.RingMin > config.RingMax {
		return fmt.Errorf("config validation: ring_min (%d) must not exceed ring_max (%d)",
			config.RingMin, config.RingMax)
	}
	if config.RingCount < config.RingMin || config.RingCount > config.RingMax {
		return fmt.Errorf("config validation: ring_count must be between ring_min (%d) and ring_max (%d), got %d",
			config.RingMin, config.RingMax, config.RingCount)
	}

	// Validate messages
	if config.Messages.Welcome == "" {
		return fmt.Errorf("config validation: messages.welcome is required")
	}
	if config.Messages.Victory == "" {
		return fmt.Errorf("config validation: messages.victory is required")
	}
	if config.Messages.RingCount != "" && strings.Count(config.Messages.RingCount, "%d") != 1 {
		return fmt.Errorf("config validation: messages.ring_count must contain exactly one %%d for the ring count")
	}

	return nil
}

// LoadGameConfig loads and validates a preset from a JSON file
func LoadGameConfig(filename string) (*GameConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", filename, err)
	}

	if err := ValidateGameConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config '%s': %w", filename, err)
	}

	return &config, nil
}

// NewGameState creates the initial layout for a preset: every ring on peg 0
func NewGameState(config *GameConfig) *GameState {
	if config == nil {
		config = DefaultGameConfig()
	}

	msgs := config.Messages
	state := &GameState{
		StickCount:             config.StickCount,
		RingCount:              config.RingCount,
		RingMin:                config.RingMin,
		RingMax:                config.RingMax,
		ConfigName:             config.Name,
		KeepSelectionOnIllegal: config.KeepSelectionOnIllegal,
		msgs:                   &msgs,
	}
	state.ResetBoard()
	state.Message = state.messages().Welcome
	return state
}
