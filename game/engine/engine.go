package engine

import "fmt"

// Engine provides the main interface for puzzle operations
type Engine interface {
	// Game state management
	GetState() *GameState
	SetState(state *GameState) error
	Reset() *GameState
	IsWon() bool
	GetView() View

	// Input
	Select(peg int) Outcome
	Click(x, width float64) Outcome
	KeyPress(key string) Outcome
	ChangeRingCount(change RingChange) bool

	// Configuration
	GetConfig() *GameConfig
}

// GameEngine implements the Engine interface by swapping in the states
// produced by the pure transition functions.
type GameEngine struct {
	state  *GameState
	config *GameConfig
}

// NewEngine creates a new game engine with the provided configuration
func NewEngine(config *GameConfig) (*GameEngine, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}

	return &GameEngine{
		config: config,
		state:  NewGameState(config),
	}, nil
}

// NewEngineWithDefaults creates a new game engine with the classic preset
func NewEngineWithDefaults() *GameEngine {
	config := DefaultGameConfig()
	return &GameEngine{
		config: config,
		state:  NewGameState(config),
	}
}

// GetState returns the current game state
func (e *GameEngine) GetState() *GameState {
	return e.state
}

// SetState replaces the game state. Player-facing texts always come from
// the engine's preset, so a state decoded from JSON keeps them.
func (e *GameEngine) SetState(state *GameState) error {
	if state == nil {
		return fmt.Errorf("state cannot be nil")
	}
	if err := CheckInvariants(state); err != nil {
		return fmt.Errorf("invalid state: %w", err)
	}
	next := state.Clone()
	msgs := e.config.Messages
	next.msgs = &msgs
	e.state = next
	return nil
}

// Reset restores the initial layout for the current ring count
func (e *GameEngine) Reset() *GameState {
	next := e.state.Clone()
	next.ResetBoard()
	next.Message = next.messages().Welcome
	e.state = next
	return e.state
}

// IsWon returns whether the tower has been relocated
func (e *GameEngine) IsWon() bool {
	return e.state.Won
}

// GetView returns the renderer projection of the current state
func (e *GameEngine) GetView() View {
	return e.state.View()
}

// Select applies a selection of peg (0-based)
func (e *GameEngine) Select(peg int) Outcome {
	next, outcome := SelectOrMove(e.state, peg)
	e.state = next
	return outcome
}

// Click maps a pointer position to a peg and selects it.
// Positions outside the board are ignored.
func (e *GameEngine) Click(x, width float64) Outcome {
	peg, ok := PegFromPointer(x, width, e.state.StickCount)
	if !ok {
		return OutcomeIgnored
	}
	return e.Select(peg)
}

// KeyPress selects the peg whose 1-based number matches key
func (e *GameEngine) KeyPress(key string) Outcome {
	peg, ok := PegFromKey(key, e.state.StickCount)
	if !ok {
		return OutcomeIgnored
	}
	return e.Select(peg)
}

// ChangeRingCount reconfigures the ring count and rebuilds the board
func (e *GameEngine) ChangeRingCount(change RingChange) bool {
	next, accepted := ChangeRingCount(e.state, change)
	e.state = next
	return accepted
}

// GetConfig returns the current game configuration
func (e *GameEngine) GetConfig() *GameConfig {
	return e.config
}
