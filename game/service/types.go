package service

import (
	"time"

	"github.com/wricardo/hanoi-game/game/engine"
)

// Event types emitted by game operations
const (
	EventPicked       = "picked"
	EventMoved        = "moved"
	EventRejected     = "rejected"
	EventCancelled    = "cancelled"
	EventIgnored      = "ignored"
	EventVictory      = "victory"
	EventRingsChanged = "rings_changed"
	EventReset        = "reset"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string             `json:"id"`
	ConfigName     string             `json:"config_name"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	GameState      *engine.GameState  `json:"game_state"`
	GameConfig     *engine.GameConfig `json:"game_config"`
	MinimumMoves   int                `json:"minimum_moves"`
}

// SelectResult contains the result of a single input on a session
type SelectResult struct {
	Outcome   engine.Outcome    `json:"outcome,omitempty"`
	Accepted  bool              `json:"accepted"`
	GameState *engine.GameState `json:"game_state"`
	Message   string            `json:"message"`
	Events    []GameEvent       `json:"events,omitempty"`
}

// GameEvent represents an event that occurred during gameplay
type GameEvent struct {
	Type      string    `json:"type"` // "picked", "moved", "rejected", "cancelled", "ignored", "victory", "rings_changed", "reset"
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Peg       *int      `json:"peg,omitempty"`
}

// ConfigInfo provides information about a puzzle preset
type ConfigInfo struct {
	Filename    string `json:"filename"`
	ConfigID    string `json:"config_id"` // The identifier to use for session creation
	Name        string `json:"name"`      // Display name
	Description string `json:"description"`
	StickCount  int    `json:"stick_count"`
	RingCount   int    `json:"ring_count"`
	RingMin     int    `json:"ring_min"`
	RingMax     int    `json:"ring_max"`
}
