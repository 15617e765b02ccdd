package engine

// Outcome classifies what a single peg selection did to the game state
type Outcome string

const (
	OutcomePicked    Outcome = "picked"
	OutcomeMoved     Outcome = "moved"
	OutcomeRejected  Outcome = "rejected"
	OutcomeCancelled Outcome = "cancelled"
	OutcomeIgnored   Outcome = "ignored"

	// Validation constants
	MinStickCount = 3
	MaxStickCount = 9
	MinRings      = 1
	MaxRings      = 20

	// Defaults mirror the classic browser layout
	DefaultStickCount = 3
	DefaultRingCount  = 5
	DefaultRingMin    = 3
	DefaultRingMax    = 20

	// NoActiveStick is what View reports while no peg is held
	NoActiveStick = -1
)

// GameConfig represents a puzzle preset loaded from JSON
type GameConfig struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	StickCount  int    `json:"stick_count"`
	RingCount   int    `json:"ring_count"`
	RingMin     int    `json:"ring_min"`
	RingMax     int    `json:"ring_max"`

	// KeepSelectionOnIllegal leaves the ring held after an illegal drop instead
	// of cancelling the pick.
	KeepSelectionOnIllegal bool `json:"keep_selection_on_illegal,omitempty"`

	Messages Messages `json:"messages"`
}

// Messages are the player-facing texts emitted on each transition
type Messages struct {
	Welcome   string `json:"welcome"`
	Picked    string `json:"picked"`
	Moved     string `json:"moved"`
	Illegal   string `json:"illegal"`
	Cancelled string `json:"cancelled"`
	Victory   string `json:"victory"`
	RingCount string `json:"ring_count"`
}

// GameState represents the complete puzzle state.
// Pegs are listed bottom to top; ring size 1 is the smallest.
type GameState struct {
	Pegs       [][]int `json:"pegs"`
	Active     *int    `json:"active_stick"`
	StickCount int     `json:"stick_count"`
	RingCount  int     `json:"ring_count"`
	RingMin    int     `json:"ring_min"`
	RingMax    int     `json:"ring_max"`
	Won        bool    `json:"won"`
	Message    string  `json:"message"`
	ConfigName string  `json:"config_name"`

	KeepSelectionOnIllegal bool `json:"keep_selection_on_illegal,omitempty"`

	msgs *Messages
}

// View is the read-only projection consumed by renderers
type View struct {
	Pegs        [][]int `json:"pegs"`
	ActiveStick int     `json:"active_stick"`
	RingCount   int     `json:"ring_count"`
	StickCount  int     `json:"stick_count"`
	Won         bool    `json:"won"`
}

// RingChangeKind selects how a ring count request is interpreted
type RingChangeKind string

const (
	RingPlus  RingChangeKind = "plus"
	RingMinus RingChangeKind = "minus"
	RingSet   RingChangeKind = "set"
)

// RingChange is a request to reconfigure the number of rings.
// Value is only read for RingSet and holds the raw text entry.
type RingChange struct {
	Kind  RingChangeKind `json:"action"`
	Value string         `json:"value,omitempty"`
}
