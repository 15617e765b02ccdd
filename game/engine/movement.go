package engine

import "fmt"

// SelectOrMove applies one peg selection to state and returns the resulting
// state. The input state is never modified.
func SelectOrMove(state *GameState, peg int) (*GameState, Outcome) {
	next := state.Clone()

	if peg < 0 || peg >= len(next.Pegs) {
		return next, OutcomeIgnored
	}

	var outcome Outcome
	switch {
	case next.Active == nil && len(next.Pegs[peg]) > 0:
		next.Active = &peg
		next.Message = next.messages().Picked
		outcome = OutcomePicked

	case next.Active != nil && peg != *next.Active && len(next.Pegs[*next.Active]) > 0:
		from := *next.Active
		if next.MoveRing(from, peg) {
			next.Active = nil
			next.Message = next.messages().Moved
			outcome = OutcomeMoved
		} else {
			if !next.KeepSelectionOnIllegal {
				next.Active = nil
			}
			next.Message = fmt.Sprintf("%s [ring %d cannot rest on ring %d]",
				next.messages().Illegal, next.TopOf(from), next.TopOf(peg))
			outcome = OutcomeRejected
		}

	default:
		next.Active = nil
		next.Message = next.messages().Cancelled
		outcome = OutcomeCancelled
	}

	next.Won = next.IsWon()
	if next.Won && outcome == OutcomeMoved {
		next.Message = next.messages().Victory
	}
	return next, outcome
}

// TopOf returns the size of the top ring on a peg, or 0 when the peg is empty
func (gs *GameState) TopOf(peg int) int {
	rings := gs.Pegs[peg]
	if len(rings) == 0 {
		return 0
	}
	return rings[len(rings)-1]
}

// CanPlace reports whether a ring of the given size may land on peg.
// Any ring may land on an empty peg.
func (gs *GameState) CanPlace(ring, peg int) bool {
	if len(gs.Pegs[peg]) == 0 {
		return true
	}
	return ring < gs.TopOf(peg)
}

// MoveRing moves the top ring of from onto to when the move is legal.
// It mutates the receiver and reports whether a ring moved.
func (gs *GameState) MoveRing(from, to int) bool {
	if from == to || len(gs.Pegs[from]) == 0 {
		return false
	}
	ring := gs.TopOf(from)
	if !gs.CanPlace(ring, to) {
		return false
	}
	gs.Pegs[from] = gs.Pegs[from][:len(gs.Pegs[from])-1]
	gs.Pegs[to] = append(gs.Pegs[to], ring)
	return true
}

// IsWon reports whether the whole stack sits on a single peg other than the origin
func (gs *GameState) IsWon() bool {
	for i := 1; i < len(gs.Pegs); i++ {
		if len(gs.Pegs[i]) == gs.RingCount {
			return true
		}
	}
	return false
}

// ChangeRingCount applies a ring count request. Requests outside
// [RingMin, RingMax] or unparseable text keep the previous count.
// The board is rebuilt either way.
func ChangeRingCount(state *GameState, change RingChange) (*GameState, bool) {
	next := state.Clone()

	value, ok := requestedRingCount(state.RingCount, change)
	accepted := ok && value >= state.RingMin && value <= state.RingMax
	if accepted {
		next.RingCount = value
	}

	next.ResetBoard()
	next.Message = fmt.Sprintf(next.messages().RingCount, next.RingCount)
	return next, accepted
}

// ResetBoard stacks every ring on peg 0 and clears the selection
func (gs *GameState) ResetBoard() {
	gs.Pegs = buildPegs(gs.StickCount, gs.RingCount)
	gs.Active = nil
	gs.Won = false
}

// Clone returns a deep copy of the state
func (gs *GameState) Clone() *GameState {
	next := *gs
	next.Pegs = make([][]int, len(gs.Pegs))
	for i, rings := range gs.Pegs {
		next.Pegs[i] = append(make([]int, 0, len(rings)+1), rings...)
	}
	if gs.Active != nil {
		active := *gs.Active
		next.Active = &active
	}
	return &next
}

// View projects the state for renderers
func (gs *GameState) View() View {
	active := NoActiveStick
	if gs.Active != nil {
		active = *gs.Active
	}
	clone := gs.Clone()
	return View{
		Pegs:        clone.Pegs,
		ActiveStick: active,
		RingCount:   gs.RingCount,
		StickCount:  gs.StickCount,
		Won:         gs.Won,
	}
}

// messages returns the configured texts, falling back to the built-in ones
// for any field a preset leaves empty
func (gs *GameState) messages() Messages {
	if gs.msgs == nil {
		return defaultMessages
	}
	m := *gs.msgs
	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&m.Welcome, defaultMessages.Welcome)
	fill(&m.Picked, defaultMessages.Picked)
	fill(&m.Moved, defaultMessages.Moved)
	fill(&m.Illegal, defaultMessages.Illegal)
	fill(&m.Cancelled, defaultMessages.Cancelled)
	fill(&m.Victory, defaultMessages.Victory)
	fill(&m.RingCount, defaultMessages.RingCount)
	return m
}

func requestedRingCount(current int, change RingChange) (int, bool) {
	switch change.Kind {
	case RingPlus:
		return current + 1, true
	case RingMinus:
		return current - 1, true
	case RingSet:
		return parseRingEntry(change.Value)
	default:
		return 0, false
	}
}

func buildPegs(stickCount, ringCount int) [][]int {
	pegs := make([][]int, stickCount)
	origin := make([]int, 0, ringCount)
	for size := ringCount; size > 0; size-- {
		origin = append(origin, size)
	}
	pegs[0] = origin
	for i := 1; i < stickCount; i++ {
		pegs[i] = []int{}
	}
	return pegs
}
