// Package engine provides the core puzzle logic for the Tower of Hanoi game.
//
// The engine package implements:
//   - Peg and ring state with the strict bottom-to-top size ordering
//   - Peg selection and ring moves as pure state transitions
//   - Win detection (the whole stack on any peg other than the origin)
//   - Ring count reconfiguration within a preset's [ring_min, ring_max]
//   - Mapping of pointer positions and key presses to peg indices
//   - Preset validation and loading
//
// Core Types:
//
// GameState holds the pegs, the optional active peg and the ring range.
// SelectOrMove and ChangeRingCount take a state and return a new one, leaving
// the input untouched. GameEngine wraps them for callers that keep one
// current state, such as sessions and the terminal UI.
//
// Usage:
//
//	eng, err := engine.NewEngine(engine.DefaultGameConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	eng.Select(0) // lift the top ring of peg 0
//	eng.Select(1) // drop it on peg 1
//	fmt.Println(eng.GetView().Pegs)
//
// Selection Rules:
//
// With nothing held, selecting a non-empty peg lifts its top ring. With a ring
// held, selecting another peg attempts the move: it succeeds onto an empty peg
// or a larger top ring, and either way the selection clears. Selecting the
// held peg again, or an empty peg while idle, clears the selection. Indices
// outside the board are ignored.
package engine
