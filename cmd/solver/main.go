// Command solver plays a session on a running game server through the REST
// API, moving the whole tower to the last peg in the minimum number of moves.
// Towers on four or more pegs use the Frame-Stewart split.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/wricardo/hanoi-game/game/engine"
	"github.com/wricardo/hanoi-game/game/service"
)

// Move relocates the top ring of From onto To
type Move struct {
	From, To int
}

// PlanMoves lists an optimal move sequence for a tower of rings on peg
// from onto peg to, with the given number of pegs
func PlanMoves(rings, pegs, from, to int) []Move {
	var spares []int
	for p := 0; p < pegs; p++ {
		if p != from && p != to {
			spares = append(spares, p)
		}
	}
	var moves []Move
	plan(rings, from, to, spares, &moves)
	return moves
}

func plan(n, from, to int, spares []int, moves *[]Move) {
	if n == 0 {
		return
	}
	if n == 1 {
		*moves = append(*moves, Move{from, to})
		return
	}
	if len(spares) == 1 {
		plan(n-1, from, spares[0], []int{to}, moves)
		*moves = append(*moves, Move{from, to})
		plan(n-1, spares[0], to, []int{from}, moves)
		return
	}

	// Park the top k rings on one spare using every peg, move the rest
	// without that spare, then bring the k rings back on top
	pegs := len(spares) + 2
	k, best := 1, -1
	for i := 1; i < n; i++ {
		cost := 2*engine.MinimumMoves(i, pegs) + engine.MinimumMoves(n-i, pegs-1)
		if best < 0 || cost < best {
			k, best = i, cost
		}
	}

	park := spares[0]
	rest := spares[1:]
	plan(k, from, park, append([]int{to}, rest...), moves)
	plan(n-k, from, to, rest, moves)
	plan(k, park, to, append([]int{from}, rest...), moves)
}

// Play resets the session and performs the planned moves. It returns the
// final state and the number of rings moved.
func Play(c *Client, rings int, delay time.Duration) (*engine.GameState, int, error) {
	var result *service.SelectResult
	var err error
	if rings > 0 {
		result, err = c.SetRings(rings)
		if err == nil && !result.Accepted {
			return nil, 0, fmt.Errorf("ring count %d rejected: %s", rings, result.Message)
		}
	} else {
		result, err = c.Reset()
	}
	if err != nil {
		return nil, 0, err
	}

	state := result.GameState
	target := state.StickCount - 1
	moves := PlanMoves(state.RingCount, state.StickCount, 0, target)
	log.Printf("[SOLVER] %d rings on %d pegs, %d moves planned", state.RingCount, state.StickCount, len(moves))

	moved := 0
	for _, m := range moves {
		if _, err := c.Select(m.From); err != nil {
			return state, moved, err
		}
		result, err := c.Select(m.To)
		if err != nil {
			return state, moved, err
		}
		state = result.GameState
		if result.Outcome != engine.OutcomeMoved {
			return state, moved, fmt.Errorf("move %d->%d was %s: %s", m.From+1, m.To+1, result.Outcome, result.Message)
		}
		moved++

		if delay > 0 {
			time.Sleep(delay)
		}
	}
	return state, moved, nil
}

func main() {
	serverURL := flag.String("url", "http://localhost:8080", "Game server URL")
	configID := flag.String("config", "", "Preset for a new session (classic, quick, four_pegs)")
	continueSession := flag.String("continue", "", "Play an existing session by ID")
	sessionFile := flag.String("session-file", "", "File remembering the session ID between runs")
	rings := flag.Int("rings", 0, "Ring count to play with (0 keeps the preset's)")
	delayMs := flag.Int("delay", 0, "Delay between moves in milliseconds (0 = no delay)")
	flag.Parse()

	log.Printf("Connecting to game server at %s", *serverURL)
	client := NewClient(*serverURL)

	savedSessionID := *continueSession
	if savedSessionID == "" && *sessionFile != "" {
		if data, err := os.ReadFile(*sessionFile); err == nil {
			savedSessionID = string(bytes.TrimSpace(data))
		}
	}

	if savedSessionID != "" {
		client.sessionID = savedSessionID
		if _, err := client.GetSession(); err != nil {
			log.Printf("Failed to resume session %s (may be expired): %v", savedSessionID, err)
			savedSessionID = ""
		} else {
			log.Printf("Resuming session: %s", client.sessionID)
		}
	}

	if savedSessionID == "" {
		session, err := client.CreateSession(*configID)
		if err != nil {
			log.Fatalf("Failed to create session: %v", err)
		}
		log.Printf("Session created: %s (%s)", session.ID, session.ConfigName)

		if *sessionFile != "" {
			if err := os.WriteFile(*sessionFile, []byte(session.ID), 0644); err != nil {
				log.Printf("Warning: Failed to save session ID: %v", err)
			}
		}
	}

	state, moved, err := Play(client, *rings, time.Duration(*delayMs)*time.Millisecond)
	if err != nil {
		log.Fatalf("Solver stopped after %d moves: %v", moved, err)
	}

	if !state.Won {
		log.Printf("❌ Tower not solved after %d moves", moved)
		log.Printf("Session: %s", client.sessionID)
		os.Exit(1)
	}
	log.Printf("🎉 VICTORY! Tower of %d rings moved in %d moves", state.RingCount, moved)
	log.Printf("Session: %s", client.sessionID)
}
