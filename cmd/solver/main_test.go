package main

import (
	"fmt"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wricardo/hanoi-game/api"
	"github.com/wricardo/hanoi-game/game/config"
	"github.com/wricardo/hanoi-game/game/engine"
	"github.com/wricardo/hanoi-game/game/service"
	"github.com/wricardo/hanoi-game/game/session"
)

func newTestServer(t *testing.T) string {
	t.Helper()
	configs, err := config.NewManager(filepath.Join("..", "..", "configs"))
	if err != nil {
		t.Fatalf("Failed to load presets: %v", err)
	}
	gameService := service.NewGameService(session.NewManager(), configs)
	srv := httptest.NewServer(api.NewServer(gameService, nil))
	t.Cleanup(srv.Close)
	return srv.URL
}

// replay applies moves to a fresh board and fails on any illegal move
func replay(t *testing.T, rings, pegs int, moves []Move) *engine.GameState {
	t.Helper()
	config := engine.DefaultGameConfig()
	config.StickCount = pegs
	config.RingMin = 1
	config.RingCount = rings
	state := engine.NewGameState(config)

	for i, m := range moves {
		state, _ = engine.SelectOrMove(state, m.From)
		var outcome engine.Outcome
		state, outcome = engine.SelectOrMove(state, m.To)
		if outcome != engine.OutcomeMoved {
			t.Fatalf("Move %d (%d->%d) was %s", i, m.From, m.To, outcome)
		}
	}
	return state
}

func TestPlanMoves(t *testing.T) {
	tests := []struct {
		rings, pegs int
	}{
		{1, 3},
		{3, 3},
		{5, 3},
		{5, 4},
		{8, 4},
		{10, 5},
		{6, 9},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_rings_%d_pegs", tt.rings, tt.pegs), func(t *testing.T) {
			moves := PlanMoves(tt.rings, tt.pegs, 0, tt.pegs-1)
			if want := engine.MinimumMoves(tt.rings, tt.pegs); len(moves) != want {
				t.Errorf("Expected %d moves, got %d", want, len(moves))
			}

			state := replay(t, tt.rings, tt.pegs, moves)
			if !state.Won {
				t.Errorf("Expected tower to be solved, got pegs %v", state.Pegs)
			}
			if len(state.Pegs[tt.pegs-1]) != tt.rings {
				t.Errorf("Expected all rings on the last peg, got %v", state.Pegs)
			}
		})
	}
}

func TestPlanMoves_NoRings(t *testing.T) {
	if moves := PlanMoves(0, 3, 0, 2); len(moves) != 0 {
		t.Errorf("Expected no moves, got %v", moves)
	}
}

func TestPlay(t *testing.T) {
	client := NewClient(newTestServer(t))

	session, err := client.CreateSession("four_pegs")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	if session.GameState.StickCount != 4 {
		t.Fatalf("Expected four pegs, got %d", session.GameState.StickCount)
	}

	state, moved, err := Play(client, 0, 0)
	if err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	if !state.Won {
		t.Error("Expected game to be won")
	}
	if moved != 33 {
		t.Errorf("Expected 33 moves for 8 rings on 4 pegs, got %d", moved)
	}

	got, err := client.GetSession()
	if err != nil {
		t.Fatalf("Failed to get session: %v", err)
	}
	if !got.GameState.Won {
		t.Error("Expected server to report the win")
	}
}

func TestPlay_RingCount(t *testing.T) {
	client := NewClient(newTestServer(t))
	if _, err := client.CreateSession("quick"); err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	state, moved, err := Play(client, 4, 0)
	if err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	if !state.Won || state.RingCount != 4 || moved != 15 {
		t.Errorf("Expected 4 rings solved in 15 moves, got won=%v rings=%d moves=%d", state.Won, state.RingCount, moved)
	}

	if _, _, err := Play(client, 50, 0); err == nil {
		t.Error("Expected ring count outside the preset range to fail")
	}
}

func TestClient_Errors(t *testing.T) {
	client := NewClient(newTestServer(t))

	if _, err := client.CreateSession("no_such_preset"); err == nil {
		t.Error("Expected error for unknown preset")
	}

	client.sessionID = "ffff"
	_, err := client.GetSession()
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Errorf("Expected 404 error, got %v", err)
	}
}
