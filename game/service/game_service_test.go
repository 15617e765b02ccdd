package service_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/wricardo/hanoi-game/game/engine"
	"github.com/wricardo/hanoi-game/game/service"
	"github.com/wricardo/hanoi-game/game/session"
)

// MockSessionManager implements service.SessionManager for testing
type MockSessionManager struct {
	sessions map[string]*service.Session
}

func NewMockSessionManager() *MockSessionManager {
	return &MockSessionManager{
		sessions: make(map[string]*service.Session),
	}
}

func (m *MockSessionManager) Create(id string, config *engine.GameConfig) (*service.Session, error) {
	// Generate ID if empty (mimics real session manager behavior)
	if id == "" {
		id = fmt.Sprintf("test_%d", len(m.sessions)+1)
	}

	if _, exists := m.sessions[id]; exists {
		return nil, errors.New("session already exists")
	}

	eng, err := engine.NewEngine(config)
	if err != nil {
		return nil, err
	}

	session := &service.Session{
		ID:             id,
		Engine:         eng,
		Config:         config,
		CreatedAt:      time.Now(),
		LastAccessedAt: time.Now(),
	}

	m.sessions[id] = session
	return session, nil
}

func (m *MockSessionManager) Get(id string) (*service.Session, error) {
	session, exists := m.sessions[id]
	if !exists {
		return nil, service.ErrSessionNotFound
	}
	return session, nil
}

func (m *MockSessionManager) GetOrCreate(id string, config *engine.GameConfig) (*service.Session, error) {
	if session, exists := m.sessions[id]; exists {
		return session, nil
	}
	return m.Create(id, config)
}

func (m *MockSessionManager) List() []*service.Session {
	result := make([]*service.Session, 0, len(m.sessions))
	for _, session := range m.sessions {
		result = append(result, session)
	}
	return result
}

func (m *MockSessionManager) Delete(id string) error {
	if _, exists := m.sessions[id]; !exists {
		return service.ErrSessionNotFound
	}
	delete(m.sessions, id)
	return nil
}

func (m *MockSessionManager) UpdateLastAccessed(id string) error {
	if session, exists := m.sessions[id]; exists {
		session.LastAccessedAt = time.Now()
		return nil
	}
	return service.ErrSessionNotFound
}

// MockConfigManager implements service.ConfigManager for testing
type MockConfigManager struct {
	configs map[string]*engine.GameConfig
}

func NewMockConfigManager() *MockConfigManager {
	classic := engine.DefaultGameConfig()

	quick := engine.DefaultGameConfig()
	quick.Name = "Quick"
	quick.Description = "Three rings"
	quick.RingCount = 3

	four := engine.DefaultGameConfig()
	four.Name = "Four Pegs"
	four.Description = "Four pegs and six rings"
	four.StickCount = 4
	four.RingCount = 6

	return &MockConfigManager{
		configs: map[string]*engine.GameConfig{
			"classic":   classic,
			"quick":     quick,
			"four_pegs": four,
		},
	}
}

func (m *MockConfigManager) LoadConfig(name string) (*engine.GameConfig, error) {
	config, exists := m.configs[name]
	if !exists {
		return nil, service.ErrConfigNotFound
	}
	return config, nil
}

func (m *MockConfigManager) ListConfigs() ([]*service.ConfigInfo, error) {
	result := make([]*service.ConfigInfo, 0, len(m.configs))
	for id, config := range m.configs {
		result = append(result, &service.ConfigInfo{
			Filename:    id + ".json",
			ConfigID:    id,
			Name:        config.Name,
			Description: config.Description,
			StickCount:  config.StickCount,
			RingCount:   config.RingCount,
			RingMin:     config.RingMin,
			RingMax:     config.RingMax,
		})
	}
	return result, nil
}

func (m *MockConfigManager) GetDefault() *engine.GameConfig {
	return m.configs["classic"]
}

func newTestService() service.GameService {
	return service.NewGameService(NewMockSessionManager(), NewMockConfigManager())
}

func TestCreateSession(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	t.Run("default config", func(t *testing.T) {
		info, err := svc.CreateSession(ctx, "")
		if err != nil {
			t.Fatalf("Failed to create session: %v", err)
		}
		if info.ConfigName != "classic" {
			t.Errorf("Expected config_id classic, got %s", info.ConfigName)
		}
		if info.GameState.RingCount != 5 {
			t.Errorf("Expected 5 rings, got %d", info.GameState.RingCount)
		}
		if info.MinimumMoves != 31 {
			t.Errorf("Expected minimum moves 31, got %d", info.MinimumMoves)
		}
	})

	t.Run("named config", func(t *testing.T) {
		info, err := svc.CreateSession(ctx, "four_pegs")
		if err != nil {
			t.Fatalf("Failed to create session: %v", err)
		}
		if len(info.GameState.Pegs) != 4 {
			t.Errorf("Expected 4 pegs, got %d", len(info.GameState.Pegs))
		}
		if info.ConfigName != "four_pegs" {
			t.Errorf("Expected config_id four_pegs, got %s", info.ConfigName)
		}
	})

	t.Run("unknown config", func(t *testing.T) {
		_, err := svc.CreateSession(ctx, "nope")
		if !errors.Is(err, service.ErrConfigNotFound) {
			t.Errorf("Expected ErrConfigNotFound, got %v", err)
		}
	})
}

func TestGetSession(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, _ := svc.CreateSession(ctx, "quick")

	info, err := svc.GetSession(ctx, created.ID)
	if err != nil {
		t.Fatalf("Failed to get session: %v", err)
	}
	if info.ConfigName != "quick" {
		t.Errorf("Expected config_id quick, got %s", info.ConfigName)
	}

	_, err = svc.GetSession(ctx, "missing")
	if !errors.Is(err, service.ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestListAndDeleteSessions(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first, _ := svc.CreateSession(ctx, "")
	svc.CreateSession(ctx, "quick")

	sessions, err := svc.ListSessions(ctx)
	if err != nil {
		t.Fatalf("Failed to list sessions: %v", err)
	}
	if len(sessions) != 2 {
		t.Errorf("Expected 2 sessions, got %d", len(sessions))
	}

	if err := svc.DeleteSession(ctx, first.ID); err != nil {
		t.Fatalf("Failed to delete session: %v", err)
	}
	if err := svc.DeleteSession(ctx, first.ID); !errors.Is(err, service.ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound on second delete, got %v", err)
	}

	sessions, _ = svc.ListSessions(ctx)
	if len(sessions) != 1 {
		t.Errorf("Expected 1 session after delete, got %d", len(sessions))
	}
}

func TestSelectPeg(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	info, _ := svc.CreateSession(ctx, "")

	result, err := svc.SelectPeg(ctx, info.ID, 0)
	if err != nil {
		t.Fatalf("SelectPeg failed: %v", err)
	}
	if result.Outcome != engine.OutcomePicked {
		t.Errorf("Expected picked, got %s", result.Outcome)
	}
	if len(result.Events) != 1 || result.Events[0].Type != service.EventPicked {
		t.Errorf("Expected a single picked event, got %+v", result.Events)
	}
	if result.Events[0].Peg == nil || *result.Events[0].Peg != 0 {
		t.Error("Expected picked event to carry peg 0")
	}

	result, _ = svc.SelectPeg(ctx, info.ID, 1)
	if result.Outcome != engine.OutcomeMoved {
		t.Errorf("Expected moved, got %s", result.Outcome)
	}

	result, _ = svc.SelectPeg(ctx, info.ID, 7)
	if result.Outcome != engine.OutcomeIgnored {
		t.Errorf("Expected ignored, got %s", result.Outcome)
	}
	if result.Accepted {
		t.Error("Expected ignored input not to be accepted")
	}

	if _, err := svc.SelectPeg(ctx, "missing", 0); !errors.Is(err, service.ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestSelectPeg_Victory(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	info, _ := svc.CreateSession(ctx, "quick")

	// Optimal solution for three rings onto peg 3
	moves := [][2]int{{0, 2}, {0, 1}, {2, 1}, {0, 2}, {1, 0}, {1, 2}, {0, 2}}

	var last *service.SelectResult
	for _, m := range moves {
		svc.SelectPeg(ctx, info.ID, m[0])
		result, err := svc.SelectPeg(ctx, info.ID, m[1])
		if err != nil {
			t.Fatalf("SelectPeg failed: %v", err)
		}
		if result.Outcome != engine.OutcomeMoved {
			t.Fatalf("Expected moved for %v, got %s", m, result.Outcome)
		}
		last = result
	}

	if !last.GameState.Won {
		t.Fatal("Expected game to be won")
	}
	found := false
	for _, ev := range last.Events {
		if ev.Type == service.EventVictory {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected victory event, got %+v", last.Events)
	}
}

func TestClickAndKeyPress(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	info, _ := svc.CreateSession(ctx, "")

	result, err := svc.Click(ctx, info.ID, 50, 815)
	if err != nil {
		t.Fatalf("Click failed: %v", err)
	}
	if result.Outcome != engine.OutcomePicked {
		t.Errorf("Expected picked, got %s", result.Outcome)
	}

	result, _ = svc.KeyPress(ctx, info.ID, "2")
	if result.Outcome != engine.OutcomeMoved {
		t.Errorf("Expected moved, got %s", result.Outcome)
	}
	if got := result.GameState.Pegs[1]; len(got) != 1 || got[0] != 1 {
		t.Errorf("Expected ring 1 on peg 2, got %v", result.GameState.Pegs)
	}

	result, _ = svc.KeyPress(ctx, info.ID, "x")
	if result.Outcome != engine.OutcomeIgnored {
		t.Errorf("Expected ignored, got %s", result.Outcome)
	}
	if result.Events[0].Peg != nil {
		t.Error("Expected ignored key event without peg")
	}

	result, _ = svc.Click(ctx, info.ID, 815, 815)
	if result.Outcome != engine.OutcomeIgnored {
		t.Errorf("Expected click on right edge to be ignored, got %s", result.Outcome)
	}
}

func TestChangeRingCount(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	info, _ := svc.CreateSession(ctx, "")

	result, err := svc.ChangeRingCount(ctx, info.ID, engine.RingChange{Kind: engine.RingPlus})
	if err != nil {
		t.Fatalf("ChangeRingCount failed: %v", err)
	}
	if !result.Accepted || result.GameState.RingCount != 6 {
		t.Errorf("Expected accepted change to 6, got accepted=%t rings=%d", result.Accepted, result.GameState.RingCount)
	}
	if result.Events[0].Type != service.EventRingsChanged {
		t.Errorf("Expected rings_changed event, got %s", result.Events[0].Type)
	}

	result, _ = svc.ChangeRingCount(ctx, info.ID, engine.RingChange{Kind: engine.RingSet, Value: "50"})
	if result.Accepted {
		t.Error("Expected 50 rings to be rejected")
	}
	if result.GameState.RingCount != 6 {
		t.Errorf("Expected ring count to stay 6, got %d", result.GameState.RingCount)
	}
}

func TestReset(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	info, _ := svc.CreateSession(ctx, "")

	svc.SelectPeg(ctx, info.ID, 0)
	svc.SelectPeg(ctx, info.ID, 2)

	result, err := svc.Reset(ctx, info.ID)
	if err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if len(result.GameState.Pegs[0]) != 5 {
		t.Errorf("Expected all rings on peg 1, got %v", result.GameState.Pegs)
	}
	if result.Events[0].Type != service.EventReset {
		t.Errorf("Expected reset event, got %s", result.Events[0].Type)
	}

	state, err := svc.GetGameState(ctx, info.ID)
	if err != nil {
		t.Fatalf("GetGameState failed: %v", err)
	}
	if state != result.GameState {
		t.Error("Expected GetGameState to return the current state")
	}
}

func TestConfigs(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	configs, err := svc.ListConfigs(ctx)
	if err != nil {
		t.Fatalf("ListConfigs failed: %v", err)
	}
	if len(configs) != 3 {
		t.Errorf("Expected 3 configs, got %d", len(configs))
	}

	config, err := svc.LoadConfig(ctx, "four_pegs")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.StickCount != 4 {
		t.Errorf("Expected 4 pegs, got %d", config.StickCount)
	}
}

func TestConcurrentSelections(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	info, _ := svc.CreateSession(ctx, "")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(peg int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				svc.SelectPeg(ctx, info.ID, (peg+j)%3)
			}
		}(i)
	}
	wg.Wait()

	state, _ := svc.GetGameState(ctx, info.ID)
	if err := engine.CheckInvariants(state); err != nil {
		t.Errorf("Invariant broken after concurrent selections: %v", err)
	}
	if state.RingCount != 5 {
		t.Errorf("Expected ring count to stay 5, got %d", state.RingCount)
	}
}

func TestConcurrentReads(t *testing.T) {
	svc := service.NewGameService(session.NewManager(), NewMockConfigManager())
	ctx := context.Background()
	info, err := svc.CreateSession(ctx, "")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				switch (worker + j) % 4 {
				case 0:
					got, err := svc.GetSession(ctx, info.ID)
					if err != nil {
						t.Errorf("GetSession failed: %v", err)
						return
					}
					if got.LastAccessedAt.Before(got.CreatedAt) {
						t.Errorf("Expected access time after creation, got %v < %v", got.LastAccessedAt, got.CreatedAt)
					}
				case 1:
					if _, err := svc.GetGameState(ctx, info.ID); err != nil {
						t.Errorf("GetGameState failed: %v", err)
						return
					}
				case 2:
					if _, err := svc.ListSessions(ctx); err != nil {
						t.Errorf("ListSessions failed: %v", err)
						return
					}
				case 3:
					svc.SelectPeg(ctx, info.ID, j%3)
				}
			}
		}(i)
	}
	wg.Wait()

	got, err := svc.GetSession(ctx, info.ID)
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if err := engine.CheckInvariants(got.GameState); err != nil {
		t.Errorf("Invariant broken after concurrent access: %v", err)
	}
}
