package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/wricardo/hanoi-game/game/engine"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager

	// mu guards engine state swaps and session access times; every call
	// that goes through getSession writes, so it needs the write lock
	mu sync.RWMutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
	}
}

// getConfigID returns the config_id for a given preset name, used for consistent API responses
func (s *gameServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	if configName == "" {
		return "classic"
	}
	return configName
}

func (s *gameServiceImpl) sessionInfo(sess *Session, configID string) *SessionInfo {
	state := sess.Engine.GetState()
	return &SessionInfo{
		ID:             sess.ID,
		ConfigName:     configID,
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		GameState:      state,
		GameConfig:     sess.Config,
		MinimumMoves:   engine.MinimumMoves(state.RingCount, state.StickCount),
	}
}

// CreateSession creates a new game session
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var config *engine.GameConfig
	var err error
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			if errors.Is(err, ErrConfigNotFound) {
				return nil, fmt.Errorf("config '%s': %w. Use /api/configs to list available configurations", configName, err)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}

	// Let session manager generate a 4-character ID
	sess, err := s.sessions.Create("", config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	configID := configName
	if configID == "" {
		configID = s.getConfigID(config.Name)
	}

	log.Printf("[SESSION] created session=%s config=%s rings=%d pegs=%d", sess.ID, configID, config.RingCount, config.StickCount)
	return s.sessionInfo(sess, configID), nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}
	return s.sessionInfo(sess, s.getConfigID(sess.Config.Name)), nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, s.sessionInfo(sess, s.getConfigID(sess.Config.Name)))
	}
	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sessions.Delete(sessionID); err != nil {
		return fmt.Errorf("delete session %s: %w", sessionID, err)
	}
	return nil
}

// SelectPeg applies a peg selection (0-based) to a session
func (s *gameServiceImpl) SelectPeg(ctx context.Context, sessionID string, peg int) (*SelectResult, error) {
	return s.apply(sessionID, func(e *engine.GameEngine) (engine.Outcome, *int) {
		return e.Select(peg), &peg
	})
}

// Click maps a pointer position on a board of the given width to a peg
func (s *gameServiceImpl) Click(ctx context.Context, sessionID string, x, width float64) (*SelectResult, error) {
	return s.apply(sessionID, func(e *engine.GameEngine) (engine.Outcome, *int) {
		peg, ok := engine.PegFromPointer(x, width, e.GetState().StickCount)
		if !ok {
			return engine.OutcomeIgnored, nil
		}
		return e.Select(peg), &peg
	})
}

// KeyPress maps a 1-based peg key to a selection
func (s *gameServiceImpl) KeyPress(ctx context.Context, sessionID, key string) (*SelectResult, error) {
	return s.apply(sessionID, func(e *engine.GameEngine) (engine.Outcome, *int) {
		peg, ok := engine.PegFromKey(key, e.GetState().StickCount)
		if !ok {
			return engine.OutcomeIgnored, nil
		}
		return e.Select(peg), &peg
	})
}

// apply runs one selection against a session under the service lock and
// builds the result events
func (s *gameServiceImpl) apply(sessionID string, selectFn func(e *engine.GameEngine) (engine.Outcome, *int)) (*SelectResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	wasWon := sess.Engine.IsWon()
	outcome, peg := selectFn(sess.Engine)
	state := sess.Engine.GetState()

	now := time.Now()
	events := []GameEvent{{
		Type:      string(outcome),
		Message:   state.Message,
		Timestamp: now,
		Peg:       peg,
	}}
	if outcome == engine.OutcomeMoved && state.Won && !wasWon {
		events = append(events, GameEvent{
			Type:      EventVictory,
			Message:   fmt.Sprintf("Tower of %d rings moved", state.RingCount),
			Timestamp: now,
		})
	}

	pegLabel := "-"
	if peg != nil {
		pegLabel = fmt.Sprintf("%d", *peg)
	}
	log.Printf("[SELECT] session=%s peg=%s outcome=%s won=%t", sess.ID, pegLabel, outcome, state.Won)

	return &SelectResult{
		Outcome:   outcome,
		Accepted:  outcome != engine.OutcomeIgnored,
		GameState: state,
		Message:   state.Message,
		Events:    events,
	}, nil
}

// ChangeRingCount reconfigures the ring count of a session. A rejected
// request still rebuilds the board.
func (s *gameServiceImpl) ChangeRingCount(ctx context.Context, sessionID string, change engine.RingChange) (*SelectResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	previous := sess.Engine.GetState().RingCount
	accepted := sess.Engine.ChangeRingCount(change)
	state := sess.Engine.GetState()

	log.Printf("[RINGS] session=%s action=%s value=%q rings=%d->%d accepted=%t",
		sess.ID, change.Kind, change.Value, previous, state.RingCount, accepted)

	return &SelectResult{
		Accepted:  accepted,
		GameState: state,
		Message:   state.Message,
		Events: []GameEvent{{
			Type:      EventRingsChanged,
			Message:   state.Message,
			Timestamp: time.Now(),
		}},
	}, nil
}

// Reset restores a session to its initial layout
func (s *gameServiceImpl) Reset(ctx context.Context, sessionID string) (*SelectResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	state := sess.Engine.Reset()
	log.Printf("[RESET] session=%s rings=%d", sess.ID, state.RingCount)

	return &SelectResult{
		Accepted:  true,
		GameState: state,
		Message:   state.Message,
		Events: []GameEvent{{
			Type:      EventReset,
			Message:   "Game reset to initial state",
			Timestamp: time.Now(),
		}},
	}, nil
}

// GetGameState retrieves the current game state
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}
	return sess.Engine.GetState(), nil
}

// ListConfigs returns available puzzle presets
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific puzzle preset
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return s.configs.LoadConfig(configName)
}

// getSession looks up a session and marks it as accessed
func (s *gameServiceImpl) getSession(sessionID string) (*Session, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", sessionID, err)
	}
	s.sessions.UpdateLastAccessed(sessionID)
	return sess, nil
}
