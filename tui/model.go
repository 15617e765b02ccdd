package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wricardo/hanoi-game/game/engine"
)

// Model is the bubbletea model for local terminal play
type Model struct {
	engine *engine.GameEngine
	width  int
	height int

	moves  int
	status string

	// ring count entry, active while entering is true
	entering bool
	input    string
}

// New creates a model for the given preset
func New(config *engine.GameConfig) (Model, error) {
	eng, err := engine.NewEngine(config)
	if err != nil {
		return Model{}, fmt.Errorf("failed to start game: %w", err)
	}
	return Model{engine: eng, status: eng.GetState().Message}, nil
}

// Run plays the game in the terminal until the player quits or ctx is cancelled
func Run(ctx context.Context, config *engine.GameConfig) error {
	m, err := New(config)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		_, boardWidth := m.columns()
		return m.afterSelect(m.engine.Click(float64(msg.X), float64(boardWidth))), nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.entering {
			return m.updateEntry(msg), nil
		}
		return m.updateKey(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r":
		state := m.engine.Reset()
		m.moves = 0
		m.status = state.Message
		return m, nil
	case "+", "=":
		return m.changeRings(engine.RingChange{Kind: engine.RingPlus}), nil
	case "-", "_":
		return m.changeRings(engine.RingChange{Kind: engine.RingMinus}), nil
	case "s":
		m.entering = true
		m.input = ""
		m.status = fmt.Sprintf("Ring count (%d-%d), enter to apply", m.engine.GetState().RingMin, m.engine.GetState().RingMax)
		return m, nil
	}

	if _, ok := engine.PegFromKey(key, m.engine.GetState().StickCount); ok {
		return m.afterSelect(m.engine.KeyPress(key)), nil
	}
	return m, nil
}

func (m Model) updateEntry(msg tea.KeyMsg) Model {
	switch msg.Type {
	case tea.KeyEnter:
		m.entering = false
		return m.changeRings(engine.RingChange{Kind: engine.RingSet, Value: m.input})
	case tea.KeyEsc:
		m.entering = false
		m.status = m.engine.GetState().Message
		return m
	case tea.KeyBackspace:
		if m.input != "" {
			m.input = m.input[:len(m.input)-1]
		}
		return m
	case tea.KeyRunes:
		m.input += strings.TrimSpace(string(msg.Runes))
	}
	return m
}

func (m Model) changeRings(change engine.RingChange) Model {
	accepted := m.engine.ChangeRingCount(change)
	state := m.engine.GetState()
	m.moves = 0
	m.status = state.Message
	if !accepted {
		m.status = fmt.Sprintf("Ring count must be between %d and %d", state.RingMin, state.RingMax)
	}
	return m
}

func (m Model) afterSelect(outcome engine.Outcome) Model {
	if outcome == engine.OutcomeIgnored {
		return m
	}
	if outcome == engine.OutcomeMoved {
		m.moves++
	}
	m.status = m.engine.GetState().Message
	return m
}

// Moves returns the number of rings moved since the last reset
func (m Model) Moves() int {
	return m.moves
}

// State returns the current game state
func (m Model) State() *engine.GameState {
	return m.engine.GetState()
}
