package engine

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateGameConfig(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *GameConfig)
		wantErr string
	}{
		{"valid", func(c *GameConfig) {}, ""},
		{"missing name", func(c *GameConfig) { c.Name = "" }, "name is required"},
		{"missing description", func(c *GameConfig) { c.Description = "" }, "description is required"},
		{"two pegs", func(c *GameConfig) { c.StickCount = 2 }, "stick_count"},
		{"ten pegs", func(c *GameConfig) { c.StickCount = 10 }, "stick_count"},
		{"max above limit", func(c *GameConfig) { c.RingMax = 21 }, "ring range"},
		{"min below limit", func(c *GameConfig) { c.RingMin = 0 }, "ring range"},
		{"min above max", func(c *GameConfig) { c.RingMin = 10; c.RingMax = 8; c.RingCount = 9 }, "must not exceed"},
		{"count outside range", func(c *GameConfig) { c.RingCount = 2 }, "ring_count must be between"},
		{"missing welcome", func(c *GameConfig) { c.Messages.Welcome = "" }, "welcome"},
		{"missing victory", func(c *GameConfig) { c.Messages.Victory = "" }, "victory"},
		{"ring count text without verb", func(c *GameConfig) { c.Messages.RingCount = "Rings changed" }, "exactly one %d"},
		{"empty ring count text uses default", func(c *GameConfig) { c.Messages.RingCount = "" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := createTestConfig()
			tt.modify(config)

			err := ValidateGameConfig(config)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}

	if err := ValidateGameConfig(nil); err == nil {
		t.Error("Expected error for nil config")
	}
}

func TestDefaultGameConfig(t *testing.T) {
	config := DefaultGameConfig()
	if err := ValidateGameConfig(config); err != nil {
		t.Fatalf("Default config is invalid: %v", err)
	}
	if config.Name != "classic" {
		t.Errorf("Expected name classic, got %s", config.Name)
	}
}

func TestLoadGameConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(dir, "four.json")
		content := `{
			"name": "four",
			"description": "Four pegs",
			"stick_count": 4,
			"ring_count": 6,
			"ring_min": 3,
			"ring_max": 12,
			"keep_selection_on_illegal": true,
			"messages": {"welcome": "Hi", "victory": "Done"}
		}`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write config: %v", err)
		}

		config, err := LoadGameConfig(path)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}
		if config.StickCount != 4 || config.RingCount != 6 {
			t.Errorf("Expected 4 pegs and 6 rings, got %d and %d", config.StickCount, config.RingCount)
		}
		if !config.KeepSelectionOnIllegal {
			t.Error("Expected keep_selection_on_illegal to be read")
		}
	})

	t.Run("malformed JSON", func(t *testing.T) {
		path := filepath.Join(dir, "broken.json")
		if err := os.WriteFile(path, []byte("{"), 0644); err != nil {
			t.Fatalf("Failed to write config: %v", err)
		}
		if _, err := LoadGameConfig(path); err == nil {
			t.Error("Expected parse error")
		}
	})

	t.Run("invalid preset", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		content := `{"name": "bad", "description": "x", "stick_count": 2, "ring_count": 5, "ring_min": 3, "ring_max": 20,
			"messages": {"welcome": "Hi", "victory": "Done"}}`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write config: %v", err)
		}
		if _, err := LoadGameConfig(path); err == nil {
			t.Error("Expected validation error")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadGameConfig(filepath.Join(dir, "nope.json")); err == nil {
			t.Error("Expected error for missing file")
		}
	})
}

func TestNewGameState_PartialMessages(t *testing.T) {
	config := createTestConfig()
	config.Messages = Messages{Welcome: "Hello", Victory: "Yay"}

	state := NewGameState(config)
	if state.Message != "Hello" {
		t.Errorf("Expected welcome Hello, got %q", state.Message)
	}

	next, _ := SelectOrMove(state, 0)
	if next.Message != defaultMessages.Picked {
		t.Errorf("Expected default picked message, got %q", next.Message)
	}

	changed, _ := ChangeRingCount(next, RingChange{Kind: RingPlus})
	if changed.Message != "Playing with 6 rings." {
		t.Errorf("Expected default ring count message, got %q", changed.Message)
	}
}

func TestNewGameState_NilConfig(t *testing.T) {
	state := NewGameState(nil)
	if state.ConfigName != "classic" {
		t.Errorf("Expected classic preset, got %s", state.ConfigName)
	}
	if err := CheckInvariants(state); err != nil {
		t.Errorf("Invariant broken: %v", err)
	}
}
