package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadSettings_Defaults(t *testing.T) {
	t.Setenv("HANOI_CONFIG", "")

	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("Failed to load settings: %v", err)
	}
	if s.Server.Port != 8080 {
		t.Errorf("Expected port 8080, got %d", s.Server.Port)
	}
	if s.Game.ConfigDir != "configs" {
		t.Errorf("Expected config dir 'configs', got '%s'", s.Game.ConfigDir)
	}
	if s.Game.DefaultConfig != "classic" {
		t.Errorf("Expected default config 'classic', got '%s'", s.Game.DefaultConfig)
	}
	if s.Session.TTL != 24*time.Hour {
		t.Errorf("Expected TTL 24h, got %s", s.Session.TTL)
	}
	if s.Session.CleanupInterval != time.Hour {
		t.Errorf("Expected cleanup interval 1h, got %s", s.Session.CleanupInterval)
	}
	if s.Addr() != ":8080" {
		t.Errorf("Expected addr ':8080', got '%s'", s.Addr())
	}
}

func TestLoadSettings_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hanoi.toml")
	content := `
[server]
host = "127.0.0.1"
port = 9000

[game]
config_dir = "/srv/presets"

[session]
ttl = "30m"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write settings: %v", err)
	}

	t.Setenv("HANOI_CONFIG", path)
	t.Setenv("HANOI_SERVER_PORT", "9100")
	t.Setenv("HANOI_GAME_DEFAULT_CONFIG", "quick")

	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("Failed to load settings: %v", err)
	}
	if s.Addr() != "127.0.0.1:9100" {
		t.Errorf("Expected env to override port, got %s", s.Addr())
	}
	if s.Game.ConfigDir != "/srv/presets" {
		t.Errorf("Expected config dir from file, got '%s'", s.Game.ConfigDir)
	}
	if s.Game.DefaultConfig != "quick" {
		t.Errorf("Expected default config from env, got '%s'", s.Game.DefaultConfig)
	}
	if s.Session.TTL != 30*time.Minute {
		t.Errorf("Expected TTL 30m, got %s", s.Session.TTL)
	}
}

func TestLoadSettings_Errors(t *testing.T) {
	t.Run("explicit file missing", func(t *testing.T) {
		t.Setenv("HANOI_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
		if _, err := LoadSettings(); err == nil {
			t.Error("Expected error for missing explicit settings file")
		}
	})

	t.Run("port out of range", func(t *testing.T) {
		t.Setenv("HANOI_CONFIG", "")
		t.Setenv("HANOI_SERVER_PORT", "70000")
		if _, err := LoadSettings(); err == nil {
			t.Error("Expected error for invalid port")
		}
	})
}
