package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Settings holds process settings for the game server
type Settings struct {
	Server  ServerSettings
	Game    GameSettings
	Session SessionSettings
}

// ServerSettings holds listener settings.
type ServerSettings struct {
	Host string
	Port int
}

// GameSettings points at the preset directory.
type GameSettings struct {
	ConfigDir     string `mapstructure:"config_dir"`
	DefaultConfig string `mapstructure:"default_config"`
}

// SessionSettings controls session expiry.
type SessionSettings struct {
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// Addr returns the host:port the server listens on
func (s Settings) Addr() string {
	return fmt.Sprintf("%s:%d", s.Server.Host, s.Server.Port)
}

// LoadSettings reads settings from defaults, an optional hanoi.toml and the
// environment. Env var overrides use prefix HANOI_, e.g. HANOI_SERVER_PORT.
// HANOI_CONFIG names an explicit settings file.
func LoadSettings() (Settings, error) {
	v := viper.New()

	// default values
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 8080)
	v.SetDefault("game.config_dir", "configs")
	v.SetDefault("game.default_config", DefaultConfigName)
	v.SetDefault("session.ttl", "24h")
	v.SetDefault("session.cleanup_interval", "1h")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("HANOI_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("hanoi")
	}

	v.SetEnvPrefix("HANOI")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// A missing default file is fine; an explicit one must exist and parse
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || cfgPath != "" {
			return Settings{}, fmt.Errorf("read settings: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal settings: %w", err)
	}
	if s.Server.Port <= 0 || s.Server.Port > 65535 {
		return Settings{}, fmt.Errorf("invalid server.port %d", s.Server.Port)
	}
	if s.Session.CleanupInterval <= 0 {
		return Settings{}, fmt.Errorf("session.cleanup_interval must be positive")
	}
	return s, nil
}
