package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"

	"github.com/wricardo/hanoi-game/game/engine"
	"github.com/wricardo/hanoi-game/game/service"
)

var (
	ErrConfigNotFound = service.ErrConfigNotFound
	ErrInvalidConfig  = service.ErrInvalidConfig
)

// DefaultConfigName is the preset tried first when picking the default
const DefaultConfigName = "classic"

// maxSuggestionDistance is the largest edit distance still offered as a suggestion
const maxSuggestionDistance = 3

// Manager handles puzzle preset loading and caching
type Manager struct {
	configDir     string
	defaultConfig *engine.GameConfig
	defaultName   string
	configs       map[string]*engine.GameConfig
	mu            sync.RWMutex
}

// NewManager creates a new configuration manager
func NewManager(configDir string) (*Manager, error) {
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("config directory does not exist: %s", configDir)
	}

	m := &Manager{
		configDir:   configDir,
		defaultName: DefaultConfigName,
		configs:     make(map[string]*engine.GameConfig),
	}

	m.loadDefaultConfig(m.defaultName)
	return m, nil
}

// LoadConfig loads a preset by name
func (m *Manager) LoadConfig(name string) (*engine.GameConfig, error) {
	name = strings.TrimSuffix(name, ".json")

	m.mu.RLock()
	if config, exists := m.configs[name]; exists {
		m.mu.RUnlock()
		return config, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if config, exists := m.configs[name]; exists {
		return config, nil
	}

	if name == "" || strings.ContainsAny(name, `/\`) {
		return nil, fmt.Errorf("%w: %q", ErrConfigNotFound, name)
	}

	data, err := os.ReadFile(filepath.Join(m.configDir, name+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			if suggestion := m.suggest(name); suggestion != "" {
				return nil, fmt.Errorf("%w: %q (did you mean %q?)", ErrConfigNotFound, name, suggestion)
			}
			return nil, fmt.Errorf("%w: %q", ErrConfigNotFound, name)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config engine.GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %v", ErrInvalidConfig, name, err)
	}

	if err := engine.ValidateGameConfig(&config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	m.configs[name] = &config
	return &config, nil
}

// ListConfigs returns information about all valid presets, sorted by ID
func (m *Manager) ListConfigs() ([]*service.ConfigInfo, error) {
	names, err := m.presetNames()
	if err != nil {
		return nil, err
	}

	configs := make([]*service.ConfigInfo, 0, len(names))
	for _, name := range names {
		config, err := m.LoadConfig(name)
		if err != nil {
			// Skip invalid presets
			continue
		}

		configs = append(configs, &service.ConfigInfo{
			Filename:    name + ".json",
			ConfigID:    name,
			Name:        config.Name,
			Description: config.Description,
			StickCount:  config.StickCount,
			RingCount:   config.RingCount,
			RingMin:     config.RingMin,
			RingMax:     config.RingMax,
		})
	}

	return configs, nil
}

// GetDefault returns the default preset
func (m *Manager) GetDefault() *engine.GameConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultConfig
}

// SetDefault sets the default preset by name
func (m *Manager) SetDefault(name string) error {
	config, err := m.LoadConfig(name)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultConfig = config
	m.defaultName = strings.TrimSuffix(name, ".json")
	return nil
}

// RefreshCache drops cached presets so they are read from disk again and
// reloads the default preset
func (m *Manager) RefreshCache() {
	m.mu.Lock()
	m.configs = make(map[string]*engine.GameConfig)
	name := m.defaultName
	m.mu.Unlock()

	m.loadDefaultConfig(name)
}

// loadDefaultConfig picks the named preset, the first valid preset on disk,
// or the built-in classic preset, in that order
func (m *Manager) loadDefaultConfig(name string) {
	config, err := m.LoadConfig(name)
	if err != nil {
		configs, listErr := m.ListConfigs()
		if listErr == nil && len(configs) > 0 {
			name = configs[0].ConfigID
			config, err = m.LoadConfig(name)
		}
		if err != nil {
			name = ""
			config = engine.DefaultGameConfig()
		}
	}

	m.mu.Lock()
	m.defaultConfig = config
	if name != "" {
		m.defaultName = name
	}
	m.mu.Unlock()
}

// presetNames lists the preset IDs found in the config directory
func (m *Manager) presetNames() ([]string, error) {
	entries, err := os.ReadDir(m.configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read config directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}

// suggest returns the preset ID closest to name, or "" when none is close.
// Callers hold m.mu.
func (m *Manager) suggest(name string) string {
	names, err := m.presetNames()
	if err != nil {
		return ""
	}

	best, bestDist := "", maxSuggestionDistance+1
	for _, candidate := range names {
		dist := levenshtein.ComputeDistance(strings.ToLower(name), strings.ToLower(candidate))
		if dist < bestDist {
			best, bestDist = candidate, dist
		}
	}
	return best
}
