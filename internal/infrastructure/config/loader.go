package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Settings *SettingsConfig
	Scenario *ScenarioConfig
}

// Loader loads game configuration using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// FS returns the filesystem the loader reads from
func (l *Loader) FS() fs.FS {
	return l.fsys
}

// LoadSettings loads game.json
func (l *Loader) LoadSettings() (*SettingsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "game.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read game.json: %w", err)
	}

	cfg := newSettings()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game.json: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// LoadScenario loads a scenario YAML file
func (l *Loader) LoadScenario(name string) (*ScenarioConfig, error) {
	path := "scenarios/" + name + ".yaml"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario %s: %w", name, err)
	}

	var cfg ScenarioConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scenario %s: %w", name, err)
	}
	if cfg.Name == "" {
		cfg.Name = name
	}

	return &cfg, nil
}

// LoadAll loads game.json and the named scenario, and checks that the
// scenario fits the map
func (l *Loader) LoadAll(scenario string) (*GameConfig, error) {
	settings, err := l.LoadSettings()
	if err != nil {
		return nil, err
	}

	sc, err := l.LoadScenario(scenario)
	if err != nil {
		return nil, err
	}

	if err := ValidateScenario(sc, settings.Map.Columns, settings.Map.Rows); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario, err)
	}

	return &GameConfig{
		Settings: settings,
		Scenario: sc,
	}, nil
}
