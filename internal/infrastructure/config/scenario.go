package config

import (
	"errors"
	"fmt"
)

// ErrInvalidScenario is returned when a scenario cannot be placed on the map
var ErrInvalidScenario = errors.New("invalid scenario")

// ScenarioConfig is the root config for scenarios/<name>.yaml
type ScenarioConfig struct {
	Name   string            `yaml:"name"`
	Player []UnitSpawnConfig `yaml:"player"`
	Enemy  []UnitSpawnConfig `yaml:"enemy"`
}

// UnitSpawnConfig places one unit
type UnitSpawnConfig struct {
	Power    int        `yaml:"power"`
	Movement int        `yaml:"movement"`
	At       CellConfig `yaml:"at"`
}

// CellConfig is a grid address
type CellConfig struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// ValidateScenario checks that every unit lands on a distinct cell of a
// cols×rows map and has sane stats.
func ValidateScenario(sc *ScenarioConfig, cols, rows int) error {
	seen := make(map[CellConfig]string)
	check := func(army string, i int, u UnitSpawnConfig) error {
		where := fmt.Sprintf("%s unit %d at (%d,%d)", army, i, u.At.Col, u.At.Row)
		if u.At.Col < 0 || u.At.Col >= cols || u.At.Row < 0 || u.At.Row >= rows {
			return fmt.Errorf("%w: %s is outside the %dx%d map", ErrInvalidScenario, where, cols, rows)
		}
		if u.Movement < 0 {
			return fmt.Errorf("%w: %s has negative movement", ErrInvalidScenario, where)
		}
		if u.Power < 0 {
			return fmt.Errorf("%w: %s has negative power", ErrInvalidScenario, where)
		}
		if other, ok := seen[u.At]; ok {
			return fmt.Errorf("%w: %s overlaps %s", ErrInvalidScenario, where, other)
		}
		seen[u.At] = where
		return nil
	}

	for i, u := range sc.Player {
		if err := check("player", i, u); err != nil {
			return err
		}
	}
	for i, u := range sc.Enemy {
		if err := check("enemy", i, u); err != nil {
			return err
		}
	}
	return nil
}
