package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/necromancer/internal/application/state"
	"github.com/younwookim/necromancer/internal/domain/hex"
	"github.com/younwookim/necromancer/internal/ecs"
	"github.com/younwookim/necromancer/internal/infrastructure/assets"
	"github.com/younwookim/necromancer/internal/infrastructure/config"
)

func spawnAt(power, movement, col, row int) config.UnitSpawnConfig {
	return config.UnitSpawnConfig{Power: power, Movement: movement, At: config.CellConfig{Col: col, Row: row}}
}

func skirmish() *config.ScenarioConfig {
	return &config.ScenarioConfig{
		Name: "skirmish",
		Player: []config.UnitSpawnConfig{
			spawnAt(3, 2, 0, 1), spawnAt(3, 2, 0, 2), spawnAt(4, 1, 0, 3), spawnAt(4, 1, 0, 4), spawnAt(1, 3, 0, 5),
		},
		Enemy: []config.UnitSpawnConfig{
			spawnAt(3, 2, 9, 1), spawnAt(3, 2, 9, 2), spawnAt(4, 1, 8, 4), spawnAt(4, 1, 9, 4), spawnAt(1, 3, 8, 5),
		},
	}
}

func loadSkirmish(t *testing.T) *Battlefield {
	t.Helper()
	bf, err := LoadBattlefield(config.DefaultSettings(), skirmish())
	require.NoError(t, err)
	return bf
}

// pointerAt returns the pixel centre of the hexagon at (col, row)
func pointerAt(bf *Battlefield, col, row int) state.Pointer {
	x, y := bf.Grid.Center(bf.Grid.MustLookup(hex.Offset{Col: col, Row: row}))
	return state.Pointer{X: x, Y: y}
}

func hexAt(bf *Battlefield, col, row int) ecs.EntityID {
	return bf.Grid.MustLookup(hex.Offset{Col: col, Row: row})
}

func TestLoadBattlefield(t *testing.T) {
	bf := loadSkirmish(t)

	assert.Equal(t, 19*12, bf.Grid.Len())
	require.Len(t, bf.Player, 5)
	require.Len(t, bf.Enemy, 5)
	assert.Equal(t, 10, bf.Grid.OccupiedCount())

	first := bf.World.UnitOf(bf.Player[0])
	assert.Equal(t, ecs.ArmyPlayer, first.Army)
	assert.Equal(t, 3, first.Power)
	assert.Equal(t, 2, first.MaxMovementPoints)
	assert.Equal(t, hexAt(bf, 0, 1), first.Hex)
	assert.Equal(t, bf.Player[0], bf.Grid.Occupant(first.Hex))
	assert.Equal(t, assets.PlayerUnit, bf.World.Sprite[bf.Player[0]].Current)

	last := bf.World.UnitOf(bf.Enemy[4])
	assert.Equal(t, ecs.ArmyEnemy, last.Army)
	assert.Equal(t, hexAt(bf, 8, 5), last.Hex)
	assert.Equal(t, assets.EnemyUnitCurrent, bf.World.Sprite[bf.Enemy[4]].Hover)

	// unit image is centred on its hexagon
	cx, cy := bf.Grid.Center(first.Hex)
	pos := bf.World.Position[bf.Player[0]]
	assert.InDelta(t, cx-12, pos.X, 1e-9)
	assert.InDelta(t, cy-12, pos.Y, 1e-9)
}

func TestLoadBattlefield_Errors(t *testing.T) {
	tests := []struct {
		name     string
		settings func(*config.SettingsConfig)
		sc       *config.ScenarioConfig
	}{
		{
			name: "unit outside the map",
			sc:   &config.ScenarioConfig{Player: []config.UnitSpawnConfig{spawnAt(1, 1, 30, 0)}},
		},
		{
			name: "two units on one hexagon",
			sc: &config.ScenarioConfig{
				Player: []config.UnitSpawnConfig{spawnAt(1, 1, 2, 2)},
				Enemy:  []config.UnitSpawnConfig{spawnAt(1, 1, 2, 2)},
			},
		},
		{
			name:     "unknown adjacency",
			settings: func(c *config.SettingsConfig) { c.Map.Adjacency = "square" },
			sc:       &config.ScenarioConfig{},
		},
		{
			name:     "unknown picking",
			settings: func(c *config.SettingsConfig) { c.Map.Picking = "pixel" },
			sc:       &config.ScenarioConfig{},
		},
		{
			name:     "empty map",
			settings: func(c *config.SettingsConfig) { c.Map.Columns = -1 },
			sc:       &config.ScenarioConfig{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := config.DefaultSettings()
			if tt.settings != nil {
				tt.settings(settings)
			}
			_, err := LoadBattlefield(settings, tt.sc)
			assert.Error(t, err)
		})
	}
}
