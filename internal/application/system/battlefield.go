package system

import (
	"fmt"

	"github.com/younwookim/necromancer/internal/domain/grid"
	"github.com/younwookim/necromancer/internal/domain/hex"
	"github.com/younwookim/necromancer/internal/domain/pick"
	"github.com/younwookim/necromancer/internal/ecs"
	"github.com/younwookim/necromancer/internal/infrastructure/assets"
	"github.com/younwookim/necromancer/internal/infrastructure/config"
)

// Battlefield is a freshly loaded world: the grid and both armies
type Battlefield struct {
	World  *ecs.World
	Grid   *grid.Grid
	Tester pick.Tester
	Player []ecs.EntityID
	Enemy  []ecs.EntityID
}

// LoadBattlefield builds the grid described by settings and places the units
// of the scenario on it
func LoadBattlefield(settings *config.SettingsConfig, sc *config.ScenarioConfig) (*Battlefield, error) {
	adjacency, err := hex.ParseAdjacency(settings.Map.Adjacency)
	if err != nil {
		return nil, err
	}
	mode, err := pick.ParseMode(settings.Map.Picking)
	if err != nil {
		return nil, err
	}

	layout := hex.NewLayout(settings.Map.HexEdge)
	w := ecs.NewWorld()
	g := grid.New(w, layout, adjacency, grid.Images{
		Tile:     assets.Hex,
		Hover:    assets.HexCurrent,
		Occupied: assets.HexOccupied,
	})
	if err := g.Build(settings.Map.Columns, settings.Map.Rows); err != nil {
		return nil, fmt.Errorf("failed to build grid: %w", err)
	}

	bf := &Battlefield{
		World:  w,
		Grid:   g,
		Tester: pick.NewTester(layout, mode),
	}

	for i, spawn := range sc.Player {
		id, err := bf.spawn(settings.Units, ecs.ArmyPlayer, spawn)
		if err != nil {
			return nil, fmt.Errorf("player unit %d: %w", i, err)
		}
		bf.Player = append(bf.Player, id)
	}
	for i, spawn := range sc.Enemy {
		id, err := bf.spawn(settings.Units, ecs.ArmyEnemy, spawn)
		if err != nil {
			return nil, fmt.Errorf("enemy unit %d: %w", i, err)
		}
		bf.Enemy = append(bf.Enemy, id)
	}

	return bf, nil
}

func (b *Battlefield) spawn(units config.UnitsConfig, army ecs.Army, spawn config.UnitSpawnConfig) (ecs.EntityID, error) {
	at := hex.Offset{Col: spawn.At.Col, Row: spawn.At.Row}
	hexID, ok := b.Grid.Lookup(at)
	if !ok {
		return 0, fmt.Errorf("%w: no hexagon at (%d,%d)", config.ErrInvalidScenario, at.Col, at.Row)
	}
	if b.Grid.IsOccupied(hexID) {
		return 0, fmt.Errorf("%w: hexagon (%d,%d) is already occupied", config.ErrInvalidScenario, at.Col, at.Row)
	}

	image, hover := assets.UnitImages(army)
	id := b.World.CreateUnit(ecs.UnitConfig{
		Army:          army,
		Power:         spawn.Power,
		MovementPoint: spawn.Movement,
		Size:          units.Size,
		Image:         image,
		Hover:         hover,
	})

	cx, cy := b.Grid.Center(hexID)
	b.World.PlaceUnitSprite(id, cx, cy, units.AnchorX, units.AnchorY)
	b.Grid.Occupy(hexID, id)
	b.World.Unit[id].Hex = hexID

	return id, nil
}
