package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/necromancer/internal/ecs"
	"github.com/younwookim/necromancer/internal/infrastructure/assets"
)

func TestOccupationSystem_Update(t *testing.T) {
	bf := loadSkirmish(t)
	sys := NewOccupationSystem()

	sys.Update(bf.World)

	occupied := hexAt(bf, 0, 1)
	free := hexAt(bf, 4, 4)
	assert.Equal(t, assets.HexOccupied, bf.World.Sprite[occupied].Current)
	assert.Equal(t, assets.HexOccupied, bf.World.Sprite[occupied].Default)
	assert.Equal(t, assets.Hex, bf.World.Sprite[free].Current)
}

func TestOccupationSystem_RevertsOnVacate(t *testing.T) {
	bf := loadSkirmish(t)
	occupation := NewOccupationSystem()
	movement := NewMovementSystem(bf.Grid, defaultRules(), NewSelectionSystem())
	occupation.Update(bf.World)

	require.Equal(t, MoveAccepted, movement.Move(bf.World, bf.Player[0], hexAt(bf, 1, 1)))
	occupation.Update(bf.World)

	assert.Equal(t, assets.Hex, bf.World.Sprite[hexAt(bf, 0, 1)].Current)
	assert.Equal(t, assets.HexOccupied, bf.World.Sprite[hexAt(bf, 1, 1)].Current)
}

func TestOccupationSystem_KeepsHoverImage(t *testing.T) {
	bf := loadSkirmish(t)
	sys := NewOccupationSystem()
	id := hexAt(bf, 4, 4)
	bf.World.Add(id, ecs.TagCurrent)
	bf.World.Sprite[id].Highlight()

	bf.Grid.Occupy(id, bf.Player[0])
	sys.Update(bf.World)

	assert.Equal(t, assets.HexCurrent, bf.World.Sprite[id].Current)
	assert.Equal(t, assets.HexOccupied, bf.World.Sprite[id].Default)

	bf.World.Remove(id, ecs.TagCurrent)
	bf.World.Sprite[id].Restore()
	assert.Equal(t, assets.HexOccupied, bf.World.Sprite[id].Current)
}
