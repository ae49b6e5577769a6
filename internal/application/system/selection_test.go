package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/necromancer/internal/application/state"
	"github.com/younwookim/necromancer/internal/ecs"
	"github.com/younwookim/necromancer/internal/infrastructure/assets"
)

type selectionFixture struct {
	bf        *Battlefield
	collision *CollisionSystem
	selection *SelectionSystem
	sel       state.Selection
}

func newSelectionFixture(t *testing.T) *selectionFixture {
	t.Helper()
	bf := loadSkirmish(t)
	return &selectionFixture{
		bf:        bf,
		collision: NewCollisionSystem(bf.Tester),
		selection: NewSelectionSystem(),
	}
}

// click hovers the pointer over (col, row) and presses
func (f *selectionFixture) click(col, row int) bool {
	f.collision.Update(f.bf.World, pointerAt(f.bf, col, row))
	f.sel.Press()
	return f.selection.Update(f.bf.World, &f.sel)
}

func TestSelectionSystem_SelectUnit(t *testing.T) {
	f := newSelectionFixture(t)

	changed := f.click(0, 1)

	assert.True(t, changed)
	assert.Equal(t, f.bf.Player[0], f.sel.Unit)
	assert.Equal(t, ecs.EntityID(0), f.sel.Hex)
	assert.Equal(t, state.StateUnitSelected, f.sel.State())
	assert.True(t, f.bf.World.Has(f.bf.Player[0], ecs.TagSelected))
	assert.False(t, f.sel.Pressed, "press is consumed")
}

func TestSelectionSystem_HexSelectedWhileIdle(t *testing.T) {
	f := newSelectionFixture(t)

	changed := f.click(4, 4)

	assert.True(t, changed)
	assert.Equal(t, hexAt(f.bf, 4, 4), f.sel.Hex)
	assert.Equal(t, state.StateIdle, f.sel.State(), "a hexagon alone does not select a unit")
	assert.False(t, f.sel.Complete())
	assert.True(t, f.bf.World.Has(hexAt(f.bf, 4, 4), ecs.TagSelected))
	assert.False(t, f.sel.Pressed, "a press is always consumed")
}

func TestSelectionSystem_UnitAfterIdleHexClearsIt(t *testing.T) {
	f := newSelectionFixture(t)
	f.click(4, 4)

	f.click(0, 1)

	assert.Equal(t, f.bf.Player[0], f.sel.Unit)
	assert.Equal(t, ecs.EntityID(0), f.sel.Hex)
	assert.False(t, f.bf.World.Has(hexAt(f.bf, 4, 4), ecs.TagSelected))
	assert.Equal(t, assets.Hex, f.bf.World.Sprite[hexAt(f.bf, 4, 4)].Current)
}

func TestSelectionSystem_SelectDestination(t *testing.T) {
	f := newSelectionFixture(t)
	f.click(0, 1)

	changed := f.click(1, 1)

	assert.True(t, changed)
	assert.Equal(t, f.bf.Player[0], f.sel.Unit)
	assert.Equal(t, hexAt(f.bf, 1, 1), f.sel.Hex)
	assert.True(t, f.sel.Complete())
}

func TestSelectionSystem_SwitchUnitClearsDestination(t *testing.T) {
	f := newSelectionFixture(t)
	f.click(0, 1)
	f.click(1, 1)

	f.click(0, 3)

	assert.Equal(t, f.bf.Player[2], f.sel.Unit)
	assert.Equal(t, ecs.EntityID(0), f.sel.Hex)
	assert.False(t, f.bf.World.Has(f.bf.Player[0], ecs.TagSelected))
	assert.False(t, f.bf.World.Has(hexAt(f.bf, 1, 1), ecs.TagSelected))
	assert.Equal(t, assets.PlayerUnit, f.bf.World.Sprite[f.bf.Player[0]].Current)
	assert.Equal(t, assets.Hex, f.bf.World.Sprite[hexAt(f.bf, 1, 1)].Current)
	assert.Len(t, f.bf.World.Query(ecs.TagSelected), 1)
}

func TestSelectionSystem_ReplaceDestination(t *testing.T) {
	f := newSelectionFixture(t)
	f.click(0, 1)
	f.click(1, 1)

	f.click(2, 2)

	assert.Equal(t, hexAt(f.bf, 2, 2), f.sel.Hex)
	assert.False(t, f.bf.World.Has(hexAt(f.bf, 1, 1), ecs.TagSelected))
}

func TestSelectionSystem_EnemyUnitsAreSelectable(t *testing.T) {
	f := newSelectionFixture(t)

	f.click(9, 1)

	assert.Equal(t, f.bf.Enemy[0], f.sel.Unit)
}

func TestSelectionSystem_PressOverNothing(t *testing.T) {
	f := newSelectionFixture(t)
	f.click(0, 1)

	f.collision.Update(f.bf.World, state.Pointer{X: 790, Y: 590})
	f.sel.Press()
	changed := f.selection.Update(f.bf.World, &f.sel)

	assert.False(t, changed)
	assert.Equal(t, f.bf.Player[0], f.sel.Unit, "selection survives a click on nothing")
}

func TestSelectionSystem_NoPress(t *testing.T) {
	f := newSelectionFixture(t)
	f.collision.Update(f.bf.World, pointerAt(f.bf, 0, 1))

	assert.False(t, f.selection.Update(f.bf.World, &f.sel))
	assert.Equal(t, ecs.EntityID(0), f.sel.Unit)
}

func TestSelectionSystem_Clear(t *testing.T) {
	f := newSelectionFixture(t)
	f.click(0, 1)
	f.click(1, 1)
	f.collision.Update(f.bf.World, pointerAt(f.bf, 6, 6))

	f.selection.Clear(f.bf.World, &f.sel)

	assert.Equal(t, state.Selection{}, f.sel)
	assert.Empty(t, f.bf.World.Query(ecs.TagSelected))
	assert.Equal(t, assets.PlayerUnit, f.bf.World.Sprite[f.bf.Player[0]].Current)
}
