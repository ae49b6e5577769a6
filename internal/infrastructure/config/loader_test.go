package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadSettings(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Display.ScreenWidth)
	assert.Equal(t, 600, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, ColorConfig{R: 50, G: 60, B: 57}, cfg.Display.Background)
	assert.Equal(t, 19, cfg.Map.Columns)
	assert.Equal(t, 12, cfg.Map.Rows)
	assert.Equal(t, 27.0, cfg.Map.HexEdge)
	assert.Equal(t, "offset", cfg.Map.Adjacency)
	assert.Equal(t, 24.0, cfg.Units.Size)
	assert.False(t, cfg.Rules.SpendMovementPoints)
	assert.Equal(t, "hex.png", cfg.Assets.Images["hex"])
}

func TestLoader_LoadScenario(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadScenario("skirmish")
	require.NoError(t, err)

	assert.Equal(t, "skirmish", cfg.Name)
	require.Len(t, cfg.Player, 5)
	require.Len(t, cfg.Enemy, 5)
	assert.Equal(t, UnitSpawnConfig{Power: 3, Movement: 2, At: CellConfig{Col: 0, Row: 1}}, cfg.Player[0])
	assert.Equal(t, UnitSpawnConfig{Power: 1, Movement: 3, At: CellConfig{Col: 8, Row: 5}}, cfg.Enemy[4])
}

func TestLoader_LoadScenario_Missing(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	_, err := loader.LoadScenario("nope")
	assert.Error(t, err)
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadAll("skirmish")
	require.NoError(t, err)

	assert.NotNil(t, cfg.Settings)
	assert.NotNil(t, cfg.Scenario)
}

func TestLoader_Defaults(t *testing.T) {
	fsys := fstest.MapFS{
		"game.json":             {Data: []byte(`{"map": {"adjacency": "legacy"}}`)},
		"scenarios/empty.yaml":  {Data: []byte("player: []\n")},
		"scenarios/broken.yaml": {Data: []byte("player: [\n")},
	}
	loader := NewFSLoader(fsys, ".")

	cfg, err := loader.LoadAll("empty")
	require.NoError(t, err)

	assert.Equal(t, "legacy", cfg.Settings.Map.Adjacency)
	assert.Equal(t, DefaultColumns, cfg.Settings.Map.Columns)
	assert.Equal(t, DefaultRows, cfg.Settings.Map.Rows)
	assert.Equal(t, DefaultHexEdge, cfg.Settings.Map.HexEdge)
	assert.Equal(t, DefaultBackground, cfg.Settings.Display.Background)
	assert.Equal(t, DefaultAnchor, cfg.Settings.Units.AnchorX)
	assert.Equal(t, "empty", cfg.Scenario.Name, "name falls back to the file name")

	_, err = loader.LoadScenario("broken")
	assert.Error(t, err)
}

func TestLoader_Anchors(t *testing.T) {
	tests := []struct {
		name   string
		json   string
		wantX  float64
		wantY  float64
		wantSz float64
	}{
		{"top-left", `{"units": {"anchorX": 0, "anchorY": 0}}`, 0, 0, DefaultUnitSize},
		{"size only", `{"units": {"size": 30}}`, DefaultAnchor, DefaultAnchor, 30},
		{"one axis", `{"units": {"anchorY": 1}}`, DefaultAnchor, 1, DefaultUnitSize},
		{"no units block", `{}`, DefaultAnchor, DefaultAnchor, DefaultUnitSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := NewFSLoader(fstest.MapFS{"game.json": {Data: []byte(tt.json)}}, ".")

			cfg, err := loader.LoadSettings()
			require.NoError(t, err)

			assert.Equal(t, tt.wantX, cfg.Units.AnchorX)
			assert.Equal(t, tt.wantY, cfg.Units.AnchorY)
			assert.Equal(t, tt.wantSz, cfg.Units.Size)
		})
	}
}

func TestLoader_InvalidJSON(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{"game.json": {Data: []byte("{")}}, ".")

	_, err := loader.LoadSettings()
	assert.Error(t, err)
}

func TestDefaultSettings(t *testing.T) {
	cfg := DefaultSettings()

	assert.Equal(t, DefaultScreenWidth, cfg.Display.ScreenWidth)
	assert.Equal(t, DefaultUnitSize, cfg.Units.Size)
	assert.Equal(t, DefaultAnchor, cfg.Units.AnchorY)
	assert.Equal(t, "", cfg.Map.Adjacency)
}

func TestValidateScenario(t *testing.T) {
	unit := func(col, row int) UnitSpawnConfig {
		return UnitSpawnConfig{Power: 1, Movement: 1, At: CellConfig{Col: col, Row: row}}
	}

	tests := []struct {
		name    string
		sc      ScenarioConfig
		wantErr bool
	}{
		{"valid", ScenarioConfig{Player: []UnitSpawnConfig{unit(0, 1)}, Enemy: []UnitSpawnConfig{unit(9, 1)}}, false},
		{"empty", ScenarioConfig{}, false},
		{"outside", ScenarioConfig{Player: []UnitSpawnConfig{unit(19, 0)}}, true},
		{"negative row", ScenarioConfig{Enemy: []UnitSpawnConfig{unit(0, -1)}}, true},
		{"overlap across armies", ScenarioConfig{Player: []UnitSpawnConfig{unit(2, 2)}, Enemy: []UnitSpawnConfig{unit(2, 2)}}, true},
		{"negative movement", ScenarioConfig{Player: []UnitSpawnConfig{{Movement: -1}}}, true},
		{"negative power", ScenarioConfig{Player: []UnitSpawnConfig{{Power: -1}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateScenario(&tt.sc, 19, 12)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidScenario)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
