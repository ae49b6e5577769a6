package config

// SettingsConfig is the root config for game.json
type SettingsConfig struct {
	Display DisplayConfig `json:"display"`
	Map     MapConfig     `json:"map"`
	Units   UnitsConfig   `json:"units"`
	Rules   RulesConfig   `json:"rules"`
	Assets  AssetsConfig  `json:"assets"`
}

type DisplayConfig struct {
	Title        string      `json:"title"`
	ScreenWidth  int         `json:"screenWidth"`
	ScreenHeight int         `json:"screenHeight"`
	Scale        int         `json:"scale"`
	Framerate    int         `json:"framerate"`
	Background   ColorConfig `json:"background"`
}

type ColorConfig struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// MapConfig describes the battlefield grid
type MapConfig struct {
	Columns   int     `json:"columns"`
	Rows      int     `json:"rows"`
	HexEdge   float64 `json:"hexEdge"`
	Adjacency string  `json:"adjacency"` // "offset" or "legacy"
	Picking   string  `json:"picking"`   // "approximate" or "exact"
}

// UnitsConfig describes how unit images sit on their hexagon
type UnitsConfig struct {
	Size    float64 `json:"size"`
	AnchorX float64 `json:"anchorX"`
	AnchorY float64 `json:"anchorY"`
}

// RulesConfig toggles movement rules
type RulesConfig struct {
	SpendMovementPoints     bool `json:"spendMovementPoints"`
	ClearSelectionAfterMove bool `json:"clearSelectionAfterMove"`
}

// AssetsConfig maps image names to PNG files under Dir
type AssetsConfig struct {
	Dir    string            `json:"dir"`
	Images map[string]string `json:"images"`
}

// Default values applied to zero fields of game.json
const (
	DefaultTitle        = "Necromancer"
	DefaultScreenWidth  = 800
	DefaultScreenHeight = 600
	DefaultScale        = 1
	DefaultFramerate    = 60
	DefaultColumns      = 19
	DefaultRows         = 12
	DefaultHexEdge      = 27.0
	DefaultUnitSize     = 24.0
	DefaultAnchor       = 0.5
)

// DefaultBackground is the clear colour of the battlefield
var DefaultBackground = ColorConfig{R: 50, G: 60, B: 57}

// applyDefaults fills zero fields that zero would make unusable
func (c *SettingsConfig) applyDefaults() {
	if c.Display.Title == "" {
		c.Display.Title = DefaultTitle
	}
	if c.Display.ScreenWidth == 0 {
		c.Display.ScreenWidth = DefaultScreenWidth
	}
	if c.Display.ScreenHeight == 0 {
		c.Display.ScreenHeight = DefaultScreenHeight
	}
	if c.Display.Scale == 0 {
		c.Display.Scale = DefaultScale
	}
	if c.Display.Framerate == 0 {
		c.Display.Framerate = DefaultFramerate
	}
	if c.Display.Background == (ColorConfig{}) {
		c.Display.Background = DefaultBackground
	}
	if c.Map.Columns == 0 {
		c.Map.Columns = DefaultColumns
	}
	if c.Map.Rows == 0 {
		c.Map.Rows = DefaultRows
	}
	if c.Map.HexEdge == 0 {
		c.Map.HexEdge = DefaultHexEdge
	}
	if c.Units.Size == 0 {
		c.Units.Size = DefaultUnitSize
	}
}

// newSettings presets the fields for which zero is a valid value, so that
// only keys present in game.json override them
func newSettings() SettingsConfig {
	return SettingsConfig{
		Units: UnitsConfig{AnchorX: DefaultAnchor, AnchorY: DefaultAnchor},
	}
}

// DefaultSettings returns the settings used when game.json has no overrides
func DefaultSettings() *SettingsConfig {
	c := newSettings()
	c.applyDefaults()
	return &c
}
