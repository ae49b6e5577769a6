// Package assets loads the battlefield images and draws placeholders for
// those that are missing.
package assets

import (
	"errors"
	"fmt"
	"image/color"
	_ "image/png"
	"io/fs"
	"log"
	"math"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/necromancer/internal/domain/hex"
	"github.com/younwookim/necromancer/internal/ecs"
	"github.com/younwookim/necromancer/internal/infrastructure/config"
)

// Image names referenced by sprites.
const (
	Hex               = "hex"
	HexCurrent        = "hex_current"
	HexOccupied       = "hex_occupied"
	PlayerUnit        = "unit_player"
	PlayerUnitCurrent = "unit_player_current"
	EnemyUnit         = "unit_enemy"
	EnemyUnitCurrent  = "unit_enemy_current"
)

// Names lists every image the battlefield needs.
var Names = []string{Hex, HexCurrent, HexOccupied, PlayerUnit, PlayerUnitCurrent, EnemyUnit, EnemyUnitCurrent}

// UnitImages returns the default and hover image names of an army.
func UnitImages(army ecs.Army) (image, hover string) {
	if army == ecs.ArmyEnemy {
		return EnemyUnit, EnemyUnitCurrent
	}
	return PlayerUnit, PlayerUnitCurrent
}

// Source tells where an image comes from. Missing sources get a placeholder.
type Source struct {
	Name    string
	Path    string
	Missing bool
}

// Plan resolves the configured file of every image name against fsys.
// A name without a file, or whose file does not exist, is marked Missing.
func Plan(fsys fs.FS, cfg config.AssetsConfig) ([]Source, error) {
	sources := make([]Source, 0, len(Names))
	for _, name := range Names {
		file, ok := cfg.Images[name]
		if !ok || file == "" {
			sources = append(sources, Source{Name: name, Missing: true})
			continue
		}
		p := path.Join(cfg.Dir, file)
		if _, err := fs.Stat(fsys, p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				sources = append(sources, Source{Name: name, Path: p, Missing: true})
				continue
			}
			return nil, fmt.Errorf("failed to stat image %s: %w", p, err)
		}
		sources = append(sources, Source{Name: name, Path: p})
	}
	return sources, nil
}

// Library holds the loaded images by name.
type Library struct {
	images map[string]*ebiten.Image
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{images: make(map[string]*ebiten.Image)}
}

// Get returns the image registered under name, or nil.
func (l *Library) Get(name string) *ebiten.Image {
	return l.images[name]
}

// Set registers an image.
func (l *Library) Set(name string, img *ebiten.Image) {
	l.images[name] = img
}

// Len returns the number of registered images.
func (l *Library) Len() int {
	return len(l.images)
}

// Load decodes every planned image and draws placeholders for the missing ones.
func Load(fsys fs.FS, cfg *config.SettingsConfig) (*Library, error) {
	sources, err := Plan(fsys, cfg.Assets)
	if err != nil {
		return nil, err
	}

	layout := hex.NewLayout(cfg.Map.HexEdge)
	lib := NewLibrary()
	for _, src := range sources {
		if src.Missing {
			log.Printf("image %s not found, using placeholder", src.Name)
			lib.Set(src.Name, Placeholder(src.Name, layout, cfg.Units.Size))
			continue
		}
		img, _, err := ebitenutil.NewImageFromFileSystem(fsys, src.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to load image %s: %w", src.Path, err)
		}
		lib.Set(src.Name, img)
	}
	return lib, nil
}

var placeholderColors = map[string]color.RGBA{
	Hex:               {R: 78, G: 98, B: 84, A: 255},
	HexCurrent:        {R: 132, G: 168, B: 110, A: 255},
	HexOccupied:       {R: 104, G: 84, B: 80, A: 255},
	PlayerUnit:        {R: 64, G: 96, B: 200, A: 255},
	PlayerUnitCurrent: {R: 120, G: 150, B: 240, A: 255},
	EnemyUnit:         {R: 190, G: 60, B: 60, A: 255},
	EnemyUnitCurrent:  {R: 240, G: 110, B: 100, A: 255},
}

var outlineColor = color.RGBA{R: 20, G: 24, B: 22, A: 255}

// Placeholder draws a flat image for name: a hexagon for tiles, a square
// for units.
func Placeholder(name string, layout hex.Layout, unitSize float64) *ebiten.Image {
	fill, ok := placeholderColors[name]
	if !ok {
		fill = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	}

	switch name {
	case Hex, HexCurrent, HexOccupied:
		return hexPlaceholder(layout, fill)
	default:
		s := int(math.Ceil(unitSize))
		img := ebiten.NewImage(s, s)
		vector.DrawFilledRect(img, 0, 0, float32(s), float32(s), fill, false)
		vector.StrokeRect(img, 1, 1, float32(s)-2, float32(s)-2, 2, outlineColor, false)
		return img
	}
}

func hexPlaceholder(layout hex.Layout, fill color.RGBA) *ebiten.Image {
	w := int(math.Ceil(layout.Width()))
	h := int(math.Ceil(layout.Height()))
	img := ebiten.NewImage(w, h)

	var p vector.Path
	for i, c := range layout.Corners(layout.Width()/2, layout.Height()/2) {
		if i == 0 {
			p.MoveTo(float32(c[0]), float32(c[1]))
		} else {
			p.LineTo(float32(c[0]), float32(c[1]))
		}
	}
	p.Close()

	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)

	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	tint(vs, fill)
	img.DrawTriangles(vs, is, white, &ebiten.DrawTrianglesOptions{AntiAlias: true})

	vs, is = p.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{Width: 1})
	tint(vs, outlineColor)
	img.DrawTriangles(vs, is, white, &ebiten.DrawTrianglesOptions{AntiAlias: true})

	return img
}

func tint(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}
