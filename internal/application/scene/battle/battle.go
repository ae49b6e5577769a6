// Package battle provides the hex battlefield scene.
package battle

import (
	"fmt"
	"image/color"
	"log"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/younwookim/necromancer/internal/application/replay"
	"github.com/younwookim/necromancer/internal/application/scene"
	"github.com/younwookim/necromancer/internal/application/session"
	"github.com/younwookim/necromancer/internal/application/system"
	"github.com/younwookim/necromancer/internal/domain/hex"
	"github.com/younwookim/necromancer/internal/ecs"
	"github.com/younwookim/necromancer/internal/infrastructure/assets"
	"github.com/younwookim/necromancer/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorReach = color.RGBA{240, 220, 120, 200}
	colorHUD   = color.RGBA{230, 230, 220, 255}
)

const controlsText = "LClick: Select | R: Restart | C: Copy report | ESC: Quit"

// Battle is the battlefield scene
type Battle struct {
	config     *config.GameConfig
	assets     *assets.Library
	session    *session.Session
	input      *system.InputSystem
	screenW    int
	screenH    int
	background color.RGBA
	face       font.Face
	lastMove   system.MoveResult

	// Input playback
	replayer   *replay.Replayer
	replayDone bool

	// Input recording
	recorder       *Recorder
	recordFilename string

	// Seams for tests
	poll     func() system.InputState
	copyText func(string) error
}

// New creates a new Battle scene.
// If recordPath is not empty, input will be recorded. If replayer is not nil,
// pointer and presses come from it until it runs out.
func New(cfg *config.GameConfig, lib *assets.Library, recordPath string, replayer *replay.Replayer) (*Battle, error) {
	s, err := session.New(cfg.Settings, cfg.Scenario)
	if err != nil {
		return nil, err
	}

	bg := cfg.Settings.Display.Background
	b := &Battle{
		config:         cfg,
		assets:         lib,
		session:        s,
		input:          system.NewInputSystem(),
		screenW:        cfg.Settings.Display.ScreenWidth,
		screenH:        cfg.Settings.Display.ScreenHeight,
		background:     color.RGBA{bg.R, bg.G, bg.B, 255},
		face:           basicfont.Face7x13,
		replayer:       replayer,
		recordFilename: recordPath,
		copyText:       clipboard.WriteAll,
	}
	b.poll = b.input.GetInput

	if recordPath != "" {
		b.recorder = NewRecorder(cfg.Scenario.Name)
		log.Printf("Recording enabled: %s", recordPath)
	}
	if replayer != nil {
		log.Printf("Replaying %d frames of %s", replayer.TotalFrames(), replayer.Scenario())
	}

	return b, nil
}

// Session returns the running session
func (b *Battle) Session() *session.Session {
	return b.session
}

// Update proceeds the battle by one tick (implements scene.Scene)
func (b *Battle) Update(_ float64) (scene.Scene, error) {
	in := b.poll()

	if in.Quit {
		if b.recorder != nil {
			b.recorder.Stop()
		}
		return nil, scene.ErrQuit
	}
	if in.Restart {
		if err := b.restart(); err != nil {
			return nil, err
		}
		return nil, nil
	}
	if in.CopyReport {
		b.copyReport()
	}

	if b.replayer != nil && !b.replayDone {
		ri, ok := b.replayer.GetInput()
		if ok {
			in.MouseX, in.MouseY, in.SelectPressed = ri.MouseX, ri.MouseY, ri.SelectPressed
		} else {
			b.replayDone = true
			log.Printf("Replay finished after %d frames", b.replayer.TotalFrames())
		}
	}

	if b.recorder != nil {
		b.recorder.RecordFrame(in)
	}

	if r := b.session.Step(in); r != system.MoveNone {
		b.lastMove = r
	}
	return nil, nil // nil = stay on this scene
}

func (b *Battle) restart() error {
	s, err := session.New(b.config.Settings, b.config.Scenario)
	if err != nil {
		return fmt.Errorf("failed to restart battle: %w", err)
	}
	b.session = s
	b.lastMove = system.MoveNone

	if b.replayer != nil {
		b.replayer.Reset()
		b.replayDone = false
	}
	if b.recordFilename != "" {
		b.recorder = NewRecorder(b.config.Scenario.Name)
		log.Printf("Recording restarted")
	}
	log.Printf("Battle restarted")
	return nil
}

func (b *Battle) copyReport() {
	if err := b.copyText(b.session.Report()); err != nil {
		log.Printf("Failed to copy report: %v", err)
		return
	}
	log.Printf("Report copied to clipboard")
}

// saveRecording saves the current recording to file
func (b *Battle) saveRecording() {
	if b.recorder == nil {
		return
	}

	filename := b.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := b.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, b.recorder.FrameCount())
	}
}

// Draw renders the battlefield (implements scene.Scene)
func (b *Battle) Draw(screen *ebiten.Image) {
	screen.Fill(b.background)

	w := b.session.World
	w.Each(ecs.CompSpace|ecs.CompSprite, func(id ecs.EntityID) {
		b.drawSprite(screen, id)
	})
	b.drawReach(screen)
	w.Each(ecs.CompUnit|ecs.CompSprite, func(id ecs.EntityID) {
		b.drawSprite(screen, id)
	})

	b.drawHUD(screen)
}

func (b *Battle) drawSprite(screen *ebiten.Image, id ecs.EntityID) {
	w := b.session.World
	img := b.assets.Get(w.Sprite[id].Current)
	if img == nil {
		return
	}
	pos := w.Position[id]
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	screen.DrawImage(img, op)
}

// drawReach outlines the hexagons the selected unit can reach
func (b *Battle) drawReach(screen *ebiten.Image) {
	area := b.session.Reach
	if area.Start == 0 {
		return
	}
	layout := b.session.Grid.Layout()
	area.Hexes.Each(func(id ecs.EntityID) {
		cx, cy := b.session.Grid.Center(id)
		pts := layout.Corners(cx, cy)
		for i := range pts {
			a, c := pts[i], pts[(i+1)%len(pts)]
			vector.StrokeLine(screen, float32(a[0]), float32(a[1]), float32(c[0]), float32(c[1]), 2, colorReach, true)
		}
	})
}

func (b *Battle) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, controlsText)

	lines := b.hudLines()
	y := b.screenH - 8 - 16*(len(lines)-1)
	for _, line := range lines {
		text.Draw(screen, line, b.face, 8, y, colorHUD)
		y += 16
	}
}

// hudLines describes the hovered entity, the selection and the last move
func (b *Battle) hudLines() []string {
	s := b.session
	w := s.World
	var lines []string

	if id := s.Hovered(); id != 0 {
		switch {
		case w.Has(id, ecs.CompUnit):
			u := w.Unit[id]
			lines = append(lines, fmt.Sprintf("%s unit: power %d, movement %d/%d",
				u.Army, u.Power, u.CurrentMovementPoints, u.MaxMovementPoints))
		case w.Has(id, ecs.CompSpace):
			sp := w.Space[id]
			line := fmt.Sprintf("hexagon (%d,%d) cube (%d,%d,%d)",
				sp.Coord.Col, sp.Coord.Row, sp.Cube.X, sp.Cube.Y, sp.Cube.Z)
			if s.Reach.Start != 0 {
				from := w.Space[s.Reach.Start].Coord
				line += fmt.Sprintf(", distance %d", hex.Distance(from, sp.Coord))
			}
			lines = append(lines, line)
		}
	}

	sel := fmt.Sprintf("selection: %s", s.Selection.State())
	if s.Reach.Start != 0 {
		sel += fmt.Sprintf(", %d reachable", s.Reach.Size())
	}
	lines = append(lines, sel)

	if b.lastMove != system.MoveNone {
		lines = append(lines, fmt.Sprintf("last move: %s", b.lastMove))
	}
	if b.recorder != nil && b.recorder.IsRecording() {
		lines = append(lines, fmt.Sprintf("recording: %d frames", b.recorder.FrameCount()))
	}
	return lines
}

// OnEnter is called when entering this scene
func (b *Battle) OnEnter() {
	// Nothing to initialize
}

// OnExit is called when leaving this scene
func (b *Battle) OnExit() {
	b.saveRecording()
}
