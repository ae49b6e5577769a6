package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSystem polls the mouse and keyboard
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the input of one tick
type InputState struct {
	MouseX        int
	MouseY        int
	SelectPressed bool // left button went down this tick

	Restart    bool
	CopyReport bool
	Quit       bool
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	mx, my := ebiten.CursorPosition()
	return InputState{
		MouseX:        mx,
		MouseY:        my,
		SelectPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Restart:       inpututil.IsKeyJustPressed(ebiten.KeyR),
		CopyReport:    inpututil.IsKeyJustPressed(ebiten.KeyC),
		Quit:          inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}
