package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/crystalblade/internal/ecs"
)

// KeySource reports the raw device state for one frame
type KeySource interface {
	IsKeyPressed(key ebiten.Key) bool
	IsKeyJustPressed(key ebiten.Key) bool
	IsMouseButtonJustPressed(button ebiten.MouseButton) bool
}

// ebitenKeys reads the live ebiten input state
type ebitenKeys struct{}

func (ebitenKeys) IsKeyPressed(key ebiten.Key) bool { return ebiten.IsKeyPressed(key) }

func (ebitenKeys) IsKeyJustPressed(key ebiten.Key) bool { return inpututil.IsKeyJustPressed(key) }

func (ebitenKeys) IsMouseButtonJustPressed(button ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(button)
}

// InputSystem handles player input
type InputSystem struct {
	keys KeySource
}

// NewInputSystem creates an input system reading from ebiten
func NewInputSystem() *InputSystem {
	return &InputSystem{keys: ebitenKeys{}}
}

// NewInputSystemFrom creates an input system over any key source
func NewInputSystemFrom(keys KeySource) *InputSystem {
	return &InputSystem{keys: keys}
}

// InputState holds the current input state
type InputState struct {
	Left          bool
	Right         bool
	JumpPressed   bool
	AttackPressed bool

	PausePressed   bool
	SpecialPressed bool
	StartPressed   bool
	RetryPressed   bool
	BackPressed    bool
	QuitPressed    bool
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	k := s.keys
	return InputState{
		Left:  k.IsKeyPressed(ebiten.KeyA) || k.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: k.IsKeyPressed(ebiten.KeyD) || k.IsKeyPressed(ebiten.KeyArrowRight),
		JumpPressed: k.IsKeyJustPressed(ebiten.KeyW) ||
			k.IsKeyJustPressed(ebiten.KeyArrowUp),
		AttackPressed: k.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
			k.IsKeyJustPressed(ebiten.KeySpace),
		PausePressed:   k.IsKeyJustPressed(ebiten.KeyP) || k.IsKeyJustPressed(ebiten.KeyEscape),
		SpecialPressed: k.IsMouseButtonJustPressed(ebiten.MouseButtonRight) || k.IsKeyJustPressed(ebiten.KeyE),
		StartPressed:   k.IsKeyJustPressed(ebiten.KeyEnter),
		RetryPressed:   k.IsKeyJustPressed(ebiten.KeyZ),
		BackPressed:    k.IsKeyJustPressed(ebiten.KeyEscape),
		QuitPressed:    k.IsKeyJustPressed(ebiten.KeyQ),
	}
}

// Axis returns -1, 0 or 1 for the horizontal direction held.
// Holding both directions cancels out.
func (in InputState) Axis() int {
	axis := 0
	if in.Left {
		axis--
	}
	if in.Right {
		axis++
	}
	return axis
}

// ToECS returns the part of the input the simulation consumes
func (in InputState) ToECS() ecs.InputState {
	return ecs.InputState{
		Axis:          in.Axis(),
		JumpPressed:   in.JumpPressed,
		AttackPressed: in.AttackPressed,
	}
}
