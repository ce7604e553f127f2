package system

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/crystalblade/internal/ecs"
)

// fakeKeys is a scripted KeySource
type fakeKeys struct {
	held    map[ebiten.Key]bool
	pressed map[ebiten.Key]bool
	clicks  map[ebiten.MouseButton]bool
}

func newFakeKeys() *fakeKeys {
	return &fakeKeys{
		held:    make(map[ebiten.Key]bool),
		pressed: make(map[ebiten.Key]bool),
		clicks:  make(map[ebiten.MouseButton]bool),
	}
}

func (f *fakeKeys) IsKeyPressed(key ebiten.Key) bool     { return f.held[key] }
func (f *fakeKeys) IsKeyJustPressed(key ebiten.Key) bool { return f.pressed[key] }
func (f *fakeKeys) IsMouseButtonJustPressed(b ebiten.MouseButton) bool {
	return f.clicks[b]
}

func TestNewInputSystem(t *testing.T) {
	s := NewInputSystem()
	assert.NotNil(t, s)
	assert.NotNil(t, s.keys)
}

func TestGetInput_Idle(t *testing.T) {
	s := NewInputSystemFrom(newFakeKeys())
	assert.Equal(t, InputState{}, s.GetInput())
}

func TestGetInput_Bindings(t *testing.T) {
	tests := []struct {
		name  string
		setup func(k *fakeKeys)
		want  InputState
	}{
		{"A moves left", func(k *fakeKeys) { k.held[ebiten.KeyA] = true }, InputState{Left: true}},
		{"arrow moves right", func(k *fakeKeys) { k.held[ebiten.KeyArrowRight] = true }, InputState{Right: true}},
		{"W jumps", func(k *fakeKeys) { k.pressed[ebiten.KeyW] = true }, InputState{JumpPressed: true}},
		{"left click attacks", func(k *fakeKeys) { k.clicks[ebiten.MouseButtonLeft] = true }, InputState{AttackPressed: true}},
		{"space attacks", func(k *fakeKeys) { k.pressed[ebiten.KeySpace] = true }, InputState{AttackPressed: true}},
		{"right click special", func(k *fakeKeys) { k.clicks[ebiten.MouseButtonRight] = true }, InputState{SpecialPressed: true}},
		{"P pauses", func(k *fakeKeys) { k.pressed[ebiten.KeyP] = true }, InputState{PausePressed: true}},
		{"Esc pauses and backs out", func(k *fakeKeys) { k.pressed[ebiten.KeyEscape] = true }, InputState{PausePressed: true, BackPressed: true}},
		{"Enter starts", func(k *fakeKeys) { k.pressed[ebiten.KeyEnter] = true }, InputState{StartPressed: true}},
		{"Z retries", func(k *fakeKeys) { k.pressed[ebiten.KeyZ] = true }, InputState{RetryPressed: true}},
		{"Q quits", func(k *fakeKeys) { k.pressed[ebiten.KeyQ] = true }, InputState{QuitPressed: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := newFakeKeys()
			tt.setup(keys)
			assert.Equal(t, tt.want, NewInputSystemFrom(keys).GetInput())
		})
	}
}

func TestInputState_Axis(t *testing.T) {
	assert.Equal(t, 0, InputState{}.Axis())
	assert.Equal(t, -1, InputState{Left: true}.Axis())
	assert.Equal(t, 1, InputState{Right: true}.Axis())
	assert.Equal(t, 0, InputState{Left: true, Right: true}.Axis())
}

func TestInputState_ToECS(t *testing.T) {
	in := InputState{Right: true, JumpPressed: true, AttackPressed: true, PausePressed: true}

	assert.Equal(t, ecs.InputState{Axis: 1, JumpPressed: true, AttackPressed: true}, in.ToECS())
}
