// Package title provides the menu shown before a match.
package title

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/younwookim/crystalblade/internal/application/scene"
	"github.com/younwookim/crystalblade/internal/application/system"
	"github.com/younwookim/crystalblade/internal/infrastructure/audio"
	"github.com/younwookim/crystalblade/internal/infrastructure/logger"
)

var (
	colorBG     = color.RGBA{16, 16, 32, 255}
	colorBanner = color.RGBA{120, 220, 255, 255}
	colorBlade  = color.RGBA{220, 220, 255, 255}
)

var controls = []string{
	"A/D  move      W  jump",
	"LMB/Space  swing sword",
	"RMB/E  special (10 crystals)",
	"P  pause",
}

// Title is the menu canvas. While it is shown the menu music plays.
type Title struct {
	inputSystem *system.InputSystem
	sounds      *audio.Set
	screenW     int
	screenH     int

	// Start builds the match scene
	Start func() scene.Scene
}

// New creates the title scene. A nil sounds plays nothing.
func New(screenW, screenH int, sounds *audio.Set) *Title {
	if sounds == nil {
		sounds = audio.Silent()
	}
	return &Title{
		inputSystem: system.NewInputSystem(),
		sounds:      sounds,
		screenW:     screenW,
		screenH:     screenH,
	}
}

// Update implements scene.Scene
func (t *Title) Update(_ float64) (scene.Scene, error) {
	return t.Step(t.inputSystem.GetInput())
}

// Step handles one frame of menu input.
// Quitting returns ebiten.Termination so the game loop exits cleanly.
func (t *Title) Step(input system.InputState) (scene.Scene, error) {
	t.sounds.Update(true)

	if input.QuitPressed {
		logger.Log.Info("quit from title")
		return nil, ebiten.Termination
	}
	if input.StartPressed && t.Start != nil {
		return t.Start(), nil
	}
	return nil, nil
}

// Draw renders the menu
func (t *Title) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	cy := t.screenH / 3
	drawCentered(screen, "CRYSTAL BLADE", t.screenW, cy, colorBanner)
	ebitenutil.DrawRect(screen, float64(t.screenW/2-40), float64(cy+6), 80, 2, colorBlade)

	for i, line := range controls {
		drawCentered(screen, line, t.screenW, cy+30+i*14, color.White)
	}
	drawCentered(screen, "ENTER start   Q quit", t.screenW, t.screenH-16, colorBanner)
}

// OnEnter starts the menu music
func (t *Title) OnEnter() {
	t.sounds.EnterMenu()
}

// OnExit is called when leaving this scene
func (t *Title) OnExit() {}

func drawCentered(screen *ebiten.Image, s string, screenW, y int, c color.Color) {
	x := (screenW - font.MeasureString(basicfont.Face7x13, s).Ceil()) / 2
	text.Draw(screen, s, basicfont.Face7x13, x, y, c)
}
