package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/younwookim/crystalblade/internal/domain/session"
	"github.com/younwookim/crystalblade/internal/ecs"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorGround   = color.RGBA{60, 52, 40, 255}
	colorPlayer   = color.RGBA{100, 200, 100, 255}
	colorStunned  = color.RGBA{255, 255, 255, 200}
	colorSword    = color.RGBA{220, 220, 255, 160}
	colorEnemy    = color.RGBA{200, 100, 100, 255}
	colorCrystal  = color.RGBA{120, 220, 255, 255}
	colorHeart    = color.RGBA{220, 40, 60, 255}
	colorHeartOff = color.RGBA{60, 60, 60, 255}
	colorHitbox   = color.RGBA{255, 255, 0, 96}
	colorText     = color.White
	colorSpecial  = color.RGBA{255, 215, 0, 255}
)

var face = basicfont.Face7x13

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	p.drawBackground(screen)
	ground := float64(p.config.Arena.GroundY)
	ebitenutil.DrawRect(screen, 0, ground, float64(p.screenW), float64(p.screenH)-ground, colorGround)

	p.drawCrystals(screen)
	p.drawEnemies(screen)
	p.drawPlayer(screen)

	p.drawHUD(screen)

	switch p.session.Phase() {
	case session.PhasePaused:
		p.drawPauseOverlay(screen)
	case session.PhaseEnded:
		p.drawGameOverOverlay(screen)
	}
}

func (p *Playing) drawBackground(screen *ebiten.Image) {
	w := p.world
	for _, id := range w.Scrollers() {
		s := w.ScrollerData[id]
		pos := w.Position[id]
		x0 := float64(pos.PixelX())
		y := float64(pos.PixelY())
		// one block per span so the scroll is visible
		for x := 0; x < s.Width; x += s.Span {
			ebitenutil.DrawRect(screen, x0+float64(x), y, float64(s.Span)/2, float64(s.Height), s.Color)
		}
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image) {
	w := p.world
	r, ok := w.GetPlayerRect()
	if !ok {
		return
	}
	player := w.PlayerData[w.PlayerID]

	c := colorPlayer
	if player.Stunned {
		c = colorStunned
	}
	drawRect(screen, r, c)

	if player.Attacking {
		if box, ok := ecs.AttackBox(w, p.physics); ok {
			drawRect(screen, box, colorSword)
		}
	}

	// Draw hitbox debug
	if ebiten.IsKeyPressed(ebiten.KeyTab) {
		drawRect(screen, r, colorHitbox)
	}
}

func (p *Playing) drawEnemies(screen *ebiten.Image) {
	w := p.world
	for _, id := range w.Enemies() {
		pos := w.Position[id]
		drawRect(screen, w.Hitbox[id].GetWorldRect(pos.PixelX(), pos.PixelY()), colorEnemy)
	}
}

func (p *Playing) drawCrystals(screen *ebiten.Image) {
	w := p.world
	for _, id := range w.Crystals() {
		pos := w.Position[id]
		drawRect(screen, w.Hitbox[id].GetWorldRect(pos.PixelX(), pos.PixelY()), colorCrystal)
	}
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	text.Draw(screen, p.hud.TimerText(), face, 8, 14, colorText)
	text.Draw(screen, p.hud.KillText(), face, 8, 28, colorText)

	crystals := p.hud.CrystalText()
	var cc color.Color = colorText
	if p.session.Economy().CanSpecialAttack() {
		crystals += "  [RMB] special"
		cc = colorSpecial
	}
	text.Draw(screen, crystals, face, 8, 42, cc)

	wave := fmt.Sprintf("Wave %d", p.hud.Wave)
	text.Draw(screen, wave, face, p.screenW-font.MeasureString(face, wave).Ceil()-8, 14, colorText)

	// Lives as hearts
	player := p.world.PlayerData[p.world.PlayerID]
	for i := 0; i < player.MaxLives; i++ {
		c := colorHeartOff
		if i < player.Lives {
			c = colorHeart
		}
		x := float64(p.screenW - 8 - (player.MaxLives-i)*10)
		ebitenutil.DrawRect(screen, x, 22, 7, 7, c)
	}
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	// Semi-transparent overlay
	overlay := color.RGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	drawCentered(screen, "PAUSED", p.screenW, p.screenH/2-8)
	drawCentered(screen, "Press P to resume", p.screenW, p.screenH/2+10)
}

func (p *Playing) drawGameOverOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{100, 0, 0, 180}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	title := "GAME OVER"
	if p.endReason == session.EndTimeExpired {
		title = "TIME UP"
	}
	cy := p.screenH/2 - 24
	drawCentered(screen, title, p.screenW, cy)
	drawCentered(screen, p.hud.KillText(), p.screenW, cy+18)
	drawCentered(screen, fmt.Sprintf("Reached wave %d", p.hud.Wave), p.screenW, cy+32)
	drawCentered(screen, "Z: retry   ESC: title", p.screenW, cy+52)
}

func drawRect(screen *ebiten.Image, r ecs.Rect, c color.Color) {
	ebitenutil.DrawRect(screen, float64(r.X), float64(r.Y), float64(r.W), float64(r.H), c)
}

// drawCentered draws a line of text centred horizontally at baseline y
func drawCentered(screen *ebiten.Image, s string, screenW, y int) {
	x := (screenW - font.MeasureString(face, s).Ceil()) / 2
	text.Draw(screen, s, face, x, y, colorText)
}
