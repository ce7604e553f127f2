package ecs

import (
	"image/color"
	"math"
)

// PositionScale is the internal position scale factor.
// 1 pixel = 256 internal units for sub-pixel precision.
// Using 256 (2^8) allows bit-shift optimization for pixel conversion.
const PositionScale = 256

// PositionShift is the bit shift amount for pixel conversion (log2(256) = 8)
const PositionShift = 8

// ToIUPerFrame converts pixels/sec to IU/frame
func ToIUPerFrame(pixelsPerSec float64, fps int) int {
	return int(pixelsPerSec * PositionScale / float64(fps))
}

// ToIUAccelPerFrame converts pixels/sec² to IU velocity change per frame
func ToIUAccelPerFrame(pixelsPerSecSq float64, fps int) int {
	return int(pixelsPerSecSq * PositionScale / float64(fps*fps))
}

// SecondsToFrames converts a duration in seconds to whole frames
func SecondsToFrames(seconds float64, fps int) int {
	return int(math.Round(seconds * float64(fps)))
}

// Position represents an entity's top-left corner (256x scaled)
type Position struct {
	X, Y int
}

// PixelX returns the pixel X coordinate
func (p Position) PixelX() int { return p.X >> PositionShift }

// PixelY returns the pixel Y coordinate
func (p Position) PixelY() int { return p.Y >> PositionShift }

// Velocity represents movement speed in internal units per frame
type Velocity struct {
	X, Y int
}

// Movement represents ground contact
type Movement struct {
	OnGround bool
}

// Hitbox represents a collision area relative to the entity position
type Hitbox struct {
	OffsetX, OffsetY int
	Width, Height    int
}

// Rect is an axis-aligned box in pixels
type Rect struct {
	X, Y, W, H int
}

// Overlaps reports whether two rects share any area
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// CenterX returns the horizontal centre
func (r Rect) CenterX() int {
	return r.X + r.W/2
}

// GetWorldRect returns the hitbox in world pixel coordinates
func (h Hitbox) GetWorldRect(pixelX, pixelY int) Rect {
	return Rect{X: pixelX + h.OffsetX, Y: pixelY + h.OffsetY, W: h.Width, H: h.Height}
}

// Facing represents which direction entity faces
type Facing struct {
	Right bool
}

// Player represents player-specific data
type Player struct {
	Lives    int
	MaxLives int

	// Stunned blocks input while knocked back
	Stunned bool

	// Sword swing
	Attacking   bool
	AttackTimer int // frames left with the sword out
}

// Chaser walks toward the player along X and hesitates before turning around
type Chaser struct {
	MoveSpeed      int // IU per frame
	DirectionDelay int // frames to wait before turning

	// State
	Direction   int // -1 left, 1 right, 0 not yet chosen
	Moving      bool
	SinceChange int // frames spent waiting to turn
}

// Scroller is a background strip that drifts left and snaps back after Span pixels
type Scroller struct {
	StartX int // IU
	Span   int // pixels
	Speed  int // IU per frame
	Width  int // pixels
	Height int // pixels
	Color  color.RGBA
}
