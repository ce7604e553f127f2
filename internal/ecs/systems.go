package ecs

// Config holds simulation tuning.
// Speeds are IU/frame, accelerations IU/frame², durations frames, distances pixels.
type Config struct {
	Gravity      int
	MaxFallSpeed int
	GroundY      int

	// Player movement
	MoveSpeed     int
	JumpForce     int
	LeftBoundary  int
	RightBoundary int

	// Sword
	AttackFrames      int
	AttackBoxWidth    int
	AttackBoxHeight   int
	AttackBoxDistance int

	// Knockback
	KnockbackForce   int
	KnockbackUpForce int
}

// InputState holds input for the current frame
type InputState struct {
	Axis          int // -1 left, 0 none, 1 right
	JumpPressed   bool
	AttackPressed bool
}

// PlayerActions reports what the player did this frame, for sound effects
type PlayerActions struct {
	Jumped  bool
	Running bool
}

// UpdateTimers decrements all frame-based timers
func UpdateTimers(w *World) {
	for id := range w.IsPlayer {
		player := w.PlayerData[id]
		if player.AttackTimer > 0 {
			player.AttackTimer--
			if player.AttackTimer == 0 {
				player.Attacking = false
			}
		}
		w.PlayerData[id] = player
	}
}

// UpdatePlayerInput applies horizontal movement and jumping.
// Input is ignored while the player is knocked back.
func UpdatePlayerInput(w *World, input InputState, cfg Config) PlayerActions {
	id := w.PlayerID
	if id == 0 {
		return PlayerActions{}
	}

	player := w.PlayerData[id]
	if player.Stunned {
		// knockback slides to a stop
		vel := w.Velocity[id]
		vel.X = vel.X * 9 / 10
		w.Velocity[id] = vel
		return PlayerActions{}
	}

	mov := w.Movement[id]
	vel := w.Velocity[id]
	facing := w.Facing[id]

	vel.X = input.Axis * cfg.MoveSpeed
	if input.Axis > 0 {
		facing.Right = true
	} else if input.Axis < 0 {
		facing.Right = false
	}

	var actions PlayerActions
	if input.JumpPressed && mov.OnGround {
		vel.Y = -cfg.JumpForce
		mov.OnGround = false
		actions.Jumped = true
	}
	actions.Running = mov.OnGround && input.Axis != 0

	w.Movement[id] = mov
	w.Velocity[id] = vel
	w.Facing[id] = facing
	return actions
}

// ApplyPhysics integrates gravity and velocity for every body with Movement,
// lands them on the ground and keeps the player inside its boundaries.
func ApplyPhysics(w *World, cfg Config) {
	for id, mov := range w.Movement {
		vel := w.Velocity[id]
		pos := w.Position[id]
		hb := w.Hitbox[id]

		vel.Y += cfg.Gravity
		if vel.Y > cfg.MaxFallSpeed {
			vel.Y = cfg.MaxFallSpeed
		}

		pos.X += vel.X
		pos.Y += vel.Y

		floor := groundedY(cfg.GroundY, hb)
		if pos.Y >= floor {
			pos.Y = floor
			vel.Y = 0
			mov.OnGround = true
		} else {
			mov.OnGround = false
		}

		if id == w.PlayerID {
			pos.X = clamp(pos.X, cfg.LeftBoundary*PositionScale, cfg.RightBoundary*PositionScale)
		}

		w.Position[id] = pos
		w.Velocity[id] = vel
		w.Movement[id] = mov
	}
}

// UpdateChasers walks every enemy toward the player's X.
// When the player crosses to the other side an enemy stops and waits
// DirectionDelay frames before turning to follow.
func UpdateChasers(w *World) {
	player, ok := w.GetPlayerRect()
	if !ok {
		return
	}
	targetX := player.CenterX() * PositionScale

	for id := range w.IsEnemy {
		ch := w.Chaser[id]
		pos := w.Position[id]
		facing := w.Facing[id]
		centerX := pos.X + w.Hitbox[id].Width*PositionScale/2

		newDir := -1
		if targetX > centerX {
			newDir = 1
		}

		if newDir != ch.Direction {
			ch.Moving = false
			ch.SinceChange++
			if ch.SinceChange >= ch.DirectionDelay {
				ch.Moving = true
				ch.SinceChange = 0
				ch.Direction = newDir
				facing.Right = newDir > 0
			}
		} else if !ch.Moving {
			// the player came back before we turned
			ch.Moving = true
			ch.SinceChange = 0
		}

		if ch.Moving {
			pos.X += moveTowards(centerX, targetX, ch.MoveSpeed)
		}

		w.Chaser[id] = ch
		w.Position[id] = pos
		w.Facing[id] = facing
	}
}

// moveTowards returns the step from current toward target, at most maxStep
func moveTowards(current, target, maxStep int) int {
	d := target - current
	if d > maxStep {
		return maxStep
	}
	if d < -maxStep {
		return -maxStep
	}
	return d
}

// AttackBox returns the sword hit box in front of the player
func AttackBox(w *World, cfg Config) (Rect, bool) {
	player, ok := w.GetPlayerRect()
	if !ok {
		return Rect{}, false
	}
	cx := player.CenterX()
	if w.Facing[w.PlayerID].Right {
		cx += cfg.AttackBoxDistance
	} else {
		cx -= cfg.AttackBoxDistance
	}
	cy := player.Y + player.H/2
	return Rect{
		X: cx - cfg.AttackBoxWidth/2,
		Y: cy - cfg.AttackBoxHeight/2,
		W: cfg.AttackBoxWidth,
		H: cfg.AttackBoxHeight,
	}, true
}

// UpdateAttack starts a sword swing when requested and none is in progress.
// Every enemy overlapping the hit box at the start of the swing is destroyed
// and returned in creation order.
func UpdateAttack(w *World, pressed bool, cfg Config) (swung bool, hits []EntityID) {
	id := w.PlayerID
	if id == 0 || !pressed {
		return false, nil
	}

	player := w.PlayerData[id]
	if player.Attacking {
		return false, nil
	}
	player.Attacking = true
	player.AttackTimer = cfg.AttackFrames
	w.PlayerData[id] = player

	box, _ := AttackBox(w, cfg)
	for _, enemy := range w.Enemies() {
		if box.Overlaps(w.rect(enemy)) {
			hits = append(hits, enemy)
		}
	}
	for _, enemy := range hits {
		w.DestroyEntity(enemy)
	}
	return true, hits
}

// CheckEnemyContact costs the player a life when an enemy touches them
// and knocks them away from it. A stunned player cannot be hit again.
// It returns whether a hit landed and the lives left.
func CheckEnemyContact(w *World, cfg Config) (hit bool, lives int) {
	id := w.PlayerID
	if id == 0 {
		return false, 0
	}
	player := w.PlayerData[id]
	if player.Stunned {
		return false, player.Lives
	}

	pr := w.rect(id)
	for _, enemy := range w.Enemies() {
		er := w.rect(enemy)
		if !pr.Overlaps(er) {
			continue
		}

		dir := 1
		if pr.CenterX() < er.CenterX() {
			dir = -1
		}

		player.Lives--
		player.Stunned = true
		w.PlayerData[id] = player
		w.Velocity[id] = Velocity{X: dir * cfg.KnockbackForce, Y: -cfg.KnockbackUpForce}
		w.Movement[id] = Movement{OnGround: false}
		return true, player.Lives
	}
	return false, player.Lives
}

// SetStunned changes whether the player ignores input
func SetStunned(w *World, stunned bool) {
	id := w.PlayerID
	if id == 0 {
		return
	}
	player := w.PlayerData[id]
	player.Stunned = stunned
	w.PlayerData[id] = player
}

// CollectCrystals removes every crystal the player touches and returns how many
func CollectCrystals(w *World) int {
	pr, ok := w.GetPlayerRect()
	if !ok {
		return 0
	}
	collected := 0
	for _, id := range w.Crystals() {
		if pr.Overlaps(w.rect(id)) {
			w.DestroyEntity(id)
			collected++
		}
	}
	return collected
}

// ScrollBackground drifts background strips left, snapping each back to its start after its span
func ScrollBackground(w *World) {
	for id := range w.IsScroller {
		s := w.ScrollerData[id]
		pos := w.Position[id]
		pos.X -= s.Speed
		if pos.X < s.StartX-s.Span*PositionScale {
			pos.X = s.StartX
		}
		w.Position[id] = pos
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
