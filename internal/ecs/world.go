package ecs

import "sort"

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// World holds all component maps and the next entity ID
type World struct {
	nextID EntityID

	// Components
	Position     map[EntityID]Position
	Velocity     map[EntityID]Velocity
	Movement     map[EntityID]Movement
	Hitbox       map[EntityID]Hitbox
	Facing       map[EntityID]Facing
	PlayerData   map[EntityID]Player
	Chaser       map[EntityID]Chaser
	ScrollerData map[EntityID]Scroller

	// Tags
	IsPlayer   map[EntityID]struct{}
	IsEnemy    map[EntityID]struct{}
	IsCrystal  map[EntityID]struct{}
	IsScroller map[EntityID]struct{}

	// Singleton references
	PlayerID EntityID
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:       1, // 0 is "nil"
		Position:     make(map[EntityID]Position),
		Velocity:     make(map[EntityID]Velocity),
		Movement:     make(map[EntityID]Movement),
		Hitbox:       make(map[EntityID]Hitbox),
		Facing:       make(map[EntityID]Facing),
		PlayerData:   make(map[EntityID]Player),
		Chaser:       make(map[EntityID]Chaser),
		ScrollerData: make(map[EntityID]Scroller),
		IsPlayer:     make(map[EntityID]struct{}),
		IsEnemy:      make(map[EntityID]struct{}),
		IsCrystal:    make(map[EntityID]struct{}),
		IsScroller:   make(map[EntityID]struct{}),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// DestroyEntity removes all components for an entity
func (w *World) DestroyEntity(id EntityID) {
	delete(w.Position, id)
	delete(w.Velocity, id)
	delete(w.Movement, id)
	delete(w.Hitbox, id)
	delete(w.Facing, id)
	delete(w.PlayerData, id)
	delete(w.Chaser, id)
	delete(w.ScrollerData, id)
	delete(w.IsPlayer, id)
	delete(w.IsEnemy, id)
	delete(w.IsCrystal, id)
	delete(w.IsScroller, id)
	if id == w.PlayerID {
		w.PlayerID = 0
	}
}

// Exists checks if an entity has Position component
func (w *World) Exists(id EntityID) bool {
	_, ok := w.Position[id]
	return ok
}

// groundedY returns the IU Y that puts a box of the given height on the ground
func groundedY(groundY int, hitbox Hitbox) int {
	return (groundY - hitbox.OffsetY - hitbox.Height) * PositionScale
}

// CreatePlayer creates the player standing on the ground
func (w *World) CreatePlayer(pixelX, groundY int, hitbox Hitbox, maxLives int) EntityID {
	id := w.NewEntity()

	w.Position[id] = Position{X: pixelX * PositionScale, Y: groundedY(groundY, hitbox)}
	w.Velocity[id] = Velocity{}
	w.Movement[id] = Movement{OnGround: true}
	w.Hitbox[id] = hitbox
	w.Facing[id] = Facing{Right: true}
	w.PlayerData[id] = Player{Lives: maxLives, MaxLives: maxLives}
	w.IsPlayer[id] = struct{}{}

	w.PlayerID = id
	return id
}

// EnemyConfig holds configuration for creating an enemy.
// Speeds are in IU/frame, delays in frames (pre-converted).
type EnemyConfig struct {
	MoveSpeed      int
	DirectionDelay int
	Hitbox         Hitbox
}

// CreateEnemy creates a chasing enemy standing on the ground
func (w *World) CreateEnemy(pixelX, groundY int, cfg EnemyConfig) EntityID {
	id := w.NewEntity()

	w.Position[id] = Position{X: pixelX * PositionScale, Y: groundedY(groundY, cfg.Hitbox)}
	w.Hitbox[id] = cfg.Hitbox
	w.Facing[id] = Facing{}
	w.Chaser[id] = Chaser{
		MoveSpeed:      cfg.MoveSpeed,
		DirectionDelay: cfg.DirectionDelay,
		Moving:         true,
	}
	w.IsEnemy[id] = struct{}{}

	return id
}

// CreateCrystal creates a crystal pickup at pixelX that falls to the ground
func (w *World) CreateCrystal(pixelX, pixelY int, hitbox Hitbox) EntityID {
	id := w.NewEntity()

	w.Position[id] = Position{X: pixelX * PositionScale, Y: pixelY * PositionScale}
	w.Velocity[id] = Velocity{}
	w.Movement[id] = Movement{}
	w.Hitbox[id] = hitbox
	w.IsCrystal[id] = struct{}{}

	return id
}

// CreateScroller creates a repeating background strip
func (w *World) CreateScroller(pixelX, pixelY int, s Scroller) EntityID {
	id := w.NewEntity()

	s.StartX = pixelX * PositionScale
	w.Position[id] = Position{X: s.StartX, Y: pixelY * PositionScale}
	w.ScrollerData[id] = s
	w.IsScroller[id] = struct{}{}

	return id
}

// GetPlayerRect returns the player's hitbox in pixels
func (w *World) GetPlayerRect() (Rect, bool) {
	if w.PlayerID == 0 {
		return Rect{}, false
	}
	return w.rect(w.PlayerID), true
}

func (w *World) rect(id EntityID) Rect {
	pos := w.Position[id]
	return w.Hitbox[id].GetWorldRect(pos.PixelX(), pos.PixelY())
}

// CountEnemies returns the number of live enemies
func (w *World) CountEnemies() int {
	return len(w.IsEnemy)
}

// CountCrystals returns the number of crystals lying in the arena
func (w *World) CountCrystals() int {
	return len(w.IsCrystal)
}

// ClearEnemies destroys every enemy and returns how many there were
func (w *World) ClearEnemies() int {
	ids := w.Enemies()
	for _, id := range ids {
		w.DestroyEntity(id)
	}
	return len(ids)
}

// Enemies returns enemy IDs in creation order
func (w *World) Enemies() []EntityID {
	return sortedIDs(w.IsEnemy)
}

// Crystals returns crystal IDs in creation order
func (w *World) Crystals() []EntityID {
	return sortedIDs(w.IsCrystal)
}

// Scrollers returns background strip IDs in creation order
func (w *World) Scrollers() []EntityID {
	return sortedIDs(w.IsScroller)
}

// sortedIDs gives map-backed tag sets a deterministic iteration order
func sortedIDs(set map[EntityID]struct{}) []EntityID {
	ids := make([]EntityID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
