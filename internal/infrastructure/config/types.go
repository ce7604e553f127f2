package config

// GameConfig is the root config for game.json
type GameConfig struct {
	Display DisplayConfig `json:"display"`
	Session SessionConfig `json:"session"`
	Arena   ArenaConfig   `json:"arena"`
	Player  PlayerConfig  `json:"player"`
	Enemy   EnemyConfig   `json:"enemy"`
	Crystal CrystalConfig `json:"crystal"`
	Audio   AudioConfig   `json:"audio"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

// SessionConfig tunes the match: clock, waves and crystal economy
type SessionConfig struct {
	StartMinutes          float64 `json:"startMinutes"`
	InitialSpawnCount     int     `json:"initialSpawnCount"`
	KillsPerCrystal       int     `json:"killsPerCrystal"`
	SpecialAttackCost     int     `json:"specialAttackCost"`
	SpecialAttackCooldown float64 `json:"specialAttackCooldown"` // seconds
}

type ArenaConfig struct {
	GroundY      int               `json:"groundY"`      // pixel row the feet rest on
	Gravity      float64           `json:"gravity"`      // pixels/sec²
	MaxFallSpeed float64           `json:"maxFallSpeed"` // pixels/sec
	Background   []BackgroundLayer `json:"background"`
}

// BackgroundLayer is a repeating strip that scrolls left and snaps back
type BackgroundLayer struct {
	Y      int     `json:"y"`
	Height int     `json:"height"`
	Span   int     `json:"span"`  // pixels scrolled before snapping back
	Speed  float64 `json:"speed"` // pixels/sec
	Color  string  `json:"color"` // #RRGGBB or #RGB
}

type Rect struct {
	OffsetX int `json:"offsetX"`
	OffsetY int `json:"offsetY"`
	Width   int `json:"width"`
	Height  int `json:"height"`
}

type PlayerConfig struct {
	SpawnX        int             `json:"spawnX"`
	MoveSpeed     float64         `json:"moveSpeed"` // pixels/sec
	JumpForce     float64         `json:"jumpForce"` // pixels/sec
	LeftBoundary  int             `json:"leftBoundary"`
	RightBoundary int             `json:"rightBoundary"`
	MaxLives      int             `json:"maxLives"`
	Hitbox        Rect            `json:"hitbox"`
	Attack        AttackConfig    `json:"attack"`
	Knockback     KnockbackConfig `json:"knockback"`
}

// AttackConfig describes the sword swing and its hit box
type AttackConfig struct {
	Duration    float64 `json:"duration"` // seconds the sword stays out
	BoxWidth    int     `json:"boxWidth"`
	BoxHeight   int     `json:"boxHeight"`
	BoxDistance int     `json:"boxDistance"` // box centre offset in front of the player centre
}

type KnockbackConfig struct {
	Force        float64 `json:"force"`   // pixels/sec
	UpForce      float64 `json:"upForce"` // pixels/sec
	StunDuration float64 `json:"stunDuration"`
}

type EnemyConfig struct {
	MoveSpeed            float64 `json:"moveSpeed"` // pixels/sec
	DirectionChangeDelay float64 `json:"directionChangeDelay"`
	Hitbox               Rect    `json:"hitbox"`
	SpawnRadius          int     `json:"spawnRadius"`
	SpawnJitter          int     `json:"spawnJitter"`
}

type CrystalConfig struct {
	Hitbox Rect `json:"hitbox"`
	DropY  int  `json:"dropY"` // pixel row crystals fall from
}

type AudioConfig struct {
	SampleRate  int                     `json:"sampleRate"`
	MenuTrack   string                  `json:"menuTrack"`
	BattleTrack string                  `json:"battleTrack"`
	Tracks      map[string]TrackConfig  `json:"tracks"`
	Effects     map[string]EffectConfig `json:"effects"`
}

// TrackConfig is a looping note sequence synthesised at startup
type TrackConfig struct {
	Notes        []float64 `json:"notes"`        // Hz, 0 = rest
	NoteDuration float64   `json:"noteDuration"` // seconds
	Volume       float64   `json:"volume"`
	Wave         string    `json:"wave"` // "square" or "sine"
}

// EffectConfig is a frequency sweep played as a sound effect
type EffectConfig struct {
	StartFreq float64 `json:"startFreq"`
	EndFreq   float64 `json:"endFreq"`
	Duration  float64 `json:"duration"`
	Volume    float64 `json:"volume"`
	Loop      bool    `json:"loop,omitempty"`
}
