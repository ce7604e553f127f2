package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadGame loads and validates game.json
func (l *Loader) LoadGame() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, "game.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read %s/game.json: %w", l.basePath, err)
	}

	var cfg GameConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game.json: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game.json: %w", err)
	}

	return &cfg, nil
}

// Validate checks values the game cannot run without
func (c *GameConfig) Validate() error {
	var errs []error

	if c.Display.Framerate <= 0 {
		errs = append(errs, errors.New("display.framerate must be positive"))
	}
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		errs = append(errs, errors.New("display size must be positive"))
	}
	if c.Session.StartMinutes <= 0 {
		errs = append(errs, errors.New("session.startMinutes must be positive"))
	}
	if c.Session.InitialSpawnCount < 0 {
		errs = append(errs, errors.New("session.initialSpawnCount must not be negative"))
	}
	if c.Session.SpecialAttackCooldown < 0 {
		errs = append(errs, errors.New("session.specialAttackCooldown must not be negative"))
	}
	if c.Player.LeftBoundary >= c.Player.RightBoundary {
		errs = append(errs, fmt.Errorf("player boundaries out of order: left %d >= right %d",
			c.Player.LeftBoundary, c.Player.RightBoundary))
	}
	if c.Player.MaxLives <= 0 {
		errs = append(errs, errors.New("player.maxLives must be positive"))
	}
	for i, layer := range c.Arena.Background {
		if _, err := layer.RGBA(); err != nil {
			errs = append(errs, fmt.Errorf("arena.background[%d]: %w", i, err))
		}
	}
	if c.Crystal.DropY > c.Arena.GroundY {
		errs = append(errs, fmt.Errorf("crystal.dropY %d is below the ground at %d",
			c.Crystal.DropY, c.Arena.GroundY))
	}
	if c.Audio.SampleRate <= 0 {
		errs = append(errs, errors.New("audio.sampleRate must be positive"))
	}

	return errors.Join(errs...)
}
