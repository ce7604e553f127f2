// Package audio plays background music and sound effects.
//
// Scenes talk to Jukebox, SwitchOnce and Effects, which only need the small
// Player interface. The ebiten backend in ebiten.go synthesises every sound
// at startup so the game ships without asset files.
package audio

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/younwookim/crystalblade/internal/infrastructure/logger"
)

// ErrUnknownTrack is returned when switching to a track that was never loaded
var ErrUnknownTrack = errors.New("unknown track")

// Player is a single playable sound. *audio.Player from ebiten satisfies it.
type Player interface {
	Play()
	Pause()
	Rewind() error
	IsPlaying() bool
	SetVolume(volume float64)
}

// Jukebox holds the background music tracks; at most one plays at a time
type Jukebox struct {
	tracks  map[string]Player
	current string
}

// NewJukebox creates a jukebox over named tracks
func NewJukebox(tracks map[string]Player) *Jukebox {
	if tracks == nil {
		tracks = make(map[string]Player)
	}
	return &Jukebox{tracks: tracks}
}

// ChangeBGM stops the current track and plays name from the start
func (j *Jukebox) ChangeBGM(name string) error {
	next, ok := j.tracks[name]
	if !ok {
		return fmt.Errorf("change bgm to %q: %w", name, ErrUnknownTrack)
	}

	j.Stop()
	if err := next.Rewind(); err != nil {
		return fmt.Errorf("rewind %q: %w", name, err)
	}
	next.Play()
	j.current = name

	logger.Log.Info("switching music", zap.String("track", name))
	return nil
}

// Stop halts the current track and rewinds it
func (j *Jukebox) Stop() {
	cur, ok := j.tracks[j.current]
	if !ok {
		return
	}
	cur.Pause()
	if err := cur.Rewind(); err != nil {
		logger.Log.Warn("rewind failed", zap.String("track", j.current), zap.Error(err))
	}
	j.current = ""
}

// Current returns the playing track name, or "" when silent
func (j *Jukebox) Current() string {
	return j.current
}
