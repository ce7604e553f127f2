package audio

import (
	"go.uber.org/zap"

	"github.com/younwookim/crystalblade/internal/infrastructure/logger"
)

// Effect names
const (
	EffectJump  = "jump"
	EffectSwing = "swing"
	EffectRun   = "run"
)

// Effects plays short sounds and the looping footsteps
type Effects struct {
	players map[string]Player
}

// NewEffects creates an effect set over named players
func NewEffects(players map[string]Player) *Effects {
	if players == nil {
		players = make(map[string]Player)
	}
	return &Effects{players: players}
}

// Play restarts a one-shot effect. Unknown names are ignored.
func (e *Effects) Play(name string) {
	p, ok := e.players[name]
	if !ok {
		logger.Log.Debug("effect not loaded", zap.String("effect", name))
		return
	}
	if err := p.Rewind(); err != nil {
		logger.Log.Warn("rewind failed", zap.String("effect", name), zap.Error(err))
		return
	}
	p.Play()
}

// SetRunning starts the footsteps loop while the player runs and stops it otherwise
func (e *Effects) SetRunning(running bool) {
	p, ok := e.players[EffectRun]
	if !ok {
		return
	}
	switch {
	case running && !p.IsPlaying():
		p.Play()
	case !running && p.IsPlaying():
		p.Pause()
		_ = p.Rewind()
	}
}

// StopAll silences every effect
func (e *Effects) StopAll() {
	for _, p := range e.players {
		if p.IsPlaying() {
			p.Pause()
		}
	}
}
