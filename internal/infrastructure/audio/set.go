package audio

import (
	"go.uber.org/zap"

	"github.com/younwookim/crystalblade/internal/infrastructure/logger"
)

// Set bundles what the scenes play: music with its menu switch, and effects
type Set struct {
	Music   *Jukebox
	Effects *Effects

	menuTrack string
	trigger   *SwitchOnce
}

// NewSet creates a set. The menu track plays while the title is shown
// until the first match starts, then battleTrack takes over for good.
func NewSet(tracks, effects map[string]Player, menuTrack, battleTrack string) *Set {
	return &Set{
		Music:     NewJukebox(tracks),
		Effects:   NewEffects(effects),
		menuTrack: menuTrack,
		trigger:   &SwitchOnce{Track: battleTrack},
	}
}

// Silent returns a set with nothing loaded, for headless runs and tests
func Silent() *Set {
	return NewSet(nil, nil, "", "")
}

// EnterMenu starts the menu track unless the battle music already took over
func (s *Set) EnterMenu() {
	if s.menuTrack == "" || s.trigger.Switched() || s.Music.Current() == s.menuTrack {
		return
	}
	if err := s.Music.ChangeBGM(s.menuTrack); err != nil {
		logger.Log.Warn("menu music unavailable", zap.Error(err))
	}
}

// Update feeds the menu visibility to the one-time music switch
func (s *Set) Update(menuVisible bool) {
	if err := s.trigger.Update(s.Music, menuVisible); err != nil {
		logger.Log.Warn("battle music unavailable", zap.Error(err))
		// don't retry every frame
		s.trigger.switched = true
	}
}
