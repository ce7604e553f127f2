package audio

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"

	"github.com/younwookim/crystalblade/internal/infrastructure/config"
	"github.com/younwookim/crystalblade/internal/infrastructure/logger"
)

// Load synthesises every configured track and effect and wraps them in ebiten players.
// Only one audio.Context may exist per process, so the caller owns it.
func Load(ctx *audio.Context, cfg config.AudioConfig) (*Set, error) {
	tracks := make(map[string]Player, len(cfg.Tracks))
	for name, tc := range cfg.Tracks {
		pcm, err := SynthTrack(tc, cfg.SampleRate)
		if err != nil {
			return nil, fmt.Errorf("track %s: %w", name, err)
		}
		p, err := loopPlayer(ctx, pcm)
		if err != nil {
			return nil, fmt.Errorf("track %s: %w", name, err)
		}
		p.SetVolume(tc.Volume)
		tracks[name] = p
	}

	effects := make(map[string]Player, len(cfg.Effects))
	for name, ec := range cfg.Effects {
		pcm, err := SynthEffect(ec, cfg.SampleRate)
		if err != nil {
			return nil, fmt.Errorf("effect %s: %w", name, err)
		}
		var p *audio.Player
		if ec.Loop {
			p, err = loopPlayer(ctx, pcm)
			if err != nil {
				return nil, fmt.Errorf("effect %s: %w", name, err)
			}
		} else {
			p = ctx.NewPlayerFromBytes(pcm)
		}
		p.SetVolume(ec.Volume)
		effects[name] = p
	}

	logger.Log.Info("audio loaded",
		zap.Int("sampleRate", cfg.SampleRate),
		zap.Int("tracks", len(tracks)),
		zap.Int("effects", len(effects)))

	return NewSet(tracks, effects, cfg.MenuTrack, cfg.BattleTrack), nil
}

func loopPlayer(ctx *audio.Context, pcm []byte) (*audio.Player, error) {
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	return ctx.NewPlayer(loop)
}
