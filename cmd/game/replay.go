package main

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/younwookim/crystalblade/internal/application/replay"
	"github.com/younwookim/crystalblade/internal/application/scene/playing"
	"github.com/younwookim/crystalblade/internal/domain/session"
	"github.com/younwookim/crystalblade/internal/infrastructure/config"
	"github.com/younwookim/crystalblade/internal/infrastructure/logger"
)

// ReplayResult summarises a match played back without a window
type ReplayResult struct {
	MatchID string
	Frames  int
	Phase   session.Phase
	Display session.Display
	Lives   int

	// LeftArena is set when the recording ends by going back to the title
	LeftArena bool
}

// runReplay feeds every recorded frame to a fresh arena built with the recorded seed
func runReplay(cfg *config.GameConfig, data replay.ReplayData) ReplayResult {
	p := playing.New(cfg, data.Seed, nil, "")
	replayer := replay.NewReplayer(data)
	result := ReplayResult{MatchID: data.MatchID}

	for {
		input, ok := replayer.GetInput()
		if !ok {
			break
		}
		if p.Step(input) {
			result.LeftArena = true
			break
		}
	}

	result.Frames = replayer.CurrentFrame()
	result.Phase = p.Session().Phase()
	result.Display = p.HUD()
	result.Lives = p.Lives()
	return result
}

// replayMain loads a recording, plays it and writes the final stats to out
func replayMain(cfg *config.GameConfig, path string, out io.Writer) error {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	logger.Log.Info("replaying",
		zap.String("path", path),
		zap.String("match", data.MatchID),
		zap.Int64("seed", data.Seed),
		zap.Int("frames", len(data.Frames)))

	res := runReplay(cfg, *data)

	_, err = fmt.Fprintf(out, "match:    %s\nframes:   %d\nphase:    %s\n%s\n%s\n%s\nwave:     %d\nlives:    %d\n",
		res.MatchID, res.Frames, res.Phase,
		res.Display.TimerText(), res.Display.KillText(), res.Display.CrystalText(),
		res.Display.Wave, res.Lives)
	return err
}
