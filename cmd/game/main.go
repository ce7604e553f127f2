package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"

	"github.com/younwookim/crystalblade/internal/application/game"
	"github.com/younwookim/crystalblade/internal/application/scene"
	"github.com/younwookim/crystalblade/internal/application/scene/playing"
	"github.com/younwookim/crystalblade/internal/application/scene/title"
	"github.com/younwookim/crystalblade/internal/infrastructure/audio"
	"github.com/younwookim/crystalblade/internal/infrastructure/config"
	"github.com/younwookim/crystalblade/internal/infrastructure/logger"
)

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Run a recorded match headlessly and print the result")
	debugFlag := flag.Bool("debug", false, "Enable debug logging")
	seedFlag := flag.Int64("seed", 0, "Spawn seed (0 = time based)")
	flag.Parse()

	if err := logger.Init(*debugFlag); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := loadConfig()
	if err != nil {
		logger.Log.Fatal("failed to load config", zap.Error(err))
	}

	if *replayFlag != "" {
		if err := replayMain(cfg, *replayFlag, os.Stdout); err != nil {
			logger.Log.Fatal("replay failed", zap.Error(err))
		}
		return
	}

	sounds := loadAudio(cfg)
	d := cfg.Display

	var newTitle func() scene.Scene
	newMatch := func() scene.Scene {
		seed := *seedFlag
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		p := playing.New(cfg, seed, sounds, *recordFlag)
		p.Back = newTitle
		return p
	}
	newTitle = func() scene.Scene {
		t := title.New(d.ScreenWidth, d.ScreenHeight, sounds)
		t.Start = newMatch
		return t
	}

	g := game.New(newTitle(), d.ScreenWidth, d.ScreenHeight)
	g.SetDT(1.0 / float64(d.Framerate))

	// Set up ebiten
	ebiten.SetWindowSize(d.ScreenWidth*d.Scale, d.ScreenHeight*d.Scale)
	ebiten.SetWindowTitle("Crystal Blade")
	ebiten.SetTPS(d.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		logger.Log.Fatal("game loop stopped", zap.Error(err))
	}
}

// loadConfig reads game.json from the embedded configs directory
func loadConfig() (*config.GameConfig, error) {
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs").LoadGame()
}

// loadAudio synthesises the soundtrack. The game still runs silently if that fails.
func loadAudio(cfg *config.GameConfig) *audio.Set {
	ctx := ebitenaudio.NewContext(cfg.Audio.SampleRate)
	sounds, err := audio.Load(ctx, cfg.Audio)
	if err != nil {
		logger.Log.Warn("audio disabled", zap.Error(err))
		return audio.Silent()
	}
	return sounds
}
