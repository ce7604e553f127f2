package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/crystalblade/internal/application/replay"
	"github.com/younwookim/crystalblade/internal/application/scene/playing"
	"github.com/younwookim/crystalblade/internal/application/system"
	"github.com/younwookim/crystalblade/internal/domain/session"
	"github.com/younwookim/crystalblade/internal/infrastructure/config"
)

func loadTestConfig(t *testing.T) *config.GameConfig {
	t.Helper()
	cfg, err := loadConfig()
	require.NoError(t, err)
	return cfg
}

// scriptedInputs walks right and left, swinging and jumping now and then
func scriptedInputs(frames int) []system.InputState {
	inputs := make([]system.InputState, frames)
	for i := range inputs {
		in := system.InputState{}
		switch (i / 45) % 4 {
		case 0:
			in.Right = true
		case 2:
			in.Left = true
		}
		in.AttackPressed = i%20 == 0
		in.JumpPressed = i%70 == 0
		inputs[i] = in
	}
	return inputs
}

func TestEmbeddedConfigLoads(t *testing.T) {
	cfg := loadTestConfig(t)

	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 5.0, cfg.Session.StartMinutes)
	assert.Equal(t, 1, cfg.Session.InitialSpawnCount)
}

func TestReplayIdlePlayer(t *testing.T) {
	cfg := loadTestConfig(t)

	res := runReplay(cfg, replay.CreateTestReplayData(90))

	assert.Equal(t, 90, res.Frames)
	assert.Equal(t, session.PhaseRunning, res.Phase)
	assert.Equal(t, "Time Left: 04:58", res.Display.TimerText())
	assert.Equal(t, 1, res.Display.Wave)
	assert.Equal(t, cfg.Player.MaxLives, res.Lives)
	assert.False(t, res.LeftArena)
}

func TestReplayDeterminism(t *testing.T) {
	cfg := loadTestConfig(t)
	rec := replay.NewRecorder(4242, "det")
	for _, in := range scriptedInputs(900) {
		rec.RecordFrame(in)
	}

	first := runReplay(cfg, rec.GetData())
	second := runReplay(cfg, rec.GetData())

	assert.Equal(t, first, second)
}

func TestReplayMatchesLivePlay(t *testing.T) {
	cfg := loadTestConfig(t)
	const seed = 7

	live := playing.New(cfg, seed, nil, "")
	rec := replay.NewRecorder(seed, live.Session().ID())
	for _, in := range scriptedInputs(600) {
		rec.RecordFrame(in)
		live.Step(in)
	}

	res := runReplay(cfg, rec.GetData())

	assert.Equal(t, live.HUD(), res.Display)
	assert.Equal(t, live.Lives(), res.Lives)
	assert.Equal(t, live.Session().Phase(), res.Phase)
}

func TestReplayStopsWhenLeavingArena(t *testing.T) {
	cfg := loadTestConfig(t)
	cfg.Session.StartMinutes = 0.01 // 0.6 seconds

	data := replay.CreateTestReplayData(100)
	data.Frames[60].BK = true

	res := runReplay(cfg, data)

	assert.True(t, res.LeftArena)
	assert.Equal(t, 61, res.Frames)
	assert.Equal(t, session.PhaseEnded, res.Phase)
}

func TestReplayMain(t *testing.T) {
	cfg := loadTestConfig(t)
	path := filepath.Join(t.TempDir(), "match.json")
	rec := replay.NewRecorder(1, "main-test")
	for _, in := range scriptedInputs(30) {
		rec.RecordFrame(in)
	}
	require.NoError(t, rec.Save(path))

	var out bytes.Buffer
	require.NoError(t, replayMain(cfg, path, &out))

	assert.Contains(t, out.String(), "match:    main-test")
	assert.Contains(t, out.String(), "frames:   30")
	assert.Contains(t, out.String(), "Time Left: 04:59")
}

func TestReplayMain_MissingFile(t *testing.T) {
	cfg := loadTestConfig(t)

	err := replayMain(cfg, filepath.Join(t.TempDir(), "nope.json"), &bytes.Buffer{})

	assert.ErrorContains(t, err, "failed to open")
}
