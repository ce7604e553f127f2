// Package playing provides the main gameplay scene.
package playing

import (
	"go.uber.org/zap"

	"github.com/younwookim/crystalblade/internal/application/replay"
	"github.com/younwookim/crystalblade/internal/application/scene"
	"github.com/younwookim/crystalblade/internal/application/system"
	"github.com/younwookim/crystalblade/internal/domain/session"
	"github.com/younwookim/crystalblade/internal/ecs"
	"github.com/younwookim/crystalblade/internal/infrastructure/audio"
	"github.com/younwookim/crystalblade/internal/infrastructure/config"
	"github.com/younwookim/crystalblade/internal/infrastructure/logger"
)

// Playing is the main gameplay scene.
// The session controller owns the rules; this scene moves bodies around
// and reports kills, pickups and hits back to it.
type Playing struct {
	config      *config.GameConfig
	physics     ecs.Config
	session     *session.Controller
	world       *ecs.World
	spawner     *system.Spawner
	inputSystem *system.InputSystem
	sounds      *audio.Set
	screenW     int
	screenH     int
	dt          float64
	stunTime    float64

	// HUD state, refreshed by the session
	hud       session.Display
	endReason session.EndReason

	seed int64

	// Input recording
	recorder       *replay.Recorder
	recordFilename string

	// Back builds the scene to return to after a finished match
	Back func() scene.Scene
}

// New creates a Playing scene and starts the first match.
// A nil sounds plays nothing. If recordPath is not empty, gameplay will be recorded.
func New(cfg *config.GameConfig, seed int64, sounds *audio.Set, recordPath string) *Playing {
	if sounds == nil {
		sounds = audio.Silent()
	}

	p := &Playing{
		config:         cfg,
		physics:        physicsConfig(cfg),
		spawner:        system.NewSpawner(seed, spawnConfig(cfg)),
		inputSystem:    system.NewInputSystem(),
		sounds:         sounds,
		screenW:        cfg.Display.ScreenWidth,
		screenH:        cfg.Display.ScreenHeight,
		dt:             1.0 / float64(cfg.Display.Framerate),
		stunTime:       cfg.Player.Knockback.StunDuration,
		seed:           seed,
		recordFilename: recordPath,
	}
	p.session = session.New(sessionConfig(cfg), logger.Log.Named("session"))
	p.wireSession()

	if recordPath != "" {
		p.recorder = replay.NewRecorder(seed, p.session.ID())
		logger.Log.Info("recording enabled",
			zap.String("path", recordPath),
			zap.Int64("seed", seed))
	}

	p.begin()
	return p
}

// wireSession connects session events to the arena. Hooks survive Reset.
func (p *Playing) wireSession() {
	s := p.session
	s.OnWaveAdvanced = func(ev session.WaveAdvanced) {
		p.spawner.SpawnWave(p.world, ev.Enemies)
	}
	s.OnCrystalEarned = func(b session.Bounds) {
		p.spawner.SpawnCrystal(p.world, b)
	}
	s.OnSpecialAttack = func() {
		cleared := p.world.ClearEnemies()
		logger.Log.Info("special attack", zap.Int("cleared", cleared))
	}
	s.OnDisplay = func(d session.Display) {
		p.hud = d
	}
	s.OnTimeExpired = func() {
		logger.Log.Info("time expired", zap.Int("kills", p.hud.Kills))
	}
	s.OnEnded = func(reason session.EndReason) {
		p.endReason = reason
		p.sounds.Effects.StopAll()
		p.saveRecording()
	}
}

// begin builds a fresh arena and starts the match
func (p *Playing) begin() {
	p.world = buildWorld(p.config)
	p.report("start", p.session.Start())
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	input := p.inputSystem.GetInput()

	// Record input if recording is enabled
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	if p.Step(input) && p.Back != nil {
		return p.Back(), nil
	}
	return nil, nil // nil = stay on this scene
}

// Step advances one frame with the given input.
// It reports true when the player asked to leave a finished match.
func (p *Playing) Step(input system.InputState) (back bool) {
	switch p.session.Phase() {
	case session.PhaseRunning:
		if input.PausePressed {
			p.togglePause()
			return false
		}
		p.sounds.Update(false)
		p.simulate(input)
	case session.PhasePaused:
		if input.PausePressed {
			p.togglePause()
		}
	case session.PhaseEnded:
		if input.RetryPressed {
			p.restart()
		} else if input.BackPressed {
			return true
		}
	}
	return false
}

func (p *Playing) simulate(input system.InputState) {
	w := p.world
	in := input.ToECS()

	ecs.UpdateTimers(w)
	actions := ecs.UpdatePlayerInput(w, in, p.physics)
	if actions.Jumped {
		p.sounds.Effects.Play(audio.EffectJump)
	}
	p.sounds.Effects.SetRunning(actions.Running)

	ecs.ApplyPhysics(w, p.physics)
	ecs.UpdateChasers(w)

	if swung, hits := ecs.UpdateAttack(w, in.AttackPressed, p.physics); swung {
		p.sounds.Effects.Play(audio.EffectSwing)
		for range hits {
			p.report("enemy killed", p.session.OnEnemyKilled())
		}
	}

	if input.SpecialPressed {
		ok, err := p.session.RequestSpecialAttack()
		p.report("special attack", err)
		if err == nil && !ok {
			logger.Log.Debug("not enough crystals for special attack",
				zap.Int("crystals", p.hud.Crystals))
		}
	}

	for n := ecs.CollectCrystals(w); n > 0; n-- {
		p.report("crystal collected", p.session.OnCrystalCollected())
	}

	if hit, lives := ecs.CheckEnemyContact(w, p.physics); hit {
		p.playerHit(lives)
	}
	if p.session.Phase() != session.PhaseRunning {
		return
	}

	ecs.ScrollBackground(w)
	p.report("tick", p.session.Tick(p.dt))
}

// playerHit ends the match on the last life, otherwise lifts the stun after the knockback
func (p *Playing) playerHit(lives int) {
	logger.Log.Info("player hit", zap.Int("lives", lives))
	if lives <= 0 {
		p.report("end", p.session.End(session.EndLivesDepleted))
		return
	}
	_, err := p.session.After(p.stunTime, func() {
		ecs.SetStunned(p.world, false)
	})
	p.report("schedule recovery", err)
}

func (p *Playing) togglePause() {
	p.report("toggle pause", p.session.TogglePause())
	if p.session.Phase() == session.PhasePaused {
		p.sounds.Effects.StopAll()
	}
}

func (p *Playing) restart() {
	p.session.Reset()
	p.begin()
	logger.Log.Info("match restarted", zap.String("match", p.session.ID()))
}

// report logs a rejected session call. None of them are fatal to the frame loop.
func (p *Playing) report(action string, err error) {
	if err != nil {
		logger.Log.Warn("session call failed", zap.String("action", action), zap.Error(err))
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		logger.Log.Warn("failed to save recording", zap.Error(err))
	} else {
		logger.Log.Info("recording saved",
			zap.String("path", filename),
			zap.Int("frames", p.recorder.FrameCount()))
	}
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	logger.Log.Info("entering arena",
		zap.String("match", p.session.ID()),
		zap.Int64("seed", p.seed))
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.sounds.Effects.StopAll()
	p.saveRecording()
}

// Session returns the match controller
func (p *Playing) Session() *session.Controller {
	return p.session
}

// World returns the arena
func (p *Playing) World() *ecs.World {
	return p.world
}

// Lives returns the player's remaining lives
func (p *Playing) Lives() int {
	return p.world.PlayerData[p.world.PlayerID].Lives
}

// HUD returns the last display snapshot
func (p *Playing) HUD() session.Display {
	return p.hud
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
