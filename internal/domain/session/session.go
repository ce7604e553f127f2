// Package session implements the match state machine: countdown clock,
// wave accounting, crystal economy, and the deferred actions between them.
//
// The Controller is driven by one Tick per frame and never reads input or
// wall-clock time itself. Everything it wants the outside world to do
// (spawn enemies, drop a crystal, wipe the arena, refresh the HUD) is
// announced through its On* hooks.
package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultSpecialAttackCooldown is the tick time between a special attack and the wave restart
const DefaultSpecialAttackCooldown = 3.0

// Bounds is the horizontal range a crystal may be dropped in
type Bounds struct {
	Left, Right float64
}

// Config holds the tuning of a match
type Config struct {
	StartMinutes          float64
	InitialSpawnCount     int
	KillsPerCrystal       int
	SpecialAttackCost     int
	SpecialAttackCooldown float64 // seconds of tick time
	CrystalBounds         Bounds
}

// DefaultConfig returns the reference tuning: a 5 minute match starting with one enemy
func DefaultConfig() Config {
	return Config{
		StartMinutes:          5,
		InitialSpawnCount:     1,
		KillsPerCrystal:       DefaultKillsPerCrystal,
		SpecialAttackCost:     DefaultSpecialAttackCost,
		SpecialAttackCooldown: DefaultSpecialAttackCooldown,
	}
}

// Display is the snapshot shown by the HUD
type Display struct {
	Remaining time.Duration
	Kills     int
	Crystals  int
	Wave      int
}

// TimerText formats the remaining time as "Time Left: MM:SS"
func (d Display) TimerText() string {
	total := int(d.Remaining / time.Second)
	return fmt.Sprintf("Time Left: %02d:%02d", total/60, total%60)
}

// KillText formats the kill counter
func (d Display) KillText() string {
	return fmt.Sprintf("Enemies Killed: %d", d.Kills)
}

// CrystalText formats the crystal counter
func (d Display) CrystalText() string {
	return fmt.Sprintf("Crystals: %d", d.Crystals)
}

// Controller owns one match: its clock, wave tracker, economy and scheduler.
// It is not safe for concurrent use; all calls come from the frame loop.
type Controller struct {
	cfg   Config
	log   *zap.Logger
	id    string
	phase Phase

	clock     *Clock
	waves     *WaveTracker
	economy   *Economy
	scheduler *Scheduler

	// wave restart pending after a special attack, 0 when none
	restart TaskID

	// Event hooks
	OnTimeExpired   func()
	OnWaveAdvanced  func(WaveAdvanced)
	OnCrystalEarned func(Bounds)
	OnSpecialAttack func()
	OnDisplay       func(Display)
	OnEnded         func(EndReason)
}

// New creates an idle match. A nil logger disables logging.
func New(cfg Config, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.SpecialAttackCooldown < 0 {
		cfg.SpecialAttackCooldown = 0
	}
	c := &Controller{cfg: cfg, log: log}
	c.build()
	return c
}

// build creates fresh sub-components and wires their events
func (c *Controller) build() {
	c.id = uuid.NewString()
	c.phase = PhaseIdle
	c.clock = NewClock(c.startSeconds())
	c.waves = NewWaveTracker(c.cfg.InitialSpawnCount)
	c.economy = NewEconomy(c.cfg.KillsPerCrystal, c.cfg.SpecialAttackCost)
	c.scheduler = NewScheduler()
	c.restart = 0

	c.waves.OnAdvance = func(ev WaveAdvanced) {
		c.log.Debug("wave armed",
			zap.String("match", c.id),
			zap.Int("wave", ev.Wave),
			zap.Int("enemies", ev.Enemies))
		if c.OnWaveAdvanced != nil {
			c.OnWaveAdvanced(ev)
		}
	}
	c.economy.OnCrystalEarned = func(kills int) {
		c.log.Debug("crystal earned",
			zap.String("match", c.id),
			zap.Int("kills", kills))
		if c.OnCrystalEarned != nil {
			c.OnCrystalEarned(c.cfg.CrystalBounds)
		}
	}
	c.economy.OnSpecialAttack = func() {
		c.log.Info("special attack triggered",
			zap.String("match", c.id),
			zap.Int("crystals", c.economy.Crystals()))
		if c.OnSpecialAttack != nil {
			c.OnSpecialAttack()
		}
	}
}

func (c *Controller) startSeconds() float64 {
	return c.cfg.StartMinutes * 60
}

// Start begins the match: the clock starts and the first wave is armed
func (c *Controller) Start() error {
	if c.phase != PhaseIdle {
		return c.reject("start")
	}
	c.setPhase(PhaseRunning)
	c.clock.Start(c.startSeconds())
	c.waves.StartFirstWave(c.cfg.InitialSpawnCount)
	c.emitDisplay()
	return nil
}

// Pause freezes the clock and every deferred action
func (c *Controller) Pause() error {
	if c.phase != PhaseRunning {
		return c.reject("pause")
	}
	c.clock.Pause()
	c.setPhase(PhasePaused)
	return nil
}

// Resume continues a paused match
func (c *Controller) Resume() error {
	if c.phase != PhasePaused {
		return c.reject("resume")
	}
	c.clock.Resume()
	c.setPhase(PhaseRunning)
	return nil
}

// TogglePause pauses a running match or resumes a paused one
func (c *Controller) TogglePause() error {
	if c.phase == PhasePaused {
		return c.Resume()
	}
	return c.Pause()
}

// Tick advances the match by dt seconds
func (c *Controller) Tick(dt float64) error {
	if dt < 0 {
		return ErrNegativeDelta
	}
	if c.phase != PhaseRunning {
		return c.reject("tick")
	}

	expired, err := c.clock.Advance(dt)
	if err != nil {
		return err
	}
	if expired {
		c.emitDisplay()
		if c.OnTimeExpired != nil {
			c.OnTimeExpired()
		}
		c.end(EndTimeExpired)
		return nil
	}

	if err := c.scheduler.Advance(dt); err != nil {
		return err
	}
	if c.phase == PhaseRunning {
		c.emitDisplay()
	}
	return nil
}

// OnEnemyKilled records one enemy death: wave accounting first, then the kill count
func (c *Controller) OnEnemyKilled() error {
	if c.phase != PhaseRunning {
		return c.reject("enemy killed")
	}
	c.waves.NotifyEnemyKilled()
	c.economy.RegisterKill()
	c.emitDisplay()
	return nil
}

// OnCrystalCollected adds a picked-up crystal to the purse
func (c *Controller) OnCrystalCollected() error {
	if c.phase != PhaseRunning {
		return c.reject("crystal collected")
	}
	c.economy.CollectCrystal()
	c.emitDisplay()
	return nil
}

// RequestSpecialAttack spends crystals on the special attack.
// It returns false when not enough crystals are held.
// On success the live wave is dropped and wave 1 is re-armed after the cooldown.
// A second special attack during the cooldown restarts it.
func (c *Controller) RequestSpecialAttack() (bool, error) {
	if c.phase != PhaseRunning {
		return false, c.reject("special attack")
	}
	if !c.economy.TrySpecialAttack() {
		return false, nil
	}

	c.waves.Suspend()
	if c.restart != 0 {
		c.scheduler.Cancel(c.restart)
	}
	c.restart = c.scheduler.After(c.cfg.SpecialAttackCooldown, func() {
		c.restart = 0
		c.log.Debug("restarting waves after special attack", zap.String("match", c.id))
		c.waves.Reset()
	})
	c.emitDisplay()
	return true, nil
}

// After schedules fn to run after delay seconds of running tick time.
// Pending actions are dropped when the match ends.
func (c *Controller) After(delay float64, fn func()) (TaskID, error) {
	if c.phase != PhaseRunning && c.phase != PhasePaused {
		return 0, c.reject("schedule")
	}
	return c.scheduler.After(delay, fn), nil
}

// Cancel discards an action scheduled with After
func (c *Controller) Cancel(id TaskID) bool {
	return c.scheduler.Cancel(id)
}

// End finishes the match early. Ending an ended match does nothing.
func (c *Controller) End(reason EndReason) error {
	switch c.phase {
	case PhaseEnded:
		return nil
	case PhaseIdle:
		return c.reject("end")
	}
	c.clock.Pause()
	c.end(reason)
	return nil
}

// Reset discards the match and returns to Idle with fresh state and a new match id
func (c *Controller) Reset() {
	c.scheduler.Clear()
	c.build()
	c.log.Debug("session reset", zap.String("match", c.id))
}

func (c *Controller) end(reason EndReason) {
	if c.phase == PhaseEnded {
		return
	}
	c.scheduler.Clear()
	c.restart = 0
	c.setPhase(PhaseEnded)
	c.log.Info("match over",
		zap.String("match", c.id),
		zap.Stringer("reason", reason),
		zap.Int("kills", c.economy.Kills()),
		zap.Int("wave", c.waves.Wave()))
	if c.OnEnded != nil {
		c.OnEnded(reason)
	}
}

func (c *Controller) setPhase(p Phase) {
	c.log.Debug("phase change",
		zap.String("match", c.id),
		zap.Stringer("from", c.phase),
		zap.Stringer("to", p))
	c.phase = p
}

func (c *Controller) reject(action string) error {
	c.log.Debug("action rejected",
		zap.String("match", c.id),
		zap.String("action", action),
		zap.Stringer("phase", c.phase))
	return fmt.Errorf("%s while %s: %w", action, c.phase, ErrInvalidPhase)
}

func (c *Controller) emitDisplay() {
	if c.OnDisplay != nil {
		c.OnDisplay(c.Display())
	}
}

// Display returns the current HUD snapshot
func (c *Controller) Display() Display {
	return Display{
		Remaining: c.clock.Remaining(),
		Kills:     c.economy.Kills(),
		Crystals:  c.economy.Crystals(),
		Wave:      c.waves.Wave(),
	}
}

// Phase returns the current phase
func (c *Controller) Phase() Phase {
	return c.phase
}

// ID returns the match id
func (c *Controller) ID() string {
	return c.id
}

// Config returns the match tuning
func (c *Controller) Config() Config {
	return c.cfg
}

// Clock returns the match clock
func (c *Controller) Clock() *Clock {
	return c.clock
}

// Waves returns the wave tracker
func (c *Controller) Waves() *WaveTracker {
	return c.waves
}

// Economy returns the kill and crystal economy
func (c *Controller) Economy() *Economy {
	return c.economy
}

// Scheduler returns the deferred action scheduler
func (c *Controller) Scheduler() *Scheduler {
	return c.scheduler
}
