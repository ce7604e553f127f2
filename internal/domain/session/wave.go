package session

// WaveAdvanced describes a freshly armed wave: how many enemies the spawner must create
type WaveAdvanced struct {
	Wave    int
	Enemies int
}

// WaveTracker counts live enemies and decides when the next wave starts.
// Wave n spawns n enemies, except the first wave which spawns the
// configured initial count.
type WaveTracker struct {
	initialCount int
	wave         int
	live         int

	// OnAdvance is called every time a wave is armed
	OnAdvance func(WaveAdvanced)
}

// NewWaveTracker creates a tracker whose first wave spawns initialCount enemies
func NewWaveTracker(initialCount int) *WaveTracker {
	if initialCount < 0 {
		initialCount = 0
	}
	return &WaveTracker{
		initialCount: initialCount,
		wave:         1,
	}
}

// StartFirstWave arms wave 1 with initialCount enemies
func (t *WaveTracker) StartFirstWave(initialCount int) {
	if initialCount < 0 {
		initialCount = 0
	}
	t.initialCount = initialCount
	t.arm(1, initialCount)
}

// NotifyEnemyKilled records one enemy death and reports whether a new wave was armed.
// A notification with no live enemies is absorbed.
func (t *WaveTracker) NotifyEnemyKilled() bool {
	if t.live == 0 {
		return false
	}

	t.live--
	if t.live > 0 {
		return false
	}

	t.arm(t.wave+1, t.wave+1)
	return true
}

// Reset returns to wave 1 with the initial spawn count
func (t *WaveTracker) Reset() {
	t.arm(1, t.initialCount)
}

// Suspend drops all live enemies without advancing the wave
func (t *WaveTracker) Suspend() {
	t.live = 0
}

// Wave returns the current wave number
func (t *WaveTracker) Wave() int {
	return t.wave
}

// LiveEnemies returns the number of enemies still alive in the current wave
func (t *WaveTracker) LiveEnemies() int {
	return t.live
}

// InitialCount returns the size of the first wave
func (t *WaveTracker) InitialCount() int {
	return t.initialCount
}

// arm sets up a wave and announces it. Empty waves are skipped so the
// tracker never stalls waiting for a kill that cannot happen.
func (t *WaveTracker) arm(wave, enemies int) {
	for {
		t.wave = wave
		t.live = enemies
		if t.OnAdvance != nil {
			t.OnAdvance(WaveAdvanced{Wave: wave, Enemies: enemies})
		}
		if enemies > 0 {
			return
		}
		wave++
		enemies = wave
	}
}
