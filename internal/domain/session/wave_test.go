package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// recordWaves attaches a recorder to the tracker's advance hook
func recordWaves(t *WaveTracker) *[]WaveAdvanced {
	events := &[]WaveAdvanced{}
	t.OnAdvance = func(ev WaveAdvanced) {
		*events = append(*events, ev)
	}
	return events
}

func TestWaveTracker_StartFirstWave(t *testing.T) {
	tr := NewWaveTracker(3)
	events := recordWaves(tr)

	tr.StartFirstWave(3)

	assert.Equal(t, 1, tr.Wave())
	assert.Equal(t, 3, tr.LiveEnemies())
	assert.Equal(t, []WaveAdvanced{{Wave: 1, Enemies: 3}}, *events)
}

func TestWaveTracker_ScenarioB(t *testing.T) {
	tr := NewWaveTracker(1)
	tr.StartFirstWave(1)
	events := recordWaves(tr)

	assert.True(t, tr.NotifyEnemyKilled())
	assert.Equal(t, []WaveAdvanced{{Wave: 2, Enemies: 2}}, *events)

	assert.False(t, tr.NotifyEnemyKilled())
	assert.True(t, tr.NotifyEnemyKilled())
	assert.Equal(t, []WaveAdvanced{{Wave: 2, Enemies: 2}, {Wave: 3, Enemies: 3}}, *events)
}

func TestWaveTracker_KillingWholeWaveAdvancesOnce(t *testing.T) {
	tr := NewWaveTracker(1)
	tr.StartFirstWave(1)
	tr.NotifyEnemyKilled() // now wave 2

	for wave := 2; wave <= 6; wave++ {
		events := recordWaves(tr)
		for i := 0; i < wave; i++ {
			tr.NotifyEnemyKilled()
		}
		if assert.Len(t, *events, 1, "wave %d", wave) {
			assert.Equal(t, WaveAdvanced{Wave: wave + 1, Enemies: wave + 1}, (*events)[0])
		}
	}
}

func TestWaveTracker_KillWithNoLiveEnemiesIsNoop(t *testing.T) {
	tr := NewWaveTracker(2)
	tr.StartFirstWave(2)
	tr.Suspend()
	events := recordWaves(tr)

	assert.False(t, tr.NotifyEnemyKilled())
	assert.Equal(t, 1, tr.Wave())
	assert.Equal(t, 0, tr.LiveEnemies())
	assert.Empty(t, *events)
}

func TestWaveTracker_Reset(t *testing.T) {
	tr := NewWaveTracker(4)
	tr.StartFirstWave(4)
	for i := 0; i < 4; i++ {
		tr.NotifyEnemyKilled()
	}
	assert.Equal(t, 2, tr.Wave())

	events := recordWaves(tr)
	tr.Reset()

	assert.Equal(t, 1, tr.Wave())
	assert.Equal(t, 4, tr.LiveEnemies())
	assert.Equal(t, []WaveAdvanced{{Wave: 1, Enemies: 4}}, *events)
}

func TestWaveTracker_EmptyFirstWaveAdvancesImmediately(t *testing.T) {
	tr := NewWaveTracker(0)
	events := recordWaves(tr)

	tr.StartFirstWave(0)

	assert.Equal(t, 2, tr.Wave())
	assert.Equal(t, 2, tr.LiveEnemies())
	assert.Equal(t, []WaveAdvanced{{Wave: 1, Enemies: 0}, {Wave: 2, Enemies: 2}}, *events)
}
