package audio

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/crystalblade/internal/infrastructure/config"
)

func TestSynthTrack_Length(t *testing.T) {
	tc := config.TrackConfig{Notes: []float64{440, 0, 220}, NoteDuration: 0.1, Wave: "square"}

	pcm, err := SynthTrack(tc, 1000)

	require.NoError(t, err)
	assert.Len(t, pcm, 3*100*bytesPerFrame)
}

func TestSynthTrack_RestIsSilent(t *testing.T) {
	tc := config.TrackConfig{Notes: []float64{0}, NoteDuration: 0.01, Wave: "sine"}

	pcm, err := SynthTrack(tc, 8000)

	require.NoError(t, err)
	for _, b := range pcm {
		require.Zero(t, b)
	}
}

func TestSynthTrack_StereoChannelsMatch(t *testing.T) {
	tc := config.TrackConfig{Notes: []float64{330}, NoteDuration: 0.05}

	pcm, err := SynthTrack(tc, 8000)

	require.NoError(t, err)
	for i := 0; i < len(pcm); i += bytesPerFrame {
		l := binary.LittleEndian.Uint16(pcm[i:])
		r := binary.LittleEndian.Uint16(pcm[i+2:])
		require.Equal(t, l, r)
	}
}

func TestSynthTrack_Errors(t *testing.T) {
	tests := []struct {
		name string
		tc   config.TrackConfig
		rate int
	}{
		{"no notes", config.TrackConfig{NoteDuration: 0.1}, 44100},
		{"zero duration", config.TrackConfig{Notes: []float64{440}}, 44100},
		{"bad wave", config.TrackConfig{Notes: []float64{440}, NoteDuration: 0.1, Wave: "saw"}, 44100},
		{"bad rate", config.TrackConfig{Notes: []float64{440}, NoteDuration: 0.1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SynthTrack(tt.tc, tt.rate)
			assert.Error(t, err)
		})
	}
}

func TestSynthEffect_FadesOut(t *testing.T) {
	ec := config.EffectConfig{StartFreq: 300, EndFreq: 700, Duration: 0.1}

	pcm, err := SynthEffect(ec, 1000)

	require.NoError(t, err)
	require.Len(t, pcm, 100*bytesPerFrame)
	first := int16(binary.LittleEndian.Uint16(pcm[0:]))
	last := int16(binary.LittleEndian.Uint16(pcm[len(pcm)-bytesPerFrame:]))
	assert.Greater(t, abs16(first), abs16(last))
}

func TestSynthEffect_LoopKeepsLevel(t *testing.T) {
	ec := config.EffectConfig{StartFreq: 90, EndFreq: 70, Duration: 0.1, Loop: true}

	pcm, err := SynthEffect(ec, 1000)

	require.NoError(t, err)
	last := int16(binary.LittleEndian.Uint16(pcm[len(pcm)-bytesPerFrame:]))
	peak := amplitude
	assert.Equal(t, int16(peak), abs16(last))
}

func TestSynthEffect_Errors(t *testing.T) {
	_, err := SynthEffect(config.EffectConfig{StartFreq: 100}, 44100)
	assert.Error(t, err)

	_, err = SynthEffect(config.EffectConfig{Duration: 1}, 0)
	assert.Error(t, err)
}

func abs16(v int16) int16 {
	if v < 0 {
		return -v
	}
	return v
}
