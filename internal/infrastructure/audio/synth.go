package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/younwookim/crystalblade/internal/infrastructure/config"
)

// bytesPerFrame is one 16-bit little-endian stereo sample
const bytesPerFrame = 4

// amplitude leaves headroom; loudness is set per player with SetVolume
const amplitude = 0.8 * math.MaxInt16

// SynthTrack renders one loop of a note sequence as 16-bit stereo PCM
func SynthTrack(tc config.TrackConfig, sampleRate int) ([]byte, error) {
	if sampleRate <= 0 {
		return nil, errors.New("sample rate must be positive")
	}
	if len(tc.Notes) == 0 {
		return nil, errors.New("track has no notes")
	}
	if tc.NoteDuration <= 0 {
		return nil, errors.New("note duration must be positive")
	}
	wave, err := waveform(tc.Wave)
	if err != nil {
		return nil, err
	}

	perNote := int(tc.NoteDuration * float64(sampleRate))
	buf := make([]byte, 0, perNote*len(tc.Notes)*bytesPerFrame)
	for _, freq := range tc.Notes {
		for i := 0; i < perNote; i++ {
			v := 0.0
			if freq > 0 {
				t := float64(i) / float64(sampleRate)
				// short release at the end of each note to avoid clicks
				env := math.Min(1, float64(perNote-i)/float64(sampleRate/200+1))
				v = wave(freq*t) * env
			}
			buf = appendFrame(buf, v)
		}
	}
	return buf, nil
}

// SynthEffect renders a frequency sweep as 16-bit stereo PCM.
// One-shot effects fade out; looping ones keep a flat envelope.
func SynthEffect(ec config.EffectConfig, sampleRate int) ([]byte, error) {
	if sampleRate <= 0 {
		return nil, errors.New("sample rate must be positive")
	}
	if ec.Duration <= 0 {
		return nil, errors.New("effect duration must be positive")
	}

	n := int(ec.Duration * float64(sampleRate))
	buf := make([]byte, 0, n*bytesPerFrame)
	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := ec.StartFreq + (ec.EndFreq-ec.StartFreq)*progress
		phase += freq / float64(sampleRate)

		env := 1.0
		if !ec.Loop {
			env = 1 - progress
		}
		buf = appendFrame(buf, square(phase)*env)
	}
	return buf, nil
}

// waveform maps a config name to a function of phase in cycles
func waveform(name string) (func(float64) float64, error) {
	switch name {
	case "", "square":
		return square, nil
	case "sine":
		return func(p float64) float64 { return math.Sin(2 * math.Pi * p) }, nil
	default:
		return nil, fmt.Errorf("unknown waveform %q", name)
	}
}

func square(p float64) float64 {
	if math.Mod(p, 1) < 0.5 {
		return 1
	}
	return -1
}

func appendFrame(buf []byte, v float64) []byte {
	s := uint16(int16(v * amplitude))
	buf = binary.LittleEndian.AppendUint16(buf, s)
	return binary.LittleEndian.AppendUint16(buf, s)
}
