package replay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/crystalblade/internal/application/system"
)

func TestReplayer_GetInput(t *testing.T) {
	data := ReplayData{
		Version: FormatVersion,
		Seed:    42,
		Frames: []FrameInput{
			{F: 0, L: true},
			{F: 1, R: true, JP: true, AT: true},
			{F: 2},
		},
	}

	replayer := NewReplayer(data)

	// Frame 0
	input, ok := replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Left)
	assert.False(t, input.Right)

	// Frame 1
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.False(t, input.Left)
	assert.True(t, input.Right)
	assert.True(t, input.JumpPressed)
	assert.True(t, input.AttackPressed)

	// Frame 2
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, system.InputState{}, input)

	// End of frames
	_, ok = replayer.GetInput()
	assert.False(t, ok)
}

func TestReplayer_CurrentFrame(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(5))

	assert.Equal(t, 0, replayer.CurrentFrame())

	replayer.GetInput()
	assert.Equal(t, 1, replayer.CurrentFrame())

	replayer.GetInput()
	replayer.GetInput()
	assert.Equal(t, 3, replayer.CurrentFrame())
}

func TestReplayer_TotalFrames(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(10))

	assert.Equal(t, 10, replayer.TotalFrames())
}

func TestReplayer_SeedAndMatch(t *testing.T) {
	id := uuid.NewString()
	replayer := NewReplayer(ReplayData{Seed: 99999, MatchID: id})

	assert.Equal(t, int64(99999), replayer.Seed())
	assert.Equal(t, id, replayer.MatchID())
}

func TestReplayer_Reset(t *testing.T) {
	data := CreateTestReplayData(3)
	data.Frames[0].R = true
	replayer := NewReplayer(data)

	// Advance to end
	replayer.GetInput()
	replayer.GetInput()
	replayer.GetInput()
	_, ok := replayer.GetInput()
	assert.False(t, ok)

	// Reset
	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())

	// Should be able to read again
	input, ok := replayer.GetInput()
	assert.True(t, ok)
	assert.True(t, input.Right)
}

func TestCreateTestReplayData(t *testing.T) {
	data := CreateTestReplayData(60)

	assert.Equal(t, FormatVersion, data.Version)
	assert.Equal(t, int64(12345), data.Seed)
	_, err := uuid.Parse(data.MatchID)
	assert.NoError(t, err)
	assert.Equal(t, 60, len(data.Frames))

	for i, frame := range data.Frames {
		assert.Equal(t, i, frame.F, "Frame number mismatch at index %d", i)
	}
}

func TestFrame_CarriesEveryRecordedKey(t *testing.T) {
	in := system.InputState{
		Left:           true,
		Right:          true,
		JumpPressed:    true,
		AttackPressed:  true,
		SpecialPressed: true,
		PausePressed:   true,
		RetryPressed:   true,
		BackPressed:    true,
	}

	fi := NewFrame(7, in)

	assert.Equal(t, 7, fi.F)
	assert.Equal(t, in, fi.Input())
}

func TestFrame_DropsMenuOnlyKeys(t *testing.T) {
	fi := NewFrame(0, system.InputState{StartPressed: true, QuitPressed: true})

	assert.Equal(t, system.InputState{}, fi.Input())
}

func TestRecorder_RecordFrame(t *testing.T) {
	r := NewRecorder(42, "match-1")

	r.RecordFrame(system.InputState{Left: true})
	r.RecordFrame(system.InputState{AttackPressed: true})

	data := r.GetData()
	assert.Equal(t, 2, r.FrameCount())
	assert.Equal(t, int64(42), data.Seed)
	assert.Equal(t, "match-1", data.MatchID)
	assert.Equal(t, 1, data.Frames[1].F)
	assert.True(t, data.Frames[1].AT)
}

func TestRecorder_StopAndIsRecording(t *testing.T) {
	r := NewRecorder(1, "m")
	assert.True(t, r.IsRecording())

	r.Stop()
	assert.False(t, r.IsRecording())
}

func TestRecorder_DoesNotRecordWhenStopped(t *testing.T) {
	r := NewRecorder(1, "m")
	r.RecordFrame(system.InputState{})
	r.Stop()
	r.RecordFrame(system.InputState{})

	assert.Equal(t, 1, r.FrameCount())
}

func TestRecorder_SaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "match.json")
	r := NewRecorder(77, "abc")
	r.RecordFrame(system.InputState{Right: true})
	r.RecordFrame(system.InputState{JumpPressed: true, SpecialPressed: true})

	require.NoError(t, r.Save(path))

	data, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, int64(77), data.Seed)
	assert.Equal(t, "abc", data.MatchID)
	assert.Equal(t, r.GetData().Frames, data.Frames)
}

func TestRecorder_SaveEmpty(t *testing.T) {
	err := NewRecorder(1, "m").Save(filepath.Join(t.TempDir(), "empty.json"))
	assert.ErrorContains(t, err, "no frames")
}

func TestLoadReplay_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadReplay(filepath.Join(dir, "missing.json"))
	assert.ErrorContains(t, err, "failed to open")

	garbage := filepath.Join(dir, "garbage.json")
	require.NoError(t, os.WriteFile(garbage, []byte("{"), 0o644))
	_, err = LoadReplay(garbage)
	assert.ErrorContains(t, err, "failed to decode")

	old := filepath.Join(dir, "old.json")
	require.NoError(t, os.WriteFile(old, []byte(`{"version":"1.0","frames":[]}`), 0o644))
	_, err = LoadReplay(old)
	assert.ErrorContains(t, err, "unsupported replay version")
}

func TestGenerateFilename(t *testing.T) {
	name := GenerateFilename()
	assert.Regexp(t, `^replay_\d{8}_\d{6}\.json$`, name)
}
