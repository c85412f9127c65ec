package midi

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	apperrors "github.com/Kraftist/midi-inspo/internal/errors"
)

// writeSMF serializes the given tracks into Standard MIDI file bytes
// at 960 ticks per quarter note.
func writeSMF(t *testing.T, tracks ...smf.Track) []byte {
	t.Helper()

	sm := smf.New()
	sm.TimeFormat = smf.MetricTicks(960)
	for _, tr := range tracks {
		require.NoError(t, sm.Add(tr))
	}

	var buf bytes.Buffer
	_, err := sm.WriteTo(&buf)
	require.NoError(t, err)
	return buf.Bytes()
}

// keySignature builds a raw key signature meta message
// (FF 59 02 <sharps/flats> <minor>).
func keySignature(sharpsFlats int8, minor bool) []byte {
	mi := byte(0)
	if minor {
		mi = 1
	}
	return []byte{0xFF, 0x59, 0x02, byte(sharpsFlats), mi}
}

func TestReadCountsEventsByKind(t *testing.T) {
	var tr smf.Track
	tr.Add(0, smf.MetaTempo(120))
	tr.Add(0, smf.MetaMeter(4, 4))
	tr.Add(0, keySignature(2, false))
	tr.Add(0, gomidi.ProgramChange(0, 24))
	for _, pitch := range []uint8{60, 64, 67} {
		tr.Add(0, gomidi.NoteOn(0, pitch, 100))
		tr.Add(480, gomidi.NoteOff(0, pitch))
	}
	// Channel noise the reader must skip.
	tr.Add(0, gomidi.ControlChange(0, 7, 100))
	tr.Add(0, gomidi.Pitchbend(0, 0))
	tr.Close(0)

	seq, err := Read(bytes.NewReader(writeSMF(t, tr)))
	require.NoError(t, err)

	assert.Equal(t, 3, seq.CountKind(KindNoteOn))
	assert.Equal(t, 3, seq.CountKind(KindNoteOff))
	assert.Equal(t, 1, seq.CountKind(KindTempo))
	assert.Equal(t, 1, seq.CountKind(KindTimeSignature))
	assert.Equal(t, 1, seq.CountKind(KindKeySignature))
	assert.Equal(t, 1, seq.CountKind(KindProgramChange))
	assert.Equal(t, 0, seq.CountKind(KindOtherMeta))
	assert.Equal(t, 10, seq.EventCount())
	assert.Equal(t, 960, seq.TicksPerQuarter)
}

func TestReadDecodesEventPayloads(t *testing.T) {
	var tr smf.Track
	tr.Add(0, smf.MetaTempo(120))
	tr.Add(0, smf.MetaMeter(6, 8))
	tr.Add(0, keySignature(-1, true))
	tr.Close(0)

	seq, err := Read(bytes.NewReader(writeSMF(t, tr)))
	require.NoError(t, err)
	require.Len(t, seq.Tracks, 1)
	require.Len(t, seq.Tracks[0], 3)

	tempo := seq.Tracks[0][0]
	assert.Equal(t, KindTempo, tempo.Kind)
	assert.Equal(t, uint32(500_000), tempo.MicrosPerQuarter)

	meter := seq.Tracks[0][1]
	assert.Equal(t, KindTimeSignature, meter.Kind)
	assert.Equal(t, uint8(6), meter.Numerator)
	assert.Equal(t, uint8(8), meter.Denominator)

	sig := seq.Tracks[0][2]
	assert.Equal(t, KindKeySignature, sig.Kind)
	assert.Equal(t, int8(-1), sig.SharpsFlats)
	assert.True(t, sig.Minor)
}

func TestReadPreservesNotePayloadAndDelta(t *testing.T) {
	var tr smf.Track
	tr.Add(0, gomidi.NoteOn(3, 72, 90))
	tr.Add(240, gomidi.NoteOff(3, 72))
	tr.Close(0)

	seq, err := Read(bytes.NewReader(writeSMF(t, tr)))
	require.NoError(t, err)
	require.Len(t, seq.Tracks, 1)
	require.Len(t, seq.Tracks[0], 2)

	on := seq.Tracks[0][0]
	assert.Equal(t, KindNoteOn, on.Kind)
	assert.Equal(t, uint8(3), on.Channel)
	assert.Equal(t, uint8(72), on.Pitch)
	assert.Equal(t, uint8(90), on.Velocity)
	assert.Equal(t, uint32(0), on.Delta)

	off := seq.Tracks[0][1]
	assert.Equal(t, KindNoteOff, off.Kind)
	assert.Equal(t, uint8(72), off.Pitch)
	assert.Equal(t, uint32(240), off.Delta)
}

func TestReadMultiTrack(t *testing.T) {
	var meta smf.Track
	meta.Add(0, smf.MetaTempo(90))
	meta.Close(0)

	var notes smf.Track
	notes.Add(0, gomidi.NoteOn(1, 72, 90))
	notes.Add(240, gomidi.NoteOff(1, 72))
	notes.Close(0)

	seq, err := Read(bytes.NewReader(writeSMF(t, meta, notes)))
	require.NoError(t, err)

	assert.Equal(t, 1, seq.Format)
	assert.Len(t, seq.Tracks, 2)
	assert.Equal(t, 1, seq.CountKind(KindTempo))
	assert.Equal(t, 1, seq.CountKind(KindNoteOn))
}

func TestReadKeepsUnclassifiedMetaEvents(t *testing.T) {
	trackName := []byte{0xFF, 0x03, 0x04, 'l', 'e', 'a', 'd'}

	var tr smf.Track
	tr.Add(0, trackName)
	tr.Add(0, gomidi.NoteOn(0, 60, 80))
	tr.Add(120, gomidi.NoteOff(0, 60))
	tr.Close(0)

	seq, err := Read(bytes.NewReader(writeSMF(t, tr)))
	require.NoError(t, err)

	require.Equal(t, 1, seq.CountKind(KindOtherMeta))
	assert.Equal(t, byte(0x03), seq.Tracks[0][0].MetaType)
	// End-of-track framing never shows up as an event.
	assert.Equal(t, 3, seq.EventCount())
}

func TestReadRejectsMalformedData(t *testing.T) {
	var tr smf.Track
	tr.Add(0, gomidi.NoteOn(0, 60, 100))
	tr.Add(480, gomidi.NoteOff(0, 60))
	tr.Close(0)
	valid := writeSMF(t, tr)

	cases := []struct {
		name string
		data []byte
	}{
		{name: "empty input", data: nil},
		{name: "wrong magic", data: []byte("RIFFxxxxWAVEfmt and then some")},
		{name: "truncated header", data: valid[:8]},
		{name: "truncated track", data: valid[:len(valid)-4]},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Read(bytes.NewReader(tc.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrMalformedInput)
		})
	}

	t.Run("reports the failure cause", func(t *testing.T) {
		_, err := Read(bytes.NewReader([]byte("not midi at all")))
		var perr *apperrors.ParseError
		require.ErrorAs(t, err, &perr)
		assert.Contains(t, perr.Error(), "MThd")
	})
}

func TestReadFile(t *testing.T) {
	t.Run("reads from disk", func(t *testing.T) {
		var tr smf.Track
		tr.Add(0, gomidi.NoteOn(0, 60, 100))
		tr.Add(480, gomidi.NoteOff(0, 60))
		tr.Close(0)

		path := filepath.Join(t.TempDir(), "fixture.mid")
		require.NoError(t, os.WriteFile(path, writeSMF(t, tr), 0o644))

		seq, err := ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, 2, seq.EventCount())
	})

	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "does-not-exist.mid")

		_, err := ReadFile(path)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrFileNotFound)
		assert.Contains(t, err.Error(), path)
	})

	t.Run("malformed file reports its path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.mid")
		require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o644))

		_, err := ReadFile(path)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrMalformedInput)
		assert.Contains(t, err.Error(), path)
	})
}
