// Package midi reads Standard MIDI files into an immutable in-memory
// event sequence for feature extraction.
package midi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gitlab.com/gomidi/midi/v2/smf"

	apperrors "github.com/Kraftist/midi-inspo/internal/errors"
)

var headerMagic = []byte("MThd")

const metaEndOfTrack = 0x2F

// ReadFile parses the Standard MIDI file at path.
func ReadFile(path string) (*Sequence, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrFileNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return parse(data, path)
}

// Read parses a Standard MIDI byte stream.
func Read(r io.Reader) (*Sequence, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read stream: %w", err)
	}
	return parse(data, "")
}

func parse(data []byte, path string) (*Sequence, error) {
	if !bytes.HasPrefix(data, headerMagic) {
		return nil, apperrors.NewParseError(path, errors.New("missing MThd header chunk"))
	}

	src, err := smf.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return nil, apperrors.NewParseError(path, err)
	}
	if f := int(src.Format()); f > 2 {
		return nil, apperrors.NewParseError(path, fmt.Errorf("unsupported SMF format %d", f))
	}

	seq := &Sequence{Format: int(src.Format())}
	if ticks, ok := src.TimeFormat.(smf.MetricTicks); ok {
		seq.TicksPerQuarter = int(ticks.Resolution())
	}

	seq.Tracks = make([]Track, 0, len(src.Tracks))
	for _, st := range src.Tracks {
		track := make(Track, 0, len(st))
		for _, ev := range st {
			if e, ok := convertEvent(ev); ok {
				track = append(track, e)
			}
		}
		seq.Tracks = append(seq.Tracks, track)
	}
	return seq, nil
}

// convertEvent maps one smf event onto the Event variant. Channel voice
// events other than notes and program changes carry nothing the feature
// extractor uses and are not represented.
func convertEvent(ev smf.Event) (Event, bool) {
	e := Event{Delta: ev.Delta}
	msg := ev.Message

	var ch, pitch, vel, prog uint8
	var bpm float64
	var num, denom uint8

	switch {
	case msg.GetNoteOn(&ch, &pitch, &vel):
		e.Kind = KindNoteOn
		e.Channel, e.Pitch, e.Velocity = ch, pitch, vel

	case msg.GetNoteOff(&ch, &pitch, &vel):
		e.Kind = KindNoteOff
		e.Channel, e.Pitch, e.Velocity = ch, pitch, vel

	case msg.GetProgramChange(&ch, &prog):
		e.Kind = KindProgramChange
		e.Channel, e.Program = ch, prog

	case msg.GetMetaTempo(&bpm):
		e.Kind = KindTempo
		e.MicrosPerQuarter = microsPerQuarter(bpm)

	case msg.GetMetaMeter(&num, &denom):
		e.Kind = KindTimeSignature
		e.Numerator, e.Denominator = num, denom

	case isKeySignature(msg):
		e.Kind = KindKeySignature
		e.SharpsFlats = int8(msg[3])
		e.Minor = msg[4] == 1

	case isMeta(msg):
		if msg[1] == metaEndOfTrack {
			// Chunk framing, not musical content.
			return Event{}, false
		}
		e.Kind = KindOtherMeta
		e.MetaType = msg[1]

	default:
		// Control changes, pitch bends, aftertouch and sysex data
		// are outside the feature set.
		return Event{}, false
	}
	return e, true
}

// Raw meta layout: FF <type> <len> <payload>. Key signature is
// FF 59 02 <sharps/flats> <minor>.
func isKeySignature(msg smf.Message) bool {
	return len(msg) >= 5 && msg[0] == 0xFF && msg[1] == 0x59 && msg[2] == 0x02
}

func isMeta(msg smf.Message) bool {
	return len(msg) >= 2 && msg[0] == 0xFF
}

func microsPerQuarter(bpm float64) uint32 {
	if bpm <= 0 {
		return 0
	}
	return uint32(60_000_000/bpm + 0.5)
}
