// Package analysis computes summary statistics from a parsed MIDI
// sequence.
package analysis

import (
	"fmt"

	"github.com/Kraftist/midi-inspo/internal/midi"
)

// Features is the flat statistics set extracted from one MIDI file.
// Every field is a scalar so the JSON form round-trips exactly.
type Features struct {
	NoteCount       int     `json:"note_count"`
	PitchMin        int     `json:"pitch_min"`
	PitchMax        int     `json:"pitch_max"`
	PitchMean       float64 `json:"pitch_mean"`
	TempoBPM        float64 `json:"tempo_bpm"`
	DurationSeconds float64 `json:"duration_seconds"`
	TrackCount      int     `json:"track_count"`
	Format          int     `json:"format"`
	Division        int     `json:"division"`
	TimeSignature   string  `json:"time_signature"`
	Key             string  `json:"key"`
	NoteDensity     float64 `json:"note_density"`
	ProgramCount    int     `json:"program_count"`
	Instrument      string  `json:"instrument"`
	PercussionNotes int     `json:"percussion_notes"`
}

// DefaultFeatures returns the documented fallback values used when the
// corresponding events are absent from the input.
func DefaultFeatures() Features {
	return Features{
		TempoBPM:      120,
		TimeSignature: "4/4",
		Instrument:    "none",
	}
}

const defaultMicrosPerQuarter = 500_000 // 120 BPM

// percussionChannel is the zero-based MIDI channel reserved for drum
// kits (channel 10 in one-based terms).
const percussionChannel = 9

// Extract computes the feature set for a parsed sequence. It is total:
// degenerate inputs (no notes, no tempo, no time signature) yield the
// documented defaults instead of failing.
//
// A note-on with velocity 0 counts as a release, not a note. Pitch
// statistics and instrument attribution cover melodic channels only;
// drum-channel pitches identify kit pieces, not notes, and are tallied
// in PercussionNotes instead. Durations assume the first tempo holds
// for the whole file.
func Extract(seq *midi.Sequence) Features {
	f := DefaultFeatures()
	f.TrackCount = len(seq.Tracks)
	f.Format = seq.Format
	f.Division = seq.TicksPerQuarter

	programs := make(map[uint8]uint8)  // channel -> active program
	programHits := make(map[uint8]int) // program -> melodic notes played
	distinct := make(map[uint8]struct{})

	var (
		melodic          int
		pitchMin         = 128
		pitchMax         = -1
		pitchSum         int
		longest          uint64
		microsPerQuarter uint32
		meterSeen        bool
	)

	for _, track := range seq.Tracks {
		var ticks uint64
		for _, e := range track {
			ticks += uint64(e.Delta)

			switch e.Kind {
			case midi.KindNoteOn:
				if e.Velocity == 0 {
					continue
				}
				f.NoteCount++
				if e.Channel == percussionChannel {
					f.PercussionNotes++
					continue
				}
				melodic++
				pitchSum += int(e.Pitch)
				if int(e.Pitch) < pitchMin {
					pitchMin = int(e.Pitch)
				}
				if int(e.Pitch) > pitchMax {
					pitchMax = int(e.Pitch)
				}
				programHits[programs[e.Channel]]++

			case midi.KindProgramChange:
				programs[e.Channel] = e.Program
				distinct[e.Program] = struct{}{}

			case midi.KindTempo:
				if microsPerQuarter == 0 {
					microsPerQuarter = e.MicrosPerQuarter
				}

			case midi.KindTimeSignature:
				if !meterSeen {
					f.TimeSignature = fmt.Sprintf("%d/%d", e.Numerator, e.Denominator)
					meterSeen = true
				}

			case midi.KindKeySignature:
				if f.Key == "" {
					f.Key = keyName(e.SharpsFlats, e.Minor)
				}
			}
		}
		if ticks > longest {
			longest = ticks
		}
	}

	if melodic > 0 {
		f.PitchMin = pitchMin
		f.PitchMax = pitchMax
		f.PitchMean = float64(pitchSum) / float64(melodic)
		f.Instrument = GMFamily(topProgram(programHits))
	}

	if microsPerQuarter == 0 {
		microsPerQuarter = defaultMicrosPerQuarter
	}
	f.TempoBPM = 60_000_000 / float64(microsPerQuarter)

	if seq.TicksPerQuarter > 0 && longest > 0 {
		quarters := float64(longest) / float64(seq.TicksPerQuarter)
		f.DurationSeconds = quarters * float64(microsPerQuarter) / 1e6
	}
	if f.DurationSeconds > 0 {
		f.NoteDensity = float64(f.NoteCount) / f.DurationSeconds
	}

	f.ProgramCount = len(distinct)

	return f
}

// topProgram returns the program with the most notes, preferring the
// lowest program number on ties.
func topProgram(hits map[uint8]int) uint8 {
	var best uint8
	bestCount := -1
	for prog, n := range hits {
		if n > bestCount || (n == bestCount && prog < best) {
			best, bestCount = prog, n
		}
	}
	return best
}
