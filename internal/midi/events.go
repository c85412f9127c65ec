package midi

// EventKind discriminates the parsed event variants.
type EventKind int

const (
	KindNoteOn EventKind = iota
	KindNoteOff
	KindTempo
	KindTimeSignature
	KindKeySignature
	KindProgramChange
	KindOtherMeta
)

// String returns the kind name used in dumps and log lines.
func (k EventKind) String() string {
	switch k {
	case KindNoteOn:
		return "note-on"
	case KindNoteOff:
		return "note-off"
	case KindTempo:
		return "tempo"
	case KindTimeSignature:
		return "time-signature"
	case KindKeySignature:
		return "key-signature"
	case KindProgramChange:
		return "program-change"
	case KindOtherMeta:
		return "meta"
	}
	return "unknown"
}

// Event is a single parsed MIDI event. Kind selects which payload
// fields are meaningful; the others stay zero.
type Event struct {
	Delta uint32 // ticks since the previous event on the same track
	Kind  EventKind

	// NoteOn, NoteOff, ProgramChange
	Channel uint8

	// NoteOn, NoteOff. A note-on with velocity 0 is kept as-is;
	// consumers decide whether to treat it as a release.
	Pitch    uint8
	Velocity uint8

	// ProgramChange
	Program uint8

	// Tempo
	MicrosPerQuarter uint32

	// TimeSignature
	Numerator   uint8
	Denominator uint8

	// KeySignature; negative SharpsFlats means flats
	SharpsFlats int8
	Minor       bool

	// OtherMeta
	MetaType byte
}

// Track is the ordered event list of one MTrk chunk.
type Track []Event

// Sequence is a fully parsed Standard MIDI file.
type Sequence struct {
	Format          int // SMF format: 0, 1 or 2
	TicksPerQuarter int // metric division; 0 when the file uses SMPTE timing
	Tracks          []Track
}

// EventCount returns the total number of events across all tracks.
func (s *Sequence) EventCount() int {
	n := 0
	for _, t := range s.Tracks {
		n += len(t)
	}
	return n
}

// CountKind returns how many events of the given kind the sequence holds.
func (s *Sequence) CountKind(kind EventKind) int {
	n := 0
	for _, t := range s.Tracks {
		for _, e := range t {
			if e.Kind == kind {
				n++
			}
		}
	}
	return n
}
