package inspire

// Phrase pools for each section of the brief. One entry per pool is
// chosen by the seeded picker; every pool must stay non-empty so the
// generator is total over all feature values.

// directions are general reworking ideas independent of any feature.
var directions = []string{
	"Transform the harmonic rhythm by extending progressions over multiple bars.",
	"Use call-and-response motifs between melodic voices for dialogue.",
	"Swap a track's instrumentation with an unexpected timbre to spark a new vibe.",
	"Re-voice the densest passage an octave apart and listen for new counterlines.",
	"Mute every other phrase and improvise into the gaps before unmuting.",
}

// Density bands.
var (
	emptyFocus = []string{
		"A blank canvas: sketch a two-bar motif and let the file grow around it.",
		"No notes yet, so start from the meter and lay down a rhythmic skeleton.",
	}
	sparseFocus = []string{
		"Consider adding rhythmic ostinatos to increase energy.",
		"The texture is open; a simple arpeggio layer could carry the momentum.",
		"Double the sparsest section with a soft pad to glue the space together.",
	}
	denseFocus = []string{
		"Try introducing sparse breakdowns for contrast.",
		"Thin the busiest bars so a single lead line can breathe.",
		"Carve dynamics into the wall of notes by ghosting some velocities.",
	}
	balancedFocus = []string{
		"Balance momentum with space by alternating busy and calm sections.",
		"The density sits in a comfortable middle; push one section to an extreme for shape.",
	}
)

// Tempo bands.
var (
	slowMotion = []string{
		"At this unhurried tempo, long reverb tails and suspended chords will bloom.",
		"A slow pulse invites rubato; let phrases drift off the grid.",
	}
	midMotion = []string{
		"The tempo sits in walking range; syncopation will do the heavy lifting.",
		"A steady mid tempo suits layered grooves; try an off-beat hat pattern.",
	}
	fastMotion = []string{
		"Plenty of speed here; halve the felt tempo in a bridge for sudden weight.",
		"At this pace small motifs repeat well; trim ideas down to two-beat cells.",
	}
)

// Pitch-range bands, melodic files only.
var (
	narrowRangeTips = []string{
		"The melody stays within an octave; a sudden leap would be a spotlight.",
		"Tight pitch range: open it up with a transposed echo an octave above.",
	}
	midRangeTips = []string{
		"The registers are comfortably spread; a unison passage could refocus them.",
		"Mid-wide range: hand the extremes to different instruments and let the middle rest.",
	}
	wideRangeTips = []string{
		"The pitch range is wide; anchor it with a static middle voice.",
		"Big registral spread: stagger entrances from low to high for drama.",
	}
)

// Percussion presence.
var (
	percussionGroove = []string{
		"Highlight the percussion with subtle dynamic swells.",
		"Push and pull the drum channel a few ticks either way for a human pocket.",
	}
	noPercussionGroove = []string{
		"Experiment with layering tuned percussion or found sounds for unique grooves.",
		"There is no drum channel yet; muted strings or body percussion could imply one.",
	}
)

// Key mode.
var (
	minorColor = []string{
		"Minor tonality: brighten one cadence with a picardy third and see what changes.",
		"Lean into the minor color with a slow descending lament bass.",
	}
	majorColor = []string{
		"Major tonality: borrow a chord from the parallel minor for shadow.",
		"Bright key; a sudden shift to the flat six adds a hint of mystery.",
	}
)
