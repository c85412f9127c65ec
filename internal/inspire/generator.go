// Package inspire turns a feature set into a short creative brief.
package inspire

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"math/rand"
	"strings"

	"github.com/Kraftist/midi-inspo/internal/analysis"
)

// Threshold values separating the feature bands the text branches on.
const (
	sparseDensity = 2.0 // note-ons per second
	denseDensity  = 8.0
	slowTempo     = 90.0 // BPM
	fastTempo     = 140.0
	narrowRange   = 12 // semitones
	wideRange     = 36
)

// Generator phrases inspiration text for one feature set.
type Generator struct {
	features analysis.Features
	seed     int64
	seeded   bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed pins phrasing selection to an explicit seed instead of the
// default derived from the feature set.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
		g.seeded = true
	}
}

// NewGenerator creates a generator for the given features.
func NewGenerator(features analysis.Features, opts ...Option) *Generator {
	g := &Generator{features: features}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Ideas renders the inspiration text. The same feature set and seed
// always produce the same string, and every feature combination maps
// to non-empty text.
func (g *Generator) Ideas() string {
	rng := rand.New(rand.NewSource(g.phraseSeed()))

	lines := []string{
		"🎼 MIDI Snapshot",
		g.snapshot(),
		"",
		"✨ Creative Directions",
		pick(rng, directions),
		g.focus(rng),
		g.motion(rng),
	}
	if tip := g.rangeTip(rng); tip != "" {
		lines = append(lines, tip)
	}
	lines = append(lines, g.groove(rng))
	if tip := g.colorTip(rng); tip != "" {
		lines = append(lines, tip)
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// snapshot describes the file in one line.
func (g *Generator) snapshot() string {
	f := g.features

	segments := []string{
		fmt.Sprintf("Format %d with %d %s", f.Format, f.TrackCount, pluralize(f.TrackCount, "track")),
		fmt.Sprintf("%.0f BPM in %s", f.TempoBPM, f.TimeSignature),
	}
	if f.NoteCount > 0 {
		segments = append(segments, fmt.Sprintf("%d %s across %.1f seconds",
			f.NoteCount, pluralize(f.NoteCount, "note"), f.DurationSeconds))
	} else {
		segments = append(segments, "no notes yet")
	}
	if f.Key != "" {
		segments = append(segments, "key of "+f.Key)
	}
	if f.Instrument != "" && f.Instrument != "none" {
		segments = append(segments, "led by "+strings.ToLower(f.Instrument))
	}

	return strings.Join(segments, "; ")
}

func (g *Generator) focus(rng *rand.Rand) string {
	switch d := g.features.NoteDensity; {
	case g.features.NoteCount == 0:
		return pick(rng, emptyFocus)
	case d < sparseDensity:
		return pick(rng, sparseFocus)
	case d > denseDensity:
		return pick(rng, denseFocus)
	default:
		return pick(rng, balancedFocus)
	}
}

func (g *Generator) motion(rng *rand.Rand) string {
	switch bpm := g.features.TempoBPM; {
	case bpm < slowTempo:
		return pick(rng, slowMotion)
	case bpm > fastTempo:
		return pick(rng, fastMotion)
	default:
		return pick(rng, midMotion)
	}
}

// rangeTip comments on the melodic register spread. Files without a
// melodic voice (no notes, or drums only) get no range advice.
func (g *Generator) rangeTip(rng *rand.Rand) string {
	f := g.features
	if f.Instrument == "" || f.Instrument == "none" {
		return ""
	}

	switch span := f.PitchMax - f.PitchMin; {
	case span <= narrowRange:
		return pick(rng, narrowRangeTips)
	case span >= wideRange:
		return pick(rng, wideRangeTips)
	default:
		return pick(rng, midRangeTips)
	}
}

func (g *Generator) groove(rng *rand.Rand) string {
	if g.features.PercussionNotes > 0 {
		return pick(rng, percussionGroove)
	}
	return pick(rng, noPercussionGroove)
}

func (g *Generator) colorTip(rng *rand.Rand) string {
	switch key := g.features.Key; {
	case key == "":
		return ""
	case strings.HasSuffix(key, "minor"):
		return pick(rng, minorColor)
	default:
		return pick(rng, majorColor)
	}
}

// phraseSeed is the FNV-1a hash of the canonical feature JSON unless
// an explicit seed was supplied. Deriving the seed from the features
// keeps the whole pipeline a pure function of the input file bytes.
func (g *Generator) phraseSeed() int64 {
	if g.seeded {
		return g.seed
	}

	data, err := json.Marshal(g.features)
	if err != nil {
		return 0
	}
	h := fnv.New64a()
	h.Write(data)
	return int64(h.Sum64())
}

func pick(rng *rand.Rand, pool []string) string {
	return pool[rng.Intn(len(pool))]
}

func pluralize(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
