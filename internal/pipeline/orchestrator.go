// Package pipeline coordinates the read, extract and inspire stages
// behind a single entry point shared by the CLI and the TUI.
package pipeline

import (
	"log/slog"

	"github.com/Kraftist/midi-inspo/internal/analysis"
	"github.com/Kraftist/midi-inspo/internal/inspire"
	"github.com/Kraftist/midi-inspo/internal/midi"
	"github.com/Kraftist/midi-inspo/internal/report"
)

// Options holds per-run pipeline configuration.
type Options struct {
	Mode report.Mode // appendix attached to the prompt
	Seed *int64      // phrase seed override; nil derives one from the features
}

// DefaultOptions returns the configuration of a bare invocation.
func DefaultOptions() Options {
	return Options{
		Mode: report.ModePromptOnly,
	}
}

// Result contains everything a frontend needs to render one run.
type Result struct {
	Prompt   string            // inspiration text without any appendix
	Features analysis.Features // feature set extracted from the file
	Output   string            // prompt plus the requested appendix
}

// Run reads the file at path, extracts its feature set and renders an
// inspiration prompt with the appendix the options ask for.
func Run(path string, opts Options) (*Result, error) {
	seq, err := midi.ReadFile(path)
	if err != nil {
		return nil, err
	}
	slog.Debug("parsed MIDI file",
		"path", path,
		"format", seq.Format,
		"tracks", len(seq.Tracks),
		"events", seq.EventCount())

	features := analysis.Extract(seq)
	slog.Debug("extracted features",
		"notes", features.NoteCount,
		"bpm", features.TempoBPM,
		"key", features.Key,
		"instrument", features.Instrument)

	var genOpts []inspire.Option
	if opts.Seed != nil {
		genOpts = append(genOpts, inspire.WithSeed(*opts.Seed))
	}
	prompt := inspire.NewGenerator(features, genOpts...).Ideas()
	slog.Debug("rendered prompt", "mode", opts.Mode, "bytes", len(prompt))

	return &Result{
		Prompt:   prompt,
		Features: features,
		Output:   report.Compose(prompt, features, opts.Mode),
	}, nil
}
