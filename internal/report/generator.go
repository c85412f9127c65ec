// Package report renders pipeline results for terminal and file output.
package report

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/Kraftist/midi-inspo/internal/analysis"
)

// Mode selects the appendix attached to the rendered prompt.
type Mode int

const (
	// ModePromptOnly outputs just the inspiration text.
	ModePromptOnly Mode = iota
	// ModeWithFeatures appends a human-readable feature dump.
	ModeWithFeatures
	// ModeWithJSON appends the feature set as an indented JSON document.
	ModeWithJSON
)

// String returns the mode name used in log lines.
func (m Mode) String() string {
	switch m {
	case ModePromptOnly:
		return "prompt"
	case ModeWithFeatures:
		return "features"
	case ModeWithJSON:
		return "json"
	}
	return "unknown"
}

// featureRows lists the dump rows in presentation order.
func featureRows(f analysis.Features) [][2]string {
	return [][2]string{
		{"note_count", strconv.Itoa(f.NoteCount)},
		{"pitch_min", strconv.Itoa(f.PitchMin)},
		{"pitch_max", strconv.Itoa(f.PitchMax)},
		{"pitch_mean", formatFloat(f.PitchMean)},
		{"tempo_bpm", formatFloat(f.TempoBPM)},
		{"duration_seconds", formatFloat(f.DurationSeconds)},
		{"track_count", strconv.Itoa(f.TrackCount)},
		{"format", strconv.Itoa(f.Format)},
		{"division", strconv.Itoa(f.Division)},
		{"time_signature", f.TimeSignature},
		{"key", f.Key},
		{"note_density", formatFloat(f.NoteDensity)},
		{"program_count", strconv.Itoa(f.ProgramCount)},
		{"instrument", f.Instrument},
		{"percussion_notes", strconv.Itoa(f.PercussionNotes)},
	}
}

// FormatFeatures renders the feature set as an aligned dump, one
// feature per line in a fixed order.
func FormatFeatures(f analysis.Features) string {
	rows := featureRows(f)

	width := 0
	for _, row := range rows {
		if len(row[0]) > width {
			width = len(row[0])
		}
	}

	var sb strings.Builder
	for i, row := range rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%-*s  %s", width, row[0], row[1])
	}
	return sb.String()
}

// FormatJSON renders the feature set as an indented JSON document.
func FormatJSON(f analysis.Features) (string, error) {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode features: %w", err)
	}
	return string(data), nil
}

// ParseJSON decodes a document produced by FormatJSON back into an
// equal feature set.
func ParseJSON(doc string) (analysis.Features, error) {
	var f analysis.Features
	if err := json.Unmarshal([]byte(doc), &f); err != nil {
		return analysis.Features{}, fmt.Errorf("decode features: %w", err)
	}
	return f, nil
}

// Compose joins the prompt with the appendix the mode asks for.
// Unrecognized modes fall back to the bare prompt.
func Compose(prompt string, f analysis.Features, mode Mode) string {
	switch mode {
	case ModeWithFeatures:
		return prompt + "\n\n📊 Feature Summary\n" + FormatFeatures(f)
	case ModeWithJSON:
		doc, err := FormatJSON(f)
		if err != nil {
			return prompt
		}
		return prompt + "\n\n📊 Feature JSON\n" + doc
	}
	return prompt
}

// formatFloat trims a fixed two-decimal rendering down to the digits
// that matter, so whole numbers print bare ("120", "63.5", "0.25").
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}
