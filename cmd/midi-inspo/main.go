package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Kraftist/midi-inspo/internal/config"
	apperrors "github.com/Kraftist/midi-inspo/internal/errors"
	"github.com/Kraftist/midi-inspo/internal/logger"
	"github.com/Kraftist/midi-inspo/internal/pipeline"
	"github.com/Kraftist/midi-inspo/internal/report"
	"github.com/Kraftist/midi-inspo/internal/tui"
)

var (
	version = "0.1.0"
)

func main() {
	_ = godotenv.Load() // optional .env; absence is fine

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		showFeatures bool
		showJSON     bool
		ui           bool
		seed         int64
		outputPath   string
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:   "midi-inspo [file]",
		Short: "Turn a MIDI file into a creative inspiration prompt",
		Long: `midi-inspo reads a Standard MIDI File, summarizes its musical
features and renders a short templated prompt with ideas to build on.

Examples:
  midi-inspo riff.mid
  midi-inspo riff.mid --show-features
  midi-inspo riff.mid --show-json -o prompt.txt
  midi-inspo --ui ./loops`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			level := cfg.LogLevel
			if verbose {
				level = "debug"
			}
			if err := logger.Init(level); err != nil {
				return err
			}

			mode := report.ModePromptOnly
			if showFeatures {
				mode = report.ModeWithFeatures
			}
			if showJSON {
				mode = report.ModeWithJSON
			}

			opts := pipeline.Options{Mode: mode, Seed: cfg.Seed}
			if cmd.Flags().Changed("seed") {
				opts.Seed = &seed
			}

			if ui {
				dir := cfg.Dir
				if len(args) == 1 {
					dir = args[0]
				}
				return tui.Run(dir, opts)
			}

			if len(args) == 0 {
				return apperrors.NewUsageError("a MIDI file argument is required (or pass --ui)")
			}

			res, err := pipeline.Run(args[0], opts)
			if err != nil {
				return err
			}

			if outputPath != "" {
				if err := os.WriteFile(outputPath, []byte(res.Output+"\n"), 0o644); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
				slog.Info("wrote result", "path", outputPath)
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), res.Output)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showFeatures, "show-features", false, "Append a readable feature summary to the prompt")
	cmd.Flags().BoolVar(&showJSON, "show-json", false, "Append the features as a JSON document")
	cmd.Flags().BoolVar(&ui, "ui", false, "Open the interactive browser instead of printing once")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Phrase seed (default: derived from the file)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the result to a file instead of stdout")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose diagnostics on stderr")
	cmd.MarkFlagsMutuallyExclusive("show-features", "show-json")

	return cmd
}
