package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/haytac/elm-emoji-gen/internal/app"
	"github.com/haytac/elm-emoji-gen/internal/config"
	"github.com/haytac/elm-emoji-gen/internal/metrics"
)

// inputFlags are shared by every generator subcommand. Values only override the
// loaded configuration when the flag was set explicitly.
type inputFlags struct {
	input       string
	mode        string
	metricsFile string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "emoji.json", "emoji-data JSON array to read")
	cmd.Flags().StringVar(&f.mode, "mode", "stream", "JSON decoding strategy: stream or bulk")
	cmd.Flags().StringVar(&f.metricsFile, "metrics-file", "", "write run metrics in Prometheus text format to this file")
}

func (f *inputFlags) apply(cmd *cobra.Command, cfg *config.AppConfig) {
	if cmd.Flags().Changed("input") {
		cfg.Input = f.input
	}
	if cmd.Flags().Changed("mode") {
		cfg.DecodeMode = f.mode
	}
	if cmd.Flags().Changed("metrics-file") {
		cfg.MetricsFile = f.metricsFile
	}
}

// loadedConfig returns a copy of AppCfg with the command's flags applied.
func loadedConfig(cmd *cobra.Command, flags *inputFlags) (*config.AppConfig, error) {
	if AppCfg == nil {
		return nil, fmt.Errorf("configuration not loaded for %s", cmd.Name())
	}
	cfg := *AppCfg
	flags.apply(cmd, &cfg)
	return &cfg, nil
}

// runArtifact opens the configured input, lets generate produce the artifact and
// writes it to stdout. Nothing reaches stdout if generate or the metrics file fails.
func runArtifact(cmd *cobra.Command, cfg *config.AppConfig, generate func(g *app.Generator, in *os.File) ([]byte, error)) error {
	rec := metrics.NewRecorder()
	g, err := app.NewGenerator(cfg, rec)
	if err != nil {
		return err
	}

	in, err := os.Open(cfg.Input)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	out, err := generate(g, in)
	if err != nil {
		return err
	}
	if err := rec.WriteTextfile(cfg.MetricsFile); err != nil {
		return fmt.Errorf("writing metrics: %w", err)
	}
	if _, err := cmd.OutOrStdout().Write(out); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
