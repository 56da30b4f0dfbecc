// Package logging configures the generator's diagnostics. Generated source owns
// stdout, so log output only ever goes to stderr and an optional file.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds logging configuration.
type Config struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	Console    bool   `mapstructure:"console"`
	TimeFormat string `mapstructure:"time_format"`
}

// Sink is an opened logging destination. Close releases the log file, if any.
type Sink struct {
	Logger zerolog.Logger
	Level  zerolog.Level
	file   *os.File
}

// Close closes the log file. It is safe to call on a Sink without a file.
func (s *Sink) Close() error {
	if s == nil || s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}

// Open builds a Sink from cfg. Console output is written to console; with
// neither console nor file enabled, console is still used so errors stay visible.
func Open(cfg Config, console io.Writer) (*Sink, error) {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		parsed, err := zerolog.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		level = parsed
	}

	sink := &Sink{Level: level}
	var writers []io.Writer
	if cfg.Console || cfg.File == "" {
		writers = append(writers, zerolog.ConsoleWriter{Out: console, TimeFormat: cfg.TimeFormat})
	}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		sink.file = f
		writers = append(writers, f)
	}

	sink.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).Level(level).With().Timestamp().Logger()
	return sink, nil
}

// Setup opens a Sink on stderr and installs it as the global logger. The caller
// owns the returned Sink and closes it when the run ends.
func Setup(cfg Config) (*Sink, error) {
	sink, err := Open(cfg, os.Stderr)
	if err != nil {
		return nil, err
	}
	log.Logger = sink.Logger
	zerolog.SetGlobalLevel(sink.Level)
	log.Debug().Str("level", sink.Level.String()).Str("file", cfg.File).Msg("Logger initialized")
	return sink, nil
}

// ForArtifact returns the global logger tagged with the artifact being generated
// and the JSON decode mode feeding it.
func ForArtifact(artifact, mode string) zerolog.Logger {
	return log.With().Str("artifact", artifact).Str("mode", mode).Logger()
}
