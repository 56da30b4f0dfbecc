package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/haytac/elm-emoji-gen/internal/audit"
	"github.com/haytac/elm-emoji-gen/internal/config"
	"github.com/haytac/elm-emoji-gen/internal/emojidata"
	"github.com/haytac/elm-emoji-gen/internal/formatter"
	"github.com/haytac/elm-emoji-gen/internal/logging"
	"github.com/haytac/elm-emoji-gen/internal/metrics"
	"github.com/haytac/elm-emoji-gen/pkg/interfaces"
)

// Artifact names, used as log fields and metric labels.
const (
	ArtifactTable      = "table"
	ArtifactCategories = "categories"
	ArtifactAudit      = "audit"
)

// Generator runs the record pipeline and renders complete artifacts. Nothing is
// returned unless the whole input was processed, so callers never see partial output.
type Generator struct {
	Config    *config.AppConfig
	Source    interfaces.RecordSource
	Formatter interfaces.Formatter
	Metrics   *metrics.Recorder
}

// NewRecordSource returns the decoding strategy for mode.
func NewRecordSource(mode string) (interfaces.RecordSource, error) {
	switch mode {
	case emojidata.ModeStream, "":
		return emojidata.StreamDecoder{}, nil
	case emojidata.ModeBulk:
		return emojidata.BulkDecoder{}, nil
	default:
		return nil, fmt.Errorf("unknown decode mode %q (want %q or %q)", mode, emojidata.ModeStream, emojidata.ModeBulk)
	}
}

// NewGenerator wires a Generator from cfg.
func NewGenerator(cfg *config.AppConfig, rec *metrics.Recorder) (*Generator, error) {
	source, err := NewRecordSource(cfg.DecodeMode)
	if err != nil {
		return nil, err
	}
	elm, err := formatter.NewElmFormatter(cfg.ModuleName)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		rec = metrics.NewRecorder()
	}
	return &Generator{Config: cfg, Source: source, Formatter: elm, Metrics: rec}, nil
}

// LoadAnnotations reads the configured annotation file, or returns nil when none is set.
func (g *Generator) LoadAnnotations() (*emojidata.Annotations, error) {
	if g.Config.Annotations == "" {
		return nil, nil
	}
	f, err := os.Open(g.Config.Annotations)
	if err != nil {
		return nil, fmt.Errorf("opening annotations: %w", err)
	}
	defer f.Close()

	ann, err := emojidata.LoadAnnotations(f)
	if err != nil {
		return nil, err
	}
	g.Metrics.AnnotationsLoaded.Set(float64(ann.Len()))
	log.Info().Str("path", g.Config.Annotations).Int("glyphs", ann.Len()).Msg("Annotations loaded")
	return ann, nil
}

// Table renders the emojiDict module for the records in in.
func (g *Generator) Table(ctx context.Context, in io.Reader, annotations *emojidata.Annotations) ([]byte, error) {
	start := time.Now()
	l := g.logger(ArtifactTable)

	worker := NewRecordWorker(annotations, g.Metrics)
	claimed := make(shortNameIndex)
	var entries []interfaces.Entry

	err := g.Source.Records(ctx, in, func(index int, rec *emojidata.Record) error {
		if err := claimed.claim(index, rec.ShortName); err != nil {
			return err
		}
		if _, err := emojidata.RecordGroup(rec); err != nil {
			return err
		}
		entry, err := worker.Process(index, rec)
		if err != nil {
			return err
		}
		entries = append(entries, entry)
		g.Metrics.RecordsProcessed.WithLabelValues(ArtifactTable).Inc()
		return nil
	})
	if err != nil {
		return nil, err
	}

	if g.Config.SortByOrder {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].SortOrder < entries[j].SortOrder
		})
	}

	out, err := g.Formatter.FormatTable(entries)
	if err != nil {
		return nil, err
	}
	g.Metrics.ObserveRun(ArtifactTable, start)
	l.Info().Int("entries", len(entries)).Bool("sorted", g.Config.SortByOrder).Dur("took", time.Since(start)).Msg("Emoji table generated")
	return out, nil
}

// Categories renders one binding per canonical category for the records in in.
func (g *Generator) Categories(ctx context.Context, in io.Reader) ([]byte, error) {
	start := time.Now()
	l := g.logger(ArtifactCategories)

	grouper := newCategoryGrouper()
	claimed := make(shortNameIndex)

	err := g.Source.Records(ctx, in, func(index int, rec *emojidata.Record) error {
		if err := claimed.claim(index, rec.ShortName); err != nil {
			return err
		}
		if err := grouper.add(rec); err != nil {
			return err
		}
		g.Metrics.RecordsProcessed.WithLabelValues(ArtifactCategories).Inc()
		return nil
	})
	if err != nil {
		return nil, err
	}

	groups := grouper.bindings()
	out, err := g.Formatter.FormatCategories(groups)
	if err != nil {
		return nil, err
	}
	g.Metrics.GroupsEmitted.Add(float64(len(groups)))
	g.Metrics.ObserveRun(ArtifactCategories, start)
	l.Info().Int("groups", len(groups)).Dur("took", time.Since(start)).Msg("Category bindings generated")
	return out, nil
}

// Audit compares every record against the shortcode table of the emoji library.
func (g *Generator) Audit(ctx context.Context, in io.Reader) (*audit.Report, error) {
	start := time.Now()
	l := g.logger(ArtifactAudit)

	auditor := audit.NewAuditor()
	err := g.Source.Records(ctx, in, func(index int, rec *emojidata.Record) error {
		if err := auditor.Add(rec); err != nil {
			return fmt.Errorf("record %d (%s): %w", index, rec.ShortName, err)
		}
		g.Metrics.RecordsProcessed.WithLabelValues(ArtifactAudit).Inc()
		return nil
	})
	if err != nil {
		return nil, err
	}

	report := auditor.Report()
	g.Metrics.ObserveRun(ArtifactAudit, start)
	l.Info().
		Int("checked", report.Checked).
		Int("matched", report.Matched).
		Int("mismatched", len(report.Mismatched)).
		Int("unknown", len(report.Unknown)).
		Msg("Shortcode audit finished")
	return report, nil
}

func (g *Generator) logger(artifact string) zerolog.Logger {
	return logging.ForArtifact(artifact, g.Source.Mode())
}
