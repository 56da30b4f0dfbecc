package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
)

// Recorder holds the counters of a single generator run. Each Recorder owns its
// registry so runs (and tests) never share state.
type Recorder struct {
	Registry *prometheus.Registry

	// RecordsProcessed counts records visited, per artifact.
	RecordsProcessed *prometheus.CounterVec
	// SkinVariations counts decoded skin-tone variants.
	SkinVariations prometheus.Counter
	// KeywordLookups counts annotation lookups by result.
	KeywordLookups *prometheus.CounterVec
	// AnnotationsLoaded reports the size of the annotation index.
	AnnotationsLoaded prometheus.Gauge
	// GroupsEmitted counts canonical category bindings written.
	GroupsEmitted prometheus.Counter
	// RunDuration reports the wall time of the last run, per artifact.
	RunDuration *prometheus.GaugeVec
}

// NewRecorder creates a Recorder backed by a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		Registry: reg,
		RecordsProcessed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "elmemoji_records_processed_total",
				Help: "Total number of emoji records processed.",
			},
			[]string{"artifact"}, // table, categories, audit
		),
		SkinVariations: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "elmemoji_skin_variations_total",
				Help: "Total number of skin-tone variations decoded.",
			},
		),
		KeywordLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "elmemoji_keyword_lookups_total",
				Help: "Total number of annotation lookups.",
			},
			[]string{"result"}, // hit, miss
		),
		AnnotationsLoaded: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "elmemoji_annotations_loaded",
				Help: "Number of glyphs with primary annotations.",
			},
		),
		GroupsEmitted: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "elmemoji_category_groups_emitted_total",
				Help: "Total number of canonical category bindings emitted.",
			},
		),
		RunDuration: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "elmemoji_run_duration_seconds",
				Help: "Wall time of the last generator run.",
			},
			[]string{"artifact"},
		),
	}
}

// ObserveRun records the duration since start for artifact.
func (r *Recorder) ObserveRun(artifact string, start time.Time) {
	r.RunDuration.WithLabelValues(artifact).Set(time.Since(start).Seconds())
}

// WriteTextfile writes the registry in the text exposition format, for the
// node exporter textfile collector. An empty path is a no-op.
func (r *Recorder) WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.Registry); err != nil {
		return err
	}
	log.Debug().Str("path", path).Msg("Wrote run metrics")
	return nil
}
