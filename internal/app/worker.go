package app

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/haytac/elm-emoji-gen/internal/emojidata"
	"github.com/haytac/elm-emoji-gen/internal/metrics"
	"github.com/haytac/elm-emoji-gen/pkg/interfaces"
)

// RecordWorker turns source records into table entries.
type RecordWorker struct {
	annotations *emojidata.Annotations
	metrics     *metrics.Recorder
}

// NewRecordWorker creates a RecordWorker. annotations may be nil, in which case
// every entry gets an empty keyword list.
func NewRecordWorker(annotations *emojidata.Annotations, rec *metrics.Recorder) *RecordWorker {
	return &RecordWorker{annotations: annotations, metrics: rec}
}

// Process decodes and enriches the record at index.
func (w *RecordWorker) Process(index int, rec *emojidata.Record) (interfaces.Entry, error) {
	l := log.With().Int("index", index).Str("short_name", rec.ShortName).Logger()

	native, err := emojidata.Decode(rec.Unified)
	if err != nil {
		return interfaces.Entry{}, fmt.Errorf("record %d (%s): unified: %w", index, rec.ShortName, err)
	}

	keys := rec.SkinVariationKeys()
	variants := make([]interfaces.SkinVariant, 0, len(keys))
	for _, key := range keys {
		glyph, err := emojidata.Decode(rec.SkinVariations[key].Unified)
		if err != nil {
			return interfaces.Entry{}, fmt.Errorf("record %d (%s): skin variation %s: %w", index, rec.ShortName, key, err)
		}
		variants = append(variants, interfaces.SkinVariant{Name: key, Native: glyph})
	}
	w.metrics.SkinVariations.Add(float64(len(variants)))

	keywords, found := w.annotations.Keywords(native)
	if found {
		w.metrics.KeywordLookups.WithLabelValues("hit").Inc()
	} else {
		w.metrics.KeywordLookups.WithLabelValues("miss").Inc()
		if w.annotations != nil {
			l.Debug().Msg("No annotation for glyph")
		}
	}

	return interfaces.Entry{
		ShortName:      rec.ShortName,
		Name:           rec.Name,
		Native:         native,
		SortOrder:      rec.Order(),
		SkinVariations: variants,
		Keywords:       keywords,
	}, nil
}

// shortNameIndex rejects short names that were already seen.
type shortNameIndex map[string]int

func (s shortNameIndex) claim(index int, shortName string) error {
	if first, ok := s[shortName]; ok {
		return &emojidata.DuplicateKeyError{ShortName: shortName, First: first, Index: index}
	}
	s[shortName] = index
	return nil
}
