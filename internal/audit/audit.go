// Package audit cross-checks emoji-data short names against the shortcode table
// shipped with github.com/kyokomi/emoji. Findings are informational; the data
// sets disagree on a handful of names and neither is authoritative.
package audit

import (
	"sort"
	"strings"

	kemoji "github.com/kyokomi/emoji/v2"
	"github.com/rs/zerolog/log"

	"github.com/haytac/elm-emoji-gen/internal/emojidata"
)

const variationSelector16 = "\ufe0f"

// Mismatch is a short name both data sets know, rendered as different glyphs.
type Mismatch struct {
	ShortName string
	Native    string // glyph decoded from the emoji data
	Library   string // glyph the shortcode table maps the name to
}

// Report summarizes an audit run.
type Report struct {
	Checked    int
	Matched    int
	Mismatched []Mismatch
	Unknown    []string // short names absent from the shortcode table, sorted
}

// Auditor accumulates findings record by record.
type Auditor struct {
	codes  map[string]string
	report Report
}

// NewAuditor creates an Auditor over the library's shortcode table.
func NewAuditor() *Auditor {
	return &Auditor{codes: kemoji.CodeMap()}
}

// Add checks one record. It fails only when the record's codepoints do not decode.
func (a *Auditor) Add(rec *emojidata.Record) error {
	native, err := emojidata.Decode(rec.Unified)
	if err != nil {
		return err
	}
	a.report.Checked++

	expected, ok := a.codes[":"+rec.ShortName+":"]
	if !ok {
		a.report.Unknown = append(a.report.Unknown, rec.ShortName)
		return nil
	}
	if normalize(expected) == normalize(native) {
		a.report.Matched++
		return nil
	}

	log.Debug().Str("short_name", rec.ShortName).Str("native", native).Str("library", expected).Msg("Shortcode glyph mismatch")
	a.report.Mismatched = append(a.report.Mismatched, Mismatch{
		ShortName: rec.ShortName,
		Native:    native,
		Library:   strings.TrimSpace(expected),
	})
	return nil
}

// Report returns the findings so far, with Unknown sorted.
func (a *Auditor) Report() *Report {
	r := a.report
	r.Unknown = append([]string(nil), a.report.Unknown...)
	r.Mismatched = append([]Mismatch(nil), a.report.Mismatched...)
	sort.Strings(r.Unknown)
	return &r
}

// normalize drops padding and emoji presentation selectors, which the two data
// sets apply inconsistently.
func normalize(glyph string) string {
	return strings.ReplaceAll(strings.TrimSpace(glyph), variationSelector16, "")
}
