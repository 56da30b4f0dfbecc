package emojidata

import (
	"errors"
	"sort"
)

// SkinVariation is one skin-tone form of an emoji.
type SkinVariation struct {
	Unified string `json:"unified"`
}

// Record is one entry of the emoji-data JSON array. Fields the generator does not
// use are ignored when decoding.
type Record struct {
	ShortName      string                   `json:"short_name"`
	Name           string                   `json:"name"`
	Unified        string                   `json:"unified"`
	SortOrder      *int                     `json:"sort_order"`
	Category       string                   `json:"category"`
	SkinVariations map[string]SkinVariation `json:"skin_variations,omitempty"`
}

var errMissing = errors.New("missing or empty")

// Validate checks that every required field is present. index is the record's
// position in the input array and is only used for error reporting.
func (r *Record) Validate(index int) error {
	missing := func(field string) error {
		return &InputFormatError{Source: SourceJSON, Index: index, Field: field, Err: errMissing}
	}
	switch {
	case r.ShortName == "":
		return missing("short_name")
	case r.Name == "":
		return missing("name")
	case r.Unified == "":
		return missing("unified")
	case r.SortOrder == nil:
		return missing("sort_order")
	case r.Category == "":
		return missing("category")
	}
	for _, key := range r.SkinVariationKeys() {
		if r.SkinVariations[key].Unified == "" {
			return missing("skin_variations." + key + ".unified")
		}
	}
	return nil
}

// Order returns the record's sort order, or 0 if it was never set.
func (r *Record) Order() int {
	if r.SortOrder == nil {
		return 0
	}
	return *r.SortOrder
}

// SkinVariationKeys returns the variation names in ascending order.
func (r *Record) SkinVariationKeys() []string {
	keys := make([]string, 0, len(r.SkinVariations))
	for k := range r.SkinVariations {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
