package interfaces

import (
	"context"
	"io"

	"github.com/haytac/elm-emoji-gen/internal/emojidata"
)

// SkinVariant is one decoded skin-tone form of an entry.
type SkinVariant struct {
	Name   string // modifier key from the source data, e.g. "1F3FB"
	Native string
}

// Entry is the enriched descriptor emitted for one record.
type Entry struct {
	ShortName      string
	Name           string
	Native         string
	SortOrder      int
	SkinVariations []SkinVariant // ordered by Name
	Keywords       []string
	// ImgURL is reserved for externally supplied custom glyphs; the generator never sets it.
	ImgURL         *string
}

// CategoryBinding is one canonical category with its member short names.
type CategoryBinding struct {
	ID         string
	Name       string
	ShortNames []string
}

// RecordSource decodes a JSON array of emoji records, visiting them in input order.
type RecordSource interface {
	Records(ctx context.Context, r io.Reader, visit emojidata.Visitor) error
	Mode() string
}

// Formatter renders generated artifacts as source text.
type Formatter interface {
	FormatTable(entries []Entry) ([]byte, error)
	FormatCategories(groups []CategoryBinding) ([]byte, error)
}
