package emojidata

import (
	"errors"
	"io"
	"strings"

	xpp "github.com/mmcdole/goxpp"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/html/charset"
)

const (
	annotationTag   = "annotation"
	keywordSplitter = "|"
)

var errMissingCP = errors.New(`annotation without "cp" attribute`)

// Annotations maps a glyph to its ordered keyword list. It is built once by
// LoadAnnotations and never modified afterwards.
type Annotations struct {
	keywords map[string][]string
}

// Len reports how many glyphs carry keywords.
func (a *Annotations) Len() int {
	if a == nil {
		return 0
	}
	return len(a.keywords)
}

// Keywords returns the keywords for glyph. The result is never nil so callers can
// render it directly as an empty list. A nil receiver behaves as an empty index.
func (a *Annotations) Keywords(glyph string) ([]string, bool) {
	if a == nil {
		return []string{}, false
	}
	kw, ok := a.keywords[glyph]
	if !ok {
		return []string{}, false
	}
	out := make([]string, len(kw))
	copy(out, kw)
	return out, true
}

// LoadAnnotations reads CLDR-style <annotation cp="…">a | b</annotation> elements.
// Elements carrying a type attribute (text-to-speech names and other alternates)
// are skipped. When a glyph has several primary annotations the first one wins.
func LoadAnnotations(r io.Reader) (*Annotations, error) {
	p := xpp.NewXMLPullParser(r, false, charset.NewReaderLabel)
	index := make(map[string][]string)
	skipped := 0

	for {
		event, err := p.Next()
		if err != nil {
			return nil, &InputFormatError{Source: SourceXML, Index: -1, Err: err}
		}
		if event == xpp.EndDocument {
			break
		}
		if event != xpp.StartTag || p.Name != annotationTag {
			continue
		}

		cp := p.Attribute("cp")
		alternate := hasAttribute(p, "type")
		text, err := p.NextText()
		if err != nil {
			return nil, &InputFormatError{Source: SourceXML, Index: -1, Err: err}
		}
		if cp == "" {
			return nil, &InputFormatError{Source: SourceXML, Index: -1, Field: "cp", Err: errMissingCP}
		}
		if alternate {
			skipped++
			continue
		}
		if _, dup := index[cp]; dup {
			log.Debug().Str("cp", cp).Msg("Ignoring repeated annotation")
			continue
		}
		index[cp] = splitKeywords(text)
	}

	log.Debug().Int("annotations", len(index)).Int("alternates_skipped", skipped).Msg("Loaded annotations")
	return &Annotations{keywords: index}, nil
}

func hasAttribute(p *xpp.XMLPullParser, name string) bool {
	for _, attr := range p.Attrs {
		if attr.Name.Local == name {
			return true
		}
	}
	return false
}

func splitKeywords(text string) []string {
	parts := strings.Split(text, keywordSplitter)
	keywords := make([]string, 0, len(parts))
	for _, part := range parts {
		if kw := strings.TrimSpace(part); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}
