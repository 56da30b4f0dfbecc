package formatter

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/haytac/elm-emoji-gen/pkg/interfaces"
)

// elmString renders s as an Elm string literal.
func elmString(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if unicode.IsControl(r) {
				fmt.Fprintf(&sb, `\u{%04X}`, r)
			} else {
				sb.WriteRune(r)
			}
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// elmList renders a list of string literals, "[]" when empty.
func elmList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = elmString(item)
	}
	return "[ " + strings.Join(quoted, ", ") + " ]"
}

func elmSkinVariations(variants []interfaces.SkinVariant) string {
	if len(variants) == 0 {
		return "Dict.fromList []"
	}
	pairs := make([]string, len(variants))
	for i, v := range variants {
		pairs[i] = fmt.Sprintf("( %s, %s )", elmString(v.Name), elmString(v.Native))
	}
	return "Dict.fromList [ " + strings.Join(pairs, ", ") + " ]"
}

func elmMaybeString(s *string) string {
	if s == nil {
		return "Nothing"
	}
	return "Just " + elmString(*s)
}

// entryLiteral renders one ( shortName, Emoji ) tuple of emojiDict.
func entryLiteral(e interfaces.Entry) string {
	return fmt.Sprintf(
		"( %s, { name = %s, native = %s, sortOrder = %d, skinVariations = %s, keywords = %s, imgUrl = %s } )",
		elmString(e.ShortName),
		elmString(e.Name),
		elmString(e.Native),
		e.SortOrder,
		elmSkinVariations(e.SkinVariations),
		elmList(e.Keywords),
		elmMaybeString(e.ImgURL),
	)
}
