package emojidata

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

// CodepointSeparator joins the hexadecimal codepoints of a unified sequence.
const CodepointSeparator = "-"

var (
	errEmptySequence = errors.New("empty sequence")
	errEmptyToken    = errors.New("empty token")
	errNotScalar     = errors.New("not a Unicode scalar value")
)

// Decode converts a dash-joined hexadecimal codepoint sequence such as "0031-20E3"
// into the glyph it renders as.
func Decode(sequence string) (string, error) {
	if sequence == "" {
		return "", &DecodeError{Sequence: sequence, Err: errEmptySequence}
	}

	var sb strings.Builder
	for _, token := range strings.Split(sequence, CodepointSeparator) {
		if token == "" {
			return "", &DecodeError{Sequence: sequence, Err: errEmptyToken}
		}
		v, err := strconv.ParseUint(token, 16, 32)
		if err != nil {
			return "", &DecodeError{Sequence: sequence, Token: token, Err: err}
		}
		r := rune(v)
		if !utf8.ValidRune(r) {
			return "", &DecodeError{Sequence: sequence, Token: token, Err: errNotScalar}
		}
		sb.WriteRune(r)
	}
	return sb.String(), nil
}
