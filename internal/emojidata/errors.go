package emojidata

import "fmt"

// DecodeError reports a codepoint sequence that does not decode to Unicode scalar values.
type DecodeError struct {
	Sequence string
	Token    string
	Err      error
}

func (e *DecodeError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("decoding codepoint sequence %q: %v", e.Sequence, e.Err)
	}
	return fmt.Sprintf("decoding codepoint sequence %q: token %q: %v", e.Sequence, e.Token, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// CategoryError reports a source category that has no canonical group.
type CategoryError struct {
	Category  string
	ShortName string
}

func (e *CategoryError) Error() string {
	return fmt.Sprintf("record %q: unrecognized category %q", e.ShortName, e.Category)
}

// DuplicateKeyError reports a short name seen more than once in the input.
type DuplicateKeyError struct {
	ShortName string
	First     int // index of the first record carrying ShortName
	Index     int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate short name %q at record %d (first defined at record %d)", e.ShortName, e.Index, e.First)
}

// InputFormatError reports malformed JSON or XML structure, or a missing required field.
// Index is -1 when the problem is not tied to a single record.
type InputFormatError struct {
	Source string // "emoji json" or "annotations xml"
	Index  int
	Field  string
	Err    error
}

func (e *InputFormatError) Error() string {
	switch {
	case e.Index >= 0 && e.Field != "":
		return fmt.Sprintf("%s: record %d: field %q: %v", e.Source, e.Index, e.Field, e.Err)
	case e.Index >= 0:
		return fmt.Sprintf("%s: record %d: %v", e.Source, e.Index, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Source, e.Err)
	}
}

func (e *InputFormatError) Unwrap() error { return e.Err }
