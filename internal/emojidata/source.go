package emojidata

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

// Input sources named in InputFormatError.
const (
	SourceJSON = "emoji json"
	SourceXML  = "annotations xml"
)

// Decode modes.
const (
	ModeBulk   = "bulk"
	ModeStream = "stream"
)

// Visitor receives records in input order. Returning an error stops decoding.
type Visitor func(index int, rec *Record) error

// BulkDecoder parses the whole JSON array before visiting any record.
type BulkDecoder struct{}

// StreamDecoder parses one array element at a time, keeping a single record in memory.
type StreamDecoder struct{}

// Mode reports "bulk".
func (BulkDecoder) Mode() string { return ModeBulk }

// Records reads r to the end and visits every record.
func (BulkDecoder) Records(ctx context.Context, r io.Reader, visit Visitor) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading %s: %w", SourceJSON, err)
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return &InputFormatError{Source: SourceJSON, Index: -1, Err: err}
	}
	if records == nil {
		return &InputFormatError{Source: SourceJSON, Index: -1, Err: errNotArray}
	}
	log.Debug().Int("records", len(records)).Msg("Parsed emoji document")

	for i := range records {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := records[i].Validate(i); err != nil {
			return err
		}
		if err := visit(i, &records[i]); err != nil {
			return err
		}
	}
	return nil
}

// Mode reports "stream".
func (StreamDecoder) Mode() string { return ModeStream }

var (
	errNotArray      = errors.New("top-level value is not an array")
	errTrailingData  = errors.New("unexpected data after top-level array")
	errMissingComma  = errors.New("expected ',' or ']' after array element")
	errTrailingComma = errors.New("trailing ',' before ']'")
	errUnexpectedEnd = errors.New("unexpected end of input")
)

// Records decodes r element by element. The decoder only parses single values, so
// the array brackets and separators are checked here.
func (StreamDecoder) Records(ctx context.Context, r io.Reader, visit Visitor) error {
	src := &pushbackReader{r: bufio.NewReader(r)}
	formatErr := func(index int, err error) error {
		return &InputFormatError{Source: SourceJSON, Index: index, Err: err}
	}

	open, err := src.nextNonSpace()
	if err != nil {
		return formatErr(-1, err)
	}
	if open != '[' {
		return formatErr(-1, errNotArray)
	}

	next, err := src.nextNonSpace()
	if err != nil {
		return formatErr(-1, err)
	}
	index := 0
	if next != ']' {
		src.unread([]byte{next})
		for {
			if err := ctx.Err(); err != nil {
				return err
			}
			dec := json.NewDecoder(src)
			var rec Record
			if err := dec.Decode(&rec); err != nil {
				return formatErr(index, err)
			}
			if err := src.reclaim(dec.Buffered()); err != nil {
				return fmt.Errorf("reading %s: %w", SourceJSON, err)
			}
			if err := rec.Validate(index); err != nil {
				return err
			}
			if err := visit(index, &rec); err != nil {
				return err
			}
			index++

			sep, err := src.nextNonSpace()
			if err != nil {
				return formatErr(index-1, err)
			}
			if sep == ']' {
				break
			}
			if sep != ',' {
				return formatErr(index-1, errMissingComma)
			}
			after, err := src.nextNonSpace()
			if err != nil {
				return formatErr(index-1, err)
			}
			if after == ']' {
				return formatErr(index-1, errTrailingComma)
			}
			src.unread([]byte{after})
		}
	}

	if _, err := src.nextNonSpace(); err != errUnexpectedEnd {
		if err == nil {
			err = errTrailingData
		}
		return formatErr(-1, err)
	}
	log.Debug().Int("records", index).Msg("Streamed emoji document")
	return nil
}

// pushbackReader lets bytes read ahead by a per-element decoder be returned to
// the stream.
type pushbackReader struct {
	pending []byte
	r       io.Reader
	one     [1]byte
}

func (p *pushbackReader) Read(b []byte) (int, error) {
	if len(p.pending) > 0 {
		n := copy(b, p.pending)
		p.pending = p.pending[n:]
		return n, nil
	}
	return p.r.Read(b)
}

func (p *pushbackReader) unread(b []byte) {
	p.pending = append(append([]byte(nil), b...), p.pending...)
}

// reclaim pushes back whatever a decoder buffered but did not consume.
func (p *pushbackReader) reclaim(buffered io.Reader) error {
	rest, err := io.ReadAll(buffered)
	if err != nil {
		return err
	}
	p.unread(rest)
	return nil
}

// nextNonSpace returns the next byte that is not JSON whitespace. At the end of
// input it returns errUnexpectedEnd.
func (p *pushbackReader) nextNonSpace() (byte, error) {
	for {
		n, err := p.Read(p.one[:])
		if n == 1 {
			switch c := p.one[0]; c {
			case ' ', '\t', '\n', '\r':
				continue
			default:
				return c, nil
			}
		}
		if err == io.EOF {
			return 0, errUnexpectedEnd
		}
		if err != nil {
			return 0, err
		}
	}
}
