package dump

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxLineSize bounds a single dump line. It covers very wide --cols values.
const maxLineSize = 64 << 20

// Record is one decoded dump line.
type Record struct {
	// Offset is the parsed offset label. It is informational only and is
	// zero when the label is not a hex number.
	Offset uint64
	Data   []byte
}

// ParseLine decodes a single non-blank dump line. The offset label and the
// ASCII field are not validated.
func ParseLine(line string) (Record, error) {
	label, rest, ok := strings.Cut(line, ":")
	if !ok {
		return Record{}, &FormatError{Kind: MissingOffsetSeparator, Text: line}
	}
	hexField, _, ok := strings.Cut(rest, "  ")
	if !ok {
		return Record{}, &FormatError{Kind: MissingFieldSeparator, Text: line}
	}

	digits := stripSpace(hexField)
	if len(digits)%2 != 0 {
		return Record{}, &FormatError{Kind: OddHexLength, Text: line}
	}

	data := make([]byte, len(digits)/2)
	for i := 0; i < len(digits); i += 2 {
		pair := digits[i : i+2]
		if _, err := hex.Decode(data[i/2:i/2+1], []byte(pair)); err != nil {
			return Record{}, &FormatError{Kind: InvalidHexDigit, Text: line, Substring: pair}
		}
	}

	rec := Record{Data: data}
	if off, err := strconv.ParseUint(strings.TrimSpace(label), 16, 64); err == nil {
		rec.Offset = off
	}
	return rec, nil
}

// stripSpace drops ASCII whitespace and keeps every other byte as is, so
// invalid UTF-8 in the hex field is reported unchanged.
func stripSpace(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case ' ', '\t', '\n', '\v', '\f', '\r':
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// Decoder reads dump records from a stream of text lines.
type Decoder struct {
	scanner *bufio.Scanner
	line    int
}

func NewDecoder(r io.Reader) *Decoder {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Decoder{scanner: scanner}
}

// Next returns the next record, skipping blank lines. It returns io.EOF once
// the input is exhausted.
func (d *Decoder) Next() (Record, error) {
	for d.scanner.Scan() {
		d.line++
		text := d.scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		rec, err := ParseLine(text)
		if err != nil {
			var fe *FormatError
			if errors.As(err, &fe) {
				fe.Line = d.line
			}
			return Record{}, err
		}
		return rec, nil
	}
	if err := d.scanner.Err(); err != nil {
		return Record{}, fmt.Errorf("read dump: %w", err)
	}
	return Record{}, io.EOF
}

// Line returns the number of lines consumed so far.
func (d *Decoder) Line() int {
	return d.line
}

// Decode reconstructs the bytes of a dump. Any malformed line aborts the
// whole decode and no partial result is returned.
//
// Hex digits are read strictly left to right, so dumps written with
// LittleEndian or a reordering group size decode to a group-wise permutation
// of the original bytes.
func Decode(r io.Reader) ([]byte, error) {
	d := NewDecoder(r)
	out := make([]byte, 0)
	for {
		rec, err := d.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, rec.Data...)
	}
}

func DecodeString(s string) ([]byte, error) {
	return Decode(strings.NewReader(s))
}
