package dump

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"
)

const hexDigits = "0123456789abcdef"

// Painter decorates the rendered text of a single byte, for example with
// terminal colours. It must not change the visible width of text.
type Painter func(b byte, text string) string

// Line is one record of a dump.
type Line struct {
	// Offset is the index of the first byte of Data in the un-windowed buffer.
	Offset int
	Data   []byte
	Hex    string
	ASCII  string
}

func (l Line) String() string {
	return fmt.Sprintf("%08x: %s  %s", l.Offset, l.Hex, l.ASCII)
}

// Option configures an Encoder.
type Option func(*Encoder)

// WithPainter makes the Encoder decorate every rendered byte with p.
func WithPainter(p Painter) Option {
	return func(e *Encoder) {
		e.paint = p
	}
}

// Encoder renders byte buffers as dump lines. It holds no per-buffer state
// and is safe for concurrent use.
type Encoder struct {
	cfg   Config
	paint Painter
}

// NewEncoder validates cfg and returns an Encoder for it.
func NewEncoder(cfg Config, opts ...Option) (*Encoder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Encoder{cfg: cfg}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

func (e *Encoder) Config() Config {
	return e.cfg
}

// Window returns the part of data that will be dumped.
func (e *Encoder) Window(data []byte) Window {
	return SelectWindow(len(data), e.cfg.Seek, e.cfg.Length)
}

// Lines yields one Line per Cols-sized chunk of the window, in offset order.
// The sequence can be ranged over any number of times.
func (e *Encoder) Lines(data []byte) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		w := e.Window(data)
		width := e.alignWidth(w)
		for start := w.Start; start < w.End; {
			end := start + min(e.cfg.Cols, w.End-start)
			if !yield(e.line(data, start, end, width)) {
				return
			}
			start = end
		}
	}
}

// Encode renders the whole window of data.
func (e *Encoder) Encode(data []byte) []string {
	w := e.Window(data)
	out := make([]string, 0, lineCount(w.Len(), e.cfg.Cols))
	for l := range e.Lines(data) {
		out = append(out, l.String())
	}
	return out
}

// Dump writes the rendered window of data to w, one line per record.
func (e *Encoder) Dump(w io.Writer, data []byte) error {
	bw := bufio.NewWriter(w)
	for l := range e.Lines(data) {
		if _, err := fmt.Fprintln(bw, l.String()); err != nil {
			return fmt.Errorf("write dump line %08x: %w", l.Offset, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush dump: %w", err)
	}
	return nil
}

// alignWidth is the hex field width short lines are padded to, 0 without Align.
// No line of w is longer than min(Cols, w.Len()) bytes.
func (e *Encoder) alignWidth(w Window) int {
	if !e.cfg.Align {
		return 0
	}
	return hexWidth(min(e.cfg.Cols, w.Len()), e.cfg.groupSize())
}

func (e *Encoder) line(data []byte, start, end, width int) Line {
	chunk := data[start:end]
	size := e.cfg.groupSize()

	hex := formatGroups(chunk, size, e.cfg.LittleEndian, e.paint)
	if pad := width - hexWidth(len(chunk), size); pad > 0 {
		hex += strings.Repeat(" ", pad)
	}

	return Line{
		Offset: start,
		Data:   chunk,
		Hex:    hex,
		ASCII:  renderASCII(chunk, e.paint),
	}
}

// Encode renders data with cfg. It is a shorthand for NewEncoder followed by Encoder.Encode.
func Encode(data []byte, cfg Config) ([]string, error) {
	e, err := NewEncoder(cfg)
	if err != nil {
		return nil, err
	}
	return e.Encode(data), nil
}

// FormatGroups renders chunk as space separated groups of groupSize bytes,
// each byte as two lowercase hex digits. A groupSize of 0 means 16. With
// littleEndian the bytes of each group are reversed.
func FormatGroups(chunk []byte, groupSize int, littleEndian bool) string {
	return formatGroups(chunk, normalizeGroupSize(groupSize), littleEndian, nil)
}

func formatGroups(chunk []byte, size int, littleEndian bool, paint Painter) string {
	var sb strings.Builder
	sb.Grow(hexWidth(len(chunk), size))

	for rest := chunk; len(rest) > 0; {
		if len(rest) < len(chunk) {
			sb.WriteByte(' ')
		}
		group := rest[:min(size, len(rest))]
		rest = rest[len(group):]
		for i := range group {
			b := group[i]
			if littleEndian {
				b = group[len(group)-1-i]
			}
			writeHexByte(&sb, b, paint)
		}
	}
	return sb.String()
}

func writeHexByte(sb *strings.Builder, b byte, paint Painter) {
	if paint == nil {
		sb.WriteByte(hexDigits[b>>4])
		sb.WriteByte(hexDigits[b&0x0f])
		return
	}
	sb.WriteString(paint(b, string([]byte{hexDigits[b>>4], hexDigits[b&0x0f]})))
}

// hexWidth is the visible width of n bytes rendered in groups of size.
func hexWidth(n, size int) int {
	if n <= 0 {
		return 0
	}
	return 2*n + lineCount(n, size) - 1
}

// IsPrintable reports whether b is rendered as itself in the ASCII field.
func IsPrintable(b byte) bool {
	return b >= 32 && b <= 126
}

// RenderASCII renders each byte of chunk as itself when printable and as '.'
// otherwise. The result has exactly len(chunk) characters.
func RenderASCII(chunk []byte) string {
	return renderASCII(chunk, nil)
}

func renderASCII(chunk []byte, paint Painter) string {
	var sb strings.Builder
	sb.Grow(len(chunk))
	for _, b := range chunk {
		c := byte('.')
		if IsPrintable(b) {
			c = b
		}
		if paint == nil {
			sb.WriteByte(c)
		} else {
			sb.WriteString(paint(b, string(c)))
		}
	}
	return sb.String()
}
