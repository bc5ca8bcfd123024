package app

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"

	"github.com/birdayz/cxxd/pkg/dump"
)

// Row is the JSON form of a dump line, used by --output json and json-each-row.
type Row struct {
	Offset int    `json:"offset"`
	Hex    string `json:"hex"`
	ASCII  string `json:"ascii"`
}

// RenderOptions are the presentation settings of a dump.
type RenderOptions struct {
	Format OutputFormat
	Color  bool
	// Jobs > 1 renders lines concurrently.
	Jobs int
}

// NewBytePainter returns a painter colouring each byte by class: NUL white,
// 0xff blue, whitespace yellow, other printable bytes green and everything
// else red. Colours are emitted even when stdout is not a terminal.
func NewBytePainter() dump.Painter {
	var (
		null        = color.New(color.FgWhite)
		full        = color.New(color.FgBlue)
		space       = color.New(color.FgYellow)
		printable   = color.New(color.FgGreen)
		unprintable = color.New(color.FgRed)
	)
	for _, c := range []*color.Color{null, full, space, printable, unprintable} {
		c.EnableColor()
	}

	return func(b byte, text string) string {
		switch {
		case b == 0x00:
			return null.Sprint(text)
		case b == 0xff:
			return full.Sprint(text)
		case b == ' ' || (b >= '\t' && b <= '\r'):
			return space.Sprint(text)
		case dump.IsPrintable(b):
			return printable.Sprint(text)
		default:
			return unprintable.Sprint(text)
		}
	}
}

// RenderDump encodes data with cfg and writes it to w in the requested format.
func (a *App) RenderDump(ctx context.Context, w io.Writer, data []byte, cfg dump.Config, opts RenderOptions) error {
	var encOpts []dump.Option
	if opts.Color && opts.Format != OutputFormatJSON && opts.Format != OutputFormatJSONEachRow {
		encOpts = append(encOpts, dump.WithPainter(NewBytePainter()))
	}
	enc, err := dump.NewEncoder(cfg, encOpts...)
	if err != nil {
		return err
	}

	win := enc.Window(data)
	a.Logf("dumping bytes [%d, %d) of %d, cols=%d group-size=%d little-endian=%v",
		win.Start, win.End, len(data), cfg.Cols, cfg.GroupSize, cfg.LittleEndian)

	switch opts.Format {
	case OutputFormatJSON, OutputFormatJSONEachRow:
		return writeRows(w, enc, data, opts)
	}

	if opts.Jobs <= 1 {
		return enc.Dump(w, data)
	}

	lines, err := enc.EncodeParallel(ctx, data, opts.Jobs)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return fmt.Errorf("write dump: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush dump: %w", err)
	}
	return nil
}

func writeRows(w io.Writer, enc *dump.Encoder, data []byte, opts RenderOptions) error {
	var pretty *prettyjson.Formatter
	if opts.Format == OutputFormatJSON {
		pretty = prettyjson.NewFormatter()
		pretty.DisabledColor = !opts.Color
	}

	bw := bufio.NewWriter(w)
	for line := range enc.Lines(data) {
		row := Row{Offset: line.Offset, Hex: line.Hex, ASCII: line.ASCII}

		var b []byte
		var err error
		if pretty != nil {
			b, err = pretty.Marshal(row)
		} else {
			b, err = json.Marshal(row)
		}
		if err != nil {
			return fmt.Errorf("marshal line %08x: %w", line.Offset, err)
		}
		if _, err := bw.Write(append(b, '\n')); err != nil {
			return fmt.Errorf("write dump: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush dump: %w", err)
	}
	return nil
}
