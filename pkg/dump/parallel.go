package dump

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// linesPerBatch is the number of lines one worker renders before picking up
// the next batch.
const linesPerBatch = 512

// EncodeParallel renders the window of data like Encode, spreading batches of
// lines over up to workers goroutines. Lines are returned in offset order.
func (e *Encoder) EncodeParallel(ctx context.Context, data []byte, workers int) ([]string, error) {
	if workers <= 1 {
		return e.Encode(data), nil
	}

	w := e.Window(data)
	cols := e.cfg.Cols
	out := make([]string, lineCount(w.Len(), cols))
	width := e.alignWidth(w)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for first := 0; first < len(out); first += linesPerBatch {
		last := min(first+linesPerBatch, len(out))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := first; i < last; i++ {
				// i*cols < w.Len() for every line index
				start := w.Start + i*cols
				end := start + min(cols, w.End-start)
				out[i] = e.line(data, start, end, width).String()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
