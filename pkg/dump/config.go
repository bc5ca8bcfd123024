package dump

import (
	"errors"
	"fmt"
)

const (
	DefaultCols = 16
	// DefaultGroupSize is used for big-endian dumps when no group size is given.
	DefaultGroupSize = 2
	// LittleEndianGroupSize is used instead of DefaultGroupSize for little-endian dumps.
	LittleEndianGroupSize = 4

	// GroupSize 0 renders this many bytes as one unbroken run.
	wholeGroupSize = 16
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid dump configuration")

// Config controls how a buffer is rendered. It is built once by the caller,
// validated, and passed by value into the Encoder.
type Config struct {
	// GroupSize is the number of bytes hex-joined without a separator.
	// 0 means 16.
	GroupSize int
	// Cols is the number of bytes per line.
	Cols int
	// LittleEndian reverses the byte order within each group.
	LittleEndian bool
	// Seek skips bytes from the start, or from the end when negative.
	Seek int64
	// Length caps the number of bytes dumped after Seek. Negative means no cap.
	Length int64
	// Align pads the hex field of short lines so the ASCII column lines up.
	Align bool
}

// DefaultConfig returns the big-endian configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		GroupSize: DefaultGroupSize,
		Cols:      DefaultCols,
		Length:    -1,
	}
}

func (c Config) Validate() error {
	if c.Cols <= 0 {
		return fmt.Errorf("%w: cols must be positive, got %d", ErrInvalidConfig, c.Cols)
	}
	if c.GroupSize < 0 {
		return fmt.Errorf("%w: group size must not be negative, got %d", ErrInvalidConfig, c.GroupSize)
	}
	return nil
}

func (c Config) groupSize() int {
	return normalizeGroupSize(c.GroupSize)
}

func normalizeGroupSize(n int) int {
	if n <= 0 {
		return wholeGroupSize
	}
	return n
}
