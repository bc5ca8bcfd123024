package dump

import (
	"errors"
	"fmt"
)

// ErrorKind identifies why a dump line could not be decoded.
type ErrorKind int

const (
	MissingOffsetSeparator ErrorKind = iota + 1
	MissingFieldSeparator
	OddHexLength
	InvalidHexDigit
)

var (
	ErrMissingOffsetSeparator = errors.New("missing ':' after offset")
	ErrMissingFieldSeparator  = errors.New("missing double space between hex and ascii fields")
	ErrOddHexLength           = errors.New("odd number of hex digits")
	ErrInvalidHexDigit        = errors.New("invalid hex digit")
)

func (k ErrorKind) String() string {
	switch k {
	case MissingOffsetSeparator:
		return "MissingOffsetSeparator"
	case MissingFieldSeparator:
		return "MissingFieldSeparator"
	case OddHexLength:
		return "OddHexLength"
	case InvalidHexDigit:
		return "InvalidHexDigit"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case MissingOffsetSeparator:
		return ErrMissingOffsetSeparator
	case MissingFieldSeparator:
		return ErrMissingFieldSeparator
	case OddHexLength:
		return ErrOddHexLength
	case InvalidHexDigit:
		return ErrInvalidHexDigit
	default:
		return nil
	}
}

// FormatError reports a line that does not follow the dump grammar. It
// unwraps to one of the Err* sentinels matching Kind.
type FormatError struct {
	Kind ErrorKind
	// Line is the 1-based line number, 0 when the line was decoded on its own.
	Line int
	// Text is the offending line.
	Text string
	// Substring is the offending hex pair for InvalidHexDigit.
	Substring string
}

func (e *FormatError) Error() string {
	msg := e.Kind.String()
	if sentinel := e.Kind.sentinel(); sentinel != nil {
		msg = sentinel.Error()
	}
	if e.Kind == InvalidHexDigit {
		msg = fmt.Sprintf("%s %q", msg, e.Substring)
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %q", e.Line, msg, e.Text)
	}
	return fmt.Sprintf("%s: %q", msg, e.Text)
}

func (e *FormatError) Unwrap() error {
	return e.Kind.sentinel()
}
