package dump

// Window is the half-open range [Start, End) of a buffer selected by seek and length.
type Window struct {
	Start int
	End   int
}

func (w Window) Len() int {
	return w.End - w.Start
}

// SelectWindow clamps seek and length to a buffer of n bytes. A negative seek
// counts back from the end and a negative length means "until the end".
// It never fails: out of range values are clamped to the buffer bounds.
func SelectWindow(n int, seek, length int64) Window {
	size := int64(n)

	var start int64
	if seek >= 0 {
		start = min(seek, size)
	} else {
		back := size
		// compare without negating seek, -math.MinInt64 overflows
		if seek > -size {
			back = -seek
		}
		start = size - back
	}

	end := size
	if length >= 0 && length < size-start {
		end = start + length
	}
	return Window{Start: int(start), End: int(end)}
}

func lineCount(n, cols int) int {
	if n <= 0 {
		return 0
	}
	return (n-1)/cols + 1
}
