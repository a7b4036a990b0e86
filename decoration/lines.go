package decoration

// LineSpan is the part of a decoration that falls on one line, in rune
// columns [StartCol, EndCol).
type LineSpan struct {
	StartCol int
	EndCol   int
	Index    int // into Set.Items()
}

// Lines splits the set along the lines of text. Result i holds the spans on
// line i. Empty decorations and ranges past the end of text are dropped;
// overlapping ranges are all reported.
func Lines(s Set, text string) [][]LineSpan {
	starts := []int{0}
	n := 0
	for _, r := range text {
		n++
		if r == '\n' {
			starts = append(starts, n)
		}
	}
	out := make([][]LineSpan, len(starts))

	for idx, d := range s.items {
		if d.Span.Empty() {
			continue
		}
		sp := d.Span.Clamp(n)
		if sp.Empty() {
			continue
		}
		row := lineOf(starts, sp.Start)
		for ; row < len(starts) && starts[row] < sp.End; row++ {
			lineStart := starts[row]
			lineEnd := n
			if row+1 < len(starts) {
				lineEnd = starts[row+1] - 1
			}
			from := max(sp.Start, lineStart) - lineStart
			to := min(sp.End, lineEnd) - lineStart
			if to > from {
				out[row] = append(out[row], LineSpan{StartCol: from, EndCol: to, Index: idx})
			}
		}
	}
	return out
}

func lineOf(starts []int, off int) int {
	lo, hi := 0, len(starts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if starts[mid] <= off {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}
