package span

import "fmt"

// Span is a half-open range [Start, End) of rune offsets.
type Span struct {
	Start int
	End   int
}

func (s Span) Len() int { return s.End - s.Start }

// Empty reports whether the span covers no runes. A span that was non-empty
// when an issue was produced and is empty now was deleted by an edit.
func (s Span) Empty() bool { return s.Start == s.End }

// Contains reports whether pos touches the span. The end is inclusive so a
// cursor placed right after a word still hits it.
func (s Span) Contains(pos int) bool {
	return s.Start <= pos && pos <= s.End
}

// Valid reports whether 0 <= Start <= End <= n.
func (s Span) Valid(n int) bool {
	return s.Start >= 0 && s.Start <= s.End && s.End <= n
}

// Clamp forces the span into [0, n] and fixes reversed bounds.
func (s Span) Clamp(n int) Span {
	if n < 0 {
		n = 0
	}
	s.Start = clampInt(s.Start, 0, n)
	s.End = clampInt(s.End, 0, n)
	if s.End < s.Start {
		s.Start, s.End = s.End, s.Start
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
