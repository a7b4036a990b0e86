package issue

import (
	"strings"
	"unicode"
)

// Segment is a run of message text. Code segments came from back-tick
// quoted parts and are rendered differently.
type Segment struct {
	Text string
	Code bool
}

// ParseMessage splits msg on back-tick pairs. An unmatched back-tick and an
// empty pair stay as plain text.
func ParseMessage(msg string) []Segment {
	var out []Segment
	rest := msg
	for {
		open := strings.IndexByte(rest, '`')
		if open < 0 {
			break
		}
		closeAt := strings.IndexByte(rest[open+1:], '`')
		if closeAt < 0 {
			break
		}
		closeAt += open + 1
		if closeAt == open+1 {
			// "``" is not a code span; keep both ticks as text.
			out = appendText(out, rest[:closeAt+1])
			rest = rest[closeAt+1:]
			continue
		}
		out = appendText(out, rest[:open])
		out = append(out, Segment{Text: rest[open+1 : closeAt], Code: true})
		rest = rest[closeAt+1:]
	}
	out = appendText(out, rest)
	if len(out) == 0 {
		out = append(out, Segment{Text: msg})
	}
	return out
}

func appendText(out []Segment, s string) []Segment {
	if s == "" {
		return out
	}
	if n := len(out); n > 0 && !out[n-1].Code {
		out[n-1].Text += s
		return out
	}
	return append(out, Segment{Text: s})
}

// RuleTitle turns a PascalCase rule name into words: "LongSentences" becomes
// "Long Sentences", "URLChecker" becomes "URL Checker".
func RuleTitle(name string) string {
	r := []rune(name)
	var b strings.Builder
	for i, c := range r {
		if i > 0 && unicode.IsUpper(c) {
			prev := r[i-1]
			nextLower := i+1 < len(r) && unicode.IsLower(r[i+1])
			if unicode.IsLower(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte(' ')
			}
		}
		b.WriteRune(c)
	}
	return strings.TrimSpace(b.String())
}
