package lint

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iw2rmb/lintmark/issue"
	"github.com/iw2rmb/lintmark/span"
)

// Rule finds one class of problem.
type Rule interface {
	// Name is the PascalCase key used in the rule config.
	Name() string
	Description() string
	DefaultEnabled() bool
	Check(d *Document) []issue.Raw
}

// LongSentenceWords is the longest sentence LongSentences accepts.
const LongSentenceWords = 40

// DefaultRules returns every built-in rule in reporting order.
func DefaultRules() []Rule {
	return []Rule{
		SpellCheck{},
		RepeatedWords{},
		SentenceCapitalization{},
		AnA{},
		Spaces{},
		LongSentences{Max: LongSentenceWords},
		CommaBeforeBut{},
	}
}

func raw(s span.Span, kind, msg, problem string, sugg ...issue.Suggestion) issue.Raw {
	return issue.Raw{Span: s, Kind: kind, Message: msg, Suggestions: sugg, ProblemText: problem}
}

type RepeatedWords struct{}

func (RepeatedWords) Name() string         { return "RepeatedWords" }
func (RepeatedWords) DefaultEnabled() bool { return true }
func (RepeatedWords) Description() string {
	return "Flags a word written twice in a row."
}

// Check reports the second occurrence together with the space before it, so
// removing the span leaves a single word.
func (RepeatedWords) Check(d *Document) []issue.Raw {
	var out []issue.Raw
	for i := 1; i < len(d.Words); i++ {
		prev, cur := d.Words[i-1], d.Words[i]
		if !strings.EqualFold(prev.Text, cur.Text) || !d.onlySpaceBetween(prev.Span.End, cur.Span.Start) {
			continue
		}
		if prev.Span.End == cur.Span.Start {
			continue
		}
		s := span.Span{Start: prev.Span.End, End: cur.Span.End}
		out = append(out, raw(s, "Repetition",
			fmt.Sprintf("Did you mean to repeat `%s`?", cur.Text),
			d.Slice(s), issue.Remove()))
	}
	return out
}

type SentenceCapitalization struct{}

func (SentenceCapitalization) Name() string         { return "SentenceCapitalization" }
func (SentenceCapitalization) DefaultEnabled() bool { return true }
func (SentenceCapitalization) Description() string {
	return "Sentences should start with a capital letter."
}

func (SentenceCapitalization) Check(d *Document) []issue.Raw {
	var out []issue.Raw
	starts := d.sentenceStarts()
	for i, w := range d.Words {
		if !starts[i] {
			continue
		}
		r, size := utf8.DecodeRuneInString(w.Text)
		if !unicode.IsLower(r) {
			continue
		}
		fixed := string(unicode.ToUpper(r)) + w.Text[size:]
		out = append(out, raw(w.Span, "Capitalization",
			"This sentence does not start with a capital letter.",
			w.Text, issue.Replace(fixed)))
	}
	return out
}

type AnA struct{}

func (AnA) Name() string         { return "AnA" }
func (AnA) DefaultEnabled() bool { return true }
func (AnA) Description() string {
	return "Chooses between `a` and `an` by the sound of the next word."
}

func (AnA) Check(d *Document) []issue.Raw {
	var out []issue.Raw
	for i := 0; i+1 < len(d.Words); i++ {
		art, next := d.Words[i], d.Words[i+1]
		la := strings.ToLower(art.Text)
		if la != "a" && la != "an" {
			continue
		}
		if !d.onlySpaceBetween(art.Span.End, next.Span.Start) {
			continue
		}
		want, ok := articleFor(next.Text)
		if !ok || want == la {
			continue
		}
		fixed := matchCase(want, art.Text)
		out = append(out, raw(art.Span, "Grammar",
			fmt.Sprintf("Use `%s` instead of `%s`.", fixed, art.Text),
			art.Text, issue.Replace(fixed)))
	}
	return out
}

var (
	anPrefixes = []string{"hour", "honest", "honor", "honour", "heir"}
	aPrefixes  = []string{"uni", "use", "usu", "uti", "eu", "one", "once", "ewe", "ur"}
)

// articleFor guesses the article for w by its first letters. Acronyms and
// numbers are skipped.
func articleFor(w string) (string, bool) {
	if w == "" || isAllCaps(w) {
		return "", false
	}
	lw := strings.ToLower(w)
	r, _ := utf8.DecodeRuneInString(lw)
	if !unicode.IsLetter(r) {
		return "", false
	}
	for _, p := range anPrefixes {
		if strings.HasPrefix(lw, p) {
			return "an", true
		}
	}
	for _, p := range aPrefixes {
		if strings.HasPrefix(lw, p) {
			return "a", true
		}
	}
	if strings.ContainsRune("aeiou", r) {
		return "an", true
	}
	return "a", true
}

type Spaces struct{}

func (Spaces) Name() string         { return "Spaces" }
func (Spaces) DefaultEnabled() bool { return true }
func (Spaces) Description() string {
	return "Flags runs of spaces between words."
}

// Check ignores indentation and trailing spaces.
func (Spaces) Check(d *Document) []issue.Raw {
	var out []issue.Raw
	rs := d.Runes
	for i := 0; i < len(rs); {
		if rs[i] != ' ' {
			i++
			continue
		}
		j := i
		for j < len(rs) && rs[j] == ' ' {
			j++
		}
		lead := i == 0 || rs[i-1] == '\n'
		trail := j == len(rs) || rs[j] == '\n'
		if n := j - i; n > 1 && !lead && !trail {
			out = append(out, raw(span.Span{Start: i, End: j}, "Formatting",
				fmt.Sprintf("There are %d spaces where there should be only one.", n),
				string(rs[i:j]), issue.Replace(" ")))
		}
		i = j
	}
	return out
}

type LongSentences struct{ Max int }

func (LongSentences) Name() string         { return "LongSentences" }
func (LongSentences) DefaultEnabled() bool { return true }
func (l LongSentences) Description() string {
	return fmt.Sprintf("Flags sentences longer than %d words.", l.Max)
}

func (l LongSentences) Check(d *Document) []issue.Raw {
	var out []issue.Raw
	wi := 0
	for _, s := range d.Sentences {
		n := 0
		for wi < len(d.Words) && d.Words[wi].Span.Start < s.Span.End {
			if d.Words[wi].Span.Start >= s.Span.Start {
				n++
			}
			wi++
		}
		if n > l.Max {
			out = append(out, raw(s.Span, "Readability",
				fmt.Sprintf("This sentence is %d words long.", n), s.Text))
		}
	}
	return out
}

type CommaBeforeBut struct{}

func (CommaBeforeBut) Name() string         { return "CommaBeforeBut" }
func (CommaBeforeBut) DefaultEnabled() bool { return true }
func (CommaBeforeBut) Description() string {
	return "Suggests a comma before `but` when it joins two clauses."
}

// Check wants at least two words of the sentence before `but`.
func (CommaBeforeBut) Check(d *Document) []issue.Raw {
	var out []issue.Raw
	starts := d.sentenceStarts()
	run := 0
	for i, w := range d.Words {
		if starts[i] {
			run = 0
		}
		if i > 0 && strings.EqualFold(w.Text, "but") && run >= 2 {
			prev := d.Words[i-1]
			if d.onlySpaceBetween(prev.Span.End, w.Span.Start) && prev.Span.End < w.Span.Start {
				out = append(out, raw(prev.Span, "Punctuation",
					"Consider a comma before `but` when it joins two clauses.",
					prev.Text, issue.InsertAfter(",")))
			}
		}
		run++
	}
	return out
}

func isAllCaps(w string) bool {
	letters := 0
	for _, r := range w {
		if unicode.IsLetter(r) {
			if !unicode.IsUpper(r) {
				return false
			}
			letters++
		}
	}
	return letters > 1
}

// matchCase gives w the capitalization style of like.
func matchCase(w, like string) string {
	switch {
	case like == "":
		return w
	case isAllCaps(like):
		return strings.ToUpper(w)
	}
	r, _ := utf8.DecodeRuneInString(like)
	if unicode.IsUpper(r) {
		f, size := utf8.DecodeRuneInString(w)
		return string(unicode.ToUpper(f)) + w[size:]
	}
	return w
}
