package lint

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/iw2rmb/lintmark/issue"
	"github.com/iw2rmb/lintmark/settings"
)

const (
	maxEditDistance = 2
	maxSuggestions  = 3
)

type SpellCheck struct{}

func (SpellCheck) Name() string         { return "SpellCheck" }
func (SpellCheck) DefaultEnabled() bool { return true }
func (SpellCheck) Description() string {
	return "Flags unknown words and spellings from another dialect."
}

func (SpellCheck) Check(d *Document) []issue.Raw {
	var out []issue.Raw
	starts := d.sentenceStarts()
	for i, w := range d.Words {
		word := stripPossessive(strings.ReplaceAll(w.Text, "’", "'"))
		if skipSpelling(word, starts[i]) {
			continue
		}
		if want, ok := dialectVariant(strings.ToLower(word), d.Dialect); ok {
			fixed := matchCase(want, word)
			out = append(out, raw(w.Span, "Spelling",
				fmt.Sprintf("Use the %s spelling `%s`.", d.Dialect, fixed),
				w.Text, issue.Replace(fixed)))
			continue
		}
		if d.Known(word) || isVariant(strings.ToLower(word)) {
			continue
		}
		cands := d.words.nearest(strings.ToLower(word), maxEditDistance, maxSuggestions)
		if len(cands) == 0 && !d.strict {
			continue
		}
		sugg := make([]issue.Suggestion, 0, len(cands))
		for _, c := range cands {
			sugg = append(sugg, issue.Replace(matchCase(c, word)))
		}
		out = append(out, raw(w.Span, "Spelling",
			fmt.Sprintf("Did you mean to spell `%s` this way?", w.Text),
			w.Text, sugg...))
	}
	return out
}

// skipSpelling leaves out numbers, acronyms and capitalized words in the
// middle of a sentence, which are usually names.
func skipSpelling(w string, sentenceStart bool) bool {
	if len([]rune(w)) < 2 || isAllCaps(w) {
		return true
	}
	for _, r := range w {
		if unicode.IsDigit(r) {
			return true
		}
	}
	first := []rune(w)[0]
	return unicode.IsUpper(first) && !sentenceStart
}

func stripPossessive(w string) string {
	lw := strings.ToLower(w)
	if strings.HasSuffix(lw, "'s") && len(w) > 2 {
		return w[:len(w)-2]
	}
	return w
}

// variant is one word spelled differently across dialects.
type variant struct {
	us, gb string
	// caGB marks words where Canadian follows the British spelling.
	caGB bool
}

var variants = []variant{
	{"color", "colour", true},
	{"colors", "colours", true},
	{"favorite", "favourite", true},
	{"honor", "honour", true},
	{"neighbor", "neighbour", true},
	{"behavior", "behaviour", true},
	{"labor", "labour", true},
	{"humor", "humour", true},
	{"flavor", "flavour", true},
	{"center", "centre", true},
	{"theater", "theatre", true},
	{"meter", "metre", true},
	{"fiber", "fibre", true},
	{"gray", "grey", false},
	{"organize", "organise", false},
	{"organization", "organisation", false},
	{"realize", "realise", false},
	{"recognize", "recognise", false},
	{"analyze", "analyse", false},
	{"apologize", "apologise", false},
	{"catalog", "catalogue", true},
	{"dialog", "dialogue", true},
	{"defense", "defence", true},
	{"license", "licence", true},
	{"traveled", "travelled", true},
	{"traveling", "travelling", true},
	{"canceled", "cancelled", true},
	{"jewelry", "jewellery", true},
	{"program", "programme", false},
	{"tire", "tyre", false},
	{"aluminum", "aluminium", false},
	{"mom", "mum", false},
}

var variantIndex = func() map[string]int {
	m := make(map[string]int, 2*len(variants))
	for i, v := range variants {
		m[v.us] = i
		m[v.gb] = i
	}
	return m
}()

func isVariant(lw string) bool {
	_, ok := variantIndex[lw]
	return ok
}

// dialectVariant returns the preferred spelling when lw is the other
// dialect's form.
func dialectVariant(lw string, d settings.Dialect) (string, bool) {
	i, ok := variantIndex[lw]
	if !ok {
		return "", false
	}
	v := variants[i]
	want := v.us
	switch d {
	case settings.DialectBritish, settings.DialectAustralian:
		want = v.gb
	case settings.DialectCanadian:
		if v.caGB {
			want = v.gb
		}
	}
	if lw == want {
		return "", false
	}
	return want, true
}

// editDistance is the optimal string alignment distance between a and b,
// giving up once it exceeds maxDist.
func editDistance(a, b []rune, maxDist int) int {
	if d := len(a) - len(b); d > maxDist || -d > maxDist {
		return maxDist + 1
	}
	prev2 := make([]int, len(b)+1)
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		best := cur[0]
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			v := min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				v = min(v, prev2[j-2]+1)
			}
			cur[j] = v
			best = min(best, v)
		}
		if best > maxDist {
			return maxDist + 1
		}
		prev2, prev, cur = prev, cur, prev2
	}
	return prev[len(b)]
}
