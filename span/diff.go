package span

// Diff returns the smallest single edit turning before into after: the
// common prefix is grown first, then the common suffix over what remains.
// changed is false when the texts are equal.
func Diff(before, after string) (d Delta, inserted string, changed bool) {
	if before == after {
		return Delta{}, "", false
	}
	a := []rune(before)
	b := []rune(after)

	limit := len(a)
	if len(b) < limit {
		limit = len(b)
	}
	prefix := 0
	for prefix < limit && a[prefix] == b[prefix] {
		prefix++
	}

	suffix := 0
	for suffix < limit-prefix && a[len(a)-1-suffix] == b[len(b)-1-suffix] {
		suffix++
	}

	d = Delta{
		From:     prefix,
		To:       len(a) - suffix,
		Inserted: len(b) - suffix - prefix,
	}
	return d, string(b[prefix : len(b)-suffix]), true
}

// Apply performs d on text, inserting ins. Offsets are clamped to the text.
func Apply(text string, d Delta, ins string) string {
	r := []rune(text)
	d = Normalize(d)
	from := clampInt(d.From, 0, len(r))
	to := clampInt(d.To, from, len(r))
	out := make([]rune, 0, len(r)-(to-from)+len(ins))
	out = append(out, r[:from]...)
	out = append(out, []rune(ins)...)
	out = append(out, r[to:]...)
	return string(out)
}
