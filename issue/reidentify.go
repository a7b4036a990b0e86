package issue

// Reidentify finds the issue in candidates that most likely is prev after a
// re-analysis: same kind and problem text, closest start offset. Ties go to
// the earlier candidate.
func Reidentify(prev Issue, candidates []Issue) (Issue, bool) {
	best := -1
	bestDist := 0
	for i, c := range candidates {
		if c.Kind != prev.Kind || c.ProblemText != prev.ProblemText {
			continue
		}
		d := c.Span.Start - prev.Span.Start
		if d < 0 {
			d = -d
		}
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return Issue{}, false
	}
	return candidates[best], true
}
