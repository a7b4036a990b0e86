package issue

import (
	"sort"

	"github.com/iw2rmb/lintmark/span"
)

// Store is the sorted set of issues currently shown. Issues are kept in
// ascending Span.Start order; ties keep analyzer order.
//
// Store is not safe for concurrent use. It lives on the UI update loop.
type Store struct {
	issues []Issue
}

func NewStore() *Store { return &Store{} }

// Replace swaps in a new issue set, dropping any id found in ignored.
func (s *Store) Replace(in []Issue, ignored *IgnoreSet) {
	next := make([]Issue, 0, len(in))
	for _, it := range in {
		if ignored.Has(it.ID) {
			continue
		}
		next = append(next, it)
	}
	sortIssues(next)
	s.issues = next
}

// Clear empties the store.
func (s *Store) Clear() { s.issues = nil }

// RemoveLocal drops the issue with id. It reports whether it was present.
func (s *Store) RemoveLocal(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.issues = append(s.issues[:i:i], s.issues[i+1:]...)
	return true
}

// FindAt returns the first non-stale issue whose span touches pos.
func (s *Store) FindAt(pos int) (Issue, bool) {
	for _, it := range s.issues {
		if it.Span.Start > pos {
			break
		}
		if it.Stale() {
			continue
		}
		if it.Span.Contains(pos) {
			return it, true
		}
	}
	return Issue{}, false
}

func (s *Store) FindByID(id string) (Issue, bool) {
	i := s.index(id)
	if i < 0 {
		return Issue{}, false
	}
	return s.issues[i], true
}

// Remap moves every span through d.
func (s *Store) Remap(d span.Delta) {
	if len(s.issues) == 0 {
		return
	}
	next := make([]Issue, len(s.issues))
	copy(next, s.issues)
	for i := range next {
		next[i].Span = span.Map(next[i].Span, d)
	}
	sortIssues(next)
	s.issues = next
}

// Next returns the issue after the one with id fromID, wrapping to the
// first. When fromID is not in the store it returns the first issue starting
// after cursor, again wrapping. Stale issues are skipped.
func (s *Store) Next(fromID string, cursor int) (Issue, bool) {
	n := len(s.issues)
	if i := s.index(fromID); i >= 0 {
		for k := 1; k <= n; k++ {
			if it := s.issues[(i+k)%n]; !it.Stale() {
				return it, true
			}
		}
		return Issue{}, false
	}
	for _, it := range s.issues {
		if it.Span.Start > cursor && !it.Stale() {
			return it, true
		}
	}
	return s.first(0, 1)
}

// Prev mirrors Next in the other direction.
func (s *Store) Prev(fromID string, cursor int) (Issue, bool) {
	n := len(s.issues)
	if i := s.index(fromID); i >= 0 {
		for k := 1; k <= n; k++ {
			if it := s.issues[(i-k+n)%n]; !it.Stale() {
				return it, true
			}
		}
		return Issue{}, false
	}
	for i := n - 1; i >= 0; i-- {
		if it := s.issues[i]; it.Span.Start < cursor && !it.Stale() {
			return it, true
		}
	}
	return s.first(n-1, -1)
}

// first walks from i in steps of step and returns the first live issue.
func (s *Store) first(i, step int) (Issue, bool) {
	for ; i >= 0 && i < len(s.issues); i += step {
		if !s.issues[i].Stale() {
			return s.issues[i], true
		}
	}
	return Issue{}, false
}

// Issues returns a copy of the sorted issue list.
func (s *Store) Issues() []Issue {
	if len(s.issues) == 0 {
		return nil
	}
	out := make([]Issue, len(s.issues))
	copy(out, s.issues)
	return out
}

func (s *Store) Len() int { return len(s.issues) }

func (s *Store) index(id string) int {
	if id == "" {
		return -1
	}
	for i := range s.issues {
		if s.issues[i].ID == id {
			return i
		}
	}
	return -1
}

func sortIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Span.Start < issues[j].Span.Start
	})
}
