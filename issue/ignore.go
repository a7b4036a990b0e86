package issue

// IgnoreSet is the session's append-only set of ignored issue ids.
//
// Ids are fresh on every analysis, so an ignored id only filters the issue
// it was taken from. A re-analysis that reports the same problem again gives
// it a new id and it shows up again.
type IgnoreSet struct {
	ids map[string]struct{}
}

func NewIgnoreSet() *IgnoreSet {
	return &IgnoreSet{ids: make(map[string]struct{})}
}

// Add records id. It reports whether id was new.
func (s *IgnoreSet) Add(id string) bool {
	if id == "" {
		return false
	}
	if s.ids == nil {
		s.ids = make(map[string]struct{})
	}
	if _, ok := s.ids[id]; ok {
		return false
	}
	s.ids[id] = struct{}{}
	return true
}

// Has is safe on a nil set.
func (s *IgnoreSet) Has(id string) bool {
	if s == nil {
		return false
	}
	_, ok := s.ids[id]
	return ok
}

func (s *IgnoreSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ids)
}

// Reset forgets every id. Only a full session reset should call it.
func (s *IgnoreSet) Reset() {
	s.ids = make(map[string]struct{})
}
