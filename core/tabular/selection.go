package tabular

import "slices"

// SelectionSet is an insertion-ordered set of record handles. Membership is
// pointer identity.
type SelectionSet struct {
	items []*Record
}

func (s *SelectionSet) Len() int { return len(s.items) }

func (s *SelectionSet) Contains(rec *Record) bool {
	return slices.Contains(s.items, rec)
}

// Toggle adds rec when absent and removes it otherwise. It reports whether
// rec is selected afterwards.
func (s *SelectionSet) Toggle(rec *Record) bool {
	if idx := slices.Index(s.items, rec); idx >= 0 {
		s.items = slices.Delete(s.items, idx, idx+1)
		return false
	}
	s.items = append(s.items, rec)
	return true
}

func (s *SelectionSet) Replace(recs []*Record) {
	s.items = slices.Clone(recs)
}

func (s *SelectionSet) Clear() {
	s.items = nil
}

// Records returns a copy in selection order.
func (s *SelectionSet) Records() []*Record {
	out := make([]*Record, len(s.items))
	copy(out, s.items)
	return out
}
