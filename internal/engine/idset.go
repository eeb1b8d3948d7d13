package engine

import "slices"

// IDSet is a set of entity ids, used for selections and for the
// surviving-id collections the merger prunes selections against.
type IDSet map[int64]struct{}

// NewIDSet builds a set from ids.
func NewIDSet(ids ...int64) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports membership.
func (s IDSet) Has(id int64) bool {
	_, ok := s[id]
	return ok
}

// With returns a new set including id. The receiver is unchanged.
func (s IDSet) With(id int64) IDSet {
	next := make(IDSet, len(s)+1)
	for k := range s {
		next[k] = struct{}{}
	}
	next[id] = struct{}{}
	return next
}

// Without returns a new set excluding id. The receiver is unchanged.
func (s IDSet) Without(id int64) IDSet {
	next := make(IDSet, len(s))
	for k := range s {
		if k != id {
			next[k] = struct{}{}
		}
	}
	return next
}

// Intersect returns the ids present in both sets.
func (s IDSet) Intersect(other IDSet) IDSet {
	next := make(IDSet)
	for k := range s {
		if _, ok := other[k]; ok {
			next[k] = struct{}{}
		}
	}
	return next
}

// Sorted returns the ids in ascending order, for deterministic output.
func (s IDSet) Sorted() []int64 {
	out := make([]int64, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
