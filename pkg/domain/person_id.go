package domain

import "strconv"

// PersonID identifies a person in the relationship graph. Identity is the only
// notion of equality the graph cares about; two records with the same PersonID
// are the same person regardless of field content.
type PersonID int64

// String returns the decimal representation of the id.
func (id PersonID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// IDSet is a set of person ids, used for tombstone snapshots and child sets.
type IDSet map[PersonID]struct{}

// NewIDSet builds a set from the given ids.
func NewIDSet(ids ...PersonID) IDSet {
	set := make(IDSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Contains reports whether id is in the set.
func (s IDSet) Contains(id PersonID) bool {
	_, ok := s[id]
	return ok
}

// Add inserts id into the set.
func (s IDSet) Add(id PersonID) {
	s[id] = struct{}{}
}
