package store

import (
	"sync"

	"kinship/internal/person/models"
	"kinship/pkg/domain"
)

// InMemoryPersonStore is the sole owner of all person records. It hands out
// clones only, so a stored record can never be observed half-written: every
// mutation is an atomic replace of the whole record under the write lock.
//
// Tombstoned ids are remembered for the lifetime of the process; storage for
// them is refused thereafter.
type InMemoryPersonStore struct {
	mu         sync.RWMutex
	persons    map[domain.PersonID]*models.Person
	tombstones domain.IDSet
}

// New creates an empty store.
func New() *InMemoryPersonStore {
	return &InMemoryPersonStore{
		persons:    make(map[domain.PersonID]*models.Person),
		tombstones: make(domain.IDSet),
	}
}

// Upsert replaces any prior record under the person's id. It is a silent no-op
// returning false when the id is tombstoned; that is normal control flow, not
// an error.
func (s *InMemoryPersonStore) Upsert(p *models.Person) (*models.Person, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tombstones.Contains(p.ID) {
		return nil, false
	}
	stored := p.Clone()
	s.persons[p.ID] = stored
	return stored.Clone(), true
}

// Get returns a clone of the record under id, or false when absent.
func (s *InMemoryPersonStore) Get(id domain.PersonID) (*models.Person, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.persons[id]
	if !ok {
		return nil, false
	}
	return p.Clone(), true
}

// All returns a snapshot of every stored record. The snapshot is consistent
// per record, not across records; a concurrent writer may land between two
// entries of the same scan.
func (s *InMemoryPersonStore) All() []*models.Person {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]*models.Person, 0, len(s.persons))
	for _, p := range s.persons {
		snapshot = append(snapshot, p.Clone())
	}
	return snapshot
}

// Tombstone removes each id from the store and marks it permanently ignored.
// Idempotent.
func (s *InMemoryPersonStore) Tombstone(ids []domain.PersonID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		delete(s.persons, id)
		s.tombstones.Add(id)
	}
}

// IsTombstoned reports whether id has been deleted.
func (s *InMemoryPersonStore) IsTombstoned(id domain.PersonID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tombstones.Contains(id)
}

// TombstonedIDs returns a snapshot of the tombstone set. The set is append-only
// over the process lifetime, so the snapshot can only under-report very recent
// deletions, never un-delete.
func (s *InMemoryPersonStore) TombstonedIDs() domain.IDSet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make(domain.IDSet, len(s.tombstones))
	for id := range s.tombstones {
		snapshot.Add(id)
	}
	return snapshot
}

// Len returns the number of stored records.
func (s *InMemoryPersonStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.persons)
}
