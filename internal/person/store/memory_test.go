package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"kinship/internal/person/models"
	"kinship/pkg/domain"
)

type InMemoryPersonStoreSuite struct {
	suite.Suite
	store *InMemoryPersonStore
}

func TestInMemoryPersonStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryPersonStoreSuite))
}

func (s *InMemoryPersonStoreSuite) SetupTest() {
	s.store = New()
}

func (s *InMemoryPersonStoreSuite) TestUpsert() {
	s.Run("stores and returns the record", func() {
		saved, ok := s.store.Upsert(&models.Person{ID: 1, Name: "Ada"})
		s.Require().True(ok)
		s.Equal(domain.PersonID(1), saved.ID)

		got, ok := s.store.Get(1)
		s.Require().True(ok)
		s.Equal("Ada", got.Name)
	})

	s.Run("replaces the whole record, not a merge", func() {
		partner := domain.PersonID(2)
		_, ok := s.store.Upsert(&models.Person{ID: 1, Name: "Ada", Partner: &partner})
		s.Require().True(ok)

		_, ok = s.store.Upsert(&models.Person{ID: 1, Name: "Ada Lovelace"})
		s.Require().True(ok)

		got, ok := s.store.Get(1)
		s.Require().True(ok)
		s.Equal("Ada Lovelace", got.Name)
		s.Nil(got.Partner, "partner from the previous record must not survive the replace")
	})

	s.Run("refuses tombstoned ids", func() {
		s.store.Tombstone([]domain.PersonID{9})
		saved, ok := s.store.Upsert(&models.Person{ID: 9})
		s.False(ok)
		s.Nil(saved)
		_, found := s.store.Get(9)
		s.False(found)
	})
}

func (s *InMemoryPersonStoreSuite) TestSnapshotIsolation() {
	s.Run("mutating a returned record does not touch the store", func() {
		_, ok := s.store.Upsert(&models.Person{ID: 1, Children: []domain.PersonID{10}})
		s.Require().True(ok)

		got, ok := s.store.Get(1)
		s.Require().True(ok)
		got.AddChild(11)
		got.Name = "mutated"

		fresh, ok := s.store.Get(1)
		s.Require().True(ok)
		s.Equal([]domain.PersonID{10}, fresh.Children)
		s.Empty(fresh.Name)
	})

	s.Run("mutating the input after upsert does not touch the store", func() {
		p := &models.Person{ID: 2}
		_, ok := s.store.Upsert(p)
		s.Require().True(ok)
		p.Name = "mutated"

		fresh, ok := s.store.Get(2)
		s.Require().True(ok)
		s.Empty(fresh.Name)
	})

	s.Run("All returns every stored record", func() {
		s.store.Upsert(&models.Person{ID: 3})
		all := s.store.All()
		ids := make(domain.IDSet)
		for _, p := range all {
			ids.Add(p.ID)
		}
		s.True(ids.Contains(1))
		s.True(ids.Contains(2))
		s.True(ids.Contains(3))
	})
}

func (s *InMemoryPersonStoreSuite) TestTombstone() {
	s.Run("removes and remembers", func() {
		s.store.Upsert(&models.Person{ID: 1})
		s.store.Tombstone([]domain.PersonID{1, 2})

		_, found := s.store.Get(1)
		s.False(found)
		s.True(s.store.IsTombstoned(1))
		s.True(s.store.IsTombstoned(2), "tombstoning an id that was never stored still registers")
	})

	s.Run("idempotent", func() {
		s.store.Tombstone([]domain.PersonID{1})
		s.store.Tombstone([]domain.PersonID{1})
		s.True(s.store.IsTombstoned(1))
		s.Equal(0, s.store.Len())
	})

	s.Run("snapshot is independent of later deletes", func() {
		s.store.Tombstone([]domain.PersonID{5})
		snapshot := s.store.TombstonedIDs()
		s.store.Tombstone([]domain.PersonID{6})
		s.True(snapshot.Contains(5))
		s.False(snapshot.Contains(6))
	})
}

// Exercises the store under parallel upserts, deletes, and scans; run with
// -race to verify the locking discipline.
func (s *InMemoryPersonStoreSuite) TestConcurrentAccess() {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(3)
		base := domain.PersonID(i * 100)
		go func() {
			defer wg.Done()
			for j := domain.PersonID(0); j < 50; j++ {
				s.store.Upsert(&models.Person{ID: base + j, Children: []domain.PersonID{base + j + 1}})
			}
		}()
		go func() {
			defer wg.Done()
			for j := domain.PersonID(0); j < 10; j++ {
				s.store.Tombstone([]domain.PersonID{base + j*5})
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				for _, p := range s.store.All() {
					_ = p.Clone()
				}
			}
		}()
	}
	wg.Wait()

	for id := range s.store.TombstonedIDs() {
		_, found := s.store.Get(id)
		s.False(found, "tombstoned id %d must not remain stored", id)
	}
}
