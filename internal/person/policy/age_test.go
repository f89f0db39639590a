package policy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"kinship/internal/person/models"
	"kinship/pkg/domain"
)

func personBorn(d domain.Date) *models.Person {
	return &models.Person{ID: 1, BirthDate: &d}
}

func TestAgeBoundary(t *testing.T) {
	today := domain.NewDate(2026, time.September, 1)

	// The 18th-birthday boundary must hold under both variants.
	for name, p := range map[string]AgePolicy{
		"pessimistic": PessimisticAge{},
		"optimistic":  OptimisticAge{},
	} {
		t.Run(name, func(t *testing.T) {
			t.Run("exactly 18 years old is not a minor", func(t *testing.T) {
				child := personBorn(domain.NewDate(2008, time.September, 1))
				assert.False(t, p.IsMinor(child, today))
			})

			t.Run("one day short of 18 is a minor", func(t *testing.T) {
				child := personBorn(domain.NewDate(2008, time.September, 2))
				assert.True(t, p.IsMinor(child, today))
			})

			t.Run("well under 18 is a minor", func(t *testing.T) {
				child := personBorn(domain.NewDate(2016, time.March, 10))
				assert.True(t, p.IsMinor(child, today))
			})

			t.Run("well over 18 is not a minor", func(t *testing.T) {
				child := personBorn(domain.NewDate(1990, time.March, 10))
				assert.False(t, p.IsMinor(child, today))
			})
		})
	}
}

func TestPessimisticAge(t *testing.T) {
	today := domain.NewDate(2026, time.September, 1)

	t.Run("missing birth date is never a minor", func(t *testing.T) {
		assert.False(t, PessimisticAge{}.IsMinor(&models.Person{ID: 1}, today))
	})

	t.Run("future birth date is never a minor", func(t *testing.T) {
		child := personBorn(domain.NewDate(2030, time.January, 1))
		assert.False(t, PessimisticAge{}.IsMinor(child, today))
	})

	t.Run("born today is a minor", func(t *testing.T) {
		assert.True(t, PessimisticAge{}.IsMinor(personBorn(today), today))
	})
}

func TestOptimisticAge(t *testing.T) {
	today := domain.NewDate(2026, time.September, 1)

	t.Run("missing birth date is always a minor", func(t *testing.T) {
		assert.True(t, OptimisticAge{}.IsMinor(&models.Person{ID: 1}, today))
	})

	t.Run("future birth date is a minor", func(t *testing.T) {
		child := personBorn(domain.NewDate(2030, time.January, 1))
		assert.True(t, OptimisticAge{}.IsMinor(child, today))
	})
}
