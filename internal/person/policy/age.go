package policy

import (
	"kinship/internal/person/models"
	"kinship/pkg/domain"
)

// adulthoodYears is the age at which a person stops counting as a minor.
const adulthoodYears = 18

// PessimisticAge requires explicit proof of age: a missing birth date never
// counts as a minor, and a birth date after today is treated as unknown
// rather than erroring.
type PessimisticAge struct{}

func (PessimisticAge) IsMinor(p *models.Person, today domain.Date) bool {
	if p.BirthDate == nil {
		return false
	}
	if p.BirthDate.After(today) {
		return false
	}
	return p.BirthDate.YearsUntil(today) < adulthoodYears
}

// OptimisticAge assumes incomplete data describes younger family members: a
// missing birth date always counts as a minor, as does one after today.
type OptimisticAge struct{}

func (OptimisticAge) IsMinor(p *models.Person, today domain.Date) bool {
	if p.BirthDate == nil {
		return true
	}
	if p.BirthDate.After(today) {
		return true
	}
	return p.BirthDate.YearsUntil(today) < adulthoodYears
}
