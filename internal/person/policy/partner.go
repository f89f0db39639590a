package policy

import "kinship/internal/person/models"

// ReferenceBasedPartner treats a partner reference as a declaration of intent:
// a non-nil partner field satisfies the criterion whether or not the referenced
// person was ever submitted.
type ReferenceBasedPartner struct{}

func (ReferenceBasedPartner) HasValidPartner(p *models.Person, _ Lookup) bool {
	return p.Partner != nil
}

// ExistenceBasedPartner requires both parties to exist: the referenced partner
// must resolve to a stored person before the relationship counts.
type ExistenceBasedPartner struct{}

func (ExistenceBasedPartner) HasValidPartner(p *models.Person, lookup Lookup) bool {
	if p.Partner == nil {
		return false
	}
	_, ok := lookup.Get(*p.Partner)
	return ok
}
