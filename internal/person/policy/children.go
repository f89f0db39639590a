package policy

import (
	"slices"

	"kinship/internal/person/models"
	"kinship/pkg/domain"
)

// validateCommon applies the precondition shared by both child-count variants:
// exactly three declared children, each resolving to a stored person that
// lists both p and the partner somewhere in its parent slots.
func validateCommon(p *models.Person, partnerID domain.PersonID, lookup Lookup) ChildValidation {
	if len(p.Children) != 3 {
		return ChildValidation{}
	}

	valid := make([]domain.PersonID, 0, 3)
	for _, childID := range p.Children {
		child, ok := lookup.Get(childID)
		if !ok {
			return ChildValidation{}
		}
		if !child.HasParent(p.ID) || !child.HasParent(partnerID) {
			return ChildValidation{}
		}
		valid = append(valid, childID)
	}
	return ChildValidation{Valid: true, ChildIDs: valid}
}

// InclusiveChildCount validates the person's own three children without
// restricting the partner's other relationships, so blended families can
// still match.
type InclusiveChildCount struct{}

func (InclusiveChildCount) ValidateChildren(p *models.Person, partnerID domain.PersonID, lookup Lookup) ChildValidation {
	return validateCommon(p, partnerID, lookup)
}

// ExclusiveChildCount additionally requires the partner, when stored, to have
// exactly the same three children and no others (the "nuclear family"
// interpretation).
type ExclusiveChildCount struct{}

func (ExclusiveChildCount) ValidateChildren(p *models.Person, partnerID domain.PersonID, lookup Lookup) ChildValidation {
	result := validateCommon(p, partnerID, lookup)
	if !result.Valid {
		return result
	}

	partner, ok := lookup.Get(partnerID)
	if !ok {
		// Absent partner imposes no extra constraint.
		return result
	}
	if len(partner.Children) != 3 || !sameIDSet(partner.Children, p.Children) {
		return ChildValidation{}
	}
	return result
}

func sameIDSet(a, b []domain.PersonID) bool {
	as, bs := slices.Clone(a), slices.Clone(b)
	slices.Sort(as)
	slices.Sort(bs)
	return slices.Equal(as, bs)
}
