// Package policy holds the four pluggable interpretation axes of the pattern
// matcher and the reference cleaner. Each axis has a small closed set of
// variants resolved by name exactly once at startup; the core receives plain
// interface values and never looks anything up at runtime.
package policy

import (
	"fmt"

	"kinship/internal/person/models"
	"kinship/pkg/domain"
)

// Lookup resolves person ids against the store. Implementations must return
// an independent clone; policies may inspect but never retain it.
type Lookup interface {
	Get(id domain.PersonID) (*models.Person, bool)
}

// PartnerPolicy decides whether a person "has a partner" for matching
// purposes.
type PartnerPolicy interface {
	// HasValidPartner reports whether p satisfies the partner criterion.
	HasValidPartner(p *models.Person, lookup Lookup) bool
}

// ChildValidation is the outcome of the child-count criterion: a validity
// flag plus the validated child ids (always the same three ids when valid).
type ChildValidation struct {
	Valid    bool
	ChildIDs []domain.PersonID
}

// ChildCountPolicy decides whether a person's children satisfy the
// exactly-three-with-this-partner criterion.
type ChildCountPolicy interface {
	// ValidateChildren checks p's declared children against partnerID.
	ValidateChildren(p *models.Person, partnerID domain.PersonID, lookup Lookup) ChildValidation
}

// AgePolicy decides whether a person counts as a minor on a given day.
type AgePolicy interface {
	// IsMinor reports whether p is under 18 as of today. Missing and future
	// birth dates are resolved by the variant, never by erroring.
	IsMinor(p *models.Person, today domain.Date) bool
}

// CleanupPolicy rewrites a person's relationship fields with respect to a set
// of removed ids.
type CleanupPolicy interface {
	// CleanReferences mutates p in place.
	CleanReferences(p *models.Person, removed domain.IDSet)
}

// Variant names accepted by the constructors. These are the values of the
// KINSHIP_*_POLICY configuration keys.
const (
	PartnerReference  = "reference"
	PartnerExistence  = "existence"
	ChildrenInclusive = "inclusive"
	ChildrenExclusive = "exclusive"
	AgePessimistic    = "pessimistic"
	AgeOptimistic     = "optimistic"
	CleanupCascade    = "cascade"
	CleanupNoOp       = "noop"
)

// NewPartnerPolicy resolves a partner criterion by name.
func NewPartnerPolicy(name string) (PartnerPolicy, error) {
	switch name {
	case PartnerReference:
		return ReferenceBasedPartner{}, nil
	case PartnerExistence:
		return ExistenceBasedPartner{}, nil
	default:
		return nil, fmt.Errorf("unknown partner policy %q (known: %s, %s)", name, PartnerReference, PartnerExistence)
	}
}

// NewChildCountPolicy resolves a child-count criterion by name.
func NewChildCountPolicy(name string) (ChildCountPolicy, error) {
	switch name {
	case ChildrenInclusive:
		return InclusiveChildCount{}, nil
	case ChildrenExclusive:
		return ExclusiveChildCount{}, nil
	default:
		return nil, fmt.Errorf("unknown child-count policy %q (known: %s, %s)", name, ChildrenInclusive, ChildrenExclusive)
	}
}

// NewAgePolicy resolves a minor-age criterion by name.
func NewAgePolicy(name string) (AgePolicy, error) {
	switch name {
	case AgePessimistic:
		return PessimisticAge{}, nil
	case AgeOptimistic:
		return OptimisticAge{}, nil
	default:
		return nil, fmt.Errorf("unknown age policy %q (known: %s, %s)", name, AgePessimistic, AgeOptimistic)
	}
}

// NewCleanupPolicy resolves a reference-cleanup policy by name.
func NewCleanupPolicy(name string) (CleanupPolicy, error) {
	switch name {
	case CleanupCascade:
		return CascadeCleanup{}, nil
	case CleanupNoOp:
		return NoOpCleanup{}, nil
	default:
		return nil, fmt.Errorf("unknown cleanup policy %q (known: %s, %s)", name, CleanupCascade, CleanupNoOp)
	}
}
