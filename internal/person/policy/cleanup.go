package policy

import (
	"slices"

	"kinship/internal/person/models"
	"kinship/pkg/domain"
)

// CascadeCleanup clears any relationship field that references a removed id:
// partner and parent slots drop to nil, children are filtered. Keeps the graph
// free of dangling references to tombstoned persons.
type CascadeCleanup struct{}

func (CascadeCleanup) CleanReferences(p *models.Person, removed domain.IDSet) {
	if p.Partner != nil && removed.Contains(*p.Partner) {
		p.Partner = nil
	}
	if p.Parent1 != nil && removed.Contains(*p.Parent1) {
		p.Parent1 = nil
	}
	if p.Parent2 != nil && removed.Contains(*p.Parent2) {
		p.Parent2 = nil
	}
	if len(p.Children) > 0 {
		p.Children = slices.DeleteFunc(p.Children, func(id domain.PersonID) bool {
			return removed.Contains(id)
		})
	}
}

// NoOpCleanup preserves forward references verbatim; dangling references to
// tombstoned ids remain stored.
type NoOpCleanup struct{}

func (NoOpCleanup) CleanReferences(*models.Person, domain.IDSet) {}
