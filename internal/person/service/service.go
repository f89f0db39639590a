// Package service contains the ingestion/deletion orchestrator and the
// pattern matcher that together keep the relationship graph consistent under
// streaming, partial, out-of-order updates.
package service

import (
	"context"
	"log/slog"

	"kinship/internal/person/models"
	"kinship/internal/person/policy"
	"kinship/internal/platform/metrics"
	"kinship/pkg/domain"
)

// Store is the orchestrator's view of the person store. The store owns all
// records; everything here operates on clones obtained through it.
type Store interface {
	Upsert(p *models.Person) (*models.Person, bool)
	Get(id domain.PersonID) (*models.Person, bool)
	All() []*models.Person
	Tombstone(ids []domain.PersonID)
	IsTombstoned(id domain.PersonID) bool
	TombstonedIDs() domain.IDSet
}

// Service sequences the upsert path (clean, store, repair, match) and the
// delete path (tombstone, re-clean survivors).
type Service struct {
	store   Store
	matcher *Matcher
	cleanup policy.CleanupPolicy
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New wires the orchestrator.
func New(store Store, matcher *Matcher, cleanup policy.CleanupPolicy, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		store:   store,
		matcher: matcher,
		cleanup: cleanup,
		logger:  logger,
		metrics: m,
	}
}

// ProcessPerson ingests one person record and returns the current match set.
//
// An upsert targeting a tombstoned id is a silent no-op: the record is not
// stored, but the scan still runs so the caller sees the current matches. An
// incoming record fully replaces any prior record under the same id; only the
// repair step afterwards adjusts neighbors.
func (s *Service) ProcessPerson(ctx context.Context, req models.PersonRequest) ([]*models.Person, error) {
	p, err := req.ToPerson()
	if err != nil {
		return nil, err
	}

	if s.store.IsTombstoned(p.ID) {
		s.logger.DebugContext(ctx, "person id is tombstoned, skipping", "person_id", p.ID)
		return s.matcher.FindMatches(), nil
	}

	s.cleanup.CleanReferences(p, s.store.TombstonedIDs())

	saved, ok := s.store.Upsert(p)
	if !ok {
		// Lost a race with a concurrent delete of the same id.
		s.logger.WarnContext(ctx, "person refused by store", "person_id", p.ID)
		return nil, nil
	}
	s.metrics.PersonsUpserted.Inc()

	s.repairRelationships(ctx, saved)

	return s.matcher.FindMatches(), nil
}

// DeletePersons tombstones the given ids, removes them from the store, and
// re-cleans every surviving record against the newly removed ids.
func (s *Service) DeletePersons(ctx context.Context, ids []domain.PersonID) {
	s.store.Tombstone(ids)
	s.metrics.PersonsDeleted.Add(float64(len(ids)))

	removed := domain.NewIDSet(ids...)
	for _, p := range s.store.All() {
		s.cleanup.CleanReferences(p, removed)
		s.store.Upsert(p)
	}
	s.logger.InfoContext(ctx, "persons deleted", "count", len(ids))
}

// repairRelationships makes p's direct neighbors consistent with p's declared
// relationships. One hop, best effort: neighbors missing from the store are
// skipped, each neighbor update is an independent atomic replace, and nothing
// cascades beyond the named neighbors.
func (s *Service) repairRelationships(ctx context.Context, p *models.Person) {
	if p.Parent1 != nil {
		s.addChildToParent(ctx, *p.Parent1, p.ID)
	}
	if p.Parent2 != nil {
		s.addChildToParent(ctx, *p.Parent2, p.ID)
	}

	for _, childID := range p.Children {
		s.addParentToChild(ctx, childID, p.ID)
	}

	if p.Partner != nil {
		s.realignPartner(ctx, *p.Partner, p.ID)
	}
}

// addChildToParent ensures the parent's children set contains childID.
func (s *Service) addChildToParent(ctx context.Context, parentID, childID domain.PersonID) {
	parent, ok := s.store.Get(parentID)
	if !ok {
		s.logger.DebugContext(ctx, "repair target missing, skipping", "person_id", parentID)
		return
	}
	if parent.HasChild(childID) {
		return
	}
	parent.AddChild(childID)
	s.store.Upsert(parent)
}

// addParentToChild fills the child's first free parent slot with parentID.
// Slot order carries no meaning; the guard on the second slot only prevents
// recording the same parent twice.
func (s *Service) addParentToChild(ctx context.Context, childID, parentID domain.PersonID) {
	child, ok := s.store.Get(childID)
	if !ok {
		s.logger.DebugContext(ctx, "repair target missing, skipping", "person_id", childID)
		return
	}

	switch {
	case child.Parent1 == nil:
		child.Parent1 = &parentID
	case child.Parent2 == nil && *child.Parent1 != parentID:
		child.Parent2 = &parentID
	default:
		return
	}
	s.store.Upsert(child)
}

// realignPartner points the partner's own partner field back at personID.
// This repairs only the partner's side: the partner's previous partner, if
// any, is silently orphaned (last write wins), and a longer partner chain is
// not resolved into a pair.
func (s *Service) realignPartner(ctx context.Context, partnerID, personID domain.PersonID) {
	partner, ok := s.store.Get(partnerID)
	if !ok {
		s.logger.DebugContext(ctx, "repair target missing, skipping", "person_id", partnerID)
		return
	}
	if partner.Partner != nil && *partner.Partner == personID {
		return
	}
	partner.Partner = &personID
	s.store.Upsert(partner)
}
