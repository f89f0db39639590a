package service

import (
	"time"

	"kinship/internal/person/models"
	"kinship/internal/person/policy"
	"kinship/internal/platform/metrics"
	"kinship/pkg/domain"
)

// Matcher scans the store and evaluates every person against the configured
// pattern: has a partner, has exactly three children with that partner, and at
// least one of those children is a minor. The three criteria run in that order
// with short-circuit; each criterion's interpretation is the injected policy's.
type Matcher struct {
	store    Store
	partner  policy.PartnerPolicy
	children policy.ChildCountPolicy
	age      policy.AgePolicy
	metrics  *metrics.Metrics
	now      func() time.Time
}

// NewMatcher wires a matcher. now is the evaluation clock; pass time.Now in
// production.
func NewMatcher(
	store Store,
	partner policy.PartnerPolicy,
	children policy.ChildCountPolicy,
	age policy.AgePolicy,
	m *metrics.Metrics,
	now func() time.Time,
) *Matcher {
	return &Matcher{
		store:    store,
		partner:  partner,
		children: children,
		age:      age,
		metrics:  m,
		now:      now,
	}
}

// FindMatches runs one full scan and returns every matching person, in store
// iteration order. Cost is O(n*k) for n stored persons with up to k children.
func (m *Matcher) FindMatches() []*models.Person {
	today := domain.DateOf(m.now())

	var matches []*models.Person
	for _, p := range m.store.All() {
		if m.matchesPattern(p, today) {
			matches = append(matches, p)
		}
	}

	m.metrics.MatchScans.Inc()
	m.metrics.MatchesFound.Add(float64(len(matches)))
	return matches
}

func (m *Matcher) matchesPattern(p *models.Person, today domain.Date) bool {
	if !m.partner.HasValidPartner(p, m.store) {
		return false
	}
	partnerID := *p.Partner

	validation := m.children.ValidateChildren(p, partnerID, m.store)
	if !validation.Valid {
		return false
	}

	// Matched as soon as any validated child is a minor.
	for _, childID := range validation.ChildIDs {
		child, ok := m.store.Get(childID)
		if ok && m.age.IsMinor(child, today) {
			return true
		}
	}
	return false
}
