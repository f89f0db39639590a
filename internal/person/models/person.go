package models

import (
	"slices"

	"kinship/pkg/domain"
)

// Person is a node in the family relationship graph. All relationships are id
// references to other persons:
//
//   - Parent1/Parent2: backward-looking (who raised this person), unordered as
//     a concept; slot assignment is an implementation detail.
//   - Partner: horizontal, conceptually symmetric but not enforced atomically.
//   - Children: forward-looking, a set of unique ids.
//
// A nil reference means "not declared". A nil BirthDate means "age unknown".
type Person struct {
	ID        domain.PersonID
	Name      string
	BirthDate *domain.Date
	Parent1   *domain.PersonID
	Parent2   *domain.PersonID
	Partner   *domain.PersonID
	Children  []domain.PersonID
}

// Clone returns a deep copy. The store hands out and accepts clones only, so
// callers can never mutate a stored record in place.
func (p *Person) Clone() *Person {
	if p == nil {
		return nil
	}
	cp := &Person{
		ID:   p.ID,
		Name: p.Name,
	}
	if p.BirthDate != nil {
		d := *p.BirthDate
		cp.BirthDate = &d
	}
	cp.Parent1 = cloneID(p.Parent1)
	cp.Parent2 = cloneID(p.Parent2)
	cp.Partner = cloneID(p.Partner)
	if p.Children != nil {
		cp.Children = slices.Clone(p.Children)
	}
	return cp
}

func cloneID(id *domain.PersonID) *domain.PersonID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

// HasChild reports whether id is in the children set.
func (p *Person) HasChild(id domain.PersonID) bool {
	return slices.Contains(p.Children, id)
}

// AddChild inserts id into the children set, keeping it unique and sorted.
func (p *Person) AddChild(id domain.PersonID) {
	if p.HasChild(id) {
		return
	}
	p.Children = append(p.Children, id)
	slices.Sort(p.Children)
}

// HasParent reports whether id occupies either parent slot.
func (p *Person) HasParent(id domain.PersonID) bool {
	return (p.Parent1 != nil && *p.Parent1 == id) || (p.Parent2 != nil && *p.Parent2 == id)
}

// ChildSet returns the children as a set.
func (p *Person) ChildSet() domain.IDSet {
	return domain.NewIDSet(p.Children...)
}
