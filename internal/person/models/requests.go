package models

import (
	"fmt"
	"slices"

	"kinship/pkg/domain"
)

// PersonRequest is the submit-entity payload. Only the id is required; all
// relationship fields are optional because records arrive incrementally and
// may be partial. References are bare ids.
type PersonRequest struct {
	ID        *domain.PersonID  `json:"id"`
	Name      string            `json:"name,omitempty"`
	BirthDate *domain.Date      `json:"birthDate,omitempty"`
	Parent1   *domain.PersonID  `json:"parent1,omitempty"`
	Parent2   *domain.PersonID  `json:"parent2,omitempty"`
	Partner   *domain.PersonID  `json:"partner,omitempty"`
	Children  []domain.PersonID `json:"children,omitempty"`
}

// Validate checks boundary requirements. Field-level messages feed the 400
// error envelope.
func (r *PersonRequest) Validate() map[string]string {
	fieldErrors := make(map[string]string)
	if r.ID == nil {
		fieldErrors["id"] = "person id is required"
	}
	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}

// ToPerson maps the request onto a fresh domain record. Duplicate child ids
// collapse into the set.
func (r *PersonRequest) ToPerson() (*Person, error) {
	if r.ID == nil {
		return nil, fmt.Errorf("person id is required")
	}
	p := &Person{
		ID:        *r.ID,
		Name:      r.Name,
		BirthDate: r.BirthDate,
		Parent1:   r.Parent1,
		Parent2:   r.Parent2,
		Partner:   r.Partner,
	}
	for _, child := range r.Children {
		p.AddChild(child)
	}
	return p, nil
}

// PersonResponse is the serialized form of a matched person. Absent references
// are omitted rather than rendered as null.
type PersonResponse struct {
	ID        domain.PersonID   `json:"id"`
	Name      string            `json:"name,omitempty"`
	BirthDate *domain.Date      `json:"birthDate,omitempty"`
	Parent1   *domain.PersonID  `json:"parent1,omitempty"`
	Parent2   *domain.PersonID  `json:"parent2,omitempty"`
	Partner   *domain.PersonID  `json:"partner,omitempty"`
	Children  []domain.PersonID `json:"children,omitempty"`
}

// NewPersonResponse maps a stored person to its response form. Children are
// sorted so responses are deterministic.
func NewPersonResponse(p *Person) PersonResponse {
	resp := PersonResponse{
		ID:        p.ID,
		Name:      p.Name,
		BirthDate: p.BirthDate,
		Parent1:   p.Parent1,
		Parent2:   p.Parent2,
		Partner:   p.Partner,
	}
	if len(p.Children) > 0 {
		resp.Children = slices.Clone(p.Children)
		slices.Sort(resp.Children)
	}
	return resp
}
