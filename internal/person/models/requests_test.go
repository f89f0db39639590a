package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kinship/pkg/domain"
)

func idRef(id domain.PersonID) *domain.PersonID {
	return &id
}

func TestPersonRequestValidate(t *testing.T) {
	t.Run("missing id is a field error", func(t *testing.T) {
		fieldErrors := (&PersonRequest{}).Validate()
		require.NotNil(t, fieldErrors)
		assert.Contains(t, fieldErrors, "id")
	})

	t.Run("id alone is enough", func(t *testing.T) {
		assert.Nil(t, (&PersonRequest{ID: idRef(1)}).Validate())
	})
}

func TestPersonRequestToPerson(t *testing.T) {
	t.Run("duplicate children collapse into the set", func(t *testing.T) {
		req := &PersonRequest{ID: idRef(1), Children: []domain.PersonID{12, 10, 12, 10, 11}}
		p, err := req.ToPerson()
		require.NoError(t, err)
		assert.Equal(t, []domain.PersonID{10, 11, 12}, p.Children)
	})

	t.Run("missing id errors", func(t *testing.T) {
		_, err := (&PersonRequest{}).ToPerson()
		require.Error(t, err)
	})
}

func TestPersonClone(t *testing.T) {
	partner := idRef(2)
	birth := domain.NewDate(2010, 5, 1)
	p := &Person{ID: 1, BirthDate: &birth, Partner: partner, Children: []domain.PersonID{10}}

	cp := p.Clone()
	cp.AddChild(11)
	*cp.Partner = 9
	cp.BirthDate.Year = 1900

	assert.Equal(t, []domain.PersonID{10}, p.Children)
	assert.Equal(t, domain.PersonID(2), *p.Partner)
	assert.Equal(t, 2010, p.BirthDate.Year)
}
