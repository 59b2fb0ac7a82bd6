package ordering_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/restaurante-rb-api/internal/application/ordering"
	"github.com/jhoicas/restaurante-rb-api/internal/domain"
	"github.com/jhoicas/restaurante-rb-api/internal/domain/entity"
)

func TestOwnerOrAdmin(t *testing.T) {
	p := ordering.OwnerOrAdmin{}

	cases := []struct {
		name   string
		caller entity.Caller
		owner  int64
		want   bool
	}{
		{"dueño", entity.Caller{UserID: 7, Role: entity.RoleCliente}, 7, true},
		{"otro cliente", entity.Caller{UserID: 8, Role: entity.RoleCliente}, 7, false},
		{"administrador", entity.Caller{UserID: 1, Role: entity.RoleAdmin}, 7, true},
		{"sin usuario", entity.Caller{}, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, p.CanView(tc.caller, tc.owner))
		})
	}
}

func TestAuthorize_DevuelveForbidden(t *testing.T) {
	err := ordering.Authorize(ordering.OwnerOrAdmin{}, entity.Caller{UserID: 2, Role: entity.RoleCliente}, 3)
	assert.True(t, errors.Is(err, domain.ErrForbidden))
	assert.NoError(t, ordering.Authorize(ordering.OwnerOrAdmin{}, entity.Caller{UserID: 3, Role: entity.RoleCliente}, 3))
}
