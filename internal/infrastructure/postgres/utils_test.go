package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClasificacionDeErroresPg(t *testing.T) {
	unique := fmt.Errorf("insert usuario: %w", &pgconn.PgError{Code: "23505"})
	fk := fmt.Errorf("delete producto: %w", &pgconn.PgError{Code: "23503"})
	other := errors.New("conexión cerrada")

	assert.True(t, isUniqueViolation(unique))
	assert.False(t, isUniqueViolation(fk))
	assert.True(t, isForeignKeyViolation(fk))
	assert.False(t, isForeignKeyViolation(other))
	assert.False(t, isUniqueViolation(other))
}
