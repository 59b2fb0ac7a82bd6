package migrations_test

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-rb-api/internal/infrastructure/postgres/migrations"
)

func TestFS_EsquemaBase(t *testing.T) {
	body, err := fs.ReadFile(migrations.FS, "001_init.sql")
	require.NoError(t, err)
	sql := string(body)

	for _, table := range []string{"usuario", "producto", "establecimiento", "pagos", "orden", "orden_producto"} {
		assert.Contains(t, sql, "CREATE TABLE IF NOT EXISTS "+table+" ", table)
	}
	assert.Contains(t, sql, "CHECK (cantidad >= 1)")
	assert.NotContains(t, strings.ToLower(sql), "codigo_orden  integer not null unique")
}
