// Package migrations contiene el esquema SQL versionado, embebido en el binario.
package migrations

import "embed"

// FS archivos NNN_nombre.sql, aplicados en orden lexicográfico.
//
//go:embed *.sql
var FS embed.FS
