// Package sanitize normaliza el texto que llega desde los formularios del cliente
// antes de validarlo o persistirlo.
package sanitize

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Text recorta espacios y normaliza a NFC, de modo que "Café" escrito con
// tilde combinada y con tilde precompuesta se guarden igual.
func Text(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// Email normaliza un correo: Text + minúsculas.
func Email(s string) string {
	return strings.ToLower(Text(s))
}

// ValidEmail indica si s tiene formato de correo (local@dominio) sin nombre visible.
func ValidEmail(s string) bool {
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s && strings.Contains(addr.Address[strings.LastIndex(addr.Address, "@"):], ".")
}

// Len cuenta caracteres (runes), no bytes.
func Len(s string) int {
	return utf8.RuneCountInString(s)
}
