package entity

// Caller identidad autenticada de quien hace la petición. Se pasa explícitamente
// a cada caso de uso; nunca se lee de estado global.
type Caller struct {
	UserID int64
	Role   string
}

// IsAdmin indica si el caller tiene rol administrador.
func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// Authenticated indica si hay un usuario identificado.
func (c Caller) Authenticated() bool {
	return c.UserID > 0
}
