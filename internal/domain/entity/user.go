package entity

// Roles válidos para User (columna tipo_usuario).
const (
	RoleAdmin   = "administrador"
	RoleCliente = "cliente"
)

// ValidRole indica si r es uno de los roles conocidos.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleCliente
}

// User representa un usuario registrado (cliente o administrador).
type User struct {
	ID           int64
	FirstName    string // Nombre
	LastName     string // Apellido
	Document     string // Documento de identidad
	Phone        string
	Email        string
	PasswordHash string // bcrypt; nunca se serializa
	Role         string
}

// FullName nombre y apellido separados por espacio.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
