package dto

// SignupRequest cuerpo de POST /signup. El rol siempre es cliente.
type SignupRequest struct {
	FirstName string `json:"Nombre"`
	LastName  string `json:"Apellido"`
	Document  string `json:"Documento"`
	Phone     string `json:"Telefono"`
	Email     string `json:"Correo_electronico"`
	Password  string `json:"Contrasena"`
}

// LoginRequest cuerpo de POST /login.
type LoginRequest struct {
	Email    string `json:"Correo_electronico"`
	Password string `json:"Contrasena"`
}

// UserResponse salida de un usuario (sin contraseña).
type UserResponse struct {
	ID        int64  `json:"Id_usuario"`
	FirstName string `json:"Nombre"`
	LastName  string `json:"Apellido"`
	Document  string `json:"Documento"`
	Phone     string `json:"Telefono"`
	Email     string `json:"Correo_electronico"`
	Role      string `json:"Tipo_usuario"`
}

// AuthResponse respuesta de signup y login.
type AuthResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token"`
}

// SessionResponse respuesta de GET /check-session.
type SessionResponse struct {
	Authenticated bool          `json:"authenticated"`
	User          *UserResponse `json:"user,omitempty"`
}

// UpdateUserRequest cuerpo de PUT /admin/users. Id_usuario, Nombre y Correo_electronico son requeridos.
type UpdateUserRequest struct {
	ID        int64  `json:"Id_usuario"`
	FirstName string `json:"Nombre"`
	LastName  string `json:"Apellido"`
	Document  string `json:"Documento"`
	Phone     string `json:"Telefono"`
	Email     string `json:"Correo_electronico"`
	Role      string `json:"Tipo_usuario"`
}

// UserListResponse respuesta de GET /users.
type UserListResponse struct {
	Success bool           `json:"success"`
	Users   []UserResponse `json:"users"`
}
