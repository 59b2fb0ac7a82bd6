package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/restaurante-rb-api/internal/application/dto"
	"github.com/jhoicas/restaurante-rb-api/internal/domain"
	"github.com/jhoicas/restaurante-rb-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-rb-api/internal/domain/repository"
	"github.com/jhoicas/restaurante-rb-api/pkg/jwt"
	"github.com/jhoicas/restaurante-rb-api/pkg/sanitize"
)

// PasswordMinLen longitud mínima de la contraseña en el registro.
const PasswordMinLen = 6

// Mensajes de las respuestas de auth.
const (
	MsgSignup = "Usuario registrado exitosamente."
	MsgLogin  = "Login exitoso."
	MsgLogout = "Logout exitoso."
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y sesión.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Signup registra un cliente. El rol del cuerpo se ignora: todo registro público es cliente.
// Devuelve ErrEmailAlreadyExists si el correo ya está en uso.
func (uc *AuthUseCase) Signup(ctx context.Context, in dto.SignupRequest) (*dto.AuthResponse, error) {
	user := &entity.User{
		FirstName: sanitize.Text(in.FirstName),
		LastName:  sanitize.Text(in.LastName),
		Document:  sanitize.Text(in.Document),
		Phone:     sanitize.Text(in.Phone),
		Email:     sanitize.Email(in.Email),
		Role:      entity.RoleCliente,
	}

	verr := &domain.ValidationError{}
	required := []struct{ field, value string }{
		{"Nombre", user.FirstName},
		{"Apellido", user.LastName},
		{"Documento", user.Document},
		{"Telefono", user.Phone},
		{"Correo_electronico", user.Email},
		{"Contrasena", in.Password},
	}
	for _, r := range required {
		if r.value == "" {
			verr.Add(r.field, "es requerido")
		}
	}
	if user.Email != "" && !sanitize.ValidEmail(user.Email) {
		verr.Add("Correo_electronico", "formato de email inválido")
	}
	if in.Password != "" && sanitize.Len(in.Password) < PasswordMinLen {
		verr.Add("Contrasena", fmt.Sprintf("mínimo %d caracteres", PasswordMinLen))
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	existing, err := uc.userRepo.GetByEmail(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = string(hash)
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return uc.authResponse(MsgSignup, user)
}

// Login verifica correo/contraseña, genera JWT y retorna token + usuario.
// Correo inexistente y contraseña incorrecta devuelven el mismo ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	email := sanitize.Email(in.Email)
	verr := &domain.ValidationError{}
	if email == "" {
		verr.Add("Correo_electronico", "es requerido")
	}
	if in.Password == "" {
		verr.Add("Contrasena", "es requerido")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.authResponse(MsgLogin, user)
}

// Session devuelve el usuario del token si aún existe.
func (uc *AuthUseCase) Session(ctx context.Context, caller entity.Caller) (*dto.SessionResponse, error) {
	if !caller.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByID(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// token válido de un usuario ya eliminado
		return nil, domain.ErrUnauthorized
	}
	return &dto.SessionResponse{Authenticated: true, User: ToUserResponse(user)}, nil
}

func (uc *AuthUseCase) authResponse(msg string, user *entity.User) (*dto.AuthResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Message: msg, User: *ToUserResponse(user), Token: token}, nil
}

// ToUserResponse convierte la entidad a su salida pública (sin hash).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Document:  u.Document,
		Phone:     u.Phone,
		Email:     u.Email,
		Role:      u.Role,
	}
}
