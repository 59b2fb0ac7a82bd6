package usecase

import (
	"context"

	"github.com/jhoicas/restaurante-rb-api/internal/application/auth"
	"github.com/jhoicas/restaurante-rb-api/internal/application/dto"
	"github.com/jhoicas/restaurante-rb-api/internal/domain"
	"github.com/jhoicas/restaurante-rb-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-rb-api/internal/domain/repository"
	"github.com/jhoicas/restaurante-rb-api/pkg/sanitize"
)

// UserUseCase aplica reglas de negocio para usuarios (perfil y administración).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Profile devuelve el usuario autenticado. ErrNotFound si ya no existe.
func (uc *UserUseCase) Profile(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return auth.ToUserResponse(user), nil
}

// List todos los usuarios.
func (uc *UserUseCase) List(ctx context.Context) (*dto.UserListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	users := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		users = append(users, *auth.ToUserResponse(u))
	}
	return &dto.UserListResponse{Success: true, Users: users}, nil
}

// Update reescribe perfil y rol de un usuario. Los opcionales ausentes quedan vacíos
// y el rol ausente vuelve a cliente. La contraseña no se toca.
func (uc *UserUseCase) Update(ctx context.Context, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user := &entity.User{
		ID:        in.ID,
		FirstName: sanitize.Text(in.FirstName),
		LastName:  sanitize.Text(in.LastName),
		Document:  sanitize.Text(in.Document),
		Phone:     sanitize.Text(in.Phone),
		Email:     sanitize.Email(in.Email),
		Role:      sanitize.Text(in.Role),
	}
	if user.Role == "" {
		user.Role = entity.RoleCliente
	}

	verr := &domain.ValidationError{}
	if user.ID <= 0 {
		verr.Add("Id_usuario", "es requerido")
	}
	if user.FirstName == "" {
		verr.Add("Nombre", "es requerido")
	}
	switch {
	case user.Email == "":
		verr.Add("Correo_electronico", "es requerido")
	case !sanitize.ValidEmail(user.Email):
		verr.Add("Correo_electronico", "formato de email inválido")
	}
	if !entity.ValidRole(user.Role) {
		verr.Add("Tipo_usuario", "debe ser administrador o cliente")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Delete elimina un usuario. ErrConflict si tiene órdenes; ErrNotFound si no existe.
func (uc *UserUseCase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.repo.Delete(ctx, id)
}
