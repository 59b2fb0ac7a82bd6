package repository

import (
	"context"

	"github.com/jhoicas/restaurante-rb-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get devuelven (nil, nil) cuando no existe el registro.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	// Update reescribe los datos de perfil y el rol; no toca la contraseña.
	Update(ctx context.Context, user *entity.User) error
	// Delete devuelve domain.ErrConflict si el usuario tiene órdenes.
	Delete(ctx context.Context, id int64) error
}
