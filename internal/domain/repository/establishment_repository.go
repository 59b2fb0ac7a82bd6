package repository

import (
	"context"

	"github.com/jhoicas/restaurante-rb-api/internal/domain/entity"
)

// EstablishmentRepository define el puerto de persistencia para las sedes.
type EstablishmentRepository interface {
	Create(ctx context.Context, e *entity.Establishment) error
	GetByID(ctx context.Context, id int64) (*entity.Establishment, error)
	List(ctx context.Context) ([]*entity.Establishment, error)
	Update(ctx context.Context, e *entity.Establishment) error
	Delete(ctx context.Context, id int64) error
}
