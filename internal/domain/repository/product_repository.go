package repository

import (
	"context"

	"github.com/jhoicas/restaurante-rb-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// Delete devuelve domain.ErrConflict si el producto aparece en alguna orden.
	Delete(ctx context.Context, id int64) error
}
