package repository

import (
	"context"

	"github.com/jhoicas/restaurante-rb-api/internal/domain/entity"
)

// OrderRepository escritura de órdenes y sus líneas; se usa dentro de la transacción.
type OrderRepository interface {
	// Create inserta la cabecera y asigna order.ID.
	Create(ctx context.Context, order *entity.Order) error
	AddLineItem(ctx context.Context, item *entity.LineItem) error
}

// OrderQueryRepository lecturas de órdenes con sus joins (usuario, pago, producto).
type OrderQueryRepository interface {
	// ListAll ordena por fecha y hora descendente.
	ListAll(ctx context.Context) ([]entity.OrderSummary, error)
	ListByUser(ctx context.Context, userID int64) ([]entity.OrderSummary, error)
	// GetHeader devuelve (nil, nil) si la orden no existe.
	GetHeader(ctx context.Context, orderID int64) (*entity.OrderHeader, error)
	ListItems(ctx context.Context, orderID int64) ([]entity.OrderItemView, error)
}
