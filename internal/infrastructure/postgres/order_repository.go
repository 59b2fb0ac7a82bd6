package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/restaurante-rb-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-rb-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo escribe en orden y orden_producto.
type OrderRepo struct {
	db Querier
}

// NewOrderRepository construye el adaptador; db puede ser el pool o una tx.
func NewOrderRepository(db Querier) *OrderRepo {
	return &OrderRepo{db: db}
}

// Create inserta la cabecera y asigna el id generado.
// Fecha y hora viajan como texto y se castean en SQL para no depender de la zona del servidor.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	query := `
		INSERT INTO orden (fecha_orden, hora_orden, codigo_orden, id_usuario, id_pagos)
		VALUES ($1::date, $2::time, $3, $4, $5)
		RETURNING id_orden`
	err := r.db.QueryRow(ctx, query, o.Date, o.Time, o.Code, o.UserID, o.PaymentID).Scan(&o.ID)
	if err != nil {
		return fmt.Errorf("insert orden: %w", err)
	}
	return nil
}

// AddLineItem inserta una fila en orden_producto.
func (r *OrderRepo) AddLineItem(ctx context.Context, item *entity.LineItem) error {
	query := `
		INSERT INTO orden_producto (id_orden, id_producto, cantidad)
		VALUES ($1, $2, $3)`
	if _, err := r.db.Exec(ctx, query, item.OrderID, item.ProductID, item.Quantity); err != nil {
		return fmt.Errorf("insert orden_producto (producto %d): %w", item.ProductID, err)
	}
	return nil
}
