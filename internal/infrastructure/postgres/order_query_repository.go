package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/restaurante-rb-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-rb-api/internal/domain/repository"
)

var _ repository.OrderQueryRepository = (*OrderQueryRepo)(nil)

// OrderQueryRepo lecturas del historial y detalle de órdenes. Usa el pool, sin transacción.
type OrderQueryRepo struct {
	db Querier
}

// NewOrderQueryRepository construye el adaptador de lectura.
func NewOrderQueryRepository(db Querier) *OrderQueryRepo {
	return &OrderQueryRepo{db: db}
}

const orderSummarySelect = `
	SELECT o.id_orden,
	       to_char(o.fecha_orden, 'YYYY-MM-DD'),
	       to_char(o.hora_orden, 'HH24:MI:SS'),
	       o.codigo_orden, o.id_usuario, o.id_pagos,
	       COALESCE(u.nombre, ''), COALESCE(u.apellido, ''), COALESCE(u.correo_electronico, ''),
	       COALESCE(p.tipo_pago, ''), COALESCE(p.cantidad_pago, 0)
	FROM orden o
	LEFT JOIN usuario u ON u.id_usuario = o.id_usuario
	LEFT JOIN pagos p ON p.id_pagos = o.id_pagos`

const orderSummaryOrder = `
	ORDER BY o.fecha_orden DESC, o.hora_orden DESC, o.id_orden DESC`

// ListAll todas las órdenes, más recientes primero.
func (r *OrderQueryRepo) ListAll(ctx context.Context) ([]entity.OrderSummary, error) {
	rows, err := r.db.Query(ctx, orderSummarySelect+orderSummaryOrder)
	if err != nil {
		return nil, fmt.Errorf("list ordenes: %w", err)
	}
	return scanSummaries(rows)
}

// ListByUser órdenes de un usuario, más recientes primero.
func (r *OrderQueryRepo) ListByUser(ctx context.Context, userID int64) ([]entity.OrderSummary, error) {
	rows, err := r.db.Query(ctx, orderSummarySelect+`
	WHERE o.id_usuario = $1`+orderSummaryOrder, userID)
	if err != nil {
		return nil, fmt.Errorf("list ordenes de usuario: %w", err)
	}
	return scanSummaries(rows)
}

func scanSummaries(rows pgx.Rows) ([]entity.OrderSummary, error) {
	defer rows.Close()
	list := make([]entity.OrderSummary, 0)
	for rows.Next() {
		var s entity.OrderSummary
		if err := rows.Scan(
			&s.ID, &s.Date, &s.Time, &s.Code, &s.UserID, &s.PaymentID,
			&s.UserFirstName, &s.UserLastName, &s.UserEmail,
			&s.PaymentMethod, &s.PaymentAmount,
		); err != nil {
			return nil, fmt.Errorf("scan orden: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// GetHeader cabecera con datos de usuario (incluye teléfono) y pago. (nil, nil) si no existe.
func (r *OrderQueryRepo) GetHeader(ctx context.Context, orderID int64) (*entity.OrderHeader, error) {
	query := `
	SELECT o.id_orden,
	       to_char(o.fecha_orden, 'YYYY-MM-DD'),
	       to_char(o.hora_orden, 'HH24:MI:SS'),
	       o.codigo_orden, o.id_usuario, o.id_pagos,
	       COALESCE(u.nombre, ''), COALESCE(u.apellido, ''), COALESCE(u.correo_electronico, ''),
	       COALESCE(u.telefono, ''),
	       COALESCE(p.tipo_pago, ''), COALESCE(p.cantidad_pago, 0)
	FROM orden o
	LEFT JOIN usuario u ON u.id_usuario = o.id_usuario
	LEFT JOIN pagos p ON p.id_pagos = o.id_pagos
	WHERE o.id_orden = $1`
	var h entity.OrderHeader
	err := r.db.QueryRow(ctx, query, orderID).Scan(
		&h.ID, &h.Date, &h.Time, &h.Code, &h.UserID, &h.PaymentID,
		&h.UserFirstName, &h.UserLastName, &h.UserEmail, &h.UserPhone,
		&h.PaymentMethod, &h.PaymentAmount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get orden: %w", err)
	}
	return &h, nil
}

// ListItems líneas de la orden con los datos del producto, en orden de inserción.
func (r *OrderQueryRepo) ListItems(ctx context.Context, orderID int64) ([]entity.OrderItemView, error) {
	query := `
	SELECT op.id_producto,
	       COALESCE(pr.nombre_producto, ''), COALESCE(pr.precio_producto, 0),
	       COALESCE(pr.tipo_producto, ''), COALESCE(pr.descripcion, ''), COALESCE(pr.imagen, ''),
	       op.cantidad
	FROM orden_producto op
	LEFT JOIN producto pr ON pr.id_producto = op.id_producto
	WHERE op.id_orden = $1
	ORDER BY op.id_orden_producto`
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list orden_producto: %w", err)
	}
	defer rows.Close()
	items := make([]entity.OrderItemView, 0)
	for rows.Next() {
		var it entity.OrderItemView
		if err := rows.Scan(&it.ProductID, &it.Name, &it.Price, &it.Type, &it.Description, &it.Image, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan orden_producto: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
