package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/restaurante-rb-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-rb-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo escribe en la tabla pagos.
type PaymentRepo struct {
	db Querier
}

// NewPaymentRepository construye el adaptador; db puede ser el pool o una tx.
func NewPaymentRepository(db Querier) *PaymentRepo {
	return &PaymentRepo{db: db}
}

// Create inserta el pago y asigna el id generado.
func (r *PaymentRepo) Create(ctx context.Context, p *entity.Payment) error {
	query := `
		INSERT INTO pagos (tipo_pago, cantidad_pago)
		VALUES ($1, $2)
		RETURNING id_pagos`
	if err := r.db.QueryRow(ctx, query, p.Method, p.Amount).Scan(&p.ID); err != nil {
		return fmt.Errorf("insert pago: %w", err)
	}
	return nil
}
