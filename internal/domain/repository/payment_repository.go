package repository

import (
	"context"

	"github.com/jhoicas/restaurante-rb-api/internal/domain/entity"
)

// PaymentRepository escritura de pagos. Create asigna payment.ID.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
}
