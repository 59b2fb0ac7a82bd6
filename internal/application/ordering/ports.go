package ordering

import (
	"context"
	"time"

	"github.com/jhoicas/restaurante-rb-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-rb-api/internal/domain/repository"
)

// TxRunner abre una transacción, ejecuta fn con los repositorios de escritura atados a ella
// y hace Commit solo si fn devuelve nil. Ante cualquier error, Rollback.
type TxRunner interface {
	RunOrder(ctx context.Context, fn func(
		payments repository.PaymentRepository,
		orders repository.OrderRepository,
	) error) error
}

// CodeGenerator sortea el código interno de la orden (Codigo_orden).
type CodeGenerator interface {
	Next() int
}

// Metrics contadores de la transacción de órdenes.
type Metrics interface {
	OrderPlaced(items int, elapsed time.Duration)
	OrderFailed(step string, elapsed time.Duration)
}

// ReceiptGenerator produce el PDF de una orden.
type ReceiptGenerator interface {
	GenerateOrderReceipt(ctx context.Context, restaurant string, detail *entity.OrderDetail) ([]byte, error)
}

type nopMetrics struct{}

func (nopMetrics) OrderPlaced(int, time.Duration)    {}
func (nopMetrics) OrderFailed(string, time.Duration) {}
