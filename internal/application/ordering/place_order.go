package ordering

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/restaurante-rb-api/internal/application/dto"
	"github.com/jhoicas/restaurante-rb-api/internal/domain"
	"github.com/jhoicas/restaurante-rb-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-rb-api/internal/domain/repository"
	"github.com/jhoicas/restaurante-rb-api/pkg/logger"
)

// MsgOrderCreated mensaje de la respuesta 201.
const MsgOrderCreated = "Orden creada exitosamente."

// PlaceOrderConfig parámetros de PlaceOrderUseCase.
type PlaceOrderConfig struct {
	// Timeout acota toda la transacción; al vencer, el paso en curso falla y se revierte.
	Timeout  time.Duration
	Location *time.Location
	// Clock por defecto time.Now.
	Clock func() time.Time
}

// PlaceOrderUseCase crea Pago, Orden y sus líneas como una sola unidad atómica.
type PlaceOrderUseCase struct {
	tx      TxRunner
	codes   CodeGenerator
	metrics Metrics
	log     *logger.Logger
	cfg     PlaceOrderConfig
}

// NewPlaceOrderUseCase construye el coordinador. codes y metrics pueden ser nil.
func NewPlaceOrderUseCase(tx TxRunner, codes CodeGenerator, metrics Metrics, log *logger.Logger, cfg PlaceOrderConfig) *PlaceOrderUseCase {
	if codes == nil {
		codes = RandomCodes{}
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if log == nil {
		log = logger.Nop()
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	return &PlaceOrderUseCase{tx: tx, codes: codes, metrics: metrics, log: log.Component("ordering"), cfg: cfg}
}

// PlaceOrder valida la petición y, dentro de una transacción, inserta el pago, la orden
// (con el id del pago) y una línea por cada entrada del carrito (con el id de la orden).
//
// Errores:
//   - *domain.ValidationError (errors.Is ErrInvalidInput): nada se escribió.
//   - *domain.WriteError con Kind ErrPaymentWrite, ErrOrderWrite o ErrLineItemWrite:
//     la transacción se revirtió completa.
//
// No es idempotente: dos llamadas iguales crean dos órdenes.
func (uc *PlaceOrderUseCase) PlaceOrder(ctx context.Context, caller entity.Caller, in dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	cmd, err := validateCreateOrder(in)
	if err != nil {
		uc.log.Info().Err(err).Int64("usuario_id", caller.UserID).Msg("orden rechazada por validación")
		return nil, err
	}

	if uc.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.cfg.Timeout)
		defer cancel()
	}

	started := uc.cfg.Clock()
	now := started.In(uc.cfg.Location)
	var placed entity.Order

	err = uc.tx.RunOrder(ctx, func(payments repository.PaymentRepository, orders repository.OrderRepository) error {
		payment := &entity.Payment{Method: cmd.paymentMethod, Amount: cmd.total}
		if err := payments.Create(ctx, payment); err != nil {
			return &domain.WriteError{Kind: domain.ErrPaymentWrite, Cause: err}
		}

		order := &entity.Order{
			Date:      now.Format(entity.OrderDateLayout),
			Time:      now.Format(entity.OrderTimeLayout),
			Code:      uc.codes.Next(),
			UserID:    caller.UserID,
			PaymentID: payment.ID,
		}
		if err := orders.Create(ctx, order); err != nil {
			return &domain.WriteError{Kind: domain.ErrOrderWrite, Cause: err}
		}

		for i, it := range cmd.items {
			item := &entity.LineItem{OrderID: order.ID, ProductID: it.ProductID, Quantity: it.Quantity}
			if err := orders.AddLineItem(ctx, item); err != nil {
				return &domain.WriteError{Kind: domain.ErrLineItemWrite, ProductID: it.ProductID, Index: i, Cause: err}
			}
		}

		placed = *order
		uc.log.Debug().Int64("pago_id", payment.ID).Int64("orden_id", order.ID).Int("lineas", len(cmd.items)).Msg("escrituras de la orden listas para commit")
		return nil
	})
	elapsed := uc.cfg.Clock().Sub(started)

	if err != nil {
		var we *domain.WriteError
		if !errors.As(err, &we) {
			// begin o commit: no quedó nada escrito.
			we = &domain.WriteError{Kind: domain.ErrOrderWrite, Cause: err}
			err = we
		}
		uc.metrics.OrderFailed(we.Step(), elapsed)
		ev := uc.log.Error().Err(we.Cause).Str("step", we.Step()).Int64("usuario_id", caller.UserID)
		if errors.Is(we, domain.ErrLineItemWrite) {
			ev = ev.Int64("producto_id", we.ProductID).Int("posicion", we.Index)
		}
		ev.Msg("transacción de orden revertida")
		return nil, err
	}

	uc.metrics.OrderPlaced(len(cmd.items), elapsed)
	uc.log.Info().
		Int64("orden_id", placed.ID).
		Int64("pago_id", placed.PaymentID).
		Int64("usuario_id", placed.UserID).
		Int("codigo", placed.Code).
		Msg("orden creada")

	return &dto.CreateOrderResponse{
		Success:   true,
		Message:   MsgOrderCreated,
		OrderID:   placed.ID,
		OrderCode: entity.PublicOrderCode(placed.ID),
	}, nil
}
