package ordering

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-rb-api/internal/application/dto"
	"github.com/jhoicas/restaurante-rb-api/internal/domain"
	"github.com/jhoicas/restaurante-rb-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-rb-api/pkg/sanitize"
)

// placeOrderCommand la petición ya validada y normalizada.
type placeOrderCommand struct {
	items         []dto.OrderItemRequest
	paymentMethod string
	total         decimal.Decimal
}

// validateCreateOrder revisa todo el cuerpo en una sola pasada y devuelve
// *domain.ValidationError con todas las violaciones encontradas.
func validateCreateOrder(in dto.CreateOrderRequest) (placeOrderCommand, error) {
	verr := &domain.ValidationError{}

	if len(in.Items) == 0 {
		verr.Add("productos", "debe contener al menos un producto")
	}
	for i, it := range in.Items {
		if it.ProductID <= 0 {
			verr.Add(fmt.Sprintf("productos[%d].Id_producto", i), "es requerido")
		}
		switch {
		case it.Quantity < 1:
			verr.Add(fmt.Sprintf("productos[%d].cantidad", i), "debe ser mayor o igual a 1")
		case it.Quantity > entity.LineItemQuantityMax:
			verr.Add(fmt.Sprintf("productos[%d].cantidad", i), fmt.Sprintf("máximo %d", entity.LineItemQuantityMax))
		}
	}

	method := sanitize.Text(in.PaymentMethod)
	switch {
	case method == "":
		verr.Add("tipo_pago", "es requerido")
	case sanitize.Len(method) > entity.PaymentMethodMaxLen:
		verr.Add("tipo_pago", fmt.Sprintf("máximo %d caracteres", entity.PaymentMethodMaxLen))
	}

	switch {
	case !in.Total.IsPositive():
		verr.Add("total", "debe ser mayor que cero")
	case !in.Total.Equal(in.Total.Truncate(entity.PaymentAmountScale)):
		verr.Add("total", fmt.Sprintf("máximo %d decimales", entity.PaymentAmountScale))
	case in.Total.GreaterThanOrEqual(entity.PaymentAmountLimit):
		verr.Add("total", "debe ser menor que "+entity.PaymentAmountLimit.String())
	}

	if err := verr.OrNil(); err != nil {
		return placeOrderCommand{}, err
	}
	return placeOrderCommand{
		items:         in.Items,
		paymentMethod: method,
		total:         in.Total,
	}, nil
}
