package ordering

import (
	"context"
	"fmt"

	"github.com/jhoicas/restaurante-rb-api/internal/domain/entity"
)

// ReceiptUseCase genera el comprobante PDF de una orden.
type ReceiptUseCase struct {
	query      *QueryService
	policy     AccessPolicy
	generator  ReceiptGenerator
	restaurant string
}

// NewReceiptUseCase construye el caso de uso. restaurant es el nombre impreso en el encabezado.
func NewReceiptUseCase(query *QueryService, policy AccessPolicy, generator ReceiptGenerator, restaurant string) *ReceiptUseCase {
	return &ReceiptUseCase{query: query, policy: policy, generator: generator, restaurant: restaurant}
}

// Download devuelve los bytes del PDF y el nombre de archivo sugerido.
//
// Retorna:
//   - domain.ErrNotFound  si la orden no existe.
//   - domain.ErrForbidden si el caller no es dueño ni administrador.
func (uc *ReceiptUseCase) Download(ctx context.Context, caller entity.Caller, orderID int64) ([]byte, string, error) {
	detail, err := uc.query.GetDetails(ctx, orderID)
	if err != nil {
		return nil, "", err
	}
	if err := Authorize(uc.policy, caller, detail.Header.UserID); err != nil {
		return nil, "", err
	}

	pdf, err := uc.generator.GenerateOrderReceipt(ctx, uc.restaurant, detail)
	if err != nil {
		return nil, "", fmt.Errorf("comprobante: generación fallida: %w", err)
	}
	return pdf, fmt.Sprintf("comprobante_%s.pdf", entity.PublicOrderCode(orderID)), nil
}
