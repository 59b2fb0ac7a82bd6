package ordering

import (
	"context"

	"github.com/jhoicas/restaurante-rb-api/internal/application/dto"
	"github.com/jhoicas/restaurante-rb-api/internal/domain"
	"github.com/jhoicas/restaurante-rb-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-rb-api/internal/domain/repository"
	"github.com/jhoicas/restaurante-rb-api/pkg/logger"
)

// QueryService lecturas del historial y detalle de órdenes. No aplica control de acceso:
// eso lo hace quien lo llama con una AccessPolicy.
type QueryService struct {
	repo repository.OrderQueryRepository
	log  *logger.Logger
}

// NewQueryService construye el servicio de lectura.
func NewQueryService(repo repository.OrderQueryRepository, log *logger.Logger) *QueryService {
	if log == nil {
		log = logger.Nop()
	}
	return &QueryService{repo: repo, log: log.Component("ordering")}
}

// ListAll todas las órdenes, más recientes primero (vista de administrador).
func (s *QueryService) ListAll(ctx context.Context) (*dto.OrderListResponse, error) {
	list, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toOrderListResponse(list), nil
}

// ListByUser historial de un usuario, más recientes primero.
func (s *QueryService) ListByUser(ctx context.Context, userID int64) (*dto.OrderListResponse, error) {
	list, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toOrderListResponse(list), nil
}

// GetDetails cabecera + líneas. domain.ErrNotFound si la orden no existe.
// Una orden sin líneas se devuelve igual, pero queda registrada como inconsistencia.
func (s *QueryService) GetDetails(ctx context.Context, orderID int64) (*entity.OrderDetail, error) {
	header, err := s.repo.GetHeader(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if header == nil {
		return nil, domain.ErrNotFound
	}
	items, err := s.repo.ListItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		s.log.Warn().Int64("orden_id", orderID).Msg("orden sin productos: posible inconsistencia de datos")
	}
	return &entity.OrderDetail{Header: *header, Items: items}, nil
}

// ToOrderDetailResponse arma el cuerpo de GET /orders/:id.
func ToOrderDetailResponse(d *entity.OrderDetail) *dto.OrderDetailResponse {
	items := make([]dto.OrderItemResponse, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID:   it.ProductID,
			Name:        it.Name,
			Price:       it.Price,
			Type:        it.Type,
			Description: it.Description,
			Image:       it.Image,
			Quantity:    it.Quantity,
		})
	}
	return &dto.OrderDetailResponse{
		Success: true,
		Order: dto.OrderHeaderResponse{
			OrderSummaryResponse: toOrderSummaryResponse(d.Header.OrderSummary),
			Phone:                d.Header.UserPhone,
		},
		Items: items,
	}
}

func toOrderListResponse(list []entity.OrderSummary) *dto.OrderListResponse {
	out := make([]dto.OrderSummaryResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toOrderSummaryResponse(s))
	}
	return &dto.OrderListResponse{Success: true, Orders: out}
}

func toOrderSummaryResponse(s entity.OrderSummary) dto.OrderSummaryResponse {
	return dto.OrderSummaryResponse{
		ID:            s.ID,
		Date:          s.Date,
		Time:          s.Time,
		Code:          s.Code,
		PublicCode:    entity.PublicOrderCode(s.ID),
		UserID:        s.UserID,
		FirstName:     s.UserFirstName,
		LastName:      s.UserLastName,
		Email:         s.UserEmail,
		PaymentID:     s.PaymentID,
		PaymentMethod: s.PaymentMethod,
		PaymentAmount: s.PaymentAmount,
	}
}
