package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-rb-api/internal/application/dto"
	"github.com/jhoicas/restaurante-rb-api/internal/application/ordering"
)

var orderMessages = errorMessages{
	NotFound:  "Orden no encontrada.",
	Forbidden: "No tienes permiso para ver esta orden.",
	Internal:  "Error al crear la orden.",
}

var orderReadMessages = errorMessages{
	NotFound:  orderMessages.NotFound,
	Forbidden: orderMessages.Forbidden,
	Internal:  "Error al obtener las órdenes.",
}

// OrderHandler maneja creación y consulta de órdenes (protegido).
type OrderHandler struct {
	place   *ordering.PlaceOrderUseCase
	query   *ordering.QueryService
	receipt *ordering.ReceiptUseCase
	policy  ordering.AccessPolicy
}

// NewOrderHandler construye el handler. policy decide quién ve el detalle de una orden.
func NewOrderHandler(place *ordering.PlaceOrderUseCase, query *ordering.QueryService, receipt *ordering.ReceiptUseCase, policy ordering.AccessPolicy) *OrderHandler {
	if policy == nil {
		policy = ordering.OwnerOrAdmin{}
	}
	return &OrderHandler{place: place, query: query, receipt: receipt, policy: policy}
}

// Create godoc
// @Summary      Crear orden
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "productos, tipo_pago, total"
// @Success      201   {object}  dto.CreateOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.place.PlaceOrder(c.UserContext(), CallerFrom(c), in)
	if err != nil {
		return respondError(c, err, orderMessages)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListAll godoc
// @Summary      Listar todas las órdenes (administrador)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OrderListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /orders [get]
func (h *OrderHandler) ListAll(c *fiber.Ctx) error {
	out, err := h.query.ListAll(c.UserContext())
	if err != nil {
		return respondError(c, err, orderReadMessages)
	}
	return c.JSON(out)
}

// ListMine godoc
// @Summary      Historial de órdenes del usuario autenticado
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OrderListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /orders/user [get]
func (h *OrderHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.query.ListByUser(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, err, orderReadMessages)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de una orden
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la orden"
// @Success      200  {object}  dto.OrderDetailResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c, "ID de orden inválido.")
	}
	detail, err := h.query.GetDetails(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, orderReadMessages)
	}
	if err := ordering.Authorize(h.policy, CallerFrom(c), detail.Header.UserID); err != nil {
		return respondError(c, err, orderReadMessages)
	}
	return c.JSON(ordering.ToOrderDetailResponse(detail))
}

// Receipt godoc
// @Summary      Comprobante PDF de una orden
// @Tags         orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID de la orden"
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /orders/{id}/receipt [get]
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c, "ID de orden inválido.")
	}
	pdf, filename, err := h.receipt.Download(c.UserContext(), CallerFrom(c), id)
	if err != nil {
		return respondError(c, err, errorMessages{
			NotFound:  orderMessages.NotFound,
			Forbidden: orderMessages.Forbidden,
			Internal:  "Error al generar el comprobante.",
		})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
