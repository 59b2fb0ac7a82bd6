package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-rb-api/internal/application/dto"
	"github.com/jhoicas/restaurante-rb-api/internal/application/usecase"
)

var productMessages = errorMessages{
	NotFound: "Producto no encontrado.",
	Conflict: "No se puede eliminar el producto: aparece en órdenes registradas.",
}

// ProductHandler maneja el menú: lectura pública, escritura de administrador.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Router       /products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err, productMessages)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto (administrador)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err, productMessages)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Producto creado exitosamente.", "product": out})
}

// Update godoc
// @Summary      Actualizar producto (administrador)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductRequest  true  "Id_producto requerido"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /admin/products [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), in)
	if err != nil {
		return respondError(c, err, productMessages)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Producto actualizado exitosamente.", "product": out})
}

// Delete godoc
// @Summary      Eliminar producto (administrador)
// @Tags         products
// @Security     Bearer
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /admin/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c, "ID de producto inválido.")
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, productMessages)
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Producto eliminado exitosamente."})
}
