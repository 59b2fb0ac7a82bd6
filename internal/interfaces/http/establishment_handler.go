package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-rb-api/internal/application/dto"
	"github.com/jhoicas/restaurante-rb-api/internal/application/usecase"
)

var establishmentMessages = errorMessages{NotFound: "Establecimiento no encontrado."}

// EstablishmentHandler administra las sedes (solo administrador).
type EstablishmentHandler struct {
	uc *usecase.EstablishmentUseCase
}

// NewEstablishmentHandler construye el handler.
func NewEstablishmentHandler(uc *usecase.EstablishmentUseCase) *EstablishmentHandler {
	return &EstablishmentHandler{uc: uc}
}

// List godoc
// @Summary      Listar sedes
// @Tags         establecimientos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.EstablishmentListResponse
// @Router       /admin/establecimientos [get]
func (h *EstablishmentHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err, establishmentMessages)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear sede
// @Tags         establecimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EstablishmentRequest  true  "Nombre_sede y Ciudad requeridos"
// @Success      201   {object}  dto.EstablishmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /admin/establecimientos [post]
func (h *EstablishmentHandler) Create(c *fiber.Ctx) error {
	var in dto.EstablishmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err, establishmentMessages)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Establecimiento creado exitosamente.", "establecimiento": out})
}

// Update godoc
// @Summary      Actualizar sede
// @Tags         establecimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EstablishmentRequest  true  "Id_Establecimiento y Nombre_sede requeridos"
// @Success      200   {object}  dto.EstablishmentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /admin/establecimientos [put]
func (h *EstablishmentHandler) Update(c *fiber.Ctx) error {
	var in dto.EstablishmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), in)
	if err != nil {
		return respondError(c, err, establishmentMessages)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Establecimiento actualizado exitosamente.", "establecimiento": out})
}

// Delete godoc
// @Summary      Eliminar sede
// @Tags         establecimientos
// @Security     Bearer
// @Param        id   path  int  true  "ID de la sede"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/establecimientos/{id} [delete]
func (h *EstablishmentHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c, "ID de establecimiento inválido.")
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, establishmentMessages)
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Establecimiento eliminado exitosamente."})
}
