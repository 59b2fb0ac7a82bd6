package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-rb-api/internal/application/dto"
	"github.com/jhoicas/restaurante-rb-api/internal/application/usecase"
)

var userMessages = errorMessages{
	NotFound: "Usuario no encontrado.",
	Conflict: "No se puede eliminar el usuario: tiene órdenes registradas.",
}

// UserHandler perfil y administración de usuarios.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Profile godoc
// @Summary      Perfil del usuario autenticado
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /profile [get]
func (h *UserHandler) Profile(c *fiber.Ctx) error {
	out, err := h.uc.Profile(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, err, userMessages)
	}
	return c.JSON(fiber.Map{"success": true, "user": out})
}

// List godoc
// @Summary      Listar usuarios (administrador)
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserListResponse
// @Router       /users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err, userMessages)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar usuario (administrador)
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateUserRequest  true  "Id_usuario, Nombre, Correo_electronico requeridos"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /admin/users [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), in)
	if err != nil {
		return respondError(c, err, userMessages)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Usuario actualizado exitosamente.", "user": out})
}

// Delete godoc
// @Summary      Eliminar usuario (administrador)
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del usuario"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /admin/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c, "ID de usuario inválido.")
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, userMessages)
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Usuario eliminado exitosamente."})
}
