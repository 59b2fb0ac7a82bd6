package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-rb-api/internal/application/auth"
	"github.com/jhoicas/restaurante-rb-api/internal/application/dto"
	"github.com/jhoicas/restaurante-rb-api/internal/domain"
)

// AuthHandler maneja registro, login y sesión.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Signup godoc
// @Summary      Registrar cliente
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignupRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var in dto.SignupRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Signup(c.UserContext(), in)
	if err != nil {
		return respondError(c, err, errorMessages{Internal: "Error al registrar el usuario."})
	}
	requestLog(c).Info().Int64("usuario_id", out.User.ID).Msg("usuario registrado")
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Correo_electronico, Contrasena"
// @Success      200   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		if err == domain.ErrUnauthorized {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "Credenciales incorrectas."})
		}
		return respondError(c, err, errorMessages{Internal: "Error al iniciar sesión."})
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión (el cliente descarta el token)
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return c.JSON(dto.MessageResponse{Success: true, Message: auth.MsgLogout})
}

// CheckSession godoc
// @Summary      Verificar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Failure      401  {object}  dto.SessionResponse
// @Router       /check-session [get]
func (h *AuthHandler) CheckSession(c *fiber.Ctx) error {
	out, err := h.uc.Session(c.UserContext(), CallerFrom(c))
	if err != nil {
		if err == domain.ErrUnauthorized {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.SessionResponse{Authenticated: false})
		}
		return respondError(c, err, errorMessages{})
	}
	return c.JSON(out)
}
