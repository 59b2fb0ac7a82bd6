package dto

import "github.com/jhoicas/restaurante-rb-api/internal/domain"

// ErrorResponse cuerpo de error HTTP. Errors solo aparece en errores de validación.
type ErrorResponse struct {
	Success bool                    `json:"success"`
	Code    string                  `json:"code"`
	Message string                  `json:"message"`
	Errors  []domain.FieldViolation `json:"errors,omitempty"`
}

// MessageResponse respuesta simple de éxito.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
