package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
)

// Pasos de escritura de la transacción de órdenes. Se usan como Kind de WriteError.
var (
	ErrPaymentWrite  = errors.New("no se pudo registrar el pago")
	ErrOrderWrite    = errors.New("no se pudo registrar la orden")
	ErrLineItemWrite = errors.New("no se pudo registrar un producto de la orden")
)

// FieldViolation un campo inválido y el motivo.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reúne todas las violaciones encontradas en una sola pasada.
// errors.Is(err, ErrInvalidInput) es verdadero.
type ValidationError struct {
	Violations []FieldViolation
}

// Add registra una violación.
func (e *ValidationError) Add(field, message string) {
	e.Violations = append(e.Violations, FieldViolation{Field: field, Message: message})
}

// OrNil devuelve nil si no hubo violaciones.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Violations) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return "datos incompletos: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// WriteError fallo de uno de los pasos de escritura de una orden.
// Kind es ErrPaymentWrite, ErrOrderWrite o ErrLineItemWrite; para líneas,
// ProductID e Index identifican el producto que falló.
type WriteError struct {
	Kind      error
	ProductID int64
	Index     int
	Cause     error
}

func (e *WriteError) Error() string {
	if errors.Is(e.Kind, ErrLineItemWrite) {
		return fmt.Sprintf("%v (producto %d, posición %d): %v", e.Kind, e.ProductID, e.Index, e.Cause)
	}
	return fmt.Sprintf("%v: %v", e.Kind, e.Cause)
}

// Is permite errors.Is(err, ErrLineItemWrite) y similares.
func (e *WriteError) Is(target error) bool { return target == e.Kind }

func (e *WriteError) Unwrap() error { return e.Cause }

// Step nombre corto del paso, para logs y métricas.
func (e *WriteError) Step() string {
	switch e.Kind {
	case ErrPaymentWrite:
		return "pago"
	case ErrLineItemWrite:
		return "orden_producto"
	default:
		return "orden"
	}
}
