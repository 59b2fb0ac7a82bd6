package entity

import "github.com/shopspring/decimal"

// Métodos de pago conocidos. Tipo_pago es texto libre; estos son los que envía el frontend.
const (
	PaymentCash = "Efectivo"
	PaymentCard = "Tarjeta"
)

// PaymentMethodMaxLen longitud máxima de Tipo_pago (columna VARCHAR(50)).
const PaymentMethodMaxLen = 50

// PaymentAmountScale decimales que admite Cantidad_pago (columna NUMERIC(12,2)).
const PaymentAmountScale = 2

// PaymentAmountLimit cota exclusiva de Cantidad_pago: NUMERIC(12,2) guarda hasta 10 dígitos enteros.
var PaymentAmountLimit = decimal.New(1, 10)

// Payment registro de pago asociado 1:1 a una orden. Amount es el total declarado por el cliente.
type Payment struct {
	ID     int64
	Method string
	Amount decimal.Decimal
}
