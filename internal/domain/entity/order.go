package entity

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Rango del código interno de orden (Codigo_orden). Se sortea sin verificar unicidad.
const (
	OrderCodeMin = 100000
	OrderCodeMax = 999999
)

// Formatos de Fecha_orden y Hora_orden.
const (
	OrderDateLayout = "2006-01-02"
	OrderTimeLayout = "15:04:05"
)

// LineItemQuantityMax cantidad máxima por línea (columna INTEGER de orden_producto).
const LineItemQuantityMax = math.MaxInt32

// Order cabecera de una orden.
type Order struct {
	ID        int64
	Date      string // OrderDateLayout
	Time      string // OrderTimeLayout
	Code      int    // código interno aleatorio, no único
	UserID    int64
	PaymentID int64
}

// LineItem un producto dentro de una orden. Un mismo producto puede repetirse en varias líneas.
type LineItem struct {
	OrderID   int64
	ProductID int64
	Quantity  int
}

// PublicOrderCode código visible para el cliente: "ORD-" + id con 6 dígitos.
func PublicOrderCode(orderID int64) string {
	return fmt.Sprintf("ORD-%06d", orderID)
}

// OrderSummary fila del historial: orden + datos del usuario + pago.
type OrderSummary struct {
	Order
	UserFirstName string
	UserLastName  string
	UserEmail     string
	PaymentMethod string
	PaymentAmount decimal.Decimal
}

// OrderHeader cabecera del detalle: resumen + teléfono del usuario.
type OrderHeader struct {
	OrderSummary
	UserPhone string
}

// OrderItemView línea de detalle enriquecida con los datos del producto.
type OrderItemView struct {
	ProductID   int64
	Name        string
	Price       decimal.Decimal
	Type        string
	Description string
	Image       string
	Quantity    int
}

// Subtotal precio unitario por cantidad.
func (i OrderItemView) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// OrderDetail cabecera + líneas.
type OrderDetail struct {
	Header OrderHeader
	Items  []OrderItemView
}
