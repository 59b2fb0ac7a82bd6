package dto

import "github.com/shopspring/decimal"

// OrderItemRequest una entrada del carrito.
type OrderItemRequest struct {
	ProductID int64 `json:"Id_producto"`
	Quantity  int   `json:"cantidad"`
}

// CreateOrderRequest cuerpo de POST /orders. Total es el monto declarado por el cliente.
type CreateOrderRequest struct {
	Items         []OrderItemRequest `json:"productos"`
	PaymentMethod string             `json:"tipo_pago"`
	Total         decimal.Decimal    `json:"total"`
}

// CreateOrderResponse respuesta 201 de POST /orders.
type CreateOrderResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	OrderID   int64  `json:"orden_id"`
	OrderCode string `json:"codigo_orden"`
}

// OrderSummaryResponse fila del historial de órdenes.
type OrderSummaryResponse struct {
	ID            int64           `json:"Id_orden"`
	Date          string          `json:"Fecha_orden"`
	Time          string          `json:"Hora_orden"`
	Code          int             `json:"Codigo_orden"`
	PublicCode    string          `json:"codigo_publico"`
	UserID        int64           `json:"Id_usuario"`
	FirstName     string          `json:"Nombre"`
	LastName      string          `json:"Apellido"`
	Email         string          `json:"Correo_electronico"`
	PaymentID     int64           `json:"Id_pagos"`
	PaymentMethod string          `json:"Tipo_pago"`
	PaymentAmount decimal.Decimal `json:"Cantidad_pago"`
}

// OrderListResponse respuesta de GET /orders y GET /orders/user.
type OrderListResponse struct {
	Success bool                   `json:"success"`
	Orders  []OrderSummaryResponse `json:"orders"`
}

// OrderHeaderResponse cabecera del detalle (incluye teléfono del cliente).
type OrderHeaderResponse struct {
	OrderSummaryResponse
	Phone string `json:"Telefono"`
}

// OrderItemResponse línea del detalle con los datos del producto.
type OrderItemResponse struct {
	ProductID   int64           `json:"Id_producto"`
	Name        string          `json:"Nombre_producto"`
	Price       decimal.Decimal `json:"Precio_producto"`
	Type        string          `json:"Tipo_producto"`
	Description string          `json:"Descripcion"`
	Image       string          `json:"Imagen"`
	Quantity    int             `json:"cantidad"`
}

// OrderDetailResponse respuesta de GET /orders/:id.
type OrderDetailResponse struct {
	Success bool                `json:"success"`
	Order   OrderHeaderResponse `json:"orden"`
	Items   []OrderItemResponse `json:"productos"`
}
