package dto

import "github.com/shopspring/decimal"

// ProductRequest cuerpo de POST /products y PUT /admin/products (este último requiere Id_producto).
type ProductRequest struct {
	ID          int64           `json:"Id_producto"`
	Name        string          `json:"Nombre_producto"`
	Price       decimal.Decimal `json:"Precio_producto"`
	Type        string          `json:"Tipo_producto"`
	Description string          `json:"Descripcion"`
	Image       string          `json:"Imagen"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          int64           `json:"Id_producto"`
	Name        string          `json:"Nombre_producto"`
	Price       decimal.Decimal `json:"Precio_producto"`
	Type        string          `json:"Tipo_producto"`
	Description string          `json:"Descripcion"`
	Image       string          `json:"Imagen"`
}

// ProductListResponse respuesta de GET /products.
type ProductListResponse struct {
	Success  bool              `json:"success"`
	Products []ProductResponse `json:"products"`
}
