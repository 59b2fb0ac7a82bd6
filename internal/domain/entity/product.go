package entity

import "github.com/shopspring/decimal"

// Product un plato o bebida del menú.
type Product struct {
	ID          int64
	Name        string
	Price       decimal.Decimal
	Type        string // categoría libre: "Plato fuerte", "Bebida", ...
	Description string
	Image       string // URL; la subida de archivos no se maneja aquí
}
