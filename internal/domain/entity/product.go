package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo del catálogo de la tienda.
// El ID lo define el operador (código de etiqueta), no se genera en el servidor.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta unitario
	Category    string
	Subcategory string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
