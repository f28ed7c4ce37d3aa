package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RefundItem producto devuelto dentro de una devolución.
type RefundItem struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Amount      decimal.Decimal `json:"amount"`
}

// Refund devolución de productos. SaleID vacío cuando no se conoce la venta de origen.
type Refund struct {
	ID     string
	SaleID string
	Date   time.Time
	User   string
	Reason string
	Amount decimal.Decimal
	Items  []RefundItem
}

// Value devuelve Amount o, si está en cero, la suma de los ítems.
func (r *Refund) Value() decimal.Decimal {
	if !r.Amount.IsZero() {
		return r.Amount.Abs()
	}
	total := decimal.Zero
	for _, it := range r.Items {
		total = total.Add(it.Amount)
	}
	return total.Abs()
}
