package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem línea de una venta. Cada unidad vendida es una línea propia.
type SaleItem struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	UnitValue decimal.Decimal `json:"unitValue"`
}

// Sale representa una venta registrada en el checkout.
// Es inmutable salvo la remoción de ítems (manual o por devolución).
type Sale struct {
	ID             string
	Date           time.Time
	Items          []SaleItem
	Seller         string
	PaymentMethod  PaymentMethod
	ReceivedAmount decimal.Decimal
	ChangeGiven    decimal.Decimal // troco entregue, nunca negativo
}

// Total suma el valor de los ítems.
func (s *Sale) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range s.Items {
		total = total.Add(it.UnitValue)
	}
	return total
}
