package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento manual de caja.
const (
	TransactionWithdrawal = "sangria"    // retiro de efectivo de la gaveta
	TransactionInfusion   = "suprimento" // aporte de efectivo a la gaveta
)

// CashTransaction movimiento manual de caja. Amount siempre es positivo;
// el sentido lo da Type.
type CashTransaction struct {
	ID          string
	Type        string
	Amount      decimal.Decimal
	User        string
	Date        time.Time
	Description string
}

// Infusion registro del libro de suprimentos. Un suprimento se escribe tanto
// en el log de transacciones como en este libro; al reportar se deduplican.
type Infusion struct {
	ID          string
	Amount      decimal.Decimal
	User        string
	Date        time.Time
	Description string
}
