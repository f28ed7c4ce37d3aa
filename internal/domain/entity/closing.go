package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Resultado de un fechamento de caixa.
const (
	ClosingMatched = "Matched" // bateu
	ClosingShort   = "Short"   // faltou
	ClosingOver    = "Over"    // sobrou
)

// ExpectedSnapshot copia del resumen del día en el momento del fechamento,
// ya ajustado por el delta de troco.
type ExpectedSnapshot struct {
	Date                  string          `json:"date"`
	Suprimentos           decimal.Decimal `json:"suprimentos"`
	VendasDinheiro        decimal.Decimal `json:"vendasDinheiro"`
	VendasCartao          decimal.Decimal `json:"vendasCartao"`
	Sangrias              decimal.Decimal `json:"sangrias"`
	TrocoCartaoPix        decimal.Decimal `json:"trocoCartaoPix"`
	Devolucoes            decimal.Decimal `json:"devolucoes"`
	DevolucoesDinheiro    decimal.Decimal `json:"devolucoesDinheiro"`
	DevolucoesCartao      decimal.Decimal `json:"devolucoesCartao"`
	EsperadoCaixaDinheiro decimal.Decimal `json:"esperadoCaixaDinheiro"`
	EsperadoGeral         decimal.Decimal `json:"esperadoGeral"`
	AjusteTroco           decimal.Decimal `json:"ajusteTroco"`
	TrocoEntregue         decimal.Decimal `json:"trocoEntregue"`
	Corte                 *time.Time      `json:"corte"`
}

// CountedAmounts valores contados por el gerente.
type CountedAmounts struct {
	Cash decimal.Decimal `json:"cash"`
	Card decimal.Decimal `json:"card"`
}

// Differences contado menos esperado, por canal y total.
type Differences struct {
	Cash    decimal.Decimal `json:"cash"`
	Card    decimal.Decimal `json:"card"`
	Overall decimal.Decimal `json:"overall"`
}

// ClosingRecord fechamento de caixa. Append-only: el más reciente de un día
// define el corte a partir del cual se vuelve a acumular.
type ClosingRecord struct {
	ID          string
	Day         string // YYYY-MM-DD
	CreatedAt   time.Time
	User        string
	Expected    ExpectedSnapshot
	Counted     CountedAmounts
	Differences Differences
	Status      string
}
