package cash

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Styllo-POS/internal/domain/entity"
)

// Ledger foto de las colecciones leídas para un cálculo.
type Ledger struct {
	Sales        []entity.Sale
	Transactions []entity.CashTransaction
	Infusions    []entity.Infusion
	Refunds      []entity.Refund
	Closings     []entity.ClosingRecord
}

// DailySummary resumen de caja de un día desde el último corte.
// VendasCartao es neto de devoluciones en tarjeta.
type DailySummary struct {
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

// Snapshot copia el resumen al formato persistido junto al fechamento.
func (s DailySummary) Snapshot() entity.ExpectedSnapshot {
	return entity.ExpectedSnapshot{
		Date:                  s.Date,
		Suprimentos:           s.Suprimentos,
		VendasDinheiro:        s.VendasDinheiro,
		VendasCartao:          s.VendasCartao,
		Sangrias:              s.Sangrias,
		TrocoCartaoPix:        s.TrocoCartaoPix,
		Devolucoes:            s.Devolucoes,
		DevolucoesDinheiro:    s.DevolucoesDinheiro,
		DevolucoesCartao:      s.DevolucoesCartao,
		EsperadoCaixaDinheiro: s.EsperadoCaixaDinheiro,
		EsperadoGeral:         s.EsperadoGeral,
		AjusteTroco:           s.AjusteTroco,
		TrocoEntregue:         s.TrocoEntregue,
		Corte:                 s.Corte,
	}
}

// Calculator calcula resúmenes diarios. Location define el día calendario
// de cada registro (nil = UTC).
type Calculator struct {
	Location *time.Location
}

func (c Calculator) location() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}

// Corte devuelve el CreatedAt del fechamento más reciente del día, o nil.
func (c Calculator) Corte(day string, closings []entity.ClosingRecord) *time.Time {
	var corte *time.Time
	for i := range closings {
		if closings[i].Day != day {
			continue
		}
		if corte == nil || closings[i].CreatedAt.After(*corte) {
			t := closings[i].CreatedAt
			corte = &t
		}
	}
	return corte
}

// Summarize agrega ventas, movimientos, suprimentos y devoluciones del día
// posteriores al corte. Función pura: mismas entradas, mismo resultado.
func (c Calculator) Summarize(day string, l Ledger) (DailySummary, error) {
	day, err := ParseDay(day, c.location())
	if err != nil {
		return DailySummary{}, err
	}
	corte := c.Corte(day, l.Closings)
	counts := func(t time.Time) bool {
		if DayKey(t, c.location()) != day {
			return false
		}
		return corte == nil || t.After(*corte)
	}

	var (
		cashSales   = decimal.Zero
		cardSales   = decimal.Zero
		cardChange  = decimal.Zero
		infusions   = decimal.Zero
		withdrawals = decimal.Zero
		cashRefunds = decimal.Zero
		cardRefunds = decimal.Zero
	)

	salesByID := make(map[string]*entity.Sale)
	for i := range l.Sales {
		s := &l.Sales[i]
		if !counts(s.Date) {
			continue
		}
		salesByID[s.ID] = s
		total := s.Total()
		if s.PaymentMethod.IsDigital() {
			credited := total
			if s.ReceivedAmount.IsPositive() {
				credited = s.ReceivedAmount
			}
			cardSales = cardSales.Add(credited)
			if s.ChangeGiven.IsPositive() {
				cardChange = cardChange.Add(s.ChangeGiven)
			}
			continue
		}
		cashSales = cashSales.Add(total)
	}

	for _, inf := range c.MergeInfusions(l.Transactions, l.Infusions) {
		if counts(inf.Date) {
			infusions = infusions.Add(inf.Amount.Abs())
		}
	}

	for _, t := range l.Transactions {
		if t.Type == entity.TransactionWithdrawal && counts(t.Date) {
			withdrawals = withdrawals.Add(t.Amount.Abs())
		}
	}

	for i := range l.Refunds {
		r := &l.Refunds[i]
		if !counts(r.Date) {
			continue
		}
		v := r.Value()
		if v.IsZero() {
			continue
		}
		// venta desconocida o fuera de la ventana: se asume efectivo
		if sale, ok := salesByID[r.SaleID]; ok && sale.PaymentMethod.IsDigital() {
			cardRefunds = cardRefunds.Add(v)
		} else {
			cashRefunds = cashRefunds.Add(v)
		}
	}

	netCash := cashSales.Sub(cashRefunds)
	netCard := cardSales.Sub(cardRefunds)
	expectedCash := infusions.Add(netCash).Sub(withdrawals).Sub(cardChange)

	return DailySummary{
		Date:                  day,
		Suprimentos:           infusions.Round(2),
		VendasDinheiro:        cashSales.Round(2),
		VendasCartao:          netCard.Round(2),
		Sangrias:              withdrawals.Round(2),
		TrocoCartaoPix:        cardChange.Round(2),
		Devolucoes:            cashRefunds.Add(cardRefunds).Round(2),
		DevolucoesDinheiro:    cashRefunds.Round(2),
		DevolucoesCartao:      cardRefunds.Round(2),
		EsperadoCaixaDinheiro: expectedCash.Round(2),
		EsperadoGeral:         expectedCash.Add(netCard).Round(2),
		AjusteTroco:           decimal.Zero,
		TrocoEntregue:         decimal.Zero,
		Corte:                 corte,
	}, nil
}

// ApplyChangeDelta suma el delta de troco (valor con signo, opaco) a los dos
// esperados. delivered solo se registra.
func ApplyChangeDelta(s DailySummary, delta, delivered decimal.Decimal) DailySummary {
	s.EsperadoCaixaDinheiro = s.EsperadoCaixaDinheiro.Add(delta).Round(2)
	s.EsperadoGeral = s.EsperadoGeral.Add(delta).Round(2)
	s.AjusteTroco = delta.Round(2)
	s.TrocoEntregue = delivered.Round(2)
	return s
}

// LatestCutover devuelve el corte más reciente entre todos los días, ignorando
// fechamentos con fecha futura respecto a now.
func LatestCutover(closings []entity.ClosingRecord, now time.Time) *time.Time {
	var latest *time.Time
	for i := range closings {
		t := closings[i].CreatedAt
		if t.After(now) {
			continue
		}
		if latest == nil || t.After(*latest) {
			latest = &t
		}
	}
	return latest
}
