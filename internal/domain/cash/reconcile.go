package cash

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Styllo-POS/internal/domain/entity"
)

// DefaultTolerance una unidad de centavo.
var DefaultTolerance = decimal.New(1, -2)

// Reconcile compara lo contado con el resumen (ya ajustado por el delta de troco).
// El esperado en tarjeta es VendasCartao, neto de devoluciones.
func Reconcile(s DailySummary, counted entity.CountedAmounts, tolerance decimal.Decimal) (entity.Differences, string) {
	diff := entity.Differences{
		Cash: counted.Cash.Sub(s.EsperadoCaixaDinheiro).Round(2),
		Card: counted.Card.Sub(s.VendasCartao).Round(2),
	}
	diff.Overall = diff.Cash.Add(diff.Card)
	return diff, Status(diff, tolerance)
}

// Status clasifica la diferencia. Un faltante en cualquier canal manda sobre un
// sobrante en el otro; solo con ambos canales dentro de la tolerancia decide el total.
func Status(d entity.Differences, tolerance decimal.Decimal) string {
	if tolerance.IsNegative() {
		tolerance = tolerance.Neg()
	}
	neg := tolerance.Neg()
	switch {
	case d.Cash.LessThan(neg) || d.Card.LessThan(neg):
		return entity.ClosingShort
	case d.Cash.GreaterThan(tolerance) || d.Card.GreaterThan(tolerance):
		return entity.ClosingOver
	case d.Overall.Abs().LessThanOrEqual(tolerance):
		return entity.ClosingMatched
	case d.Overall.IsNegative():
		return entity.ClosingShort
	default:
		return entity.ClosingOver
	}
}
