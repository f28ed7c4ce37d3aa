package cashier

import (
	"context"

	"github.com/jhoicas/Styllo-POS/internal/domain/entity"
	"github.com/jhoicas/Styllo-POS/internal/domain/repository"
)

// CashTxRunner ejecuta fn en una transacción con el log de caja y el libro de suprimentos.
// Un suprimento se escribe y se borra en ambos o en ninguno.
type CashTxRunner interface {
	RunCash(ctx context.Context, fn func(
		txRepo repository.CashTransactionRepository,
		infRepo repository.InfusionRepository,
	) error) error
}

// ClosingPDFGenerator representación imprimible de un fechamento.
type ClosingPDFGenerator interface {
	GenerateClosingPDF(ctx context.Context, c *entity.ClosingRecord) ([]byte, error)
}

// Metrics contadores de negocio. Nil se reemplaza por una implementación vacía.
type Metrics interface {
	SummaryComputed()
	ClosingRecorded(status string)
}

type noopMetrics struct{}

func (noopMetrics) SummaryComputed()       {}
func (noopMetrics) ClosingRecorded(string) {}
