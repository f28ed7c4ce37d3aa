// Package cashier contiene los casos de uso de la gaveta: sangrias, suprimentos,
// devoluciones, resumen diario y fechamento de caixa.
package cashier

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Styllo-POS/internal/domain/cash"
	"github.com/jhoicas/Styllo-POS/internal/domain/entity"
	"github.com/jhoicas/Styllo-POS/internal/domain/repository"
)

// Deps dependencias del caso de uso.
type Deps struct {
	Sales        repository.SaleRepository
	Transactions repository.CashTransactionRepository
	Infusions    repository.InfusionRepository
	Refunds      repository.RefundRepository
	Closings     repository.ClosingRepository
	Tx           CashTxRunner
	PDF          ClosingPDFGenerator
	Metrics      Metrics
	Logger       zerolog.Logger
	Location     *time.Location
	Tolerance    decimal.Decimal // cero = cash.DefaultTolerance
}

// UseCase operaciones de caja.
type UseCase struct {
	sales        repository.SaleRepository
	transactions repository.CashTransactionRepository
	infusions    repository.InfusionRepository
	refunds      repository.RefundRepository
	closings     repository.ClosingRepository
	tx           CashTxRunner
	pdf          ClosingPDFGenerator
	metrics      Metrics
	log          zerolog.Logger
	calc         cash.Calculator
	tolerance    decimal.Decimal
	now          func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(d Deps) *UseCase {
	uc := &UseCase{
		sales:        d.Sales,
		transactions: d.Transactions,
		infusions:    d.Infusions,
		refunds:      d.Refunds,
		closings:     d.Closings,
		tx:           d.Tx,
		pdf:          d.PDF,
		metrics:      d.Metrics,
		log:          d.Logger.With().Str("component", "cashier").Logger(),
		calc:         cash.Calculator{Location: d.Location},
		tolerance:    d.Tolerance,
		now:          time.Now,
	}
	if uc.metrics == nil {
		uc.metrics = noopMetrics{}
	}
	if uc.tolerance.IsZero() {
		uc.tolerance = cash.DefaultTolerance
	}
	return uc
}

func (uc *UseCase) location() *time.Location {
	if uc.calc.Location == nil {
		return time.UTC
	}
	return uc.calc.Location
}

// loadLedger lee en paralelo las cinco colecciones necesarias para el día.
// Con strict=false una colección ilegible se registra y se trata como vacía;
// con strict=true el primer error se devuelve.
func (uc *UseCase) loadLedger(ctx context.Context, day string, strict bool) (cash.Ledger, error) {
	from, to, err := cash.DayBounds(day, uc.location())
	if err != nil {
		return cash.Ledger{}, err
	}

	var (
		l    cash.Ledger
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	fail := func(collection string, err error) {
		if !strict {
			uc.log.Warn().Err(err).Str("collection", collection).Str("dia", day).
				Msg("coleção indisponível, considerada vazia")
			return
		}
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
	}

	wg.Add(5)
	go func() {
		defer wg.Done()
		list, _, err := uc.sales.List(ctx, repository.SaleFilter{From: &from, To: &to})
		if err != nil {
			fail("sales", err)
			return
		}
		l.Sales = derefSales(list)
	}()
	go func() {
		defer wg.Done()
		list, _, err := uc.transactions.List(ctx, repository.TransactionFilter{From: &from, To: &to})
		if err != nil {
			fail("cash_transactions", err)
			return
		}
		l.Transactions = derefTransactions(list)
	}()
	go func() {
		defer wg.Done()
		list, err := uc.infusions.List(ctx, &from, &to)
		if err != nil {
			fail("infusions", err)
			return
		}
		l.Infusions = derefInfusions(list)
	}()
	go func() {
		defer wg.Done()
		list, err := uc.refunds.List(ctx, repository.RefundFilter{From: &from, To: &to})
		if err != nil {
			fail("refunds", err)
			return
		}
		l.Refunds = derefRefunds(list)
	}()
	go func() {
		defer wg.Done()
		list, err := uc.closings.List(ctx, repository.ClosingFilter{Day: day})
		if err != nil {
			fail("closings", err)
			return
		}
		l.Closings = derefClosings(list)
	}()
	wg.Wait()

	if len(errs) > 0 {
		return cash.Ledger{}, storageErr(errs[0])
	}
	return l, nil
}

func derefSales(in []*entity.Sale) []entity.Sale {
	out := make([]entity.Sale, 0, len(in))
	for _, s := range in {
		out = append(out, *s)
	}
	return out
}

func derefTransactions(in []*entity.CashTransaction) []entity.CashTransaction {
	out := make([]entity.CashTransaction, 0, len(in))
	for _, t := range in {
		out = append(out, *t)
	}
	return out
}

func derefInfusions(in []*entity.Infusion) []entity.Infusion {
	out := make([]entity.Infusion, 0, len(in))
	for _, i := range in {
		out = append(out, *i)
	}
	return out
}

func derefRefunds(in []*entity.Refund) []entity.Refund {
	out := make([]entity.Refund, 0, len(in))
	for _, r := range in {
		out = append(out, *r)
	}
	return out
}

func derefClosings(in []*entity.ClosingRecord) []entity.ClosingRecord {
	out := make([]entity.ClosingRecord, 0, len(in))
	for _, c := range in {
		out = append(out, *c)
	}
	return out
}
