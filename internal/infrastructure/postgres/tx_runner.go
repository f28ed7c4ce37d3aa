package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Styllo-POS/internal/application/cashier"
	"github.com/jhoicas/Styllo-POS/internal/domain/repository"
)

var _ cashier.CashTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunCash inicia una transacción, ejecuta fn con los repos de caja atados a la tx y hace Commit o Rollback.
func (r *TxRunner) RunCash(ctx context.Context, fn func(
	txRepo repository.CashTransactionRepository,
	infRepo repository.InfusionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewCashTransactionRepository(tx), NewInfusionRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
