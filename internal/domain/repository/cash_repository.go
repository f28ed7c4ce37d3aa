package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Styllo-POS/internal/domain/entity"
)

// CashTransactionRepository log de sangrias y suprimentos.
// Delete devuelve domain.ErrNotFound si no existe.
type CashTransactionRepository interface {
	Create(ctx context.Context, t *entity.CashTransaction) error
	GetByID(ctx context.Context, id string) (*entity.CashTransaction, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f TransactionFilter) ([]*entity.CashTransaction, int, error)
}

// InfusionRepository libro dedicado de suprimentos.
type InfusionRepository interface {
	Create(ctx context.Context, inf *entity.Infusion) error
	// Delete devuelve domain.ErrNotFound si no existe.
	Delete(ctx context.Context, id string) error
	// DeleteMatching borra como máximo un registro de la ventana [from, to) con
	// el mismo valor y usuario (sin distinguir mayúsculas). Devuelve cuántos borró.
	DeleteMatching(ctx context.Context, from, to time.Time, amount decimal.Decimal, user string) (int64, error)
	List(ctx context.Context, from, to *time.Time) ([]*entity.Infusion, error)
}

// RefundRepository devoluciones.
type RefundRepository interface {
	Create(ctx context.Context, r *entity.Refund) error
	GetByID(ctx context.Context, id string) (*entity.Refund, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f RefundFilter) ([]*entity.Refund, error)
}

// ClosingRepository fechamentos. List devuelve más reciente primero.
type ClosingRepository interface {
	Create(ctx context.Context, c *entity.ClosingRecord) error
	GetByID(ctx context.Context, id string) (*entity.ClosingRecord, error)
	List(ctx context.Context, f ClosingFilter) ([]*entity.ClosingRecord, error)
}
