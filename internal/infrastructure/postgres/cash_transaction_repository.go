package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Styllo-POS/internal/domain"
	"github.com/jhoicas/Styllo-POS/internal/domain/entity"
	"github.com/jhoicas/Styllo-POS/internal/domain/repository"
)

var _ repository.CashTransactionRepository = (*CashTransactionRepo)(nil)

const cashTxColumns = `id, type, amount, username, date, description`

// CashTransactionRepo log de sangrias y suprimentos (usable con pool o tx).
type CashTransactionRepo struct {
	q Querier
}

// NewCashTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCashTransactionRepository(q Querier) *CashTransactionRepo {
	return &CashTransactionRepo{q: q}
}

// Create persiste un movimiento.
func (r *CashTransactionRepo) Create(ctx context.Context, t *entity.CashTransaction) error {
	query := `INSERT INTO cash_transactions (` + cashTxColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.q.Exec(ctx, query, t.ID, t.Type, t.Amount, t.User, t.Date, t.Description); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cash transaction: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *CashTransactionRepo) GetByID(ctx context.Context, id string) (*entity.CashTransaction, error) {
	t, err := scanCashTx(r.q.QueryRow(ctx, `SELECT `+cashTxColumns+` FROM cash_transactions WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cash transaction: %w", err)
	}
	return t, nil
}

// Delete elimina un movimiento por ID.
func (r *CashTransactionRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM cash_transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cash transaction: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List filtra movimientos; User y Search llegan en minúsculas.
func (r *CashTransactionRepo) List(ctx context.Context, f repository.TransactionFilter) ([]*entity.CashTransaction, int, error) {
	var w whereBuilder
	if f.ID != "" {
		w.add(`id = ?`, f.ID)
	}
	if f.Type != "" {
		w.add(`type = ?`, f.Type)
	}
	if f.From != nil {
		w.add(`date >= ?`, *f.From)
	}
	if f.To != nil {
		w.add(`date < ?`, *f.To)
	}
	if f.User != "" {
		w.add(`lower(username) = ?`, f.User)
	}
	if f.Search != "" {
		p := likePattern(f.Search)
		w.add(`(description ILIKE ? OR username ILIKE ?)`, p, p)
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM cash_transactions`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count cash transactions: %w", err)
	}

	order := `date DESC, id`
	switch f.Sort {
	case repository.SortDateAsc:
		order = `date ASC, id`
	case repository.SortAmountDesc:
		order = `amount DESC, date DESC`
	case repository.SortAmountAsc:
		order = `amount ASC, date DESC`
	}
	query := `SELECT ` + cashTxColumns + ` FROM cash_transactions` + w.sql() + ` ORDER BY ` + order
	if f.Limit > 0 {
		query += ` LIMIT ` + w.arg(f.Limit) + ` OFFSET ` + w.arg(f.Offset)
	}
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list cash transactions: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.CashTransaction, 0)
	for rows.Next() {
		t, err := scanCashTx(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan cash transaction: %w", err)
		}
		list = append(list, t)
	}
	return list, total, rows.Err()
}

func scanCashTx(row pgx.Row) (*entity.CashTransaction, error) {
	var t entity.CashTransaction
	if err := row.Scan(&t.ID, &t.Type, &t.Amount, &t.User, &t.Date, &t.Description); err != nil {
		return nil, err
	}
	return &t, nil
}
