package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Styllo-POS/internal/domain"
	"github.com/jhoicas/Styllo-POS/internal/domain/entity"
	"github.com/jhoicas/Styllo-POS/internal/domain/repository"
)

var _ repository.RefundRepository = (*RefundRepo)(nil)

const refundColumns = `id, COALESCE(sale_id, ''), date, username, reason, amount, items`

// RefundRepo devoluciones sobre PostgreSQL; los ítems van en JSONB.
type RefundRepo struct {
	q Querier
}

// NewRefundRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRefundRepository(q Querier) *RefundRepo {
	return &RefundRepo{q: q}
}

// Create persiste una devolución. SaleID vacío se guarda como NULL.
func (r *RefundRepo) Create(ctx context.Context, rf *entity.Refund) error {
	items := rf.Items
	if items == nil {
		items = []entity.RefundItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal refund items: %w", err)
	}
	query := `
		INSERT INTO refunds (id, sale_id, date, username, reason, amount, items)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7)`
	if _, err := r.q.Exec(ctx, query, rf.ID, rf.SaleID, rf.Date, rf.User, rf.Reason, rf.Amount, raw); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert refund: %w", err)
	}
	return nil
}

// GetByID obtiene una devolución por ID.
func (r *RefundRepo) GetByID(ctx context.Context, id string) (*entity.Refund, error) {
	rf, err := scanRefund(r.q.QueryRow(ctx, `SELECT `+refundColumns+` FROM refunds WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get refund: %w", err)
	}
	return rf, nil
}

// Delete elimina una devolución por ID.
func (r *RefundRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM refunds WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete refund: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devoluciones filtradas, más recientes primero.
func (r *RefundRepo) List(ctx context.Context, f repository.RefundFilter) ([]*entity.Refund, error) {
	var w whereBuilder
	if f.SaleID != "" {
		w.add(`sale_id = ?`, f.SaleID)
	}
	if f.User != "" {
		w.add(`lower(username) = ?`, f.User)
	}
	if f.From != nil {
		w.add(`date >= ?`, *f.From)
	}
	if f.To != nil {
		w.add(`date < ?`, *f.To)
	}
	rows, err := r.q.Query(ctx, `SELECT `+refundColumns+` FROM refunds`+w.sql()+` ORDER BY date DESC`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list refunds: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Refund, 0)
	for rows.Next() {
		rf, err := scanRefund(rows)
		if err != nil {
			return nil, fmt.Errorf("scan refund: %w", err)
		}
		list = append(list, rf)
	}
	return list, rows.Err()
}

func scanRefund(row pgx.Row) (*entity.Refund, error) {
	var (
		rf  entity.Refund
		raw []byte
	)
	if err := row.Scan(&rf.ID, &rf.SaleID, &rf.Date, &rf.User, &rf.Reason, &rf.Amount, &raw); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &rf.Items); err != nil {
		return nil, fmt.Errorf("unmarshal refund items: %w", err)
	}
	return &rf, nil
}
