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

var _ repository.ClosingRepository = (*ClosingRepo)(nil)

const closingColumns = `id, day, created_at, username, expected, cash_counted, card_counted,
	diff_cash, diff_card, diff_overall, status`

// ClosingRepo fechamentos de caixa. Son inmutables: no hay Update ni Delete.
type ClosingRepo struct {
	q Querier
}

// NewClosingRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClosingRepository(q Querier) *ClosingRepo {
	return &ClosingRepo{q: q}
}

// Create persiste un fechamento con el esperado congelado en JSONB.
func (r *ClosingRepo) Create(ctx context.Context, c *entity.ClosingRecord) error {
	expected, err := json.Marshal(c.Expected)
	if err != nil {
		return fmt.Errorf("marshal closing snapshot: %w", err)
	}
	query := `
		INSERT INTO closings (` + closingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = r.q.Exec(ctx, query,
		c.ID, c.Day, c.CreatedAt, c.User, expected, c.Counted.Cash, c.Counted.Card,
		c.Differences.Cash, c.Differences.Card, c.Differences.Overall, c.Status,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert closing: %w", err)
	}
	return nil
}

// GetByID obtiene un fechamento por ID.
func (r *ClosingRepo) GetByID(ctx context.Context, id string) (*entity.ClosingRecord, error) {
	c, err := scanClosing(r.q.QueryRow(ctx, `SELECT `+closingColumns+` FROM closings WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get closing: %w", err)
	}
	return c, nil
}

// List histórico filtrado, más recientes primero.
func (r *ClosingRepo) List(ctx context.Context, f repository.ClosingFilter) ([]*entity.ClosingRecord, error) {
	var w whereBuilder
	if f.Day != "" {
		w.add(`day = ?`, f.Day)
	}
	if f.User != "" {
		w.add(`username ILIKE ?`, likePattern(f.User))
	}
	if f.FromDay != "" {
		w.add(`day >= ?`, f.FromDay)
	}
	if f.ToDay != "" {
		w.add(`day <= ?`, f.ToDay)
	}
	rows, err := r.q.Query(ctx, `SELECT `+closingColumns+` FROM closings`+w.sql()+` ORDER BY created_at DESC`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list closings: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.ClosingRecord, 0)
	for rows.Next() {
		c, err := scanClosing(rows)
		if err != nil {
			return nil, fmt.Errorf("scan closing: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func scanClosing(row pgx.Row) (*entity.ClosingRecord, error) {
	var (
		c   entity.ClosingRecord
		raw []byte
	)
	err := row.Scan(&c.ID, &c.Day, &c.CreatedAt, &c.User, &raw, &c.Counted.Cash, &c.Counted.Card,
		&c.Differences.Cash, &c.Differences.Card, &c.Differences.Overall, &c.Status)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &c.Expected); err != nil {
		return nil, fmt.Errorf("unmarshal closing snapshot: %w", err)
	}
	return &c, nil
}
