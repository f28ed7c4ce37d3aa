package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Styllo-POS/internal/domain"
	"github.com/jhoicas/Styllo-POS/internal/domain/entity"
	"github.com/jhoicas/Styllo-POS/internal/domain/repository"
)

var _ repository.InfusionRepository = (*InfusionRepo)(nil)

// InfusionRepo libro dedicado de suprimentos (usable con pool o tx).
type InfusionRepo struct {
	q Querier
}

// NewInfusionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInfusionRepository(q Querier) *InfusionRepo {
	return &InfusionRepo{q: q}
}

// Create persiste un suprimento.
func (r *InfusionRepo) Create(ctx context.Context, inf *entity.Infusion) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO infusions (id, amount, username, date, description) VALUES ($1, $2, $3, $4, $5)`,
		inf.ID, inf.Amount, inf.User, inf.Date, inf.Description,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert infusion: %w", err)
	}
	return nil
}

// Delete elimina un suprimento por ID.
func (r *InfusionRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM infusions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete infusion: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteMatching borra el más antiguo de la ventana con el mismo valor y usuario.
func (r *InfusionRepo) DeleteMatching(ctx context.Context, from, to time.Time, amount decimal.Decimal, user string) (int64, error) {
	query := `
		DELETE FROM infusions WHERE id = (
			SELECT id FROM infusions
			WHERE date >= $1 AND date < $2 AND amount = $3 AND lower(username) = lower($4)
			ORDER BY date
			LIMIT 1
		)`
	cmd, err := r.q.Exec(ctx, query, from, to, amount, user)
	if err != nil {
		return 0, fmt.Errorf("delete matching infusion: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// List suprimentos en [from, to), más recientes primero. Nil no acota.
func (r *InfusionRepo) List(ctx context.Context, from, to *time.Time) ([]*entity.Infusion, error) {
	var w whereBuilder
	if from != nil {
		w.add(`date >= ?`, *from)
	}
	if to != nil {
		w.add(`date < ?`, *to)
	}
	rows, err := r.q.Query(ctx,
		`SELECT id, amount, username, date, description FROM infusions`+w.sql()+` ORDER BY date DESC`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list infusions: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Infusion, 0)
	for rows.Next() {
		var inf entity.Infusion
		if err := rows.Scan(&inf.ID, &inf.Amount, &inf.User, &inf.Date, &inf.Description); err != nil {
			return nil, fmt.Errorf("scan infusion: %w", err)
		}
		list = append(list, &inf)
	}
	return list, rows.Err()
}
