package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Styllo-POS/internal/domain"
	"github.com/jhoicas/Styllo-POS/internal/domain/entity"
	"github.com/jhoicas/Styllo-POS/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, date, items, seller, payment_method, received_amount, change_given`

// SaleRepo ventas sobre PostgreSQL. Los ítems van en JSONB; total se mantiene
// desnormalizado para ordenar.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una venta.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	items, err := json.Marshal(nonNilItems(s.Items))
	if err != nil {
		return fmt.Errorf("marshal sale items: %w", err)
	}
	query := `
		INSERT INTO sales (id, date, items, seller, payment_method, received_amount, change_given, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.q.Exec(ctx, query,
		s.ID, s.Date, items, s.Seller, string(s.PaymentMethod), s.ReceivedAmount, s.ChangeGiven, s.Total(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	s, err := scanSale(r.q.QueryRow(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

// UpdateItems reemplaza los ítems y recalcula el total.
func (r *SaleRepo) UpdateItems(ctx context.Context, id string, items []entity.SaleItem) error {
	raw, err := json.Marshal(nonNilItems(items))
	if err != nil {
		return fmt.Errorf("marshal sale items: %w", err)
	}
	total := (&entity.Sale{Items: items}).Total()
	cmd, err := r.q.Exec(ctx, `UPDATE sales SET items = $2, total = $3 WHERE id = $1`, id, raw, total)
	if err != nil {
		return fmt.Errorf("update sale items: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una venta por ID.
func (r *SaleRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List filtra ventas; Seller, ProductID y Search llegan en minúsculas.
func (r *SaleRepo) List(ctx context.Context, f repository.SaleFilter) ([]*entity.Sale, int, error) {
	var w whereBuilder
	if f.ID != "" {
		w.add(`id = ?`, f.ID)
	}
	if f.From != nil {
		w.add(`date >= ?`, *f.From)
	}
	if f.To != nil {
		w.add(`date < ?`, *f.To)
	}
	if f.Seller != "" {
		w.add(`lower(seller) = ?`, f.Seller)
	}
	if f.ProductID != "" {
		w.add(`EXISTS (SELECT 1 FROM jsonb_array_elements(items) it WHERE lower(it->>'id') = ?)`, f.ProductID)
	}
	if f.Search != "" {
		p := likePattern(f.Search)
		w.add(`(id ILIKE ? OR seller ILIKE ? OR EXISTS (SELECT 1 FROM jsonb_array_elements(items) it WHERE it->>'name' ILIKE ?))`, p, p, p)
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM sales`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count sales: %w", err)
	}

	query := `SELECT ` + saleColumns + ` FROM sales` + w.sql() + ` ORDER BY ` + saleOrder(f.Sort)
	if f.Limit > 0 {
		query += ` LIMIT ` + w.arg(f.Limit) + ` OFFSET ` + w.arg(f.Offset)
	}
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Sale, 0)
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, total, rows.Err()
}

func saleOrder(sort string) string {
	switch sort {
	case repository.SortDateAsc:
		return `date ASC, id`
	case repository.SortTotalDesc:
		return `total DESC, date DESC`
	case repository.SortTotalAsc:
		return `total ASC, date DESC`
	default:
		return `date DESC, id`
	}
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var (
		s      entity.Sale
		raw    []byte
		method string
	)
	if err := row.Scan(&s.ID, &s.Date, &raw, &s.Seller, &method, &s.ReceivedAmount, &s.ChangeGiven); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &s.Items); err != nil {
		return nil, fmt.Errorf("unmarshal sale items: %w", err)
	}
	s.PaymentMethod = entity.PaymentMethod(method)
	s.ChangeGiven = decimal.Max(s.ChangeGiven, decimal.Zero)
	return &s, nil
}

func nonNilItems(items []entity.SaleItem) []entity.SaleItem {
	if items == nil {
		return []entity.SaleItem{}
	}
	return items
}
