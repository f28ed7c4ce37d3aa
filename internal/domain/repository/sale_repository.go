package repository

import (
	"context"

	"github.com/jhoicas/Styllo-POS/internal/domain/entity"
)

// SaleRepository persistencia de ventas. List devuelve además el total sin paginar.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	UpdateItems(ctx context.Context, id string, items []entity.SaleItem) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f SaleFilter) ([]*entity.Sale, int, error)
}
