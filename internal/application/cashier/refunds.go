package cashier

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Styllo-POS/internal/application/dto"
	"github.com/jhoicas/Styllo-POS/internal/domain"
	"github.com/jhoicas/Styllo-POS/internal/domain/cash"
	"github.com/jhoicas/Styllo-POS/internal/domain/entity"
	"github.com/jhoicas/Styllo-POS/internal/domain/repository"
)

// CreateRefund registra una devolución y quita de la venta de origen un ítem por
// cada producto devuelto; si la venta queda vacía se elimina. Un fallo al
// ajustar la venta no revierte la devolución.
func (uc *UseCase) CreateRefund(ctx context.Context, in dto.RefundRequest) (*dto.RefundResponse, error) {
	user := strings.TrimSpace(in.User)
	if !in.Amount.IsPositive() || user == "" {
		return nil, fmt.Errorf("%w: valor da devolução inválido", domain.ErrInvalidInput)
	}

	r := &entity.Refund{
		ID:     uuid.New().String(),
		SaleID: strings.TrimSpace(in.SaleID),
		Date:   uc.now().UTC(),
		User:   user,
		Reason: strings.TrimSpace(in.Reason),
		Amount: in.Amount,
		Items:  make([]entity.RefundItem, 0, len(in.Items)),
	}
	for _, it := range in.Items {
		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}
		r.Items = append(r.Items, entity.RefundItem{
			ProductID:   strings.TrimSpace(it.ProductID),
			ProductName: it.ProductName,
			Quantity:    qty,
			Amount:      decimal.Max(it.Amount, decimal.Zero),
		})
	}
	if err := uc.refunds.Create(ctx, r); err != nil {
		return nil, storageErr(err)
	}

	if r.SaleID != "" {
		if err := uc.shrinkSale(ctx, r); err != nil {
			uc.log.Warn().Err(err).Str("refund", r.ID).Str("sale", r.SaleID).Msg("venda de origem não ajustada")
		}
	}
	uc.log.Info().Str("id", r.ID).Str("user", user).Str("amount", r.Amount.StringFixed(2)).Msg("devolução registrada")
	return toRefundResponse(r), nil
}

func (uc *UseCase) shrinkSale(ctx context.Context, r *entity.Refund) error {
	sale, err := uc.sales.GetByID(ctx, r.SaleID)
	if err != nil || sale == nil {
		return err
	}
	items := append([]entity.SaleItem(nil), sale.Items...)
	for _, ri := range r.Items {
		if ri.ProductID == "" {
			continue
		}
		for i, it := range items {
			if strings.TrimSpace(it.ID) == ri.ProductID {
				items = append(items[:i], items[i+1:]...)
				break
			}
		}
	}
	if len(items) == 0 {
		return uc.sales.Delete(ctx, sale.ID)
	}
	if len(items) == len(sale.Items) {
		return nil
	}
	return uc.sales.UpdateItems(ctx, sale.ID, items)
}

// ListRefunds histórico de devoluciones, más recientes primero.
func (uc *UseCase) ListRefunds(ctx context.Context, in dto.RefundFilter) ([]dto.RefundResponse, error) {
	from, err := cash.ParseBound(in.From, uc.location(), false)
	if err != nil {
		return nil, err
	}
	to, err := cash.ParseBound(in.To, uc.location(), true)
	if err != nil {
		return nil, err
	}
	list, err := uc.refunds.List(ctx, repository.RefundFilter{
		SaleID: strings.TrimSpace(in.SaleID),
		User:   strings.ToLower(strings.TrimSpace(in.User)),
		From:   from,
		To:     to,
	})
	if err != nil {
		return nil, storageErr(err)
	}
	out := make([]dto.RefundResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *toRefundResponse(r))
	}
	return out, nil
}

// DeleteRefund elimina una devolución. No restaura los ítems de la venta.
func (uc *UseCase) DeleteRefund(ctx context.Context, id string) error {
	r, err := uc.refunds.GetByID(ctx, id)
	if err != nil {
		return storageErr(err)
	}
	if r == nil {
		return fmt.Errorf("%w: devolução não encontrada", domain.ErrNotFound)
	}
	return storageErr(uc.refunds.Delete(ctx, id))
}

func toRefundResponse(r *entity.Refund) *dto.RefundResponse {
	items := make([]dto.RefundItemDTO, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, dto.RefundItemDTO{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Amount:      it.Amount,
		})
	}
	return &dto.RefundResponse{
		ID:     r.ID,
		SaleID: r.SaleID,
		Date:   r.Date,
		User:   r.User,
		Reason: r.Reason,
		Amount: r.Amount,
		Items:  items,
	}
}
