// Package sales contiene los casos de uso del checkout y del histórico de ventas.
package sales

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Styllo-POS/internal/application/dto"
	"github.com/jhoicas/Styllo-POS/internal/domain"
	"github.com/jhoicas/Styllo-POS/internal/domain/cash"
	"github.com/jhoicas/Styllo-POS/internal/domain/entity"
	"github.com/jhoicas/Styllo-POS/internal/domain/repository"
)

// UseCase ventas: registro, histórico paginado, resumen por día y correcciones.
type UseCase struct {
	repo repository.SaleRepository
	loc  *time.Location
	now  func() time.Time
}

// NewUseCase construye el caso de uso. loc define el día calendario de los agregados.
func NewUseCase(repo repository.SaleRepository, loc *time.Location) *UseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &UseCase{repo: repo, loc: loc, now: time.Now}
}

// Create registra una venta. El troco negativo se normaliza a cero.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	seller := strings.TrimSpace(in.Seller)
	if len(in.Items) == 0 || seller == "" {
		return nil, fmt.Errorf("%w: dados da venda incompletos", domain.ErrInvalidInput)
	}
	method := entity.ParsePaymentMethod(in.PaymentMethod)
	items := make([]entity.SaleItem, 0, len(in.Items))
	for _, it := range in.Items {
		if strings.TrimSpace(it.ID) == "" || it.UnitValue.IsNegative() {
			return nil, fmt.Errorf("%w: item de venda inválido", domain.ErrInvalidInput)
		}
		items = append(items, entity.SaleItem{ID: strings.TrimSpace(it.ID), Name: it.Name, UnitValue: it.UnitValue})
	}

	sale := &entity.Sale{
		ID:             uuid.New().String(),
		Date:           uc.now().UTC(),
		Items:          items,
		Seller:         seller,
		PaymentMethod:  method,
		ReceivedAmount: decimal.Max(in.ReceivedAmount, decimal.Zero),
		ChangeGiven:    decimal.Max(in.ChangeGiven, decimal.Zero),
	}
	if err := uc.repo.Create(ctx, sale); err != nil {
		return nil, err
	}
	return ToSaleResponse(sale), nil
}

// List histórico paginado. Una página fuera de rango se ajusta a la última.
func (uc *UseCase) List(ctx context.Context, in dto.SaleFilter) (*dto.SaleListResponse, error) {
	f, err := uc.filter(in)
	if err != nil {
		return nil, err
	}
	page := in.PageRequest
	page.Normalize()
	f.Page = repository.Page{Limit: page.PageSize, Offset: page.Offset()}

	list, total, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	meta := dto.NewPageResponse(page, total)
	if page.Page > meta.TotalPages {
		page.Page = meta.TotalPages
		f.Offset = page.Offset()
		if list, total, err = uc.repo.List(ctx, f); err != nil {
			return nil, err
		}
		meta = dto.NewPageResponse(page, total)
	}

	results := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		results = append(results, *ToSaleResponse(s))
	}
	return &dto.SaleListResponse{PageResponse: meta, Results: results}, nil
}

// Summary totales y agregados por día (ascendente) de las ventas filtradas.
func (uc *UseCase) Summary(ctx context.Context, in dto.SaleFilter) (*dto.SalesSummaryResponse, error) {
	f, err := uc.filter(in)
	if err != nil {
		return nil, err
	}
	f.Page = repository.Page{}
	list, _, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}

	out := &dto.SalesSummaryResponse{TotalValue: decimal.Zero, ByDate: []dto.SalesDayBucket{}}
	buckets := make(map[string]*dto.SalesDayBucket)
	for _, s := range list {
		key := cash.DayKey(s.Date, uc.loc)
		b, ok := buckets[key]
		if !ok {
			b = &dto.SalesDayBucket{Date: key, TotalValue: decimal.Zero}
			buckets[key] = b
		}
		total := s.Total()
		b.TotalValue = b.TotalValue.Add(total)
		b.TotalItems += len(s.Items)
		b.Count++
		out.TotalValue = out.TotalValue.Add(total)
		out.TotalItems += len(s.Items)
		out.Count++
	}
	for _, b := range buckets {
		out.ByDate = append(out.ByDate, *b)
	}
	sort.Slice(out.ByDate, func(i, j int) bool { return out.ByDate[i].Date < out.ByDate[j].Date })
	return out, nil
}

// Delete elimina una venta completa.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	sale, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sale == nil {
		return fmt.Errorf("%w: venda não encontrada", domain.ErrNotFound)
	}
	return uc.repo.Delete(ctx, id)
}

// RemoveItems quita ítems por índice o, si no hay índices, por ID de producto
// (todas las líneas con ese ID). La venta se conserva aunque quede vacía.
func (uc *UseCase) RemoveItems(ctx context.Context, id string, in dto.RemoveItemsRequest) (*dto.RemoveItemsResponse, error) {
	if len(in.Indices) == 0 && len(in.ProductIDs) == 0 {
		return nil, fmt.Errorf("%w: informe indices ou productIds para remover", domain.ErrInvalidInput)
	}
	sale, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, fmt.Errorf("%w: venda não encontrada", domain.ErrNotFound)
	}

	kept, removed := RemoveSaleItems(sale.Items, in.Indices, in.ProductIDs)
	if err := uc.repo.UpdateItems(ctx, id, kept); err != nil {
		return nil, err
	}
	return &dto.RemoveItemsResponse{
		Message: fmt.Sprintf("Itens removidos: %d.", removed),
		Removed: removed,
	}, nil
}

// RemoveSaleItems devuelve los ítems restantes y cuántos se quitaron.
func RemoveSaleItems(items []entity.SaleItem, indices []int, productIDs []string) ([]entity.SaleItem, int) {
	kept := make([]entity.SaleItem, 0, len(items))
	if len(indices) > 0 {
		drop := make(map[int]struct{}, len(indices))
		for _, i := range indices {
			if i >= 0 && i < len(items) {
				drop[i] = struct{}{}
			}
		}
		for i, it := range items {
			if _, ok := drop[i]; !ok {
				kept = append(kept, it)
			}
		}
		return kept, len(drop)
	}
	drop := make(map[string]struct{}, len(productIDs))
	for _, p := range productIDs {
		drop[p] = struct{}{}
	}
	for _, it := range items {
		if _, ok := drop[it.ID]; !ok {
			kept = append(kept, it)
		}
	}
	return kept, len(items) - len(kept)
}

func (uc *UseCase) filter(in dto.SaleFilter) (repository.SaleFilter, error) {
	from, err := cash.ParseBound(in.From, uc.loc, false)
	if err != nil {
		return repository.SaleFilter{}, err
	}
	to, err := cash.ParseBound(in.To, uc.loc, true)
	if err != nil {
		return repository.SaleFilter{}, err
	}
	sortKey := in.Sort
	switch sortKey {
	case repository.SortDateAsc, repository.SortDateDesc, repository.SortTotalAsc, repository.SortTotalDesc:
	default:
		sortKey = repository.SortDateDesc
	}
	return repository.SaleFilter{
		ID:        strings.TrimSpace(in.ID),
		From:      from,
		To:        to,
		Seller:    strings.ToLower(strings.TrimSpace(in.Seller)),
		ProductID: strings.ToLower(strings.TrimSpace(in.ProductID)),
		Search:    strings.ToLower(strings.TrimSpace(in.Search)),
		Sort:      sortKey,
	}, nil
}

// ToSaleResponse mapea la entidad a la salida con totales calculados.
func ToSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	items := make([]dto.SaleItemDTO, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemDTO{ID: it.ID, Name: it.Name, UnitValue: it.UnitValue})
	}
	return &dto.SaleResponse{
		ID:             s.ID,
		Date:           s.Date,
		Seller:         s.Seller,
		PaymentMethod:  string(s.PaymentMethod),
		ReceivedAmount: s.ReceivedAmount,
		ChangeGiven:    s.ChangeGiven,
		TotalItems:     len(s.Items),
		TotalValue:     s.Total(),
		Items:          items,
	}
}
