package cashier

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/Styllo-POS/internal/application/dto"
	"github.com/jhoicas/Styllo-POS/internal/domain"
	"github.com/jhoicas/Styllo-POS/internal/domain/cash"
	"github.com/jhoicas/Styllo-POS/internal/domain/entity"
	"github.com/jhoicas/Styllo-POS/internal/domain/repository"
)

// Withdrawal registra una sangria.
func (uc *UseCase) Withdrawal(ctx context.Context, in dto.WithdrawalRequest) (*dto.TransactionResponse, error) {
	user := strings.TrimSpace(in.User)
	if !in.Amount.IsPositive() || user == "" {
		return nil, fmt.Errorf("%w: o valor da sangria é inválido", domain.ErrInvalidInput)
	}
	t := &entity.CashTransaction{
		ID:          uuid.New().String(),
		Type:        entity.TransactionWithdrawal,
		Amount:      in.Amount,
		User:        user,
		Date:        uc.now().UTC(),
		Description: strings.TrimSpace(in.Reason),
	}
	if err := uc.transactions.Create(ctx, t); err != nil {
		return nil, storageErr(err)
	}
	uc.log.Info().Str("id", t.ID).Str("user", user).Str("amount", t.Amount.StringFixed(2)).Msg("sangria registrada")
	return toTransactionResponse(t), nil
}

// Infusion registra un suprimento en el log de caja y en el libro, con el mismo id.
// sessionUser se usa cuando el cuerpo no trae usuario.
func (uc *UseCase) Infusion(ctx context.Context, in dto.InfusionRequest, sessionUser string) (*dto.InfusionResponse, error) {
	if !in.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: o valor do suprimento é inválido", domain.ErrInvalidInput)
	}
	user := strings.TrimSpace(in.User)
	if user == "" {
		user = strings.TrimSpace(sessionUser)
	}
	if user == "" {
		return nil, fmt.Errorf("%w: usuário do suprimento não informado", domain.ErrInvalidInput)
	}
	when := uc.now().UTC()
	if t, err := cash.ParseBound(in.Date, uc.location(), false); err != nil {
		return nil, fmt.Errorf("%w: data do suprimento inválida", domain.ErrInvalidInput)
	} else if t != nil {
		when = t.UTC()
	}

	inf := &entity.Infusion{
		ID:          uuid.New().String(),
		Amount:      in.Amount,
		User:        user,
		Date:        when,
		Description: strings.TrimSpace(in.Description),
	}
	err := uc.tx.RunCash(ctx, func(txRepo repository.CashTransactionRepository, infRepo repository.InfusionRepository) error {
		if err := txRepo.Create(ctx, &entity.CashTransaction{
			ID:          inf.ID,
			Type:        entity.TransactionInfusion,
			Amount:      inf.Amount,
			User:        inf.User,
			Date:        inf.Date,
			Description: inf.Description,
		}); err != nil {
			return err
		}
		return infRepo.Create(ctx, inf)
	})
	if err != nil {
		return nil, storageErr(err)
	}
	uc.log.Info().Str("id", inf.ID).Str("user", user).Str("amount", inf.Amount.StringFixed(2)).Msg("suprimento registrado")
	return toInfusionResponse(inf), nil
}

// ListTransactions histórico paginado de sangrias y suprimentos.
func (uc *UseCase) ListTransactions(ctx context.Context, in dto.TransactionFilter) (*dto.TransactionListResponse, error) {
	from, err := cash.ParseBound(in.From, uc.location(), false)
	if err != nil {
		return nil, err
	}
	to, err := cash.ParseBound(in.To, uc.location(), true)
	if err != nil {
		return nil, err
	}
	sortKey := in.Sort
	switch sortKey {
	case repository.SortDateAsc, repository.SortDateDesc, repository.SortAmountAsc, repository.SortAmountDesc:
	default:
		sortKey = repository.SortDateDesc
	}
	page := in.PageRequest
	page.Normalize()
	f := repository.TransactionFilter{
		ID:     strings.TrimSpace(in.ID),
		Type:   strings.ToLower(strings.TrimSpace(in.Type)),
		From:   from,
		To:     to,
		User:   strings.ToLower(strings.TrimSpace(in.User)),
		Search: strings.ToLower(strings.TrimSpace(in.Search)),
		Sort:   sortKey,
		Page:   repository.Page{Limit: page.PageSize, Offset: page.Offset()},
	}

	list, total, err := uc.transactions.List(ctx, f)
	if err != nil {
		return nil, storageErr(err)
	}
	meta := dto.NewPageResponse(page, total)
	if page.Page > meta.TotalPages {
		page.Page = meta.TotalPages
		f.Offset = page.Offset()
		if list, total, err = uc.transactions.List(ctx, f); err != nil {
			return nil, storageErr(err)
		}
		meta = dto.NewPageResponse(page, total)
	}

	results := make([]dto.TransactionResponse, 0, len(list))
	for _, t := range list {
		results = append(results, *toTransactionResponse(t))
	}
	return &dto.TransactionListResponse{PageResponse: meta, Results: results}, nil
}

// DeleteTransaction borra un movimiento. Si es un suprimento también se quita
// del libro: por id o, si el libro no lo tiene con ese id, por día+valor+usuario.
func (uc *UseCase) DeleteTransaction(ctx context.Context, id string) error {
	t, err := uc.transactions.GetByID(ctx, id)
	if err != nil {
		return storageErr(err)
	}
	if t == nil {
		return fmt.Errorf("%w: transação não encontrada", domain.ErrNotFound)
	}
	if t.Type != entity.TransactionInfusion {
		return storageErr(uc.transactions.Delete(ctx, id))
	}

	from, to, err := cash.DayBounds(cash.DayKey(t.Date, uc.location()), uc.location())
	if err != nil {
		return err
	}
	return storageErr(uc.tx.RunCash(ctx, func(txRepo repository.CashTransactionRepository, infRepo repository.InfusionRepository) error {
		if err := txRepo.Delete(ctx, id); err != nil {
			return err
		}
		err := infRepo.Delete(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			_, err = infRepo.DeleteMatching(ctx, from, to, t.Amount, t.User)
		}
		return err
	}))
}

// ListInfusions suprimentos consolidados (log + libro), más recientes primero.
// activeOnly deja solo los posteriores al último fechamento de cualquier día;
// un fechamento con fecha futura se ignora.
func (uc *UseCase) ListInfusions(ctx context.Context, activeOnly bool) ([]dto.InfusionResponse, error) {
	txs, _, err := uc.transactions.List(ctx, repository.TransactionFilter{Type: entity.TransactionInfusion})
	if err != nil {
		uc.log.Warn().Err(err).Str("collection", "cash_transactions").Msg("coleção indisponível, considerada vazia")
		txs = nil
	}
	ledger, err := uc.infusions.List(ctx, nil, nil)
	if err != nil {
		uc.log.Warn().Err(err).Str("collection", "infusions").Msg("coleção indisponível, considerada vazia")
		ledger = nil
	}
	merged := uc.calc.MergeInfusions(derefTransactions(txs), derefInfusions(ledger))

	if activeOnly {
		closings, err := uc.closings.List(ctx, repository.ClosingFilter{})
		if err != nil {
			uc.log.Warn().Err(err).Str("collection", "closings").Msg("coleção indisponível, considerada vazia")
		}
		if corte := cash.LatestCutover(derefClosings(closings), uc.now()); corte != nil {
			active := merged[:0]
			for _, inf := range merged {
				if inf.Date.After(*corte) {
					active = append(active, inf)
				}
			}
			merged = active
		}
	}

	out := make([]dto.InfusionResponse, 0, len(merged))
	for i := range merged {
		out = append(out, *toInfusionResponse(&merged[i]))
	}
	return out, nil
}

// DeleteInfusion borra un suprimento por id de ambos almacenes.
func (uc *UseCase) DeleteInfusion(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: id do suprimento inválido", domain.ErrInvalidInput)
	}
	t, err := uc.transactions.GetByID(ctx, id)
	if err != nil {
		return storageErr(err)
	}
	return storageErr(uc.tx.RunCash(ctx, func(txRepo repository.CashTransactionRepository, infRepo repository.InfusionRepository) error {
		removed := false
		if t != nil && t.Type == entity.TransactionInfusion {
			if err := txRepo.Delete(ctx, id); err != nil {
				return err
			}
			removed = true
		}
		err := infRepo.Delete(ctx, id)
		switch {
		case err == nil:
			removed = true
		case !errors.Is(err, domain.ErrNotFound):
			return err
		}
		if !removed {
			return fmt.Errorf("%w: suprimento não encontrado", domain.ErrNotFound)
		}
		return nil
	}))
}

func toTransactionResponse(t *entity.CashTransaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:          t.ID,
		Type:        t.Type,
		Amount:      t.Amount,
		User:        t.User,
		Date:        t.Date,
		Description: t.Description,
	}
}

func toInfusionResponse(i *entity.Infusion) *dto.InfusionResponse {
	return &dto.InfusionResponse{
		ID:          i.ID,
		Amount:      i.Amount,
		User:        i.User,
		Date:        i.Date,
		Description: i.Description,
	}
}
