package cashier

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/Styllo-POS/internal/application/dto"
	"github.com/jhoicas/Styllo-POS/internal/domain"
	"github.com/jhoicas/Styllo-POS/internal/domain/cash"
	"github.com/jhoicas/Styllo-POS/internal/domain/entity"
	"github.com/jhoicas/Styllo-POS/internal/domain/repository"
)

// Summary resumo del día desde el último corte. Las colecciones que no se pueden
// leer cuentan como vacías.
func (uc *UseCase) Summary(ctx context.Context, q dto.SummaryQuery) (*dto.SummaryResponse, error) {
	day, err := uc.requireDay(q.Date)
	if err != nil {
		return nil, err
	}
	l, err := uc.loadLedger(ctx, day, false)
	if err != nil {
		return nil, err
	}
	s, err := uc.calc.Summarize(day, l)
	if err != nil {
		return nil, err
	}
	s = cash.ApplyChangeDelta(s, q.ChangeDelta, q.ChangeDelivered)
	uc.metrics.SummaryComputed()
	resp := toSummaryResponse(s.Snapshot())
	return &resp, nil
}

// Close registra el fechamento del día. El esperado se recalcula en el servidor;
// cualquier fallo de lectura aborta la operación.
func (uc *UseCase) Close(ctx context.Context, in dto.CloseRegisterRequest, sessionUser string) (*dto.ClosingResponse, error) {
	user := strings.TrimSpace(sessionUser)
	if user == "" {
		return nil, fmt.Errorf("%w: sessão sem usuário", domain.ErrUnauthorized)
	}
	in = in.WithAliases()
	day, err := uc.requireDay(in.Date)
	if err != nil {
		return nil, err
	}
	if in.CashCounted.IsNegative() || in.CardCounted.IsNegative() {
		return nil, fmt.Errorf("%w: valores contados não podem ser negativos", domain.ErrInvalidInput)
	}

	l, err := uc.loadLedger(ctx, day, true)
	if err != nil {
		return nil, err
	}
	s, err := uc.calc.Summarize(day, l)
	if err != nil {
		return nil, err
	}
	s = cash.ApplyChangeDelta(s, in.ChangeDelta, in.ChangeDelivered)

	counted := entity.CountedAmounts{Cash: in.CashCounted.Round(2), Card: in.CardCounted.Round(2)}
	diff, status := cash.Reconcile(s, counted, uc.tolerance)

	rec := &entity.ClosingRecord{
		ID:          uuid.New().String(),
		Day:         day,
		CreatedAt:   uc.now().UTC(),
		User:        user,
		Expected:    s.Snapshot(),
		Counted:     counted,
		Differences: diff,
		Status:      status,
	}
	if err := uc.closings.Create(ctx, rec); err != nil {
		return nil, storageErr(err)
	}
	uc.metrics.ClosingRecorded(status)
	uc.log.Info().
		Str("id", rec.ID).
		Str("dia", day).
		Str("user", user).
		Str("status", status).
		Str("diferenca", diff.Overall.StringFixed(2)).
		Msg("fechamento registrado")
	return ToClosingResponse(rec), nil
}

// ListClosings histórico de fechamentos, más recientes primero. from/to acotan
// por el día del fechamento y user busca por subcadena.
func (uc *UseCase) ListClosings(ctx context.Context, in dto.ClosingFilter) ([]dto.ClosingResponse, error) {
	f := repository.ClosingFilter{User: strings.TrimSpace(in.User)}
	if strings.TrimSpace(in.Day) != "" {
		day, err := cash.ParseDay(in.Day, uc.location())
		if err != nil {
			return nil, err
		}
		f.Day = day
	}
	if strings.TrimSpace(in.From) != "" {
		day, err := cash.ParseDay(in.From, uc.location())
		if err != nil {
			return nil, err
		}
		f.FromDay = day
	}
	if strings.TrimSpace(in.To) != "" {
		day, err := cash.ParseDay(in.To, uc.location())
		if err != nil {
			return nil, err
		}
		f.ToDay = day
	}

	list, err := uc.closings.List(ctx, f)
	if err != nil {
		return nil, storageErr(err)
	}
	out := make([]dto.ClosingResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *ToClosingResponse(c))
	}
	return out, nil
}

// ClosingPDF comprobante imprimible de un fechamento.
func (uc *UseCase) ClosingPDF(ctx context.Context, id string) ([]byte, string, error) {
	if uc.pdf == nil {
		return nil, "", fmt.Errorf("%w: geração de PDF indisponível", domain.ErrConflict)
	}
	rec, err := uc.closings.GetByID(ctx, id)
	if err != nil {
		return nil, "", storageErr(err)
	}
	if rec == nil {
		return nil, "", fmt.Errorf("%w: fechamento não encontrado", domain.ErrNotFound)
	}
	b, err := uc.pdf.GenerateClosingPDF(ctx, rec)
	if err != nil {
		return nil, "", fmt.Errorf("generate closing pdf: %w", err)
	}
	return b, fmt.Sprintf("fechamento-%s-%s.pdf", rec.Day, shortID(rec.ID)), nil
}

func (uc *UseCase) requireDay(s string) (string, error) {
	return cash.ParseDay(s, uc.location())
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func toSummaryResponse(s entity.ExpectedSnapshot) dto.SummaryResponse {
	return dto.SummaryResponse{
		Date:                  s.Date,
		Suprimentos:           s.Suprimentos,
		VendasDinheiro:        s.VendasDinheiro,
		VendasCartao:          s.VendasCartao,
		Sangrias:              s.Sangrias,
		TrocoCartaoPix:        s.TrocoCartaoPix,
		Devolucoes:            s.Devolucoes,
		DevolucoesDinheiro:    s.DevolucoesDinheiro,
		DevolucoesCartao:      s.DevolucoesCartao,
		EsperadoCaixaDinheiro: s.EsperadoCaixaDinheiro,
		EsperadoGeral:         s.EsperadoGeral,
		AjusteTroco:           s.AjusteTroco,
		TrocoEntregue:         s.TrocoEntregue,
		Corte:                 s.Corte,
	}
}

// ToClosingResponse mapea un fechamento al DTO.
func ToClosingResponse(c *entity.ClosingRecord) *dto.ClosingResponse {
	return &dto.ClosingResponse{
		ID:        c.ID,
		Date:      c.Day,
		User:      c.User,
		CreatedAt: c.CreatedAt,
		Expected:  toSummaryResponse(c.Expected),
		Counted:   dto.CountedDTO{Cash: c.Counted.Cash, Card: c.Counted.Card},
		Differences: dto.DifferencesDTO{
			Cash:    c.Differences.Cash,
			Card:    c.Differences.Card,
			Overall: c.Differences.Overall,
		},
		Status: c.Status,
	}
}
