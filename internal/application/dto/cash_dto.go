package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// WithdrawalRequest sangria.
type WithdrawalRequest struct {
	Amount decimal.Decimal `json:"amount"`
	User   string          `json:"user"`
	Reason string          `json:"reason"`
}

// InfusionRequest suprimento. User vacío toma el usuario de la sesión; Date vacío = ahora.
type InfusionRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	User        string          `json:"user"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
}

// TransactionResponse movimiento de caja.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	User        string          `json:"user"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description,omitempty"`
}

// TransactionFilter filtros del histórico de caja.
type TransactionFilter struct {
	ID     string `query:"id"`
	Type   string `query:"type" validate:"omitempty,oneof=sangria suprimento"`
	From   string `query:"from"`
	To     string `query:"to"`
	User   string `query:"user"`
	Search string `query:"search"`
	Sort   string `query:"sort" validate:"omitempty,oneof=date_desc date_asc amount_desc amount_asc"`
	PageRequest
}

// TransactionListResponse página de movimientos.
type TransactionListResponse struct {
	PageResponse
	Results []TransactionResponse `json:"results"`
}

// InfusionResponse suprimento consolidado.
type InfusionResponse struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	User        string          `json:"user"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description,omitempty"`
}

// RefundItemDTO producto devuelto.
type RefundItemDTO struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Amount      decimal.Decimal `json:"amount"`
}

// RefundRequest devolución.
type RefundRequest struct {
	SaleID string          `json:"saleId"`
	Amount decimal.Decimal `json:"amount"`
	User   string          `json:"user"`
	Reason string          `json:"reason"`
	Items  []RefundItemDTO `json:"items"`
}

// RefundResponse devolución registrada.
type RefundResponse struct {
	ID     string          `json:"id"`
	SaleID string          `json:"saleId,omitempty"`
	Date   time.Time       `json:"date"`
	User   string          `json:"user"`
	Reason string          `json:"reason,omitempty"`
	Amount decimal.Decimal `json:"amount"`
	Items  []RefundItemDTO `json:"items"`
}

// RefundFilter filtros del histórico de devoluciones.
type RefundFilter struct {
	SaleID string `query:"saleId"`
	User   string `query:"user"`
	From   string `query:"from"`
	To     string `query:"to"`
}

// SummaryQuery parámetros del resumo diario. ChangeDelta es el ajuste de troco de la sesión.
type SummaryQuery struct {
	Date            string
	ChangeDelta     decimal.Decimal
	ChangeDelivered decimal.Decimal
}

// SummaryResponse resumen del día desde el último corte, ya ajustado por el delta de troco.
// vendasCartao es neto de devoluciones en tarjeta.
type SummaryResponse struct {
	Date                  string          `json:"date"`
	Suprimentos           decimal.Decimal `json:"suprimentos"`
	VendasDinheiro        decimal.Decimal `json:"vendasDinheiro"`
	VendasCartao          decimal.Decimal `json:"vendasCartao"`
	Sangrias              decimal.Decimal `json:"sangrias"`
	TrocoCartaoPix        decimal.Decimal `json:"trocoCartaoPix"`
	Devolucoes            decimal.Decimal `json:"devolucoes"`
	DevolucoesDinheiro    decimal.Decimal `json:"devolucoesDinheiro"`
	DevolucoesCartao      decimal.Decimal `json:"devolucoesCartao"`
	EsperadoCaixaDinheiro decimal.Decimal `json:"esperadoCaixaDinheiro"`
	EsperadoGeral         decimal.Decimal `json:"esperadoGeral"`
	AjusteTroco           decimal.Decimal `json:"ajusteTroco"`
	TrocoEntregue         decimal.Decimal `json:"trocoEntregue"`
	Corte                 *time.Time      `json:"corte"`
}

// CloseRegisterRequest fechamento de caixa. Acepta los mismos alias que el resumen.
type CloseRegisterRequest struct {
	Date            string          `json:"data"`
	CashCounted     decimal.Decimal `json:"dinheiroContado"`
	CardCounted     decimal.Decimal `json:"cartaoContado"`
	ChangeDelta     decimal.Decimal `json:"ajusteTroco"`
	ChangeDelivered decimal.Decimal `json:"trocoEntregue"`

	CardStatement decimal.Decimal `json:"cartaoExtrato"`
	SessionChange decimal.Decimal `json:"trocoSessao"`
	ChangeAdjust  decimal.Decimal `json:"trocoAjuste"`
}

// WithAliases devuelve la petición con los alias aplicados: un campo canónico
// en cero toma el valor del alias (cartaoExtrato; trocoSessao y luego trocoAjuste).
func (r CloseRegisterRequest) WithAliases() CloseRegisterRequest {
	if r.CardCounted.IsZero() {
		r.CardCounted = r.CardStatement
	}
	if r.ChangeDelta.IsZero() {
		r.ChangeDelta = r.SessionChange
	}
	if r.ChangeDelta.IsZero() {
		r.ChangeDelta = r.ChangeAdjust
	}
	return r
}

// CountedDTO conteo físico.
type CountedDTO struct {
	Cash decimal.Decimal `json:"dinheiroContado"`
	Card decimal.Decimal `json:"cartaoContado"`
}

// DifferencesDTO contado - esperado.
type DifferencesDTO struct {
	Cash    decimal.Decimal `json:"dinheiro"`
	Card    decimal.Decimal `json:"cartao"`
	Overall decimal.Decimal `json:"geral"`
}

// ClosingResponse fechamento registrado. Expected es el resumo ajustado.
type ClosingResponse struct {
	ID          string          `json:"id"`
	Date        string          `json:"data"`
	User        string          `json:"usuario"`
	CreatedAt   time.Time       `json:"criadoEm"`
	Expected    SummaryResponse `json:"esperado"`
	Counted     CountedDTO      `json:"contagem"`
	Differences DifferencesDTO  `json:"diferencas"`
	Status      string          `json:"status"`
}

// ClosingFilter filtros del histórico de fechamentos.
type ClosingFilter struct {
	Day  string `query:"dia"`
	User string `query:"user"`
	From string `query:"from"`
	To   string `query:"to"`
}
