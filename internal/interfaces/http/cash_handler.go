package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Styllo-POS/internal/application/cashier"
	"github.com/jhoicas/Styllo-POS/internal/application/dto"
	"github.com/jhoicas/Styllo-POS/internal/domain"
)

// CashHandler caixa: sangria, suprimento, resumo, fechamento e histórico.
type CashHandler struct {
	uc *cashier.UseCase
}

// NewCashHandler construye el handler.
func NewCashHandler(uc *cashier.UseCase) *CashHandler {
	return &CashHandler{uc: uc}
}

// Withdrawal godoc
// @Summary      Registrar sangria
// @Tags         caixa
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WithdrawalRequest  true  "amount, user, reason"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sangria [post]
func (h *CashHandler) Withdrawal(c *fiber.Ctx) error {
	var in dto.WithdrawalRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if strings.TrimSpace(in.User) == "" {
		in.User = GetUsername(c)
	}
	out, err := h.uc.Withdrawal(c.UserContext(), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Infusion godoc
// @Summary      Registrar suprimento
// @Description  Se guarda en el registro de suprimentos y en el histórico de caja.
// @Tags         caixa
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InfusionRequest  true  "amount, user, description, date"
// @Success      201   {object}  dto.InfusionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/suprimento [post]
func (h *CashHandler) Infusion(c *fiber.Ctx) error {
	var in dto.InfusionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Infusion(c.UserContext(), in, GetUsername(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListInfusions godoc
// @Summary      Listar suprimentos
// @Tags         caixa
// @Security     Bearer
// @Produce      json
// @Param        ativos  query  string  false  "1|true|sim|yes: solo posteriores al último fechamento (alias: ativosAposFechamento, apenasAtivos)"
// @Success      200  {array}  dto.InfusionResponse
// @Router       /api/suprimentos [get]
func (h *CashHandler) ListInfusions(c *fiber.Ctx) error {
	active := truthy(firstQuery(c, "ativos", "ativosAposFechamento", "apenasAtivos"))
	out, err := h.uc.ListInfusions(c.UserContext(), active)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// DeleteInfusion godoc
// @Summary      Eliminar suprimento
// @Tags         caixa
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del suprimento"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/suprimentos/{id} [delete]
func (h *CashHandler) DeleteInfusion(c *fiber.Ctx) error {
	if err := h.uc.DeleteInfusion(c.UserContext(), c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "suprimento removido"})
}

// ListTransactions godoc
// @Summary      Histórico de sangrias y suprimentos
// @Tags         caixa
// @Security     Bearer
// @Produce      json
// @Param        type      query  string  false  "sangria | suprimento"
// @Param        from      query  string  false  "Desde"
// @Param        to        query  string  false  "Hasta"
// @Param        user      query  string  false  "Usuario"
// @Param        search    query  string  false  "Texto libre"
// @Param        sort      query  string  false  "date_desc | date_asc | amount_desc | amount_asc"
// @Param        page      query  int     false  "Página"
// @Param        pageSize  query  int     false  "Tamaño de página"
// @Success      200  {object}  dto.TransactionListResponse
// @Router       /api/transactions [get]
func (h *CashHandler) ListTransactions(c *fiber.Ctx) error {
	var f dto.TransactionFilter
	if err := c.QueryParser(&f); err != nil {
		return badQuery(c)
	}
	if ok, err := validateStruct(c, f); !ok {
		return err
	}
	out, err := h.uc.ListTransactions(c.UserContext(), f)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// DeleteTransaction godoc
// @Summary      Eliminar movimiento de caja
// @Description  Si es un suprimento, elimina también su copia en el registro de suprimentos.
// @Tags         caixa
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [delete]
func (h *CashHandler) DeleteTransaction(c *fiber.Ctx) error {
	if err := h.uc.DeleteTransaction(c.UserContext(), c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "movimentação removida"})
}

// Summary godoc
// @Summary      Resumo do caixa
// @Description  Totales del día desde el último fechamento, ajustados por el delta de troco de la sesión.
// @Tags         caixa
// @Produce      json
// @Param        data           query  string  true   "Día YYYY-MM-DD (alias: date)"
// @Param        trocoSessao    query  number  false  "Delta de troco (alias: ajusteTroco, trocoDelta)"
// @Param        trocoEntregue  query  number  false  "Troco entregue (alias: troco)"
// @Success      200  {object}  dto.SummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/caixa/resumo [get]
func (h *CashHandler) Summary(c *fiber.Ctx) error {
	q, err := parseSummaryQuery(c)
	if err != nil {
		return errorResponse(c, err)
	}
	out, err := h.uc.Summary(c.UserContext(), q)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// Close godoc
// @Summary      Fechar caixa
// @Description  Compara lo contado con lo esperado, registra el fechamento y mueve el corte del día.
// @Tags         caixa
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CloseRegisterRequest  true  "data, dinheiroContado, cartaoContado, ajusteTroco, trocoEntregue"
// @Success      201   {object}  dto.ClosingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/caixa/fechar [post]
func (h *CashHandler) Close(c *fiber.Ctx) error {
	var in dto.CloseRegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Close(c.UserContext(), in, GetUsername(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListClosings godoc
// @Summary      Histórico de fechamentos
// @Tags         caixa
// @Security     Bearer
// @Produce      json
// @Param        dia   query  string  false  "Día YYYY-MM-DD"
// @Param        user  query  string  false  "Usuario"
// @Param        from  query  string  false  "Desde"
// @Param        to    query  string  false  "Hasta"
// @Success      200  {array}  dto.ClosingResponse
// @Router       /api/history/fechamentos [get]
func (h *CashHandler) ListClosings(c *fiber.Ctx) error {
	var f dto.ClosingFilter
	if err := c.QueryParser(&f); err != nil {
		return badQuery(c)
	}
	out, err := h.uc.ListClosings(c.UserContext(), f)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// ClosingPDF godoc
// @Summary      Comprobante PDF de un fechamento
// @Tags         caixa
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del fechamento"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/caixa/fechamentos/{id}/pdf [get]
func (h *CashHandler) ClosingPDF(c *fiber.Ctx) error {
	body, filename, err := h.uc.ClosingPDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(body)
}

// parseSummaryQuery lee día, delta de troco y troco entregado aceptando los alias históricos.
func parseSummaryQuery(c *fiber.Ctx) (dto.SummaryQuery, error) {
	q := dto.SummaryQuery{Date: strings.TrimSpace(firstQuery(c, "data", "date"))}
	var err error
	if q.ChangeDelta, err = decimalQuery(firstQuery(c, "trocoSessao", "ajusteTroco", "trocoDelta"), "trocoSessao"); err != nil {
		return q, err
	}
	if q.ChangeDelivered, err = decimalQuery(firstQuery(c, "trocoEntregue", "troco"), "trocoEntregue"); err != nil {
		return q, err
	}
	return q, nil
}

// decimalQuery acepta "12.5" y "12,5"; vacío = 0.
func decimalQuery(raw, name string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(strings.Replace(raw, ",", ".", 1))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s não é um número", domain.ErrInvalidInput, name)
	}
	return d, nil
}

func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "sim", "yes":
		return true
	}
	return false
}
