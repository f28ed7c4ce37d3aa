package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Styllo-POS/internal/application/cashier"
	"github.com/jhoicas/Styllo-POS/internal/application/dto"
)

// RefundHandler devoluciones.
type RefundHandler struct {
	uc *cashier.UseCase
}

// NewRefundHandler construye el handler.
func NewRefundHandler(uc *cashier.UseCase) *RefundHandler {
	return &RefundHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar devolución
// @Description  Quita de la venta de origen los productos devueltos; si queda vacía, la elimina.
// @Tags         refunds
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RefundRequest  true  "saleId, amount, user, reason, items"
// @Success      201   {object}  dto.RefundResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/refunds [post]
func (h *RefundHandler) Create(c *fiber.Ctx) error {
	var in dto.RefundRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if strings.TrimSpace(in.User) == "" {
		in.User = GetUsername(c)
	}
	out, err := h.uc.CreateRefund(c.UserContext(), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Histórico de devoluciones
// @Tags         refunds
// @Security     Bearer
// @Produce      json
// @Param        saleId  query  string  false  "Venta de origen"
// @Param        user    query  string  false  "Usuario"
// @Param        from    query  string  false  "Desde"
// @Param        to      query  string  false  "Hasta"
// @Success      200  {array}  dto.RefundResponse
// @Router       /api/history/devolucoes [get]
func (h *RefundHandler) List(c *fiber.Ctx) error {
	var f dto.RefundFilter
	if err := c.QueryParser(&f); err != nil {
		return badQuery(c)
	}
	out, err := h.uc.ListRefunds(c.UserContext(), f)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar devolución
// @Tags         refunds
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la devolución"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/refunds/{id} [delete]
func (h *RefundHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteRefund(c.UserContext(), c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "devolução removida"})
}
