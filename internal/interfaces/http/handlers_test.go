package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Styllo-POS/internal/application/dto"
	"github.com/jhoicas/Styllo-POS/internal/domain"
)

func summaryQueryApp(out *dto.SummaryQuery) *fiber.App {
	app := fiber.New()
	app.Get("/q", func(c *fiber.Ctx) error {
		q, err := parseSummaryQuery(c)
		if err != nil {
			return errorResponse(c, err)
		}
		*out = q
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func TestParseSummaryQuery_Alias(t *testing.T) {
	cases := []struct {
		name      string
		query     string
		date      string
		delta     string
		delivered string
	}{
		{"nombres principales", "data=2024-05-10&trocoSessao=5&trocoEntregue=3", "2024-05-10", "5", "3"},
		{"alias ajusteTroco y troco", "date=2024-05-10&ajusteTroco=-2.5&troco=1", "2024-05-10", "-2.5", "1"},
		{"alias trocoDelta con coma", "data=2024-05-10&trocoDelta=7,25", "2024-05-10", "7.25", "0"},
		{"sin ajustes", "data=2024-05-10", "2024-05-10", "0", "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got dto.SummaryQuery
			resp, err := summaryQueryApp(&got).Test(httptest.NewRequest(http.MethodGet, "/q?"+tc.query, nil), -1)
			require.NoError(t, err)
			require.Equal(t, http.StatusNoContent, resp.StatusCode)
			assert.Equal(t, tc.date, got.Date)
			assert.True(t, decimal.RequireFromString(tc.delta).Equal(got.ChangeDelta), "delta %s", got.ChangeDelta)
			assert.True(t, decimal.RequireFromString(tc.delivered).Equal(got.ChangeDelivered))
		})
	}
}

func TestParseSummaryQuery_NumeroInvalido_Retorna400(t *testing.T) {
	var got dto.SummaryQuery
	resp, err := summaryQueryApp(&got).Test(httptest.NewRequest(http.MethodGet, "/q?data=2024-05-10&trocoSessao=abc", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Contains(t, body.Message, "trocoSessao")
}

func TestCashHandler_ResumoConDeltaInvalidoNoLlamaAlCasoDeUso(t *testing.T) {
	app := fiber.New()
	app.Get("/api/caixa/resumo", NewCashHandler(nil).Summary)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/caixa/resumo?data=2024-05-10&troco=x", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTruthy(t *testing.T) {
	for _, v := range []string{"1", "true", "TRUE", "sim", "Yes"} {
		assert.True(t, truthy(v), v)
	}
	for _, v := range []string{"", "0", "false", "não", "t"} {
		assert.False(t, truthy(v), v)
	}
}

func TestErrorResponse_Mapeo(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("%w: valor inválido", domain.ErrInvalidInput), http.StatusBadRequest, "VALIDATION"},
		{domain.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{fmt.Errorf("%w: venda", domain.ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
		{domain.ErrUserNotFound, http.StatusNotFound, "NOT_FOUND"},
		{domain.ErrDuplicate, http.StatusConflict, "DUPLICATE"},
		{domain.ErrConflict, http.StatusConflict, "CONFLICT"},
		{fmt.Errorf("%w: timeout", domain.ErrStorage), http.StatusInternalServerError, "STORAGE"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error { return errorResponse(c, tc.err) })
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)

			var body dto.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tc.code, body.Code)
			if tc.status == http.StatusInternalServerError {
				assert.Equal(t, "erro interno do servidor", body.Message)
			} else {
				assert.Equal(t, tc.err.Error(), body.Message)
			}
		})
	}
}

func TestValidateStruct_ListaCamposInvalidos(t *testing.T) {
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		if ok, err := validateStruct(c, dto.CreateSaleRequest{}); !ok {
			return err
		}
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body.Message, "Items (required)")
	assert.Contains(t, body.Message, "Seller (required)")
}
