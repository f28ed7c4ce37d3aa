package http_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Styllo-POS/internal/application/auth"
	"github.com/jhoicas/Styllo-POS/internal/domain/entity"
	"github.com/jhoicas/Styllo-POS/internal/infrastructure/session"
	apphttp "github.com/jhoicas/Styllo-POS/internal/interfaces/http"
)

// buildRouterApp registra el router real; los casos de uso de negocio quedan nil,
// así que solo se prueban rutas que se resuelven antes de llegar al caso de uso.
func buildRouterApp(summaryRequiresAuth bool) *testEnv {
	store := session.NewMemoryStore()
	authUC := auth.NewAuthUseCase(nil, store, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer})
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{AuthUC: authUC, SummaryRequiresAuth: summaryRequiresAuth})
	return &testEnv{app: app, sessions: store}
}

func send(t *testing.T, app *fiber.App, method, path, token string) int {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestRouter_AdminOnlyCashRoutes(t *testing.T) {
	env := buildRouterApp(false)
	employee := env.tokenForRole(t, "sess-func", "52998224725", entity.RoleEmployee)

	routes := []struct{ method, path string }{
		{fiber.MethodPost, "/api/caixa/fechar"},
		{fiber.MethodPost, "/caixa/fechar"},
		{fiber.MethodGet, "/api/history/fechamentos"},
		{fiber.MethodGet, "/api/caixa/fechamentos/abc/pdf"},
		{fiber.MethodGet, "/api/transactions"},
		{fiber.MethodDelete, "/api/suprimentos/abc"},
		{fiber.MethodPost, "/api/refunds"},
		{fiber.MethodGet, "/api/sales"},
		{fiber.MethodPatch, "/api/sales/abc/items/remove"},
		{fiber.MethodGet, "/api/users"},
	}
	for _, r := range routes {
		t.Run(r.method+" "+r.path, func(t *testing.T) {
			assert.Equal(t, fiber.StatusUnauthorized, send(t, env.app, r.method, r.path, ""))
			assert.Equal(t, fiber.StatusForbidden, send(t, env.app, r.method, r.path, employee))
		})
	}
}

func TestRouter_SummaryVisibility(t *testing.T) {
	const badSummary = "/api/caixa/resumo?data=2024-05-10&troco=x"

	t.Run("publico por defecto", func(t *testing.T) {
		env := buildRouterApp(false)
		// Un troco inválido se rechaza en el handler, antes del caso de uso.
		assert.Equal(t, fiber.StatusBadRequest, send(t, env.app, fiber.MethodGet, badSummary, ""))
		assert.Equal(t, fiber.StatusBadRequest, send(t, env.app, fiber.MethodGet, "/caixa/resumo?data=2024-05-10&troco=x", ""))
	})

	t.Run("con sesion obligatoria", func(t *testing.T) {
		env := buildRouterApp(true)
		assert.Equal(t, fiber.StatusUnauthorized, send(t, env.app, fiber.MethodGet, "/api/caixa/resumo", ""))

		tok := env.tokenForRole(t, "sess-func", "52998224725", entity.RoleEmployee)
		assert.Equal(t, fiber.StatusBadRequest, send(t, env.app, fiber.MethodGet, badSummary, tok))
	})
}
