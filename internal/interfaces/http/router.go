package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ulule/limiter/v3"

	"github.com/jhoicas/Styllo-POS/internal/application/auth"
	"github.com/jhoicas/Styllo-POS/internal/application/cashier"
	"github.com/jhoicas/Styllo-POS/internal/application/sales"
	"github.com/jhoicas/Styllo-POS/internal/application/usecase"
	"github.com/jhoicas/Styllo-POS/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	ProductUC *usecase.ProductUseCase
	SalesUC   *sales.UseCase
	CashierUC *cashier.UseCase

	// LoginLimiter nil = login sin rate limit.
	LoginLimiter *limiter.Limiter
	Logger       *logger.Logger
	// SummaryRequiresAuth protege /caixa/resumo con sesión.
	SummaryRequiresAuth bool
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	authn := AuthMiddleware(deps.AuthUC)
	admin := RequireAdmin()

	api := app.Group("/api")

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Get("/status", authHandler.Status)
	api.Post("/register", OptionalAuth(deps.AuthUC), authHandler.Register)
	if deps.LoginLimiter != nil {
		api.Post("/login", RateLimit(deps.LoginLimiter, log), authHandler.Login)
	} else {
		api.Post("/login", authHandler.Login)
	}
	api.Post("/logout", authn, authHandler.Logout)

	// Usuarios
	userHandler := NewUserHandler(deps.UserUC)
	api.Get("/users/usernames", authn, userHandler.Usernames)
	api.Get("/users", authn, admin, userHandler.List)
	api.Put("/users/:username", authn, admin, userHandler.Update)
	api.Delete("/users/:username", authn, admin, userHandler.Delete)

	// Catálogo: lectura pública, escritura de Administrador
	productHandler := NewProductHandler(deps.ProductUC)
	api.Get("/produtos", productHandler.List)
	api.Get("/produtos/:id", productHandler.GetByID)
	api.Post("/produtos", authn, admin, productHandler.Create)
	api.Put("/produtos/:id", authn, admin, productHandler.Update)
	api.Delete("/produtos/:id", authn, admin, productHandler.Delete)

	// Ventas
	saleHandler := NewSaleHandler(deps.SalesUC)
	api.Post("/sales", authn, saleHandler.Create)
	api.Get("/sales", authn, admin, saleHandler.List)
	api.Get("/sales/summary", authn, admin, saleHandler.Summary)
	api.Delete("/sales/:id", authn, admin, saleHandler.Delete)
	api.Post("/sales/:id/delete", authn, admin, saleHandler.Delete)
	api.Patch("/sales/:id/items", authn, admin, saleHandler.RemoveItems)
	api.Post("/sales/:id/items/remove", authn, admin, saleHandler.RemoveItems)
	api.Patch("/sales/:id/items/remove", authn, admin, saleHandler.RemoveItems)

	// Devoluciones
	refundHandler := NewRefundHandler(deps.CashierUC)
	api.Post("/refunds", authn, admin, refundHandler.Create)
	api.Delete("/refunds/:id", authn, admin, refundHandler.Delete)
	api.Get("/history/devolucoes", authn, admin, refundHandler.List)

	// Caixa
	cashHandler := NewCashHandler(deps.CashierUC)
	api.Post("/sangria", authn, cashHandler.Withdrawal)
	api.Post("/suprimento", authn, cashHandler.Infusion)
	api.Post("/suprimentos", authn, cashHandler.Infusion)
	api.Get("/suprimentos", authn, cashHandler.ListInfusions)
	api.Delete("/suprimentos/:id", authn, admin, cashHandler.DeleteInfusion)
	api.Get("/transactions", authn, admin, cashHandler.ListTransactions)
	api.Delete("/transactions/:id", authn, admin, cashHandler.DeleteTransaction)

	summary := []fiber.Handler{cashHandler.Summary}
	if deps.SummaryRequiresAuth {
		summary = []fiber.Handler{authn, cashHandler.Summary}
	}
	api.Get("/caixa/resumo", summary...)
	app.Get("/caixa/resumo", summary...)

	api.Post("/caixa/fechar", authn, admin, cashHandler.Close)
	app.Post("/caixa/fechar", authn, admin, cashHandler.Close)
	api.Get("/caixa/fechamentos/:id/pdf", authn, admin, cashHandler.ClosingPDF)
	api.Get("/history/fechamentos", authn, admin, cashHandler.ListClosings)
}
