package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/swaggo/swag"
	"github.com/ulule/limiter/v3"
	limitermemory "github.com/ulule/limiter/v3/drivers/store/memory"
	limiterredis "github.com/ulule/limiter/v3/drivers/store/redis"

	"github.com/jhoicas/Styllo-POS/docs"
	"github.com/jhoicas/Styllo-POS/internal/application/auth"
	"github.com/jhoicas/Styllo-POS/internal/application/cashier"
	"github.com/jhoicas/Styllo-POS/internal/application/sales"
	"github.com/jhoicas/Styllo-POS/internal/application/usecase"
	"github.com/jhoicas/Styllo-POS/internal/domain/repository"
	"github.com/jhoicas/Styllo-POS/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/Styllo-POS/internal/infrastructure/pdf"
	"github.com/jhoicas/Styllo-POS/internal/infrastructure/postgres"
	"github.com/jhoicas/Styllo-POS/internal/infrastructure/session"
	httpRouter "github.com/jhoicas/Styllo-POS/internal/interfaces/http"
	"github.com/jhoicas/Styllo-POS/pkg/config"
	"github.com/jhoicas/Styllo-POS/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	loc, err := time.LoadLocation(cfg.Cash.Timezone)
	if err != nil {
		log.Fatal().Err(err).Str("timezone", cfg.Cash.Timezone).Msg("zona horaria del caixa inválida")
	}
	tolerance, err := decimal.NewFromString(cfg.Cash.Tolerance)
	if err != nil || tolerance.IsNegative() {
		log.Fatal().Str("tolerance", cfg.Cash.Tolerance).Msg("CASH_TOLERANCE inválido")
	}

	ctx := context.Background()
	if cfg.Migrations.Enabled {
		if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Str("dsn", postgres.RedactDSN(cfg.DB.ConnectionString())).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Sesiones y rate limit: Redis si REDIS_URL está definido, si no en memoria.
	sessionTTL := time.Duration(cfg.JWT.Expiration) * time.Minute
	var (
		sessions   repository.SessionStore
		limitStore limiter.Store
		rdb        *redis.Client
	)
	if cfg.Redis.URL != "" {
		rdb, err = session.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		sessions = session.NewRedisStore(rdb, sessionTTL)
		limitStore, err = limiterredis.NewStoreWithOptions(rdb, limiter.StoreOptions{Prefix: "styllo:ratelimit"})
		if err != nil {
			log.Fatal().Err(err).Msg("store de rate limit")
		}
	} else {
		log.Warn().Msg("REDIS_URL vacío: sesiones y rate limit en memoria")
		sessions = session.NewMemoryStore()
		limitStore = limitermemory.NewStore()
	}
	var loginLimiter *limiter.Limiter
	if cfg.RateLimit.Login != "" {
		rate, err := limiter.NewRateFromFormatted(cfg.RateLimit.Login)
		if err != nil {
			log.Fatal().Err(err).Str("rate", cfg.RateLimit.Login).Msg("RATE_LIMIT_LOGIN inválido")
		}
		loginLimiter = limiter.New(limitStore, rate)
	}

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)

	registry := metrics.New("styllo")

	authUC := auth.NewAuthUseCase(userRepo, sessions, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo, sessions)
	productUC := usecase.NewProductUseCase(productRepo)
	salesUC := sales.NewUseCase(saleRepo, loc)
	cashierUC := cashier.NewUseCase(cashier.Deps{
		Sales:        saleRepo,
		Transactions: postgres.NewCashTransactionRepository(pool),
		Infusions:    postgres.NewInfusionRepository(pool),
		Refunds:      postgres.NewRefundRepository(pool),
		Closings:     postgres.NewClosingRepository(pool),
		Tx:           postgres.NewTxRunner(pool),
		PDF:          infrapdf.NewMarotoPDFGenerator(""),
		Metrics:      registry,
		Logger:       log.Zerolog(),
		Location:     loc,
		Tolerance:    tolerance,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log.Named("http"), registry))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Styllo POS API",
	}))
	docs.SwaggerInfo.Host = cfg.HTTP.Addr()
	app.Get("/swagger.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
		if err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.SendString(doc)
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(registry.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:              authUC,
		UserUC:              userUC,
		ProductUC:           productUC,
		SalesUC:             salesUC,
		CashierUC:           cashierUC,
		LoginLimiter:        loginLimiter,
		Logger:              log.Named("http"),
		SummaryRequiresAuth: cfg.Cash.SummaryRequiresAuth,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
