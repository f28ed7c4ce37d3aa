// import_legacy copia a PostgreSQL los archivos JSON del sistema anterior
// (database.json, estoque.json, sales.json, cash_transactions.json,
// suprimentos.json, devolucoes.json, fechamentohistorico.json).
//
// Uso: go run ./cmd/import_legacy [directorio]
// Por defecto lee el directorio actual. Usa la misma configuración que la API (DATABASE_URL, DB_*).
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/Styllo-POS/internal/infrastructure/postgres"
	"github.com/jhoicas/Styllo-POS/pkg/config"
	"github.com/jhoicas/Styllo-POS/pkg/logger"
)

func main() {
	dir := "."
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level}).Named("import_legacy")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Migrations.Enabled {
		if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Str("dsn", postgres.RedactDSN(cfg.DB.ConnectionString())).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	im := NewImporter(dir, Targets{
		Users:        postgres.NewUserRepository(pool),
		Products:     postgres.NewProductRepository(pool),
		Sales:        postgres.NewSaleRepository(pool),
		Transactions: postgres.NewCashTransactionRepository(pool),
		Infusions:    postgres.NewInfusionRepository(pool),
		Refunds:      postgres.NewRefundRepository(pool),
		Closings:     postgres.NewClosingRepository(pool),
	}, log)

	if _, err := im.Run(ctx); err != nil {
		log.Error().Err(err).Str("dir", dir).Msg("importación interrumpida")
		pool.Close()
		os.Exit(1)
	}
	log.Info().Str("dir", dir).Msg("importación finalizada")
}
