//go:build integration

package postgres

// Ejecutar con: go test -tags integration ./internal/infrastructure/postgres/... -v

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/Styllo-POS/internal/domain"
	"github.com/jhoicas/Styllo-POS/internal/domain/entity"
	"github.com/jhoicas/Styllo-POS/internal/domain/repository"
	"github.com/jhoicas/Styllo-POS/pkg/config"
)

func setupPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:16-alpine"),
		tcPostgres.WithDatabase("styllo_test"),
		tcPostgres.WithUsername("styllo"),
		tcPostgres.WithPassword("styllo"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	dsn, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, RunMigrations(dsn))

	pool, err := NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestRepositories_Integration(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	day := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	t.Run("users", func(t *testing.T) {
		repo := NewUserRepository(pool)
		u := &entity.User{Username: "Gerente", PasswordHash: "x", Role: entity.RoleAdmin, FullName: "Gerente Loja",
			CreatedAt: day, UpdatedAt: day}
		require.NoError(t, repo.Create(ctx, u))
		assert.ErrorIs(t, repo.Create(ctx, &entity.User{Username: "gerente", PasswordHash: "y", Role: entity.RoleAdmin}), domain.ErrDuplicate)

		got, err := repo.GetByUsername(ctx, "GERENTE")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "", got.CPF)

		n, err := repo.CountByRole(ctx, entity.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		assert.ErrorIs(t, repo.Delete(ctx, "ninguem"), domain.ErrUserNotFound)
	})

	t.Run("sales", func(t *testing.T) {
		repo := NewSaleRepository(pool)
		s := &entity.Sale{
			ID: "v1", Date: day, Seller: "Ana", PaymentMethod: entity.PaymentCard,
			Items: []entity.SaleItem{
				{ID: "P1", Name: "Vestido", UnitValue: decimal.RequireFromString("89.90")},
				{ID: "P2", Name: "Cinto", UnitValue: decimal.RequireFromString("20")},
			},
		}
		require.NoError(t, repo.Create(ctx, s))

		list, total, err := repo.List(ctx, repository.SaleFilter{ProductID: "p1", Seller: "ana"})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, list, 1)
		assert.True(t, list[0].Total().Equal(decimal.RequireFromString("109.90")))

		require.NoError(t, repo.UpdateItems(ctx, "v1", s.Items[1:]))
		got, err := repo.GetByID(ctx, "v1")
		require.NoError(t, err)
		require.Len(t, got.Items, 1)
		assert.Equal(t, entity.PaymentCard, got.PaymentMethod)
	})

	t.Run("cash tx runner", func(t *testing.T) {
		runner := NewTxRunner(pool)
		inf := &entity.Infusion{ID: "s1", Amount: decimal.NewFromInt(100), User: "ana", Date: day}
		err := runner.RunCash(ctx, func(txRepo repository.CashTransactionRepository, infRepo repository.InfusionRepository) error {
			if err := txRepo.Create(ctx, &entity.CashTransaction{ID: inf.ID, Type: entity.TransactionInfusion,
				Amount: inf.Amount, User: inf.User, Date: inf.Date}); err != nil {
				return err
			}
			return infRepo.Create(ctx, inf)
		})
		require.NoError(t, err)

		// Un fallo a mitad revierte ambos.
		err = runner.RunCash(ctx, func(txRepo repository.CashTransactionRepository, infRepo repository.InfusionRepository) error {
			if err := txRepo.Create(ctx, &entity.CashTransaction{ID: "s2", Type: entity.TransactionInfusion,
				Amount: inf.Amount, User: inf.User, Date: inf.Date}); err != nil {
				return err
			}
			return infRepo.Create(ctx, inf)
		})
		assert.ErrorIs(t, err, domain.ErrDuplicate)
		got, err := NewCashTransactionRepository(pool).GetByID(ctx, "s2")
		require.NoError(t, err)
		assert.Nil(t, got)

		n, err := NewInfusionRepository(pool).DeleteMatching(ctx, day.Add(-time.Hour), day.Add(time.Hour), decimal.NewFromInt(100), "ANA")
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("closings", func(t *testing.T) {
		repo := NewClosingRepository(pool)
		corte := day
		c := &entity.ClosingRecord{
			ID: "f1", Day: "2024-05-10", CreatedAt: day.Add(time.Hour), User: "gerente",
			Expected: entity.ExpectedSnapshot{Date: "2024-05-10", EsperadoGeral: decimal.NewFromInt(180), Corte: &corte},
			Counted:  entity.CountedAmounts{Cash: decimal.NewFromInt(130), Card: decimal.NewFromInt(50)},
			Status:   entity.ClosingMatched,
		}
		require.NoError(t, repo.Create(ctx, c))

		list, err := repo.List(ctx, repository.ClosingFilter{Day: "2024-05-10"})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.True(t, list[0].Expected.EsperadoGeral.Equal(decimal.NewFromInt(180)))
		require.NotNil(t, list[0].Expected.Corte)
		assert.True(t, list[0].Expected.Corte.Equal(corte))

		require.NoError(t, repo.Create(ctx, &entity.ClosingRecord{
			ID: "f2", Day: "2024-05-11", CreatedAt: day.Add(26 * time.Hour), User: "Ana_Souza", Status: entity.ClosingShort,
		}))

		list, err = repo.List(ctx, repository.ClosingFilter{User: "SOUZA"})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "f2", list[0].ID)

		list, err = repo.List(ctx, repository.ClosingFilter{User: "a_s"})
		require.NoError(t, err)
		require.Len(t, list, 1, "_ no es comodín")

		list, err = repo.List(ctx, repository.ClosingFilter{FromDay: "2024-05-10", ToDay: "2024-05-10"})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "f1", list[0].ID)

		list, err = repo.List(ctx, repository.ClosingFilter{FromDay: "2024-05-10"})
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "f2", list[0].ID, "más recientes primero")
	})
}
