package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Styllo-POS/internal/application/dto"
	"github.com/jhoicas/Styllo-POS/internal/application/usecase"
	"github.com/jhoicas/Styllo-POS/internal/domain"
	"github.com/jhoicas/Styllo-POS/internal/domain/entity"
	"github.com/jhoicas/Styllo-POS/internal/domain/repository"
)

func TestProductUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		repo := new(MockProductRepository)
		uc := usecase.NewProductUseCase(repo)
		repo.On("GetByID", ctx, "VST-001").Return(nil, nil).Once()
		repo.On("Create", ctx, mock.MatchedBy(func(p *entity.Product) bool {
			return p.ID == "VST-001" && p.Name == "Vestido Midi" && p.Price.Equal(decimal.RequireFromString("189.90"))
		})).Return(nil).Once()

		out, err := uc.Create(ctx, dto.CreateProductRequest{
			ID: " VST-001 ", Name: " Vestido Midi ", Price: decimal.RequireFromString("189.90"), Category: "Vestidos",
		})
		require.NoError(t, err)
		assert.Equal(t, "VST-001", out.ID)
		assert.Equal(t, "Vestidos", out.Category)
		assert.False(t, out.CreatedAt.IsZero())
		repo.AssertExpectations(t)
	})

	t.Run("duplicado", func(t *testing.T) {
		repo := new(MockProductRepository)
		uc := usecase.NewProductUseCase(repo)
		repo.On("GetByID", ctx, "VST-001").Return(&entity.Product{ID: "VST-001"}, nil).Once()

		_, err := uc.Create(ctx, dto.CreateProductRequest{ID: "VST-001", Name: "Vestido"})
		assert.ErrorIs(t, err, domain.ErrDuplicate)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("precio negativo", func(t *testing.T) {
		uc := usecase.NewProductUseCase(new(MockProductRepository))
		_, err := uc.Create(ctx, dto.CreateProductRequest{ID: "X", Name: "X", Price: decimal.NewFromInt(-1)})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestProductUseCase_GetByID_NoEncontrado(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProductRepository)
	uc := usecase.NewProductUseCase(repo)
	repo.On("GetByID", ctx, "nada").Return(nil, nil).Once()

	_, err := uc.GetByID(ctx, "nada")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUseCase_Update(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProductRepository)
	uc := usecase.NewProductUseCase(repo)
	product := &entity.Product{ID: "BL-10", Name: "Blusa", Price: decimal.NewFromInt(80), Category: "Blusas"}
	repo.On("GetByID", ctx, "BL-10").Return(product, nil)
	repo.On("Update", ctx, mock.AnythingOfType("*entity.Product")).Return(nil).Once()

	price := decimal.RequireFromString("99.50")
	out, err := uc.Update(ctx, "BL-10", dto.UpdateProductRequest{Price: &price, Subcategory: strPtr(" Manga longa ")})
	require.NoError(t, err)
	assert.True(t, out.Price.Equal(price))
	assert.Equal(t, "Blusa", out.Name)
	assert.Equal(t, "Manga longa", out.Subcategory)

	neg := decimal.NewFromInt(-5)
	_, err = uc.Update(ctx, "BL-10", dto.UpdateProductRequest{Price: &neg})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUseCase_List_TopeDePagina(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProductRepository)
	uc := usecase.NewProductUseCase(repo)
	repo.On("List", ctx, repository.ProductFilter{
		Search:   "saia",
		Category: "Saias",
		Page:     repository.Page{Limit: dto.MaxPageSize, Offset: 0},
	}).Return([]*entity.Product{{ID: "SA-1", Name: "Saia jeans"}}, 1, nil).Once()

	out, err := uc.List(ctx, dto.ProductFilter{Search: " saia ", Category: "Saias", Limit: 5000, Offset: -3})
	require.NoError(t, err)
	assert.Equal(t, dto.MaxPageSize, out.Limit)
	assert.Equal(t, 0, out.Offset)
	assert.Equal(t, 1, out.Total)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "SA-1", out.Items[0].ID)
	repo.AssertExpectations(t)
}
