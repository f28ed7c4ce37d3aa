package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/jhoicas/Styllo-POS/internal/application/dto"
	"github.com/jhoicas/Styllo-POS/internal/application/sales"
	"github.com/jhoicas/Styllo-POS/internal/domain"
	"github.com/jhoicas/Styllo-POS/internal/domain/entity"
	"github.com/jhoicas/Styllo-POS/internal/domain/repository"
)

// --- Mock SaleRepository ---
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	return m.Called(ctx, sale).Error(0)
}

func (m *MockSaleRepository) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Sale), args.Error(1)
}

func (m *MockSaleRepository) UpdateItems(ctx context.Context, id string, items []entity.SaleItem) error {
	return m.Called(ctx, id, items).Error(0)
}

func (m *MockSaleRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockSaleRepository) List(ctx context.Context, f repository.SaleFilter) ([]*entity.Sale, int, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*entity.Sale), args.Int(1), args.Error(2)
}

// --- Test Suite ---
type SalesUseCaseTestSuite struct {
	suite.Suite
	ctx  context.Context
	repo *MockSaleRepository
	uc   *sales.UseCase
}

func (s *SalesUseCaseTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = new(MockSaleRepository)
	s.uc = sales.NewUseCase(s.repo, time.UTC)
}

func TestSalesUseCaseTestSuite(t *testing.T) {
	suite.Run(t, new(SalesUseCaseTestSuite))
}

func item(id, value string) dto.SaleItemDTO {
	return dto.SaleItemDTO{ID: id, Name: "peça " + id, UnitValue: decimal.RequireFromString(value)}
}

// --- Create ---

func (s *SalesUseCaseTestSuite) TestCreate_Success() {
	req := dto.CreateSaleRequest{
		Items:          []dto.SaleItemDTO{item("p1", "20"), item("p2", "30")},
		Seller:         " ana ",
		PaymentMethod:  "PIX",
		ReceivedAmount: decimal.NewFromInt(60),
		ChangeGiven:    decimal.NewFromInt(-5),
	}
	s.repo.On("Create", s.ctx, mock.MatchedBy(func(sale *entity.Sale) bool {
		return sale.Seller == "ana" && sale.PaymentMethod == entity.PaymentPix &&
			sale.ChangeGiven.IsZero() && len(sale.Items) == 2 && sale.ID != ""
	})).Return(nil).Once()

	out, err := s.uc.Create(s.ctx, req)

	s.Require().NoError(err)
	s.Equal("pix", out.PaymentMethod)
	s.Equal("50", out.TotalValue.String())
	s.Equal(2, out.TotalItems)
	s.repo.AssertExpectations(s.T())
}

func (s *SalesUseCaseTestSuite) TestCreate_Rejects() {
	_, err := s.uc.Create(s.ctx, dto.CreateSaleRequest{Seller: "ana"})
	s.ErrorIs(err, domain.ErrInvalidInput, "sin ítems")

	_, err = s.uc.Create(s.ctx, dto.CreateSaleRequest{Items: []dto.SaleItemDTO{item("p1", "10")}})
	s.ErrorIs(err, domain.ErrInvalidInput, "sin vendedor")

	s.repo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *SalesUseCaseTestSuite) TestCreate_ClientPaymentLabels() {
	cases := map[string]entity.PaymentMethod{
		"dinheiro":          entity.PaymentCash,
		"Cartão de Crédito": entity.PaymentCard,
		"cartao":            entity.PaymentCard,
		"Débito":            entity.PaymentCard,
		"Pix":               entity.PaymentPix,
		"cheque":            entity.PaymentCash,
		"":                  entity.PaymentCash,
	}
	for label, want := range cases {
		s.Run(label, func() {
			s.repo.On("Create", s.ctx, mock.MatchedBy(func(sale *entity.Sale) bool {
				return sale.PaymentMethod == want
			})).Return(nil).Once()

			out, err := s.uc.Create(s.ctx, dto.CreateSaleRequest{
				Items: []dto.SaleItemDTO{item("p1", "10")}, Seller: "ana", PaymentMethod: label,
			})
			s.Require().NoError(err)
			s.Equal(string(want), out.PaymentMethod)
		})
	}
	s.repo.AssertExpectations(s.T())
}

// --- List ---

func (s *SalesUseCaseTestSuite) TestList_ClampsPageAndDefaultsSort() {
	sale := &entity.Sale{ID: "s1", Date: time.Now(), Items: []entity.SaleItem{{ID: "p1", UnitValue: decimal.NewFromInt(10)}}}

	s.repo.On("List", s.ctx, mock.MatchedBy(func(f repository.SaleFilter) bool {
		return f.Offset == 400 && f.Limit == 100 && f.Sort == repository.SortDateDesc
	})).Return([]*entity.Sale{}, 3, nil).Once()
	s.repo.On("List", s.ctx, mock.MatchedBy(func(f repository.SaleFilter) bool {
		return f.Offset == 0 && f.Limit == 100
	})).Return([]*entity.Sale{sale}, 3, nil).Once()

	out, err := s.uc.List(s.ctx, dto.SaleFilter{Sort: "bogus", PageRequest: dto.PageRequest{Page: 5, PageSize: 500}})

	s.Require().NoError(err)
	s.Equal(1, out.Page)
	s.Equal(100, out.PageSize)
	s.Equal(1, out.TotalPages)
	s.Equal(3, out.Total)
	s.Len(out.Results, 1)
	s.repo.AssertExpectations(s.T())
}

func (s *SalesUseCaseTestSuite) TestList_InvalidDate() {
	_, err := s.uc.List(s.ctx, dto.SaleFilter{From: "ontem"})
	s.ErrorIs(err, domain.ErrInvalidInput)
}

// --- Summary ---

func (s *SalesUseCaseTestSuite) TestSummary_BucketsByDay() {
	d1 := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 3, 9, 18, 0, 0, 0, time.UTC)
	list := []*entity.Sale{
		{ID: "a", Date: d1, Items: []entity.SaleItem{{ID: "p1", UnitValue: decimal.NewFromInt(10)}, {ID: "p2", UnitValue: decimal.NewFromInt(5)}}},
		{ID: "b", Date: d1.Add(time.Hour), Items: []entity.SaleItem{{ID: "p3", UnitValue: decimal.NewFromInt(20)}}},
		{ID: "c", Date: d2, Items: []entity.SaleItem{{ID: "p1", UnitValue: decimal.NewFromInt(7)}}},
	}
	s.repo.On("List", s.ctx, mock.MatchedBy(func(f repository.SaleFilter) bool {
		return f.Limit == 0 && f.Seller == "ana"
	})).Return(list, 3, nil).Once()

	out, err := s.uc.Summary(s.ctx, dto.SaleFilter{Seller: "Ana"})

	s.Require().NoError(err)
	s.Equal("42", out.TotalValue.String())
	s.Equal(4, out.TotalItems)
	s.Equal(3, out.Count)
	s.Require().Len(out.ByDate, 2)
	s.Equal("2024-03-09", out.ByDate[0].Date)
	s.Equal("2024-03-10", out.ByDate[1].Date)
	s.Equal("35", out.ByDate[1].TotalValue.String())
	s.Equal(2, out.ByDate[1].Count)
}

// --- Delete / RemoveItems ---

func (s *SalesUseCaseTestSuite) TestDelete_NotFound() {
	s.repo.On("GetByID", s.ctx, "x").Return(nil, nil).Once()
	err := s.uc.Delete(s.ctx, "x")
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *SalesUseCaseTestSuite) TestRemoveItems_ByIndices() {
	sale := &entity.Sale{ID: "s1", Items: []entity.SaleItem{{ID: "p1"}, {ID: "p2"}, {ID: "p3"}}}
	s.repo.On("GetByID", s.ctx, "s1").Return(sale, nil).Once()
	s.repo.On("UpdateItems", s.ctx, "s1", []entity.SaleItem{{ID: "p2"}}).Return(nil).Once()

	out, err := s.uc.RemoveItems(s.ctx, "s1", dto.RemoveItemsRequest{Indices: []int{0, 2, 2, 9}, ProductIDs: []string{"p2"}})

	s.Require().NoError(err)
	s.Equal(2, out.Removed)
	s.repo.AssertExpectations(s.T())
}

func (s *SalesUseCaseTestSuite) TestRemoveItems_RequiresSelection() {
	_, err := s.uc.RemoveItems(s.ctx, "s1", dto.RemoveItemsRequest{})
	s.ErrorIs(err, domain.ErrInvalidInput)
}

func TestRemoveSaleItems_ByProductID(t *testing.T) {
	items := []entity.SaleItem{{ID: "p1"}, {ID: "p2"}, {ID: "p1"}}
	kept, removed := sales.RemoveSaleItems(items, nil, []string{"p1"})
	assert.Equal(t, 2, removed)
	assert.Equal(t, []entity.SaleItem{{ID: "p2"}}, kept)
}
