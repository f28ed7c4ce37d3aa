package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/Styllo-POS/internal/domain/entity"
	"github.com/jhoicas/Styllo-POS/internal/domain/repository"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	var u *entity.User
	if args.Get(0) != nil {
		u = args.Get(0).(*entity.User)
	}
	return u, args.Error(1)
}

func (m *MockUserRepository) GetByCPF(ctx context.Context, cpf string) (*entity.User, error) {
	args := m.Called(ctx, cpf)
	var u *entity.User
	if args.Get(0) != nil {
		u = args.Get(0).(*entity.User)
	}
	return u, args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, username string) error {
	return m.Called(ctx, username).Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, f repository.UserFilter) ([]*entity.User, error) {
	args := m.Called(ctx, f)
	var users []*entity.User
	if args.Get(0) != nil {
		users = args.Get(0).([]*entity.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) CountByRole(ctx context.Context, role string) (int, error) {
	args := m.Called(ctx, role)
	return args.Int(0), args.Error(1)
}

// --- Mock SessionStore ---
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Get(ctx context.Context, id string) (*entity.Session, error) {
	args := m.Called(ctx, id)
	var s *entity.Session
	if args.Get(0) != nil {
		s = args.Get(0).(*entity.Session)
	}
	return s, args.Error(1)
}

func (m *MockSessionStore) Put(ctx context.Context, s *entity.Session) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSessionStore) Invalidate(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockSessionStore) InvalidateUser(ctx context.Context, username, keepID string) error {
	return m.Called(ctx, username, keepID).Error(0)
}

// --- Mock ProductRepository ---
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, p *entity.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	args := m.Called(ctx, id)
	var p *entity.Product
	if args.Get(0) != nil {
		p = args.Get(0).(*entity.Product)
	}
	return p, args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, p *entity.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProductRepository) List(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, int, error) {
	args := m.Called(ctx, f)
	var list []*entity.Product
	if args.Get(0) != nil {
		list = args.Get(0).([]*entity.Product)
	}
	return list, args.Int(1), args.Error(2)
}
