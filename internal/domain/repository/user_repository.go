package repository

import (
	"context"

	"github.com/jhoicas/Styllo-POS/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get devuelven (nil, nil) si no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByCPF(ctx context.Context, cpf string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, username string) error
	List(ctx context.Context, f UserFilter) ([]*entity.User, error)
	// CountByRole cuenta usuarios con el rol dado; role vacío cuenta todos.
	CountByRole(ctx context.Context, role string) (int, error)
}
