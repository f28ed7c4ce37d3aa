package repository

import (
	"context"

	"github.com/jhoicas/Styllo-POS/internal/domain/entity"
)

// SessionStore almacén de sesiones activas (memoria o Redis).
type SessionStore interface {
	// Get devuelve (nil, nil) si la sesión no existe.
	Get(ctx context.Context, id string) (*entity.Session, error)
	Put(ctx context.Context, s *entity.Session) error
	Invalidate(ctx context.Context, id string) error
	// InvalidateUser elimina todas las sesiones del usuario salvo keepID.
	InvalidateUser(ctx context.Context, username, keepID string) error
}
