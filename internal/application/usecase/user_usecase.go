package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Styllo-POS/internal/application/auth"
	"github.com/jhoicas/Styllo-POS/internal/application/dto"
	"github.com/jhoicas/Styllo-POS/internal/domain"
	"github.com/jhoicas/Styllo-POS/internal/domain/entity"
	"github.com/jhoicas/Styllo-POS/internal/domain/repository"
	"github.com/jhoicas/Styllo-POS/pkg/cpf"
)

// UserUseCase administración de funcionarios (solo Administrador, salvo Usernames).
type UserUseCase struct {
	repo     repository.UserRepository
	sessions repository.SessionStore
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia y el almacén de sesiones.
func NewUserUseCase(repo repository.UserRepository, sessions repository.SessionStore) *UserUseCase {
	return &UserUseCase{repo: repo, sessions: sessions}
}

// List devuelve usuarios filtrados por texto libre y cargo, más recientes primero.
func (uc *UserUseCase) List(ctx context.Context, search, role string) (*dto.UserListResponse, error) {
	canonical := ""
	if role != "" {
		canonical = entity.CanonicalRole(role)
	}
	users, err := uc.repo.List(ctx, repository.UserFilter{
		Search: strings.ToLower(strings.TrimSpace(search)),
		Role:   canonical,
	})
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.CountByRole(ctx, "")
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *auth.ToUserResponse(u))
	}
	return &dto.UserListResponse{Total: total, Results: out}, nil
}

// Usernames lista todos los usernames en orden alfabético.
func (uc *UserUseCase) Usernames(ctx context.Context) ([]string, error) {
	users, err := uc.repo.List(ctx, repository.UserFilter{})
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(users))
	for _, u := range users {
		names = append(names, u.Username)
	}
	sort.Slice(names, func(i, j int) bool { return strings.ToLower(names[i]) < strings.ToLower(names[j]) })
	return names, nil
}

// Update aplica cambios parciales a un funcionario.
func (uc *UserUseCase) Update(ctx context.Context, username string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.get(ctx, username)
	if err != nil {
		return nil, err
	}

	if in.FullName != nil {
		user.FullName = strings.TrimSpace(*in.FullName)
	}
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if email != "" {
			if err := auth.ValidateEmail(email); err != nil {
				return nil, err
			}
		}
		user.Email = email
	}
	if in.Phone != nil {
		phone := auth.DigitsOnly(*in.Phone)
		if phone != "" {
			if err := auth.ValidatePhone(phone); err != nil {
				return nil, err
			}
		}
		user.Phone = phone
	}
	if in.CPF != nil {
		doc := cpf.Normalize(*in.CPF)
		if doc != "" && doc != user.CPF {
			if !cpf.Valid(doc) {
				return nil, fmt.Errorf("%w: CPF inválido", domain.ErrInvalidInput)
			}
			other, err := uc.repo.GetByCPF(ctx, doc)
			if err != nil {
				return nil, err
			}
			if other != nil && other.Username != user.Username {
				return nil, fmt.Errorf("%w: já existe um funcionário com este CPF", domain.ErrDuplicate)
			}
			user.CPF = doc
		}
	}
	if in.Role != nil {
		if role := entity.CanonicalRole(*in.Role); role != "" {
			user.Role = role
		}
	}
	if in.Password != nil && strings.TrimSpace(*in.Password) != "" {
		pw := strings.TrimSpace(*in.Password)
		if err := auth.ValidatePassword(pw); err != nil {
			return nil, err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	user.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Delete elimina un funcionario y cierra sus sesiones. No permite quitar el último Administrador.
func (uc *UserUseCase) Delete(ctx context.Context, username string) error {
	user, err := uc.get(ctx, username)
	if err != nil {
		return err
	}
	if user.IsAdmin() {
		admins, err := uc.repo.CountByRole(ctx, entity.RoleAdmin)
		if err != nil {
			return err
		}
		if admins <= 1 {
			return fmt.Errorf("%w: não é possível excluir o último administrador", domain.ErrConflict)
		}
	}
	if err := uc.repo.Delete(ctx, user.Username); err != nil {
		return err
	}
	return uc.sessions.InvalidateUser(ctx, user.Username, "")
}

func (uc *UserUseCase) get(ctx context.Context, username string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: usuário alvo inválido", domain.ErrInvalidInput)
	}
	user, err := uc.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: funcionário não encontrado", domain.ErrUserNotFound)
	}
	return user, nil
}
