package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Styllo-POS/internal/domain"
	"github.com/jhoicas/Styllo-POS/internal/domain/entity"
	"github.com/jhoicas/Styllo-POS/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `username, password_hash, role, full_name, cpf, email, phone, created_at, updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario. CPF vacío se guarda como NULL.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		user.Username, user.PasswordHash, user.Role, user.FullName, user.CPF, user.Email, user.Phone,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByUsername busca sin distinguir mayúsculas.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.getOne(ctx, `lower(username) = lower($1)`, username)
}

// GetByCPF busca por CPF normalizado (solo dígitos).
func (r *UserRepo) GetByCPF(ctx context.Context, cpf string) (*entity.User, error) {
	if cpf == "" {
		return nil, nil
	}
	return r.getOne(ctx, `cpf = $1`, cpf)
}

func (r *UserRepo) getOne(ctx context.Context, cond string, arg any) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + cond + ` LIMIT 1`
	u, err := scanUser(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// Update actualiza datos y credencial. El username no cambia.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users SET password_hash = $2, role = $3, full_name = $4, cpf = NULLIF($5, ''),
			email = $6, phone = $7, updated_at = $8
		WHERE lower(username) = lower($1)`
	cmd, err := r.q.Exec(ctx, query,
		user.Username, user.PasswordHash, user.Role, user.FullName, user.CPF, user.Email, user.Phone, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Delete elimina un usuario por username.
func (r *UserRepo) Delete(ctx context.Context, username string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM users WHERE lower(username) = lower($1)`, username)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// List filtra por rol y por texto en username, nombre, CPF o email.
func (r *UserRepo) List(ctx context.Context, f repository.UserFilter) ([]*entity.User, error) {
	var w whereBuilder
	if f.Role != "" {
		w.add(`role = ?`, f.Role)
	}
	if f.Search != "" {
		p := likePattern(f.Search)
		w.add(`(username ILIKE ? OR full_name ILIKE ? OR COALESCE(cpf, '') ILIKE ? OR email ILIKE ?)`, p, p, p, p)
	}
	query := `SELECT ` + userColumns + ` FROM users` + w.sql() + ` ORDER BY lower(full_name), lower(username)`
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// CountByRole cuenta usuarios con el rol dado; role vacío cuenta todos.
func (r *UserRepo) CountByRole(ctx context.Context, role string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT count(*) FROM users WHERE $1 = '' OR role = $1`, role).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	var cpf *string
	if err := row.Scan(&u.Username, &u.PasswordHash, &u.Role, &u.FullName, &cpf, &u.Email, &u.Phone,
		&u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	if cpf != nil {
		u.CPF = *cpf
	}
	return &u, nil
}
