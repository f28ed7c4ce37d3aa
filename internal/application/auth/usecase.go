package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Styllo-POS/internal/application/dto"
	"github.com/jhoicas/Styllo-POS/internal/domain"
	"github.com/jhoicas/Styllo-POS/internal/domain/entity"
	"github.com/jhoicas/Styllo-POS/internal/domain/repository"
	"github.com/jhoicas/Styllo-POS/pkg/cpf"
	"github.com/jhoicas/Styllo-POS/pkg/jwt"
	"github.com/jhoicas/Styllo-POS/pkg/validation"
)

const minUsernameLength = 3

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login, logout y validación de sesión.
type AuthUseCase struct {
	userRepo repository.UserRepository
	sessions repository.SessionStore
	jwtCfg   JWTConfig
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, sessions repository.SessionStore, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, sessions: sessions, jwtCfg: jwtCfg, now: time.Now}
}

// Status indica si ya existe al menos un Administrador.
func (uc *AuthUseCase) Status(ctx context.Context) (*dto.StatusResponse, error) {
	n, err := uc.userRepo.CountByRole(ctx, entity.RoleAdmin)
	if err != nil {
		return nil, err
	}
	return &dto.StatusResponse{UsersExist: n > 0}, nil
}

// Register crea un usuario. callerRole es el rol de la sesión que llama ("" sin sesión).
// Si todavía no hay usuarios, el primero se crea como Administrador sin exigir sesión.
// Después se exige sesión de Administrador y los datos completos del funcionario;
// para Funcionario el username pasa a ser el CPF.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest, callerRole string) (*dto.UserResponse, error) {
	total, err := uc.userRepo.CountByRole(ctx, "")
	if err != nil {
		return nil, err
	}
	first := total == 0

	if !first {
		if callerRole == "" {
			return nil, fmt.Errorf("%w: sessão obrigatória para cadastrar usuários", domain.ErrUnauthorized)
		}
		if entity.CanonicalRole(callerRole) != entity.RoleAdmin {
			return nil, fmt.Errorf("%w: apenas administradores podem cadastrar usuários", domain.ErrForbidden)
		}
	}

	username := strings.TrimSpace(in.Username)
	password := strings.TrimSpace(in.Password)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	phone := DigitsOnly(in.Phone)
	doc := cpf.Normalize(in.CPF)

	if err := ValidatePassword(password); err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(in.FullName)) < 3 {
		return nil, fmt.Errorf("%w: informe o nome completo do funcionário", domain.ErrInvalidInput)
	}

	role := entity.RoleAdmin
	if !first {
		role = entity.RoleEmployee
		if in.Role != "" {
			role = entity.CanonicalRole(in.Role)
			if role == "" {
				return nil, fmt.Errorf("%w: cargo inválido, use Administrador ou Funcionario", domain.ErrInvalidInput)
			}
		}
		if err := validateContact(doc, email, phone); err != nil {
			return nil, err
		}
		if role == entity.RoleEmployee {
			username = doc
		}
	}
	if len(username) < minUsernameLength {
		return nil, fmt.Errorf("%w: informe um usuário com pelo menos %d caracteres", domain.ErrInvalidInput, minUsernameLength)
	}

	if existing, err := uc.userRepo.GetByUsername(ctx, username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("%w: este nome de usuário já está em uso", domain.ErrDuplicate)
	}
	if doc != "" {
		if existing, err := uc.userRepo.GetByCPF(ctx, doc); err != nil {
			return nil, err
		} else if existing != nil {
			return nil, fmt.Errorf("%w: já existe um funcionário com este CPF", domain.ErrDuplicate)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := uc.now().UTC()
	user := &entity.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		FullName:     strings.TrimSpace(in.FullName),
		CPF:          doc,
		Email:        email,
		Phone:        phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Login verifica credenciales, invalida las demás sesiones del usuario y emite un token.
// El usuario puede identificarse por username o CPF; los funcionarios solo por CPF.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	input := strings.TrimSpace(in.Username)
	user, err := uc.userRepo.GetByUsername(ctx, input)
	if err != nil {
		return nil, err
	}
	digits := cpf.Normalize(input)
	if user == nil && len(digits) == 11 {
		if user, err = uc.userRepo.GetByCPF(ctx, digits); err != nil {
			return nil, err
		}
	}
	if user == nil {
		return nil, fmt.Errorf("%w: usuário ou senha inválidos", domain.ErrUnauthorized)
	}
	if entity.CanonicalRole(user.Role) == entity.RoleEmployee && (len(digits) != 11 || user.CPF != digits) {
		return nil, fmt.Errorf("%w: para funcionário, utilize o CPF como usuário", domain.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, fmt.Errorf("%w: usuário ou senha inválidos", domain.ErrUnauthorized)
	}

	sess := &entity.Session{
		ID:        uuid.New().String(),
		Username:  user.Username,
		Role:      entity.CanonicalRole(user.Role),
		CreatedAt: uc.now().UTC(),
	}
	if err := uc.sessions.Put(ctx, sess); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	if err := uc.sessions.InvalidateUser(ctx, user.Username, sess.ID); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, sess.ID, sess.Username, sess.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Username: sess.Username, Role: sess.Role}, nil
}

// Authenticate valida el token y exige que la sesión siga activa.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (*entity.Session, error) {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	sess, err := uc.sessions.Get(ctx, claims.SessionID())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	if sess == nil || sess.Username != claims.Username {
		return nil, domain.ErrUnauthorized
	}
	return sess, nil
}

// Logout invalida la sesión indicada.
func (uc *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	return uc.sessions.Invalidate(ctx, sessionID)
}

func validateContact(doc, email, phone string) error {
	switch {
	case doc == "":
		return fmt.Errorf("%w: informe o CPF do funcionário", domain.ErrInvalidInput)
	case email == "":
		return fmt.Errorf("%w: informe o email do funcionário", domain.ErrInvalidInput)
	case phone == "":
		return fmt.Errorf("%w: informe o telefone do funcionário", domain.ErrInvalidInput)
	}
	if err := ValidateEmail(email); err != nil {
		return err
	}
	if err := ValidatePhone(phone); err != nil {
		return err
	}
	if !cpf.Valid(doc) {
		return fmt.Errorf("%w: CPF inválido", domain.ErrInvalidInput)
	}
	return nil
}

// ValidateEmail exige una dirección simple, sin nombre.
func ValidateEmail(email string) error {
	if err := validation.Var(email, "required,email"); err != nil {
		return fmt.Errorf("%w: email inválido", domain.ErrInvalidInput)
	}
	return nil
}

// ValidatePhone exige 10 u 11 dígitos (DDD + número).
func ValidatePhone(digits string) error {
	if n := len(digits); n != 10 && n != 11 {
		return fmt.Errorf("%w: telefone inválido", domain.ErrInvalidInput)
	}
	return nil
}

// ValidatePassword 6 a 64 caracteres, solo letras y números ASCII.
func ValidatePassword(pw string) error {
	if len(pw) < 6 || len(pw) > 64 {
		return fmt.Errorf("%w: a senha deve ter entre 6 e 64 caracteres", domain.ErrInvalidInput)
	}
	for _, r := range pw {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return fmt.Errorf("%w: a senha deve usar apenas letras e números", domain.ErrInvalidInput)
		}
	}
	return nil
}

// DigitsOnly descarta todo lo que no sea dígito ASCII.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ToUserResponse mapea la entidad a la salida pública.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		Username:  u.Username,
		Role:      entity.CanonicalRole(u.Role),
		FullName:  u.FullName,
		CPF:       u.CPF,
		Email:     u.Email,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
