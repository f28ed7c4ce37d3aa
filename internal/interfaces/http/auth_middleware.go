package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Styllo-POS/internal/application/dto"
	"github.com/jhoicas/Styllo-POS/internal/domain"
	"github.com/jhoicas/Styllo-POS/internal/domain/entity"
)

// Locals keys de la sesión en Fiber.
const (
	LocalSessionID = "session_id"
	LocalUsername  = "username"
	LocalRole      = "role"
)

// Authenticator valida un token contra las sesiones activas. Lo implementa *auth.AuthUseCase.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entity.Session, error)
}

// tokenFrom lee x-auth-token o, si falta, Authorization: Bearer <token>.
func tokenFrom(c *fiber.Ctx) (string, bool) {
	if tok := strings.TrimSpace(c.Get("x-auth-token")); tok != "" {
		return tok, true
	}
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", true
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

// AuthMiddleware exige un token de sesión activa y carga usuario y rol en c.Locals.
func AuthMiddleware(authn Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tok, wellFormed := tokenFrom(c)
		if !wellFormed {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		if tok == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token de acesso não informado"})
		}
		sess, err := authn.Authenticate(c.UserContext(), tok)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou sessão encerrada"})
			}
			return errorResponse(c, err)
		}
		setSession(c, sess)
		return c.Next()
	}
}

// OptionalAuth carga la sesión si hay un token válido; si no, sigue sin sesión.
func OptionalAuth(authn Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if tok, ok := tokenFrom(c); ok && tok != "" {
			if sess, err := authn.Authenticate(c.UserContext(), tok); err == nil {
				setSession(c, sess)
			}
		}
		return c.Next()
	}
}

// RequireRole autoriza solo los roles indicados. Debe ir después de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "sessão sem cargo"})
		}
		for _, r := range roles {
			if strings.EqualFold(r, role) {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acesso restrito ao cargo " + strings.Join(roles, ", ")})
	}
}

// RequireAdmin atajo para rutas de Administrador.
func RequireAdmin() fiber.Handler { return RequireRole(entity.RoleAdmin) }

func setSession(c *fiber.Ctx, s *entity.Session) {
	c.Locals(LocalSessionID, s.ID)
	c.Locals(LocalUsername, s.Username)
	c.Locals(LocalRole, s.Role)
}

func localString(c *fiber.Ctx, key string) string {
	s, _ := c.Locals(key).(string)
	return s
}

// GetUsername usuario de la sesión ("" sin sesión).
func GetUsername(c *fiber.Ctx) string { return localString(c, LocalUsername) }

// GetRole rol de la sesión.
func GetRole(c *fiber.Ctx) string { return localString(c, LocalRole) }

// GetSessionID id de la sesión.
func GetSessionID(c *fiber.Ctx) string { return localString(c, LocalSessionID) }
