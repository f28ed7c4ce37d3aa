package entity

import (
	"strings"
	"time"
)

// Roles válidos para User. Solo existen dos: el elevado y el estándar.
const (
	RoleAdmin    = "Administrador"
	RoleEmployee = "Funcionario"
)

// User representa un funcionario o administrador de la tienda.
// Para funcionarios el Username es el CPF (solo dígitos).
type User struct {
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // Administrador | Funcionario
	FullName     string
	CPF          string
	Email        string
	Phone        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin indica si el usuario tiene el rol elevado.
func (u *User) IsAdmin() bool {
	return u != nil && CanonicalRole(u.Role) == RoleAdmin
}

// CanonicalRole normaliza los alias históricos de cargo ("gerente", "colaborador"...).
// Devuelve "" si el valor no corresponde a ningún rol.
func CanonicalRole(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "administrador", "gerente":
		return RoleAdmin
	case "funcionario", "funcionarios", "colaborador", "colaboradores":
		return RoleEmployee
	default:
		return ""
	}
}
