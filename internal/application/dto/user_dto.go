package dto

import "time"

// RegisterRequest alta de usuario. El primer usuario del sistema se crea como
// Administrador sin sesión; los siguientes exigen sesión de Administrador.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password" validate:"required,min=6,max=64,alphanum"`
	Role     string `json:"cargo"`
	FullName string `json:"nomeCompleto" validate:"required,min=3,max=200"`
	CPF      string `json:"cpf"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"telefone"`
}

// UpdateUserRequest campos opcionales; nil = sin cambio.
type UpdateUserRequest struct {
	FullName *string `json:"nomeCompleto" validate:"omitempty,min=3,max=200"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"telefone"`
	CPF      *string `json:"cpf"`
	Role     *string `json:"cargo"`
	Password *string `json:"password" validate:"omitempty,min=6,max=64,alphanum"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	Username  string    `json:"username"`
	Role      string    `json:"cargo"`
	FullName  string    `json:"nomeCompleto"`
	CPF       string    `json:"cpf,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"telefone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserListResponse listado filtrado de usuarios.
type UserListResponse struct {
	Total   int            `json:"total"`
	Results []UserResponse `json:"results"`
}

// LoginRequest usuario (o CPF) y contraseña.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token de sesión y datos básicos.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"cargo"`
}

// StatusResponse indica si ya existe un Administrador.
type StatusResponse struct {
	UsersExist bool `json:"usersExist"`
}
