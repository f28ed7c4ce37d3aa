package entity

import "time"

// Session sesión activa. El token JWT lleva el ID; la sesión se invalida al
// cerrar sesión o cuando el mismo usuario vuelve a entrar.
type Session struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
