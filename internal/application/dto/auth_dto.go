package dto

import "time"

// RegisterRequest cadastro de usuário.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nome     string `json:"nome"`
	Papel    string `json:"papel"` // admin | vendedor (default vendedor)
}

// LoginRequest credenciais de login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UsuarioResponse dados públicos do usuário.
type UsuarioResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Nome      string    `json:"nome"`
	Papel     string    `json:"papel"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse token + usuário.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}
