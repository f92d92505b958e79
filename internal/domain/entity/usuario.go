package entity

import "time"

// Papéis de usuário.
const (
	PapelAdmin    = "admin"    // equivalente a staff: gerencia cadastros e relatórios
	PapelVendedor = "vendedor" // acesso de leitura ao painel
)

// Usuario representa um usuário autenticável da aplicação.
type Usuario struct {
	ID           string
	Email        string
	PasswordHash string
	Nome         string
	Papel        string // admin | vendedor
	Ativo        bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
