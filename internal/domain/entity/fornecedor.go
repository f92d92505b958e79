package entity

import "time"

// Fornecedor representa um fornecedor de produtos.
type Fornecedor struct {
	ID        string
	Nome      string
	CNPJ      string // único quando informado
	Telefone  string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
