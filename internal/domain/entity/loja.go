package entity

import "time"

// Loja representa uma loja física da rede.
type Loja struct {
	ID        string
	Nome      string
	Endereco  string
	Telefone  string
	Email     string
	CNPJ      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
