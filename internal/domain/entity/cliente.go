package entity

import "time"

// Cliente representa um cliente da rede de lojas.
type Cliente struct {
	ID        string
	Nome      string
	CPF       string // único quando informado
	Telefone  string
	Rua       string
	Numero    string
	Bairro    string
	Estado    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
