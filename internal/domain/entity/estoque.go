package entity

import "time"

// Estoque representa a quantidade atual de um produto (um registro por produto).
// Mutado somente pelas operações do razão de estoque, dentro de transação.
type Estoque struct {
	ProdutoID  string
	Quantidade int64
	UpdatedAt  time.Time
}
