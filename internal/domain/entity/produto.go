package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produto representa um produto vendido por uma loja.
// Categoria e fornecedor são opcionais (SET NULL na exclusão);
// a loja é obrigatória. Todo produto possui exatamente um registro
// de Estoque, criado junto com ele.
type Produto struct {
	ID           string
	Nome         string
	PrecoCompra  decimal.Decimal
	PrecoVenda   decimal.Decimal
	CategoriaID  string // vazio se sem categoria
	FornecedorID string // vazio se sem fornecedor
	LojaID       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
