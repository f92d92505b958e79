package dto

import "github.com/shopspring/decimal"

// CreateProdutoRequest dados para cadastrar um produto.
// CategoriaID e FornecedorID são opcionais; LojaID é obrigatório.
type CreateProdutoRequest struct {
	Nome         string          `json:"nome"`
	PrecoCompra  decimal.Decimal `json:"preco_compra"`
	PrecoVenda   decimal.Decimal `json:"preco_venda"`
	CategoriaID  string          `json:"categoria_id"`
	FornecedorID string          `json:"fornecedor_id"`
	LojaID       string          `json:"loja_id"`
}

// UpdateProdutoRequest dados para editar um produto.
type UpdateProdutoRequest struct {
	Nome         string          `json:"nome"`
	PrecoCompra  decimal.Decimal `json:"preco_compra"`
	PrecoVenda   decimal.Decimal `json:"preco_venda"`
	CategoriaID  string          `json:"categoria_id"`
	FornecedorID string          `json:"fornecedor_id"`
}

// ProdutoResponse representação de produto na API.
type ProdutoResponse struct {
	ID           string          `json:"id"`
	Nome         string          `json:"nome"`
	PrecoCompra  decimal.Decimal `json:"preco_compra"`
	PrecoVenda   decimal.Decimal `json:"preco_venda"`
	CategoriaID  string          `json:"categoria_id,omitempty"`
	FornecedorID string          `json:"fornecedor_id,omitempty"`
	LojaID       string          `json:"loja_id"`
}
