package dto

import "github.com/shopspring/decimal"

// ItemVendaRequest uma linha da venda. Linhas sem produto ou com quantidade
// zero são ignoradas (lotes de entrada com linhas em branco no final).
type ItemVendaRequest struct {
	ProdutoID  string `json:"produto_id"`
	Quantidade int64  `json:"quantidade"`
}

// RegistrarVendaRequest dados para registrar uma venda.
// ClienteID é opcional (venda de balcão).
type RegistrarVendaRequest struct {
	ClienteID string             `json:"cliente_id"`
	LojaID    string             `json:"loja_id"`
	Itens     []ItemVendaRequest `json:"itens"`
}

// ItemVendaResponse uma linha persistida da venda.
type ItemVendaResponse struct {
	ID            string          `json:"id"`
	ProdutoID     string          `json:"produto_id"`
	Quantidade    int64           `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
}

// VendaResponse representação de venda na API.
type VendaResponse struct {
	ID         string              `json:"id"`
	ClienteID  string              `json:"cliente_id,omitempty"`
	LojaID     string              `json:"loja_id"`
	DataVenda  string              `json:"data_venda"` // RFC 3339
	ValorTotal decimal.Decimal     `json:"valor_total"`
	Status     string              `json:"status"`
	Itens      []ItemVendaResponse `json:"itens,omitempty"`
}
