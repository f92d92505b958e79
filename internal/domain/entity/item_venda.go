package entity

import "github.com/shopspring/decimal"

// ItemVenda é uma linha de uma venda. PrecoUnitario é capturado no momento
// da venda e não acompanha alterações posteriores do preço do produto.
type ItemVenda struct {
	ID            string
	VendaID       string
	ProdutoID     string
	Quantidade    int64
	PrecoUnitario decimal.Decimal
}
