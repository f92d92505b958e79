package dto

import "time"

// AjusteEstoqueRequest ajuste manual de estoque: delta com sinal e descrição livre.
// O sinal do delta determina o tipo da movimentação (ENTRADA/SAIDA).
type AjusteEstoqueRequest struct {
	Quantidade int64  `json:"quantidade"`
	Descricao  string `json:"descricao"`
}

// EstoqueResponse saldo atual de um produto.
type EstoqueResponse struct {
	ProdutoID  string `json:"produto_id"`
	Quantidade int64  `json:"quantidade"`
}

// MovimentacaoResponse uma movimentação do histórico.
type MovimentacaoResponse struct {
	ID         string    `json:"id"`
	ProdutoID  string    `json:"produto_id"`
	Quantidade int64     `json:"quantidade"`
	Tipo       string    `json:"tipo"`
	Data       time.Time `json:"data"`
	Descricao  string    `json:"descricao,omitempty"`
}
