package entity

import "time"

// Tipos de movimentação de estoque.
const (
	MovimentacaoEntrada = "ENTRADA"
	MovimentacaoSaida   = "SAIDA"
)

// MovimentacaoEstoque é o registro imutável de auditoria de cada alteração
// de estoque. Quantidade é o delta com sinal (positivo em ENTRADA, negativo
// em SAIDA). Nunca é atualizada nem excluída.
type MovimentacaoEstoque struct {
	ID         string
	ProdutoID  string
	Quantidade int64
	Tipo       string // ENTRADA | SAIDA
	Data       time.Time
	Descricao  string // referência livre: venda, estorno, nota de ajuste
}
