package repository

import "github.com/loja-app/loja-api/internal/domain/entity"

// MovimentacaoEstoqueRepository define a porta de persistência do histórico de movimentações.
// Movimentações são imutáveis: só Create e leitura.
type MovimentacaoEstoqueRepository interface {
	Create(movimentacao *entity.MovimentacaoEstoque) error
	ListByProduto(produtoID string, limit, offset int) ([]*entity.MovimentacaoEstoque, error)
	CountByProduto(produtoID string) (int64, error)
}
