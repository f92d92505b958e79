package estoque

import (
	"context"

	"github.com/loja-app/loja-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa tx. Garante atomicidade do par saldo+movimentação.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimentacaoEstoqueRepository,
		estoqueRepo repository.EstoqueRepository,
		produtoRepo repository.ProdutoRepository,
	) error) error
}
