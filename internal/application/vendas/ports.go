package vendas

import (
	"context"
	"time"

	"github.com/loja-app/loja-api/internal/domain/entity"
	"github.com/loja-app/loja-api/internal/domain/repository"
)

// VendaTxRunner executa uma função dentro de uma transação que cobre a venda,
// seus itens e todas as escritas de estoque/movimentação que ela dispara.
// Ou tudo é gravado, ou nada, inclusive o cabeçalho provisório da venda.
type VendaTxRunner interface {
	RunVenda(ctx context.Context, fn func(
		vendaRepo repository.VendaRepository,
		movRepo repository.MovimentacaoEstoqueRepository,
		estoqueRepo repository.EstoqueRepository,
		produtoRepo repository.ProdutoRepository,
	) error) error
}

// EstoqueMovimentador integra vendas com o razão de estoque usando os
// repositórios do chamador (mesma transação). BaixaEmTx retorna
// EstoqueInsuficienteError quando o saldo não cobre a quantidade; o chamador
// deve fazer rollback.
type EstoqueMovimentador interface {
	BaixaEmTx(
		movRepo repository.MovimentacaoEstoqueRepository,
		estoqueRepo repository.EstoqueRepository,
		produto *entity.Produto,
		quantidade int64,
		now time.Time,
		descricao string,
	) error
	EstornoEmTx(
		movRepo repository.MovimentacaoEstoqueRepository,
		estoqueRepo repository.EstoqueRepository,
		produtoID string,
		quantidade int64,
		now time.Time,
		descricao string,
	) error
}

// ReciboGenerator gera o recibo da venda em PDF.
type ReciboGenerator interface {
	GerarReciboPDF(
		ctx context.Context,
		venda *entity.Venda,
		loja *entity.Loja,
		cliente *entity.Cliente, // nil em venda de balcão
		itens []*repository.ItemVendaComProduto,
	) ([]byte, error)
}
