package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/loja-app/loja-api/internal/application/estoque"
	"github.com/loja-app/loja-api/internal/application/vendas"
	"github.com/loja-app/loja-api/internal/domain/repository"
)

var _ estoque.TxRunner = (*TxRunner)(nil)
var _ vendas.VendaTxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação, executa fn com repositórios atados à tx e faz
// Commit ou Rollback. Cobre ajustes de estoque e a criação produto+estoque.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovimentacaoEstoqueRepository,
	estoqueRepo repository.EstoqueRepository,
	produtoRepo repository.ProdutoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movRepo := NewMovimentacaoEstoqueRepository(tx)
	estoqueRepo := NewEstoqueRepository(tx)
	produtoRepo := NewProdutoRepository(tx)

	if err := fn(movRepo, estoqueRepo, produtoRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunVenda inicia uma transação com os repositórios de venda e estoque
// (registro e cancelamento de vendas).
func (r *TxRunner) RunVenda(ctx context.Context, fn func(
	vendaRepo repository.VendaRepository,
	movRepo repository.MovimentacaoEstoqueRepository,
	estoqueRepo repository.EstoqueRepository,
	produtoRepo repository.ProdutoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	vendaRepo := NewVendaRepository(tx)
	movRepo := NewMovimentacaoEstoqueRepository(tx)
	estoqueRepo := NewEstoqueRepository(tx)
	produtoRepo := NewProdutoRepository(tx)

	if err := fn(vendaRepo, movRepo, estoqueRepo, produtoRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
