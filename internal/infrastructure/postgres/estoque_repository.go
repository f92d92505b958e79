package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/loja-app/loja-api/internal/domain/entity"
	"github.com/loja-app/loja-api/internal/domain/repository"
)

var _ repository.EstoqueRepository = (*EstoqueRepo)(nil)

// EstoqueRepo implementação de EstoqueRepository sobre PostgreSQL (usável com pool ou tx).
type EstoqueRepo struct {
	q Querier
}

// NewEstoqueRepository constrói o adaptador de estoque. Passar pool ou tx (Querier).
func NewEstoqueRepository(q Querier) *EstoqueRepo {
	return &EstoqueRepo{q: q}
}

// Create cria o registro de estoque do produto (quantidade inicial, em geral zero).
func (r *EstoqueRepo) Create(estoque *entity.Estoque) error {
	query := `
		INSERT INTO estoques (produto_id, quantidade, updated_at)
		VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, estoque.ProdutoID, estoque.Quantidade, estoque.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("estoque já existe para o produto %s", estoque.ProdutoID)
		}
		return fmt.Errorf("create estoque: %w", err)
	}
	return nil
}

// Get obtém o estoque atual de um produto. Sem linha, devolve saldo zero.
func (r *EstoqueRepo) Get(produtoID string) (*entity.Estoque, error) {
	query := `
		SELECT produto_id, quantidade, updated_at
		FROM estoques WHERE produto_id = $1`
	var e entity.Estoque
	err := r.q.QueryRow(context.Background(), query, produtoID).Scan(&e.ProdutoID, &e.Quantidade, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Estoque{ProdutoID: produtoID, Quantidade: 0}, nil
		}
		return nil, fmt.Errorf("get estoque: %w", err)
	}
	return &e, nil
}

// GetForUpdate obtém o estoque bloqueando a linha (SELECT FOR UPDATE).
func (r *EstoqueRepo) GetForUpdate(produtoID string) (*entity.Estoque, error) {
	query := `
		SELECT produto_id, quantidade, updated_at
		FROM estoques WHERE produto_id = $1
		FOR UPDATE`
	var e entity.Estoque
	err := r.q.QueryRow(context.Background(), query, produtoID).Scan(&e.ProdutoID, &e.Quantidade, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Estoque{ProdutoID: produtoID, Quantidade: 0}, nil
		}
		return nil, fmt.Errorf("get estoque for update: %w", err)
	}
	return &e, nil
}

// Upsert insere ou atualiza a quantidade em estoque do produto.
func (r *EstoqueRepo) Upsert(estoque *entity.Estoque) error {
	query := `
		INSERT INTO estoques (produto_id, quantidade, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (produto_id)
		DO UPDATE SET quantidade = EXCLUDED.quantidade, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, estoque.ProdutoID, estoque.Quantidade)
	if err != nil {
		return fmt.Errorf("upsert estoque: %w", err)
	}
	return nil
}
