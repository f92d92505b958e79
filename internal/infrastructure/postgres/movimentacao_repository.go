package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/loja-app/loja-api/internal/domain/entity"
	"github.com/loja-app/loja-api/internal/domain/repository"
)

var _ repository.MovimentacaoEstoqueRepository = (*MovimentacaoEstoqueRepo)(nil)

// MovimentacaoEstoqueRepo implementação sobre PostgreSQL (usável com pool ou tx).
type MovimentacaoEstoqueRepo struct {
	q Querier
}

// NewMovimentacaoEstoqueRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovimentacaoEstoqueRepository(q Querier) *MovimentacaoEstoqueRepo {
	return &MovimentacaoEstoqueRepo{q: q}
}

// Create persiste uma movimentação de estoque. Movimentações nunca são
// atualizadas nem excluídas.
func (r *MovimentacaoEstoqueRepo) Create(movimentacao *entity.MovimentacaoEstoque) error {
	if movimentacao.ID == "" {
		movimentacao.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movimentacoes_estoque (id, produto_id, quantidade, tipo, data, descricao)
		VALUES ($1, $2, $3, $4, $5, $6)`
	descricao := (*string)(nil)
	if movimentacao.Descricao != "" {
		descricao = &movimentacao.Descricao
	}
	_, err := r.q.Exec(context.Background(), query,
		movimentacao.ID, movimentacao.ProdutoID, movimentacao.Quantidade,
		movimentacao.Tipo, movimentacao.Data, descricao,
	)
	if err != nil {
		return fmt.Errorf("create movimentacao: %w", err)
	}
	return nil
}

// ListByProduto lista as movimentações de um produto, mais recentes primeiro.
func (r *MovimentacaoEstoqueRepo) ListByProduto(produtoID string, limit, offset int) ([]*entity.MovimentacaoEstoque, error) {
	query := `
		SELECT id, produto_id, quantidade, tipo, data, descricao
		FROM movimentacoes_estoque
		WHERE produto_id = $1
		ORDER BY data DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, produtoID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movimentacoes: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovimentacaoEstoque
	for rows.Next() {
		var m entity.MovimentacaoEstoque
		var descricao *string
		if err := rows.Scan(&m.ID, &m.ProdutoID, &m.Quantidade, &m.Tipo, &m.Data, &descricao); err != nil {
			return nil, fmt.Errorf("scan movimentacao: %w", err)
		}
		if descricao != nil {
			m.Descricao = *descricao
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// CountByProduto conta as movimentações de um produto (guarda de exclusão).
func (r *MovimentacaoEstoqueRepo) CountByProduto(produtoID string) (int64, error) {
	var total int64
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM movimentacoes_estoque WHERE produto_id = $1`, produtoID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count movimentacoes: %w", err)
	}
	return total, nil
}
