package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/loja-app/loja-api/internal/domain/entity"
	"github.com/loja-app/loja-api/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

// ProdutoRepo implementação de ProdutoRepository sobre PostgreSQL (usável com pool ou tx).
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador de persistência para produtos. Passar pool ou tx (Querier).
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

const produtoColunas = `id, nome, preco_compra, preco_venda, categoria_id, fornecedor_id, loja_id, created_at, updated_at`

// Create persiste um novo produto.
func (r *ProdutoRepo) Create(produto *entity.Produto) error {
	query := `
		INSERT INTO produtos (id, nome, preco_compra, preco_venda, categoria_id, fornecedor_id, loja_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		produto.ID, produto.Nome, produto.PrecoCompra, produto.PrecoVenda,
		nullableID(produto.CategoriaID), nullableID(produto.FornecedorID), produto.LojaID,
		produto.CreatedAt, produto.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// GetByID obtém um produto por ID.
func (r *ProdutoRepo) GetByID(id string) (*entity.Produto, error) {
	query := `SELECT ` + produtoColunas + ` FROM produtos WHERE id = $1`
	p, err := scanProduto(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	return p, nil
}

// Update atualiza um produto (a loja de origem não muda).
func (r *ProdutoRepo) Update(produto *entity.Produto) error {
	query := `
		UPDATE produtos
		SET nome = $2, preco_compra = $3, preco_venda = $4, categoria_id = $5, fornecedor_id = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		produto.ID, produto.Nome, produto.PrecoCompra, produto.PrecoVenda,
		nullableID(produto.CategoriaID), nullableID(produto.FornecedorID), produto.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update produto: %w", err)
	}
	return nil
}

// List lista produtos por nome.
func (r *ProdutoRepo) List(limit, offset int) ([]*entity.Produto, error) {
	query := `SELECT ` + produtoColunas + ` FROM produtos ORDER BY nome LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// ListByLoja lista os produtos de uma loja por nome.
func (r *ProdutoRepo) ListByLoja(lojaID string, limit, offset int) ([]*entity.Produto, error) {
	query := `SELECT ` + produtoColunas + ` FROM produtos WHERE loja_id = $3 ORDER BY nome LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset, lojaID)
}

func (r *ProdutoRepo) list(query string, limit, offset int, extra ...any) ([]*entity.Produto, error) {
	args := append([]any{limit, offset}, extra...)
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Produto
	for rows.Next() {
		p, err := scanProduto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Delete exclui um produto (o estoque cai em cascata; a guarda de vínculos
// acontece no caso de uso).
func (r *ProdutoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM produtos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete produto: %w", err)
	}
	return nil
}

// CountByLoja conta os produtos de uma loja.
func (r *ProdutoRepo) CountByLoja(lojaID string) (int64, error) {
	return r.count(`SELECT count(*) FROM produtos WHERE loja_id = $1`, lojaID)
}

// CountByCategoria conta os produtos de uma categoria.
func (r *ProdutoRepo) CountByCategoria(categoriaID string) (int64, error) {
	return r.count(`SELECT count(*) FROM produtos WHERE categoria_id = $1`, categoriaID)
}

// CountByFornecedor conta os produtos de um fornecedor.
func (r *ProdutoRepo) CountByFornecedor(fornecedorID string) (int64, error) {
	return r.count(`SELECT count(*) FROM produtos WHERE fornecedor_id = $1`, fornecedorID)
}

func (r *ProdutoRepo) count(query string, arg any) (int64, error) {
	var total int64
	if err := r.q.QueryRow(context.Background(), query, arg).Scan(&total); err != nil {
		return 0, fmt.Errorf("count produtos: %w", err)
	}
	return total, nil
}

func scanProduto(row pgx.Row) (*entity.Produto, error) {
	var p entity.Produto
	var categoriaID, fornecedorID *string
	err := row.Scan(&p.ID, &p.Nome, &p.PrecoCompra, &p.PrecoVenda,
		&categoriaID, &fornecedorID, &p.LojaID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if categoriaID != nil {
		p.CategoriaID = *categoriaID
	}
	if fornecedorID != nil {
		p.FornecedorID = *fornecedorID
	}
	return &p, nil
}

// nullableID converte ID vazio em NULL para colunas de FK opcionais.
func nullableID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
