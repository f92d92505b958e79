package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/loja-app/loja-api/internal/domain"
	"github.com/loja-app/loja-api/internal/domain/entity"
	"github.com/loja-app/loja-api/internal/domain/repository"
)

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

// CategoriaRepo implementação de CategoriaRepository sobre PostgreSQL.
type CategoriaRepo struct {
	q Querier
}

func NewCategoriaRepository(q Querier) *CategoriaRepo {
	return &CategoriaRepo{q: q}
}

func (r *CategoriaRepo) Create(categoria *entity.Categoria) error {
	query := `
		INSERT INTO categorias (id, nome, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		categoria.ID, categoria.Nome, categoria.CreatedAt, categoria.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

func (r *CategoriaRepo) GetByID(id string) (*entity.Categoria, error) {
	query := `SELECT id, nome, created_at, updated_at FROM categorias WHERE id = $1`
	var c entity.Categoria
	err := r.q.QueryRow(context.Background(), query, id).Scan(&c.ID, &c.Nome, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria: %w", err)
	}
	return &c, nil
}

func (r *CategoriaRepo) Update(categoria *entity.Categoria) error {
	query := `UPDATE categorias SET nome = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, categoria.ID, categoria.Nome, categoria.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update categoria: %w", err)
	}
	return nil
}

func (r *CategoriaRepo) List(limit, offset int) ([]*entity.Categoria, error) {
	query := `SELECT id, nome, created_at, updated_at FROM categorias ORDER BY nome LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()
	var list []*entity.Categoria
	for rows.Next() {
		var c entity.Categoria
		if err := rows.Scan(&c.ID, &c.Nome, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *CategoriaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM categorias WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete categoria: %w", err)
	}
	return nil
}
