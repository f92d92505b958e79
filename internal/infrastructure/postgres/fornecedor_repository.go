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

var _ repository.FornecedorRepository = (*FornecedorRepo)(nil)

// FornecedorRepo implementação de FornecedorRepository sobre PostgreSQL.
type FornecedorRepo struct {
	q Querier
}

func NewFornecedorRepository(q Querier) *FornecedorRepo {
	return &FornecedorRepo{q: q}
}

const fornecedorColunas = `id, nome, cnpj, telefone, email, created_at, updated_at`

func (r *FornecedorRepo) Create(fornecedor *entity.Fornecedor) error {
	query := `
		INSERT INTO fornecedores (id, nome, cnpj, telefone, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		fornecedor.ID, fornecedor.Nome, nullableID(fornecedor.CNPJ),
		fornecedor.Telefone, fornecedor.Email, fornecedor.CreatedAt, fornecedor.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert fornecedor: %w", err)
	}
	return nil
}

func (r *FornecedorRepo) GetByID(id string) (*entity.Fornecedor, error) {
	query := `SELECT ` + fornecedorColunas + ` FROM fornecedores WHERE id = $1`
	return r.get(query, id)
}

func (r *FornecedorRepo) GetByCNPJ(cnpj string) (*entity.Fornecedor, error) {
	query := `SELECT ` + fornecedorColunas + ` FROM fornecedores WHERE cnpj = $1`
	return r.get(query, cnpj)
}

func (r *FornecedorRepo) get(query, arg string) (*entity.Fornecedor, error) {
	f, err := scanFornecedor(r.q.QueryRow(context.Background(), query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fornecedor: %w", err)
	}
	return f, nil
}

func (r *FornecedorRepo) Update(fornecedor *entity.Fornecedor) error {
	query := `
		UPDATE fornecedores
		SET nome = $2, cnpj = $3, telefone = $4, email = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		fornecedor.ID, fornecedor.Nome, nullableID(fornecedor.CNPJ),
		fornecedor.Telefone, fornecedor.Email, fornecedor.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update fornecedor: %w", err)
	}
	return nil
}

func (r *FornecedorRepo) List(limit, offset int) ([]*entity.Fornecedor, error) {
	query := `SELECT ` + fornecedorColunas + ` FROM fornecedores ORDER BY nome LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list fornecedores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Fornecedor
	for rows.Next() {
		f, err := scanFornecedor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan fornecedor: %w", err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

func (r *FornecedorRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM fornecedores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete fornecedor: %w", err)
	}
	return nil
}

func scanFornecedor(row pgx.Row) (*entity.Fornecedor, error) {
	var f entity.Fornecedor
	var cnpj *string
	err := row.Scan(&f.ID, &f.Nome, &cnpj, &f.Telefone, &f.Email, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if cnpj != nil {
		f.CNPJ = *cnpj
	}
	return &f, nil
}
