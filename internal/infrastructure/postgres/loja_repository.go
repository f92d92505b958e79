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

var _ repository.LojaRepository = (*LojaRepo)(nil)

// LojaRepo implementação de LojaRepository sobre PostgreSQL.
type LojaRepo struct {
	q Querier
}

func NewLojaRepository(q Querier) *LojaRepo {
	return &LojaRepo{q: q}
}

const lojaColunas = `id, nome, endereco, telefone, email, cnpj, created_at, updated_at`

func (r *LojaRepo) Create(loja *entity.Loja) error {
	query := `
		INSERT INTO lojas (id, nome, endereco, telefone, email, cnpj, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		loja.ID, loja.Nome, loja.Endereco, loja.Telefone, loja.Email,
		nullableID(loja.CNPJ), loja.CreatedAt, loja.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert loja: %w", err)
	}
	return nil
}

func (r *LojaRepo) GetByID(id string) (*entity.Loja, error) {
	query := `SELECT ` + lojaColunas + ` FROM lojas WHERE id = $1`
	l, err := scanLoja(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get loja: %w", err)
	}
	return l, nil
}

func (r *LojaRepo) Update(loja *entity.Loja) error {
	query := `
		UPDATE lojas
		SET nome = $2, endereco = $3, telefone = $4, email = $5, cnpj = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		loja.ID, loja.Nome, loja.Endereco, loja.Telefone, loja.Email,
		nullableID(loja.CNPJ), loja.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update loja: %w", err)
	}
	return nil
}

func (r *LojaRepo) List(limit, offset int) ([]*entity.Loja, error) {
	query := `SELECT ` + lojaColunas + ` FROM lojas ORDER BY nome LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list lojas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Loja
	for rows.Next() {
		l, err := scanLoja(rows)
		if err != nil {
			return nil, fmt.Errorf("scan loja: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

func (r *LojaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM lojas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete loja: %w", err)
	}
	return nil
}

func scanLoja(row pgx.Row) (*entity.Loja, error) {
	var l entity.Loja
	var cnpj *string
	err := row.Scan(&l.ID, &l.Nome, &l.Endereco, &l.Telefone, &l.Email, &cnpj, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if cnpj != nil {
		l.CNPJ = *cnpj
	}
	return &l, nil
}
