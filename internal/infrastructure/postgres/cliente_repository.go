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

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementação de ClienteRepository sobre PostgreSQL.
type ClienteRepo struct {
	q Querier
}

func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

const clienteColunas = `id, nome, cpf, telefone, rua, numero, bairro, estado, created_at, updated_at`

func (r *ClienteRepo) Create(cliente *entity.Cliente) error {
	query := `
		INSERT INTO clientes (id, nome, cpf, telefone, rua, numero, bairro, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		cliente.ID, cliente.Nome, nullableID(cliente.CPF), cliente.Telefone,
		cliente.Rua, cliente.Numero, cliente.Bairro, cliente.Estado,
		cliente.CreatedAt, cliente.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

func (r *ClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	query := `SELECT ` + clienteColunas + ` FROM clientes WHERE id = $1`
	return r.get(query, id)
}

func (r *ClienteRepo) GetByCPF(cpf string) (*entity.Cliente, error) {
	query := `SELECT ` + clienteColunas + ` FROM clientes WHERE cpf = $1`
	return r.get(query, cpf)
}

func (r *ClienteRepo) get(query, arg string) (*entity.Cliente, error) {
	c, err := scanCliente(r.q.QueryRow(context.Background(), query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return c, nil
}

func (r *ClienteRepo) Update(cliente *entity.Cliente) error {
	query := `
		UPDATE clientes
		SET nome = $2, cpf = $3, telefone = $4, rua = $5, numero = $6, bairro = $7, estado = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		cliente.ID, cliente.Nome, nullableID(cliente.CPF), cliente.Telefone,
		cliente.Rua, cliente.Numero, cliente.Bairro, cliente.Estado, cliente.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

func (r *ClienteRepo) List(limit, offset int) ([]*entity.Cliente, error) {
	query := `SELECT ` + clienteColunas + ` FROM clientes ORDER BY nome LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		c, err := scanCliente(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *ClienteRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	return nil
}

func scanCliente(row pgx.Row) (*entity.Cliente, error) {
	var c entity.Cliente
	var cpf *string
	err := row.Scan(&c.ID, &c.Nome, &cpf, &c.Telefone, &c.Rua, &c.Numero,
		&c.Bairro, &c.Estado, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if cpf != nil {
		c.CPF = *cpf
	}
	return &c, nil
}
