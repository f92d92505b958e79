package repository

import "github.com/loja-app/loja-api/internal/domain/entity"

// ClienteRepository define a porta de persistência para Cliente.
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	GetByCPF(cpf string) (*entity.Cliente, error)
	Update(cliente *entity.Cliente) error
	List(limit, offset int) ([]*entity.Cliente, error)
	Delete(id string) error
}
