package repository

import "github.com/loja-app/loja-api/internal/domain/entity"

// FornecedorRepository define a porta de persistência para Fornecedor.
type FornecedorRepository interface {
	Create(fornecedor *entity.Fornecedor) error
	GetByID(id string) (*entity.Fornecedor, error)
	GetByCNPJ(cnpj string) (*entity.Fornecedor, error)
	Update(fornecedor *entity.Fornecedor) error
	List(limit, offset int) ([]*entity.Fornecedor, error)
	Delete(id string) error
}
