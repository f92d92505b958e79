package repository

import "github.com/loja-app/loja-api/internal/domain/entity"

// CategoriaRepository define a porta de persistência para Categoria.
type CategoriaRepository interface {
	Create(categoria *entity.Categoria) error
	GetByID(id string) (*entity.Categoria, error)
	Update(categoria *entity.Categoria) error
	List(limit, offset int) ([]*entity.Categoria, error)
	Delete(id string) error
}
