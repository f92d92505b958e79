package repository

import "github.com/loja-app/loja-api/internal/domain/entity"

// LojaRepository define a porta de persistência para Loja.
type LojaRepository interface {
	Create(loja *entity.Loja) error
	GetByID(id string) (*entity.Loja, error)
	Update(loja *entity.Loja) error
	List(limit, offset int) ([]*entity.Loja, error)
	Delete(id string) error
}
