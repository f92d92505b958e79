package repository

import "github.com/loja-app/loja-api/internal/domain/entity"

// UsuarioRepository define a porta de persistência para Usuario.
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	GetByEmail(email string) (*entity.Usuario, error)
}
