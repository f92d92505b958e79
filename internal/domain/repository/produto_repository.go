package repository

import "github.com/loja-app/loja-api/internal/domain/entity"

// ProdutoRepository define a porta de persistência para Produto.
// Os Count* sustentam as guardas de exclusão dos cadastros.
type ProdutoRepository interface {
	Create(produto *entity.Produto) error
	GetByID(id string) (*entity.Produto, error)
	Update(produto *entity.Produto) error
	List(limit, offset int) ([]*entity.Produto, error)
	ListByLoja(lojaID string, limit, offset int) ([]*entity.Produto, error)
	Delete(id string) error
	CountByLoja(lojaID string) (int64, error)
	CountByCategoria(categoriaID string) (int64, error)
	CountByFornecedor(fornecedorID string) (int64, error)
}
