package repository

import "github.com/loja-app/loja-api/internal/domain/entity"

// EstoqueRepository define a porta para consultar/atualizar o estoque de um produto.
// Usada dentro de transação para garantir consistência da sequência lê-verifica-grava.
type EstoqueRepository interface {
	// Create cria o registro de estoque zerado do produto (passo explícito da criação de produto).
	Create(estoque *entity.Estoque) error
	Get(produtoID string) (*entity.Estoque, error)
	// GetForUpdate bloqueia a linha para update (SELECT FOR UPDATE).
	GetForUpdate(produtoID string) (*entity.Estoque, error)
	Upsert(estoque *entity.Estoque) error
}
