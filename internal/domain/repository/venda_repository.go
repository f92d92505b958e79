package repository

import (
	"github.com/shopspring/decimal"

	"github.com/loja-app/loja-api/internal/domain/entity"
)

// VendaComLoja é a projeção de venda com o nome da loja para o relatório.
// LojaNome é ponteiro por defesa: a exclusão de loja com vendas é bloqueada,
// mas o relatório tolera a ausência.
type VendaComLoja struct {
	Venda    entity.Venda
	LojaNome *string
}

// ItemVendaComProduto é a projeção de item com o nome do produto.
type ItemVendaComProduto struct {
	Item        entity.ItemVenda
	ProdutoNome string
}

// VendaRepository define a porta de persistência para Venda e seus itens.
type VendaRepository interface {
	Create(venda *entity.Venda) error
	GetByID(id string) (*entity.Venda, error)
	UpdateValorTotal(id string, valorTotal decimal.Decimal) error
	UpdateStatus(id, status string) error
	List(limit, offset int) ([]*entity.Venda, error)
	// ListByCliente retorna as vendas do cliente, mais recentes primeiro, com o nome da loja.
	ListByCliente(clienteID string) ([]*VendaComLoja, error)
	CreateItem(item *entity.ItemVenda) error
	// GetItens retorna os itens na ordem de inserção.
	GetItens(vendaID string) ([]*entity.ItemVenda, error)
	// GetItensComProduto retorna os itens com nome do produto, na ordem de inserção.
	GetItensComProduto(vendaID string) ([]*ItemVendaComProduto, error)
	CountByCliente(clienteID string) (int64, error)
	CountByLoja(lojaID string) (int64, error)
	CountItensByProduto(produtoID string) (int64, error)
}
