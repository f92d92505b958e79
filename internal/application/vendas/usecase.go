package vendas

import (
	"github.com/loja-app/loja-api/internal/application/dto"
	"github.com/loja-app/loja-api/internal/domain/entity"
	"github.com/loja-app/loja-api/internal/domain/repository"
)

// UseCase gerencia o ciclo de vida das vendas: registro com baixa de estoque,
// cancelamento com estorno e consultas. Toda escrita roda em uma única
// transação via VendaTxRunner.
type UseCase struct {
	txRunner    VendaTxRunner
	ledger      EstoqueMovimentador
	lojaRepo    repository.LojaRepository
	clienteRepo repository.ClienteRepository
	produtoRepo repository.ProdutoRepository
	vendaRepo   repository.VendaRepository
	recibo      ReciboGenerator
}

// NewUseCase constrói o caso de uso. Os repositórios recebidos aqui são os
// atados ao pool (caminhos de leitura); as escritas usam os da transação.
func NewUseCase(
	txRunner VendaTxRunner,
	ledger EstoqueMovimentador,
	lojaRepo repository.LojaRepository,
	clienteRepo repository.ClienteRepository,
	produtoRepo repository.ProdutoRepository,
	vendaRepo repository.VendaRepository,
	recibo ReciboGenerator,
) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		ledger:      ledger,
		lojaRepo:    lojaRepo,
		clienteRepo: clienteRepo,
		produtoRepo: produtoRepo,
		vendaRepo:   vendaRepo,
		recibo:      recibo,
	}
}

func toVendaResponse(v *entity.Venda, itens []*entity.ItemVenda) *dto.VendaResponse {
	resp := &dto.VendaResponse{
		ID:         v.ID,
		ClienteID:  v.ClienteID,
		LojaID:     v.LojaID,
		DataVenda:  v.DataVenda.Format(dataVendaLayout),
		ValorTotal: v.ValorTotal,
		Status:     v.Status,
	}
	for _, item := range itens {
		resp.Itens = append(resp.Itens, dto.ItemVendaResponse{
			ID:            item.ID,
			ProdutoID:     item.ProdutoID,
			Quantidade:    item.Quantidade,
			PrecoUnitario: item.PrecoUnitario,
		})
	}
	return resp
}
