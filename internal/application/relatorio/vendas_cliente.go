package relatorio

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/loja-app/loja-api/internal/application/dto"
	"github.com/loja-app/loja-api/internal/domain"
	"github.com/loja-app/loja-api/internal/domain/entity"
	"github.com/loja-app/loja-api/internal/domain/repository"
)

// Rótulos de status para exibição.
var statusLabels = map[string]string{
	entity.VendaConcluida: "Concluída",
	entity.VendaCancelada: "Cancelada",
}

// VendasClienteUseCase monta o relatório de vendas de um cliente.
// Caminho puramente de leitura: nenhuma mutação, nenhum lock.
type VendasClienteUseCase struct {
	clienteRepo repository.ClienteRepository
	vendaRepo   repository.VendaRepository
	collator    *collate.Collator
}

// NewVendasClienteUseCase constrói o caso de uso.
func NewVendasClienteUseCase(clienteRepo repository.ClienteRepository, vendaRepo repository.VendaRepository) *VendasClienteUseCase {
	return &VendasClienteUseCase{
		clienteRepo: clienteRepo,
		vendaRepo:   vendaRepo,
		collator:    collate.New(language.BrazilianPortuguese),
	}
}

// VendasPorCliente retorna as vendas do cliente, mais recentes primeiro, cada
// uma com o resumo dos itens como "Nome (xQtd)" separados por ", ". Os itens
// são ordenados pelo nome do produto (colação pt-BR) e, em empate, pela ordem
// de inserção.
func (uc *VendasClienteUseCase) VendasPorCliente(ctx context.Context, clienteID string) (*dto.RelatorioVendasClienteResponse, error) {
	cliente, err := uc.clienteRepo.GetByID(clienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}

	vendas, err := uc.vendaRepo.ListByCliente(clienteID)
	if err != nil {
		return nil, err
	}

	resp := &dto.RelatorioVendasClienteResponse{
		Cliente: dto.ClienteResumo{ID: cliente.ID, Nome: cliente.Nome},
		Vendas:  make([]dto.VendaRelatorio, 0, len(vendas)),
	}
	for _, v := range vendas {
		itens, err := uc.vendaRepo.GetItensComProduto(v.Venda.ID)
		if err != nil {
			return nil, err
		}
		resp.Vendas = append(resp.Vendas, dto.VendaRelatorio{
			ID:             v.Venda.ID,
			Loja:           v.LojaNome,
			DataVenda:      v.Venda.DataVenda.Format(time.RFC3339),
			ValorTotal:     v.Venda.ValorTotal.StringFixed(2),
			Status:         statusLabel(v.Venda.Status),
			ItensDescricao: uc.descreverItens(itens),
		})
	}
	return resp, nil
}

// descreverItens resume os itens como "Produto A (x2), Produto B (x1)".
func (uc *VendasClienteUseCase) descreverItens(itens []*repository.ItemVendaComProduto) string {
	// SliceStable preserva a ordem de inserção como desempate entre itens
	// de mesmo nome.
	sort.SliceStable(itens, func(i, j int) bool {
		return uc.collator.CompareString(itens[i].ProdutoNome, itens[j].ProdutoNome) < 0
	})
	partes := make([]string, 0, len(itens))
	for _, item := range itens {
		partes = append(partes, fmt.Sprintf("%s (x%d)", item.ProdutoNome, item.Item.Quantidade))
	}
	return strings.Join(partes, ", ")
}

func statusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}
