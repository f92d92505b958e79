package relatorio_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loja-app/loja-api/internal/application/relatorio"
	"github.com/loja-app/loja-api/internal/domain"
	"github.com/loja-app/loja-api/internal/domain/entity"
	"github.com/loja-app/loja-api/internal/domain/repository"
)

type fakeClienteRepo struct {
	clientes map[string]*entity.Cliente
}

func (f *fakeClienteRepo) Create(c *entity.Cliente) error { f.clientes[c.ID] = c; return nil }
func (f *fakeClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	return f.clientes[id], nil
}
func (f *fakeClienteRepo) GetByCPF(string) (*entity.Cliente, error) { return nil, nil }
func (f *fakeClienteRepo) Update(*entity.Cliente) error             { return nil }
func (f *fakeClienteRepo) List(int, int) ([]*entity.Cliente, error) { return nil, nil }
func (f *fakeClienteRepo) Delete(string) error                      { return nil }

type fakeVendaRepo struct {
	porCliente map[string][]*repository.VendaComLoja
	itens      map[string][]*repository.ItemVendaComProduto
}

func (f *fakeVendaRepo) Create(*entity.Venda) error                      { return nil }
func (f *fakeVendaRepo) GetByID(string) (*entity.Venda, error)           { return nil, nil }
func (f *fakeVendaRepo) UpdateValorTotal(string, decimal.Decimal) error  { return nil }
func (f *fakeVendaRepo) UpdateStatus(string, string) error               { return nil }
func (f *fakeVendaRepo) List(int, int) ([]*entity.Venda, error)          { return nil, nil }
func (f *fakeVendaRepo) ListByCliente(clienteID string) ([]*repository.VendaComLoja, error) {
	return f.porCliente[clienteID], nil
}
func (f *fakeVendaRepo) CreateItem(*entity.ItemVenda) error           { return nil }
func (f *fakeVendaRepo) GetItens(string) ([]*entity.ItemVenda, error) { return nil, nil }
func (f *fakeVendaRepo) GetItensComProduto(vendaID string) ([]*repository.ItemVendaComProduto, error) {
	return f.itens[vendaID], nil
}
func (f *fakeVendaRepo) CountByCliente(string) (int64, error)      { return 0, nil }
func (f *fakeVendaRepo) CountByLoja(string) (int64, error)         { return 0, nil }
func (f *fakeVendaRepo) CountItensByProduto(string) (int64, error) { return 0, nil }

func item(produtoNome string, quantidade int64) *repository.ItemVendaComProduto {
	return &repository.ItemVendaComProduto{
		Item:        entity.ItemVenda{Quantidade: quantidade},
		ProdutoNome: produtoNome,
	}
}

func TestVendasPorCliente_RelatorioCompleto(t *testing.T) {
	lojaNome := "Loja Centro"
	dataVenda := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

	clienteRepo := &fakeClienteRepo{clientes: map[string]*entity.Cliente{
		"cli-1": {ID: "cli-1", Nome: "Maria"},
	}}
	vendaRepo := &fakeVendaRepo{
		porCliente: map[string][]*repository.VendaComLoja{
			"cli-1": {
				{
					Venda: entity.Venda{
						ID:         "v1",
						ClienteID:  "cli-1",
						LojaID:     "loja-1",
						DataVenda:  dataVenda,
						ValorTotal: decimal.New(50, 0),
						Status:     entity.VendaConcluida,
					},
					LojaNome: &lojaNome,
				},
			},
		},
		itens: map[string][]*repository.ItemVendaComProduto{
			"v1": {
				item("Produto B", 1),
				item("Produto A", 2),
			},
		},
	}

	uc := relatorio.NewVendasClienteUseCase(clienteRepo, vendaRepo)
	out, err := uc.VendasPorCliente(context.Background(), "cli-1")
	require.NoError(t, err)

	assert.Equal(t, "Maria", out.Cliente.Nome)
	require.Len(t, out.Vendas, 1)

	v := out.Vendas[0]
	assert.Equal(t, "v1", v.ID)
	require.NotNil(t, v.Loja)
	assert.Equal(t, "Loja Centro", *v.Loja)
	assert.Equal(t, "2026-03-10T14:30:00Z", v.DataVenda)
	assert.Equal(t, "50.00", v.ValorTotal, "o total sai com duas casas decimais")
	assert.Equal(t, "Concluída", v.Status)
	assert.Equal(t, "Produto A (x2), Produto B (x1)", v.ItensDescricao,
		"itens ordenados pelo nome do produto")
}

func TestVendasPorCliente_OrdenacaoComAcentos(t *testing.T) {
	clienteRepo := &fakeClienteRepo{clientes: map[string]*entity.Cliente{
		"cli-1": {ID: "cli-1", Nome: "Maria"},
	}}
	vendaRepo := &fakeVendaRepo{
		porCliente: map[string][]*repository.VendaComLoja{
			"cli-1": {{Venda: entity.Venda{ID: "v1", Status: entity.VendaConcluida}}},
		},
		itens: map[string][]*repository.ItemVendaComProduto{
			"v1": {
				item("Óleo", 1),
				item("Açúcar", 3),
				item("Arroz", 2),
			},
		},
	}

	uc := relatorio.NewVendasClienteUseCase(clienteRepo, vendaRepo)
	out, err := uc.VendasPorCliente(context.Background(), "cli-1")
	require.NoError(t, err)

	// A colação pt-BR trata acentos como variação da base: Açúcar < Arroz < Óleo.
	assert.Equal(t, "Açúcar (x3), Arroz (x2), Óleo (x1)", out.Vendas[0].ItensDescricao)
}

func TestVendasPorCliente_VendaCanceladaAparaceComRotulo(t *testing.T) {
	clienteRepo := &fakeClienteRepo{clientes: map[string]*entity.Cliente{
		"cli-1": {ID: "cli-1", Nome: "Maria"},
	}}
	vendaRepo := &fakeVendaRepo{
		porCliente: map[string][]*repository.VendaComLoja{
			"cli-1": {{Venda: entity.Venda{ID: "v1", Status: entity.VendaCancelada}}},
		},
		itens: map[string][]*repository.ItemVendaComProduto{},
	}

	uc := relatorio.NewVendasClienteUseCase(clienteRepo, vendaRepo)
	out, err := uc.VendasPorCliente(context.Background(), "cli-1")
	require.NoError(t, err)

	require.Len(t, out.Vendas, 1, "vendas canceladas permanecem no histórico")
	assert.Equal(t, "Cancelada", out.Vendas[0].Status)
	assert.Empty(t, out.Vendas[0].ItensDescricao)
}

func TestVendasPorCliente_ClienteInexistente(t *testing.T) {
	clienteRepo := &fakeClienteRepo{clientes: map[string]*entity.Cliente{}}
	vendaRepo := &fakeVendaRepo{}

	uc := relatorio.NewVendasClienteUseCase(clienteRepo, vendaRepo)
	_, err := uc.VendasPorCliente(context.Background(), "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVendasPorCliente_SemVendas(t *testing.T) {
	clienteRepo := &fakeClienteRepo{clientes: map[string]*entity.Cliente{
		"cli-1": {ID: "cli-1", Nome: "Maria"},
	}}
	vendaRepo := &fakeVendaRepo{}

	uc := relatorio.NewVendasClienteUseCase(clienteRepo, vendaRepo)
	out, err := uc.VendasPorCliente(context.Background(), "cli-1")
	require.NoError(t, err)
	assert.Empty(t, out.Vendas)
}
