package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loja-app/loja-api/internal/application/dto"
	"github.com/loja-app/loja-api/internal/application/usecase"
	"github.com/loja-app/loja-api/internal/domain"
	"github.com/loja-app/loja-api/internal/domain/entity"
	"github.com/loja-app/loja-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeLojaRepo struct {
	lojas    map[string]*entity.Loja
	excluido string
}

func (f *fakeLojaRepo) Create(l *entity.Loja) error             { f.lojas[l.ID] = l; return nil }
func (f *fakeLojaRepo) GetByID(id string) (*entity.Loja, error) { return f.lojas[id], nil }
func (f *fakeLojaRepo) Update(*entity.Loja) error               { return nil }
func (f *fakeLojaRepo) List(int, int) ([]*entity.Loja, error)   { return nil, nil }
func (f *fakeLojaRepo) Delete(id string) error {
	f.excluido = id
	delete(f.lojas, id)
	return nil
}

type fakeCategoriaRepo struct {
	categorias map[string]*entity.Categoria
	excluido   string
}

func (f *fakeCategoriaRepo) Create(c *entity.Categoria) error { f.categorias[c.ID] = c; return nil }
func (f *fakeCategoriaRepo) GetByID(id string) (*entity.Categoria, error) {
	return f.categorias[id], nil
}
func (f *fakeCategoriaRepo) Update(*entity.Categoria) error             { return nil }
func (f *fakeCategoriaRepo) List(int, int) ([]*entity.Categoria, error) { return nil, nil }
func (f *fakeCategoriaRepo) Delete(id string) error {
	f.excluido = id
	delete(f.categorias, id)
	return nil
}

type fakeFornecedorRepo struct {
	fornecedores map[string]*entity.Fornecedor
}

func (f *fakeFornecedorRepo) Create(fo *entity.Fornecedor) error { f.fornecedores[fo.ID] = fo; return nil }
func (f *fakeFornecedorRepo) GetByID(id string) (*entity.Fornecedor, error) {
	return f.fornecedores[id], nil
}
func (f *fakeFornecedorRepo) GetByCNPJ(cnpj string) (*entity.Fornecedor, error) {
	for _, fo := range f.fornecedores {
		if fo.CNPJ == cnpj {
			return fo, nil
		}
	}
	return nil, nil
}
func (f *fakeFornecedorRepo) Update(*entity.Fornecedor) error             { return nil }
func (f *fakeFornecedorRepo) List(int, int) ([]*entity.Fornecedor, error) { return nil, nil }
func (f *fakeFornecedorRepo) Delete(id string) error {
	delete(f.fornecedores, id)
	return nil
}

type fakeClienteRepo struct {
	clientes map[string]*entity.Cliente
}

func (f *fakeClienteRepo) Create(c *entity.Cliente) error { f.clientes[c.ID] = c; return nil }
func (f *fakeClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	return f.clientes[id], nil
}
func (f *fakeClienteRepo) GetByCPF(cpf string) (*entity.Cliente, error) {
	for _, c := range f.clientes {
		if c.CPF == cpf {
			return c, nil
		}
	}
	return nil, nil
}
func (f *fakeClienteRepo) Update(*entity.Cliente) error             { return nil }
func (f *fakeClienteRepo) List(int, int) ([]*entity.Cliente, error) { return nil, nil }
func (f *fakeClienteRepo) Delete(id string) error {
	delete(f.clientes, id)
	return nil
}

type fakeProdutoRepo struct {
	produtos      map[string]*entity.Produto
	porLoja       map[string]int64
	porCategoria  map[string]int64
	porFornecedor map[string]int64
	excluido      string
}

func (f *fakeProdutoRepo) Create(p *entity.Produto) error { f.produtos[p.ID] = p; return nil }
func (f *fakeProdutoRepo) GetByID(id string) (*entity.Produto, error) {
	return f.produtos[id], nil
}
func (f *fakeProdutoRepo) Update(*entity.Produto) error             { return nil }
func (f *fakeProdutoRepo) List(int, int) ([]*entity.Produto, error) { return nil, nil }
func (f *fakeProdutoRepo) ListByLoja(string, int, int) ([]*entity.Produto, error) {
	return nil, nil
}
func (f *fakeProdutoRepo) Delete(id string) error {
	f.excluido = id
	delete(f.produtos, id)
	return nil
}
func (f *fakeProdutoRepo) CountByLoja(id string) (int64, error)       { return f.porLoja[id], nil }
func (f *fakeProdutoRepo) CountByCategoria(id string) (int64, error)  { return f.porCategoria[id], nil }
func (f *fakeProdutoRepo) CountByFornecedor(id string) (int64, error) { return f.porFornecedor[id], nil }

type fakeEstoqueRepo struct {
	saldos map[string]int64
}

func (f *fakeEstoqueRepo) Create(e *entity.Estoque) error {
	f.saldos[e.ProdutoID] = e.Quantidade
	return nil
}
func (f *fakeEstoqueRepo) Get(produtoID string) (*entity.Estoque, error) {
	return &entity.Estoque{ProdutoID: produtoID, Quantidade: f.saldos[produtoID]}, nil
}
func (f *fakeEstoqueRepo) GetForUpdate(produtoID string) (*entity.Estoque, error) {
	return f.Get(produtoID)
}
func (f *fakeEstoqueRepo) Upsert(e *entity.Estoque) error {
	f.saldos[e.ProdutoID] = e.Quantidade
	return nil
}

type fakeMovRepo struct {
	porProduto map[string]int64
}

func (f *fakeMovRepo) Create(*entity.MovimentacaoEstoque) error { return nil }
func (f *fakeMovRepo) ListByProduto(string, int, int) ([]*entity.MovimentacaoEstoque, error) {
	return nil, nil
}
func (f *fakeMovRepo) CountByProduto(id string) (int64, error) { return f.porProduto[id], nil }

type fakeVendaRepo struct {
	porCliente        map[string]int64
	porLoja           map[string]int64
	itensPorProduto   map[string]int64
}

func (f *fakeVendaRepo) Create(*entity.Venda) error                     { return nil }
func (f *fakeVendaRepo) GetByID(string) (*entity.Venda, error)          { return nil, nil }
func (f *fakeVendaRepo) UpdateValorTotal(string, decimal.Decimal) error { return nil }
func (f *fakeVendaRepo) UpdateStatus(string, string) error              { return nil }
func (f *fakeVendaRepo) List(int, int) ([]*entity.Venda, error)         { return nil, nil }
func (f *fakeVendaRepo) ListByCliente(string) ([]*repository.VendaComLoja, error) {
	return nil, nil
}
func (f *fakeVendaRepo) CreateItem(*entity.ItemVenda) error           { return nil }
func (f *fakeVendaRepo) GetItens(string) ([]*entity.ItemVenda, error) { return nil, nil }
func (f *fakeVendaRepo) GetItensComProduto(string) ([]*repository.ItemVendaComProduto, error) {
	return nil, nil
}
func (f *fakeVendaRepo) CountByCliente(id string) (int64, error)      { return f.porCliente[id], nil }
func (f *fakeVendaRepo) CountByLoja(id string) (int64, error)         { return f.porLoja[id], nil }
func (f *fakeVendaRepo) CountItensByProduto(id string) (int64, error) { return f.itensPorProduto[id], nil }

// fakeTxRunner executa o callback direto sobre os fakes.
type fakeTxRunner struct {
	produtoRepo *fakeProdutoRepo
	estoqueRepo *fakeEstoqueRepo
	movRepo     *fakeMovRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.MovimentacaoEstoqueRepository,
	estoqueRepo repository.EstoqueRepository,
	produtoRepo repository.ProdutoRepository,
) error) error {
	return fn(f.movRepo, f.estoqueRepo, f.produtoRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Guardas de exclusão
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoriaDelete_BloqueadaComProdutos(t *testing.T) {
	categoriaRepo := &fakeCategoriaRepo{categorias: map[string]*entity.Categoria{
		"cat-1": {ID: "cat-1", Nome: "Bebidas"},
	}}
	produtoRepo := &fakeProdutoRepo{porCategoria: map[string]int64{"cat-1": 3}}

	uc := usecase.NewCategoriaUseCase(categoriaRepo, produtoRepo)
	err := uc.Delete("cat-1")
	require.Error(t, err)

	var vinculo *domain.VinculoExistenteError
	require.True(t, errors.As(err, &vinculo))
	assert.Equal(t, "categoria", vinculo.Entidade)
	assert.Equal(t, int64(3), vinculo.Total)
	assert.True(t, errors.Is(err, domain.ErrConflict))
	assert.Empty(t, categoriaRepo.excluido, "a categoria não deve ser excluída")
}

func TestCategoriaDelete_SemProdutosExclui(t *testing.T) {
	categoriaRepo := &fakeCategoriaRepo{categorias: map[string]*entity.Categoria{
		"cat-1": {ID: "cat-1", Nome: "Bebidas"},
	}}
	produtoRepo := &fakeProdutoRepo{porCategoria: map[string]int64{}}

	uc := usecase.NewCategoriaUseCase(categoriaRepo, produtoRepo)
	require.NoError(t, uc.Delete("cat-1"))
	assert.Equal(t, "cat-1", categoriaRepo.excluido)
}

func TestLojaDelete_BloqueadaComVendas(t *testing.T) {
	lojaRepo := &fakeLojaRepo{lojas: map[string]*entity.Loja{
		"loja-1": {ID: "loja-1", Nome: "Loja Centro"},
	}}
	produtoRepo := &fakeProdutoRepo{porLoja: map[string]int64{}}
	vendaRepo := &fakeVendaRepo{porLoja: map[string]int64{"loja-1": 7}}

	uc := usecase.NewLojaUseCase(lojaRepo, produtoRepo, vendaRepo)
	err := uc.Delete("loja-1")

	var vinculo *domain.VinculoExistenteError
	require.True(t, errors.As(err, &vinculo))
	assert.Equal(t, "vendas", vinculo.Dependente)
	assert.Empty(t, lojaRepo.excluido)
}

func TestClienteDelete_BloqueadoComVendas(t *testing.T) {
	clienteRepo := &fakeClienteRepo{clientes: map[string]*entity.Cliente{
		"cli-1": {ID: "cli-1", Nome: "Maria"},
	}}
	vendaRepo := &fakeVendaRepo{porCliente: map[string]int64{"cli-1": 2}}

	uc := usecase.NewClienteUseCase(clienteRepo, vendaRepo)
	err := uc.Delete("cli-1")

	var vinculo *domain.VinculoExistenteError
	require.True(t, errors.As(err, &vinculo))
	assert.Equal(t, "cliente", vinculo.Entidade)
	assert.Contains(t, clienteRepo.clientes, "cli-1", "o cliente permanece")
}

func TestProdutoDelete_BloqueadoComHistorico(t *testing.T) {
	produtoRepo := &fakeProdutoRepo{produtos: map[string]*entity.Produto{
		"p1": {ID: "p1", Nome: "Café"},
	}}
	movRepo := &fakeMovRepo{porProduto: map[string]int64{"p1": 4}}
	vendaRepo := &fakeVendaRepo{itensPorProduto: map[string]int64{}}

	uc := usecase.NewProdutoUseCase(nil, produtoRepo, nil, movRepo, nil, nil, nil, vendaRepo)
	err := uc.Delete("p1")

	var vinculo *domain.VinculoExistenteError
	require.True(t, errors.As(err, &vinculo))
	assert.Equal(t, "movimentações de estoque", vinculo.Dependente)
	assert.Empty(t, produtoRepo.excluido)
}

// ──────────────────────────────────────────────────────────────────────────────
// Criação de produto com estoque zerado
// ──────────────────────────────────────────────────────────────────────────────

func TestProdutoCreate_CriaEstoqueZerado(t *testing.T) {
	lojaRepo := &fakeLojaRepo{lojas: map[string]*entity.Loja{
		"loja-1": {ID: "loja-1", Nome: "Loja Centro"},
	}}
	produtoRepo := &fakeProdutoRepo{produtos: map[string]*entity.Produto{}}
	estoqueRepo := &fakeEstoqueRepo{saldos: map[string]int64{}}
	movRepo := &fakeMovRepo{}
	txRunner := &fakeTxRunner{produtoRepo: produtoRepo, estoqueRepo: estoqueRepo, movRepo: movRepo}

	uc := usecase.NewProdutoUseCase(
		txRunner, produtoRepo, estoqueRepo, movRepo,
		lojaRepo, &fakeCategoriaRepo{categorias: map[string]*entity.Categoria{}},
		&fakeFornecedorRepo{fornecedores: map[string]*entity.Fornecedor{}},
		&fakeVendaRepo{},
	)

	out, err := uc.Create(context.Background(), dto.CreateProdutoRequest{
		Nome:        "Café",
		PrecoCompra: decimal.NewFromInt(6),
		PrecoVenda:  decimal.NewFromInt(10),
		LojaID:      "loja-1",
	})
	require.NoError(t, err)

	saldo, ok := estoqueRepo.saldos[out.ID]
	require.True(t, ok, "o registro de estoque nasce junto com o produto")
	assert.Equal(t, int64(0), saldo)
}

func TestProdutoCreate_CategoriaInexistente(t *testing.T) {
	lojaRepo := &fakeLojaRepo{lojas: map[string]*entity.Loja{
		"loja-1": {ID: "loja-1"},
	}}
	uc := usecase.NewProdutoUseCase(
		nil, &fakeProdutoRepo{}, nil, nil,
		lojaRepo, &fakeCategoriaRepo{categorias: map[string]*entity.Categoria{}},
		&fakeFornecedorRepo{fornecedores: map[string]*entity.Fornecedor{}},
		&fakeVendaRepo{},
	)

	_, err := uc.Create(context.Background(), dto.CreateProdutoRequest{
		Nome:        "Café",
		PrecoVenda:  decimal.NewFromInt(10),
		LojaID:      "loja-1",
		CategoriaID: "nao-existe",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProdutoCreate_PrecoNegativoRejeitado(t *testing.T) {
	uc := usecase.NewProdutoUseCase(nil, &fakeProdutoRepo{}, nil, nil, nil, nil, nil, nil)

	_, err := uc.Create(context.Background(), dto.CreateProdutoRequest{
		Nome:       "Café",
		PrecoVenda: decimal.NewFromInt(-1),
		LojaID:     "loja-1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Unicidade de CPF/CNPJ nos cadastros
// ──────────────────────────────────────────────────────────────────────────────

func TestClienteCreate_CPFDuplicado(t *testing.T) {
	clienteRepo := &fakeClienteRepo{clientes: map[string]*entity.Cliente{
		"cli-1": {ID: "cli-1", Nome: "Maria", CPF: "111.222.333-44"},
	}}
	uc := usecase.NewClienteUseCase(clienteRepo, &fakeVendaRepo{})

	_, err := uc.Create(dto.CreateClienteRequest{Nome: "Outra Maria", CPF: "111.222.333-44"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestFornecedorCreate_CNPJDuplicado(t *testing.T) {
	fornecedorRepo := &fakeFornecedorRepo{fornecedores: map[string]*entity.Fornecedor{
		"f1": {ID: "f1", Nome: "Distribuidora", CNPJ: "11.222.333/0001-44"},
	}}
	uc := usecase.NewFornecedorUseCase(fornecedorRepo, &fakeProdutoRepo{})

	_, err := uc.Create(dto.CreateFornecedorRequest{Nome: "Outra", CNPJ: "11.222.333/0001-44"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}
