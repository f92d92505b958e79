package estoque_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loja-app/loja-api/internal/application/dto"
	"github.com/loja-app/loja-api/internal/application/estoque"
	"github.com/loja-app/loja-api/internal/domain"
	"github.com/loja-app/loja-api/internal/domain/entity"
	"github.com/loja-app/loja-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeProdutoRepo struct {
	produtos map[string]*entity.Produto
}

func (f *fakeProdutoRepo) Create(p *entity.Produto) error { f.produtos[p.ID] = p; return nil }
func (f *fakeProdutoRepo) GetByID(id string) (*entity.Produto, error) {
	return f.produtos[id], nil
}
func (f *fakeProdutoRepo) Update(*entity.Produto) error { return nil }
func (f *fakeProdutoRepo) List(int, int) ([]*entity.Produto, error) {
	return nil, nil
}
func (f *fakeProdutoRepo) ListByLoja(string, int, int) ([]*entity.Produto, error) {
	return nil, nil
}
func (f *fakeProdutoRepo) Delete(string) error                    { return nil }
func (f *fakeProdutoRepo) CountByLoja(string) (int64, error)      { return 0, nil }
func (f *fakeProdutoRepo) CountByCategoria(string) (int64, error) { return 0, nil }
func (f *fakeProdutoRepo) CountByFornecedor(string) (int64, error) {
	return 0, nil
}

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
	movs []*entity.MovimentacaoEstoque
}

func (f *fakeMovRepo) Create(m *entity.MovimentacaoEstoque) error {
	copia := *m
	f.movs = append(f.movs, &copia)
	return nil
}
func (f *fakeMovRepo) ListByProduto(produtoID string, limit, offset int) ([]*entity.MovimentacaoEstoque, error) {
	var out []*entity.MovimentacaoEstoque
	for _, m := range f.movs {
		if m.ProdutoID == produtoID {
			out = append(out, m)
		}
	}
	return out, nil
}
func (f *fakeMovRepo) CountByProduto(produtoID string) (int64, error) {
	list, _ := f.ListByProduto(produtoID, 0, 0)
	return int64(len(list)), nil
}

// fakeTxRunner executa o callback direto sobre os fakes. Se o callback falha,
// restaura o estado anterior (simula rollback).
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
	saldosAntes := make(map[string]int64, len(f.estoqueRepo.saldos))
	for k, v := range f.estoqueRepo.saldos {
		saldosAntes[k] = v
	}
	movsAntes := len(f.movRepo.movs)

	if err := fn(f.movRepo, f.estoqueRepo, f.produtoRepo); err != nil {
		f.estoqueRepo.saldos = saldosAntes
		f.movRepo.movs = f.movRepo.movs[:movsAntes]
		return err
	}
	return nil
}

func novoAmbiente(t *testing.T) (*estoque.UseCase, *fakeProdutoRepo, *fakeEstoqueRepo, *fakeMovRepo) {
	t.Helper()
	produtoRepo := &fakeProdutoRepo{produtos: map[string]*entity.Produto{}}
	estoqueRepo := &fakeEstoqueRepo{saldos: map[string]int64{}}
	movRepo := &fakeMovRepo{}
	txRunner := &fakeTxRunner{produtoRepo: produtoRepo, estoqueRepo: estoqueRepo, movRepo: movRepo}
	uc := estoque.NewUseCase(txRunner, produtoRepo, estoqueRepo, movRepo)
	return uc, produtoRepo, estoqueRepo, movRepo
}

func cadastrarProduto(repo *fakeProdutoRepo, id, nome string) *entity.Produto {
	p := &entity.Produto{
		ID:         id,
		Nome:       nome,
		PrecoVenda: decimal.NewFromInt(10),
		LojaID:     "loja-1",
	}
	repo.produtos[id] = p
	return p
}

// ──────────────────────────────────────────────────────────────────────────────
// Ajustar
// ──────────────────────────────────────────────────────────────────────────────

func TestAjustar_DeltaPositivoGeraEntrada(t *testing.T) {
	uc, produtoRepo, estoqueRepo, movRepo := novoAmbiente(t)
	cadastrarProduto(produtoRepo, "p1", "Café")

	out, err := uc.Ajustar(context.Background(), "p1", dto.AjusteEstoqueRequest{Quantidade: 5, Descricao: "reposição"})
	require.NoError(t, err)

	assert.Equal(t, int64(5), estoqueRepo.saldos["p1"], "o saldo deve subir para 5")
	assert.Equal(t, entity.MovimentacaoEntrada, out.Tipo)
	assert.Equal(t, int64(5), out.Quantidade, "a quantidade mantém o sinal do delta")
	assert.Equal(t, "reposição", out.Descricao)
	require.Len(t, movRepo.movs, 1, "deve registrar exatamente uma movimentação")
}

func TestAjustar_DeltaNegativoGeraSaida(t *testing.T) {
	uc, produtoRepo, estoqueRepo, _ := novoAmbiente(t)
	cadastrarProduto(produtoRepo, "p1", "Café")
	estoqueRepo.saldos["p1"] = 10

	out, err := uc.Ajustar(context.Background(), "p1", dto.AjusteEstoqueRequest{Quantidade: -4})
	require.NoError(t, err)

	assert.Equal(t, int64(6), estoqueRepo.saldos["p1"])
	assert.Equal(t, entity.MovimentacaoSaida, out.Tipo)
	assert.Equal(t, int64(-4), out.Quantidade)
}

func TestAjustar_SemPiso_SaldoPodeFicarNegativo(t *testing.T) {
	uc, produtoRepo, estoqueRepo, _ := novoAmbiente(t)
	cadastrarProduto(produtoRepo, "p1", "Café")
	estoqueRepo.saldos["p1"] = 2

	_, err := uc.Ajustar(context.Background(), "p1", dto.AjusteEstoqueRequest{Quantidade: -5, Descricao: "quebra de inventário"})
	require.NoError(t, err, "ajuste manual não impõe piso de saldo")
	assert.Equal(t, int64(-3), estoqueRepo.saldos["p1"])
}

func TestAjustar_DeltaZeroRejeitado(t *testing.T) {
	uc, produtoRepo, _, movRepo := novoAmbiente(t)
	cadastrarProduto(produtoRepo, "p1", "Café")

	_, err := uc.Ajustar(context.Background(), "p1", dto.AjusteEstoqueRequest{Quantidade: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, movRepo.movs)
}

func TestAjustar_ProdutoInexistente(t *testing.T) {
	uc, _, _, _ := novoAmbiente(t)

	_, err := uc.Ajustar(context.Background(), "nao-existe", dto.AjusteEstoqueRequest{Quantidade: 3})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// BaixaEmTx / EstornoEmTx
// ──────────────────────────────────────────────────────────────────────────────

func TestBaixaEmTx_SaldoInsuficiente(t *testing.T) {
	uc, produtoRepo, estoqueRepo, movRepo := novoAmbiente(t)
	produto := cadastrarProduto(produtoRepo, "p1", "Café")
	estoqueRepo.saldos["p1"] = 3

	err := uc.BaixaEmTx(movRepo, estoqueRepo, produto, 5, time.Now(), "Venda v1")
	require.Error(t, err)

	var insuficiente *domain.EstoqueInsuficienteError
	require.True(t, errors.As(err, &insuficiente), "o erro deve carregar os detalhes do produto")
	assert.Equal(t, "Café", insuficiente.ProdutoNome)
	assert.Equal(t, int64(5), insuficiente.Solicitado)
	assert.Equal(t, int64(3), insuficiente.Disponivel)
	assert.True(t, errors.Is(err, domain.ErrEstoqueInsuficiente))

	assert.Equal(t, int64(3), estoqueRepo.saldos["p1"], "o saldo não muda em falha")
	assert.Empty(t, movRepo.movs, "nenhuma movimentação deve ser registrada")
}

func TestBaixaEmTx_BaixaExataZeraSaldo(t *testing.T) {
	uc, produtoRepo, estoqueRepo, movRepo := novoAmbiente(t)
	produto := cadastrarProduto(produtoRepo, "p1", "Café")
	estoqueRepo.saldos["p1"] = 5

	err := uc.BaixaEmTx(movRepo, estoqueRepo, produto, 5, time.Now(), "Venda v1")
	require.NoError(t, err, "baixar exatamente o saldo disponível é permitido")

	assert.Equal(t, int64(0), estoqueRepo.saldos["p1"])
	require.Len(t, movRepo.movs, 1)
	assert.Equal(t, entity.MovimentacaoSaida, movRepo.movs[0].Tipo)
	assert.Equal(t, int64(-5), movRepo.movs[0].Quantidade)
	assert.Equal(t, "Venda v1", movRepo.movs[0].Descricao)
}

func TestEstornoEmTx_DevolveAoSaldo(t *testing.T) {
	uc, _, estoqueRepo, movRepo := novoAmbiente(t)
	estoqueRepo.saldos["p1"] = 2

	err := uc.EstornoEmTx(movRepo, estoqueRepo, "p1", 3, time.Now(), "Estorno da venda v1")
	require.NoError(t, err)

	assert.Equal(t, int64(5), estoqueRepo.saldos["p1"])
	require.Len(t, movRepo.movs, 1)
	assert.Equal(t, entity.MovimentacaoEntrada, movRepo.movs[0].Tipo)
	assert.Equal(t, int64(3), movRepo.movs[0].Quantidade)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestSaldoAtual_ProdutoSemLinhaDeEstoque(t *testing.T) {
	uc, produtoRepo, _, _ := novoAmbiente(t)
	cadastrarProduto(produtoRepo, "p1", "Café")

	out, err := uc.SaldoAtual(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.Quantidade, "produto sem linha de estoque tem saldo zero")
}

func TestMovimentacoes_ProdutoInexistente(t *testing.T) {
	uc, _, _, _ := novoAmbiente(t)

	_, err := uc.Movimentacoes(context.Background(), "nao-existe", 20, 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
