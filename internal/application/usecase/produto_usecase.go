package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/loja-app/loja-api/internal/application/dto"
	appestoque "github.com/loja-app/loja-api/internal/application/estoque"
	"github.com/loja-app/loja-api/internal/domain"
	"github.com/loja-app/loja-api/internal/domain/entity"
	"github.com/loja-app/loja-api/internal/domain/repository"
)

// ProdutoUseCase casos de uso para produtos. A criação grava o produto e o seu
// registro de estoque zerado na mesma transação.
type ProdutoUseCase struct {
	txRunner       appestoque.TxRunner
	repo           repository.ProdutoRepository
	estoqueRepo    repository.EstoqueRepository
	movRepo        repository.MovimentacaoEstoqueRepository
	lojaRepo       repository.LojaRepository
	categoriaRepo  repository.CategoriaRepository
	fornecedorRepo repository.FornecedorRepository
	vendaRepo      repository.VendaRepository
}

// NewProdutoUseCase constrói o caso de uso.
func NewProdutoUseCase(
	txRunner appestoque.TxRunner,
	repo repository.ProdutoRepository,
	estoqueRepo repository.EstoqueRepository,
	movRepo repository.MovimentacaoEstoqueRepository,
	lojaRepo repository.LojaRepository,
	categoriaRepo repository.CategoriaRepository,
	fornecedorRepo repository.FornecedorRepository,
	vendaRepo repository.VendaRepository,
) *ProdutoUseCase {
	return &ProdutoUseCase{
		txRunner:       txRunner,
		repo:           repo,
		estoqueRepo:    estoqueRepo,
		movRepo:        movRepo,
		lojaRepo:       lojaRepo,
		categoriaRepo:  categoriaRepo,
		fornecedorRepo: fornecedorRepo,
		vendaRepo:      vendaRepo,
	}
}

// Create cadastra um produto e cria o registro de estoque zerado na mesma transação.
func (uc *ProdutoUseCase) Create(ctx context.Context, in dto.CreateProdutoRequest) (*dto.ProdutoResponse, error) {
	if in.Nome == "" || in.LojaID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.PrecoCompra.LessThan(decimal.Zero) || in.PrecoVenda.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	loja, err := uc.lojaRepo.GetByID(in.LojaID)
	if err != nil {
		return nil, err
	}
	if loja == nil {
		return nil, domain.ErrNotFound
	}
	if in.CategoriaID != "" {
		categoria, err := uc.categoriaRepo.GetByID(in.CategoriaID)
		if err != nil {
			return nil, err
		}
		if categoria == nil {
			return nil, domain.ErrNotFound
		}
	}
	if in.FornecedorID != "" {
		fornecedor, err := uc.fornecedorRepo.GetByID(in.FornecedorID)
		if err != nil {
			return nil, err
		}
		if fornecedor == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	produto := &entity.Produto{
		ID:           uuid.New().String(),
		Nome:         in.Nome,
		PrecoCompra:  in.PrecoCompra,
		PrecoVenda:   in.PrecoVenda,
		CategoriaID:  in.CategoriaID,
		FornecedorID: in.FornecedorID,
		LojaID:       in.LojaID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err = uc.txRunner.Run(ctx, func(
		_ repository.MovimentacaoEstoqueRepository,
		estoqueRepo repository.EstoqueRepository,
		produtoRepo repository.ProdutoRepository,
	) error {
		if err := produtoRepo.Create(produto); err != nil {
			return err
		}
		return estoqueRepo.Create(&entity.Estoque{
			ProdutoID:  produto.ID,
			Quantidade: 0,
			UpdatedAt:  now,
		})
	})
	if err != nil {
		return nil, err
	}
	return toProdutoResponse(produto), nil
}

// GetByID obtém um produto.
func (uc *ProdutoUseCase) GetByID(id string) (*dto.ProdutoResponse, error) {
	produto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, domain.ErrNotFound
	}
	return toProdutoResponse(produto), nil
}

// List lista produtos; lojaID vazio lista todos.
func (uc *ProdutoUseCase) List(lojaID string, limit, offset int) ([]*dto.ProdutoResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	var list []*entity.Produto
	var err error
	if lojaID != "" {
		list, err = uc.repo.ListByLoja(lojaID, limit, offset)
	} else {
		list, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProdutoResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProdutoResponse(p))
	}
	return out, nil
}

// Update edita um produto. A loja de origem não muda.
func (uc *ProdutoUseCase) Update(id string, in dto.UpdateProdutoRequest) (*dto.ProdutoResponse, error) {
	if in.Nome == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.PrecoCompra.LessThan(decimal.Zero) || in.PrecoVenda.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	produto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, domain.ErrNotFound
	}
	produto.Nome = in.Nome
	produto.PrecoCompra = in.PrecoCompra
	produto.PrecoVenda = in.PrecoVenda
	produto.CategoriaID = in.CategoriaID
	produto.FornecedorID = in.FornecedorID
	produto.UpdatedAt = time.Now()
	if err := uc.repo.Update(produto); err != nil {
		return nil, err
	}
	return toProdutoResponse(produto), nil
}

// Delete exclui um produto. Recusa se existirem itens de venda ou
// movimentações vinculados: o histórico de vendas e de estoque é preservado.
func (uc *ProdutoUseCase) Delete(id string) error {
	produto, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if produto == nil {
		return domain.ErrNotFound
	}
	if total, err := uc.vendaRepo.CountItensByProduto(id); err != nil {
		return err
	} else if total > 0 {
		return &domain.VinculoExistenteError{Entidade: "produto", Dependente: "itens de venda", Total: total}
	}
	if total, err := uc.movRepo.CountByProduto(id); err != nil {
		return err
	} else if total > 0 {
		return &domain.VinculoExistenteError{Entidade: "produto", Dependente: "movimentações de estoque", Total: total}
	}
	return uc.repo.Delete(id)
}

func toProdutoResponse(p *entity.Produto) *dto.ProdutoResponse {
	return &dto.ProdutoResponse{
		ID:           p.ID,
		Nome:         p.Nome,
		PrecoCompra:  p.PrecoCompra,
		PrecoVenda:   p.PrecoVenda,
		CategoriaID:  p.CategoriaID,
		FornecedorID: p.FornecedorID,
		LojaID:       p.LojaID,
	}
}
