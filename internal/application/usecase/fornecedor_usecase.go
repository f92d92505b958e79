package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/loja-app/loja-api/internal/application/dto"
	"github.com/loja-app/loja-api/internal/domain"
	"github.com/loja-app/loja-api/internal/domain/entity"
	"github.com/loja-app/loja-api/internal/domain/repository"
)

// FornecedorUseCase casos de uso para fornecedores.
type FornecedorUseCase struct {
	repo        repository.FornecedorRepository
	produtoRepo repository.ProdutoRepository
}

// NewFornecedorUseCase constrói o caso de uso.
func NewFornecedorUseCase(repo repository.FornecedorRepository, produtoRepo repository.ProdutoRepository) *FornecedorUseCase {
	return &FornecedorUseCase{repo: repo, produtoRepo: produtoRepo}
}

// Create cadastra um fornecedor. CNPJ, quando informado, é único.
func (uc *FornecedorUseCase) Create(in dto.CreateFornecedorRequest) (*dto.FornecedorResponse, error) {
	if in.Nome == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.CNPJ != "" {
		existing, _ := uc.repo.GetByCNPJ(in.CNPJ)
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	now := time.Now()
	fornecedor := &entity.Fornecedor{
		ID:        uuid.New().String(),
		Nome:      in.Nome,
		CNPJ:      in.CNPJ,
		Telefone:  in.Telefone,
		Email:     in.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(fornecedor); err != nil {
		return nil, err
	}
	return toFornecedorResponse(fornecedor), nil
}

// GetByID obtém um fornecedor.
func (uc *FornecedorUseCase) GetByID(id string) (*dto.FornecedorResponse, error) {
	fornecedor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if fornecedor == nil {
		return nil, domain.ErrNotFound
	}
	return toFornecedorResponse(fornecedor), nil
}

// List lista fornecedores.
func (uc *FornecedorUseCase) List(limit, offset int) ([]*dto.FornecedorResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.FornecedorResponse, 0, len(list))
	for _, f := range list {
		out = append(out, toFornecedorResponse(f))
	}
	return out, nil
}

// Update edita um fornecedor.
func (uc *FornecedorUseCase) Update(id string, in dto.CreateFornecedorRequest) (*dto.FornecedorResponse, error) {
	if in.Nome == "" {
		return nil, domain.ErrInvalidInput
	}
	fornecedor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if fornecedor == nil {
		return nil, domain.ErrNotFound
	}
	fornecedor.Nome = in.Nome
	fornecedor.CNPJ = in.CNPJ
	fornecedor.Telefone = in.Telefone
	fornecedor.Email = in.Email
	fornecedor.UpdatedAt = time.Now()
	if err := uc.repo.Update(fornecedor); err != nil {
		return nil, err
	}
	return toFornecedorResponse(fornecedor), nil
}

// Delete exclui um fornecedor. Recusa se existirem produtos vinculados.
func (uc *FornecedorUseCase) Delete(id string) error {
	fornecedor, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if fornecedor == nil {
		return domain.ErrNotFound
	}
	total, err := uc.produtoRepo.CountByFornecedor(id)
	if err != nil {
		return err
	}
	if total > 0 {
		return &domain.VinculoExistenteError{Entidade: "fornecedor", Dependente: "produtos", Total: total}
	}
	return uc.repo.Delete(id)
}

func toFornecedorResponse(f *entity.Fornecedor) *dto.FornecedorResponse {
	return &dto.FornecedorResponse{
		ID:       f.ID,
		Nome:     f.Nome,
		CNPJ:     f.CNPJ,
		Telefone: f.Telefone,
		Email:    f.Email,
	}
}
