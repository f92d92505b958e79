package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/loja-app/loja-api/internal/application/dto"
	"github.com/loja-app/loja-api/internal/domain"
	"github.com/loja-app/loja-api/internal/domain/entity"
	"github.com/loja-app/loja-api/internal/domain/repository"
)

// CategoriaUseCase casos de uso para categorias.
type CategoriaUseCase struct {
	repo        repository.CategoriaRepository
	produtoRepo repository.ProdutoRepository
}

// NewCategoriaUseCase constrói o caso de uso.
func NewCategoriaUseCase(repo repository.CategoriaRepository, produtoRepo repository.ProdutoRepository) *CategoriaUseCase {
	return &CategoriaUseCase{repo: repo, produtoRepo: produtoRepo}
}

// Create cadastra uma categoria.
func (uc *CategoriaUseCase) Create(in dto.CreateCategoriaRequest) (*dto.CategoriaResponse, error) {
	if in.Nome == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	categoria := &entity.Categoria{
		ID:        uuid.New().String(),
		Nome:      in.Nome,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(categoria); err != nil {
		return nil, err
	}
	return &dto.CategoriaResponse{ID: categoria.ID, Nome: categoria.Nome}, nil
}

// GetByID obtém uma categoria.
func (uc *CategoriaUseCase) GetByID(id string) (*dto.CategoriaResponse, error) {
	categoria, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.CategoriaResponse{ID: categoria.ID, Nome: categoria.Nome}, nil
}

// List lista categorias.
func (uc *CategoriaUseCase) List(limit, offset int) ([]*dto.CategoriaResponse, error) {
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
	out := make([]*dto.CategoriaResponse, 0, len(list))
	for _, c := range list {
		out = append(out, &dto.CategoriaResponse{ID: c.ID, Nome: c.Nome})
	}
	return out, nil
}

// Update edita uma categoria.
func (uc *CategoriaUseCase) Update(id string, in dto.CreateCategoriaRequest) (*dto.CategoriaResponse, error) {
	if in.Nome == "" {
		return nil, domain.ErrInvalidInput
	}
	categoria, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, domain.ErrNotFound
	}
	categoria.Nome = in.Nome
	categoria.UpdatedAt = time.Now()
	if err := uc.repo.Update(categoria); err != nil {
		return nil, err
	}
	return &dto.CategoriaResponse{ID: categoria.ID, Nome: categoria.Nome}, nil
}

// Delete exclui uma categoria. Recusa se existirem produtos vinculados.
func (uc *CategoriaUseCase) Delete(id string) error {
	categoria, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if categoria == nil {
		return domain.ErrNotFound
	}
	total, err := uc.produtoRepo.CountByCategoria(id)
	if err != nil {
		return err
	}
	if total > 0 {
		return &domain.VinculoExistenteError{Entidade: "categoria", Dependente: "produtos", Total: total}
	}
	return uc.repo.Delete(id)
}
