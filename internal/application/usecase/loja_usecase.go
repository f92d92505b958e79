package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/loja-app/loja-api/internal/application/dto"
	"github.com/loja-app/loja-api/internal/domain"
	"github.com/loja-app/loja-api/internal/domain/entity"
	"github.com/loja-app/loja-api/internal/domain/repository"
)

// LojaUseCase casos de uso para lojas.
type LojaUseCase struct {
	repo        repository.LojaRepository
	produtoRepo repository.ProdutoRepository
	vendaRepo   repository.VendaRepository
}

// NewLojaUseCase constrói o caso de uso.
func NewLojaUseCase(repo repository.LojaRepository, produtoRepo repository.ProdutoRepository, vendaRepo repository.VendaRepository) *LojaUseCase {
	return &LojaUseCase{repo: repo, produtoRepo: produtoRepo, vendaRepo: vendaRepo}
}

// Create cadastra uma loja.
func (uc *LojaUseCase) Create(in dto.CreateLojaRequest) (*dto.LojaResponse, error) {
	if in.Nome == "" || in.Endereco == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	loja := &entity.Loja{
		ID:        uuid.New().String(),
		Nome:      in.Nome,
		Endereco:  in.Endereco,
		Telefone:  in.Telefone,
		Email:     in.Email,
		CNPJ:      in.CNPJ,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(loja); err != nil {
		return nil, err
	}
	return toLojaResponse(loja), nil
}

// GetByID obtém uma loja.
func (uc *LojaUseCase) GetByID(id string) (*dto.LojaResponse, error) {
	loja, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if loja == nil {
		return nil, domain.ErrNotFound
	}
	return toLojaResponse(loja), nil
}

// List lista lojas.
func (uc *LojaUseCase) List(limit, offset int) ([]*dto.LojaResponse, error) {
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
	out := make([]*dto.LojaResponse, 0, len(list))
	for _, l := range list {
		out = append(out, toLojaResponse(l))
	}
	return out, nil
}

// Update edita uma loja.
func (uc *LojaUseCase) Update(id string, in dto.UpdateLojaRequest) (*dto.LojaResponse, error) {
	if in.Nome == "" || in.Endereco == "" {
		return nil, domain.ErrInvalidInput
	}
	loja, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if loja == nil {
		return nil, domain.ErrNotFound
	}
	loja.Nome = in.Nome
	loja.Endereco = in.Endereco
	loja.Telefone = in.Telefone
	loja.Email = in.Email
	loja.CNPJ = in.CNPJ
	loja.UpdatedAt = time.Now()
	if err := uc.repo.Update(loja); err != nil {
		return nil, err
	}
	return toLojaResponse(loja), nil
}

// Delete exclui uma loja. Recusa se existirem produtos ou vendas vinculados.
func (uc *LojaUseCase) Delete(id string) error {
	loja, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if loja == nil {
		return domain.ErrNotFound
	}
	if total, err := uc.produtoRepo.CountByLoja(id); err != nil {
		return err
	} else if total > 0 {
		return &domain.VinculoExistenteError{Entidade: "loja", Dependente: "produtos", Total: total}
	}
	if total, err := uc.vendaRepo.CountByLoja(id); err != nil {
		return err
	} else if total > 0 {
		return &domain.VinculoExistenteError{Entidade: "loja", Dependente: "vendas", Total: total}
	}
	return uc.repo.Delete(id)
}

func toLojaResponse(l *entity.Loja) *dto.LojaResponse {
	return &dto.LojaResponse{
		ID:       l.ID,
		Nome:     l.Nome,
		Endereco: l.Endereco,
		Telefone: l.Telefone,
		Email:    l.Email,
		CNPJ:     l.CNPJ,
	}
}
