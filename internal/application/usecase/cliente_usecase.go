package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/loja-app/loja-api/internal/application/dto"
	"github.com/loja-app/loja-api/internal/domain"
	"github.com/loja-app/loja-api/internal/domain/entity"
	"github.com/loja-app/loja-api/internal/domain/repository"
)

// ClienteUseCase casos de uso para clientes.
type ClienteUseCase struct {
	repo      repository.ClienteRepository
	vendaRepo repository.VendaRepository
}

// NewClienteUseCase constrói o caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository, vendaRepo repository.VendaRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo, vendaRepo: vendaRepo}
}

// Create cadastra um cliente. CPF, quando informado, é único.
func (uc *ClienteUseCase) Create(in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	if in.Nome == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.CPF != "" {
		existing, _ := uc.repo.GetByCPF(in.CPF)
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	now := time.Now()
	cliente := &entity.Cliente{
		ID:        uuid.New().String(),
		Nome:      in.Nome,
		CPF:       in.CPF,
		Telefone:  in.Telefone,
		Rua:       in.Rua,
		Numero:    in.Numero,
		Bairro:    in.Bairro,
		Estado:    in.Estado,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// GetByID obtém um cliente.
func (uc *ClienteUseCase) GetByID(id string) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	return toClienteResponse(cliente), nil
}

// List lista clientes.
func (uc *ClienteUseCase) List(limit, offset int) ([]*dto.ClienteResponse, error) {
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
	out := make([]*dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toClienteResponse(c))
	}
	return out, nil
}

// Update edita um cliente.
func (uc *ClienteUseCase) Update(id string, in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	if in.Nome == "" {
		return nil, domain.ErrInvalidInput
	}
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	cliente.Nome = in.Nome
	cliente.CPF = in.CPF
	cliente.Telefone = in.Telefone
	cliente.Rua = in.Rua
	cliente.Numero = in.Numero
	cliente.Bairro = in.Bairro
	cliente.Estado = in.Estado
	cliente.UpdatedAt = time.Now()
	if err := uc.repo.Update(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// Delete exclui um cliente. Recusa se existirem vendas vinculadas.
func (uc *ClienteUseCase) Delete(id string) error {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if cliente == nil {
		return domain.ErrNotFound
	}
	total, err := uc.vendaRepo.CountByCliente(id)
	if err != nil {
		return err
	}
	if total > 0 {
		return &domain.VinculoExistenteError{Entidade: "cliente", Dependente: "vendas", Total: total}
	}
	return uc.repo.Delete(id)
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:       c.ID,
		Nome:     c.Nome,
		CPF:      c.CPF,
		Telefone: c.Telefone,
		Rua:      c.Rua,
		Numero:   c.Numero,
		Bairro:   c.Bairro,
		Estado:   c.Estado,
	}
}
