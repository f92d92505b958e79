package vendas

import (
	"context"

	"github.com/loja-app/loja-api/internal/application/dto"
	"github.com/loja-app/loja-api/internal/domain"
	"github.com/loja-app/loja-api/internal/domain/entity"
)

// GetByID obtém uma venda com seus itens.
func (uc *UseCase) GetByID(ctx context.Context, vendaID string) (*dto.VendaResponse, error) {
	venda, err := uc.vendaRepo.GetByID(vendaID)
	if err != nil {
		return nil, err
	}
	if venda == nil {
		return nil, domain.ErrNotFound
	}
	itens, err := uc.vendaRepo.GetItens(vendaID)
	if err != nil {
		return nil, err
	}
	return toVendaResponse(venda, itens), nil
}

// List lista vendas, mais recentes primeiro, sem itens.
func (uc *UseCase) List(ctx context.Context, limit, offset int) ([]*dto.VendaResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.vendaRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.VendaResponse, 0, len(list))
	for _, v := range list {
		out = append(out, toVendaResponse(v, nil))
	}
	return out, nil
}

// Recibo gera o recibo da venda em PDF.
func (uc *UseCase) Recibo(ctx context.Context, vendaID string) ([]byte, error) {
	venda, err := uc.vendaRepo.GetByID(vendaID)
	if err != nil {
		return nil, err
	}
	if venda == nil {
		return nil, domain.ErrNotFound
	}
	loja, err := uc.lojaRepo.GetByID(venda.LojaID)
	if err != nil {
		return nil, err
	}
	var cliente *entity.Cliente
	if venda.ClienteID != "" {
		cliente, err = uc.clienteRepo.GetByID(venda.ClienteID)
		if err != nil {
			return nil, err
		}
	}
	itens, err := uc.vendaRepo.GetItensComProduto(vendaID)
	if err != nil {
		return nil, err
	}
	return uc.recibo.GerarReciboPDF(ctx, venda, loja, cliente, itens)
}
