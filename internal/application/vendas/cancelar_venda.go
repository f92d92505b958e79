package vendas

import (
	"context"
	"fmt"
	"time"

	"github.com/loja-app/loja-api/internal/application/dto"
	"github.com/loja-app/loja-api/internal/domain"
	"github.com/loja-app/loja-api/internal/domain/entity"
	"github.com/loja-app/loja-api/internal/domain/repository"
)

// Cancelar cancela uma venda: para cada item, devolve a quantidade ao estoque
// com uma ENTRADA espelho (mesmo produto, mesma magnitude, direção oposta)
// referenciando a venda, e marca a venda como CANCELADA, tudo em uma única
// transação. Cancelar de novo é rejeitado com ErrVendaJaCancelada, sem gerar
// movimentação alguma.
func (uc *UseCase) Cancelar(ctx context.Context, vendaID string) (*dto.VendaResponse, error) {
	venda, err := uc.vendaRepo.GetByID(vendaID)
	if err != nil {
		return nil, err
	}
	if venda == nil {
		return nil, domain.ErrNotFound
	}
	if venda.Status == entity.VendaCancelada {
		return nil, domain.ErrVendaJaCancelada
	}

	itens, err := uc.vendaRepo.GetItens(vendaID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	err = uc.txRunner.RunVenda(ctx, func(
		vendaRepo repository.VendaRepository,
		movRepo repository.MovimentacaoEstoqueRepository,
		estoqueRepo repository.EstoqueRepository,
		_ repository.ProdutoRepository,
	) error {
		referencia := fmt.Sprintf("Estorno da venda %s", venda.ID)
		for _, item := range itens {
			if err := uc.ledger.EstornoEmTx(movRepo, estoqueRepo, item.ProdutoID, item.Quantidade, now, referencia); err != nil {
				return err
			}
		}
		return vendaRepo.UpdateStatus(venda.ID, entity.VendaCancelada)
	})
	if err != nil {
		return nil, err
	}
	venda.Status = entity.VendaCancelada
	return toVendaResponse(venda, itens), nil
}
