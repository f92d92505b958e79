package vendas

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/loja-app/loja-api/internal/application/dto"
	"github.com/loja-app/loja-api/internal/domain"
	"github.com/loja-app/loja-api/internal/domain/entity"
	"github.com/loja-app/loja-api/internal/domain/repository"
)

const dataVendaLayout = time.RFC3339

// Registrar registra uma venda: cria o cabeçalho (total 0, CONCLUIDA), e para
// cada linha, na ordem recebida, bloqueia o saldo do produto, verifica
// suficiência, grava o item com o preço de venda capturado e baixa o estoque
// com movimentação SAIDA referenciando a venda. Ao final recalcula o total.
// Qualquer falha desfaz tudo, inclusive o cabeçalho.
func (uc *UseCase) Registrar(ctx context.Context, in dto.RegistrarVendaRequest) (*dto.VendaResponse, error) {
	if in.LojaID == "" {
		return nil, domain.ErrInvalidInput
	}
	loja, err := uc.lojaRepo.GetByID(in.LojaID)
	if err != nil {
		return nil, err
	}
	if loja == nil {
		return nil, domain.ErrNotFound
	}
	if in.ClienteID != "" {
		cliente, err := uc.clienteRepo.GetByID(in.ClienteID)
		if err != nil {
			return nil, err
		}
		if cliente == nil {
			return nil, domain.ErrNotFound
		}
	}

	// Linhas em branco (sem produto ou quantidade zero) são ignoradas, não
	// erro: o lote de entrada aceita número variável de linhas.
	linhas := make([]dto.ItemVendaRequest, 0, len(in.Itens))
	for _, item := range in.Itens {
		if item.ProdutoID == "" && item.Quantidade == 0 {
			continue
		}
		if item.ProdutoID == "" || item.Quantidade <= 0 {
			return nil, domain.ErrInvalidInput
		}
		linhas = append(linhas, item)
	}
	if len(linhas) == 0 {
		return nil, domain.ErrInvalidInput
	}

	// Valida produtos fora da transação (somente leitura).
	produtosPorID := make(map[string]*entity.Produto, len(linhas))
	for _, linha := range linhas {
		if _, ok := produtosPorID[linha.ProdutoID]; ok {
			continue
		}
		produto, err := uc.produtoRepo.GetByID(linha.ProdutoID)
		if err != nil {
			return nil, err
		}
		if produto == nil {
			return nil, domain.ErrNotFound
		}
		produtosPorID[linha.ProdutoID] = produto
	}

	now := time.Now()
	venda := &entity.Venda{
		ID:         uuid.New().String(),
		ClienteID:  in.ClienteID,
		LojaID:     in.LojaID,
		DataVenda:  now,
		ValorTotal: decimal.Zero,
		Status:     entity.VendaConcluida,
	}
	var itens []*entity.ItemVenda

	err = uc.txRunner.RunVenda(ctx, func(
		vendaRepo repository.VendaRepository,
		movRepo repository.MovimentacaoEstoqueRepository,
		estoqueRepo repository.EstoqueRepository,
		_ repository.ProdutoRepository,
	) error {
		// Cabeçalho provisório: existe antes da validação das linhas para dar
		// identidade aos itens; o rollback o desfaz junto com o resto.
		if err := vendaRepo.Create(venda); err != nil {
			return err
		}
		referencia := fmt.Sprintf("Venda %s", venda.ID)
		for _, linha := range linhas {
			produto := produtosPorID[linha.ProdutoID]
			if err := uc.ledger.BaixaEmTx(movRepo, estoqueRepo, produto, linha.Quantidade, now, referencia); err != nil {
				return err
			}
			item := &entity.ItemVenda{
				ID:            uuid.New().String(),
				VendaID:       venda.ID,
				ProdutoID:     linha.ProdutoID,
				Quantidade:    linha.Quantidade,
				PrecoUnitario: produto.PrecoVenda,
			}
			if err := vendaRepo.CreateItem(item); err != nil {
				return err
			}
			itens = append(itens, item)
		}

		total := decimal.Zero
		for _, item := range itens {
			total = total.Add(item.PrecoUnitario.Mul(decimal.NewFromInt(item.Quantidade)))
		}
		venda.ValorTotal = total
		return vendaRepo.UpdateValorTotal(venda.ID, total)
	})
	if err != nil {
		return nil, err
	}
	return toVendaResponse(venda, itens), nil
}
