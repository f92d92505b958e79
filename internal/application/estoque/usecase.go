package estoque

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/loja-app/loja-api/internal/application/dto"
	"github.com/loja-app/loja-api/internal/domain"
	"github.com/loja-app/loja-api/internal/domain/entity"
	"github.com/loja-app/loja-api/internal/domain/repository"
)

// UseCase é o razão de estoque: todo ajuste de saldo passa por aqui e gera
// exatamente uma MovimentacaoEstoque. O razão não impõe piso: ajustes manuais
// podem deixar o saldo negativo; quem exige saldo suficiente (o caminho de
// venda) verifica antes de baixar.
type UseCase struct {
	txRunner    TxRunner
	produtoRepo repository.ProdutoRepository
	estoqueRepo repository.EstoqueRepository
	movRepo     repository.MovimentacaoEstoqueRepository
}

// NewUseCase constrói o caso de uso. produtoRepo/estoqueRepo/movRepo são os
// repositórios atados ao pool, usados nos caminhos de leitura.
func NewUseCase(
	txRunner TxRunner,
	produtoRepo repository.ProdutoRepository,
	estoqueRepo repository.EstoqueRepository,
	movRepo repository.MovimentacaoEstoqueRepository,
) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		produtoRepo: produtoRepo,
		estoqueRepo: estoqueRepo,
		movRepo:     movRepo,
	}
}

// Ajustar aplica um delta (positivo ou negativo) ao estoque do produto dentro
// de uma transação: bloqueia a linha (SELECT FOR UPDATE), grava o novo saldo e
// registra a movimentação (ENTRADA se delta > 0, SAIDA caso contrário).
func (uc *UseCase) Ajustar(ctx context.Context, produtoID string, in dto.AjusteEstoqueRequest) (*dto.MovimentacaoResponse, error) {
	if produtoID == "" || in.Quantidade == 0 {
		return nil, domain.ErrInvalidInput
	}
	produto, err := uc.produtoRepo.GetByID(produtoID)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	var mov *entity.MovimentacaoEstoque
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovimentacaoEstoqueRepository,
		estoqueRepo repository.EstoqueRepository,
		_ repository.ProdutoRepository,
	) error {
		saldo, err := estoqueRepo.GetForUpdate(produtoID)
		if err != nil {
			return err
		}
		saldo.Quantidade += in.Quantidade
		saldo.UpdatedAt = now
		if err := estoqueRepo.Upsert(saldo); err != nil {
			return err
		}
		mov = novaMovimentacao(produtoID, in.Quantidade, in.Descricao, now)
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return toMovimentacaoResponse(mov), nil
}

// SaldoAtual lê o saldo corrente do produto.
func (uc *UseCase) SaldoAtual(ctx context.Context, produtoID string) (*dto.EstoqueResponse, error) {
	produto, err := uc.produtoRepo.GetByID(produtoID)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, domain.ErrNotFound
	}
	saldo, err := uc.estoqueRepo.Get(produtoID)
	if err != nil {
		return nil, err
	}
	return &dto.EstoqueResponse{ProdutoID: produtoID, Quantidade: saldo.Quantidade}, nil
}

// Movimentacoes lista o histórico do produto, mais recentes primeiro.
func (uc *UseCase) Movimentacoes(ctx context.Context, produtoID string, limit, offset int) ([]*dto.MovimentacaoResponse, error) {
	produto, err := uc.produtoRepo.GetByID(produtoID)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.movRepo.ListByProduto(produtoID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MovimentacaoResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMovimentacaoResponse(m))
	}
	return out, nil
}

// BaixaEmTx executa uma saída usando os repositórios do chamador (mesma
// transação). Verifica suficiência antes de baixar: se a quantidade pedida
// excede o saldo, retorna EstoqueInsuficienteError e o chamador faz rollback.
func (uc *UseCase) BaixaEmTx(
	movRepo repository.MovimentacaoEstoqueRepository,
	estoqueRepo repository.EstoqueRepository,
	produto *entity.Produto,
	quantidade int64,
	now time.Time,
	descricao string,
) error {
	saldo, err := estoqueRepo.GetForUpdate(produto.ID)
	if err != nil {
		return err
	}
	if quantidade > saldo.Quantidade {
		return &domain.EstoqueInsuficienteError{
			ProdutoID:   produto.ID,
			ProdutoNome: produto.Nome,
			Solicitado:  quantidade,
			Disponivel:  saldo.Quantidade,
		}
	}
	saldo.Quantidade -= quantidade
	saldo.UpdatedAt = now
	if err := estoqueRepo.Upsert(saldo); err != nil {
		return err
	}
	return movRepo.Create(novaMovimentacao(produto.ID, -quantidade, descricao, now))
}

// EstornoEmTx devolve quantidade ao estoque usando os repositórios do chamador
// (mesma transação), registrando uma ENTRADA de compensação.
func (uc *UseCase) EstornoEmTx(
	movRepo repository.MovimentacaoEstoqueRepository,
	estoqueRepo repository.EstoqueRepository,
	produtoID string,
	quantidade int64,
	now time.Time,
	descricao string,
) error {
	saldo, err := estoqueRepo.GetForUpdate(produtoID)
	if err != nil {
		return err
	}
	saldo.Quantidade += quantidade
	saldo.UpdatedAt = now
	if err := estoqueRepo.Upsert(saldo); err != nil {
		return err
	}
	return movRepo.Create(novaMovimentacao(produtoID, quantidade, descricao, now))
}

// novaMovimentacao monta o registro de auditoria; o tipo sai do sinal do delta.
func novaMovimentacao(produtoID string, delta int64, descricao string, now time.Time) *entity.MovimentacaoEstoque {
	tipo := entity.MovimentacaoEntrada
	if delta < 0 {
		tipo = entity.MovimentacaoSaida
	}
	return &entity.MovimentacaoEstoque{
		ID:         uuid.New().String(),
		ProdutoID:  produtoID,
		Quantidade: delta,
		Tipo:       tipo,
		Data:       now,
		Descricao:  descricao,
	}
}

func toMovimentacaoResponse(m *entity.MovimentacaoEstoque) *dto.MovimentacaoResponse {
	return &dto.MovimentacaoResponse{
		ID:         m.ID,
		ProdutoID:  m.ProdutoID,
		Quantidade: m.Quantidade,
		Tipo:       m.Tipo,
		Data:       m.Data,
		Descricao:  m.Descricao,
	}
}
