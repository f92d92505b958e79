package domain

import (
	"errors"
	"fmt"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound             = errors.New("recurso não encontrado")
	ErrUsuarioNaoEncontrado = errors.New("usuário não encontrado")
	ErrEmailJaCadastrado    = errors.New("o e-mail já está cadastrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrUnauthorized         = errors.New("não autorizado")
	ErrForbidden            = errors.New("acesso negado")
	ErrConflict             = errors.New("conflito com o estado atual")
	ErrEstoqueInsuficiente  = errors.New("estoque insuficiente")
	ErrVendaJaCancelada     = errors.New("venda já cancelada")
)

// EstoqueInsuficienteError indica que uma saída pediu mais do que há em estoque.
// Carrega produto, quantidade solicitada e disponível para a mensagem ao usuário.
type EstoqueInsuficienteError struct {
	ProdutoID   string
	ProdutoNome string
	Solicitado  int64
	Disponivel  int64
}

func (e *EstoqueInsuficienteError) Error() string {
	return fmt.Sprintf("estoque insuficiente para %s: solicitado %d, disponível %d",
		e.ProdutoNome, e.Solicitado, e.Disponivel)
}

// Is permite errors.Is(err, ErrEstoqueInsuficiente).
func (e *EstoqueInsuficienteError) Is(target error) bool {
	return target == ErrEstoqueInsuficiente
}

// VinculoExistenteError indica que uma exclusão foi bloqueada por registros dependentes.
type VinculoExistenteError struct {
	Entidade   string // o que se tentou excluir (ex: "categoria")
	Dependente string // o tipo de registro que bloqueia (ex: "produtos")
	Total      int64
}

func (e *VinculoExistenteError) Error() string {
	return fmt.Sprintf("não é possível excluir %s: existem %d %s vinculados",
		e.Entidade, e.Total, e.Dependente)
}

// Is permite errors.Is(err, ErrConflict).
func (e *VinculoExistenteError) Is(target error) bool {
	return target == ErrConflict
}
