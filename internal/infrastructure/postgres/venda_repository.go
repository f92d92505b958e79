package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/loja-app/loja-api/internal/domain/entity"
	"github.com/loja-app/loja-api/internal/domain/repository"
)

var _ repository.VendaRepository = (*VendaRepo)(nil)

// VendaRepo implementação de VendaRepository sobre PostgreSQL (usável com pool ou tx).
type VendaRepo struct {
	q Querier
}

// NewVendaRepository constrói o adaptador de vendas. Passar pool ou tx (Querier).
func NewVendaRepository(q Querier) *VendaRepo {
	return &VendaRepo{q: q}
}

// Create persiste o cabeçalho da venda.
func (r *VendaRepo) Create(venda *entity.Venda) error {
	query := `
		INSERT INTO vendas (id, cliente_id, loja_id, data_venda, valor_total, status)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		venda.ID, nullableID(venda.ClienteID), venda.LojaID,
		venda.DataVenda, venda.ValorTotal, venda.Status,
	)
	if err != nil {
		return fmt.Errorf("insert venda: %w", err)
	}
	return nil
}

// GetByID obtém uma venda por ID.
func (r *VendaRepo) GetByID(id string) (*entity.Venda, error) {
	query := `
		SELECT id, cliente_id, loja_id, data_venda, valor_total, status
		FROM vendas WHERE id = $1`
	var v entity.Venda
	var clienteID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &clienteID, &v.LojaID, &v.DataVenda, &v.ValorTotal, &v.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venda: %w", err)
	}
	if clienteID != nil {
		v.ClienteID = *clienteID
	}
	return &v, nil
}

// UpdateValorTotal grava o total recalculado da venda.
func (r *VendaRepo) UpdateValorTotal(id string, valorTotal decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE vendas SET valor_total = $2 WHERE id = $1`, id, valorTotal)
	if err != nil {
		return fmt.Errorf("update valor total: %w", err)
	}
	return nil
}

// UpdateStatus grava o status da venda.
func (r *VendaRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE vendas SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update status venda: %w", err)
	}
	return nil
}

// List lista vendas, mais recentes primeiro.
func (r *VendaRepo) List(limit, offset int) ([]*entity.Venda, error) {
	query := `
		SELECT id, cliente_id, loja_id, data_venda, valor_total, status
		FROM vendas ORDER BY data_venda DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list vendas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Venda
	for rows.Next() {
		var v entity.Venda
		var clienteID *string
		if err := rows.Scan(&v.ID, &clienteID, &v.LojaID, &v.DataVenda, &v.ValorTotal, &v.Status); err != nil {
			return nil, fmt.Errorf("scan venda: %w", err)
		}
		if clienteID != nil {
			v.ClienteID = *clienteID
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// ListByCliente lista as vendas do cliente, mais recentes primeiro, com o nome
// da loja via LEFT JOIN; LojaNome sai nil se o join não encontrar a loja.
func (r *VendaRepo) ListByCliente(clienteID string) ([]*repository.VendaComLoja, error) {
	query := `
		SELECT v.id, v.cliente_id, v.loja_id, v.data_venda, v.valor_total, v.status, l.nome
		FROM vendas v
		LEFT JOIN lojas l ON l.id = v.loja_id
		WHERE v.cliente_id = $1
		ORDER BY v.data_venda DESC`
	rows, err := r.q.Query(context.Background(), query, clienteID)
	if err != nil {
		return nil, fmt.Errorf("list vendas por cliente: %w", err)
	}
	defer rows.Close()
	var list []*repository.VendaComLoja
	for rows.Next() {
		var vl repository.VendaComLoja
		var cID *string
		if err := rows.Scan(&vl.Venda.ID, &cID, &vl.Venda.LojaID, &vl.Venda.DataVenda,
			&vl.Venda.ValorTotal, &vl.Venda.Status, &vl.LojaNome); err != nil {
			return nil, fmt.Errorf("scan venda com loja: %w", err)
		}
		if cID != nil {
			vl.Venda.ClienteID = *cID
		}
		list = append(list, &vl)
	}
	return list, rows.Err()
}

// CreateItem persiste um item da venda.
func (r *VendaRepo) CreateItem(item *entity.ItemVenda) error {
	query := `
		INSERT INTO itens_venda (id, venda_id, produto_id, quantidade, preco_unitario, posicao)
		VALUES ($1, $2, $3, $4, $5, (SELECT coalesce(max(posicao), 0) + 1 FROM itens_venda WHERE venda_id = $2))`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.VendaID, item.ProdutoID, item.Quantidade, item.PrecoUnitario)
	if err != nil {
		return fmt.Errorf("insert item venda: %w", err)
	}
	return nil
}

// GetItens retorna os itens na ordem de inserção.
func (r *VendaRepo) GetItens(vendaID string) ([]*entity.ItemVenda, error) {
	query := `
		SELECT id, venda_id, produto_id, quantidade, preco_unitario
		FROM itens_venda WHERE venda_id = $1 ORDER BY posicao`
	rows, err := r.q.Query(context.Background(), query, vendaID)
	if err != nil {
		return nil, fmt.Errorf("get itens venda: %w", err)
	}
	defer rows.Close()
	var list []*entity.ItemVenda
	for rows.Next() {
		var item entity.ItemVenda
		if err := rows.Scan(&item.ID, &item.VendaID, &item.ProdutoID, &item.Quantidade, &item.PrecoUnitario); err != nil {
			return nil, fmt.Errorf("scan item venda: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}

// GetItensComProduto retorna os itens com o nome do produto, na ordem de inserção.
func (r *VendaRepo) GetItensComProduto(vendaID string) ([]*repository.ItemVendaComProduto, error) {
	query := `
		SELECT i.id, i.venda_id, i.produto_id, i.quantidade, i.preco_unitario, p.nome
		FROM itens_venda i
		JOIN produtos p ON p.id = i.produto_id
		WHERE i.venda_id = $1
		ORDER BY i.posicao`
	rows, err := r.q.Query(context.Background(), query, vendaID)
	if err != nil {
		return nil, fmt.Errorf("get itens com produto: %w", err)
	}
	defer rows.Close()
	var list []*repository.ItemVendaComProduto
	for rows.Next() {
		var ip repository.ItemVendaComProduto
		if err := rows.Scan(&ip.Item.ID, &ip.Item.VendaID, &ip.Item.ProdutoID,
			&ip.Item.Quantidade, &ip.Item.PrecoUnitario, &ip.ProdutoNome); err != nil {
			return nil, fmt.Errorf("scan item com produto: %w", err)
		}
		list = append(list, &ip)
	}
	return list, rows.Err()
}

// CountByCliente conta as vendas de um cliente (guarda de exclusão).
func (r *VendaRepo) CountByCliente(clienteID string) (int64, error) {
	return r.count(`SELECT count(*) FROM vendas WHERE cliente_id = $1`, clienteID)
}

// CountByLoja conta as vendas de uma loja (guarda de exclusão).
func (r *VendaRepo) CountByLoja(lojaID string) (int64, error) {
	return r.count(`SELECT count(*) FROM vendas WHERE loja_id = $1`, lojaID)
}

// CountItensByProduto conta itens de venda que referenciam o produto (guarda de exclusão).
func (r *VendaRepo) CountItensByProduto(produtoID string) (int64, error) {
	return r.count(`SELECT count(*) FROM itens_venda WHERE produto_id = $1`, produtoID)
}

func (r *VendaRepo) count(query string, arg any) (int64, error) {
	var total int64
	if err := r.q.QueryRow(context.Background(), query, arg).Scan(&total); err != nil {
		return 0, fmt.Errorf("count vendas: %w", err)
	}
	return total, nil
}
