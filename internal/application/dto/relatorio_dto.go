package dto

// ClienteResumo identificação do cliente no relatório.
type ClienteResumo struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}

// VendaRelatorio uma venda formatada para o relatório do cliente.
// Loja é nil quando o join não encontra a loja. ValorTotal é string
// decimal com duas casas.
type VendaRelatorio struct {
	ID             string  `json:"id"`
	Loja           *string `json:"loja"`
	DataVenda      string  `json:"data_venda"` // RFC 3339
	ValorTotal     string  `json:"valor_total"`
	Status         string  `json:"status"` // rótulo: Concluída | Cancelada
	ItensDescricao string  `json:"itens_descricao"`
}

// RelatorioVendasClienteResponse documento do relatório de vendas por cliente.
type RelatorioVendasClienteResponse struct {
	Cliente ClienteResumo    `json:"cliente"`
	Vendas  []VendaRelatorio `json:"vendas"`
}
