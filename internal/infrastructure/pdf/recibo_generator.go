// Package pdf implementa a geração do recibo de venda em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Loja + CNPJ  │  N° Venda + Data                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  LOJA: Endereço / Tel / Email                               │
//	│  CLIENTE: Nome + CPF + contato                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Qtd | Descrição | P.Unit | Subtotal                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL DA VENDA                                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/loja-app/loja-api/internal/application/vendas"
	"github.com/loja-app/loja-api/internal/domain/entity"
	"github.com/loja-app/loja-api/internal/domain/repository"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ vendas.ReciboGenerator = (*MarotoReciboGenerator)(nil)

// MarotoReciboGenerator implementa vendas.ReciboGenerator usando Maroto v2.
type MarotoReciboGenerator struct{}

// NewMarotoReciboGenerator constrói o gerador.
func NewMarotoReciboGenerator() *MarotoReciboGenerator { return &MarotoReciboGenerator{} }

// GerarReciboPDF gera o PDF do recibo e devolve seus bytes.
func (g *MarotoReciboGenerator) GerarReciboPDF(
	_ context.Context,
	venda *entity.Venda,
	loja *entity.Loja,
	cliente *entity.Cliente,
	itens []*repository.ItemVendaComProduto,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de Venda", true).
		WithAuthor(loja.Nome, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(venda, loja))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(lojaRow(loja))
	m.AddRows(clienteRow(cliente))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(itens) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(venda))

	if venda.Status == entity.VendaCancelada {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("VENDA CANCELADA", props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center,
				Color: &props.Color{Red: 180, Green: 30, Blue: 30}, Top: 3,
			}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nome da loja + CNPJ (esq) e identificação da venda (dir).
func headerRow(venda *entity.Venda, loja *entity.Loja) core.Row {
	data := venda.DataVenda.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(loja.Nome, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("CNPJ: "+nonEmpty(loja.CNPJ, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RECIBO DE VENDA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(shortID(venda.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Data: "+data, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// lojaRow: dados da loja emissora.
func lojaRow(loja *entity.Loja) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("DADOS DA LOJA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Endereço: %s   |   Tel: %s   |   Email: %s",
				nonEmpty(loja.Endereco, "—"),
				nonEmpty(loja.Telefone, "—"),
				nonEmpty(loja.Email, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// clienteRow: dados do comprador. Venda de balcão sai sem cliente.
func clienteRow(cliente *entity.Cliente) core.Row {
	if cliente == nil {
		return row.New(8).Add(col.New(12).Add(
			text.New("CLIENTE: não identificado (venda de balcão)", props.Text{
				Size: 8, Top: 2, Color: colorGray,
			}),
		))
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(cliente.Nome, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("CPF: %s   |   Tel: %s",
				nonEmpty(cliente.CPF, "—"),
				nonEmpty(cliente.Telefone, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de itens.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qtd.", 1, align.Center),
		h("Descrição do produto", 6, align.Left),
		h("Preço Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// tableItemRows: uma linha por item da venda.
func tableItemRows(itens []*repository.ItemVendaComProduto) []core.Row {
	result := make([]core.Row, 0, len(itens))
	for _, it := range itens {
		subtotal := it.Item.PrecoUnitario.Mul(decimal.NewFromInt(it.Item.Quantidade))
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Item.Quantidade),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				it.ProdutoNome,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"R$ "+formatMoney(it.Item.PrecoUnitario),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"R$ "+formatMoney(subtotal),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: total da venda alinhado à direita.
func totalRow(venda *entity.Venda) core.Row {
	return row.New(12).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL DA VENDA:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 3, Right: 2,
		})),
		col.New(3).Add(text.New("R$ "+formatMoney(venda.ValorTotal), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 3, Right: 1,
		})),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// shortID abrevia o UUID da venda para exibição no recibo.
func shortID(id string) string {
	if len(id) > 8 {
		return strings.ToUpper(id[:8])
	}
	return strings.ToUpper(id)
}

// formatMoney formata um decimal no padrão brasileiro.
// Ex: 1234.5 → "1.234,50"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, fracPart, _ := strings.Cut(s, ".")

	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, intPart[i])
	}
	out := string(buf) + "," + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
