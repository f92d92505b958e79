package pdf

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loja-app/loja-api/internal/domain/entity"
	"github.com/loja-app/loja-api/internal/domain/repository"
)

func TestFormatMoney(t *testing.T) {
	casos := []struct {
		valor    string
		esperado string
	}{
		{"0", "0,00"},
		{"9.9", "9,90"},
		{"1234.5", "1.234,50"},
		{"1000000", "1.000.000,00"},
		{"-250.75", "-250,75"},
	}
	for _, c := range casos {
		d, err := decimal.NewFromString(c.valor)
		require.NoError(t, err)
		assert.Equal(t, c.esperado, formatMoney(d), "valor %s", c.valor)
	}
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "A1B2C3D4", shortID("a1b2c3d4-0000-0000-0000-000000000000"))
	assert.Equal(t, "ABC", shortID("abc"))
}

func TestGerarReciboPDF_ComESemCliente(t *testing.T) {
	g := NewMarotoReciboGenerator()
	venda := &entity.Venda{
		ID:         "a1b2c3d4-0000-0000-0000-000000000000",
		LojaID:     "loja-1",
		DataVenda:  time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC),
		ValorTotal: decimal.NewFromInt(40),
		Status:     entity.VendaConcluida,
	}
	loja := &entity.Loja{ID: "loja-1", Nome: "Loja Centro", Endereco: "Rua A, 10"}
	itens := []*repository.ItemVendaComProduto{
		{
			Item:        entity.ItemVenda{Quantidade: 3, PrecoUnitario: decimal.NewFromInt(10)},
			ProdutoNome: "Café",
		},
	}

	pdfBytes, err := g.GerarReciboPDF(context.Background(), venda, loja, nil, itens)
	require.NoError(t, err, "venda de balcão gera recibo sem cliente")
	assert.NotEmpty(t, pdfBytes)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]), "a saída deve ser um documento PDF")

	cliente := &entity.Cliente{ID: "cli-1", Nome: "Maria", CPF: "111.222.333-44"}
	pdfBytes, err = g.GerarReciboPDF(context.Background(), venda, loja, cliente, itens)
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
}
