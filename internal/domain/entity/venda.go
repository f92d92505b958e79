package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de venda.
const (
	VendaConcluida = "CONCLUIDA"
	VendaCancelada = "CANCELADA"
)

// Venda representa uma venda com um ou mais itens.
// ValorTotal é derivado: soma de preço unitário × quantidade dos itens,
// recalculada ao finalizar a venda. O cancelamento mantém a linha e muda
// o status para CANCELADA (histórico consultável).
type Venda struct {
	ID         string
	ClienteID  string // vazio se venda sem cliente
	LojaID     string
	DataVenda  time.Time
	ValorTotal decimal.Decimal
	Status     string // CONCLUIDA | CANCELADA
}
