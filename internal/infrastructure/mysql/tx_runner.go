package mysql

import (
	"context"

	"github.com/jhoicas/nexus-coffee/internal/application/usecase"
	"github.com/jhoicas/nexus-coffee/internal/domain/repository"
)

var _ usecase.SaleTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks con repositorios atados a una transacción del gateway.
type TxRunner struct {
	gw *Gateway
}

// NewTxRunner construye el runner.
func NewTxRunner(gw *Gateway) *TxRunner {
	return &TxRunner{gw: gw}
}

// RunSale abre la transacción, ejecuta fn y hace commit; cualquier error de fn
// revierte la cabecera, los detalles y los descuentos de stock.
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	sales repository.SaleRepository,
	products repository.ProductRepository,
) error) error {
	return r.gw.InTx(ctx, func(q Querier) error {
		return fn(NewSaleRepository(q), NewProductRepository(q))
	})
}
