package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/nexus-coffee/internal/domain"
	"github.com/jhoicas/nexus-coffee/internal/domain/entity"
	"github.com/jhoicas/nexus-coffee/internal/domain/repository"
)

// SaleUseCase casos de uso de ventas.
type SaleUseCase struct {
	sales     repository.SaleRepository
	customers repository.CustomerRepository
	tx        SaleTxRunner
}

// NewSaleUseCase construye el caso de uso. tx se usa solo en RecordSale.
func NewSaleUseCase(sales repository.SaleRepository, customers repository.CustomerRepository, tx SaleTxRunner) *SaleUseCase {
	return &SaleUseCase{sales: sales, customers: customers, tx: tx}
}

// List ventas con el nombre del vendedor, la más reciente primero.
func (uc *SaleUseCase) List(ctx context.Context) ([]*entity.Sale, error) {
	return uc.sales.List(ctx)
}

// Search por nombre de cliente o número de venta. Texto vacío equivale a List.
func (uc *SaleUseCase) Search(ctx context.Context, text string) ([]*entity.Sale, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return uc.sales.List(ctx)
	}
	return uc.sales.Search(ctx, text)
}

// FilterByDates ventas entre dos días calendario, ambos incluidos.
func (uc *SaleUseCase) FilterByDates(ctx context.Context, desde, hasta time.Time) ([]*entity.Sale, error) {
	if err := validateRange(desde, hasta); err != nil {
		return nil, err
	}
	return uc.sales.FilterByDates(ctx, desde, hasta)
}

// Create inserta solo la cabecera. El total no se contrasta con las líneas:
// quien llama debe agregar las líneas con AddLineItem.
func (uc *SaleUseCase) Create(ctx context.Context, cliente string, total decimal.Decimal, usuarioID *int64) (int64, error) {
	cliente = strings.TrimSpace(cliente)
	if cliente == "" {
		cliente = entity.ClienteGeneral
	}
	if total.IsNegative() {
		return 0, entity.ErrFieldInvalid("total", "no puede ser negativo")
	}
	return uc.sales.Create(ctx, &entity.Sale{Cliente: cliente, Total: total, UsuarioID: usuarioID})
}

// AddLineItem agrega una línea con subtotal = qty × unitPrice. No toca el stock.
func (uc *SaleUseCase) AddLineItem(ctx context.Context, saleID, productID int64, qty int, unitPrice decimal.Decimal) (int64, error) {
	if qty <= 0 {
		return 0, entity.ErrFieldInvalid("cantidad", "debe ser mayor que cero")
	}
	if unitPrice.IsNegative() {
		return 0, entity.ErrFieldInvalid("precio_unitario", "no puede ser negativo")
	}
	return uc.sales.AddLineItem(ctx, saleID, productID, qty, unitPrice)
}

// SaleItemInput línea pedida en RecordSale. Sin UnitPrice se toma el precio actual del producto.
type SaleItemInput struct {
	ProductID int64
	Qty       int
	UnitPrice *decimal.Decimal
}

// RecordSaleInput venta completa.
type RecordSaleInput struct {
	Cliente      string
	ClienteRefID *int64
	UsuarioID    *int64
	Items        []SaleItemInput
}

// RecordSale registra cabecera, líneas y descuento de stock en una sola
// transacción. El total se calcula a partir de las líneas. Si algún producto no
// existe o no tiene stock suficiente no queda nada escrito.
func (uc *SaleUseCase) RecordSale(ctx context.Context, in RecordSaleInput) (*entity.SaleDetail, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: la venta no tiene productos", domain.ErrInvalidInput)
	}
	for _, it := range in.Items {
		if it.Qty <= 0 {
			return nil, entity.ErrFieldInvalid("cantidad", "debe ser mayor que cero")
		}
		if it.UnitPrice != nil && it.UnitPrice.IsNegative() {
			return nil, entity.ErrFieldInvalid("precio_unitario", "no puede ser negativo")
		}
	}

	cliente, err := uc.resolveCustomerName(ctx, in.Cliente, in.ClienteRefID)
	if err != nil {
		return nil, err
	}

	detail := &entity.SaleDetail{
		Sale: entity.Sale{
			Cliente:      cliente,
			ClienteRefID: in.ClienteRefID,
			UsuarioID:    in.UsuarioID,
		},
	}

	err = uc.tx.RunSale(ctx, func(sales repository.SaleRepository, products repository.ProductRepository) error {
		// ── 1. Precios y total ────────────────────────────────────────────────
		items := make([]entity.SaleLineItem, 0, len(in.Items))
		total := decimal.Zero
		for _, it := range in.Items {
			p, err := products.GetByID(ctx, it.ProductID)
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("%w: producto %d", domain.ErrNotFound, it.ProductID)
			}
			price := p.Precio
			if it.UnitPrice != nil {
				price = *it.UnitPrice
			}
			line := entity.SaleLineItem{
				ProductoID:     p.ID,
				Producto:       p.Nombre,
				Cantidad:       it.Qty,
				PrecioUnitario: price,
				Subtotal:       entity.LineSubtotal(it.Qty, price),
			}
			total = total.Add(line.Subtotal)
			items = append(items, line)
		}

		// ── 2. Cabecera ───────────────────────────────────────────────────────
		detail.Sale.Total = total
		saleID, err := sales.Create(ctx, &detail.Sale)
		if err != nil {
			return err
		}
		detail.Sale.ID = saleID

		// ── 3. Líneas y stock ─────────────────────────────────────────────────
		for i := range items {
			items[i].VentaID = saleID
			id, err := sales.AddLineItem(ctx, saleID, items[i].ProductoID, items[i].Cantidad, items[i].PrecioUnitario)
			if err != nil {
				return err
			}
			items[i].ID = id

			n, err := products.DecrementStock(ctx, items[i].ProductoID, items[i].Cantidad)
			if err != nil {
				return err
			}
			if n == 0 {
				return fmt.Errorf("%w: %s", domain.ErrInsufficientStock, items[i].Producto)
			}
		}
		detail.Items = items
		return nil
	})
	if err != nil {
		return nil, err
	}
	detail.Sale.Fecha = time.Now()
	return detail, nil
}

// GetDetail cabecera más líneas; (nil, nil) si la venta no existe.
func (uc *SaleUseCase) GetDetail(ctx context.Context, id int64) (*entity.SaleDetail, error) {
	sale, err := uc.sales.GetByID(ctx, id)
	if err != nil || sale == nil {
		return nil, err
	}
	items, err := uc.sales.ListLineItems(ctx, id)
	if err != nil {
		return nil, err
	}
	out := &entity.SaleDetail{Sale: *sale, Items: make([]entity.SaleLineItem, 0, len(items))}
	for _, it := range items {
		out.Items = append(out.Items, *it)
	}
	return out, nil
}

// resolveCustomerName nombre a copiar en la venta: el indicado, el del cliente
// referenciado o "Cliente General".
func (uc *SaleUseCase) resolveCustomerName(ctx context.Context, name string, refID *int64) (string, error) {
	name = strings.TrimSpace(name)
	if refID == nil {
		if name == "" {
			return entity.ClienteGeneral, nil
		}
		return name, nil
	}
	c, err := uc.customers.GetByID(ctx, *refID)
	if err != nil {
		return "", err
	}
	if c == nil {
		return "", fmt.Errorf("%w: cliente %d", domain.ErrNotFound, *refID)
	}
	if name == "" {
		name = c.Nombre
	}
	return name, nil
}

// validateRange compara días calendario: hasta no puede ser anterior a desde.
func validateRange(desde, hasta time.Time) error {
	if hasta.Format(time.DateOnly) < desde.Format(time.DateOnly) {
		return fmt.Errorf("%w: la fecha final es anterior a la inicial", domain.ErrInvalidInput)
	}
	return nil
}
