package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/nexus-coffee/internal/domain/entity"
	"github.com/jhoicas/nexus-coffee/internal/domain/repository"
)

// SaleTxRunner ejecuta fn con repositorios atados a una misma transacción.
// Si fn devuelve error, todo lo escrito dentro se revierte.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(sales repository.SaleRepository, products repository.ProductRepository) error) error
}

// ShopInfo datos de la cafetería que encabezan el reporte completo.
type ShopInfo struct {
	Nombre    string
	Direccion string
	Telefono  string
	Email     string
	RUC       string
}

// InventoryReport productos con su stock al momento de generar.
type InventoryReport struct {
	GeneratedAt time.Time
	Products    []*entity.Product
}

// SalesReport ventas de un período con su resumen.
type SalesReport struct {
	GeneratedAt time.Time
	Desde       time.Time
	Hasta       time.Time
	Sales       []*entity.Sale
	Summary     entity.SalesSummary
}

// CompleteReport vista general: cafetería, ventas, más vendidos y stock bajo.
type CompleteReport struct {
	GeneratedAt time.Time
	Shop        ShopInfo
	Desde       time.Time
	Hasta       time.Time
	Summary     entity.SalesSummary
	TopProducts []entity.TopProduct
	LowStock    []*entity.Product
}

// ReportPDFGenerator renderiza los reportes en PDF. currency devuelve el
// símbolo de moneda vigente; se consulta al formatear cada importe.
type ReportPDFGenerator interface {
	InventoryPDF(ctx context.Context, r InventoryReport, currency func() string) ([]byte, error)
	SalesPDF(ctx context.Context, r SalesReport, currency func() string) ([]byte, error)
	CompletePDF(ctx context.Context, r CompleteReport, currency func() string) ([]byte, error)
}

// ReportSpreadsheetGenerator exporta los reportes tabulares a XLSX.
type ReportSpreadsheetGenerator interface {
	InventoryXLSX(ctx context.Context, r InventoryReport, currency func() string) ([]byte, error)
	SalesXLSX(ctx context.Context, r SalesReport, currency func() string) ([]byte, error)
}

// ReportArchive guarda una copia del archivo generado y devuelve su ruta.
type ReportArchive interface {
	Save(ctx context.Context, filename string, data []byte) (string, error)
}
