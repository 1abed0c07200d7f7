package entity

import "github.com/shopspring/decimal"

// CategoryCount cantidad de productos por categoría.
type CategoryCount struct {
	Categoria string
	Cantidad  int
}

// DailySales total vendido en un día calendario.
type DailySales struct {
	Dia   string // YYYY-MM-DD
	Total decimal.Decimal
}

// TopProduct unidades vendidas de un producto en la ventana consultada.
type TopProduct struct {
	Nombre   string
	Cantidad int
}

// SalesSummary agregado de ventas en un rango de fechas.
type SalesSummary struct {
	Cantidad int
	Total    decimal.Decimal
	Promedio decimal.Decimal
}

// Dashboard indicadores de la pantalla principal.
type Dashboard struct {
	TotalProductos int
	VentasHoy      decimal.Decimal
	TotalClientes  int
	StockBajo      int
	Notificaciones []string
}
