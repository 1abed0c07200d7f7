package migrations

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/nexus-coffee/internal/domain/entity"
)

type configDefault struct {
	clave, valor, descripcion string
}

// Valores por defecto de configuracion; solo se insertan si la clave no existe.
var configDefaults = []configDefault{
	{entity.ConfigTema, "claro", "Tema actual de la aplicación"},
	{entity.ConfigMoneda, entity.DefaultCurrency, "Símbolo de moneda (Soles peruanos)"},
	{entity.ConfigStockMinimo, "10", "Stock mínimo predeterminado"},
	{entity.ConfigNombre, "Nexus Coffee", "Nombre de la cafetería"},
	{entity.ConfigDireccion, "Av. Principal 123, Lima, Perú", "Dirección de la cafetería"},
	{entity.ConfigTelefono, "01-2345678", "Teléfono de la cafetería"},
	{entity.ConfigEmail, "info@nexuscoffee.com", "Email de la cafetería"},
	{entity.ConfigRUC, "12345678901", "RUC de la cafetería"},
	{entity.ConfigIVA, "16", "Porcentaje de IVA"},
}

// Credenciales del administrador inicial.
const (
	adminUsername = "admin"
	adminPassword = "admin123"
	adminNombre   = "Administrador Principal"
)

// AdminAction resultado de SeedAdmin.
type AdminAction string

const (
	AdminCreated   AdminAction = "creado"
	AdminRehashed  AdminAction = "contraseña convertida a SHA-256"
	AdminUnchanged AdminAction = "sin cambios"
)

// SeedOptions controla qué datos iniciales se cargan.
type SeedOptions struct {
	Samples bool // productos y clientes de ejemplo si las tablas están vacías
}

// SeedReport resumen de lo insertado.
type SeedReport struct {
	ConfigInserted    int
	Admin             AdminAction
	ProductsInserted  int
	CustomersInserted int
}

// Seed carga los datos iniciales. Es idempotente: una segunda ejecución no inserta nada.
func (m *Migrator) Seed(ctx context.Context, opts SeedOptions) (SeedReport, error) {
	var rep SeedReport
	var err error
	if rep.ConfigInserted, err = m.SeedConfig(ctx); err != nil {
		return rep, err
	}
	if rep.Admin, err = m.SeedAdmin(ctx); err != nil {
		return rep, err
	}
	if opts.Samples {
		if rep.ProductsInserted, rep.CustomersInserted, err = m.SeedSamples(ctx); err != nil {
			return rep, err
		}
	}
	m.log.Info().
		Int("config", rep.ConfigInserted).
		Str("admin", string(rep.Admin)).
		Int("productos", rep.ProductsInserted).
		Int("clientes", rep.CustomersInserted).
		Msg("datos iniciales cargados")
	return rep, nil
}

// SeedConfig inserta las claves faltantes y devuelve cuántas insertó.
func (m *Migrator) SeedConfig(ctx context.Context) (int, error) {
	inserted := 0
	for _, d := range configDefaults {
		n, err := m.count(ctx, `SELECT COUNT(*) FROM configuracion WHERE clave = ?`, d.clave)
		if err != nil {
			return inserted, fmt.Errorf("config %s: %w", d.clave, err)
		}
		if n > 0 {
			continue
		}
		if _, err := m.gw.Insert(ctx,
			`INSERT INTO configuracion (clave, valor, descripcion) VALUES (?, ?, ?)`,
			d.clave, d.valor, d.descripcion,
		); err != nil {
			return inserted, fmt.Errorf("insertar config %s: %w", d.clave, err)
		}
		inserted++
	}
	return inserted, nil
}

// SeedAdmin crea el usuario admin si falta, o convierte su contraseña a digest
// si quedó guardada en texto plano.
func (m *Migrator) SeedAdmin(ctx context.Context) (AdminAction, error) {
	rows, err := m.gw.Query(ctx, `SELECT id, password FROM usuarios WHERE username = ?`, adminUsername)
	if err != nil {
		return "", fmt.Errorf("buscar admin: %w", err)
	}
	hash := entity.HashPassword(adminPassword)

	if len(rows) == 0 {
		if _, err := m.gw.Insert(ctx,
			`INSERT INTO usuarios (username, password, nombre, rol) VALUES (?, ?, ?, ?)`,
			adminUsername, hash, adminNombre, entity.RoleAdmin,
		); err != nil {
			return "", fmt.Errorf("crear admin: %w", err)
		}
		return AdminCreated, nil
	}

	if rows[0].StringAt(1) != adminPassword {
		return AdminUnchanged, nil
	}
	id, err := rows[0].Int64At(0)
	if err != nil {
		return "", err
	}
	if _, err := m.gw.Modify(ctx, `UPDATE usuarios SET password = ? WHERE id = ?`, hash, id); err != nil {
		return "", fmt.Errorf("actualizar admin: %w", err)
	}
	return AdminRehashed, nil
}

var sampleProducts = []entity.Product{
	{Nombre: "Café Americano", Categoria: "Café", Precio: decimal.RequireFromString("8.50"), Stock: 100, StockMinimo: 10, Descripcion: ptr("Café negro tradicional")},
	{Nombre: "Café Latte", Categoria: "Café", Precio: decimal.RequireFromString("12.00"), Stock: 80, StockMinimo: 10, Descripcion: ptr("Café con leche espumosa")},
	{Nombre: "Té Verde", Categoria: "Té", Precio: decimal.RequireFromString("6.00"), Stock: 50, StockMinimo: 5, Descripcion: ptr("Té verde caliente")},
	{Nombre: "Muffin de Arándanos", Categoria: "Postres", Precio: decimal.RequireFromString("5.50"), Stock: 30, StockMinimo: 5, Descripcion: ptr("Muffin esponjoso con arándanos")},
	{Nombre: "Sándwich de Pollo", Categoria: "Sándwiches", Precio: decimal.RequireFromString("15.00"), Stock: 25, StockMinimo: 3, Descripcion: ptr("Sándwich caliente de pollo")},
}

var sampleCustomers = []entity.Customer{
	{Nombre: entity.ClienteGeneral, Email: "general@cliente.com", Telefono: "000000000"},
	{Nombre: "Juan Pérez", Email: "juan@email.com", Telefono: "987654321"},
	{Nombre: "María García", Email: "maria@email.com", Telefono: "912345678"},
}

// SeedSamples carga el catálogo y los clientes de ejemplo solo en tablas vacías.
func (m *Migrator) SeedSamples(ctx context.Context) (products, customers int, err error) {
	n, err := m.count(ctx, `SELECT COUNT(*) FROM productos`)
	if err != nil {
		return 0, 0, fmt.Errorf("contar productos: %w", err)
	}
	if n == 0 {
		for _, p := range sampleProducts {
			if _, err := m.gw.Insert(ctx, `
				INSERT INTO productos (nombre, categoria, precio, stock, stock_minimo, descripcion)
				VALUES (?, ?, ?, ?, ?, ?)`,
				p.Nombre, p.Categoria, p.Precio, p.Stock, p.StockMinimo, p.Descripcion,
			); err != nil {
				return products, 0, fmt.Errorf("producto de ejemplo %s: %w", p.Nombre, err)
			}
			products++
		}
	}

	n, err = m.count(ctx, `SELECT COUNT(*) FROM clientes`)
	if err != nil {
		return products, 0, fmt.Errorf("contar clientes: %w", err)
	}
	if n == 0 {
		for _, c := range sampleCustomers {
			if _, err := m.gw.Insert(ctx,
				`INSERT INTO clientes (nombre, email, telefono) VALUES (?, ?, ?)`,
				c.Nombre, c.Email, c.Telefono,
			); err != nil {
				return products, customers, fmt.Errorf("cliente de ejemplo %s: %w", c.Nombre, err)
			}
			customers++
		}
	}
	return products, customers, nil
}

func ptr(s string) *string { return &s }
