package migrations

import (
	"context"
	"fmt"
)

// All lista ordenada de migraciones. Nunca reordenar ni reutilizar versiones.
func All() []Migration {
	return []Migration{
		{Version: 1, Name: "esquema_base", Up: baseSchema},
		{Version: 2, Name: "productos_categoria_texto", Up: denormalizeProductCategory},
		{Version: 3, Name: "ventas_cliente_texto", Up: denormalizeSaleCustomer},
		{Version: 4, Name: "ventas_cliente_ref", Up: addSaleCustomerRef},
		{Version: 5, Name: "trigger_auditoria_ventas", Up: auditTrigger},
	}
}

const tableOptions = ` ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`

var baseTables = []string{
	`CREATE TABLE IF NOT EXISTS usuarios (
		id INT AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(50) NOT NULL UNIQUE,
		password CHAR(64) NOT NULL,
		nombre VARCHAR(100) NOT NULL,
		rol ENUM('admin', 'manager', 'cashier', 'user') NOT NULL DEFAULT 'user',
		fecha_creacion TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)` + tableOptions,
	`CREATE TABLE IF NOT EXISTS categorias (
		id INT AUTO_INCREMENT PRIMARY KEY,
		nombre VARCHAR(50) NOT NULL UNIQUE,
		descripcion TEXT,
		activo TINYINT(1) DEFAULT 1
	)` + tableOptions,
	`CREATE TABLE IF NOT EXISTS productos (
		id INT AUTO_INCREMENT PRIMARY KEY,
		nombre VARCHAR(100) NOT NULL,
		categoria VARCHAR(50) NOT NULL,
		precio DECIMAL(10,2) NOT NULL,
		stock INT NOT NULL DEFAULT 0,
		stock_minimo INT NOT NULL DEFAULT 10,
		descripcion TEXT NULL,
		INDEX idx_categoria (categoria),
		CONSTRAINT chk_productos_precio CHECK (precio > 0),
		CONSTRAINT chk_productos_stock CHECK (stock >= 0),
		CONSTRAINT chk_productos_stock_minimo CHECK (stock_minimo >= 0)
	)` + tableOptions,
	`CREATE TABLE IF NOT EXISTS clientes (
		id INT AUTO_INCREMENT PRIMARY KEY,
		nombre VARCHAR(100) NOT NULL,
		email VARCHAR(100) NULL,
		telefono VARCHAR(20) NULL,
		INDEX idx_clientes_nombre (nombre)
	)` + tableOptions,
	`CREATE TABLE IF NOT EXISTS ventas (
		id INT AUTO_INCREMENT PRIMARY KEY,
		cliente VARCHAR(255) NOT NULL DEFAULT 'Cliente General',
		total DECIMAL(10,2) NOT NULL DEFAULT 0,
		fecha DATETIME DEFAULT CURRENT_TIMESTAMP,
		usuario_id INT NULL,
		INDEX idx_cliente (cliente),
		INDEX idx_fecha (fecha),
		CONSTRAINT fk_ventas_usuario FOREIGN KEY (usuario_id) REFERENCES usuarios(id) ON DELETE SET NULL
	)` + tableOptions,
	`CREATE TABLE IF NOT EXISTS detalles_venta (
		id INT AUTO_INCREMENT PRIMARY KEY,
		venta_id INT NOT NULL,
		producto_id INT NOT NULL,
		cantidad INT NOT NULL,
		precio_unitario DECIMAL(10,2) NOT NULL,
		subtotal DECIMAL(10,2) NOT NULL,
		CONSTRAINT chk_detalles_cantidad CHECK (cantidad > 0),
		CONSTRAINT fk_detalles_venta FOREIGN KEY (venta_id) REFERENCES ventas(id) ON DELETE CASCADE,
		CONSTRAINT fk_detalles_producto FOREIGN KEY (producto_id) REFERENCES productos(id)
	)` + tableOptions,
	`CREATE TABLE IF NOT EXISTS configuracion (
		id INT AUTO_INCREMENT PRIMARY KEY,
		clave VARCHAR(50) NOT NULL UNIQUE,
		valor TEXT NOT NULL,
		descripcion VARCHAR(255) NULL
	)` + tableOptions,
	`CREATE TABLE IF NOT EXISTS auditoria (
		id INT AUTO_INCREMENT PRIMARY KEY,
		tabla VARCHAR(50) NOT NULL,
		accion VARCHAR(20) NOT NULL,
		descripcion TEXT,
		usuario_id INT NULL,
		fecha DATETIME DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_auditoria_fecha (fecha)
	)` + tableOptions,
}

func baseSchema(ctx context.Context, m *Migrator) error {
	return m.exec(ctx, baseTables...)
}

// Categoría asignada a productos que no tenían categoria_id.
const fallbackCategory = "Café"

// denormalizeProductCategory pasa de productos.categoria_id a texto libre.
// La columna nueva se agrega y rellena antes de eliminar la anterior.
func denormalizeProductCategory(ctx context.Context, m *Migrator) error {
	hasCategoria, err := m.columnExists(ctx, "productos", "categoria")
	if err != nil {
		return err
	}
	hasCategoriaID, err := m.columnExists(ctx, "productos", "categoria_id")
	if err != nil {
		return err
	}
	if !hasCategoria {
		if err := m.gw.Exec(ctx, `ALTER TABLE productos ADD COLUMN categoria VARCHAR(50) NULL AFTER nombre`); err != nil {
			return err
		}
	}
	if !hasCategoriaID {
		return nil
	}

	hasCategorias, err := m.tableExists(ctx, "categorias")
	if err != nil {
		return err
	}
	if hasCategorias {
		if _, err := m.gw.Modify(ctx, `
			UPDATE productos p
			JOIN categorias c ON p.categoria_id = c.id
			SET p.categoria = c.nombre
			WHERE p.categoria IS NULL OR p.categoria = ''`); err != nil {
			return fmt.Errorf("rellenar categoria: %w", err)
		}
	}
	if _, err := m.gw.Modify(ctx,
		`UPDATE productos SET categoria = ? WHERE categoria IS NULL OR categoria = ''`, fallbackCategory,
	); err != nil {
		return fmt.Errorf("categoria por defecto: %w", err)
	}
	if err := m.dropForeignKeys(ctx, "productos", "categoria_id"); err != nil {
		return err
	}
	return m.exec(ctx,
		`ALTER TABLE productos DROP COLUMN categoria_id`,
		`ALTER TABLE productos MODIFY categoria VARCHAR(50) NOT NULL`,
	)
}

// denormalizeSaleCustomer pasa de ventas.cliente_id a ventas.cliente (nombre copiado).
// El id anterior se conserva en cliente_ref_id para no perder el vínculo.
func denormalizeSaleCustomer(ctx context.Context, m *Migrator) error {
	hasCliente, err := m.columnExists(ctx, "ventas", "cliente")
	if err != nil {
		return err
	}
	hasClienteID, err := m.columnExists(ctx, "ventas", "cliente_id")
	if err != nil {
		return err
	}
	if !hasClienteID {
		return nil
	}

	if !hasCliente {
		if err := m.gw.Exec(ctx, `ALTER TABLE ventas ADD COLUMN cliente VARCHAR(255) NULL`); err != nil {
			return err
		}
		if _, err := m.gw.Modify(ctx, `
			UPDATE ventas v
			LEFT JOIN clientes c ON v.cliente_id = c.id
			SET v.cliente = COALESCE(c.nombre, 'Cliente General')`); err != nil {
			return fmt.Errorf("rellenar cliente: %w", err)
		}
	}

	if err := ensureCustomerRefColumn(ctx, m); err != nil {
		return err
	}
	if _, err := m.gw.Modify(ctx, `
		UPDATE ventas v
		JOIN clientes c ON v.cliente_id = c.id
		SET v.cliente_ref_id = c.id
		WHERE v.cliente_ref_id IS NULL`); err != nil {
		return fmt.Errorf("copiar cliente_ref_id: %w", err)
	}

	if err := m.dropForeignKeys(ctx, "ventas", "cliente_id"); err != nil {
		return err
	}
	if err := m.gw.Exec(ctx, `ALTER TABLE ventas DROP COLUMN cliente_id`); err != nil {
		return err
	}

	hasIdx, err := m.indexExists(ctx, "ventas", "idx_cliente")
	if err != nil {
		return err
	}
	if !hasIdx {
		return m.gw.Exec(ctx, `ALTER TABLE ventas ADD INDEX idx_cliente (cliente)`)
	}
	return nil
}

func ensureCustomerRefColumn(ctx context.Context, m *Migrator) error {
	has, err := m.columnExists(ctx, "ventas", "cliente_ref_id")
	if err != nil || has {
		return err
	}
	return m.gw.Exec(ctx, `ALTER TABLE ventas ADD COLUMN cliente_ref_id INT NULL AFTER cliente`)
}

const customerRefFK = "fk_ventas_cliente_ref"

// addSaleCustomerRef referencia opcional a clientes; se anula al borrar el cliente.
func addSaleCustomerRef(ctx context.Context, m *Migrator) error {
	if err := ensureCustomerRefColumn(ctx, m); err != nil {
		return err
	}
	has, err := m.foreignKeyExists(ctx, "ventas", customerRefFK)
	if err != nil || has {
		return err
	}
	return m.gw.Exec(ctx, `ALTER TABLE ventas ADD CONSTRAINT `+customerRefFK+
		` FOREIGN KEY (cliente_ref_id) REFERENCES clientes(id) ON DELETE SET NULL`)
}

const auditTriggerDDL = `
	CREATE TRIGGER auditoria_ventas
	AFTER INSERT ON ventas
	FOR EACH ROW
	BEGIN
		INSERT INTO auditoria (tabla, accion, descripcion, usuario_id, fecha)
		VALUES ('ventas', 'INSERT',
			CONCAT('Venta #', NEW.id, ' - Cliente: ', NEW.cliente, ' - Total: S/', NEW.total),
			NEW.usuario_id, NOW());
	END`

// auditTrigger recrea el trigger para que use ventas.cliente.
func auditTrigger(ctx context.Context, m *Migrator) error {
	return m.exec(ctx, `DROP TRIGGER IF EXISTS auditoria_ventas`, auditTriggerDDL)
}
