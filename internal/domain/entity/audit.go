package entity

import "time"

// AuditEntry fila de la tabla auditoria (la escribe el trigger auditoria_ventas).
type AuditEntry struct {
	ID          int64
	Tabla       string
	Accion      string
	Descripcion string
	UsuarioID   *int64
	Fecha       time.Time
}
