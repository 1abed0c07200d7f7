package dto

import "github.com/jhoicas/nexus-coffee/internal/domain/entity"

// ConfigEntryResponse una clave de configuración.
type ConfigEntryResponse struct {
	Clave       string  `json:"clave"`
	Valor       string  `json:"valor"`
	Descripcion *string `json:"descripcion,omitempty"`
}

// SetConfigRequest nuevo valor para una clave.
type SetConfigRequest struct {
	Valor string `json:"valor"`
}

func NewConfigList(list []*entity.ConfigEntry) ListResponse[ConfigEntryResponse] {
	items := make([]ConfigEntryResponse, 0, len(list))
	for _, e := range list {
		items = append(items, ConfigEntryResponse{Clave: e.Clave, Valor: e.Valor, Descripcion: e.Descripcion})
	}
	return NewList(items)
}

// AuditEntryResponse fila de auditoría.
type AuditEntryResponse struct {
	ID          int64  `json:"id"`
	Tabla       string `json:"tabla"`
	Accion      string `json:"accion"`
	Descripcion string `json:"descripcion"`
	UsuarioID   *int64 `json:"usuario_id,omitempty"`
	Fecha       string `json:"fecha"`
}

func NewAuditList(list []*entity.AuditEntry) ListResponse[AuditEntryResponse] {
	items := make([]AuditEntryResponse, 0, len(list))
	for _, a := range list {
		items = append(items, AuditEntryResponse{
			ID:          a.ID,
			Tabla:       a.Tabla,
			Accion:      a.Accion,
			Descripcion: a.Descripcion,
			UsuarioID:   a.UsuarioID,
			Fecha:       a.Fecha.Format("2006-01-02 15:04:05"),
		})
	}
	return NewList(items)
}
