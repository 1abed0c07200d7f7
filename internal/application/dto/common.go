package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// IDResponse respuesta de creación.
type IDResponse struct {
	ID int64 `json:"id"`
}

// AffectedResponse respuesta de actualización o borrado.
type AffectedResponse struct {
	Affected int64 `json:"affected"`
}

// ListResponse envoltorio de listados.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// NewList construye un ListResponse; nil se serializa como lista vacía.
func NewList[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Total: len(items)}
}
