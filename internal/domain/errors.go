package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")

	// Acceso a datos.
	ErrConnection      = errors.New("no se pudo conectar a la base de datos")
	ErrNumericCoercion = errors.New("valor no numérico en columna numérica")
	ErrShortRow        = errors.New("fila con menos columnas de las requeridas")
)
