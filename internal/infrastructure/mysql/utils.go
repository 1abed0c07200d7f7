package mysql

import (
	"errors"

	mysqldrv "github.com/go-sql-driver/mysql"
)

// Códigos de error del servidor MySQL que se traducen a errores de dominio.
const (
	errDupEntry        = 1062 // ER_DUP_ENTRY
	errRowIsReferenced = 1451 // ER_ROW_IS_REFERENCED_2
	errNoReferencedRow = 1452 // ER_NO_REFERENCED_ROW_2
)

func mysqlCode(err error) uint16 {
	var myErr *mysqldrv.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number
	}
	return 0
}

// isDuplicateEntry verifica si un error es una violación de clave única (1062).
func isDuplicateEntry(err error) bool {
	return mysqlCode(err) == errDupEntry
}

// isRowReferenced la fila es referenciada por una FK y no se puede borrar.
func isRowReferenced(err error) bool {
	return mysqlCode(err) == errRowIsReferenced
}

// isMissingReference la FK apunta a una fila inexistente.
func isMissingReference(err error) bool {
	return mysqlCode(err) == errNoReferencedRow
}

// mapAll aplica un mapper a todas las filas; corta en el primer error.
func mapAll[T any](rows []Row, fn func(Row) (*T, error)) ([]*T, error) {
	out := make([]*T, 0, len(rows))
	for _, r := range rows {
		v, err := fn(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// like envuelve el texto para búsquedas parciales.
func like(text string) string {
	return "%" + text + "%"
}
