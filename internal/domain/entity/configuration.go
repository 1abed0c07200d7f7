package entity

// Claves conocidas de la tabla configuracion.
const (
	ConfigTema        = "tema_actual"
	ConfigMoneda      = "moneda"
	ConfigStockMinimo = "stock_minimo_predeterminado"
	ConfigNombre      = "cafeteria_nombre"
	ConfigDireccion   = "cafeteria_direccion"
	ConfigTelefono    = "cafeteria_telefono"
	ConfigEmail       = "cafeteria_email"
	ConfigRUC         = "cafeteria_ruc"
	ConfigIVA         = "iva_porcentaje"
)

// DefaultCurrency símbolo usado cuando no hay clave moneda.
const DefaultCurrency = "S/"

// ConfigEntry fila clave/valor de configuracion.
type ConfigEntry struct {
	Clave       string
	Valor       string
	Descripcion *string
}
