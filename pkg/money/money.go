// Package money formatea importes para reportes y respuestas de la API.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Los importes se muestran con separador de miles y dos decimales (1,234.50).
var printer = message.NewPrinter(language.English)

// Format devuelve "<símbolo> 1,234.50". Sin símbolo devuelve solo el número.
func Format(symbol string, amount decimal.Decimal) string {
	n := Number(amount)
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return n
	}
	return symbol + " " + n
}

// Number importe redondeado a 2 decimales con separador de miles.
func Number(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	neg := rounded.IsNegative()
	abs := rounded.Abs()

	whole := abs.IntPart()
	cents := abs.Sub(decimal.NewFromInt(whole)).Shift(2).IntPart()

	s := printer.Sprintf("%v.%02d", number.Decimal(whole), cents)
	if neg {
		return "-" + s
	}
	return s
}

// Formatter devuelve una función de formato atada a un proveedor de símbolo.
// El símbolo se consulta en cada llamada.
func Formatter(currency func() string) func(decimal.Decimal) string {
	return func(d decimal.Decimal) string {
		if currency == nil {
			return Number(d)
		}
		return Format(currency(), d)
	}
}
