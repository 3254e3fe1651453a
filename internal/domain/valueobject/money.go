package valueobject

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// currencySymbol prefixes every formatted amount.
const currencySymbol = "R$"

var brlPrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders amount in Brazilian notation with two decimals,
// e.g. "R$ 1.234,56".
func FormatBRL(amount decimal.Decimal) string {
	value, _ := amount.Round(2).Float64()
	formatted := brlPrinter.Sprint(number.Decimal(value,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
	return currencySymbol + " " + formatted
}
