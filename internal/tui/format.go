package tui

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// amountPrinter renders grouped decimals ("1,234.50") for amount display.
var amountPrinter = message.NewPrinter(language.English)

// FormatAmount renders an amount with the currency symbol and two decimal
// places, with thousands grouping.
func FormatAmount(currency string, v float64) string {
	return currency + amountPrinter.Sprint(number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
