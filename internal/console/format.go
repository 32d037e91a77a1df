package console

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money is rendered the Spanish way: dot-grouped thousands, no decimals,
// trailing euro sign ("80.000.000 €").
var moneyPrinter = message.NewPrinter(language.MustParse("es-ES"))

// Euro formats an amount in whole euros.
func Euro(amount int) string {
	return moneyPrinter.Sprintf("%d €", amount)
}
