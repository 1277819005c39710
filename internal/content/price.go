package content

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var pricePrinter = message.NewPrinter(language.AmericanEnglish)

// Free reports whether the price is zero.
func (p Price) Free() bool {
	return p.Cents == 0
}

// Format renders the amount with its currency symbol, e.g. "$6.00". Unknown
// currency codes fall back to "CODE amount" so a bad content file still
// renders something legible.
func (p Price) Format() string {
	unit, err := currency.ParseISO(p.Currency)
	if err != nil {
		return fmt.Sprintf("%s %.2f", p.Currency, float64(p.Cents)/100)
	}
	return pricePrinter.Sprint(currency.Symbol(unit.Amount(float64(p.Cents) / 100)))
}
