package aggregation

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter formats amounts as localized currency strings.
type Formatter struct {
	unit    currency.Unit
	printer *message.Printer
}

// NewFormatter returns a Formatter for an ISO 4217 currency code and a
// BCP 47 locale.
func NewFormatter(code, locale string) (Formatter, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return Formatter{}, fmt.Errorf("%q is not a valid currency: %w", code, err)
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return Formatter{}, fmt.Errorf("%q is not a valid locale: %w", locale, err)
	}

	return Formatter{
		unit:    unit,
		printer: message.NewPrinter(tag),
	}, nil
}

// Currency returns the ISO 4217 code of the formatter.
func (f Formatter) Currency() string {
	return f.unit.String()
}

// Format returns the amount with the currency symbol, rounded to cents.
func (f Formatter) Format(amount decimal.Decimal) string {
	printer := f.printer
	if printer == nil {
		printer = message.NewPrinter(language.AmericanEnglish)
	}

	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}

	value, _ := amount.Round(2).Float64()
	return sign + printer.Sprint(currency.Symbol(f.unit)) + printer.Sprint(number.Decimal(value, number.Scale(2)))
}
