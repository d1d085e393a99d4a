// Package money formats and parses amounts the way the back-office shows
// them: Brazilian Real, comma as the decimal separator.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const symbol = "R$"

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Round rounds to cents, half away from zero.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Format renders an amount as "R$ 1.234,56".
func Format(d decimal.Decimal) string {
	return symbol + " " + printer.Sprintf("%.2f", Round(d).InexactFloat64())
}

// Parse accepts both "1.234,56" and "1234.56". When a comma is present it is
// the decimal separator and dots are thousand separators.
func Parse(s string) (decimal.Decimal, error) {
	clean := strings.TrimSpace(s)
	clean = strings.TrimPrefix(clean, symbol)
	clean = strings.TrimSpace(clean)

	if strings.Contains(clean, ",") {
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse amount %q: %w", s, err)
	}

	return d, nil
}
