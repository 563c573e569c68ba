package fipe

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const currencyPrefix = "R$"

var brPrinter = message.NewPrinter(language.BrazilianPortuguese)

// NormalizePrice converts a masked BRL amount such as "R$ 12.345,67" into 12345.67.
// The currency prefix and thousands separators are dropped and the decimal
// comma becomes a decimal point.
func NormalizePrice(masked string) (float64, error) {
	s := strings.TrimSpace(masked)
	s = strings.TrimSpace(strings.TrimPrefix(s, currencyPrefix))
	if s == "" {
		return 0, fmt.Errorf("empty price %q", masked)
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", masked, err)
	}
	return v, nil
}

// FormatBRL renders v in the catalog's masked form, e.g. 12345.67 → "R$ 12.345,67".
func FormatBRL(v float64) string {
	return brPrinter.Sprintf("%s %.2f", currencyPrefix, v)
}

// fuelCodes maps the catalog fuel name to the pricing service fuel code.
var fuelCodes = map[string]int{
	"Gasolina": 1,
	"Diesel":   3,
}

const defaultFuelCode = 1

// FuelTypeCode returns the pricing service code for a fuel name. Unknown fuels
// fall back to gasoline (1).
func FuelTypeCode(fuel string) int {
	if code, ok := fuelCodes[strings.TrimSpace(fuel)]; ok {
		return code
	}
	return defaultFuelCode
}
