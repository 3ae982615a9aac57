package tui

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/adminboard/internal/listctl"
)

const defaultCurrency = "USD"

// getCurrencySymbol returns the symbol for a currency code, or the code itself if unknown.
func getCurrencySymbol(code string) string {
	switch code {
	case "USD":
		return "$"
	case "EUR":
		return "€"
	case "GBP":
		return "£"
	case "JPY", "CNY":
		return "¥"
	case "CAD":
		return "C$"
	case "AUD":
		return "A$"
	case "INR":
		return "₹"
	default:
		return code
	}
}

// FormatPrice renders amount with a currency symbol and thousands grouping,
// for example "$1,234.50". Unknown codes fall back to USD.
func FormatPrice(amount float64, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.USD
	}
	p := message.NewPrinter(language.English)
	return getCurrencySymbol(unit.String()) + p.Sprintf("%.2f", amount)
}

// Formatter renders record cells for display.
type Formatter struct {
	Currency string
	printer  *message.Printer
}

// NewFormatter creates a formatter for prices in code.
func NewFormatter(code string) *Formatter {
	if code == "" {
		code = defaultCurrency
	}
	return &Formatter{Currency: code, printer: message.NewPrinter(language.English)}
}

// Cell renders one field of r. Price fields are formatted as money and
// integers are grouped.
func (f *Formatter) Cell(field listctl.Field, r listctl.Record) string {
	v, ok := r.Get(field.Name)
	if !ok {
		return ""
	}
	switch n := v.(type) {
	case float64:
		if field.Name == "price" {
			return FormatPrice(n, f.Currency)
		}
		return f.printer.Sprintf("%v", n)
	case int:
		return f.printer.Sprintf("%d", n)
	default:
		return listctl.FormatValue(v)
	}
}

// Title renders an entity name as a heading ("users" -> "Users").
func Title(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "_", " "))
}

// truncate shortens s to width runes, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 || len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}
