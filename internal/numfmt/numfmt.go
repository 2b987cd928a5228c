// Package numfmt renders float64 results for display. The default is the
// plain decimal rendering of the value; an optional locale-aware mode groups
// integer digits for readability.
package numfmt

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Options controls result rendering.
type Options struct {
	// Precision is the number of digits after the decimal point; negative
	// means the shortest representation that round-trips.
	Precision int
	// Grouping enables locale-aware digit grouping ("1,234,567.5").
	Grouping bool
	// Locale is a BCP 47 tag used when Grouping is on; invalid or empty
	// values fall back to English.
	Locale string
}

// Default renders the way fmt's %v would: shortest round-trip form.
var Default = Options{Precision: -1}

// Format renders a result value according to the options.
func Format(v float64, opts Options) string {
	if opts.Grouping {
		p := message.NewPrinter(parseLocale(opts.Locale))
		if opts.Precision >= 0 {
			return p.Sprint(number.Decimal(v,
				number.MinFractionDigits(opts.Precision),
				number.MaxFractionDigits(opts.Precision)))
		}
		return p.Sprint(number.Decimal(v))
	}

	if opts.Precision >= 0 {
		return strconv.FormatFloat(v, 'f', opts.Precision, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func parseLocale(locale string) language.Tag {
	if locale == "" {
		return language.English
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.English
	}
	return tag
}
