// Package textfmt holds the small formatting helpers the reports share:
// elapsed time, compact K/M/B amounts, grouped money values and centred
// banner lines.
package textfmt

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English) //nolint: gochecknoglobals

var currencySymbols = map[string]string{ //nolint: gochecknoglobals
	"usd": "$",
	"inr": "₹",
	"eur": "€",
	"gbp": "£",
	"jpy": "¥",
}

// TimeAgo renders the whole seconds elapsed between t and now as
// "N seconds ago", "N minutes ago", "N hours ago" or "N days ago".
// Timestamps in the future count as zero seconds.
func TimeAgo(now, t time.Time) string {
	diff := int64(now.Sub(t) / time.Second)
	if diff < 0 {
		diff = 0
	}

	switch {
	case diff < 60:
		return fmt.Sprintf("%d seconds ago", diff)
	case diff < 3600:
		return fmt.Sprintf("%d minutes ago", diff/60)
	case diff < 86400:
		return fmt.Sprintf("%d hours ago", diff/3600)
	default:
		return fmt.Sprintf("%d days ago", diff/86400)
	}
}

// Compact formats v with a K, M or B unit and two decimals:
// above one billion B, from one million M, from one thousand K.
func Compact(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs > 1_000_000_000:
		return fmt.Sprintf("%.2fB", v/1_000_000_000)
	case abs >= 1_000_000:
		return fmt.Sprintf("%.2fM", v/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("%.2fK", v/1_000)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

// Grouped formats v with thousands separators and the given number of decimals.
func Grouped(v float64, decimals int) string {
	return printer.Sprintf(fmt.Sprintf("%%.%df", decimals), v)
}

// CurrencySymbol returns the symbol for a lower-case currency code, or the
// upper-cased code followed by a space when no symbol is known.
func CurrencySymbol(code string) string {
	if s, ok := currencySymbols[strings.ToLower(code)]; ok {
		return s
	}

	return strings.ToUpper(code) + " "
}

// Money formats v in the given currency with grouping and two decimals.
func Money(code string, v float64) string {
	return CurrencySymbol(code) + Grouped(v, 2)
}

// CompactMoney formats v in the given currency with a K/M/B unit.
func CompactMoney(code string, v float64) string {
	return CurrencySymbol(code) + Compact(v)
}

// SignedPercent formats v as a percentage with an explicit plus sign for
// positive values.
func SignedPercent(v float64) string {
	if v > 0 {
		return fmt.Sprintf("+%.2f%%", v)
	}

	return fmt.Sprintf("%.2f%%", v)
}

// Title turns an identifier such as "shiba-inu" into "Shiba Inu".
func Title(id string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(id, "-", " "))
}

// Center pads s with spaces on both sides to width runes. Strings that are
// already wider are returned unchanged.
func Center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2

	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

// PadRight pads s with spaces on the right to width runes.
func PadRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}

	return s + strings.Repeat(" ", width-n)
}
