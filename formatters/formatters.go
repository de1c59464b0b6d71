// Package formatters renders market values the way the dashboard displays
// them. Output is fixed to US English and USD and never depends on the host
// locale or timezone.
package formatters

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	NotAvailable = "N/A"

	chartDateLayout = "1/2/2006"
)

var usPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency formats v as US dollars: 6 fraction digits below 1.0,
// 2 fraction digits otherwise, thousands grouped.
func FormatCurrency(v float64) string {
	if !isFinite(v) {
		return NotAvailable
	}

	digits := int32(2)
	if v < 1 {
		digits = 6
	}

	rounded := decimal.NewFromFloat(v).Round(digits)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}

	grouped := usPrinter.Sprint(number.Decimal(rounded.InexactFloat64(), number.Scale(int(digits))))
	return sign + "$" + grouped
}

// FormatCurrencyOrNA is FormatCurrency, except a zero value reads "N/A"
func FormatCurrencyOrNA(v float64) string {
	if v == 0 {
		return NotAvailable
	}
	return FormatCurrency(v)
}

// FormatCompact abbreviates large magnitudes: 1.50B, 2.50M, 2.50K, 42.00.
func FormatCompact(v float64) string {
	if !isFinite(v) {
		return NotAvailable
	}

	switch {
	case v >= 1e9:
		return fixed2(v/1e9) + "B"
	case v >= 1e6:
		return fixed2(v/1e6) + "M"
	case v >= 1e3:
		return fixed2(v/1e3) + "K"
	}
	return fixed2(v)
}

// FormatPercentage renders p with two decimals, or "N/A" when p is unknown
func FormatPercentage(p *float64) string {
	if p == nil || !isFinite(*p) {
		return NotAvailable
	}
	return fixed2(*p) + "%"
}

// FormatSignedPercentage renders p with an explicit "+" for non-negative values
func FormatSignedPercentage(p float64) string {
	if !isFinite(p) {
		return NotAvailable
	}
	if p >= 0 {
		return "+" + fixed2(p) + "%"
	}
	return fixed2(p) + "%"
}

// FormatChartDate renders a millisecond timestamp as M/D/YYYY in UTC
func FormatChartDate(timestampMs int64) string {
	return time.UnixMilli(timestampMs).UTC().Format(chartDateLayout)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func fixed2(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
