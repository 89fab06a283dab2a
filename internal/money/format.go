// Package money formats dollar amounts for documents and emails.
package money

import (
	"math"

	"github.com/dustin/go-humanize"
)

// Format renders v as "$1,234.50"; negative values become "-$1,234.50".
func Format(v float64) string {
	if v < 0 {
		return "-$" + humanize.FormatFloat("#,###.##", math.Abs(v))
	}
	return "$" + humanize.FormatFloat("#,###.##", v)
}

// Signed always shows the sign, for deltas.
func Signed(v float64) string {
	if v > 0 {
		return "+" + Format(v)
	}
	return Format(v)
}
