package portfolio

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Formatting helpers shared by the UI and the system-instruction builder.
// Output formats are fixed; tests pin the exact strings.

// groupThousands inserts commas into a non-negative integer string.
func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// Currency formats whole dollars with grouping: 195000 → "$195,000",
// -5391.2 → "-$5,391".
func Currency(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return sign + "$" + groupThousands(int64(math.Round(v)))
}

// CurrencyPrecise formats dollars and cents with grouping: 198.5 →
// "$198.50".
func CurrencyPrecise(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	cents := int64(math.Round(v * 100))
	return fmt.Sprintf("%s$%s.%02d", sign, groupThousands(cents/100), cents%100)
}

// Percent formats a decimal fraction with one decimal place: 0.123 →
// "12.3%".
func Percent(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/10, 'f', 1, 64) + "%"
}

// Rate formats a decimal rate with up to two decimals, trailing zeros
// trimmed: 0.0625 → "6.25%", 0.05 → "5%".
func Rate(v float64) string {
	r := math.Round(v*10000) / 100
	return strconv.FormatFloat(r, 'f', -1, 64) + "%"
}

// Dollars formats rounded dollars with grouping: 5391.4 → "$5,391".
func Dollars(v float64) string {
	return Currency(v)
}

// Thousands formats a value scaled to K with at most one decimal: 542000 →
// "$542K", 18400 → "$18.4K".
func Thousands(v float64) string {
	k := math.Round(v/100) / 10
	if k == math.Trunc(k) {
		return "$" + strconv.FormatFloat(k, 'f', 0, 64) + "K"
	}
	return "$" + strconv.FormatFloat(k, 'f', 1, 64) + "K"
}

// Millions formats a value scaled to M with at most two decimals, trailing
// zeros trimmed: 1000000 → "$1M", 1950000 → "$1.95M".
func Millions(v float64) string {
	m := math.Round(v/10000) / 100
	return "$" + strconv.FormatFloat(m, 'f', -1, 64) + "M"
}
