package format

import (
	"fmt"
	"strings"
)

// Currency formats an amount in minor units for display in fee tables.
// Whole amounts drop the cents: Currency(60000, "USD") => "US $600".
func Currency(minor int64, currency string) string {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	neg := minor < 0
	if neg {
		minor = -minor
	}
	major := minor / 100
	cents := minor % 100
	amount := thousandSep(major)
	if cents != 0 {
		amount += fmt.Sprintf(".%02d", cents)
	}
	var out string
	switch currency {
	case "USD", "":
		out = "US $" + amount
	case "EUR":
		out = "€" + amount
	default:
		out = currency + " " + amount
	}
	if neg {
		return "-" + out
	}
	return out
}

func thousandSep(n int64) string {
	s := fmt.Sprintf("%d", n)
	var b strings.Builder
	for i, c := range s {
		if i != 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return b.String()
}
