package engine

import (
	"fmt"
	"strconv"
)

// FormatMoney renders an amount with thousands separators and no decimals,
// e.g. 1234567.8 -> "1,234,568".
func FormatMoney(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	s := strconv.FormatFloat(v, 'f', 0, 64)
	out := make([]byte, 0, len(s)+len(s)/3)
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}

	if neg {
		return "-" + string(out)
	}
	return string(out)
}

// FormatPercent renders a ratio already expressed in percent with two
// decimals, e.g. 21.0 -> "21.00%".
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}
