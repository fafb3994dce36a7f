package format

import (
	"fmt"
	"strconv"
)

// Thousands formats n with comma separators: 1234567 -> "1,234,567".
func Thousands(n int) string {
	s := strconv.Itoa(n)
	neg := n < 0
	if neg {
		s = s[1:]
	}
	if len(s) <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}

	out := make([]byte, 0, len(s)+len(s)/3+1)
	if neg {
		out = append(out, '-')
	}
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	out = append(out, s[:lead]...)
	for i := lead; i < len(s); i += 3 {
		out = append(out, ',')
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}

// Decimal formats f with two decimal places.
func Decimal(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

// Percent formats a 0..1 fraction as a percentage with one decimal place.
func Percent(fraction float64) string {
	return fmt.Sprintf("%.1f%%", fraction*100)
}

// Compact formats n for narrow axis labels: 950, 1.2k, 34k, 1.5M.
func Compact(n int) string {
	abs := n
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs < 1000:
		return strconv.Itoa(n)
	case abs < 10_000:
		return fmt.Sprintf("%.1fk", float64(n)/1000)
	case abs < 1_000_000:
		return fmt.Sprintf("%dk", n/1000)
	default:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	}
}
