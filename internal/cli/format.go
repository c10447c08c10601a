// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMoney formats a currency amount, with comma separators above a
// thousand and cents only for small amounts.
// e.g., 1234567.8 -> "€1,234,568", 42.5 -> "€42.50"
func FormatMoney(v float64) string {
	if v < 0 {
		return "-" + FormatMoney(-v)
	}
	if v >= 1000 {
		return "€" + FormatCount(int64(math.Round(v)))
	}
	if v >= 100 {
		return fmt.Sprintf("€%.0f", v)
	}
	return fmt.Sprintf("€%.2f", v)
}

// FormatMonths formats a runway length in months. Infinite values (a
// company that never churns or never burns) render as the infinity sign.
func FormatMonths(v float64) string {
	if math.IsInf(v, 1) {
		return "∞"
	}
	return fmt.Sprintf("%.1f mo", v)
}

// FormatCount adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatCount(n int64) string {
	if n < 0 {
		return "-" + FormatCount(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a value already scaled to percent.
// e.g., 4.4 -> "4.4%"
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// FormatSignedPercent is FormatPercent with an explicit sign for growth
// figures. e.g., 25.0 -> "+25.0%"
func FormatSignedPercent(v float64) string {
	if v >= 0 {
		return "+" + FormatPercent(v)
	}
	return FormatPercent(v)
}

// FormatRatio formats a unitless multiple such as LTV:CAC.
func FormatRatio(v float64) string {
	if math.IsInf(v, 1) {
		return "∞"
	}
	return fmt.Sprintf("%.2fx", v)
}

// FormatDelta formats a money difference with an explicit sign.
func FormatDelta(current, previous float64) string {
	delta := current - previous
	if delta >= 0 {
		return "+" + FormatMoney(delta)
	}
	return "-" + FormatMoney(-delta)
}
