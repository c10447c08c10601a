package components

import (
	"fmt"
	"math"
	"strings"

	"runway/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline renders a unicode sparkline normalized over the full value
// range, so a cash curve that crosses zero still reads as a decline.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	low, high := values[0], values[0]
	for _, v := range values[1:] {
		if v < low {
			low = v
		}
		if v > high {
			high = v
		}
	}
	span := high - low
	if span == 0 {
		span = 1
	}

	style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for _, v := range values {
		idx := int((v - low) / span * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx])
	}

	return style.Render(buf.String())
}

// BarChart renders a column chart of non-negative values with a y-axis
// ceiling label and per-column month labels. Values below zero render
// as empty columns.
func BarChart(values []float64, height int, color lipgloss.Color) string {
	if len(values) == 0 || height < 2 {
		return Sparkline(values, color)
	}
	t := theme.Active

	peak := 0.0
	for _, v := range values {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	barStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface)
	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	yLabel := formatChartLabel(peak)
	labelW := len(yLabel)

	var b strings.Builder
	for row := height; row >= 1; row-- {
		if row == height {
			b.WriteString(axisStyle.Render(fmt.Sprintf("%*s ┤", labelW, yLabel)))
		} else {
			b.WriteString(axisStyle.Render(fmt.Sprintf("%*s │", labelW, "")))
		}
		threshold := float64(row-1) / float64(height)
		for _, v := range values {
			frac := v / peak
			switch {
			case frac <= 0 || frac <= threshold:
				b.WriteString(axisStyle.Render("  "))
			case frac >= threshold+1.0/float64(height):
				b.WriteString(barStyle.Render("██"))
			default:
				b.WriteString(barStyle.Render("▄▄"))
			}
		}
		b.WriteString("\n")
	}

	// X axis with month ticks every few columns
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s ╰", labelW, "")))
	b.WriteString(axisStyle.Render(strings.Repeat("──", len(values))))
	b.WriteString("\n")
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s  ", labelW, "")))
	tick := tickInterval(len(values))
	for i := range values {
		if i%tick == 0 {
			b.WriteString(axisStyle.Render(fmt.Sprintf("%-*d", 2*tick, i)))
		}
	}

	return b.String()
}

func tickInterval(n int) int {
	switch {
	case n > 24:
		return 6
	case n > 12:
		return 3
	default:
		return 2
	}
}

// formatChartLabel renders an axis value compactly: 1.2M, 340K, 85.
func formatChartLabel(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1_000_000:
		return fmt.Sprintf("%.1fM", v/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("%.0fK", v/1_000)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}
