package components

import (
	"fmt"
	"math"

	"runway/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// runwayHealthColor maps remaining runway against the horizon to a
// health color. Low remaining runway is the danger end.
func runwayHealthColor(pct float64) string {
	t := theme.Active
	switch {
	case pct < 0.25:
		return string(t.Red)
	case pct < 0.5:
		return string(t.Orange)
	case pct < 0.75:
		return string(t.Yellow)
	default:
		return string(t.Green)
	}
}

// RunwayBar renders a labeled gauge of runway months against the
// projection horizon. Infinite runway renders as a full green bar.
func RunwayBar(label string, runwayMonths float64, horizonMonths int, labelW, barWidth int) string {
	t := theme.Active

	pct := 1.0
	readout := "∞"
	if !math.IsInf(runwayMonths, 1) && horizonMonths > 0 {
		pct = runwayMonths / float64(horizonMonths)
		if pct < 0 {
			pct = 0
		}
		if pct > 1 {
			pct = 1
		}
		readout = fmt.Sprintf("%.1f mo", runwayMonths)
	}

	bar := progress.New(
		progress.WithSolidFill(runwayHealthColor(pct)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(runwayHealthColor(pct))).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(pct) +
		spaceStyle.Render(" ") +
		valStyle.Render(readout)
}
