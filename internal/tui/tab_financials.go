package tui

import (
	"fmt"
	"math"
	"strings"

	"runway/internal/cli"
	"runway/internal/engine"
	"runway/internal/tui/components"
	"runway/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// renderFinancialsTab shows the headline position and the scenario cash
// projections.
func (a App) renderFinancialsTab(cw int) string {
	t := theme.Active
	snap := a.snapshot

	burnColor := t.Red
	burnNote := "per month"
	if snap.BurnRate <= 0 {
		burnColor = t.Green
		burnNote = "cash-flow positive"
	}

	runwayValue := cli.FormatMonths(snap.RunwayMonths)
	runwayColor := t.Green
	switch {
	case snap.BurnRate <= 0:
		runwayValue = "∞"
	case snap.RunwayMonths < 6:
		runwayColor = t.Red
	case snap.RunwayMonths < 12:
		runwayColor = t.Orange
	}

	growthColor := t.Green
	if snap.MoMGrowthPct < 0 {
		growthColor = t.Red
	}

	cards := components.MetricCardRow([]components.Metric{
		{Label: "Cash Balance", Value: cli.FormatMoney(a.inputs.CashBalance)},
		{Label: "Monthly Burn", Value: cli.FormatMoney(snap.BurnRate), Note: burnNote, ValueColor: burnColor},
		{Label: "Runway", Value: runwayValue, ValueColor: runwayColor},
		{Label: "MoM Growth", Value: cli.FormatSignedPercent(snap.MoMGrowthPct), ValueColor: growthColor},
	}, cw)

	summaries, err := engine.SummarizeScenarios(a.inputs.CashBalance, a.inputs.MonthlyRevenue,
		a.inputs.MonthlyExpenses, a.scenarios)
	if err != nil {
		return cards
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var table strings.Builder
	table.WriteString(labelStyle.Render(fmt.Sprintf("%-12s %12s %10s %14s %10s", "Scenario", "Burn", "Runway", "Cash @ end", "Dry month")))
	table.WriteString("\n")
	for i, s := range summaries {
		proj := a.projections[i]

		runway := cli.FormatMonths(s.RunwayMonths)
		if s.BurnRate <= 0 {
			runway = "∞"
		}
		dry := "—"
		if m := proj.Cash.FirstNonPositive(); m >= 0 {
			dry = fmt.Sprintf("M%d", m)
		}

		nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Bold(true)
		table.WriteString(nameStyle.Render(fmt.Sprintf("%-12s", s.Name)))
		table.WriteString(valStyle.Render(fmt.Sprintf(" %12s %10s %14s %10s",
			cli.FormatMoney(s.BurnRate), runway, cli.FormatMoney(proj.Cash.Last()), dry)))
		table.WriteString("\n")
	}
	scenarioCard := components.ContentCard(fmt.Sprintf("Scenarios · %d months", a.months),
		strings.TrimRight(table.String(), "\n"), cw)

	inner := components.CardInnerWidth(cw)

	var gauges strings.Builder
	for _, s := range summaries {
		months := s.RunwayMonths
		if s.BurnRate <= 0 {
			months = math.Inf(1)
		}
		gauges.WriteString(components.RunwayBar(s.Name, months, a.months, 12, inner-24))
		gauges.WriteString("\n")
	}
	gaugeCard := components.ContentCard("Runway vs horizon", strings.TrimRight(gauges.String(), "\n"), cw)

	var spark strings.Builder
	for _, proj := range a.projections {
		line := components.Sparkline(downsample(proj.Cash, inner-24), lipgloss.Color(proj.Color))
		spark.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(proj.Color)).Render(fmt.Sprintf("%-12s ", proj.Name)))
		spark.WriteString(line)
		spark.WriteString("\n")
	}
	sparkCard := components.ContentCard("Cash trajectory", strings.TrimRight(spark.String(), "\n"), cw)

	return strings.Join([]string{cards, scenarioCard, gaugeCard, sparkCard}, "\n")
}

// downsample reduces a series to at most width points, keeping endpoints.
func downsample(values []float64, width int) []float64 {
	if width < 2 || len(values) <= width {
		return values
	}
	out := make([]float64, width)
	for i := range out {
		idx := int(math.Round(float64(i) / float64(width-1) * float64(len(values)-1)))
		out[i] = values[idx]
	}
	return out
}
