package tui

import (
	"fmt"
	"strings"

	"runway/internal/cli"
	"runway/internal/tui/components"
	"runway/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// renderGrowthTab shows the revenue projection under the active growth
// model, plus the scenario-adjusted revenue curves.
func (a App) renderGrowthTab(cw int) string {
	t := theme.Active

	growth := 0.0
	if len(a.revenue) > 0 && a.revenue[0] > 0 {
		growth = (a.revenue.Last() - a.revenue[0]) / a.revenue[0] * 100
	}

	cards := components.MetricCardRow([]components.Metric{
		{Label: "Revenue now", Value: cli.FormatMoney(a.inputs.MonthlyRevenue)},
		{Label: fmt.Sprintf("Revenue M%d", a.months), Value: cli.FormatMoney(a.revenue.Last())},
		{Label: "Total growth", Value: cli.FormatSignedPercent(growth), ValueColor: t.Green},
		{Label: "Model", Value: string(a.gm), Note: "press m to cycle"},
	}, cw)

	inner := components.CardInnerWidth(cw)
	chartH := 8
	chart := components.BarChart(downsample(a.revenue, (inner-8)/2), chartH, t.Blue)
	chartCard := components.ContentCard("Monthly revenue", chart, cw)

	var rows strings.Builder
	for i, proj := range a.projections {
		sc := a.scenarios[i]
		color := lipgloss.Color(proj.Color)
		rows.WriteString(lipgloss.NewStyle().Foreground(color).Render(fmt.Sprintf("%-12s ", proj.Name)))
		rows.WriteString(components.Sparkline(downsample(proj.Revenue, inner-30), color))
		rows.WriteString(lipgloss.NewStyle().Foreground(t.TextPrimary).Render(
			fmt.Sprintf(" %12s", cli.FormatMoney(proj.Revenue.Last()))))
		rows.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Render(
			fmt.Sprintf("  ×%.2f", sc.RevenueMultiplier)))
		rows.WriteString("\n")
	}
	scenarioCard := components.ContentCard("Scenario revenue", strings.TrimRight(rows.String(), "\n"), cw)

	return strings.Join([]string{cards, chartCard, scenarioCard}, "\n")
}
