package tui

import (
	"fmt"
	"strings"

	"runway/internal/cli"
	"runway/internal/model"
	"runway/internal/tui/components"
	"runway/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// renderCustomersTab shows blended unit economics and the per-segment
// flow simulations.
func (a App) renderCustomersTab(cw int) string {
	t := theme.Active
	b := a.snapshot.Blended

	ratioColor := t.Green
	if b.LTVCACRatio < 3 {
		ratioColor = t.Orange
	}
	if b.LTVCACRatio < 1 {
		ratioColor = t.Red
	}

	topCards := components.MetricCardRow([]components.Metric{
		{Label: "Customers", Value: cli.FormatCount(int64(b.TotalCustomers)), Note: fmt.Sprintf("+%d new/mo", b.NewCustomers)},
		{Label: "ARPU", Value: cli.FormatMoney(b.ARPU)},
		{Label: "Blended CAC", Value: cli.FormatMoney(b.WeightedCAC)},
		{Label: "Blended churn", Value: cli.FormatPercent(b.WeightedChurn), Note: "monthly"},
	}, cw)

	ltv := cli.FormatMoney(b.LTV)
	lifetime := cli.FormatMonths(b.AvgLifetime)
	if b.WeightedChurn == 0 {
		ltv, lifetime = "∞", "∞"
	}
	econCards := components.MetricCardRow([]components.Metric{
		{Label: "LTV", Value: ltv},
		{Label: "LTV : CAC", Value: cli.FormatRatio(b.LTVCACRatio), ValueColor: ratioColor},
		{Label: "Avg lifetime", Value: lifetime},
		{Label: "Conversion", Value: cli.FormatPercent(b.ConversionRate), Note: "new of total"},
	}, cw)

	widths := components.LayoutRow(cw, 2)
	b2b := a.renderSegmentCard(a.inputs.B2B, a.b2bFlow, widths[0])
	b2c := a.renderSegmentCard(a.inputs.B2C, a.b2cFlow, widths[1])
	segRow := components.CardRow([]string{b2b, b2c})

	return strings.Join([]string{topCards, econCards, segRow}, "\n")
}

func (a App) renderSegmentCard(seg model.Segment, flow model.CustomerFlow, outerWidth int) string {
	t := theme.Active
	inner := components.CardInnerWidth(outerWidth)

	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Render
	val := lipgloss.NewStyle().Foreground(t.TextPrimary).Render

	var body strings.Builder
	body.WriteString(muted("Now     ") + val(cli.FormatCount(int64(seg.Total))))
	body.WriteString(muted("   CAC ") + val(cli.FormatMoney(seg.CAC)))
	body.WriteString(muted("   Churn ") + val(cli.FormatPercent(seg.ChurnRate)))
	body.WriteString("\n")

	if n := flow.Months(); n > 0 {
		last := n - 1
		body.WriteString(muted(fmt.Sprintf("M%-6d ", last)) + val(cli.FormatCount(int64(flow.Total[last]))))
		churnedTotal := 0
		for _, c := range flow.Churned {
			churnedTotal += c
		}
		body.WriteString(muted("   lost ") + val(cli.FormatCount(int64(churnedTotal))))
		body.WriteString("\n")

		totals := make([]float64, n)
		for i, v := range flow.Total {
			totals[i] = float64(v)
		}
		body.WriteString(components.Sparkline(downsample(totals, inner-2), t.Blue))
	}

	return components.ContentCard(seg.Label, body.String(), outerWidth)
}
