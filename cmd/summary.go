package cmd

import (
	"fmt"
	"math"

	"runway/internal/cli"
	"runway/internal/engine"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Current burn, runway and unit economics",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	in, cfg, err := loadInputs()
	if err != nil {
		return err
	}

	snap, err := engine.Evaluate(in, cfg.Revenue.Previous)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("RUNWAY  Financial Position"))
	fmt.Println()

	runway := cli.FormatMonths(snap.RunwayMonths)
	if snap.BurnRate <= 0 {
		runway = "∞ (cash-flow positive)"
	}

	rows := [][]string{
		{"Cash Balance", cli.FormatMoney(in.CashBalance)},
		{"Monthly Revenue", cli.FormatMoney(in.MonthlyRevenue)},
		{"Monthly Expenses", cli.FormatMoney(in.MonthlyExpenses)},
		{"---"},
		{"Burn Rate", cli.FormatMoney(snap.BurnRate)},
		{"Runway", runway},
		{"MoM Growth", cli.FormatSignedPercent(snap.MoMGrowthPct)},
	}
	fmt.Println(cli.RenderTable(cli.Table{Title: "Position", Rows: rows}))

	b := snap.Blended
	ltv := cli.FormatMoney(b.LTV)
	lifetime := cli.FormatMonths(b.AvgLifetime)
	if math.IsInf(b.AvgLifetime, 1) {
		ltv, lifetime = "∞", "∞"
	}
	econRows := [][]string{
		{"Customers", cli.FormatCount(int64(b.TotalCustomers))},
		{"New / month", cli.FormatCount(int64(b.NewCustomers))},
		{"ARPU", cli.FormatMoney(b.ARPU)},
		{"---"},
		{"Blended CAC", cli.FormatMoney(b.WeightedCAC)},
		{"Blended Churn", cli.FormatPercent(b.WeightedChurn)},
		{"Avg Lifetime", lifetime},
		{"LTV", ltv},
		{"LTV : CAC", cli.FormatRatio(b.LTVCACRatio)},
		{"Conversion", cli.FormatPercent(b.ConversionRate)},
	}
	fmt.Println(cli.RenderTable(cli.Table{Title: "Unit Economics", Rows: econRows}))

	// Straight-line cash curve at current burn
	if snap.BurnRate > 0 {
		series, err := engine.ProjectCash(in.CashBalance, snap.BurnRate, months(cfg))
		if err != nil {
			return err
		}
		fmt.Printf("  %s  %s\n", cli.Muted("Cash at constant burn"), cli.RenderSparkline(series))
		if m := series.FirstNonPositive(); m >= 0 {
			fmt.Printf("  %s\n", cli.Bad(fmt.Sprintf("Out of cash in month %d", m)))
		}
		fmt.Println()
	}

	return nil
}
