package cmd

import (
	"fmt"

	"runway/internal/cli"
	"runway/internal/config"
	"runway/internal/engine"

	"github.com/spf13/cobra"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "Compare cash projections across best/normal/worst cases",
	RunE:  runScenarios,
}

func init() {
	rootCmd.AddCommand(scenariosCmd)
}

func runScenarios(_ *cobra.Command, _ []string) error {
	in, cfg, err := loadInputs()
	if err != nil {
		return err
	}
	gm := growthModel(cfg)
	horizon := months(cfg)
	scenarios := config.ResolveScenarios(cfg)

	summaries, err := engine.SummarizeScenarios(in.CashBalance, in.MonthlyRevenue, in.MonthlyExpenses, scenarios)
	if err != nil {
		return err
	}
	projections, err := engine.ProjectScenarios(in.CashBalance, in.MonthlyRevenue, in.MonthlyExpenses,
		horizon, gm, cfg.Revenue.LinearPct, cfg.Revenue.ExponentialPct, scenarios)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("SCENARIOS  %s · %d months", gm, horizon)))
	fmt.Println()

	rows := make([][]string, 0, len(summaries))
	for i, s := range summaries {
		runway := cli.FormatMonths(s.RunwayMonths)
		if s.BurnRate <= 0 {
			runway = "∞"
		}
		dry := "—"
		if m := projections[i].Cash.FirstNonPositive(); m >= 0 {
			dry = fmt.Sprintf("M%d", m)
		}
		rows = append(rows, []string{
			s.Name,
			cli.FormatMoney(s.AdjustedRevenue),
			cli.FormatMoney(s.AdjustedExpenses),
			cli.FormatMoney(s.BurnRate),
			runway,
			cli.FormatMoney(projections[i].Cash.Last()),
			dry,
		})
	}
	fmt.Println(cli.RenderTable(cli.Table{
		Headers: []string{"Scenario", "Revenue", "Expenses", "Burn", "Runway", "Cash @ end", "Dry"},
		Rows:    rows,
	}))

	for _, p := range projections {
		fmt.Printf("  %-12s %s\n", cli.Muted(p.Name), cli.RenderSparkline(p.Cash))
	}
	fmt.Println()

	return nil
}
