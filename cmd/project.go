package cmd

import (
	"fmt"

	"runway/internal/cli"
	"runway/internal/engine"

	"github.com/spf13/cobra"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project revenue under the configured growth model",
	RunE:  runProject,
}

func init() {
	rootCmd.AddCommand(projectCmd)
}

func runProject(_ *cobra.Command, _ []string) error {
	in, cfg, err := loadInputs()
	if err != nil {
		return err
	}
	gm := growthModel(cfg)
	horizon := months(cfg)

	series, err := engine.ProjectRevenue(in.MonthlyRevenue, horizon, gm,
		cfg.Revenue.LinearPct, cfg.Revenue.ExponentialPct)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("REVENUE  %s · %d months", gm, horizon)))
	fmt.Println()

	rows := make([][]string, 0, len(series))
	for m, v := range series {
		delta := ""
		if m > 0 {
			delta = cli.FormatDelta(v, series[m-1])
		}
		rows = append(rows, []string{fmt.Sprintf("M%d", m), cli.FormatMoney(v), delta})
	}
	fmt.Println(cli.RenderTable(cli.Table{
		Headers: []string{"Month", "Revenue", "Change"},
		Rows:    rows,
	}))

	fmt.Printf("  %s  %s\n\n", cli.Muted("Trend"), cli.RenderSparkline(series))
	return nil
}
