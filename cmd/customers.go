package cmd

import (
	"fmt"

	"runway/internal/cli"
	"runway/internal/config"
	"runway/internal/engine"
	"runway/internal/model"

	"github.com/spf13/cobra"
)

var flagTotalsOnly bool

var customersCmd = &cobra.Command{
	Use:   "customers",
	Short: "Simulate customer acquisition and churn per segment",
	RunE:  runCustomers,
}

func init() {
	customersCmd.Flags().BoolVar(&flagTotalsOnly, "totals-only", false, "Coarse totals without churn accounting")
	rootCmd.AddCommand(customersCmd)
}

func runCustomers(_ *cobra.Command, _ []string) error {
	in, cfg, err := loadInputs()
	if err != nil {
		return err
	}
	horizon := months(cfg)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("CUSTOMERS  %d months", horizon)))

	segments := []struct {
		seg model.Segment
		cfg config.SegmentConfig
	}{
		{in.B2B, cfg.B2B},
		{in.B2C, cfg.B2C},
	}

	for _, s := range segments {
		gm, ok := model.ParseGrowthModel(s.cfg.Model)
		if !ok {
			gm = model.GrowthFixed
		}

		fmt.Println()
		if flagTotalsOnly {
			// Linear growth as an absolute monthly ramp in this mode
			totals, err := engine.ProjectCustomerTotal(s.seg.Total, s.seg.New, horizon, gm,
				int(s.cfg.LinearPct), s.cfg.ExponentialPct)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(totals))
			for m, total := range totals {
				rows = append(rows, []string{fmt.Sprintf("M%d", m), cli.FormatCount(int64(total))})
			}
			fmt.Println(cli.RenderTable(cli.Table{
				Title:   fmt.Sprintf("%s (%s, totals only)", s.seg.Label, gm),
				Headers: []string{"Month", "Total"},
				Rows:    rows,
			}))
			continue
		}

		flow, err := engine.ProjectCustomerFlow(s.seg, horizon, gm, s.cfg.LinearPct, s.cfg.ExponentialPct)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, flow.Months())
		for m := 0; m < flow.Months(); m++ {
			rows = append(rows, []string{
				fmt.Sprintf("M%d", m),
				"+" + cli.FormatCount(int64(flow.New[m])),
				"-" + cli.FormatCount(int64(flow.Churned[m])),
				cli.FormatCount(int64(flow.Total[m])),
			})
		}
		fmt.Println(cli.RenderTable(cli.Table{
			Title:   fmt.Sprintf("%s (%s, %s churn)", s.seg.Label, gm, cli.FormatPercent(s.seg.ChurnRate)),
			Headers: []string{"Month", "New", "Churned", "Total"},
			Rows:    rows,
		}))
	}

	fmt.Println()
	return nil
}
