package cmd

import (
	"fmt"
	"os"

	"runway/internal/config"
	"runway/internal/model"
	"runway/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagMonths       int
	flagCash         float64
	flagRevenue      float64
	flagExpenses     float64
	flagPrevious     float64
	flagGrowthModel  string
	flagDBPath       string
	flagFromSnapshot bool
)

var rootCmd = &cobra.Command{
	Use:   "runway",
	Short: "Startup financial projection CLI",
	Long:  "Model burn, runway, growth scenarios and customer economics from your terminal.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&flagMonths, "months", "n", 0, "Projection horizon in months (default from config)")
	rootCmd.PersistentFlags().Float64Var(&flagCash, "cash", -1, "Override cash balance")
	rootCmd.PersistentFlags().Float64Var(&flagRevenue, "revenue", -1, "Override monthly revenue")
	rootCmd.PersistentFlags().Float64Var(&flagExpenses, "expenses", -1, "Override monthly expenses")
	rootCmd.PersistentFlags().Float64Var(&flagPrevious, "previous", -1, "Override last month's revenue")
	rootCmd.PersistentFlags().StringVarP(&flagGrowthModel, "model", "m", "", "Growth model: fixed, linear, exponential")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", store.DefaultPath(), "Snapshot database path")
	rootCmd.PersistentFlags().BoolVar(&flagFromSnapshot, "from-snapshot", false, "Start from the latest saved snapshot instead of config")
}

// loadInputs resolves the effective inputs: config values, optionally
// replaced by the latest snapshot, then flag overrides on top.
func loadInputs() (model.Inputs, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return model.Inputs{}, cfg, err
	}

	in := cfg.Inputs()

	if flagFromSnapshot {
		db, err := store.Open(flagDBPath)
		if err != nil {
			return in, cfg, err
		}
		defer func() { _ = db.Close() }()

		snap, err := db.LatestSnapshot()
		if err != nil {
			return in, cfg, err
		}
		if snap == nil {
			return in, cfg, fmt.Errorf("no snapshot saved yet; run `runway snapshot save` first")
		}
		in = snap.Inputs
	}

	if flagCash >= 0 {
		in.CashBalance = flagCash
	}
	if flagRevenue >= 0 {
		in.MonthlyRevenue = flagRevenue
	}
	if flagExpenses >= 0 {
		in.MonthlyExpenses = flagExpenses
	}
	if flagPrevious >= 0 {
		cfg.Revenue.Previous = flagPrevious
	}
	if flagGrowthModel != "" {
		if _, ok := model.ParseGrowthModel(flagGrowthModel); !ok {
			return in, cfg, fmt.Errorf("unknown growth model %q (fixed, linear, exponential)", flagGrowthModel)
		}
		cfg.Revenue.Model = flagGrowthModel
	}

	return in, cfg, nil
}

// months resolves the projection horizon: flag, then config, then 12.
func months(cfg config.Config) int {
	if flagMonths > 0 {
		return flagMonths
	}
	if cfg.Projection.Months > 0 {
		return cfg.Projection.Months
	}
	return 12
}

// growthModel resolves the revenue growth model from config.
func growthModel(cfg config.Config) model.GrowthModel {
	gm, ok := model.ParseGrowthModel(cfg.Revenue.Model)
	if !ok {
		return model.GrowthFixed
	}
	return gm
}
