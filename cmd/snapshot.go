package cmd

import (
	"fmt"

	"runway/internal/cli"
	"runway/internal/engine"
	"runway/internal/store"

	"github.com/spf13/cobra"
)

var flagSnapshotLimit int

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Save and inspect financial snapshots",
}

var snapshotSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Persist the current inputs",
	RunE:  runSnapshotSave,
}

var snapshotShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the latest snapshot",
	RunE:  runSnapshotShow,
}

var snapshotListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved snapshots, newest first",
	RunE:  runSnapshotList,
}

func init() {
	snapshotListCmd.Flags().IntVar(&flagSnapshotLimit, "limit", 10, "Maximum snapshots to list")
	snapshotCmd.AddCommand(snapshotSaveCmd, snapshotShowCmd, snapshotListCmd)
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshotSave(_ *cobra.Command, _ []string) error {
	in, _, err := loadInputs()
	if err != nil {
		return err
	}

	// Reject impossible segment states before they reach the database
	if err := engine.ValidateSegment(in.B2B); err != nil {
		return err
	}
	if err := engine.ValidateSegment(in.B2C); err != nil {
		return err
	}

	db, err := store.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := db.SaveSnapshot(in); err != nil {
		return err
	}
	fmt.Printf("  Snapshot saved to %s\n", flagDBPath)
	return nil
}

func runSnapshotShow(_ *cobra.Command, _ []string) error {
	db, err := store.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	snap, err := db.LatestSnapshot()
	if err != nil {
		return err
	}
	if snap == nil {
		fmt.Println("  No snapshots saved yet.")
		return nil
	}

	in := snap.Inputs
	rows := [][]string{
		{"Saved", snap.SavedAt.Local().Format("2006-01-02 15:04")},
		{"Cash Balance", cli.FormatMoney(in.CashBalance)},
		{"Monthly Revenue", cli.FormatMoney(in.MonthlyRevenue)},
		{"Monthly Expenses", cli.FormatMoney(in.MonthlyExpenses)},
		{"---"},
		{"B2B", fmt.Sprintf("%s customers, CAC %s, churn %s",
			cli.FormatCount(int64(in.B2B.Total)), cli.FormatMoney(in.B2B.CAC), cli.FormatPercent(in.B2B.ChurnRate))},
		{"B2C", fmt.Sprintf("%s customers, CAC %s, churn %s",
			cli.FormatCount(int64(in.B2C.Total)), cli.FormatMoney(in.B2C.CAC), cli.FormatPercent(in.B2C.ChurnRate))},
	}
	fmt.Println()
	fmt.Println(cli.RenderTable(cli.Table{Title: "Latest snapshot", Rows: rows}))
	return nil
}

func runSnapshotList(_ *cobra.Command, _ []string) error {
	db, err := store.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	snaps, err := db.ListSnapshots(flagSnapshotLimit)
	if err != nil {
		return err
	}
	if len(snaps) == 0 {
		fmt.Println("  No snapshots saved yet.")
		return nil
	}

	rows := make([][]string, 0, len(snaps))
	for _, s := range snaps {
		rows = append(rows, []string{
			s.SavedAt.Local().Format("2006-01-02 15:04"),
			cli.FormatMoney(s.Inputs.CashBalance),
			cli.FormatMoney(s.Inputs.MonthlyRevenue),
			cli.FormatMoney(s.Inputs.MonthlyExpenses),
			cli.FormatCount(int64(s.Inputs.B2B.Total + s.Inputs.B2C.Total)),
		})
	}
	fmt.Println()
	fmt.Println(cli.RenderTable(cli.Table{
		Headers: []string{"Saved", "Cash", "Revenue", "Expenses", "Customers"},
		Rows:    rows,
	}))
	return nil
}
