package cmd

import (
	"fmt"

	"runway/internal/cli"
	"runway/internal/investors"
	"runway/internal/store"

	"github.com/spf13/cobra"
)

var flagInvestorType string

var investorsCmd = &cobra.Command{
	Use:   "investors",
	Short: "Manage the fundraising target list",
}

var investorsImportCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import a directory CSV export, replacing the stored list",
	Args:  cobra.ExactArgs(1),
	RunE:  runInvestorsImport,
}

var investorsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored investors",
	RunE:  runInvestorsList,
}

func init() {
	investorsListCmd.Flags().StringVarP(&flagInvestorType, "type", "t", "", "Filter by type (e.g. VC, PE)")
	investorsCmd.AddCommand(investorsImportCmd, investorsListCmd)
	rootCmd.AddCommand(investorsCmd)
}

func runInvestorsImport(_ *cobra.Command, args []string) error {
	list, err := investors.ImportFile(args[0])
	if err != nil {
		return err
	}
	if len(list) == 0 {
		return fmt.Errorf("no investors found in %s", args[0])
	}

	db, err := store.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := db.ReplaceInvestors(list); err != nil {
		return err
	}
	fmt.Printf("  Imported %s investors from %s\n", cli.FormatCount(int64(len(list))), args[0])
	return nil
}

func runInvestorsList(_ *cobra.Command, _ []string) error {
	db, err := store.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	list, err := db.ListInvestors(flagInvestorType)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println("  No investors stored. Import a CSV with `runway investors import`.")
		return nil
	}

	rows := make([][]string, 0, len(list))
	for _, inv := range list {
		rows = append(rows, []string{inv.FirmName, inv.Type, inv.Location, inv.Focus})
	}
	fmt.Println()
	fmt.Println(cli.RenderTable(cli.Table{
		Headers: []string{"Firm", "Type", "Location", "Focus"},
		Rows:    rows,
	}))
	return nil
}
