package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"runway/internal/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to runway!")
	fmt.Println()

	askAmount := func(prompt string, current float64) float64 {
		fmt.Printf("  %s [%s]\n", prompt, strconv.FormatFloat(current, 'f', -1, 64))
		fmt.Print("     > ")
		line, _ := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "" {
			return current
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil || v < 0 {
			fmt.Println("     Keeping previous value.")
			return current
		}
		return v
	}

	cfg.Company.CashBalance = askAmount("1. Cash balance", cfg.Company.CashBalance)
	cfg.Revenue.Current = askAmount("2. Monthly revenue", cfg.Revenue.Current)
	cfg.Revenue.Previous = askAmount("3. Last month's revenue", cfg.Revenue.Previous)
	cfg.Company.MonthlyExpenses = askAmount("4. Monthly expenses", cfg.Company.MonthlyExpenses)

	fmt.Println("  5. Revenue growth model")
	fmt.Println("     (1) fixed [default]")
	fmt.Println("     (2) linear")
	fmt.Println("     (3) exponential")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(choice) {
	case "2":
		cfg.Revenue.Model = "linear"
	case "3":
		cfg.Revenue.Model = "exponential"
	default:
		cfg.Revenue.Model = "fixed"
	}
	fmt.Println()

	fmt.Println("  6. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Tokyo Night")
	fmt.Println("     (3) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "tokyo-night"
	case "3":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `runway setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
