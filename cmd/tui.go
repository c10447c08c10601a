package cmd

import (
	"fmt"

	"runway/internal/tui"
	"runway/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	in, cfg, err := loadInputs()
	if err != nil {
		return err
	}

	theme.SetActive(cfg.Appearance.Theme)
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(cfg, in, months(cfg))
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
