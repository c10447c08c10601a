package tui

import (
	"fmt"
	"strconv"
	"strings"

	"runway/internal/config"
	"runway/internal/model"
	"runway/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// setupValues holds the raw form inputs for the first-run wizard.
// Amounts stay strings until the form completes so validation can
// point at the offending field.
type setupValues struct {
	cash     string
	revenue  string
	previous string
	expenses string
	theme    string
}

func setupValuesFrom(in model.Inputs, cfg config.Config) setupValues {
	return setupValues{
		cash:     formatAmount(in.CashBalance),
		revenue:  formatAmount(in.MonthlyRevenue),
		previous: formatAmount(cfg.Revenue.Previous),
		expenses: formatAmount(in.MonthlyExpenses),
		theme:    cfg.Appearance.Theme,
	}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func validateAmount(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if v < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

func newSetupForm(vals *setupValues) *huh.Form {
	themeOptions := make([]huh.Option[string], len(theme.All))
	for i, t := range theme.All {
		themeOptions[i] = huh.NewOption(t.Name, t.Name)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Cash balance").
				Description("Money in the bank today.").
				Validate(validateAmount).
				Value(&vals.cash),
			huh.NewInput().
				Title("Monthly revenue").
				Validate(validateAmount).
				Value(&vals.revenue),
			huh.NewInput().
				Title("Last month's revenue").
				Description("Used for month-over-month growth.").
				Validate(validateAmount).
				Value(&vals.previous),
			huh.NewInput().
				Title("Monthly expenses").
				Validate(validateAmount).
				Value(&vals.expenses),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOptions...).
				Value(&vals.theme),
		),
	)
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.applySetup()
		a.needSetup = false
		a.setupForm = nil
		a.recompute()
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

// applySetup folds the validated form values into the config and the
// live inputs, and persists them. Save failures are non-fatal: the
// session keeps the entered values.
func (a *App) applySetup() {
	parse := func(s string) float64 {
		v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return v
	}

	a.inputs.CashBalance = parse(a.setupVals.cash)
	a.inputs.MonthlyRevenue = parse(a.setupVals.revenue)
	a.inputs.MonthlyExpenses = parse(a.setupVals.expenses)

	a.cfg.Company.CashBalance = a.inputs.CashBalance
	a.cfg.Company.MonthlyExpenses = a.inputs.MonthlyExpenses
	a.cfg.Revenue.Current = a.inputs.MonthlyRevenue
	a.cfg.Revenue.Previous = parse(a.setupVals.previous)
	a.cfg.Appearance.Theme = a.setupVals.theme
	theme.SetActive(a.setupVals.theme)

	_ = config.Save(a.cfg)
}
