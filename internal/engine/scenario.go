package engine

import (
	"fmt"
	"math"

	"runway/internal/model"
)

// expenseGrowthRate is the assumed monthly compounding of expenses in
// scenario projections. Costs drift up 2% a month regardless of scenario.
const expenseGrowthRate = 1.02

// ProjectScenarios runs the cash projection once per scenario. Each
// scenario scales the starting revenue and the growth coefficients by
// its revenue multiplier and the expense base by its expense multiplier,
// so an optimistic case grows faster, not just bigger. Cash at month m
// is recorded before that month's net flow is applied.
func ProjectScenarios(cash, revenue, expenses float64, months int, gm model.GrowthModel, linearPct, expPct float64, scenarios []model.Scenario) ([]model.ScenarioProjection, error) {
	if !isFinite(cash) || !isFinite(revenue) || !isFinite(expenses) {
		return nil, fmt.Errorf("%w: financial arguments must be finite numbers", ErrInvalidInput)
	}
	if cash < 0 || revenue < 0 || expenses < 0 {
		return nil, fmt.Errorf("%w: financial arguments must not be negative", ErrInvalidInput)
	}
	if months < 0 {
		return nil, fmt.Errorf("%w: months must not be negative", ErrInvalidInput)
	}
	if !gm.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidModel, gm)
	}
	for _, sc := range scenarios {
		if !isFinite(sc.RevenueMultiplier) || !isFinite(sc.ExpenseMultiplier) {
			return nil, fmt.Errorf("%w: scenario %q multipliers must be finite numbers", ErrInvalidInput, sc.Name)
		}
	}

	out := make([]model.ScenarioProjection, 0, len(scenarios))
	for _, sc := range scenarios {
		adjRevenue := revenue * sc.RevenueMultiplier
		adjExpenses := expenses * sc.ExpenseMultiplier
		revs, err := ProjectRevenue(adjRevenue, months, gm, linearPct*sc.RevenueMultiplier, expPct*sc.RevenueMultiplier)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
		}

		cashSeries := make(model.Series, 0, months+1)
		balance := cash
		for m := 0; m <= months; m++ {
			cashSeries = append(cashSeries, balance)
			monthExpenses := adjExpenses * math.Pow(expenseGrowthRate, float64(m))
			balance -= burn(revs[m], monthExpenses)
		}

		out = append(out, model.ScenarioProjection{
			Name:    sc.Name,
			Revenue: revs,
			Cash:    cashSeries,
			Color:   sc.Color,
		})
	}
	return out, nil
}

// SummarizeScenarios reduces each scenario to its month-zero burn and
// runway, using the plain multiplier-adjusted revenue and expenses
// without growth.
func SummarizeScenarios(cash, revenue, expenses float64, scenarios []model.Scenario) ([]model.ScenarioSummary, error) {
	if !isFinite(cash) || !isFinite(revenue) || !isFinite(expenses) {
		return nil, fmt.Errorf("%w: financial arguments must be finite numbers", ErrInvalidInput)
	}
	if cash < 0 || revenue < 0 || expenses < 0 {
		return nil, fmt.Errorf("%w: financial arguments must not be negative", ErrInvalidInput)
	}

	out := make([]model.ScenarioSummary, 0, len(scenarios))
	for _, sc := range scenarios {
		adjRevenue := revenue * sc.RevenueMultiplier
		adjExpenses := expenses * sc.ExpenseMultiplier
		b := burn(adjRevenue, adjExpenses)
		out = append(out, model.ScenarioSummary{
			Name:             sc.Name,
			AdjustedRevenue:  adjRevenue,
			AdjustedExpenses: adjExpenses,
			BurnRate:         b,
			RunwayMonths:     Runway(cash, b),
			Color:            sc.Color,
		})
	}
	return out, nil
}
