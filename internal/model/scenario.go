package model

// Scenario describes one what-if case as multipliers applied to the
// baseline inputs before projecting.
type Scenario struct {
	Name               string
	RevenueMultiplier  float64 // scales initial revenue and growth coefficients
	ExpenseMultiplier  float64 // scales monthly expenses
	CustomerMultiplier float64 // scales segment acquisition in customer views
	Color              string  // hex color used by terminal output
}

// ScenarioProjection is the month-by-month outcome of one scenario.
// Revenue and Cash are aligned: index m is the state at month m, with
// Cash[m] recorded before that month's net flow is applied.
type ScenarioProjection struct {
	Name    string
	Revenue Series
	Cash    Series
	Color   string
}

// ScenarioSummary condenses a scenario to its headline numbers.
type ScenarioSummary struct {
	Name             string
	AdjustedRevenue  float64
	AdjustedExpenses float64
	BurnRate         float64
	RunwayMonths     float64
	Color            string
}
