package config

import "runway/internal/model"

// Built-in scenario set. Best case sells more and spends less, worst
// case the reverse; the customer multiplier scales segment acquisition
// in the customer views.
var defaultScenarios = []model.Scenario{
	{Name: "Best Case", RevenueMultiplier: 1.2, ExpenseMultiplier: 0.9, CustomerMultiplier: 1.15, Color: "#2ca02c"},
	{Name: "Normal Case", RevenueMultiplier: 1.0, ExpenseMultiplier: 1.0, CustomerMultiplier: 1.10, Color: "#1f77b4"},
	{Name: "Worst Case", RevenueMultiplier: 0.8, ExpenseMultiplier: 1.1, CustomerMultiplier: 1.05, Color: "#d62728"},
}

// DefaultScenarios returns a copy of the built-in scenario set.
func DefaultScenarios() []model.Scenario {
	out := make([]model.Scenario, len(defaultScenarios))
	copy(out, defaultScenarios)
	return out
}

// ResolveScenarios returns the configured scenario set, falling back to
// the built-in one when the config defines none. A configured scenario
// without a color inherits the built-in color at the same position.
func ResolveScenarios(cfg Config) []model.Scenario {
	if len(cfg.Scenarios) == 0 {
		return DefaultScenarios()
	}

	out := make([]model.Scenario, 0, len(cfg.Scenarios))
	for i, sc := range cfg.Scenarios {
		color := sc.Color
		if color == "" && i < len(defaultScenarios) {
			color = defaultScenarios[i].Color
		}
		out = append(out, model.Scenario{
			Name:               sc.Name,
			RevenueMultiplier:  sc.RevenueMultiplier,
			ExpenseMultiplier:  sc.ExpenseMultiplier,
			CustomerMultiplier: sc.CustomerMultiplier,
			Color:              color,
		})
	}
	return out
}
