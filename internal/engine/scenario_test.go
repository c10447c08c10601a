package engine

import (
	"errors"
	"testing"

	"runway/internal/model"
)

var testScenarios = []model.Scenario{
	{Name: "Best Case", RevenueMultiplier: 1.25, ExpenseMultiplier: 0.75, Color: "#a6e3a1"},
	{Name: "Normal Case", RevenueMultiplier: 1.0, ExpenseMultiplier: 1.0, Color: "#89b4fa"},
	{Name: "Worst Case", RevenueMultiplier: 0.75, ExpenseMultiplier: 1.25, Color: "#f38ba8"},
}

func TestProjectScenariosNormalCase(t *testing.T) {
	out, err := ProjectScenarios(100000, 10000, 20000, 2, model.GrowthFixed, 0, 0,
		[]model.Scenario{{Name: "Normal Case", RevenueMultiplier: 1.0, ExpenseMultiplier: 1.0}})
	if err != nil {
		t.Fatalf("ProjectScenarios() error = %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("got %d projections, want 1", len(out))
	}

	p := out[0]
	checkSeries(t, p.Revenue, []float64{10000, 10000, 10000})
	// Month 0 records the starting balance. Month 1 subtracts the base
	// burn of 10000, month 2 a burn grown by the 2% expense drift.
	checkSeries(t, p.Cash, []float64{100000, 90000, 79600})
}

func TestProjectScenariosScalesGrowthCoefficients(t *testing.T) {
	// A 2x revenue multiplier must double both the starting revenue and
	// the linear growth rate: the optimistic case grows faster, not just
	// from a higher base.
	out, err := ProjectScenarios(100000, 10000, 20000, 2, model.GrowthLinear, 5, 0,
		[]model.Scenario{{Name: "Double", RevenueMultiplier: 2.0, ExpenseMultiplier: 1.0}})
	if err != nil {
		t.Fatalf("ProjectScenarios() error = %v", err)
	}
	checkSeries(t, out[0].Revenue, []float64{20000, 22000, 24000})
}

func TestProjectScenariosOrderAndShape(t *testing.T) {
	out, err := ProjectScenarios(50000, 8000, 12000, 6, model.GrowthExponential, 0, 10, testScenarios)
	if err != nil {
		t.Fatalf("ProjectScenarios() error = %v", err)
	}
	if len(out) != len(testScenarios) {
		t.Fatalf("got %d projections, want %d", len(out), len(testScenarios))
	}
	for i, p := range out {
		if p.Name != testScenarios[i].Name {
			t.Errorf("projection %d: name = %q, want %q", i, p.Name, testScenarios[i].Name)
		}
		if p.Color != testScenarios[i].Color {
			t.Errorf("projection %d: color = %q, want %q", i, p.Color, testScenarios[i].Color)
		}
		if len(p.Revenue) != 7 || len(p.Cash) != 7 {
			t.Errorf("projection %d: series lengths = %d/%d, want 7", i, len(p.Revenue), len(p.Cash))
		}
	}
}

func TestProjectScenariosBestBeatsWorst(t *testing.T) {
	out, err := ProjectScenarios(100000, 10000, 20000, 12, model.GrowthLinear, 10, 0, testScenarios)
	if err != nil {
		t.Fatalf("ProjectScenarios() error = %v", err)
	}
	best, worst := out[0].Cash.Last(), out[2].Cash.Last()
	if best <= worst {
		t.Errorf("best case final cash %v should exceed worst case %v", best, worst)
	}
}

func TestProjectScenariosErrors(t *testing.T) {
	if _, err := ProjectScenarios(-1, 10000, 20000, 3, model.GrowthFixed, 0, 0, testScenarios); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative cash: error = %v, want ErrInvalidInput", err)
	}
	if _, err := ProjectScenarios(100000, 10000, 20000, 3, "boom", 0, 0, testScenarios); !errors.Is(err, ErrInvalidModel) {
		t.Errorf("unknown model: error = %v, want ErrInvalidModel", err)
	}
}

func TestSummarizeScenarios(t *testing.T) {
	out, err := SummarizeScenarios(100000, 10000, 20000, testScenarios)
	if err != nil {
		t.Fatalf("SummarizeScenarios() error = %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("got %d summaries, want 3", len(out))
	}

	best := out[0]
	almostEqual(t, best.AdjustedRevenue, 12500, 1e-9)
	almostEqual(t, best.AdjustedExpenses, 15000, 1e-9)
	almostEqual(t, best.BurnRate, 2500, 1e-9)
	almostEqual(t, best.RunwayMonths, 40, 1e-9)

	normal := out[1]
	almostEqual(t, normal.BurnRate, 10000, 1e-9)
	almostEqual(t, normal.RunwayMonths, 10, 1e-9)
}
