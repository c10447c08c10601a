package engine

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(t *testing.T, got, want, tolerance float64) {
	t.Helper()
	if math.Abs(got-want) > tolerance {
		t.Errorf("got %v, want %v (tolerance %v)", got, want, tolerance)
	}
}

func TestBurnRate(t *testing.T) {
	tests := []struct {
		name     string
		revenue  float64
		expenses float64
		want     float64
	}{
		{"burning", 8000, 20000, 12000},
		{"cash flow positive", 25000, 20000, -5000},
		{"break even", 20000, 20000, 0},
		{"zero revenue", 0, 15000, 15000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BurnRate(tt.revenue, tt.expenses)
			if err != nil {
				t.Fatalf("BurnRate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("BurnRate(%v, %v) = %v, want %v", tt.revenue, tt.expenses, got, tt.want)
			}
		})
	}
}

func TestBurnRateRejectsNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := BurnRate(v, 1000); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("BurnRate(%v, 1000) error = %v, want ErrInvalidInput", v, err)
		}
		if _, err := BurnRate(1000, v); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("BurnRate(1000, %v) error = %v, want ErrInvalidInput", v, err)
		}
	}
}

func TestRunway(t *testing.T) {
	tests := []struct {
		name string
		cash float64
		burn float64
		want float64
	}{
		{"eight months and change", 100000, 12000, 8.333333333333334},
		{"exact", 120000, 10000, 12},
		{"zero burn means not burning", 100000, 0, 0},
		{"negative burn means not burning", 100000, -5000, 0},
		{"no cash", 0, 10000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			almostEqual(t, Runway(tt.cash, tt.burn), tt.want, 1e-9)
		})
	}
}

func TestMoMGrowth(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		want     float64
	}{
		{"growing", 10000, 8000, 25},
		{"shrinking", 8000, 10000, -20},
		{"flat", 5000, 5000, 0},
		{"no previous revenue", 10000, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			almostEqual(t, MoMGrowth(tt.current, tt.previous), tt.want, 1e-9)
		})
	}
}

func TestLTVCACRatio(t *testing.T) {
	almostEqual(t, LTVCACRatio(3000, 1000), 3, 1e-9)
	almostEqual(t, LTVCACRatio(3000, 0), 0, 1e-9)
}

func TestLifetimeFromChurn(t *testing.T) {
	almostEqual(t, LifetimeFromChurn(5), 20, 1e-9)
	almostEqual(t, LifetimeFromChurn(2), 50, 1e-9)
	almostEqual(t, LifetimeFromChurn(100), 1, 1e-9)

	if got := LifetimeFromChurn(0); !math.IsInf(got, 1) {
		t.Errorf("LifetimeFromChurn(0) = %v, want +Inf", got)
	}
}

func TestProjectCash(t *testing.T) {
	series, err := ProjectCash(100000, 10000, 3)
	if err != nil {
		t.Fatalf("ProjectCash() error = %v", err)
	}
	want := []float64{100000, 90000, 80000, 70000}
	if len(series) != len(want) {
		t.Fatalf("got %d values, want %d", len(series), len(want))
	}
	for i, w := range want {
		almostEqual(t, series[i], w, 1e-9)
	}
}

func TestProjectCashGoesNegativeWhenCashRunsOut(t *testing.T) {
	series, err := ProjectCash(25000, 10000, 4)
	if err != nil {
		t.Fatalf("ProjectCash() error = %v", err)
	}
	if got := series.FirstNonPositive(); got != 3 {
		t.Errorf("FirstNonPositive() = %d, want 3", got)
	}
	almostEqual(t, series.Last(), -15000, 1e-9)
}

func TestProjectCashRejectsBadInput(t *testing.T) {
	if _, err := ProjectCash(-1, 10000, 3); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative cash: error = %v, want ErrInvalidInput", err)
	}
	if _, err := ProjectCash(100000, 10000, -1); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative months: error = %v, want ErrInvalidInput", err)
	}
}
