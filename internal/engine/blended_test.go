package engine

import (
	"errors"
	"math"
	"testing"

	"runway/internal/model"
)

var (
	testB2B = model.Segment{Label: "B2B", Total: 20, New: 5, CAC: 500, ChurnRate: 2}
	testB2C = model.Segment{Label: "B2C", Total: 80, New: 15, CAC: 50, ChurnRate: 5}
)

func TestBlend(t *testing.T) {
	got, err := Blend(10000, testB2B, testB2C)
	if err != nil {
		t.Fatalf("Blend() error = %v", err)
	}

	if got.TotalCustomers != 100 {
		t.Errorf("TotalCustomers = %d, want 100", got.TotalCustomers)
	}
	if got.NewCustomers != 20 {
		t.Errorf("NewCustomers = %d, want 20", got.NewCustomers)
	}
	almostEqual(t, got.WeightedCAC, 140, 1e-9)
	almostEqual(t, got.WeightedChurn, 4.4, 1e-9)
	almostEqual(t, got.ARPU, 100, 1e-9)
	almostEqual(t, got.AvgLifetime, 1/(4.4/100), 1e-9)
	almostEqual(t, got.LTV, 100/(4.4/100), 1e-6)
	almostEqual(t, got.LTVCACRatio, got.LTV/140, 1e-9)
	almostEqual(t, got.ConversionRate, 20, 1e-9)
}

func TestBlendNoCustomers(t *testing.T) {
	got, err := Blend(10000, model.Segment{Label: "B2B"}, model.Segment{Label: "B2C"})
	if err != nil {
		t.Fatalf("Blend() error = %v", err)
	}
	if got.TotalCustomers != 0 || got.ARPU != 0 || got.WeightedCAC != 0 || got.LTVCACRatio != 0 {
		t.Errorf("empty company should report zero economics, got %+v", got)
	}
}

func TestBlendZeroChurnMeansInfiniteLifetime(t *testing.T) {
	a := model.Segment{Label: "B2B", Total: 10, CAC: 100}
	b := model.Segment{Label: "B2C", Total: 10, CAC: 100}
	got, err := Blend(5000, a, b)
	if err != nil {
		t.Fatalf("Blend() error = %v", err)
	}
	if !math.IsInf(got.AvgLifetime, 1) {
		t.Errorf("AvgLifetime = %v, want +Inf", got.AvgLifetime)
	}
	if !math.IsInf(got.LTV, 1) {
		t.Errorf("LTV = %v, want +Inf", got.LTV)
	}
	if !math.IsInf(got.LTVCACRatio, 1) {
		t.Errorf("LTVCACRatio = %v, want +Inf", got.LTVCACRatio)
	}
}

func TestBlendRejectsBadSegments(t *testing.T) {
	bad := model.Segment{Label: "B2B", Total: 5, New: 6}
	if _, err := Blend(10000, bad, testB2C); !errors.Is(err, ErrInvalidSegment) {
		t.Errorf("new > total: error = %v, want ErrInvalidSegment", err)
	}
	if _, err := Blend(-1, testB2B, testB2C); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative revenue: error = %v, want ErrInvalidInput", err)
	}
}

func TestEvaluate(t *testing.T) {
	in := model.Inputs{
		CashBalance:     100000,
		MonthlyRevenue:  10000,
		MonthlyExpenses: 20000,
		B2B:             testB2B,
		B2C:             testB2C,
	}
	snap, err := Evaluate(in, 8000)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	almostEqual(t, snap.BurnRate, 10000, 1e-9)
	almostEqual(t, snap.RunwayMonths, 10, 1e-9)
	almostEqual(t, snap.MoMGrowthPct, 25, 1e-9)
	almostEqual(t, snap.Blended.ARPU, 100, 1e-9)
}

func TestEvaluateCashFlowPositive(t *testing.T) {
	in := model.Inputs{
		CashBalance:     100000,
		MonthlyRevenue:  30000,
		MonthlyExpenses: 20000,
		B2B:             testB2B,
		B2C:             testB2C,
	}
	snap, err := Evaluate(in, 30000)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	almostEqual(t, snap.BurnRate, -10000, 1e-9)
	almostEqual(t, snap.RunwayMonths, 0, 1e-9)
}
