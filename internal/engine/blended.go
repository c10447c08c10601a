package engine

import (
	"fmt"
	"math"

	"runway/internal/model"
)

// Blend combines two customer segments into company-wide economics.
// CAC, churn and lifetime are weighted by segment size; ARPU spreads
// total revenue across every customer. A company with no customers
// reports zero economics rather than dividing by zero.
func Blend(revenue float64, a, b model.Segment) (model.BlendedMetrics, error) {
	if !isFinite(revenue) || revenue < 0 {
		return model.BlendedMetrics{}, fmt.Errorf("%w: revenue must be a non-negative number", ErrInvalidInput)
	}
	if err := ValidateSegment(a); err != nil {
		return model.BlendedMetrics{}, err
	}
	if err := ValidateSegment(b); err != nil {
		return model.BlendedMetrics{}, err
	}

	m := model.BlendedMetrics{
		TotalCustomers: a.Total + b.Total,
		NewCustomers:   a.New + b.New,
	}
	if m.TotalCustomers == 0 {
		return m, nil
	}

	total := float64(m.TotalCustomers)
	m.WeightedCAC = (a.CAC*float64(a.Total) + b.CAC*float64(b.Total)) / total
	m.WeightedChurn = (a.ChurnRate*float64(a.Total) + b.ChurnRate*float64(b.Total)) / total
	m.AvgLifetime = LifetimeFromChurn(m.WeightedChurn)
	m.ARPU = revenue / total
	if math.IsInf(m.AvgLifetime, 1) {
		m.LTV = math.Inf(1)
	} else {
		m.LTV = m.ARPU * m.AvgLifetime
	}
	m.LTVCACRatio = LTVCACRatio(m.LTV, m.WeightedCAC)
	m.ConversionRate = float64(m.NewCustomers) / total * 100
	return m, nil
}

// Evaluate computes the full metrics snapshot for a set of inputs in one
// pass: burn, runway, growth against the previous month, and the blended
// segment economics.
func Evaluate(in model.Inputs, previousRevenue float64) (model.MetricsSnapshot, error) {
	if !isFinite(in.CashBalance) || in.CashBalance < 0 {
		return model.MetricsSnapshot{}, fmt.Errorf("%w: cash balance must be a non-negative number", ErrInvalidInput)
	}
	if !isFinite(previousRevenue) || previousRevenue < 0 {
		return model.MetricsSnapshot{}, fmt.Errorf("%w: previous revenue must be a non-negative number", ErrInvalidInput)
	}
	if in.MonthlyRevenue < 0 || in.MonthlyExpenses < 0 {
		return model.MetricsSnapshot{}, fmt.Errorf("%w: revenue and expenses must not be negative", ErrInvalidInput)
	}

	b, err := BurnRate(in.MonthlyRevenue, in.MonthlyExpenses)
	if err != nil {
		return model.MetricsSnapshot{}, err
	}
	blended, err := Blend(in.MonthlyRevenue, in.B2B, in.B2C)
	if err != nil {
		return model.MetricsSnapshot{}, err
	}
	return model.MetricsSnapshot{
		BurnRate:     b,
		RunwayMonths: Runway(in.CashBalance, b),
		MoMGrowthPct: MoMGrowth(in.MonthlyRevenue, previousRevenue),
		Blended:      blended,
	}, nil
}
