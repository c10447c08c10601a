package engine

import (
	"fmt"
	"math"

	"runway/internal/model"
)

// BurnRate returns net monthly cash consumption: expenses minus revenue.
// A negative result means the company is cash-flow positive.
func BurnRate(revenue, expenses float64) (float64, error) {
	if !isFinite(revenue) || !isFinite(expenses) {
		return 0, fmt.Errorf("%w: revenue and expenses must be finite numbers", ErrInvalidInput)
	}
	return expenses - revenue, nil
}

// Runway returns how many months the cash balance lasts at the given
// burn rate. Zero or negative burn yields 0: callers render that case
// as "not burning" rather than an unbounded horizon.
func Runway(cash, burn float64) float64 {
	if burn <= 0 {
		return 0
	}
	return cash / burn
}

// MoMGrowth returns month-over-month revenue growth in percent.
// A zero previous month yields 0 rather than a division error.
func MoMGrowth(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

// LTVCACRatio returns lifetime value over acquisition cost,
// or 0 when CAC is zero.
func LTVCACRatio(ltv, cac float64) float64 {
	if cac == 0 {
		return 0
	}
	return ltv / cac
}

// LifetimeFromChurn converts a monthly churn percentage into the
// expected customer lifetime in months. Zero churn means customers
// never leave, reported as +Inf.
func LifetimeFromChurn(churnPct float64) float64 {
	if churnPct > 0 {
		return 1 / (churnPct / 100)
	}
	return math.Inf(1)
}

// ProjectCash walks the cash balance forward at a constant burn rate.
// Index 0 is the current balance; the series is not floored, a negative
// entry marks the month the money runs out.
func ProjectCash(cash, burn float64, months int) (model.Series, error) {
	if !isFinite(cash) || !isFinite(burn) {
		return nil, fmt.Errorf("%w: cash and burn must be finite numbers", ErrInvalidInput)
	}
	if cash < 0 {
		return nil, fmt.Errorf("%w: cash balance must not be negative", ErrInvalidInput)
	}
	if months < 0 {
		return nil, fmt.Errorf("%w: months must not be negative", ErrInvalidInput)
	}
	series := make(model.Series, 0, months+1)
	for m := 0; m <= months; m++ {
		series = append(series, cash-burn*float64(m))
	}
	return series, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// burn is the unchecked form of BurnRate for validated inner loops.
func burn(revenue, expenses float64) float64 {
	return expenses - revenue
}
