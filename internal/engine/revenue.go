package engine

import (
	"fmt"
	"math"

	"runway/internal/model"
)

// ProjectRevenue produces months+1 revenue values starting at the
// current month. Linear growth adds a constant increment derived from
// the initial value, exponential growth compounds monthly, and fixed
// growth holds flat. Every value is floored at zero.
func ProjectRevenue(initial float64, months int, gm model.GrowthModel, linearPct, expPct float64) (model.Series, error) {
	if !isFinite(initial) || !isFinite(linearPct) || !isFinite(expPct) {
		return nil, fmt.Errorf("%w: revenue arguments must be finite numbers", ErrInvalidInput)
	}
	if initial < 0 {
		return nil, fmt.Errorf("%w: initial revenue must not be negative", ErrInvalidInput)
	}
	if months < 0 {
		return nil, fmt.Errorf("%w: months must not be negative", ErrInvalidInput)
	}
	if !gm.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidModel, gm)
	}

	series := make(model.Series, 0, months+1)
	increment := initial * linearPct / 100
	rate := 1 + expPct/100
	for m := 0; m <= months; m++ {
		var v float64
		switch gm {
		case model.GrowthFixed:
			v = initial
		case model.GrowthLinear:
			v = initial + increment*float64(m)
		case model.GrowthExponential:
			v = initial * math.Pow(rate, float64(m))
		}
		series = append(series, math.Max(0, v))
	}
	return series, nil
}
