package engine

import (
	"fmt"
	"math"

	"runway/internal/model"
)

// ValidateSegment rejects segment states that cannot occur: negative
// counts or costs, churn outside 0..100, or a month acquiring more
// customers than the segment holds in total.
func ValidateSegment(s model.Segment) error {
	if s.Total < 0 || s.New < 0 {
		return fmt.Errorf("%w: %s customer counts must not be negative", ErrInvalidInput, s.Label)
	}
	if !isFinite(s.CAC) || s.CAC < 0 {
		return fmt.Errorf("%w: %s CAC must be a non-negative number", ErrInvalidInput, s.Label)
	}
	if !isFinite(s.ChurnRate) || s.ChurnRate < 0 || s.ChurnRate > 100 {
		return fmt.Errorf("%w: %s churn rate must be between 0 and 100", ErrInvalidInput, s.Label)
	}
	if s.New > s.Total {
		return fmt.Errorf("%w: %s has %d new customers but only %d total", ErrInvalidSegment, s.Label, s.New, s.Total)
	}
	return nil
}

// ProjectCustomerFlow simulates one segment month by month. Each period
// acquires new customers per the growth model, then churns a whole-number
// share of the pre-acquisition total, then clamps the running total at
// zero. Fractional customers are truncated, matching how the counts are
// reported.
func ProjectCustomerFlow(seg model.Segment, months int, gm model.GrowthModel, linearPct, expPct float64) (model.CustomerFlow, error) {
	if err := ValidateSegment(seg); err != nil {
		return model.CustomerFlow{}, err
	}
	if months < 0 {
		return model.CustomerFlow{}, fmt.Errorf("%w: months must not be negative", ErrInvalidInput)
	}
	if !isFinite(linearPct) || !isFinite(expPct) {
		return model.CustomerFlow{}, fmt.Errorf("%w: growth rates must be finite numbers", ErrInvalidInput)
	}
	if !gm.Valid() {
		return model.CustomerFlow{}, fmt.Errorf("%w: %q", ErrInvalidModel, gm)
	}

	flow := model.CustomerFlow{
		New:     make([]int, 0, months+1),
		Churned: make([]int, 0, months+1),
		Total:   make([]int, 0, months+1),
	}
	current := seg.Total
	rate := 1 + expPct/100
	for m := 0; m <= months; m++ {
		var acquired int
		switch gm {
		case model.GrowthFixed:
			acquired = seg.New
		case model.GrowthLinear:
			acquired = int(float64(seg.New) * (1 + linearPct/100*float64(m)))
		case model.GrowthExponential:
			acquired = int(float64(seg.New) * math.Pow(rate, float64(m)))
		}
		// Churn applies to the total before this month's acquisition.
		churned := int(float64(current) * seg.ChurnRate / 100)
		current += acquired - churned
		if current < 0 {
			current = 0
		}
		flow.New = append(flow.New, acquired)
		flow.Churned = append(flow.Churned, churned)
		flow.Total = append(flow.Total, current)
	}
	return flow, nil
}

// ProjectCustomerTotal is the coarse companion of ProjectCustomerFlow:
// it tracks only the running total, ignores churn, and records each
// month's value before that month's growth is applied. The exponential
// branch compounds from the starting total rather than the running one.
func ProjectCustomerTotal(initialTotal, monthlyNew, months int, gm model.GrowthModel, linearAdd int, expPct float64) ([]int, error) {
	if initialTotal < 0 || monthlyNew < 0 || linearAdd < 0 {
		return nil, fmt.Errorf("%w: customer counts must not be negative", ErrInvalidInput)
	}
	if months < 0 {
		return nil, fmt.Errorf("%w: months must not be negative", ErrInvalidInput)
	}
	if !isFinite(expPct) {
		return nil, fmt.Errorf("%w: growth rate must be a finite number", ErrInvalidInput)
	}
	if !gm.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidModel, gm)
	}

	totals := make([]int, 0, months+1)
	current := initialTotal
	rate := 1 + expPct/100
	for m := 0; m <= months; m++ {
		totals = append(totals, current)
		switch gm {
		case model.GrowthFixed:
			current += monthlyNew
		case model.GrowthLinear:
			current += monthlyNew + linearAdd*m
		case model.GrowthExponential:
			current = int(float64(initialTotal) * math.Pow(rate, float64(m)))
		}
	}
	return totals, nil
}
