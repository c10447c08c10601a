package model

// Inputs is the full financial state of the company at the current month.
// It is what gets persisted as a snapshot and what every projection
// starts from.
type Inputs struct {
	CashBalance     float64
	MonthlyRevenue  float64
	MonthlyExpenses float64
	B2B             Segment
	B2C             Segment
}

// BlendedMetrics are customer economics computed across both segments,
// weighted by segment size.
type BlendedMetrics struct {
	TotalCustomers int
	NewCustomers   int
	WeightedCAC    float64
	WeightedChurn  float64 // percent
	AvgLifetime    float64 // months; +Inf when blended churn is zero
	ARPU           float64
	LTV            float64
	LTVCACRatio    float64
	ConversionRate float64 // new customers as percent of total
}

// MetricsSnapshot is the one-shot evaluation of all headline metrics for
// a set of inputs. Derived values are computed once here and reused by
// every renderer, never recomputed downstream.
type MetricsSnapshot struct {
	BurnRate     float64
	RunwayMonths float64
	MoMGrowthPct float64
	Blended      BlendedMetrics
}
