package model

// Segment describes one customer segment at the current month.
type Segment struct {
	Label     string  // display name, e.g. "B2B"
	Total     int     // current customer count
	New       int     // customers acquired this month
	CAC       float64 // customer acquisition cost
	ChurnRate float64 // monthly churn, percent (0..100)
}

// CustomerFlow holds the per-month acquisition, churn and resulting totals
// of a projected segment. All three slices have the same length.
type CustomerFlow struct {
	New     []int
	Churned []int
	Total   []int
}

// Months returns the number of projected periods, including month zero.
func (f CustomerFlow) Months() int {
	return len(f.Total)
}
