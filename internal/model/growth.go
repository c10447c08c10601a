package model

// GrowthModel selects how a projected quantity evolves month over month.
type GrowthModel string

const (
	// GrowthFixed holds the quantity flat at its initial value.
	GrowthFixed GrowthModel = "fixed"
	// GrowthLinear adds a constant increment each month.
	GrowthLinear GrowthModel = "linear"
	// GrowthExponential compounds the quantity by a monthly rate.
	GrowthExponential GrowthModel = "exponential"
)

// Valid reports whether m is one of the known growth models.
func (m GrowthModel) Valid() bool {
	switch m {
	case GrowthFixed, GrowthLinear, GrowthExponential:
		return true
	}
	return false
}

// ParseGrowthModel maps a user-supplied string to a GrowthModel.
// It accepts the canonical lowercase names only.
func ParseGrowthModel(s string) (GrowthModel, bool) {
	m := GrowthModel(s)
	return m, m.Valid()
}
