package model

// Series is a month-indexed sequence of values. Index 0 is the current
// month, index n is n months out.
type Series []float64

// Last returns the final value of the series, or 0 for an empty series.
func (s Series) Last() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1]
}

// Min returns the smallest value in the series, or 0 for an empty series.
func (s Series) Min() float64 {
	if len(s) == 0 {
		return 0
	}
	min := s[0]
	for _, v := range s[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// FirstNonPositive returns the index of the first value at or below zero,
// or -1 if the series stays positive throughout.
func (s Series) FirstNonPositive() int {
	for i, v := range s {
		if v <= 0 {
			return i
		}
	}
	return -1
}
