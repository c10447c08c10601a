package engine

import (
	"errors"
	"testing"

	"runway/internal/model"
)

func checkInts(t *testing.T, got, want []int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d values, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("index %d: got %d, want %d", i, got[i], w)
		}
	}
}

func TestValidateSegment(t *testing.T) {
	tests := []struct {
		name    string
		seg     model.Segment
		wantErr error
	}{
		{"valid", model.Segment{Label: "B2B", Total: 20, New: 5, CAC: 500, ChurnRate: 2}, nil},
		{"empty segment", model.Segment{Label: "B2C"}, nil},
		{"negative total", model.Segment{Label: "B2B", Total: -1}, ErrInvalidInput},
		{"negative cac", model.Segment{Label: "B2B", Total: 10, CAC: -5}, ErrInvalidInput},
		{"churn above 100", model.Segment{Label: "B2B", Total: 10, ChurnRate: 101}, ErrInvalidInput},
		{"new exceeds total", model.Segment{Label: "B2B", Total: 10, New: 11}, ErrInvalidSegment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSegment(tt.seg)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateSegment() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateSegment() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestProjectCustomerFlowFixed(t *testing.T) {
	seg := model.Segment{Label: "B2C", Total: 80, New: 15, ChurnRate: 5}
	flow, err := ProjectCustomerFlow(seg, 2, model.GrowthFixed, 0, 0)
	if err != nil {
		t.Fatalf("ProjectCustomerFlow() error = %v", err)
	}
	checkInts(t, flow.New, []int{15, 15, 15})
	checkInts(t, flow.Churned, []int{4, 4, 5})
	checkInts(t, flow.Total, []int{91, 102, 112})
}

func TestProjectCustomerFlowTruncatesChurn(t *testing.T) {
	// 2% of 20 customers is 0.4, which truncates to zero churned.
	seg := model.Segment{Label: "B2B", Total: 20, New: 5, ChurnRate: 2}
	flow, err := ProjectCustomerFlow(seg, 3, model.GrowthFixed, 0, 0)
	if err != nil {
		t.Fatalf("ProjectCustomerFlow() error = %v", err)
	}
	checkInts(t, flow.Churned, []int{0, 0, 0, 0})
	checkInts(t, flow.Total, []int{25, 30, 35, 40})
}

func TestProjectCustomerFlowLinearAcquisition(t *testing.T) {
	seg := model.Segment{Label: "B2C", Total: 100, New: 10}
	flow, err := ProjectCustomerFlow(seg, 3, model.GrowthLinear, 50, 0)
	if err != nil {
		t.Fatalf("ProjectCustomerFlow() error = %v", err)
	}
	checkInts(t, flow.New, []int{10, 15, 20, 25})
}

func TestProjectCustomerFlowTotalNeverNegative(t *testing.T) {
	seg := model.Segment{Label: "B2C", Total: 10, ChurnRate: 100}
	flow, err := ProjectCustomerFlow(seg, 5, model.GrowthFixed, 0, 0)
	if err != nil {
		t.Fatalf("ProjectCustomerFlow() error = %v", err)
	}
	for i, total := range flow.Total {
		if total < 0 {
			t.Errorf("month %d: total = %d, want >= 0", i, total)
		}
	}
	if flow.Total[0] != 0 {
		t.Errorf("month 0: total = %d, want 0 after full churn", flow.Total[0])
	}
}

func TestProjectCustomerFlowErrors(t *testing.T) {
	seg := model.Segment{Label: "B2B", Total: 20, New: 5}
	if _, err := ProjectCustomerFlow(seg, -1, model.GrowthFixed, 0, 0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative months: error = %v, want ErrInvalidInput", err)
	}
	if _, err := ProjectCustomerFlow(seg, 3, "viral", 0, 0); !errors.Is(err, ErrInvalidModel) {
		t.Errorf("unknown model: error = %v, want ErrInvalidModel", err)
	}
	bad := model.Segment{Label: "B2B", Total: 5, New: 10}
	if _, err := ProjectCustomerFlow(bad, 3, model.GrowthFixed, 0, 0); !errors.Is(err, ErrInvalidSegment) {
		t.Errorf("new > total: error = %v, want ErrInvalidSegment", err)
	}
}

func TestProjectCustomerTotal(t *testing.T) {
	tests := []struct {
		name      string
		initial   int
		new       int
		months    int
		gm        model.GrowthModel
		linearAdd int
		expPct    float64
		want      []int
	}{
		{
			name:    "fixed adds the same count each month",
			initial: 100, new: 10, months: 3, gm: model.GrowthFixed,
			want: []int{100, 110, 120, 130},
		},
		{
			name:    "linear adds a ramping count",
			initial: 100, new: 10, months: 3, gm: model.GrowthLinear, linearAdd: 5,
			want: []int{100, 110, 125, 145},
		},
		{
			// Exponential compounds from the starting total, so growth
			// shows up one month later than in the flow simulation.
			name:    "exponential compounds from base",
			initial: 100, months: 3, gm: model.GrowthExponential, expPct: 10,
			want: []int{100, 100, 110, 121},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ProjectCustomerTotal(tt.initial, tt.new, tt.months, tt.gm, tt.linearAdd, tt.expPct)
			if err != nil {
				t.Fatalf("ProjectCustomerTotal() error = %v", err)
			}
			checkInts(t, got, tt.want)
		})
	}
}

func TestProjectCustomerTotalErrors(t *testing.T) {
	if _, err := ProjectCustomerTotal(-1, 10, 3, model.GrowthFixed, 0, 0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative initial: error = %v, want ErrInvalidInput", err)
	}
	if _, err := ProjectCustomerTotal(100, 10, 3, "", 0, 0); !errors.Is(err, ErrInvalidModel) {
		t.Errorf("empty model: error = %v, want ErrInvalidModel", err)
	}
}
