package cli

import (
	"math"
	"testing"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1234567.8, "€1,234,568"},
		{100000, "€100,000"},
		{999.4, "€999"},
		{142.5, "€142"},
		{42.5, "€42.50"},
		{0, "€0.00"},
		{-12000, "-€12,000"},
	}
	for _, tt := range tests {
		if got := FormatMoney(tt.in); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatMonths(t *testing.T) {
	if got := FormatMonths(8.333); got != "8.3 mo" {
		t.Errorf("FormatMonths(8.333) = %q, want \"8.3 mo\"", got)
	}
	if got := FormatMonths(math.Inf(1)); got != "∞" {
		t.Errorf("FormatMonths(+Inf) = %q, want ∞", got)
	}
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4200, "-4,200"},
	}
	for _, tt := range tests {
		if got := FormatCount(tt.in); got != tt.want {
			t.Errorf("FormatCount(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPercentAndRatio(t *testing.T) {
	if got := FormatPercent(4.4); got != "4.4%" {
		t.Errorf("FormatPercent(4.4) = %q", got)
	}
	if got := FormatSignedPercent(25.0); got != "+25.0%" {
		t.Errorf("FormatSignedPercent(25) = %q", got)
	}
	if got := FormatSignedPercent(-20.0); got != "-20.0%" {
		t.Errorf("FormatSignedPercent(-20) = %q", got)
	}
	if got := FormatRatio(16.2337); got != "16.23x" {
		t.Errorf("FormatRatio(16.2337) = %q", got)
	}
	if got := FormatRatio(math.Inf(1)); got != "∞" {
		t.Errorf("FormatRatio(+Inf) = %q", got)
	}
}

func TestRenderSparkline(t *testing.T) {
	if got := RenderSparkline(nil); got != "" {
		t.Errorf("RenderSparkline(nil) = %q, want empty", got)
	}
	if got := RenderSparkline([]float64{5, 5, 5}); got != "▁▁▁" {
		t.Errorf("flat series = %q, want ▁▁▁", got)
	}
	got := []rune(RenderSparkline([]float64{100000, 50000, 0, -50000}))
	if len(got) != 4 {
		t.Fatalf("got %d runes, want 4", len(got))
	}
	if got[0] != '█' || got[3] != '▁' {
		t.Errorf("endpoints = %c…%c, want █…▁", got[0], got[3])
	}
}
