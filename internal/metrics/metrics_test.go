package metrics

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/WeddyNkatha265/rental-management/internal/payment"
)

func TestCollectionPercent(t *testing.T) {
	tests := []struct {
		name     string
		received float64
		expected float64
		want     int
	}{
		{"half collected", 8000, 16000, 50},
		{"fully collected", 16000, 16000, 100},
		{"rounds down", 1, 3, 33},
		{"rounds up", 2, 3, 67},
		{"zero expected", 5000, 0, 0},
		{"nothing at all", 0, 0, 0},
		{"overpayment exceeds 100", 18000, 16000, 113},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CollectionPercent(tt.received, tt.expected); got != tt.want {
				t.Errorf("CollectionPercent(%v, %v) = %d, want %d", tt.received, tt.expected, got, tt.want)
			}
		})
	}
}

func TestGaugeArcFullCircleWhenFullyCollected(t *testing.T) {
	got := GaugeArc(38, 16000, 16000)
	want := 2 * math.Pi * 38
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("arc = %v, want %v", got, want)
	}
}

func TestGaugeArcUnclampedOnOverpayment(t *testing.T) {
	full := 2 * math.Pi * 38
	got := GaugeArc(38, 20000, 16000)
	if got <= full {
		t.Errorf("arc = %v, expected more than a full circle (%v)", got, full)
	}
}

func TestGaugeArcZeroExpectedFallsBackToOne(t *testing.T) {
	// The denominator falls back to 1, so the arc scales with the
	// raw received amount rather than dividing by zero.
	got := GaugeArc(38, 3, 0)
	want := 2 * math.Pi * 38 * 3
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("arc = %v, want %v", got, want)
	}
}

func TestPerformancePercentZeroExpected(t *testing.T) {
	if got := PerformancePercent(5000, 0); got != 0 {
		t.Errorf("pct = %d, want 0", got)
	}
}

func TestPerformanceTierBoundaries(t *testing.T) {
	tests := []struct {
		pct  int
		want Tier
	}{
		{100, TierComplete},
		{99, TierMid},
		{51, TierMid},
		{50, TierLow},
		{0, TierLow},
		{101, TierMid}, // overpayment is not "complete"
	}

	for _, tt := range tests {
		if got := PerformanceTier(tt.pct); got != tt.want {
			t.Errorf("PerformanceTier(%d) = %q, want %q", tt.pct, got, tt.want)
		}
	}
}

func TestTotalPaidAvoidsFloatDrift(t *testing.T) {
	payments := []*payment.Payment{
		{AmountPaid: 0.1},
		{AmountPaid: 0.2},
	}
	total := TotalPaid(payments)
	if !total.Equal(decimal.NewFromFloat(0.3)) {
		t.Errorf("total = %s, want 0.3", total)
	}
}

func TestTotalPaidEmpty(t *testing.T) {
	if !TotalPaid(nil).IsZero() {
		t.Error("expected zero total for no payments")
	}
}
