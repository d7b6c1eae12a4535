// Package metrics computes display values derived from server data:
// collection percentages, per-house performance tiers and payment
// totals. All functions are pure.
package metrics

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/WeddyNkatha265/rental-management/internal/payment"
)

// CollectionPercent returns the rounded percentage of expected rent
// that has been received. Zero expected rent yields 0 rather than a
// division by zero.
func CollectionPercent(received, expected float64) int {
	if expected <= 0 {
		return 0
	}
	return int(math.Round(received / expected * 100))
}

// GaugeArc returns the stroke length of the collection gauge arc for
// a ring of the given radius. When expected is zero the denominator
// falls back to 1, and the fraction is not clamped, so overpayment
// pushes the arc past a full circle. Both quirks are kept on purpose;
// rendering truncates the excess.
func GaugeArc(radius, received, expected float64) float64 {
	denom := expected
	if denom == 0 {
		denom = 1
	}
	return 2 * math.Pi * radius * (received / denom)
}

// Tier is the color band for a house's collection performance.
type Tier string

const (
	TierComplete Tier = "complete"
	TierMid      Tier = "mid"
	TierLow      Tier = "low"
)

// PerformancePercent returns the rounded received-over-expected
// percentage for a single house, 0 when nothing was expected.
func PerformancePercent(received, expected float64) int {
	if expected <= 0 {
		return 0
	}
	return int(math.Round(received / expected * 100))
}

// PerformanceTier bands a performance percentage: exactly 100 is
// complete, above 50 is mid, everything else is low.
func PerformanceTier(pct int) Tier {
	switch {
	case pct == 100:
		return TierComplete
	case pct > 50:
		return TierMid
	default:
		return TierLow
	}
}

// TotalPaid sums payment amounts without accumulating binary-float
// error.
func TotalPaid(payments []*payment.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(decimal.NewFromFloat(p.AmountPaid))
	}
	return total
}
