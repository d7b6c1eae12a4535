package metrics

import (
	"testing"
	"time"
)

func TestMonthOptionsTrailingSix(t *testing.T) {
	now := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)
	options := MonthOptions(now)

	if len(options) != 6 {
		t.Fatalf("got %d options, want 6", len(options))
	}

	wantValues := []string{"2024-03", "2024-02", "2024-01", "2023-12", "2023-11", "2023-10"}
	wantLabels := []string{"March 2024", "February 2024", "January 2024", "December 2023", "November 2023", "October 2023"}
	for i, opt := range options {
		if opt.Value != wantValues[i] {
			t.Errorf("options[%d].Value = %q, want %q", i, opt.Value, wantValues[i])
		}
		if opt.Label != wantLabels[i] {
			t.Errorf("options[%d].Label = %q, want %q", i, opt.Label, wantLabels[i])
		}
	}
}

func TestMonthOptionsMonthEndNoOverflow(t *testing.T) {
	// Stepping back from the 31st must not skip months.
	now := time.Date(2024, time.May, 31, 23, 59, 0, 0, time.UTC)
	options := MonthOptions(now)

	wantValues := []string{"2024-05", "2024-04", "2024-03", "2024-02", "2024-01", "2023-12"}
	for i, opt := range options {
		if opt.Value != wantValues[i] {
			t.Errorf("options[%d].Value = %q, want %q", i, opt.Value, wantValues[i])
		}
	}
}

func TestMonthOptionsDeterministic(t *testing.T) {
	now := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	first := MonthOptions(now)
	second := MonthOptions(now)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("options differ at %d: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestCurrentMonth(t *testing.T) {
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	if got := CurrentMonth(now); got != "2024-03" {
		t.Errorf("CurrentMonth = %q, want 2024-03", got)
	}
}
