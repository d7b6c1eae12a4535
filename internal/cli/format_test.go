package cli

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{950, "950"},
		{8000, "8,000"},
		{16500.5, "16,500.50"},
		{1234567, "1,234,567"},
		{1234567.89, "1,234,567.89"},
		{-250.75, "-250.75"},
		{-8000, "-8,000"},
	}

	for _, tt := range tests {
		if got := formatMoney(tt.in); got != tt.want {
			t.Errorf("formatMoney(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDecimal(t *testing.T) {
	d := decimal.NewFromFloat(0.1).Add(decimal.NewFromFloat(0.2))
	if got := formatDecimal(d); got != "0.30" {
		t.Errorf("formatDecimal = %q, want 0.30", got)
	}
}

func TestGroupDigits(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1", "1"},
		{"999", "999"},
		{"1000", "1,000"},
		{"1234567", "1,234,567"},
	}

	for _, tt := range tests {
		if got := groupDigits(tt.in); got != tt.want {
			t.Errorf("groupDigits(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("a very long house name indeed", 10); got != "a very ..." {
		t.Errorf("truncate = %q", got)
	}
}

func TestGaugeBar(t *testing.T) {
	half := gaugeBar(50, 30)
	if strings.Count(half, "█") != 15 {
		t.Errorf("50%% bar filled %d cells, want 15", strings.Count(half, "█"))
	}

	// Overpayment renders at most a full bar even though the percent
	// text can exceed 100.
	over := gaugeBar(113, 30)
	if strings.Count(over, "█") != 30 {
		t.Errorf("113%% bar filled %d cells, want 30", strings.Count(over, "█"))
	}
	if strings.Count(over, "░") != 0 {
		t.Errorf("113%% bar has %d empty cells, want 0", strings.Count(over, "░"))
	}

	empty := gaugeBar(0, 30)
	if strings.Count(empty, "░") != 30 {
		t.Errorf("0%% bar has %d empty cells, want 30", strings.Count(empty, "░"))
	}
}
