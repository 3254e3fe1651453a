package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		amount   string
		expected string
	}{
		{amount: "0", expected: "R$ 0,00"},
		{amount: "99.9", expected: "R$ 99,90"},
		{amount: "1234.56", expected: "R$ 1.234,56"},
		{amount: "1500000", expected: "R$ 1.500.000,00"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			if got := FormatBRL(decimal.RequireFromString(tt.amount)); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
