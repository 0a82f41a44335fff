package sheet_test

import (
	"math"
	"testing"

	"github.com/1ShivamPandey/apnafinance/internal/sheet"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{name: "plain integer", raw: "250", want: 250},
		{name: "plain decimal", raw: "99.75", want: 99.75},
		{name: "rupee sign and thousands separators", raw: "₹1,234.50", want: 1234.5},
		{name: "Rs prefix with dot", raw: "Rs. 200", want: 200},
		{name: "lowercase rs prefix", raw: "rs 95.5", want: 95.5},
		{name: "INR prefix", raw: "INR 42", want: 42},
		{name: "indian digit grouping", raw: "1,23,456", want: 123456},
		{name: "surrounding whitespace", raw: "  250.75  ", want: 250.75},
		{name: "negative amount", raw: "-12.5", want: -12.5},
		{name: "number followed by text", raw: "12.5 (approx)", want: 12.5},
		{name: "empty cell", raw: "", want: 0},
		{name: "whitespace only", raw: "   ", want: 0},
		{name: "text without digits", raw: "n/a", want: 0},
		{name: "formula error marker", raw: "#REF!", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sheet.ParseNumber(tt.raw)
			if got != tt.want {
				t.Errorf("ParseNumber(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestToInt(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{name: "plain integer", raw: "10", want: 10},
		{name: "rounds up", raw: "10.6", want: 11},
		{name: "rounds down", raw: "10.4", want: 10},
		{name: "thousands separator", raw: "1,000", want: 1000},
		{name: "empty cell", raw: "", want: 0},
		{name: "text", raw: "ten", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sheet.ToInt(tt.raw)
			if got != tt.want {
				t.Errorf("ToInt(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestIsValidPrice(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		want  bool
	}{
		{name: "zero", price: 0, want: false},
		{name: "negative", price: -5, want: false},
		{name: "small positive", price: 0.01, want: true},
		{name: "typical price", price: 2500, want: true},
		{name: "just below the bound", price: 99999.99, want: true},
		{name: "exactly the bound", price: 100000, want: false},
		{name: "well above the bound", price: 250000, want: false},
		{name: "NaN", price: math.NaN(), want: false},
		{name: "positive infinity", price: math.Inf(1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sheet.IsValidPrice(tt.price)
			if got != tt.want {
				t.Errorf("IsValidPrice(%v) = %v, want %v", tt.price, got, tt.want)
			}
		})
	}
}
