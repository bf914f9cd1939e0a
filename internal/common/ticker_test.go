package common

import (
	"testing"
)

func TestNormalizeTicker(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		// Case normalization
		{"aapl", "AAPL"},
		{"AAPL", "AAPL"},
		{"TsLa", "TSLA"},

		// Whitespace handling
		{"  AAPL  ", "AAPL"},
		{" msft", "MSFT"},

		// Symbols with dots, hyphens, and underscores
		{"BRK.B", "BRK.B"},
		{"brk.b", "BRK.B"},
		{"BTC-USD", "BTC-USD"},
		{"INVALID_TICKER_X", "INVALID_TICKER_X"},

		// Invalid input
		{"", ""},
		{"   ", ""},
		{"A B", ""},
		{"AAPL;DROP", ""},
		{"VERYLONGTICKERSYMBOLXX", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeTicker(tt.input); got != tt.want {
				t.Errorf("NormalizeTicker(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeTickers(t *testing.T) {
	input := []string{"aapl", "  GOOGL ", "bad ticker", "AAPL"}
	result := NormalizeTickers(input)

	if len(result) != 4 {
		t.Fatalf("NormalizeTickers returned %d entries, want 4", len(result))
	}

	expected := []string{"AAPL", "GOOGL", "", "AAPL"}
	for i, want := range expected {
		if result[i] != want {
			t.Errorf("result[%d] = %q, want %q", i, result[i], want)
		}
	}
}
