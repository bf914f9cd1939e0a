// Package common provides shared utilities across the application.
package common

import (
	"strings"
)

// maxTickerLength bounds ticker symbols; the longest real-world symbols
// (crypto pairs, exchange-qualified symbols) fit comfortably under this.
const maxTickerLength = 20

// NormalizeTicker canonicalizes a raw ticker string: trims whitespace and
// uppercases. Returns the empty string when the input is empty or contains
// characters that can never appear in a ticker symbol. Well-formed symbols
// the provider does not know still pass; whether they exist is the
// provider's call, not ours.
//
// Examples:
//   - "aapl"   -> "AAPL"
//   - " TSLA " -> "TSLA"
//   - "BRK.B"  -> "BRK.B"
//   - "a b"    -> ""
func NormalizeTicker(raw string) string {
	ticker := strings.ToUpper(strings.TrimSpace(raw))
	if ticker == "" || len(ticker) > maxTickerLength {
		return ""
	}
	for _, r := range ticker {
		switch {
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '.' || r == '-' || r == '_':
		default:
			return ""
		}
	}
	return ticker
}

// NormalizeTickers canonicalizes a list of tickers, preserving order and
// duplicates. Entries that fail normalization are kept as empty strings so
// callers can report a per-entry error without shifting positions.
func NormalizeTickers(raw []string) []string {
	result := make([]string, len(raw))
	for i, t := range raw {
		result[i] = NormalizeTicker(t)
	}
	return result
}
