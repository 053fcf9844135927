// Package normalize converts user-entered text into the numeric types a
// product record carries. Parsing never blocks a submission: text that
// cannot be parsed falls back to zero, and the accompanying ParseResult
// tells the caller what happened so it can choose to reject instead.
package normalize

import (
	"strconv"
	"strings"
)

// ParseResult reports whether a field parsed cleanly. Reason is set
// only on failure.
type ParseResult struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}

func parsed() ParseResult { return ParseResult{OK: true} }

func fallback(reason string) ParseResult { return ParseResult{Reason: reason} }

// Price parses price text. Grouping commas are stripped first, so
// "1,234.50" reads as 1234.50. Empty or unparseable text yields 0.
// Negative values also fall back to 0 so stored prices stay
// non-negative.
func Price(text string) (float64, ParseResult) {
	text = strings.TrimSpace(strings.ReplaceAll(text, ",", ""))
	if text == "" {
		return 0, fallback("empty")
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fallback("not a number")
	}
	if v < 0 {
		return 0, fallback("negative")
	}
	return v, parsed()
}

// Quantity parses quantity text as a base-10 integer with the same
// fallback rules as Price.
func Quantity(text string) (int, ParseResult) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, fallback("empty")
	}
	v, err := strconv.Atoi(text)
	if err != nil {
		return 0, fallback("not an integer")
	}
	if v < 0 {
		return 0, fallback("negative")
	}
	return v, parsed()
}
