package parser

import (
	"strconv"
	"strings"
)

// ParseNumeric extracts a float from messy spreadsheet text by discarding
// every rune that is not an ASCII digit or a decimal point ("5.5KW" -> 5.5,
// "150米" -> 150). Empty or unparsable text contributes zero; hand-entered
// data is expected to be messy and must never abort an aggregation.
func ParseNumeric(text string) float64 {
	var b strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}
