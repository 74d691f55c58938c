package brief

import (
	"strconv"
	"strings"
)

// Placeholder marks a missing value in display contexts.
const Placeholder = "—"

// Amount converts a locale-formatted numeric string into a float for
// derivation contexts. A comma is accepted as decimal separator. Empty or
// unparsable input yields 0; no error is ever surfaced, absence is a valid
// state for every cost field.
func Amount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0
	}
	return v
}

// Display resolves a raw field value for display contexts: the value itself,
// or the placeholder when blank. Distinct from Amount on purpose; a missing
// value computes as zero but never prints as "0".
func Display(s string) string {
	if strings.TrimSpace(s) == "" {
		return Placeholder
	}
	return s
}
