package brief

import (
	"fmt"
	"strings"
)

const missingRegistryReason = "reason missing"

// RegistryLine renders the external-negative-registry indicator. A material
// hit without a stated reason still gets a reason string, never an empty
// trailer.
func RegistryLine(r RegistryIndicator) string {
	if !r.Flagged {
		return "CRIF: no/immaterial"
	}
	reason := r.Reason
	if strings.TrimSpace(reason) == "" {
		reason = missingRegistryReason
	}
	return fmt.Sprintf("CRIF: yes/material — %s", reason)
}

// BureauBlock renders the registry entries, one line each with a 1-based
// index. A declared count of zero renders the literal "KSV: 0" regardless of
// any stray entries.
func BureauBlock(report BureauReport) string {
	if report.Count == 0 {
		return "KSV: 0"
	}
	lines := make([]string, 0, len(report.Entries))
	for i, e := range report.Entries {
		lines = append(lines, fmt.Sprintf(
			"KSV entry %d: %s over %s TEUR, first installment %s, term %s months, debtor: %s",
			i+1, e.Kind, e.AmountTEUR, e.FirstPayment, e.TermMonths, e.Borrower,
		))
	}
	return strings.Join(lines, "\n")
}

// ForbearanceLine renders the free-text forbearance disclosure.
func ForbearanceLine(r RiskProfile) string {
	return Display(r.ForbearanceText)
}
