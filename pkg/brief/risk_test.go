package brief

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryLine(t *testing.T) {
	t.Run("not flagged", func(t *testing.T) {
		require.Equal(t, "CRIF: no/immaterial", RegistryLine(RegistryIndicator{}))
	})

	t.Run("flagged with reason", func(t *testing.T) {
		line := RegistryLine(RegistryIndicator{Flagged: true, Reason: "settled arrears 2022"})
		require.Equal(t, "CRIF: yes/material — settled arrears 2022", line)
	})

	t.Run("flagged without reason uses fixed fallback", func(t *testing.T) {
		line := RegistryLine(RegistryIndicator{Flagged: true})
		require.Equal(t, "CRIF: yes/material — reason missing", line)
		require.False(t, strings.HasSuffix(line, "— "))
	})
}

func TestBureauBlock(t *testing.T) {
	t.Run("zero count renders literal regardless of stray entries", func(t *testing.T) {
		report := BureauReport{Count: 0, Entries: []BureauEntry{{Kind: "stray"}}}
		require.Equal(t, "KSV: 0", BureauBlock(report))
	})

	t.Run("entries render with 1-based index and fixed field order", func(t *testing.T) {
		report := BureauReport{
			Count: 2,
			Entries: []BureauEntry{
				{Kind: "consumer loan", AmountTEUR: "12", FirstPayment: "01/2023", TermMonths: "48", Borrower: "Max Muster"},
				{Kind: "leasing", AmountTEUR: "8,5", FirstPayment: "06/2024", TermMonths: "36", Borrower: "both"},
			},
		}
		want := "KSV entry 1: consumer loan over 12 TEUR, first installment 01/2023, term 48 months, debtor: Max Muster\n" +
			"KSV entry 2: leasing over 8,5 TEUR, first installment 06/2024, term 36 months, debtor: both"
		require.Equal(t, want, BureauBlock(report))
	})
}

func TestForbearanceLine(t *testing.T) {
	require.Equal(t, "deferral granted 2021", ForbearanceLine(RiskProfile{ForbearanceText: "deferral granted 2021"}))
	require.Equal(t, Placeholder, ForbearanceLine(RiskProfile{}))
}
