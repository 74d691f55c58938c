package brief

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProjectCostDerivation(t *testing.T) {
	terms := &RealEstateTerms{
		PurchasePriceTEUR:   "250",
		IncidentalCostsTEUR: "12,5",
		RenovationTEUR:      "0",
		NotarialTEUR:        "3,5",
		EquityTEUR:          "40",
	}
	costs := projectCosts(terms)

	require.InDelta(t, 266, costs.Total(), 1e-9)
	require.InDelta(t, 226, costs.RequiredVolume(), 1e-9)
	require.InDelta(t, 2260, costs.QuarterlyInstallment(), 1e-9)
}

func TestRequiredVolumeFlooredAtZero(t *testing.T) {
	cases := []struct {
		name   string
		equity string
	}{
		{"equity exceeds total", "500"},
		{"equity equals total", "266"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			costs := projectCosts(&RealEstateTerms{
				PurchasePriceTEUR:   "250",
				IncidentalCostsTEUR: "12,5",
				NotarialTEUR:        "3,5",
				EquityTEUR:          tc.equity,
			})
			require.GreaterOrEqual(t, costs.RequiredVolume(), 0.0)
			require.Zero(t, costs.QuarterlyInstallment())
		})
	}
}

func TestDerivationTreatsMissingAsZero(t *testing.T) {
	costs := projectCosts(&RealEstateTerms{PurchasePriceTEUR: "100"})
	require.InDelta(t, 100, costs.Total(), 1e-9)
	require.InDelta(t, 100, costs.RequiredVolume(), 1e-9)
	require.InDelta(t, 1000, costs.QuarterlyInstallment(), 1e-9)
}

func TestInstallmentIgnoresRateAndTerm(t *testing.T) {
	base := &RealEstateTerms{PurchasePriceTEUR: "200", EquityTEUR: "50"}
	withRate := &RealEstateTerms{
		PurchasePriceTEUR: "200",
		EquityTEUR:        "50",
		FixedRatePercent:  "3,75",
		FixedRateYears:    "20",
	}
	require.Equal(t, projectCosts(base).QuarterlyInstallment(), projectCosts(withRate).QuarterlyInstallment())
}

func TestFormatAmount(t *testing.T) {
	require.Equal(t, "266", formatAmount(266))
	require.Equal(t, "12.5", formatAmount(12.5))
	require.Equal(t, "0", formatAmount(0))
}
