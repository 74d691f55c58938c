package brief

import (
	"math"
	"strconv"
)

// ProjectCosts holds the normalised cost components of a real-estate
// financing, all in TEUR.
type ProjectCosts struct {
	PurchasePrice   float64
	IncidentalCosts float64
	Renovation      float64
	Notarial        float64
	Equity          float64
}

// projectCosts normalises the raw real-estate cost fields.
func projectCosts(t *RealEstateTerms) ProjectCosts {
	return ProjectCosts{
		PurchasePrice:   Amount(t.PurchasePriceTEUR),
		IncidentalCosts: Amount(t.IncidentalCostsTEUR),
		Renovation:      Amount(t.RenovationTEUR),
		Notarial:        Amount(t.NotarialTEUR),
		Equity:          Amount(t.EquityTEUR),
	}
}

// Total returns the aggregate project cost in TEUR.
func (c ProjectCosts) Total() float64 {
	return c.PurchasePrice + c.IncidentalCosts + c.Renovation + c.Notarial
}

// RequiredVolume returns the financing volume in TEUR after equity, floored
// at zero.
func (c ProjectCosts) RequiredVolume() float64 {
	return math.Max(0, c.Total()-c.Equity)
}

// QuarterlyInstallment estimates the periodic repayment in base currency
// units as 1% of the required volume. The estimate deliberately ignores the
// stated rate and term; the upstream calculation has always worked this way
// and downstream narratives quote it as a rough figure, so it is kept intact.
func (c ProjectCosts) QuarterlyInstallment() float64 {
	return math.Round(c.RequiredVolume() * 1000 * 0.01)
}

// formatAmount renders a derived figure without trailing zeros, matching the
// plain numeric style of the capture layer (266, 12.5).
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
