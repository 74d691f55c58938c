package brief

import (
	"fmt"
	"strings"
)

// Prompt is the two-part generation request handed to the narrative
// generator: fixed instruction text plus the compiled brief.
type Prompt struct {
	Instructions string
	Brief        string
}

// Assembler composes compiled briefs. It carries the instruction text, which
// is fixed per deployment and rendered once at startup.
type Assembler struct {
	instructions string
}

// NewAssembler constructs an Assembler around the given instruction text.
func NewAssembler(instructions string) *Assembler {
	return &Assembler{instructions: instructions}
}

// Assemble compiles the application into the final two-part request. It is a
// pure function of its input: identical applications produce byte-identical
// prompts.
func (a *Assembler) Assemble(app *Application) Prompt {
	var b strings.Builder

	fmt.Fprintf(&b, "Financing type: %s\n\n", financingLabel(app.Type))
	fmt.Fprintf(&b, "Recommendation: %s\n", Display(app.Recommendation))
	fmt.Fprintf(&b, "Approval: %s\n\n", Display(app.Approval))

	switch app.Type {
	case FinancingRealEstate:
		b.WriteString(realEstateBlock(app.RealEstate))
	case FinancingConsumer:
		b.WriteString(consumerBlock(app.Consumer))
	}

	fmt.Fprintf(&b, "\n-- Borrowers --\n%s\n", BorrowerBlock(app.Borrowers))

	fmt.Fprintf(&b, "\n-- Household / bureau reports --\n")
	fmt.Fprintf(&b, "HHC: %s\n", app.Risk.HouseholdCalc)
	fmt.Fprintf(&b, "OCV: %s\n", app.Risk.OtherCreditVolume)
	fmt.Fprintf(&b, "%s\n%s\n", RegistryLine(app.Risk.Registry), BureauBlock(app.Bureau))

	fmt.Fprintf(&b, "\n-- Forbearance --\n%s\n", ForbearanceLine(app.Risk))
	fmt.Fprintf(&b, "\n-- Collateral --\n%s\n", Display(app.CollateralText))

	fmt.Fprintf(&b, "\n-- Key ratios --\n%s\n%s\n",
		RatioLines(app.Scoring), RatingLines(app.Borrowers, app.Scoring.BorrowerScores))

	fmt.Fprintf(&b, "\nSpecific reasons:\n%s\n", Display(strings.TrimSpace(app.Scoring.Justification)))

	return Prompt{
		Instructions: a.instructions,
		Brief:        b.String(),
	}
}

func financingLabel(t FinancingType) string {
	if t == FinancingConsumer {
		return "Consumer credit"
	}
	return "Residential real-estate financing"
}

// realEstateBlock renders the purpose sentence, the project cost breakdown
// and the agreed conditions. Cost components print as normalised numbers, so
// an unparsable entry shows up as 0 in the breakdown.
func realEstateBlock(t *RealEstateTerms) string {
	costs := projectCosts(t)

	var b strings.Builder
	fmt.Fprintf(&b, "The loan serves the acquisition of the property at %s.\n\n", Display(t.PropertyAddress))

	b.WriteString("The project costs break down as follows:\n")
	fmt.Fprintf(&b, "- %s TEUR purchase price\n", formatAmount(costs.PurchasePrice))
	fmt.Fprintf(&b, "- %s TEUR incidental costs\n", formatAmount(costs.IncidentalCosts))
	fmt.Fprintf(&b, "- %s TEUR renovation\n", formatAmount(costs.Renovation))
	fmt.Fprintf(&b, "- %s TEUR notarial and escrow costs\n", formatAmount(costs.Notarial))
	fmt.Fprintf(&b, "= %s TEUR total project cost\n", formatAmount(costs.Total()))
	fmt.Fprintf(&b, "+ %s TEUR equity\n", formatAmount(costs.Equity))
	fmt.Fprintf(&b, "= %s TEUR required financing volume\n\n", formatAmount(costs.RequiredVolume()))

	early := t.EarlyRepaymentAllowed
	if early == "" {
		early = "No"
	}
	b.WriteString("The following conditions were agreed:\n")
	fmt.Fprintf(&b, "- nominal rate %s %% fixed for %s years until %s, thereafter variable: %s\n",
		Display(t.FixedRatePercent), Display(t.FixedRateYears), Display(t.FixedRateEnd), Display(t.VariableRateText))
	fmt.Fprintf(&b, "- installment ≈ EUR %s / quarter\n", formatAmount(costs.QuarterlyInstallment()))
	fmt.Fprintf(&b, "- penalty-free early repayments: %s\n", early)
	return b.String()
}

// consumerBlock renders the purpose paragraph verbatim; no cost derivation
// applies to the consumer variant.
func consumerBlock(t *ConsumerTerms) string {
	return fmt.Sprintf(
		"The applicant requires the present financing of %s TEUR for %s. Equity of %s TEUR is contributed.\n",
		Display(t.AmountTEUR), Display(t.Purpose), Display(t.EquityTEUR),
	)
}
