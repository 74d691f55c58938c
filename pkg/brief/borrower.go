package brief

import (
	"fmt"
	"strings"
)

const noAdditionalIncome = "Additional income: none / not applicable"

// BorrowerBlock renders every borrower as one fixed-template paragraph, in
// slice order. Slice order is significant: it determines "Borrower 1",
// "Borrower 2" and so on throughout the downstream narrative.
func BorrowerBlock(borrowers []Borrower) string {
	lines := make([]string, 0, len(borrowers))
	for _, b := range borrowers {
		lines = append(lines, borrowerParagraph(b))
	}
	return strings.Join(lines, "\n")
}

func borrowerParagraph(b Borrower) string {
	addr := ""
	if b.CurrentAddress != "" {
		addr = fmt.Sprintf("Address: %s. ", b.CurrentAddress)
	}

	return fmt.Sprintf(
		"- %s: %s. %sHousing: %s. Occupation & employer: %s. Employed since %s, monthly net income EUR %s. %s. Customer since %s; main bank: %s; account behaviour: %s.",
		b.Name, b.Family, addr, b.Housing, b.Occupation, b.EmployedSince,
		b.NetIncome, additionalIncomeClause(b), b.CustomerSince, b.MainBank,
		b.AccountBehaviour,
	)
}

// additionalIncomeClause is a binary choice: both description and amount, or
// the fixed literal. A lone description (or a lone amount) counts as absent.
func additionalIncomeClause(b Borrower) string {
	if b.OtherIncomeDesc == "" || b.OtherIncomeAmount == "" {
		return noAdditionalIncome
	}
	return fmt.Sprintf("Additional income: %s amounting to %s per month", b.OtherIncomeDesc, b.OtherIncomeAmount)
}
