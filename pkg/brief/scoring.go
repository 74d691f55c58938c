package brief

import (
	"fmt"
	"strings"
)

const ratingNotApplicable = "not applicable"

// RatioLines renders the four aggregate ratios unconditionally, each with the
// placeholder fallback and a percent suffix.
func RatioLines(s ScoringMetrics) string {
	return strings.Join([]string{
		fmt.Sprintf("BELQ: %s%%", Display(s.DebtBurdenRatio)),
		fmt.Sprintf("DSTI: %s%%", Display(s.DebtServiceRatio)),
		fmt.Sprintf("LTV: %s%%", Display(s.LoanToValue)),
		fmt.Sprintf("EIFA: %s%%", Display(s.EquityRatio)),
	}, "\n")
}

// RatingLines renders one rating line per borrower position. Scores are
// paired positionally with the borrowers slice; a missing score drops the
// whole segment rather than printing a placeholder.
func RatingLines(borrowers []Borrower, scores []BorrowerScore) string {
	lines := make([]string, 0, len(borrowers))
	for i, b := range borrowers {
		name := b.Name
		if name == "" {
			name = fmt.Sprintf("Borrower %d", i+1)
		}

		var score BorrowerScore
		if i < len(scores) {
			score = scores[i]
		}
		rating := score.Rating
		if rating == "" {
			rating = ratingNotApplicable
		}

		line := fmt.Sprintf("%s: Rating %s", name, rating)
		if score.Score != "" {
			line += fmt.Sprintf(" | Score: %s", score.Score)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
