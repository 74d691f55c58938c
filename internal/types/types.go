package types

// GenerateRequest is the single request contract: a full loan application to
// compile and hand to the narrative generator.
type GenerateRequest struct {
	FinancingType       string              `json:"financingType,options=real_estate|consumer_credit"`
	Recommendation      string              `json:"recommendation,optional"`
	Approval            string              `json:"approval,optional"`
	Borrowers           []Borrower          `json:"borrowers"`
	FinancingParameters FinancingParameters `json:"financingParameters"`
	RiskProfile         RiskProfile         `json:"riskProfile"`
	BureauEntries       BureauReport        `json:"bureauEntries"`
	CollateralText      string              `json:"collateralText,optional"`
	ScoringMetrics      ScoringMetrics      `json:"scoringMetrics,optional"`
}

type Borrower struct {
	Name              string `json:"name"`
	Family            string `json:"family,optional"`
	CurrentAddress    string `json:"currentAddress,optional"`
	Housing           string `json:"housing,optional"`
	Occupation        string `json:"occupation,optional"`
	EmployedSince     string `json:"employedSince,optional"`
	NetIncome         string `json:"netIncome,optional"`
	OtherIncomeDesc   string `json:"otherIncomeDesc,optional"`
	OtherIncomeAmount string `json:"otherIncomeAmount,optional"`
	CustomerSince     string `json:"customerSince,optional"`
	MainBank          string `json:"mainBank,optional"`
	AccountBehaviour  string `json:"accountBehaviour,optional"`
}

// FinancingParameters carries exactly one variant payload, matching the
// declared financingType.
type FinancingParameters struct {
	RealEstate *RealEstateTerms `json:"realEstate,optional"`
	Consumer   *ConsumerTerms   `json:"consumer,optional"`
}

type RealEstateTerms struct {
	PropertyAddress       string `json:"propertyAddress,optional"`
	PurchasePriceTEUR     string `json:"purchasePriceTeur,optional"`
	IncidentalCostsTEUR   string `json:"incidentalCostsTeur,optional"`
	RenovationTEUR        string `json:"renovationTeur,optional"`
	NotarialTEUR          string `json:"notarialTeur,optional"`
	EquityTEUR            string `json:"equityTeur,optional"`
	FixedRatePercent      string `json:"fixedRatePercent,optional"`
	FixedRateYears        string `json:"fixedRateYears,optional"`
	FixedRateEnd          string `json:"fixedRateEnd,optional"`
	VariableRateText      string `json:"variableRateText,optional"`
	EarlyRepaymentAllowed string `json:"earlyRepaymentAllowed,optional"`
}

type ConsumerTerms struct {
	Purpose    string `json:"purpose,optional"`
	AmountTEUR string `json:"amountTeur,optional"`
	EquityTEUR string `json:"equityTeur,optional"`
}

type RiskProfile struct {
	HouseholdCalc     string   `json:"householdCalc,optional"`
	OtherCreditVolume string   `json:"otherCreditVolume,optional"`
	Registry          Registry `json:"registry,optional"`
	ForbearanceText   string   `json:"forbearanceText,optional"`
}

type Registry struct {
	Flagged bool   `json:"flagged,optional"`
	Reason  string `json:"reason,optional"`
}

type BureauReport struct {
	Count   int           `json:"count,optional"`
	Entries []BureauEntry `json:"entries,optional"`
}

type BureauEntry struct {
	Kind         string `json:"kind,optional"`
	AmountTEUR   string `json:"amountTeur,optional"`
	FirstPayment string `json:"firstPayment,optional"`
	TermMonths   string `json:"termMonths,optional"`
	Borrower     string `json:"borrower,optional"`
}

// ScoringMetrics: the per-borrower scores are an ordered array aligned with
// the borrowers array, not per-index key names.
type ScoringMetrics struct {
	DebtBurdenRatio  string          `json:"debtBurdenRatio,optional"`
	DebtServiceRatio string          `json:"debtServiceRatio,optional"`
	LoanToValue      string          `json:"loanToValue,optional"`
	EquityRatio      string          `json:"equityRatio,optional"`
	Justification    string          `json:"justification,optional"`
	BorrowerScores   []BorrowerScore `json:"borrowerScores,optional"`
}

type BorrowerScore struct {
	Rating string `json:"rating,optional"`
	Score  string `json:"score,optional"`
}

// GenerateResponse carries the generated narrative unchanged.
type GenerateResponse struct {
	Text string `json:"text"`
}

// ErrorResponse is the uniform failure shape of the endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}
