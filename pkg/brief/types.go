package brief

// FinancingType tags the two supported financing variants.
type FinancingType string

const (
	FinancingRealEstate FinancingType = "real_estate"
	FinancingConsumer   FinancingType = "consumer_credit"
)

// Account behaviour categories reported for a borrower's main account.
const (
	BehaviourVeryPositive       = "very positive"
	BehaviourPositive           = "positive"
	BehaviourMixed              = "mixed"
	BehaviourFrequentOverdrafts = "frequent overdrafts"
)

// Borrower describes one loan applicant. All monetary fields are kept as the
// raw strings entered during data capture; normalisation happens at format or
// derivation time, never here.
type Borrower struct {
	Name              string
	Family            string
	CurrentAddress    string // optional, omitted from output when empty
	Housing           string
	Occupation        string
	EmployedSince     string
	NetIncome         string
	OtherIncomeDesc   string // both-or-neither with OtherIncomeAmount
	OtherIncomeAmount string
	CustomerSince     string
	MainBank          string
	AccountBehaviour  string
}

// RealEstateTerms carries the residential financing variant. Cost figures are
// expressed in TEUR (thousand currency units).
type RealEstateTerms struct {
	PropertyAddress       string
	PurchasePriceTEUR     string
	IncidentalCostsTEUR   string
	RenovationTEUR        string
	NotarialTEUR          string
	EquityTEUR            string
	FixedRatePercent      string
	FixedRateYears        string
	FixedRateEnd          string
	VariableRateText      string
	EarlyRepaymentAllowed string // rendered as-is, defaults to "No" when empty
}

// ConsumerTerms carries the consumer-credit variant.
type ConsumerTerms struct {
	Purpose    string
	AmountTEUR string
	EquityTEUR string
}

// RegistryIndicator is the external-negative-registry flag with its reason.
type RegistryIndicator struct {
	Flagged bool
	Reason  string
}

// RiskProfile groups household calculation, other credit volume, registry and
// forbearance inputs. All values are precomputed upstream; this layer only
// formats them.
type RiskProfile struct {
	HouseholdCalc     string
	OtherCreditVolume string
	Registry          RegistryIndicator
	ForbearanceText   string
}

// BureauEntry is one existing obligation reported by the credit registry.
type BureauEntry struct {
	Kind         string
	AmountTEUR   string
	FirstPayment string
	TermMonths   string
	Borrower     string // a borrower's name or the literal "both"
}

// BureauReport pairs the declared entry count with the entries themselves.
// Count must equal len(Entries); the mismatch is rejected by Validate.
type BureauReport struct {
	Count   int
	Entries []BureauEntry
}

// BorrowerScore pairs a rating label with a post-financing bureau score,
// aligned positionally with the borrowers slice.
type BorrowerScore struct {
	Rating string
	Score  string
}

// ScoringMetrics holds the four aggregate ratios, the free-text justification
// and the ordered per-borrower scores.
type ScoringMetrics struct {
	DebtBurdenRatio  string // BELQ
	DebtServiceRatio string // DSTI
	LoanToValue      string // LTV
	EquityRatio      string // EIFA
	Justification    string
	BorrowerScores   []BorrowerScore
}

// Application aggregates everything a single compilation request needs.
// Exactly one of RealEstate / Consumer is set, matching Type.
type Application struct {
	Type           FinancingType
	Recommendation string
	Approval       string
	Borrowers      []Borrower
	RealEstate     *RealEstateTerms
	Consumer       *ConsumerTerms
	Risk           RiskProfile
	Bureau         BureauReport
	CollateralText string
	Scoring        ScoringMetrics
}
