package brief

import "fmt"

// ValidationError marks a malformed application. Callers use it to map
// compile-side rejections to a client error rather than a generator failure.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func invalidf(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

var accountBehaviours = map[string]struct{}{
	BehaviourVeryPositive:       {},
	BehaviourPositive:           {},
	BehaviourMixed:              {},
	BehaviourFrequentOverdrafts: {},
}

// Validate applies the structural invariants an application must satisfy
// before compilation. Missing optional data is never an error; only shape
// violations are rejected.
func Validate(app *Application) error {
	if app == nil {
		return invalidf("application is required")
	}

	switch app.Type {
	case FinancingRealEstate:
		if app.RealEstate == nil {
			return invalidf("financing parameters for %s are required", app.Type)
		}
	case FinancingConsumer:
		if app.Consumer == nil {
			return invalidf("financing parameters for %s are required", app.Type)
		}
	default:
		return invalidf("unknown financing type %q", app.Type)
	}

	if n := len(app.Borrowers); n < 1 || n > 4 {
		return invalidf("borrower count must be 1-4, got %d", n)
	}
	for i, b := range app.Borrowers {
		if b.AccountBehaviour == "" {
			continue
		}
		if _, ok := accountBehaviours[b.AccountBehaviour]; !ok {
			return invalidf("borrower[%d]: unknown account behaviour %q", i, b.AccountBehaviour)
		}
	}

	if app.Bureau.Count < 0 {
		return invalidf("bureau entry count cannot be negative, got %d", app.Bureau.Count)
	}
	if app.Bureau.Count != 0 && len(app.Bureau.Entries) != app.Bureau.Count {
		return invalidf("bureau entry count mismatch: declared %d, got %d entries",
			app.Bureau.Count, len(app.Bureau.Entries))
	}

	return nil
}
