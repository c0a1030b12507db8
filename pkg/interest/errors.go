package interest

// ValidationError reports a rejected calculator input. Error() is the exact
// message callers are expected to surface to the end user.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validation failures returned by the calculator. Inputs are checked in a fixed
// order: principal, then rate, then time; frequency after those three.
var (
	ErrNegativePrincipal = &ValidationError{Field: "principal", Message: "Principal amount cannot be negative"}
	ErrNegativeRate      = &ValidationError{Field: "rate", Message: "Interest rate cannot be negative"}
	ErrNegativeTime      = &ValidationError{Field: "time", Message: "Time period cannot be negative"}
	ErrNonPositiveFreq   = &ValidationError{Field: "frequency", Message: "Compounding frequency must be positive"}
	ErrNegativeDecimals  = &ValidationError{Field: "decimalPlaces", Message: "Decimal places cannot be negative"}
)
