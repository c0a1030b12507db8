// Package interest implements simple and compound interest math over annual
// percentage rates. All functions are pure: they either return a value or a
// *ValidationError describing the first rejected input.
package interest

import (
	"math"

	"github.com/shopspring/decimal"
)

// validateInputs checks the shared principal/rate/time triple.
// The check order (principal, rate, time) determines which message is
// reported when several inputs are invalid at once.
func validateInputs(principal, rate, years float64) error {
	if principal < 0 {
		return ErrNegativePrincipal
	}
	if rate < 0 {
		return ErrNegativeRate
	}
	if years < 0 {
		return ErrNegativeTime
	}
	return nil
}

// SimpleInterest returns P*R*T/100: interest accrued linearly on the
// original principal only. Rate is an annual percentage, years may be fractional.
func SimpleInterest(principal, rate, years float64) (float64, error) {
	if err := validateInputs(principal, rate, years); err != nil {
		return 0, err
	}
	return principal * rate * years / 100, nil
}

// CompoundInterest returns P*(1+R/100)^T - P: interest compounded once per year.
func CompoundInterest(principal, rate, years float64) (float64, error) {
	if err := validateInputs(principal, rate, years); err != nil {
		return 0, err
	}
	return principal*math.Pow(1+rate/100, years) - principal, nil
}

// CompoundInterestAtFrequency returns P*(1+R/(100n))^(nT) - P where n is the
// number of compounding periods per year. Frequency is validated after the
// shared principal/rate/time checks.
func CompoundInterestAtFrequency(principal, rate, years float64, frequency int) (float64, error) {
	if err := validateInputs(principal, rate, years); err != nil {
		return 0, err
	}
	if frequency <= 0 {
		return 0, ErrNonPositiveFreq
	}
	n := float64(frequency)
	return principal*math.Pow(1+rate/(100*n), n*years) - principal, nil
}

// SimpleInterestAmount returns principal plus simple interest.
func SimpleInterestAmount(principal, rate, years float64) (float64, error) {
	si, err := SimpleInterest(principal, rate, years)
	if err != nil {
		return 0, err
	}
	return principal + si, nil
}

// CompoundInterestAmount returns principal plus compound interest.
func CompoundInterestAmount(principal, rate, years float64) (float64, error) {
	ci, err := CompoundInterest(principal, rate, years)
	if err != nil {
		return 0, err
	}
	return principal + ci, nil
}

// InterestDifference returns compound minus simple interest for the same inputs.
// Non-negative for all valid inputs since compounding never yields less.
func InterestDifference(principal, rate, years float64) (float64, error) {
	ci, err := CompoundInterest(principal, rate, years)
	if err != nil {
		return 0, err
	}
	si, err := SimpleInterest(principal, rate, years)
	if err != nil {
		return 0, err
	}
	return ci - si, nil
}

// RoundAmount rounds to the given number of decimal places using half-up
// (ties away from zero). The value goes through an exact decimal
// representation so that e.g. 2.345 at 2 places yields 2.35 rather than the
// 2.34 a naive float round produces.
func RoundAmount(amount float64, decimalPlaces int) (float64, error) {
	if decimalPlaces < 0 {
		return 0, ErrNegativeDecimals
	}
	return decimal.NewFromFloat(amount).Round(int32(decimalPlaces)).InexactFloat64(), nil
}
