package domain

import (
	"fmt"
	"strings"
)

// QuoteAlertThresholds defines when a served quote is large enough to alert on
type QuoteAlertThresholds struct {
	MinPrincipal   float64 // principal at or above this triggers an alert
	MinFinalAmount float64 // final amount at or above this triggers an alert
	MinDifference  float64 // compound-vs-simple gap at or above this triggers an alert
}

// FormatQuoteAlert formats a calculation into a readable alert message.
// The second return value reports whether any threshold was crossed
func FormatQuoteAlert(calc *Calculation, thresholds QuoteAlertThresholds) (string, bool) {
	if calc == nil {
		return "", false
	}

	var lines []string
	hasAlert := false

	if thresholds.MinPrincipal > 0 && calc.Principal >= thresholds.MinPrincipal {
		hasAlert = true
		lines = append(lines, fmt.Sprintf("⚠️ <b>Large Quote</b>\nPrincipal: %.2f", calc.Principal))
	}
	if thresholds.MinFinalAmount > 0 && calc.FinalAmount >= thresholds.MinFinalAmount {
		hasAlert = true
		lines = append(lines, fmt.Sprintf("💰 <b>Large Final Amount</b>\nTotal: %.2f", calc.FinalAmount))
	}
	if thresholds.MinDifference > 0 && calc.Difference >= thresholds.MinDifference {
		hasAlert = true
		lines = append(lines, fmt.Sprintf("📈 <b>Compounding Gap</b>\nCompound vs simple: %.2f", calc.Difference))
	}

	if !hasAlert {
		return "", false
	}

	lines = append(lines, fmt.Sprintf("%s | rate %.2f%% | %.2f years", calc.Type, calc.Rate, calc.Years))
	return strings.Join(lines, "\n\n"), true
}
