package strategies

import (
	"time"

	"github.com/ayankousky/interest-calculator/internal/domain"
	"github.com/ayankousky/interest-calculator/internal/infrastructure/notify"
	"github.com/ayankousky/interest-calculator/internal/notifier"
)

// DefaultAlertThresholds gate the alert strategy when no custom thresholds are given
var DefaultAlertThresholds = domain.QuoteAlertThresholds{
	MinPrincipal:   1_000_000,
	MinFinalAmount: 5_000_000,
	MinDifference:  100_000,
}

// AlertStrategy emits a human-readable alert when a quote crosses the thresholds
type AlertStrategy struct {
	Thresholds domain.QuoteAlertThresholds
}

// NewAlertStrategy creates an AlertStrategy with the default thresholds
func NewAlertStrategy() *AlertStrategy {
	return &AlertStrategy{Thresholds: DefaultAlertThresholds}
}

// Format returns a single alert event, or nothing when no threshold is crossed
func (s *AlertStrategy) Format(data any) []notify.Event {
	calc, ok := data.(*domain.Calculation)
	if !ok || calc == nil {
		return nil
	}

	message, hasAlert := domain.FormatQuoteAlert(calc, s.Thresholds)
	if !hasAlert {
		return nil
	}

	return []notify.Event{{
		Time:      time.Now(),
		EventType: string(notifier.AlertTopic),
		Data:      message,
	}}
}
