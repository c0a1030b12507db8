// Package strategies implements the notification formatting strategies
package strategies

import (
	"time"

	"github.com/ayankousky/interest-calculator/internal/domain"
	"github.com/ayankousky/interest-calculator/internal/infrastructure/notify"
	"github.com/ayankousky/interest-calculator/internal/notifier"
)

// QuoteDataStrategy sends every served calculation as a structured event
// for machine consumers (redis subscribers, websocket clients)
type QuoteDataStrategy struct{}

// Format turns a calculation into a single structured event
func (s *QuoteDataStrategy) Format(data any) []notify.Event {
	calc, ok := data.(*domain.Calculation)
	if !ok || calc == nil {
		return nil
	}

	return []notify.Event{{
		Time:      time.Now(),
		EventType: string(notifier.QuoteTopic),
		Data:      *calc,
	}}
}
