package strategies

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/ayankousky/interest-calculator/internal/domain"
	"github.com/ayankousky/interest-calculator/internal/infrastructure/notify"
	"github.com/ayankousky/interest-calculator/internal/notifier"
)

const (
	headerFormat = "%-8s | %-17s | %12s | %7s | %6s | %4s | %12s | %12s\n"
	dataFormat   = "%-8s | %-17s | %12.2f | %6.2f%% | %6.2f | %4d | %12.2f | %12.2f\n"
)

// QuoteInfoStrategy prints a fixed-width line per served quote, reprinting
// the column header every 10 rows
type QuoteInfoStrategy struct {
	printCount atomic.Int64
}

// Format formats the calculation into a human-readable table row
func (s *QuoteInfoStrategy) Format(data any) []notify.Event {
	calc, ok := data.(*domain.Calculation)
	if !ok || calc == nil {
		return nil
	}

	var output strings.Builder
	count := s.printCount.Add(1)

	if count%10 == 1 {
		fmt.Fprintf(&output, headerFormat,
			"TIME",
			"TYPE",
			"PRINCIPAL",
			"RATE",
			"YEARS",
			"FREQ",
			"INTEREST",
			"TOTAL",
		)
	}

	fmt.Fprintf(&output, dataFormat,
		calc.CreatedAt.Format("15:04:05"),
		string(calc.Type),
		calc.Principal,
		calc.Rate,
		calc.Years,
		calc.Frequency,
		calc.Interest,
		calc.FinalAmount,
	)

	return []notify.Event{{
		Time:      time.Now(),
		EventType: string(notifier.QuoteInfoTopic),
		Data:      output.String(),
	}}
}
