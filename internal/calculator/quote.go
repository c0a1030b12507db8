package calculator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ayankousky/interest-calculator/internal/domain"
	"github.com/ayankousky/interest-calculator/pkg/interest"
	"go.uber.org/zap"
)

// Quote serves one calculation request: validate and compute, record history,
// notify subscribers, persist. Validation failures surface unchanged so the
// caller can report the exact message; a storage failure is logged and counted
// but does not fail an already-served quote
func (c *Calculator) Quote(ctx context.Context, req domain.Request) (*domain.Calculation, error) {
	span, ctx := c.telemetry.StartSpan(ctx, telemetrySpanHandleQuote)
	defer span.Finish()

	startAt := time.Now()

	calc, err := c.compute(ctx, req)
	if err != nil {
		var validationErr *interest.ValidationError
		if errors.As(err, &validationErr) {
			c.telemetry.IncrementCounter(telemetryQuoteValidationErrors, 1, "field:"+validationErr.Field)
		}
		span.SetTag("error", true)
		span.SetTag("error.message", err.Error())
		return nil, err
	}

	calc.StartAt = startAt
	calc.CreatedAt = time.Now()
	calc.ComputeDurationMicros = calc.CreatedAt.Sub(startAt).Microseconds()

	if err := calc.Validate(); err != nil {
		return nil, fmt.Errorf("calculation validation failed: %w", err)
	}

	c.addHistory(calc)
	c.telemetry.Gauge(telemetryQuoteHistorySize, float64(c.history.Len()))
	c.telemetry.Gauge(telemetryQuoteFinalAmount, calc.FinalAmount, "type:"+string(calc.Type))
	span.SetTag("quote.type", string(calc.Type))

	c.notifier.Notify(ctx, calc)

	storeStart := time.Now()
	if err := c.repository.Create(ctx, *calc); err != nil {
		c.telemetry.IncrementCounter(telemetryQuoteStoreErrors, 1)
		c.logger.Error("Failed to store calculation", zap.Error(err))
	} else {
		c.telemetry.Timing(telemetryQuoteStoreDuration, time.Since(storeStart))
	}

	return calc, nil
}

// compute runs the requested formula and rounds the results. Pure except for
// the telemetry span around it
func (c *Calculator) compute(ctx context.Context, req domain.Request) (*domain.Calculation, error) {
	span, _ := c.telemetry.StartSpan(ctx, telemetrySpanComputeQuote)
	defer span.Finish()

	computeStart := time.Now()
	defer func() {
		c.telemetry.Timing(telemetryQuoteComputeDuration, time.Since(computeStart))
	}()

	var (
		accrued float64
		err     error
	)
	switch req.Type {
	case domain.SimpleInterest:
		accrued, err = interest.SimpleInterest(req.Principal, req.Rate, req.Years)
	case domain.CompoundInterest:
		accrued, err = interest.CompoundInterest(req.Principal, req.Rate, req.Years)
	case domain.CompoundPeriodic:
		accrued, err = interest.CompoundInterestAtFrequency(req.Principal, req.Rate, req.Years, req.Frequency)
	default:
		return nil, domain.ValidationError{Field: "type", Err: fmt.Errorf("unknown calculation type: '%s'", req.Type)}
	}
	if err != nil {
		return nil, err
	}

	// compound vs simple gap for the same inputs; inputs are already valid here
	difference, err := interest.InterestDifference(req.Principal, req.Rate, req.Years)
	if err != nil {
		return nil, err
	}

	roundedInterest, err := interest.RoundAmount(accrued, req.DecimalPlaces)
	if err != nil {
		return nil, err
	}
	roundedFinal, err := interest.RoundAmount(req.Principal+accrued, req.DecimalPlaces)
	if err != nil {
		return nil, err
	}
	roundedDifference, err := interest.RoundAmount(difference, req.DecimalPlaces)
	if err != nil {
		return nil, err
	}

	return &domain.Calculation{
		Type:          req.Type,
		Principal:     req.Principal,
		Rate:          req.Rate,
		Years:         req.Years,
		Frequency:     req.Frequency,
		DecimalPlaces: req.DecimalPlaces,
		Interest:      roundedInterest,
		FinalAmount:   roundedFinal,
		Difference:    roundedDifference,
	}, nil
}
