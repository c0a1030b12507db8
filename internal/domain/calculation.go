package domain

import (
	"context"
	"fmt"
	"math"
	"time"
)

// MaxQuoteHistory is the number of recent calculations kept in memory
const MaxQuoteHistory = 1000

// DefaultDecimalPlaces is the precision quotes are rounded to unless the
// request asks for something else
const DefaultDecimalPlaces = 2

// CalculationType identifies which interest formula served a quote
type CalculationType string

const (
	// SimpleInterest accrues linearly on the original principal only
	SimpleInterest CalculationType = "simple"

	// CompoundInterest compounds once per year
	CompoundInterest CalculationType = "compound"

	// CompoundPeriodic compounds at an explicit number of periods per year
	CompoundPeriodic CalculationType = "compound_periodic"
)

// Validate checks that the calculation type is one of the known formulas
func (ct CalculationType) Validate() error {
	switch ct {
	case SimpleInterest, CompoundInterest, CompoundPeriodic:
		return nil
	default:
		return fmt.Errorf("unknown calculation type: '%s'", ct)
	}
}

// Request describes a single quote request: which formula to apply and its
// numeric inputs. Rate is an annual percentage (5 means 5%), Years may be
// fractional, Frequency is only consulted for CompoundPeriodic
type Request struct {
	Type          CalculationType `json:"type"`
	Principal     float64         `json:"principal"`
	Rate          float64         `json:"rate"`
	Years         float64         `json:"years"`
	Frequency     int             `json:"frequency,omitempty"`
	DecimalPlaces int             `json:"decimal_places"`
}

// Calculation is the record of one served quote. It carries the request
// inputs together with the computed results and timing, and is what gets
// persisted and pushed to notification subscribers
type Calculation struct {
	Type          CalculationType `json:"type" bson:"type"`
	Principal     float64         `json:"principal" bson:"principal"`
	Rate          float64         `json:"rate" bson:"rate"`
	Years         float64         `json:"years" bson:"years"`
	Frequency     int             `json:"frequency,omitempty" bson:"frequency,omitempty"`
	DecimalPlaces int             `json:"decimal_places" bson:"decimal_places"`

	Interest    float64 `json:"interest" bson:"interest"`
	FinalAmount float64 `json:"final_amount" bson:"final_amount"`
	// Difference is compound minus simple interest for the same inputs
	Difference float64 `json:"difference" bson:"difference"`

	StartAt   time.Time `json:"start_at" bson:"start_at"`     // request accepted at
	CreatedAt time.Time `json:"created_at" bson:"created_at"` // results ready at

	ComputeDurationMicros int64 `json:"compute_duration_micros" bson:"compute_duration_micros"`
}

// CalculationRepository represents the calculation storage contract
type CalculationRepository interface {
	Create(ctx context.Context, calc Calculation) error
	GetHistorySince(ctx context.Context, since time.Time) ([]Calculation, error)
}

// Validate checks the internal consistency of a served calculation before it
// is persisted or published
func (c *Calculation) Validate() error {
	if err := c.Type.Validate(); err != nil {
		return ValidationError{Field: "type", Err: err}
	}
	if c.CreatedAt.IsZero() {
		return ValidationError{Field: "created_at", Err: fmt.Errorf("must be set")}
	}
	for field, v := range map[string]float64{
		"interest":     c.Interest,
		"final_amount": c.FinalAmount,
		"difference":   c.Difference,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ValidationError{Field: field, Err: fmt.Errorf("is not a finite number")}
		}
	}
	return nil
}
