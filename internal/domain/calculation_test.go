package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculationTypeValidate(t *testing.T) {
	tests := []struct {
		name    string
		ct      CalculationType
		wantErr bool
	}{
		{"Simple", SimpleInterest, false},
		{"Compound", CompoundInterest, false},
		{"Compound periodic", CompoundPeriodic, false},
		{"Unknown", CalculationType("amortized"), true},
		{"Empty", CalculationType(""), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ct.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCalculationValidate(t *testing.T) {
	valid := Calculation{
		Type:        CompoundInterest,
		Principal:   1000,
		Rate:        5,
		Years:       2,
		Interest:    102.5,
		FinalAmount: 1102.5,
		Difference:  2.5,
		StartAt:     time.Now(),
		CreatedAt:   time.Now(),
	}

	tests := []struct {
		name    string
		mutate  func(c *Calculation)
		wantErr string
	}{
		{"Valid calculation", func(c *Calculation) {}, ""},
		{"Unknown type", func(c *Calculation) { c.Type = "weekly" }, "type"},
		{"Missing created_at", func(c *Calculation) { c.CreatedAt = time.Time{} }, "created_at"},
		{"NaN interest", func(c *Calculation) { c.Interest = math.NaN() }, "interest"},
		{"Infinite final amount", func(c *Calculation) { c.FinalAmount = math.Inf(1) }, "final_amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := valid
			tt.mutate(&calc)

			err := calc.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
