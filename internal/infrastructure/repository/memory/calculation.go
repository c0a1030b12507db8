package memory

import (
	"context"
	"sync"
	"time"

	"github.com/ayankousky/interest-calculator/internal/domain"
)

// CalculationRepository keeps calculations in a slice guarded by a RWMutex
type CalculationRepository struct {
	calculations []domain.Calculation
	mu           sync.RWMutex
}

// NewCalculationRepository creates an empty in-memory repository
func NewCalculationRepository() *CalculationRepository {
	return &CalculationRepository{
		calculations: make([]domain.Calculation, 0),
	}
}

// Create appends a calculation
func (r *CalculationRepository) Create(_ context.Context, calc domain.Calculation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calculations = append(r.calculations, calc)
	return nil
}

// GetHistorySince returns all calculations created at or after the given time
func (r *CalculationRepository) GetHistorySince(_ context.Context, since time.Time) ([]domain.Calculation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Calculation, 0)
	for _, calc := range r.calculations {
		if !calc.CreatedAt.Before(since) {
			result = append(result, calc)
		}
	}
	return result, nil
}
