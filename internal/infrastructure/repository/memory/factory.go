// Package memory provides in-memory repositories, the default when no
// external storage is configured
package memory

import "github.com/ayankousky/interest-calculator/internal/domain"

// Factory creates in-memory repositories
type Factory struct{}

// NewFactory creates a new in-memory repository factory
func NewFactory() *Factory {
	return &Factory{}
}

// GetCalculationRepository returns a new CalculationRepository
func (f *Factory) GetCalculationRepository(_ string) (domain.CalculationRepository, error) {
	return NewCalculationRepository(), nil
}
