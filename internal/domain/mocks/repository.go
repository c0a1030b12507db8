// Package mocks provides hand-rolled test doubles for domain contracts
package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/ayankousky/interest-calculator/internal/domain"
)

// CalculationRepositoryMock is a configurable mock of domain.CalculationRepository.
// Set the Func fields to control behavior; recorded calls are available via
// CreateCalls and GetHistorySinceCalls.
type CalculationRepositoryMock struct {
	CreateFunc          func(ctx context.Context, calc domain.Calculation) error
	GetHistorySinceFunc func(ctx context.Context, since time.Time) ([]domain.Calculation, error)

	mu                   sync.Mutex
	createCalls          []domain.Calculation
	getHistorySinceCalls []time.Time
}

var _ domain.CalculationRepository = &CalculationRepositoryMock{}

// Create records the call and delegates to CreateFunc when set
func (m *CalculationRepositoryMock) Create(ctx context.Context, calc domain.Calculation) error {
	m.mu.Lock()
	m.createCalls = append(m.createCalls, calc)
	m.mu.Unlock()

	if m.CreateFunc == nil {
		return nil
	}
	return m.CreateFunc(ctx, calc)
}

// GetHistorySince records the call and delegates to GetHistorySinceFunc when set
func (m *CalculationRepositoryMock) GetHistorySince(ctx context.Context, since time.Time) ([]domain.Calculation, error) {
	m.mu.Lock()
	m.getHistorySinceCalls = append(m.getHistorySinceCalls, since)
	m.mu.Unlock()

	if m.GetHistorySinceFunc == nil {
		return []domain.Calculation{}, nil
	}
	return m.GetHistorySinceFunc(ctx, since)
}

// CreateCalls returns the calculations passed to Create
func (m *CalculationRepositoryMock) CreateCalls() []domain.Calculation {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Calculation(nil), m.createCalls...)
}

// GetHistorySinceCalls returns the times passed to GetHistorySince
func (m *CalculationRepositoryMock) GetHistorySinceCalls() []time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]time.Time(nil), m.getHistorySinceCalls...)
}
