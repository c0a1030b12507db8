package calculator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ayankousky/interest-calculator/internal/domain"
)

// initHistory loads recent calculations from the repository into the ring buffer
func (c *Calculator) initHistory(ctx context.Context) error {
	history, err := c.repository.GetHistorySince(ctx, time.Now().Add(-historyWarmupWindow))
	if err != nil {
		return fmt.Errorf("GetHistorySince failed: %w", err)
	}

	for i := range history {
		calc := history[i]
		c.addHistory(&calc)
	}

	return nil
}

func (c *Calculator) addHistory(calc *domain.Calculation) {
	c.history.Push(calc)
	c.stats.record(calc)
}

// RecentQuotes returns up to limit most recent calculations, newest last.
// A non-positive limit returns the full in-memory history
func (c *Calculator) RecentQuotes(limit int) []domain.Calculation {
	values := c.history.Values()
	if limit > 0 && len(values) > limit {
		values = values[len(values)-limit:]
	}

	out := make([]domain.Calculation, 0, len(values))
	for _, calc := range values {
		out = append(out, *calc)
	}
	return out
}

// LastQuote returns the most recently served calculation, if any
func (c *Calculator) LastQuote() (*domain.Calculation, bool) {
	return c.history.Last()
}

// TypeStats aggregates served quotes of one calculation type
type TypeStats struct {
	Count         int64   `json:"count"`
	TotalInterest float64 `json:"total_interest"`
}

// Stats is a snapshot of the per-type aggregates
type Stats struct {
	TotalQuotes int64                                `json:"total_quotes"`
	ByType      map[domain.CalculationType]TypeStats `json:"by_type"`
}

// quoteStats keeps running aggregates guarded by a mutex
type quoteStats struct {
	total  int64
	byType map[domain.CalculationType]TypeStats
	mu     sync.RWMutex
}

func newQuoteStats() *quoteStats {
	return &quoteStats{
		byType: make(map[domain.CalculationType]TypeStats),
	}
}

func (s *quoteStats) record(calc *domain.Calculation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.total++
	entry := s.byType[calc.Type]
	entry.Count++
	entry.TotalInterest += calc.Interest
	s.byType[calc.Type] = entry
}

// Stats returns a snapshot of the running aggregates
func (c *Calculator) Stats() Stats {
	c.stats.mu.RLock()
	defer c.stats.mu.RUnlock()

	byType := make(map[domain.CalculationType]TypeStats, len(c.stats.byType))
	for calcType, entry := range c.stats.byType {
		byType[calcType] = entry
	}

	return Stats{
		TotalQuotes: c.stats.total,
		ByType:      byType,
	}
}
