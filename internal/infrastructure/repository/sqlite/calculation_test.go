package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/ayankousky/interest-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculationRepository(t *testing.T) {
	factory, err := NewFactory(":memory:")
	require.NoError(t, err)

	repo, err := factory.GetCalculationRepository("quotes")
	require.NoError(t, err)

	ctx := context.Background()
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	calcs := []domain.Calculation{
		{
			Type:        domain.SimpleInterest,
			Principal:   1000,
			Rate:        5,
			Years:       2,
			Interest:    100,
			FinalAmount: 1100,
			CreatedAt:   base,
		},
		{
			Type:        domain.CompoundPeriodic,
			Principal:   1000,
			Rate:        5,
			Years:       2,
			Frequency:   4,
			Interest:    104.49,
			FinalAmount: 1104.49,
			CreatedAt:   base.Add(time.Hour),
		},
	}
	for _, calc := range calcs {
		require.NoError(t, repo.Create(ctx, calc))
	}

	history, err := repo.GetHistorySince(ctx, base)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, domain.SimpleInterest, history[0].Type)
	assert.Equal(t, 4, history[1].Frequency)
	assert.InDelta(t, 104.49, history[1].Interest, 0.001)

	recent, err := repo.GetHistorySince(ctx, base.Add(30*time.Minute))
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, domain.CompoundPeriodic, recent[0].Type)
}
