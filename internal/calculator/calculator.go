// Package calculator is the quote service: it runs the interest formulas for
// incoming requests, keeps a rolling history, notifies subscribers, and
// persists every served calculation
package calculator

import (
	"context"
	"fmt"
	"time"

	"github.com/ayankousky/interest-calculator/internal/domain"
	"github.com/ayankousky/interest-calculator/internal/infrastructure/notify"
	"github.com/ayankousky/interest-calculator/internal/infrastructure/telemetry"
	"github.com/ayankousky/interest-calculator/internal/notifier"
	"github.com/ayankousky/interest-calculator/pkg/utils"
	"go.uber.org/zap"
)

// historyWarmupWindow is how far back Start reads persisted calculations
// when repopulating the in-memory history
const historyWarmupWindow = 24 * time.Hour

// RepositoryFactory provides repositories for the calculator service
type RepositoryFactory interface {
	GetCalculationRepository(name string) (domain.CalculationRepository, error)
}

// Calculator orchestrates quote handling end to end
type Calculator struct {
	repository domain.CalculationRepository
	notifier   *notifier.Notifier
	telemetry  telemetry.Provider
	logger     *zap.Logger

	history *utils.RingBuffer[*domain.Calculation]
	stats   *quoteStats
}

// New creates a Calculator backed by the given repository factory
func New(repoFactory RepositoryFactory, logger *zap.Logger) (*Calculator, error) {
	repo, err := repoFactory.GetCalculationRepository("quotes")
	if err != nil {
		return nil, fmt.Errorf("creating calculation repository: %w", err)
	}

	return &Calculator{
		repository: repo,
		notifier:   notifier.New(logger),
		telemetry:  &telemetry.NoopProvider{},
		logger:     logger.With(zap.String("component", "calculator")),
		history:    utils.NewRingBuffer[*domain.Calculation](domain.MaxQuoteHistory),
		stats:      newQuoteStats(),
	}, nil
}

// WithTelemetry sets the telemetry provider
func (c *Calculator) WithTelemetry(provider telemetry.Provider) {
	if provider == nil {
		return
	}
	c.telemetry = provider
}

// WithNotifier subscribes a notification client to a topic with a formatting strategy
func (c *Calculator) WithNotifier(client notify.Client, topic notifier.Topic, strategy notify.Strategy) error {
	return c.notifier.Subscribe(topic, client, strategy)
}

// Start warms up the in-memory history from persisted calculations
func (c *Calculator) Start(ctx context.Context) error {
	if err := c.initHistory(ctx); err != nil {
		return fmt.Errorf("initializing history: %w", err)
	}

	c.logger.Info("Calculator started", zap.Int("history_size", c.history.Len()))
	return nil
}
