package bootstrap

import (
	"context"
	"fmt"

	"github.com/ayankousky/interest-calculator/internal/calculator"
	"github.com/ayankousky/interest-calculator/internal/infrastructure/notify"
	"github.com/ayankousky/interest-calculator/internal/infrastructure/server"
	"github.com/ayankousky/interest-calculator/internal/infrastructure/telemetry"
	"github.com/ayankousky/interest-calculator/internal/notifier"
	"github.com/ayankousky/interest-calculator/internal/notifier/strategies"
	"go.uber.org/zap"
)

// App represents the bootstrapped application
type App struct {
	logger     *zap.Logger
	calculator *calculator.Calculator
	server     *server.Server
	notifiers  []NotifierConfig
	telemetry  telemetry.Provider
	options    *Options
}

// NotifierConfig holds notifier configuration
type NotifierConfig struct {
	Client   notify.Client
	Topic    notifier.Topic
	Strategy notify.Strategy
}

// Start initializes and runs the application until ctx is canceled
func (a *App) Start(ctx context.Context) error {
	if a.telemetry != nil {
		if err := a.telemetry.Initialize(ctx); err != nil {
			a.logger.Warn("Error initializing telemetry", zap.Error(err))
		}
		defer a.telemetry.Shutdown()
	}

	// Add configured notifiers to the calculator
	for _, nc := range a.notifiers {
		if err := a.calculator.WithNotifier(nc.Client, nc.Topic, nc.Strategy); err != nil {
			a.logger.Warn("Error adding notifier", zap.Error(err))
		}
	}

	// WebSocket clients always receive the quote stream
	if err := a.calculator.WithNotifier(a.server.Hub(), notifier.QuoteTopic, &strategies.QuoteDataStrategy{}); err != nil {
		a.logger.Warn("Error adding WebSocket notifier", zap.Error(err))
	}

	if err := a.calculator.Start(ctx); err != nil {
		return fmt.Errorf("starting calculator: %w", err)
	}

	if err := a.server.Start(ctx); err != nil {
		return fmt.Errorf("running server: %w", err)
	}

	return nil
}
