package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ayankousky/interest-calculator/internal/calculator"
	"github.com/ayankousky/interest-calculator/internal/infrastructure"
	"github.com/ayankousky/interest-calculator/internal/infrastructure/notify"
	"github.com/ayankousky/interest-calculator/internal/infrastructure/repository/memory"
	mongoRepo "github.com/ayankousky/interest-calculator/internal/infrastructure/repository/mongo"
	sqliteRepo "github.com/ayankousky/interest-calculator/internal/infrastructure/repository/sqlite"
	"github.com/ayankousky/interest-calculator/internal/infrastructure/server"
	"github.com/ayankousky/interest-calculator/internal/infrastructure/telemetry"
	"github.com/ayankousky/interest-calculator/internal/notifier"
	"github.com/ayankousky/interest-calculator/internal/notifier/strategies"
)

// Builder builds the App instance
type Builder struct {
	app *App
	err error
}

// NewBuilder creates a new Builder instance
func NewBuilder() *Builder {
	return &Builder{
		app: &App{},
	}
}

// WithOptionsFetch adds parsed options to the App
func (b *Builder) WithOptionsFetch() *Builder {
	if b.err != nil {
		return b
	}

	opts, err := ParseOptions()
	if err != nil {
		b.err = fmt.Errorf("parsing options: %w", err)
		return b
	}

	b.app.options = opts
	return b
}

// WithLogger initializes the logger
func (b *Builder) WithLogger() *Builder {
	if b.err != nil {
		return b
	}

	if b.app.options == nil {
		b.err = fmt.Errorf("options must be initialized before logger")
		return b
	}

	logger, err := infrastructure.NewLogger(b.app.options.Env, b.app.options.ServiceName)
	if err != nil {
		b.err = fmt.Errorf("creating logger: %w", err)
		return b
	}

	b.app.logger = logger
	return b
}

// WithTelemetry initializes the telemetry provider
func (b *Builder) WithTelemetry() *Builder {
	if b.err != nil {
		return b
	}

	if b.app.options == nil {
		b.err = fmt.Errorf("options must be initialized before telemetry")
		return b
	}

	dd := b.app.options.Telemetry.Datadog
	if dd.AgentHost == "" || (!dd.EnableTracing && !dd.EnableMetrics && !dd.EnableProfiling) {
		b.app.telemetry = &telemetry.NoopProvider{}
		return b
	}

	b.app.telemetry = telemetry.NewDatadogProvider(&telemetry.DatadogConfig{
		AgentHost:       dd.AgentHost,
		AgentPort:       dd.AgentPort,
		ServiceName:     b.app.options.ServiceName,
		ServiceEnv:      b.app.options.Env,
		EnableTracing:   dd.EnableTracing,
		EnableMetrics:   dd.EnableMetrics,
		EnableProfiling: dd.EnableProfiling,
	})
	return b
}

// WithCalculator initializes the quote service with the configured repository.
// Mongo wins over SQLite; with neither configured the service runs on the
// in-memory repository
func (b *Builder) WithCalculator(ctx context.Context) *Builder {
	if b.err != nil {
		return b
	}

	if b.app.options == nil || b.app.logger == nil {
		b.err = fmt.Errorf("options and logger must be initialized before calculator")
		return b
	}

	repoFactory, err := b.repositoryFactory(ctx)
	if err != nil {
		b.err = fmt.Errorf("creating repository factory: %w", err)
		return b
	}

	calc, err := calculator.New(repoFactory, b.app.logger)
	if err != nil {
		b.err = fmt.Errorf("creating calculator: %w", err)
		return b
	}

	if b.app.telemetry != nil {
		calc.WithTelemetry(b.app.telemetry)
	}

	b.app.calculator = calc
	return b
}

func (b *Builder) repositoryFactory(ctx context.Context) (calculator.RepositoryFactory, error) {
	opts := b.app.options

	if opts.Repository.Mongo.URL != "" {
		mongoClient, err := infrastructure.NewMongoClient(ctx, opts.Repository.Mongo.URL)
		if err != nil {
			return nil, fmt.Errorf("creating mongo client: %w", err)
		}
		return mongoRepo.NewFactory(mongoClient)
	}

	if opts.Repository.SQLite.DSN != "" {
		return sqliteRepo.NewFactory(opts.Repository.SQLite.DSN)
	}

	return memory.NewFactory(), nil
}

// WithNotifiers initializes the configured notification clients
func (b *Builder) WithNotifiers(ctx context.Context) *Builder {
	if b.err != nil {
		return b
	}

	if b.app.options == nil || b.app.logger == nil {
		b.err = fmt.Errorf("options and logger must be initialized before notifiers")
		return b
	}

	var notifiers []NotifierConfig
	opts := b.app.options

	if opts.Notify.Console {
		notifiers = append(notifiers, NotifierConfig{
			Client:   notify.NewConsoleNotifier(),
			Topic:    notifier.QuoteInfoTopic,
			Strategy: &strategies.QuoteInfoStrategy{},
		})
	}

	if opts.Notify.Redis.URL != "" {
		redisClient, err := infrastructure.NewRedisClient(ctx, opts.Notify.Redis.URL, 1)
		if err != nil {
			b.app.logger.Warn("Failed to initialize Redis notifier", zap.Error(err))
		} else {
			for _, topic := range splitTopics(opts.Notify.Redis.Topics) {
				notifiers = append(notifiers, NotifierConfig{
					Client:   notify.NewRedisNotifier(redisClient, fmt.Sprintf("%s:%s", opts.ServiceName, topic)),
					Topic:    topic,
					Strategy: strategyForTopic(topic),
				})
			}
		}
	}

	if opts.Notify.Telegram.BotToken != "" && opts.Notify.Telegram.ChatID != "" {
		tgNotifier, err := notify.NewTelegramNotifier(
			opts.Notify.Telegram.BotToken,
			opts.Notify.Telegram.ChatID,
			opts.Notify.Telegram.IntervalSeconds,
		)
		if err != nil {
			b.app.logger.Warn("Failed to initialize Telegram notifier", zap.Error(err))
		} else {
			for _, topic := range splitTopics(opts.Notify.Telegram.Topics) {
				notifiers = append(notifiers, NotifierConfig{
					Client:   tgNotifier,
					Topic:    topic,
					Strategy: strategyForTopic(topic),
				})
			}
		}
	}

	b.app.notifiers = notifiers
	return b
}

// WithServer initializes the HTTP server
func (b *Builder) WithServer() *Builder {
	if b.err != nil {
		return b
	}

	if b.app.options == nil || b.app.logger == nil || b.app.calculator == nil {
		b.err = fmt.Errorf("options, logger, and calculator must be initialized before server")
		return b
	}

	b.app.server = server.New(server.Config{
		Addr:       b.app.options.Server.Addr,
		Calculator: b.app.calculator,
		Logger:     b.app.logger,
	})
	return b
}

// Build returns the built App instance
func (b *Builder) Build() (*App, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.app.logger == nil ||
		b.app.calculator == nil ||
		b.app.server == nil ||
		b.app.options == nil {
		return nil, fmt.Errorf("missing required dependencies")
	}

	return b.app, nil
}

func splitTopics(topics string) []notifier.Topic {
	var result []notifier.Topic
	for _, t := range strings.Split(topics, ",") {
		if trimmed := strings.TrimSpace(t); trimmed != "" {
			result = append(result, notifier.Topic(trimmed))
		}
	}
	return result
}

// strategyForTopic maps a topic to its default formatting strategy
func strategyForTopic(topic notifier.Topic) notify.Strategy {
	switch topic {
	case notifier.QuoteInfoTopic:
		return &strategies.QuoteInfoStrategy{}
	case notifier.AlertTopic:
		return strategies.NewAlertStrategy()
	default:
		return &strategies.QuoteDataStrategy{}
	}
}
