package bootstrap

import (
	"context"
	"testing"

	"github.com/ayankousky/interest-calculator/internal/infrastructure/telemetry"
	"github.com/ayankousky/interest-calculator/internal/notifier"
	"github.com/ayankousky/interest-calculator/internal/notifier/strategies"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions() *Options {
	opts := &Options{}
	opts.ServiceName = "interest-calculator-test"
	opts.Env = "test"
	return opts
}

func TestBuilderOrdering(t *testing.T) {
	tests := []struct {
		name    string
		build   func() (*App, error)
		wantErr string
	}{
		{
			name: "logger requires options",
			build: func() (*App, error) {
				return NewBuilder().WithLogger().Build()
			},
			wantErr: "options must be initialized before logger",
		},
		{
			name: "calculator requires logger",
			build: func() (*App, error) {
				b := NewBuilder()
				b.app.options = testOptions()
				return b.WithCalculator(context.Background()).Build()
			},
			wantErr: "options and logger must be initialized before calculator",
		},
		{
			name: "server requires calculator",
			build: func() (*App, error) {
				b := NewBuilder()
				b.app.options = testOptions()
				return b.WithLogger().WithServer().Build()
			},
			wantErr: "calculator must be initialized before server",
		},
		{
			name: "build fails on missing dependencies",
			build: func() (*App, error) {
				return NewBuilder().Build()
			},
			wantErr: "missing required dependencies",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, err := tt.build()
			require.Error(t, err)
			assert.Nil(t, app)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBuilderDefaultsToMemoryRepository(t *testing.T) {
	b := NewBuilder()
	b.app.options = testOptions()

	app, err := b.WithLogger().
		WithTelemetry().
		WithCalculator(context.Background()).
		WithNotifiers(context.Background()).
		WithServer().
		Build()

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.NotNil(t, app.calculator)
	assert.NotNil(t, app.server)
	assert.IsType(t, &telemetry.NoopProvider{}, app.telemetry)
	assert.Empty(t, app.notifiers, "no notifiers configured")
}

func TestBuilderConsoleNotifier(t *testing.T) {
	b := NewBuilder()
	opts := testOptions()
	opts.Notify.Console = true
	b.app.options = opts

	app, err := b.WithLogger().
		WithTelemetry().
		WithCalculator(context.Background()).
		WithNotifiers(context.Background()).
		WithServer().
		Build()

	require.NoError(t, err)
	require.Len(t, app.notifiers, 1)
	assert.Equal(t, notifier.QuoteInfoTopic, app.notifiers[0].Topic)
}

func TestSplitTopics(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []notifier.Topic
	}{
		{"Single topic", "QUOTE", []notifier.Topic{"QUOTE"}},
		{"Multiple topics", "QUOTE,ALERT_LARGE_QUOTE", []notifier.Topic{"QUOTE", "ALERT_LARGE_QUOTE"}},
		{"Whitespace trimmed", " QUOTE , QUOTE_INFO ", []notifier.Topic{"QUOTE", "QUOTE_INFO"}},
		{"Empty entries dropped", "QUOTE,,", []notifier.Topic{"QUOTE"}},
		{"Empty string", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitTopics(tt.input))
		})
	}
}

func TestStrategyForTopic(t *testing.T) {
	assert.IsType(t, &strategies.QuoteInfoStrategy{}, strategyForTopic(notifier.QuoteInfoTopic))
	assert.IsType(t, &strategies.AlertStrategy{}, strategyForTopic(notifier.AlertTopic))
	assert.IsType(t, &strategies.QuoteDataStrategy{}, strategyForTopic(notifier.QuoteTopic))
}
