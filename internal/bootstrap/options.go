package bootstrap

import "github.com/jessevdk/go-flags"

// Options holds all configuration options
type Options struct {
	Env         string `long:"env" env:"ENV" description:"Environment"`
	ServiceName string `long:"service-name" env:"SERVICE_NAME" default:"interest-calculator" description:"Service name"`

	Server struct {
		Addr string `long:"addr" env:"ADDR" description:"HTTP listen address (host:port)"`
	} `group:"server" namespace:"server" env-namespace:"SERVER"`

	Repository struct {
		Mongo struct {
			URL string `long:"url" env:"URL" description:"MongoDB URL"`
		} `group:"mongo" namespace:"mongo" env-namespace:"MONGO"`

		SQLite struct {
			DSN string `long:"dsn" env:"DSN" description:"SQLite database file path"`
		} `group:"sqlite" namespace:"sqlite" env-namespace:"SQLITE"`
	} `group:"repository" namespace:"repository" env-namespace:"REPOSITORY"`

	Notify struct {
		Console bool `long:"console" env:"CONSOLE" description:"Print a quote info line to stdout for every served quote"`

		Redis struct {
			URL    string `long:"url" env:"URL" description:"Redis URL"`
			Topics string `long:"topics" env:"TOPICS" description:"Comma-separated list of topics"`
		} `group:"redis" namespace:"redis" env-namespace:"REDIS"`

		Telegram struct {
			BotToken        string `long:"bot-token" env:"BOT_TOKEN" description:"Telegram bot token"`
			ChatID          string `long:"chat-id" env:"CHAT_ID" description:"Telegram chat ID"`
			Topics          string `long:"topics" env:"TOPICS" description:"Comma-separated list of topics"`
			IntervalSeconds int    `long:"interval-seconds" env:"INTERVAL_SECONDS" description:"Minimum seconds between Telegram messages"`
		} `group:"telegram" namespace:"telegram" env-namespace:"TELEGRAM"`
	} `group:"notify" namespace:"notify" env-namespace:"NOTIFY"`

	Telemetry struct {
		Datadog struct {
			AgentHost       string `long:"agent-host" env:"AGENT_HOST" description:"Datadog agent host"`
			AgentPort       string `long:"agent-port" env:"AGENT_PORT" default:"8126" description:"Datadog agent trace port"`
			EnableTracing   bool   `long:"enable-tracing" env:"ENABLE_TRACING" description:"Enable tracing"`
			EnableMetrics   bool   `long:"enable-metrics" env:"ENABLE_METRICS" description:"Enable statsd metrics"`
			EnableProfiling bool   `long:"enable-profiling" env:"ENABLE_PROFILING" description:"Enable continuous profiling"`
		} `group:"datadog" namespace:"datadog" env-namespace:"DATADOG"`
	} `group:"telemetry" namespace:"telemetry" env-namespace:"TELEMETRY"`
}

// ParseOptions parses command line arguments and environment variables
func ParseOptions() (*Options, error) {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		return nil, err
	}
	return &opts, nil
}
