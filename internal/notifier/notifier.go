package notifier

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ayankousky/interest-calculator/internal/infrastructure/notify"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Topic represents a notification topic
type Topic string

// Validate checks if the topic exists
func (t Topic) Validate() error {
	switch t {
	case QuoteTopic, QuoteInfoTopic, AlertTopic:
		return nil
	default:
		return fmt.Errorf("invalid topic: '%s'", t)
	}
}

const (
	// QuoteTopic carries every served calculation as structured data
	QuoteTopic Topic = "QUOTE"

	// QuoteInfoTopic carries a human-readable line per served calculation
	QuoteInfoTopic Topic = "QUOTE_INFO"

	// AlertTopic is triggered when a quote crosses the alert thresholds
	AlertTopic Topic = "ALERT_LARGE_QUOTE"
)

// sendTimeout bounds a single delivery to one subscriber
const sendTimeout = 5 * time.Second

// Notifier is the service responsible for handling notifications
type Notifier struct {
	handlers map[Topic][]handler
	mu       sync.RWMutex
	logger   *zap.Logger
}

type handler struct {
	client   notify.Client
	strategy notify.Strategy
}

// New creates a new Notifier
func New(logger *zap.Logger) *Notifier {
	return &Notifier{
		handlers: make(map[Topic][]handler),
		logger:   logger.With(zap.String("component", "notifier")),
	}
}

// Subscribe subscribes client to a topic with a given strategy
func (s *Notifier) Subscribe(topic Topic, client notify.Client, strategy notify.Strategy) error {
	if err := topic.Validate(); err != nil {
		return err
	}
	if client == nil {
		return fmt.Errorf("client cannot be nil")
	}
	if strategy == nil {
		return fmt.Errorf("strategy cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[topic] = append(s.handlers[topic], handler{
		client:   client,
		strategy: strategy,
	})
	return nil
}

// SubscriberCount returns the number of subscribers for a topic
func (s *Notifier) SubscriberCount(topic Topic) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.handlers[topic])
}

// Notify sends a notification to all subscribers of every topic
func (s *Notifier) Notify(ctx context.Context, data any) {
	if data == nil {
		s.logger.Warn("Received nil data for notification")
		return
	}

	s.notify(ctx, QuoteTopic, data)
	s.notify(ctx, QuoteInfoTopic, data)
	s.notify(ctx, AlertTopic, data)
}

func (s *Notifier) notify(ctx context.Context, topic Topic, data any) {
	s.mu.RLock()
	handlers := make([]handler, len(s.handlers[topic]))
	copy(handlers, s.handlers[topic])
	s.mu.RUnlock()

	if len(handlers) == 0 {
		return
	}

	// Deliver to subscribers in parallel; one slow client must not hold up the rest
	g, ctx := errgroup.WithContext(ctx)
	for _, h := range handlers {
		h := h
		g.Go(func() error {
			for _, event := range h.strategy.Format(data) {
				sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
				err := h.client.Send(sendCtx, event)
				cancel()
				if err != nil {
					s.logger.Error("Failed to send notification",
						zap.String("topic", string(topic)),
						zap.Error(err),
					)
					return err
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Error("Some notifications failed", zap.String("topic", string(topic)), zap.Error(err))
	}
}
