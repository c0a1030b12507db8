// Package mocks provides test doubles for notify contracts
package mocks

import (
	"context"
	"sync"

	"github.com/ayankousky/interest-calculator/internal/infrastructure/notify"
)

// ClientMock is a configurable mock of notify.Client
type ClientMock struct {
	SendFunc func(ctx context.Context, event notify.Event) error

	mu        sync.Mutex
	sendCalls []notify.Event
}

// Send records the call and delegates to SendFunc when set
func (m *ClientMock) Send(ctx context.Context, event notify.Event) error {
	m.mu.Lock()
	m.sendCalls = append(m.sendCalls, event)
	m.mu.Unlock()

	if m.SendFunc == nil {
		return nil
	}
	return m.SendFunc(ctx, event)
}

// SendCalls returns the events passed to Send
func (m *ClientMock) SendCalls() []notify.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]notify.Event(nil), m.sendCalls...)
}
