package events

import (
	"context"
	"sync"

	"academy_payments/internal/domain/entities"
	"academy_payments/internal/usecase/interfaces"
)

const subscriberBuffer = 8

// MemoryBus fans payment events out to subscribers in this process.
// Slow subscribers lose events instead of blocking publishers.
type MemoryBus struct {
	mu   sync.Mutex
	subs map[string]map[chan entities.PaymentEvent]struct{}
}

var _ interfaces.IEventBus = (*MemoryBus)(nil)

func NewMemoryBus() *MemoryBus {
	return &MemoryBus{subs: map[string]map[chan entities.PaymentEvent]struct{}{}}
}

func (b *MemoryBus) Publish(_ context.Context, ev entities.PaymentEvent) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs[ev.TransactionID] {
		select {
		case ch <- ev:
		default:
		}
	}
	return nil
}

// Subscribe returns a channel closed by cancel or when ctx ends.
func (b *MemoryBus) Subscribe(ctx context.Context, transactionID string) (<-chan entities.PaymentEvent, func(), error) {
	ch := make(chan entities.PaymentEvent, subscriberBuffer)

	b.mu.Lock()
	if b.subs[transactionID] == nil {
		b.subs[transactionID] = map[chan entities.PaymentEvent]struct{}{}
	}
	b.subs[transactionID][ch] = struct{}{}
	b.mu.Unlock()

	done := make(chan struct{})
	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs[transactionID], ch)
			if len(b.subs[transactionID]) == 0 {
				delete(b.subs, transactionID)
			}
			close(ch)
			b.mu.Unlock()
			close(done)
		})
	}
	go func() {
		select {
		case <-ctx.Done():
			cancel()
		case <-done:
		}
	}()
	return ch, cancel, nil
}
