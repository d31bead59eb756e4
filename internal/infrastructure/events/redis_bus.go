package events

import (
	"context"
	"encoding/json"
	"sync"

	"academy_payments/internal/domain/entities"
	"academy_payments/internal/infrastructure/logger"
	"academy_payments/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const channelPrefix = "payments:events:"

// RedisBus publishes payment events over Redis pub/sub so every API
// instance can serve SSE streams.
type RedisBus struct {
	rdb *redis.Client
}

var _ interfaces.IEventBus = (*RedisBus)(nil)

func NewRedisBus(rdb *redis.Client) *RedisBus {
	return &RedisBus{rdb: rdb}
}

func channelFor(transactionID string) string {
	return channelPrefix + transactionID
}

func (b *RedisBus) Publish(ctx context.Context, ev entities.PaymentEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return b.rdb.Publish(ctx, channelFor(ev.TransactionID), payload).Err()
}

func (b *RedisBus) Subscribe(ctx context.Context, transactionID string) (<-chan entities.PaymentEvent, func(), error) {
	ps := b.rdb.Subscribe(ctx, channelFor(transactionID))
	// Wait for the subscription to be confirmed so no publish is missed.
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, nil, err
	}

	out := make(chan entities.PaymentEvent, subscriberBuffer)
	var once sync.Once
	cancel := func() {
		once.Do(func() { _ = ps.Close() })
	}

	go func() {
		defer close(out)
		msgs := ps.Channel()
		for {
			select {
			case <-ctx.Done():
				cancel()
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var ev entities.PaymentEvent
				if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
					logger.Warn("[events][redis] dropping malformed event", zap.String("channel", msg.Channel), zap.Error(err))
					continue
				}
				select {
				case out <- ev:
				default:
				}
			}
		}
	}()
	return out, cancel, nil
}
