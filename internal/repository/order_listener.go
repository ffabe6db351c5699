package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderChannel is the NOTIFY channel raised by the orders table trigger on
// any insert, update or delete.
const orderChannel = "orders_changed"

// OrderListener delivers coarse change events for the orders collection.
// Events carry no payload; the consumer reconciles by reloading the full
// list. The subscription lives on one dedicated pooled connection and is
// torn down when the context ends.
type OrderListener struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderListener creates a listener over the given pool.
func NewOrderListener(pool *pgxpool.Pool, logger zerolog.Logger) *OrderListener {
	return &OrderListener{
		pool:   pool,
		logger: logger.With().Str("component", "order-listener").Logger(),
	}
}

// Listen subscribes to order change notifications. The returned channel is
// closed when ctx is cancelled. Events are dropped rather than buffered when
// the consumer is behind; a missed event is harmless because reconciliation
// is a full reload.
func (l *OrderListener) Listen(ctx context.Context) (<-chan struct{}, error) {
	conn, err := l.acquire(ctx)
	if err != nil {
		return nil, err
	}

	events := make(chan struct{}, 1)

	go func() {
		defer close(events)
		defer func() {
			if conn != nil {
				conn.Release()
			}
		}()

		for {
			_, err := conn.Conn().WaitForNotification(ctx)
			if err != nil {
				if ctx.Err() != nil {
					l.logger.Info().Msg("order listener stopped")
					return
				}

				l.logger.Error().Err(err).Msg("order notification wait failed, resubscribing")
				conn.Release()
				conn = nil

				conn, err = l.reacquire(ctx)
				if err != nil {
					l.logger.Error().Err(err).Msg("order listener could not resubscribe")
					return
				}
				continue
			}

			select {
			case events <- struct{}{}:
			default:
			}
		}
	}()

	l.logger.Info().Str("channel", orderChannel).Msg("order change subscription established")

	return events, nil
}

func (l *OrderListener) acquire(ctx context.Context) (*pgxpool.Conn, error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire listener connection: %w", err)
	}

	if _, err := conn.Exec(ctx, "LISTEN "+orderChannel); err != nil {
		conn.Release()
		return nil, fmt.Errorf("failed to listen on %s: %w", orderChannel, err)
	}

	return conn, nil
}

// reacquire retries the subscription until it succeeds or the context ends.
func (l *OrderListener) reacquire(ctx context.Context) (*pgxpool.Conn, error) {
	for {
		conn, err := l.acquire(ctx)
		if err == nil {
			return conn, nil
		}

		l.logger.Warn().Err(err).Msg("retrying order listener subscription")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Second):
		}
	}
}
