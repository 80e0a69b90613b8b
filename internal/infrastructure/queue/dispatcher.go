package queue

import (
	"context"
	"hash/fnv"
	"time"

	"github.com/rs/zerolog"

	"github.com/streamvault/identity-api/internal/api/metrics"
	"github.com/streamvault/identity-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
	sendTimeout    = 30 * time.Second
)

// Dispatcher delivers account notifications on a fixed set of background
// workers, sharded by recipient so per-user mail keeps its order. It
// implements ports.Notifier: Send enqueues and returns immediately, making
// notification delivery fire-and-forget for the caller. Delivery failures
// are logged and counted, never surfaced.
type Dispatcher struct {
	workers []chan ports.Notification
	mailer  ports.Notifier
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, mailer ports.Notifier, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.Notification, numWorkers),
		mailer:  mailer,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.Notification, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Send enqueues a notification for background delivery. Non-blocking up to
// channelBuffer capacity per worker; a full queue drops the notification
// rather than stall a registration.
func (d *Dispatcher) Send(_ context.Context, n ports.Notification) error {
	select {
	case d.workers[d.shardIndex(n.Email)] <- n:
	default:
		metrics.NotificationsTotal.WithLabelValues("dropped").Inc()
		d.log.Warn().Str("email", n.Email).Msg("notification queue full, dropping")
	}
	return nil
}

// shardIndex maps a recipient deterministically to a worker index.
func (d *Dispatcher) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(email))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.Notification) {
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-ch:
			if !ok {
				return
			}
			sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
			err := d.mailer.Send(sendCtx, n)
			cancel()
			if err != nil {
				metrics.NotificationsTotal.WithLabelValues("failed").Inc()
				d.log.Error().Err(err).
					Str("email", n.Email).
					Int("worker_id", id).
					Msg("notification delivery failed")
				continue
			}
			metrics.NotificationsTotal.WithLabelValues("sent").Inc()
		}
	}
}
