package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/hollis-dev/storefront-api/internal/config"
	"github.com/hollis-dev/storefront-api/internal/domain"
	"github.com/hollis-dev/storefront-api/internal/mail"
)

// Errors returned by Enqueue.
var (
	ErrDispatcherClosed = errors.New("notification dispatcher is closed")
	ErrQueueFull        = errors.New("notification queue is full")
)

// Dispatcher fans notifications out to a pool of workers that deliver them
// through a Mailer. It satisfies the api.UserNotifier interface.
type Dispatcher struct {
	mailer     mail.Mailer
	queue      chan Notification
	workers    int
	ctx        context.Context
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
	logger     *slog.Logger

	mu     sync.Mutex
	closed bool
}

// NewDispatcher creates a Dispatcher with the configured worker count and
// queue capacity. Call Start before enqueueing.
func NewDispatcher(mailer mail.Mailer, cfg config.NotifyConfig, logger *slog.Logger) *Dispatcher {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	queueSize := cfg.QueueSize
	if queueSize < 1 {
		queueSize = 1
	}
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Dispatcher{
		mailer:     mailer,
		queue:      make(chan Notification, queueSize),
		workers:    workers,
		ctx:        ctx,
		cancelFunc: cancel,
		logger:     logger.With(slog.String("component", "notify_dispatcher")),
	}
}

// Start launches the worker goroutines.
func (d *Dispatcher) Start() {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(i)
	}
	d.logger.Info("notification dispatcher started",
		slog.Int("workers", d.workers),
		slog.Int("queue_cap", cap(d.queue)))
}

// Stop drains the queue and waits for in-flight deliveries to finish.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
	d.cancelFunc()
	d.logger.Info("notification dispatcher stopped")
}

// Enqueue adds a notification for background delivery. A full queue drops
// the notification rather than blocking the caller.
func (d *Dispatcher) Enqueue(notification Notification) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrDispatcherClosed
	}

	select {
	case d.queue <- notification:
		d.logger.Debug("notification enqueued",
			slog.String("notification_id", notification.ID.String()),
			slog.String("kind", notification.Kind),
			slog.Int("queue_len", len(d.queue)))
		return nil
	default:
		return fmt.Errorf("%w: capacity %d reached", ErrQueueFull, cap(d.queue))
	}
}

// UserCreated queues the post-registration fan-out: a welcome mail for the
// new user and an alert per active administrator. Implements the handler's
// UserNotifier contract, so nothing here may fail the caller; every problem
// is logged and swallowed.
func (d *Dispatcher) UserCreated(ctx context.Context, newUser *domain.User, admins []*domain.User) {
	log := d.logger.With(slog.String("user_id", newUser.ID.String()))

	welcome, err := NewAccountCreated(newUser)
	if err != nil {
		log.ErrorContext(ctx, "failed to build welcome notification", "error", err)
	} else if err := d.Enqueue(welcome); err != nil {
		log.WarnContext(ctx, "dropped welcome notification", "error", err)
	}

	for _, admin := range admins {
		alert, err := NewUserAlert(admin, newUser)
		if err != nil {
			log.ErrorContext(ctx, "failed to build admin alert",
				"error", err,
				"admin_id", admin.ID)
			continue
		}
		if err := d.Enqueue(alert); err != nil {
			log.WarnContext(ctx, "dropped admin alert",
				"error", err,
				"admin_id", admin.ID)
		}
	}
}

// worker consumes the queue until it is closed and drained.
func (d *Dispatcher) worker(id int) {
	defer d.wg.Done()

	log := d.logger.With(slog.Int("worker_id", id))
	log.Debug("notification worker started")

	for notification := range d.queue {
		if err := d.mailer.Send(d.ctx, notification.To, notification.Subject, notification.Body); err != nil {
			log.Error("notification delivery failed",
				"error", err,
				"notification_id", notification.ID,
				"kind", notification.Kind)
			continue
		}
		log.Debug("notification delivered",
			"notification_id", notification.ID,
			"kind", notification.Kind)
	}

	log.Debug("notification worker stopped")
}
