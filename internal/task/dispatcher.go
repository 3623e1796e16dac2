package task

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"

	"github.com/tickethub-io/tickethub/internal/domain"
	"github.com/tickethub-io/tickethub/internal/notification"
)

// Dispatcher implements ports.Notifier: it pushes notifications
// through the email sender with retries and mirrors order events to
// the telegram relay. Failures are logged and dropped, never raised.
type Dispatcher struct {
	sender   notification.Sender
	telegram *notification.TelegramRelay
	strategy retry.Strategy
	logger   logger.Logger
}

func NewDispatcher(
	sender notification.Sender,
	telegram *notification.TelegramRelay,
	log logger.Logger,
) *Dispatcher {
	return &Dispatcher{
		sender:   sender,
		telegram: telegram,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    2 * time.Second,
			Backoff:  2,
		},
		logger: log,
	}
}

func (d *Dispatcher) OrderConfirmation(ctx context.Context, order *domain.Order, user *domain.User) {
	err := Do(ctx, d.strategy, notification.IsTransient, func() error {
		return d.sender.SendOrderConfirmation(ctx, order.ID, user.Email)
	})
	if err != nil {
		d.logger.Error("order confirmation not delivered",
			logger.String("order_id", order.ID),
			logger.String("email", user.Email),
			logger.String("error", err.Error()),
		)
	}

	d.telegram.OrderConfirmed(ctx, user, order)
}

func (d *Dispatcher) OrderCancellation(ctx context.Context, order *domain.Order, user *domain.User) {
	err := Do(ctx, d.strategy, notification.IsTransient, func() error {
		return d.sender.SendOrderCancellation(ctx, order.ID, user.Email)
	})
	if err != nil {
		d.logger.Error("order cancellation not delivered",
			logger.String("order_id", order.ID),
			logger.String("email", user.Email),
			logger.String("error", err.Error()),
		)
	}

	d.telegram.OrderCanceled(ctx, user, order)
}

// EventCancellation sends the cancellation batch, retrying only the
// addresses that failed on the previous attempt.
func (d *Dispatcher) EventCancellation(ctx context.Context, event *domain.Event, emails []string) {
	if len(emails) == 0 {
		return
	}

	pending := emails
	err := Do(ctx, d.strategy, nil, func() error {
		res := d.sender.SendEventCancellationBatch(ctx, event.ID, event.Title, event.StartDate, pending)
		if res.Failed > 0 {
			pending = res.FailedEmails
			return fmt.Errorf("%d of %d cancellation emails failed", res.Failed, res.Total)
		}
		return nil
	})
	if err != nil {
		d.logger.Error("event cancellation batch incomplete",
			logger.String("event_id", event.ID),
			logger.Int("undelivered", len(pending)),
			logger.String("error", err.Error()),
		)
		return
	}

	d.logger.Info("event cancellation batch delivered",
		logger.String("event_id", event.ID),
		logger.Int("recipients", len(emails)),
	)
}

func (d *Dispatcher) EventReminder(ctx context.Context, event *domain.Event, emails []string) {
	for _, email := range emails {
		err := Do(ctx, d.strategy, notification.IsTransient, func() error {
			return d.sender.SendEventReminder(ctx, event.ID, event.Title, event.StartDate, event.Location, email)
		})
		if err != nil {
			d.logger.Error("event reminder not delivered",
				logger.String("event_id", event.ID),
				logger.String("email", email),
				logger.String("error", err.Error()),
			)
		}
	}
}
