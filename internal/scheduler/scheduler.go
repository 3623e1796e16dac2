package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/tickethub-io/tickethub/internal/domain"
	"github.com/tickethub-io/tickethub/internal/metrics"
)

type reminderSource interface {
	UpcomingUnreminded(ctx context.Context, window time.Duration) ([]*domain.Event, error)
	TicketHolderEmails(ctx context.Context, eventID string) ([]string, error)
	MarkReminderSent(ctx context.Context, eventID string) error
}

type reminderNotifier interface {
	EventReminder(ctx context.Context, event *domain.Event, emails []string)
}

// Scheduler periodically sends reminder emails to ticket holders of
// events starting within the reminder window.
type Scheduler struct {
	events   reminderSource
	notifier reminderNotifier
	interval time.Duration
	window   time.Duration
	logger   logger.Logger
}

func New(
	events reminderSource,
	notifier reminderNotifier,
	interval time.Duration,
	window time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		events:   events,
		notifier: notifier,
		interval: interval,
		window:   window,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
		logger.Duration("window", s.window),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	events, err := s.events.UpcomingUnreminded(ctx, s.window)
	if err != nil {
		s.logger.Error("failed to load events for reminders",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, event := range events {
		emails, err := s.events.TicketHolderEmails(ctx, event.ID)
		if err != nil {
			s.logger.Error("failed to load ticket holders",
				logger.String("event_id", event.ID),
				logger.String("error", err.Error()),
			)
			continue
		}

		if len(emails) > 0 {
			s.notifier.EventReminder(ctx, event, emails)
		}

		if err := s.events.MarkReminderSent(ctx, event.ID); err != nil {
			s.logger.Error("failed to mark reminder sent",
				logger.String("event_id", event.ID),
				logger.String("error", err.Error()),
			)
			continue
		}

		metrics.RemindersSentTotal.Inc()
		s.logger.Info("event reminder sent",
			logger.String("event_id", event.ID),
			logger.Int("recipients", len(emails)),
		)
	}
}
