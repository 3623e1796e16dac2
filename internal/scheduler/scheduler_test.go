package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"

	"github.com/tickethub-io/tickethub/internal/domain"
	"github.com/tickethub-io/tickethub/internal/scheduler/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_SendsReminders(t *testing.T) {
	events := mocks.NewMockReminderSource(t)
	notifier := mocks.NewMockReminderNotifier(t)
	log := newTestLogger(t)

	s := New(events, notifier, 50*time.Millisecond, 24*time.Hour, log)

	event := &domain.Event{ID: "e1", Title: "Concert"}
	emails := []string{"a@example.com", "b@example.com"}

	events.EXPECT().UpcomingUnreminded(mock.Anything, 24*time.Hour).Return([]*domain.Event{event}, nil)
	events.EXPECT().TicketHolderEmails(mock.Anything, "e1").Return(emails, nil)
	notifier.EXPECT().EventReminder(mock.Anything, event, emails).Return()
	events.EXPECT().MarkReminderSent(mock.Anything, "e1").Return(nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(events.Calls), 3)
}

func TestScheduler_Tick_SkipsEventsWithoutHolders(t *testing.T) {
	events := mocks.NewMockReminderSource(t)
	notifier := mocks.NewMockReminderNotifier(t)
	log := newTestLogger(t)

	s := New(events, notifier, 50*time.Millisecond, 24*time.Hour, log)

	event := &domain.Event{ID: "e1", Title: "Concert"}

	events.EXPECT().UpcomingUnreminded(mock.Anything, 24*time.Hour).Return([]*domain.Event{event}, nil)
	events.EXPECT().TicketHolderEmails(mock.Anything, "e1").Return(nil, nil)
	events.EXPECT().MarkReminderSent(mock.Anything, "e1").Return(nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	notifier.AssertNotCalled(t, "EventReminder", mock.Anything, mock.Anything, mock.Anything)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	events := mocks.NewMockReminderSource(t)
	notifier := mocks.NewMockReminderNotifier(t)
	log := newTestLogger(t)

	s := New(events, notifier, 50*time.Millisecond, 24*time.Hour, log)

	events.EXPECT().UpcomingUnreminded(mock.Anything, 24*time.Hour).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(events.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	events := mocks.NewMockReminderSource(t)
	notifier := mocks.NewMockReminderNotifier(t)
	log := newTestLogger(t)

	s := New(events, notifier, time.Second, 24*time.Hour, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}
