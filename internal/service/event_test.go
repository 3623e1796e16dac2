package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tickethub-io/tickethub/internal/domain"
	"github.com/tickethub-io/tickethub/internal/service/ports/mocks"
)

func newEventService(t *testing.T) (*EventService, *mocks.MockEventRepo, *mocks.MockNotifier) {
	repo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockNotifier(t)
	svc := NewEventService(repo, notifier, newTestLogger(t))
	return svc, repo, notifier
}

func validEventInput() domain.CreateEventInput {
	return domain.CreateEventInput{
		Title:         "Summer Concert",
		Location:      "Berlin",
		StartDate:     time.Now().Add(48 * time.Hour),
		EndDate:       time.Now().Add(52 * time.Hour),
		TotalCapacity: 100,
		TicketPrice:   decimal.RequireFromString("29.99"),
	}
}

func TestEventService_Create_Success(t *testing.T) {
	svc, repo, _ := newEventService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.Create(context.Background(), validEventInput())

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, 100, event.TotalCapacity)
	assert.Equal(t, 100, event.AvailableTickets)
	assert.False(t, event.IsPublished)
}

func TestEventService_Create_Validation(t *testing.T) {
	svc, _, _ := newEventService(t)

	tests := []struct {
		name   string
		mutate func(*domain.CreateEventInput)
	}{
		{"empty title", func(in *domain.CreateEventInput) { in.Title = "" }},
		{"zero capacity", func(in *domain.CreateEventInput) { in.TotalCapacity = 0 }},
		{"negative price", func(in *domain.CreateEventInput) { in.TicketPrice = decimal.NewFromInt(-1) }},
		{"past start", func(in *domain.CreateEventInput) { in.StartDate = time.Now().Add(-time.Hour) }},
		{"end before start", func(in *domain.CreateEventInput) { in.EndDate = in.StartDate.Add(-time.Hour) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validEventInput()
			tt.mutate(&input)

			_, err := svc.Create(context.Background(), input)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestEventService_GetByID_HidesUnpublished(t *testing.T) {
	svc, repo, _ := newEventService(t)

	event := &domain.Event{ID: "e1", IsPublished: false}
	repo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	_, err := svc.GetByID(context.Background(), "e1", &alice)

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_GetByID_AdminSeesUnpublished(t *testing.T) {
	svc, repo, _ := newEventService(t)

	event := &domain.Event{ID: "e1", IsPublished: false}
	repo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	got, err := svc.GetByID(context.Background(), "e1", &admin)

	require.NoError(t, err)
	assert.Equal(t, "e1", got.ID)
}

func TestEventService_List_ForcesPublishedForNonAdmin(t *testing.T) {
	svc, repo, _ := newEventService(t)

	repo.EXPECT().List(mock.Anything, mock.Anything).Run(func(ctx context.Context, f domain.EventFilter) {
		assert.True(t, f.PublishedOnly)
	}).Return(nil, nil)

	_, err := svc.List(context.Background(), domain.EventFilter{}, nil)

	require.NoError(t, err)
}

func TestEventService_Publish_Success(t *testing.T) {
	svc, repo, _ := newEventService(t)

	event := &domain.Event{ID: "e1", IsPublished: false}
	repo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	got, err := svc.Publish(context.Background(), "e1")

	require.NoError(t, err)
	assert.True(t, got.IsPublished)
}

func TestEventService_Publish_AlreadyPublished(t *testing.T) {
	svc, repo, _ := newEventService(t)

	event := &domain.Event{ID: "e1", IsPublished: true}
	repo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	got, err := svc.Publish(context.Background(), "e1")

	require.NoError(t, err)
	assert.True(t, got.IsPublished)
}

func TestEventService_Publish_Canceled(t *testing.T) {
	svc, repo, _ := newEventService(t)

	event := &domain.Event{ID: "e1", IsCanceled: true}
	repo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	_, err := svc.Publish(context.Background(), "e1")

	assert.ErrorIs(t, err, domain.ErrEventCanceled)
}

func TestEventService_Update_ResizesCapacity(t *testing.T) {
	svc, repo, _ := newEventService(t)

	event := &domain.Event{ID: "e1", Title: "Concert", TotalCapacity: 100, AvailableTickets: 60}
	newCapacity := 150

	repo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	repo.EXPECT().Resize(mock.Anything, "e1", 150).Return(nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Update(context.Background(), "e1", domain.UpdateEventInput{
		TotalCapacity: &newCapacity,
	})

	require.NoError(t, err)
}

func TestEventService_Update_CapacityBelowSold(t *testing.T) {
	svc, repo, _ := newEventService(t)

	event := &domain.Event{ID: "e1", TotalCapacity: 100, AvailableTickets: 60}
	newCapacity := 30

	repo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	repo.EXPECT().Resize(mock.Anything, "e1", 30).Return(domain.ErrCapacityViolation)

	_, err := svc.Update(context.Background(), "e1", domain.UpdateEventInput{
		TotalCapacity: &newCapacity,
	})

	assert.ErrorIs(t, err, domain.ErrCapacityViolation)
}

func TestEventService_Update_RejectsCancelFlag(t *testing.T) {
	svc, _, _ := newEventService(t)

	canceled := true
	_, err := svc.Update(context.Background(), "e1", domain.UpdateEventInput{
		IsCanceled: &canceled,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Cancel_NotifiesTicketHolders(t *testing.T) {
	svc, repo, notifier := newEventService(t)

	event := &domain.Event{ID: "e1", Title: "Concert"}
	emails := []string{"a@example.com", "b@example.com"}

	repo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	repo.EXPECT().TicketHolderEmails(mock.Anything, "e1").Return(emails, nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().EventCancellation(mock.Anything, event, emails).Return()

	got, err := svc.Cancel(context.Background(), "e1")

	require.NoError(t, err)
	assert.True(t, got.IsCanceled)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestEventService_Cancel_Idempotent(t *testing.T) {
	svc, repo, _ := newEventService(t)

	event := &domain.Event{ID: "e1", IsCanceled: true}
	repo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	got, err := svc.Cancel(context.Background(), "e1")

	require.NoError(t, err)
	assert.True(t, got.IsCanceled)
}

func TestEventService_Delete_WithOrders(t *testing.T) {
	svc, repo, _ := newEventService(t)

	repo.EXPECT().HasOrders(mock.Anything, "e1").Return(true, nil)

	err := svc.Delete(context.Background(), "e1")

	assert.ErrorIs(t, err, domain.ErrEventHasOrders)
}

func TestEventService_Delete_Success(t *testing.T) {
	svc, repo, _ := newEventService(t)

	repo.EXPECT().HasOrders(mock.Anything, "e1").Return(false, nil)
	repo.EXPECT().Delete(mock.Anything, "e1").Return(nil)

	err := svc.Delete(context.Background(), "e1")

	require.NoError(t, err)
}
