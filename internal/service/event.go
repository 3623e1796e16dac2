package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/tickethub-io/tickethub/internal/domain"
	"github.com/tickethub-io/tickethub/internal/service/ports"
)

type EventService struct {
	repo     ports.EventRepo
	notifier ports.Notifier
	logger   logger.Logger
}

func NewEventService(repo ports.EventRepo, notifier ports.Notifier, log logger.Logger) *EventService {
	return &EventService{
		repo:     repo,
		notifier: notifier,
		logger:   log,
	}
}

func (s *EventService) Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.TotalCapacity <= 0 {
		return nil, fmt.Errorf("%w: total_capacity must be positive", domain.ErrValidation)
	}
	if input.TicketPrice.IsNegative() {
		return nil, fmt.Errorf("%w: ticket_price must not be negative", domain.ErrValidation)
	}
	if input.StartDate.Before(time.Now()) {
		return nil, fmt.Errorf("%w: start_date must be in the future", domain.ErrValidation)
	}
	if !input.EndDate.IsZero() && input.EndDate.Before(input.StartDate) {
		return nil, fmt.Errorf("%w: end_date must not precede start_date", domain.ErrValidation)
	}

	event := &domain.Event{
		ID:               uuid.New().String(),
		Title:            input.Title,
		Description:      input.Description,
		Location:         input.Location,
		StartDate:        input.StartDate,
		EndDate:          input.EndDate,
		ImageURL:         input.ImageURL,
		TotalCapacity:    input.TotalCapacity,
		AvailableTickets: input.TotalCapacity,
		TicketPrice:      input.TicketPrice,
		IsPublished:      input.IsPublished,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("title", event.Title),
		logger.Int("capacity", event.TotalCapacity),
	)

	return event, nil
}

// GetByID returns the event. Non-admin callers only see published ones.
func (s *EventService) GetByID(ctx context.Context, id string, principal *domain.Principal) (*domain.Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !event.IsPublished && (principal == nil || !principal.IsAdmin) {
		return nil, domain.ErrEventNotFound
	}

	return event, nil
}

func (s *EventService) List(ctx context.Context, f domain.EventFilter, principal *domain.Principal) ([]*domain.Event, error) {
	if principal == nil || !principal.IsAdmin {
		f.PublishedOnly = true
	}
	return s.repo.List(ctx, f)
}

// Update applies the partial input. Capacity changes run through the
// atomic resize so availability shifts by the same delta, and a cancel
// flag triggers the cancellation flow instead.
func (s *EventService) Update(ctx context.Context, id string, input domain.UpdateEventInput) (*domain.Event, error) {
	if input.IsCanceled != nil && *input.IsCanceled {
		return nil, fmt.Errorf("%w: use the cancel operation to cancel an event", domain.ErrValidation)
	}

	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event.IsCanceled {
		return nil, domain.ErrEventCanceled
	}

	if input.TotalCapacity != nil && *input.TotalCapacity != event.TotalCapacity {
		if *input.TotalCapacity <= 0 {
			return nil, fmt.Errorf("%w: total_capacity must be positive", domain.ErrValidation)
		}
		if err = s.repo.Resize(ctx, id, *input.TotalCapacity); err != nil {
			return nil, err
		}
	}

	applyEventUpdate(event, input)
	if err = s.repo.Update(ctx, event); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *EventService) Publish(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event.IsCanceled {
		return nil, domain.ErrEventCanceled
	}
	if event.IsPublished {
		return event, nil
	}

	event.IsPublished = true
	if err = s.repo.Update(ctx, event); err != nil {
		return nil, err
	}

	s.logger.Info("event published", logger.String("event_id", id))
	return event, nil
}

// Cancel marks the event canceled and notifies everyone holding an
// active order. Orders themselves stay as they are; refunds go through
// the order endpoints.
func (s *EventService) Cancel(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event.IsCanceled {
		return event, nil
	}

	emails, err := s.repo.TicketHolderEmails(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list ticket holders: %w", err)
	}

	event.IsCanceled = true
	if err = s.repo.Update(ctx, event); err != nil {
		return nil, err
	}

	s.logger.Info("event canceled",
		logger.String("event_id", id),
		logger.Int("ticket_holders", len(emails)),
	)

	go s.notifier.EventCancellation(context.WithoutCancel(ctx), event, emails)

	return event, nil
}

// Delete removes an event that never sold a ticket.
func (s *EventService) Delete(ctx context.Context, id string) error {
	hasOrders, err := s.repo.HasOrders(ctx, id)
	if err != nil {
		return err
	}
	if hasOrders {
		return domain.ErrEventHasOrders
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("event deleted", logger.String("event_id", id))
	return nil
}

func applyEventUpdate(e *domain.Event, input domain.UpdateEventInput) {
	if input.Title != nil {
		e.Title = *input.Title
	}
	if input.Description != nil {
		e.Description = *input.Description
	}
	if input.Location != nil {
		e.Location = *input.Location
	}
	if input.StartDate != nil {
		e.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		e.EndDate = *input.EndDate
	}
	if input.ImageURL != nil {
		e.ImageURL = *input.ImageURL
	}
	if input.TicketPrice != nil {
		e.TicketPrice = *input.TicketPrice
	}
	if input.IsPublished != nil {
		e.IsPublished = *input.IsPublished
	}
}
