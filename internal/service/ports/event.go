package ports

import (
	"context"
	"time"

	"github.com/tickethub-io/tickethub/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, f domain.EventFilter) ([]*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id string) error
	HasOrders(ctx context.Context, eventID string) (bool, error)
	Reserve(ctx context.Context, eventID string, quantity int) error
	Release(ctx context.Context, eventID string, quantity int) error
	Resize(ctx context.Context, eventID string, newTotal int) error
	TicketHolderEmails(ctx context.Context, eventID string) ([]string, error)
	UpcomingUnreminded(ctx context.Context, window time.Duration) ([]*domain.Event, error)
	MarkReminderSent(ctx context.Context, eventID string) error
}
