package ports

import (
	"context"

	"github.com/tickethub-io/tickethub/internal/domain"
)

// Notifier delivers best-effort notifications. Implementations retry
// internally; callers fire and forget off the request path, and a
// delivery failure never propagates back into an order transition.
type Notifier interface {
	OrderConfirmation(ctx context.Context, order *domain.Order, user *domain.User)
	OrderCancellation(ctx context.Context, order *domain.Order, user *domain.User)
	EventCancellation(ctx context.Context, event *domain.Event, emails []string)
	EventReminder(ctx context.Context, event *domain.Event, emails []string)
}
