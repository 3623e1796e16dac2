package ports

import (
	"context"

	"github.com/tickethub-io/tickethub/internal/domain"
)

type OrderRepo interface {
	CreateWithReservation(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	GetDetails(ctx context.Context, id string) (*domain.OrderDetails, error)
	ListByUser(ctx context.Context, userID string, f domain.OrderFilter) ([]*domain.Order, error)
	ListAll(ctx context.Context, f domain.OrderFilter) ([]*domain.Order, error)
	MarkPaid(ctx context.Context, orderID, paymentID string) error
	Cancel(ctx context.Context, orderID string) error
	MarkRefunded(ctx context.Context, orderID, refundID string) error
	RecordRefund(ctx context.Context, orderID, refundID string) error
}
