package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tickethub-io/tickethub/internal/domain"
)

// PaymentGateway authorizes charges and refunds. It is side-effect
// free with respect to orders and events; applying its results is the
// order service's job.
type PaymentGateway interface {
	Authorize(ctx context.Context, amount decimal.Decimal, method string, details domain.PaymentDetails) domain.PaymentResult
	Refund(ctx context.Context, paymentID string, amount decimal.Decimal, reason string) domain.PaymentResult
}
