package payment

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/tickethub-io/tickethub/internal/domain"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func fixedNow() time.Time {
	return time.Date(2026, time.May, 1, 12, 0, 0, 0, time.UTC)
}

func newGateway(t *testing.T, declineRate, refundFailRate float64) *Gateway {
	t.Helper()
	return NewGatewayWithSource(
		declineRate, refundFailRate, newTestLogger(t),
		rand.NewSource(1), fixedNow,
	)
}

func validCard() domain.PaymentDetails {
	return domain.PaymentDetails{
		CardNumber:   "4242 4242 4242 4242",
		CardExpMonth: 12,
		CardExpYear:  2027,
		CardCVC:      "123",
	}
}

func TestGateway_Authorize_Success(t *testing.T) {
	g := newGateway(t, 0, 0)

	res := g.Authorize(context.Background(), decimal.NewFromInt(100), domain.PaymentMethodCard, validCard())

	require.True(t, res.Succeeded)
	assert.True(t, strings.HasPrefix(res.PaymentID, "pay_"))
	assert.Len(t, res.PaymentID, len("pay_")+16)
	assert.Empty(t, res.FailureReason)
}

func TestGateway_Authorize_Decline(t *testing.T) {
	g := newGateway(t, 1, 0)

	res := g.Authorize(context.Background(), decimal.NewFromInt(100), domain.PaymentMethodCard, validCard())

	require.False(t, res.Succeeded)
	// Declined payments still carry an id for audit.
	assert.True(t, strings.HasPrefix(res.PaymentID, "pay_"))
	assert.Equal(t, "payment declined by issuer", res.FailureReason)
}

func TestGateway_Authorize_CardValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.PaymentDetails)
		wantErr string
	}{
		{
			name:    "missing number",
			mutate:  func(d *domain.PaymentDetails) { d.CardNumber = "" },
			wantErr: "missing required field: card_number",
		},
		{
			name:    "missing cvc",
			mutate:  func(d *domain.PaymentDetails) { d.CardCVC = "" },
			wantErr: "missing required field: card_cvc",
		},
		{
			name:    "number too short",
			mutate:  func(d *domain.PaymentDetails) { d.CardNumber = "4242 4242" },
			wantErr: "invalid card number format",
		},
		{
			name:    "number not numeric",
			mutate:  func(d *domain.PaymentDetails) { d.CardNumber = "4242abcd42424242" },
			wantErr: "invalid card number format",
		},
		{
			name:    "bad month",
			mutate:  func(d *domain.PaymentDetails) { d.CardExpMonth = 13 },
			wantErr: "invalid expiration month",
		},
		{
			name:    "expired year",
			mutate:  func(d *domain.PaymentDetails) { d.CardExpYear = 2025 },
			wantErr: "card has expired",
		},
		{
			name: "expired month this year",
			mutate: func(d *domain.PaymentDetails) {
				d.CardExpYear = 2026
				d.CardExpMonth = 4
			},
			wantErr: "card has expired",
		},
		{
			name:    "bad cvc",
			mutate:  func(d *domain.PaymentDetails) { d.CardCVC = "12" },
			wantErr: "invalid cvc format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGateway(t, 0, 0)
			details := validCard()
			tt.mutate(&details)

			res := g.Authorize(context.Background(), decimal.NewFromInt(50), domain.PaymentMethodCard, details)

			require.False(t, res.Succeeded)
			assert.Equal(t, tt.wantErr, res.FailureReason)
			// Validation failures carry no identifier.
			assert.Empty(t, res.PaymentID)
		})
	}
}

func TestGateway_Authorize_ExpiryMonthBoundary(t *testing.T) {
	g := newGateway(t, 0, 0)

	details := validCard()
	details.CardExpYear = 2026
	details.CardExpMonth = 5 // equal to the fixed clock's month

	res := g.Authorize(context.Background(), decimal.NewFromInt(50), domain.PaymentMethodCard, details)

	assert.True(t, res.Succeeded)
}

func TestGateway_Authorize_Wallet(t *testing.T) {
	g := newGateway(t, 0, 0)

	res := g.Authorize(context.Background(), decimal.NewFromInt(10), domain.PaymentMethodWallet,
		domain.PaymentDetails{WalletEmail: "alice@example.com"})
	assert.True(t, res.Succeeded)

	res = g.Authorize(context.Background(), decimal.NewFromInt(10), domain.PaymentMethodWallet,
		domain.PaymentDetails{})
	require.False(t, res.Succeeded)
	assert.Equal(t, "missing paypal email", res.FailureReason)
}

func TestGateway_Authorize_UnsupportedMethod(t *testing.T) {
	g := newGateway(t, 0, 0)

	res := g.Authorize(context.Background(), decimal.NewFromInt(10), "barter", domain.PaymentDetails{})

	require.False(t, res.Succeeded)
	assert.Equal(t, "unsupported payment method: barter", res.FailureReason)
}

func TestGateway_Authorize_ContextCanceled(t *testing.T) {
	g := newGateway(t, 0, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := g.Authorize(ctx, decimal.NewFromInt(10), domain.PaymentMethodCard, validCard())

	require.False(t, res.Succeeded)
	assert.Equal(t, "gateway timeout", res.FailureReason)
}

func TestGateway_Refund_Success(t *testing.T) {
	g := newGateway(t, 0, 0)

	res := g.Refund(context.Background(), "pay_0123456789abcdef", decimal.NewFromInt(100), "order canceled")

	require.True(t, res.Succeeded)
	assert.True(t, strings.HasPrefix(res.RefundID, "ref_"))
	assert.Equal(t, "pay_0123456789abcdef", res.PaymentID)
}

func TestGateway_Refund_InvalidPaymentID(t *testing.T) {
	g := newGateway(t, 0, 0)

	res := g.Refund(context.Background(), "charge_123", decimal.NewFromInt(100), "")

	require.False(t, res.Succeeded)
	assert.Equal(t, "invalid payment id format", res.FailureReason)
	assert.Empty(t, res.RefundID)
}

func TestGateway_Refund_SimulatedFailure(t *testing.T) {
	g := newGateway(t, 0, 1)

	res := g.Refund(context.Background(), "pay_0123456789abcdef", decimal.NewFromInt(100), "")

	require.False(t, res.Succeeded)
	assert.Equal(t, "refund could not be processed", res.FailureReason)
	// The failed attempt is still identified for audit.
	assert.NotEmpty(t, res.RefundID)
}
