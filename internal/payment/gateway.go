// Package payment simulates a payment gateway: deterministic
// validation of payment details plus randomized decline injection.
// The random source and clock are injectable so tests stay
// deterministic.
package payment

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/logger"

	"github.com/tickethub-io/tickethub/internal/domain"
)

const (
	paymentIDPrefix = "pay_"
	refundIDPrefix  = "ref_"
)

type Gateway struct {
	declineRate    float64
	refundFailRate float64
	now            func() time.Time
	logger         logger.Logger

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewGateway(declineRate, refundFailRate float64, log logger.Logger) *Gateway {
	return NewGatewayWithSource(
		declineRate, refundFailRate, log,
		rand.NewSource(time.Now().UnixNano()), time.Now,
	)
}

// NewGatewayWithSource pins the random source and clock, for tests
// that need reproducible declines and expiry checks.
func NewGatewayWithSource(
	declineRate, refundFailRate float64,
	log logger.Logger,
	src rand.Source,
	now func() time.Time,
) *Gateway {
	return &Gateway{
		declineRate:    declineRate,
		refundFailRate: refundFailRate,
		now:            now,
		logger:         log,
		rnd:            rand.New(src),
	}
}

// Authorize validates the payment details and simulates the charge.
// A validation failure returns immediately with no payment id; a
// simulated issuer decline still carries a generated id for audit.
func (g *Gateway) Authorize(ctx context.Context, amount decimal.Decimal, method string, details domain.PaymentDetails) domain.PaymentResult {
	if err := ctx.Err(); err != nil {
		return domain.PaymentResult{FailureReason: "gateway timeout"}
	}

	if reason := g.validateDetails(method, details); reason != "" {
		g.logger.Warn("payment validation failed",
			logger.String("method", method),
			logger.String("reason", reason),
		)
		return domain.PaymentResult{FailureReason: reason}
	}

	paymentID := paymentIDPrefix + shortHex()

	if g.roll(g.declineRate) {
		g.logger.Warn("payment declined (simulated)",
			logger.String("payment_id", paymentID),
		)
		return domain.PaymentResult{
			PaymentID:     paymentID,
			FailureReason: "payment declined by issuer",
		}
	}

	g.logger.Info("payment authorized",
		logger.String("payment_id", paymentID),
		logger.String("amount", amount.StringFixed(2)),
		logger.String("method", method),
	)

	return domain.PaymentResult{PaymentID: paymentID, Succeeded: true}
}

// Refund simulates refunding a previous payment. The payment id must
// carry the gateway's "pay_" format; anything else fails fast.
func (g *Gateway) Refund(ctx context.Context, paymentID string, amount decimal.Decimal, reason string) domain.PaymentResult {
	if err := ctx.Err(); err != nil {
		return domain.PaymentResult{FailureReason: "gateway timeout"}
	}

	if !strings.HasPrefix(paymentID, paymentIDPrefix) {
		return domain.PaymentResult{FailureReason: "invalid payment id format"}
	}

	refundID := refundIDPrefix + shortHex()

	if g.roll(g.refundFailRate) {
		g.logger.Warn("refund failed (simulated)",
			logger.String("payment_id", paymentID),
			logger.String("refund_id", refundID),
		)
		return domain.PaymentResult{
			PaymentID:     paymentID,
			RefundID:      refundID,
			FailureReason: "refund could not be processed",
		}
	}

	g.logger.Info("refund processed",
		logger.String("payment_id", paymentID),
		logger.String("refund_id", refundID),
		logger.String("amount", amount.StringFixed(2)),
		logger.String("reason", reason),
	)

	return domain.PaymentResult{PaymentID: paymentID, RefundID: refundID, Succeeded: true}
}

func (g *Gateway) validateDetails(method string, d domain.PaymentDetails) string {
	switch method {
	case domain.PaymentMethodCard:
		return g.validateCard(d)
	case domain.PaymentMethodWallet:
		if d.WalletEmail == "" {
			return "missing paypal email"
		}
		return ""
	default:
		return fmt.Sprintf("unsupported payment method: %s", method)
	}
}

func (g *Gateway) validateCard(d domain.PaymentDetails) string {
	if d.CardNumber == "" {
		return "missing required field: card_number"
	}
	if d.CardExpMonth == 0 {
		return "missing required field: card_exp_month"
	}
	if d.CardExpYear == 0 {
		return "missing required field: card_exp_year"
	}
	if d.CardCVC == "" {
		return "missing required field: card_cvc"
	}

	number := strings.NewReplacer(" ", "", "-", "").Replace(d.CardNumber)
	if !isDigits(number) || len(number) < 13 || len(number) > 19 {
		return "invalid card number format"
	}

	if d.CardExpMonth < 1 || d.CardExpMonth > 12 {
		return "invalid expiration month"
	}

	now := g.now()
	if d.CardExpYear < now.Year() ||
		(d.CardExpYear == now.Year() && d.CardExpMonth < int(now.Month())) {
		return "card has expired"
	}

	if !isDigits(d.CardCVC) || len(d.CardCVC) < 3 || len(d.CardCVC) > 4 {
		return "invalid cvc format"
	}

	return ""
}

func (g *Gateway) roll(probability float64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rnd.Float64() < probability
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func shortHex() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:16]
}
