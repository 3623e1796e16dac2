package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/logger"

	"github.com/tickethub-io/tickethub/internal/domain"
	"github.com/tickethub-io/tickethub/internal/metrics"
	"github.com/tickethub-io/tickethub/internal/service/ports"
)

type OrderService struct {
	orderRepo        ports.OrderRepo
	eventRepo        ports.EventRepo
	userRepo         ports.UserRepo
	gateway          ports.PaymentGateway
	notifier         ports.Notifier
	authorizeTimeout time.Duration
	logger           logger.Logger
}

func NewOrderService(
	orderRepo ports.OrderRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	gateway ports.PaymentGateway,
	notifier ports.Notifier,
	authorizeTimeout time.Duration,
	log logger.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:        orderRepo,
		eventRepo:        eventRepo,
		userRepo:         userRepo,
		gateway:          gateway,
		notifier:         notifier,
		authorizeTimeout: authorizeTimeout,
		logger:           log,
	}
}

// Create reserves tickets and records the pending order in one
// transaction. The price is snapshotted from the event at creation so
// later price edits never change what an open order owes.
func (s *OrderService) Create(ctx context.Context, principal domain.Principal, input domain.CreateOrderInput) (*domain.Order, error) {
	if input.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrValidation)
	}
	if input.PaymentMethod != domain.PaymentMethodCard && input.PaymentMethod != domain.PaymentMethodWallet {
		return nil, fmt.Errorf("%w: unsupported payment method %q", domain.ErrValidation, input.PaymentMethod)
	}

	event, err := s.eventRepo.GetByID(ctx, input.EventID)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		ID:            uuid.New().String(),
		UserID:        principal.UserID,
		EventID:       input.EventID,
		Quantity:      input.Quantity,
		UnitPrice:     event.TicketPrice,
		TotalAmount:   event.TicketPrice.Mul(decimal.NewFromInt(int64(input.Quantity))),
		Status:        domain.OrderStatusPending,
		PaymentMethod: input.PaymentMethod,
	}

	if err = s.orderRepo.CreateWithReservation(ctx, order); err != nil {
		return nil, err
	}

	metrics.OrdersCreatedTotal.Inc()
	metrics.TicketsReservedTotal.Add(float64(order.Quantity))

	s.logger.Info("order created",
		logger.String("order_id", order.ID),
		logger.String("event_id", order.EventID),
		logger.String("user_id", order.UserID),
		logger.Int("quantity", order.Quantity),
		logger.String("total", order.TotalAmount.StringFixed(2)),
	)

	return order, nil
}

func (s *OrderService) GetDetails(ctx context.Context, principal domain.Principal, orderID string) (*domain.OrderDetails, error) {
	details, err := s.orderRepo.GetDetails(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !principal.CanAccess(details.UserID) {
		return nil, domain.ErrOrderNotFound
	}
	return details, nil
}

func (s *OrderService) ListByUser(ctx context.Context, userID string, f domain.OrderFilter) ([]*domain.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID, f)
}

func (s *OrderService) ListAll(ctx context.Context, f domain.OrderFilter) ([]*domain.Order, error) {
	return s.orderRepo.ListAll(ctx, f)
}

// ProcessPayment charges a pending order. Paying an already paid order
// is a no-op that returns the recorded payment, so retried requests
// never double charge.
func (s *OrderService) ProcessPayment(ctx context.Context, principal domain.Principal, orderID string, details domain.PaymentDetails) (*domain.PaymentResult, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !principal.CanAccess(order.UserID) {
		return nil, domain.ErrOrderNotFound
	}

	switch order.Status {
	case domain.OrderStatusPending:
	case domain.OrderStatusPaid:
		return &domain.PaymentResult{PaymentID: *order.PaymentID, Succeeded: true}, nil
	case domain.OrderStatusCanceled:
		return nil, domain.ErrAlreadyCanceled
	default:
		return nil, domain.ErrInvalidTransition
	}

	authCtx, cancel := context.WithTimeout(ctx, s.authorizeTimeout)
	defer cancel()

	start := time.Now()
	result := s.gateway.Authorize(authCtx, order.TotalAmount, order.PaymentMethod, details)
	metrics.ObservePayment("authorize", result.Succeeded, time.Since(start).Seconds())

	if !result.Succeeded {
		s.logger.Warn("payment declined",
			logger.String("order_id", orderID),
			logger.String("reason", result.FailureReason),
		)
		return &result, nil
	}

	if err = s.orderRepo.MarkPaid(ctx, orderID, result.PaymentID); err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyPaid):
			// A concurrent request won the race. Void the stray charge
			// and report the recorded payment instead.
			s.voidStrayCharge(ctx, orderID, result.PaymentID, order.TotalAmount, "duplicate payment")
			if paid, getErr := s.orderRepo.GetByID(ctx, orderID); getErr == nil && paid.PaymentID != nil {
				return &domain.PaymentResult{PaymentID: *paid.PaymentID, Succeeded: true}, nil
			}
		case errors.Is(err, domain.ErrAlreadyCanceled), errors.Is(err, domain.ErrInvalidTransition):
			// The order was canceled between authorization and capture.
			s.voidStrayCharge(ctx, orderID, result.PaymentID, order.TotalAmount, "order canceled before capture")
		}
		return nil, err
	}

	metrics.OrderTransitionsTotal.WithLabelValues(string(domain.OrderStatusPaid)).Inc()

	s.logger.Info("order paid",
		logger.String("order_id", orderID),
		logger.String("payment_id", result.PaymentID),
	)

	go s.notifyOrder(context.WithoutCancel(ctx), orderID, order.UserID, s.notifier.OrderConfirmation)

	return &result, nil
}

// Cancel voids a pending or paid order, releasing its tickets. The
// status CAS runs before any refund, so of several concurrent cancels
// only the winner talks to the gateway. A failed refund still cancels
// the order, it just leaves the charge for manual follow-up.
func (s *OrderService) Cancel(ctx context.Context, principal domain.Principal, orderID string) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !principal.CanAccess(order.UserID) {
		return nil, domain.ErrOrderNotFound
	}

	if err = s.orderRepo.Cancel(ctx, orderID); err != nil {
		return nil, err
	}

	metrics.OrderTransitionsTotal.WithLabelValues(string(domain.OrderStatusCanceled)).Inc()
	metrics.TicketsReleasedTotal.Add(float64(order.Quantity))

	if order.Status == domain.OrderStatusPaid && order.PaymentID != nil {
		start := time.Now()
		result := s.gateway.Refund(ctx, *order.PaymentID, order.TotalAmount, "order canceled")
		metrics.ObservePayment("refund", result.Succeeded, time.Since(start).Seconds())

		if result.Succeeded {
			if err = s.orderRepo.RecordRefund(ctx, orderID, result.RefundID); err != nil {
				s.logger.Error("failed to record refund reference",
					logger.String("order_id", orderID),
					logger.String("refund_id", result.RefundID),
					logger.String("error", err.Error()),
				)
			}
		} else {
			s.logger.Warn("refund failed on cancel, order stays canceled",
				logger.String("order_id", orderID),
				logger.String("reason", result.FailureReason),
			)
		}
	}

	s.logger.Info("order canceled",
		logger.String("order_id", orderID),
		logger.String("user_id", order.UserID),
	)

	go s.notifyOrder(context.WithoutCancel(ctx), orderID, order.UserID, s.notifier.OrderCancellation)

	return s.orderRepo.GetByID(ctx, orderID)
}

// Refund reverses a paid order's charge and releases its tickets.
// Unlike Cancel, the gateway refund must succeed for the order to move.
func (s *OrderService) Refund(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.OrderStatusPaid || order.PaymentID == nil {
		return nil, domain.ErrInvalidTransition
	}

	start := time.Now()
	result := s.gateway.Refund(ctx, *order.PaymentID, order.TotalAmount, "admin refund")
	metrics.ObservePayment("refund", result.Succeeded, time.Since(start).Seconds())

	if !result.Succeeded {
		return nil, fmt.Errorf("refund payment %s: %s", *order.PaymentID, result.FailureReason)
	}

	if err = s.orderRepo.MarkRefunded(ctx, orderID, result.RefundID); err != nil {
		return nil, err
	}

	metrics.OrderTransitionsTotal.WithLabelValues(string(domain.OrderStatusRefunded)).Inc()
	metrics.TicketsReleasedTotal.Add(float64(order.Quantity))

	s.logger.Info("order refunded",
		logger.String("order_id", orderID),
		logger.String("refund_id", result.RefundID),
	)

	go s.notifyOrder(context.WithoutCancel(ctx), orderID, order.UserID, s.notifier.OrderCancellation)

	return s.orderRepo.GetByID(ctx, orderID)
}

// voidStrayCharge refunds an authorization that lost a transition race
// and will never be recorded on the order.
func (s *OrderService) voidStrayCharge(ctx context.Context, orderID, paymentID string, amount decimal.Decimal, reason string) {
	result := s.gateway.Refund(ctx, paymentID, amount, reason)
	if !result.Succeeded {
		s.logger.Error("failed to void stray charge",
			logger.String("order_id", orderID),
			logger.String("payment_id", paymentID),
			logger.String("reason", result.FailureReason),
		)
	}
}

func (s *OrderService) notifyOrder(ctx context.Context, orderID, userID string, notify func(context.Context, *domain.Order, *domain.User)) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		s.logger.Error("failed to get order for notification",
			logger.String("order_id", orderID),
			logger.String("error", err.Error()),
		)
		return
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to get user for notification",
			logger.String("user_id", userID),
			logger.String("error", err.Error()),
		)
		return
	}

	notify(ctx, order, user)
}
