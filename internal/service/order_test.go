package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/tickethub-io/tickethub/internal/domain"
	"github.com/tickethub-io/tickethub/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type orderMocks struct {
	orderRepo *mocks.MockOrderRepo
	eventRepo *mocks.MockEventRepo
	userRepo  *mocks.MockUserRepo
	gateway   *mocks.MockPaymentGateway
	notifier  *mocks.MockNotifier
}

func newOrderService(t *testing.T) (*OrderService, orderMocks) {
	m := orderMocks{
		orderRepo: mocks.NewMockOrderRepo(t),
		eventRepo: mocks.NewMockEventRepo(t),
		userRepo:  mocks.NewMockUserRepo(t),
		gateway:   mocks.NewMockPaymentGateway(t),
		notifier:  mocks.NewMockNotifier(t),
	}
	svc := NewOrderService(
		m.orderRepo, m.eventRepo, m.userRepo, m.gateway, m.notifier,
		5*time.Second, newTestLogger(t),
	)
	return svc, m
}

var (
	alice = domain.Principal{UserID: "u1", Email: "alice@example.com"}
	admin = domain.Principal{UserID: "adm", Email: "admin@example.com", IsAdmin: true}
)

func TestOrderService_Create_Success(t *testing.T) {
	svc, m := newOrderService(t)

	event := &domain.Event{
		ID:          "e1",
		TicketPrice: decimal.RequireFromString("49.90"),
		IsPublished: true,
	}
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.orderRepo.EXPECT().CreateWithReservation(mock.Anything, mock.Anything).Return(nil)

	order, err := svc.Create(context.Background(), alice, domain.CreateOrderInput{
		EventID:       "e1",
		Quantity:      2,
		PaymentMethod: domain.PaymentMethodCard,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, "u1", order.UserID)
	assert.Equal(t, 2, order.Quantity)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("99.80")))
	assert.NotEmpty(t, order.ID)
}

func TestOrderService_Create_InvalidQuantity(t *testing.T) {
	svc, _ := newOrderService(t)

	for _, qty := range []int{0, -1} {
		_, err := svc.Create(context.Background(), alice, domain.CreateOrderInput{
			EventID:       "e1",
			Quantity:      qty,
			PaymentMethod: domain.PaymentMethodCard,
		})
		assert.ErrorIs(t, err, domain.ErrValidation, "quantity %d", qty)
	}
}

func TestOrderService_Create_LargeQuantity(t *testing.T) {
	svc, m := newOrderService(t)

	event := &domain.Event{
		ID:               "e1",
		TicketPrice:      decimal.NewFromInt(10),
		AvailableTickets: 100,
		IsPublished:      true,
	}
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.orderRepo.EXPECT().CreateWithReservation(mock.Anything, mock.Anything).Return(nil)

	order, err := svc.Create(context.Background(), alice, domain.CreateOrderInput{
		EventID:       "e1",
		Quantity:      11,
		PaymentMethod: domain.PaymentMethodCard,
	})

	require.NoError(t, err)
	assert.Equal(t, 11, order.Quantity)
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(110)))
}

func TestOrderService_Create_UnknownPaymentMethod(t *testing.T) {
	svc, _ := newOrderService(t)

	_, err := svc.Create(context.Background(), alice, domain.CreateOrderInput{
		EventID:       "e1",
		Quantity:      1,
		PaymentMethod: "cash",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestOrderService_Create_SoldOut(t *testing.T) {
	svc, m := newOrderService(t)

	event := &domain.Event{ID: "e1", TicketPrice: decimal.NewFromInt(10), IsPublished: true}
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.orderRepo.EXPECT().CreateWithReservation(mock.Anything, mock.Anything).Return(domain.ErrInventoryExhausted)

	_, err := svc.Create(context.Background(), alice, domain.CreateOrderInput{
		EventID:       "e1",
		Quantity:      5,
		PaymentMethod: domain.PaymentMethodCard,
	})

	assert.ErrorIs(t, err, domain.ErrInventoryExhausted)
}

func TestOrderService_Create_EventNotFound(t *testing.T) {
	svc, m := newOrderService(t)

	m.eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Create(context.Background(), alice, domain.CreateOrderInput{
		EventID:       "missing",
		Quantity:      1,
		PaymentMethod: domain.PaymentMethodCard,
	})

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestOrderService_ProcessPayment_Success(t *testing.T) {
	svc, m := newOrderService(t)

	order := &domain.Order{
		ID:            "o1",
		UserID:        "u1",
		Status:        domain.OrderStatusPending,
		TotalAmount:   decimal.NewFromInt(100),
		PaymentMethod: domain.PaymentMethodCard,
	}
	user := &domain.User{ID: "u1", Email: "alice@example.com"}

	m.orderRepo.EXPECT().GetByID(mock.Anything, "o1").Return(order, nil)
	m.gateway.EXPECT().Authorize(mock.Anything, mock.Anything, domain.PaymentMethodCard, mock.Anything).
		Return(domain.PaymentResult{PaymentID: "pay_abc", Succeeded: true})
	m.orderRepo.EXPECT().MarkPaid(mock.Anything, "o1", "pay_abc").Return(nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.notifier.EXPECT().OrderConfirmation(mock.Anything, order, user).Return()

	result, err := svc.ProcessPayment(context.Background(), alice, "o1", domain.PaymentDetails{})

	require.NoError(t, err)
	assert.True(t, result.Succeeded)
	assert.Equal(t, "pay_abc", result.PaymentID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestOrderService_ProcessPayment_Declined(t *testing.T) {
	svc, m := newOrderService(t)

	order := &domain.Order{
		ID:            "o1",
		UserID:        "u1",
		Status:        domain.OrderStatusPending,
		TotalAmount:   decimal.NewFromInt(100),
		PaymentMethod: domain.PaymentMethodCard,
	}

	m.orderRepo.EXPECT().GetByID(mock.Anything, "o1").Return(order, nil)
	m.gateway.EXPECT().Authorize(mock.Anything, mock.Anything, domain.PaymentMethodCard, mock.Anything).
		Return(domain.PaymentResult{PaymentID: "pay_abc", Succeeded: false, FailureReason: "payment declined by issuer"})

	result, err := svc.ProcessPayment(context.Background(), alice, "o1", domain.PaymentDetails{})

	require.NoError(t, err)
	assert.False(t, result.Succeeded)
	assert.Equal(t, "payment declined by issuer", result.FailureReason)
}

func TestOrderService_ProcessPayment_AlreadyPaid(t *testing.T) {
	svc, m := newOrderService(t)

	paymentID := "pay_prev"
	order := &domain.Order{
		ID:        "o1",
		UserID:    "u1",
		Status:    domain.OrderStatusPaid,
		PaymentID: &paymentID,
	}
	m.orderRepo.EXPECT().GetByID(mock.Anything, "o1").Return(order, nil)

	result, err := svc.ProcessPayment(context.Background(), alice, "o1", domain.PaymentDetails{})

	require.NoError(t, err)
	assert.True(t, result.Succeeded)
	assert.Equal(t, "pay_prev", result.PaymentID)
}

func TestOrderService_ProcessPayment_AlreadyCanceled(t *testing.T) {
	svc, m := newOrderService(t)

	order := &domain.Order{ID: "o1", UserID: "u1", Status: domain.OrderStatusCanceled}
	m.orderRepo.EXPECT().GetByID(mock.Anything, "o1").Return(order, nil)

	_, err := svc.ProcessPayment(context.Background(), alice, "o1", domain.PaymentDetails{})

	assert.ErrorIs(t, err, domain.ErrAlreadyCanceled)
}

func TestOrderService_ProcessPayment_CanceledBeforeCapture(t *testing.T) {
	svc, m := newOrderService(t)

	order := &domain.Order{
		ID:            "o1",
		UserID:        "u1",
		Status:        domain.OrderStatusPending,
		TotalAmount:   decimal.NewFromInt(100),
		PaymentMethod: domain.PaymentMethodCard,
	}

	// The order is canceled between authorization and capture; the
	// authorized charge must be voided.
	m.orderRepo.EXPECT().GetByID(mock.Anything, "o1").Return(order, nil)
	m.gateway.EXPECT().Authorize(mock.Anything, mock.Anything, domain.PaymentMethodCard, mock.Anything).
		Return(domain.PaymentResult{PaymentID: "pay_abc", Succeeded: true})
	m.orderRepo.EXPECT().MarkPaid(mock.Anything, "o1", "pay_abc").Return(domain.ErrAlreadyCanceled)
	m.gateway.EXPECT().Refund(mock.Anything, "pay_abc", mock.Anything, "order canceled before capture").
		Return(domain.PaymentResult{RefundID: "ref_void", Succeeded: true})

	_, err := svc.ProcessPayment(context.Background(), alice, "o1", domain.PaymentDetails{})

	assert.ErrorIs(t, err, domain.ErrAlreadyCanceled)
}

func TestOrderService_ProcessPayment_NotOwner(t *testing.T) {
	svc, m := newOrderService(t)

	order := &domain.Order{ID: "o1", UserID: "someone-else", Status: domain.OrderStatusPending}
	m.orderRepo.EXPECT().GetByID(mock.Anything, "o1").Return(order, nil)

	_, err := svc.ProcessPayment(context.Background(), alice, "o1", domain.PaymentDetails{})

	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestOrderService_Cancel_Pending(t *testing.T) {
	svc, m := newOrderService(t)

	order := &domain.Order{
		ID:       "o1",
		UserID:   "u1",
		EventID:  "e1",
		Quantity: 2,
		Status:   domain.OrderStatusPending,
	}
	user := &domain.User{ID: "u1", Email: "alice@example.com"}

	m.orderRepo.EXPECT().GetByID(mock.Anything, "o1").Return(order, nil)
	m.orderRepo.EXPECT().Cancel(mock.Anything, "o1").Return(nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.notifier.EXPECT().OrderCancellation(mock.Anything, order, user).Return()

	_, err := svc.Cancel(context.Background(), alice, "o1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestOrderService_Cancel_PaidRefunds(t *testing.T) {
	svc, m := newOrderService(t)

	paymentID := "pay_abc"
	order := &domain.Order{
		ID:          "o1",
		UserID:      "u1",
		EventID:     "e1",
		Quantity:    2,
		Status:      domain.OrderStatusPaid,
		PaymentID:   &paymentID,
		TotalAmount: decimal.NewFromInt(100),
	}
	user := &domain.User{ID: "u1", Email: "alice@example.com"}

	m.orderRepo.EXPECT().GetByID(mock.Anything, "o1").Return(order, nil)
	m.orderRepo.EXPECT().Cancel(mock.Anything, "o1").Return(nil)
	m.gateway.EXPECT().Refund(mock.Anything, "pay_abc", mock.Anything, "order canceled").
		Return(domain.PaymentResult{RefundID: "ref_xyz", Succeeded: true})
	m.orderRepo.EXPECT().RecordRefund(mock.Anything, "o1", "ref_xyz").Return(nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.notifier.EXPECT().OrderCancellation(mock.Anything, order, user).Return()

	_, err := svc.Cancel(context.Background(), alice, "o1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestOrderService_Cancel_PaidRefundFails(t *testing.T) {
	svc, m := newOrderService(t)

	paymentID := "pay_abc"
	order := &domain.Order{
		ID:          "o1",
		UserID:      "u1",
		EventID:     "e1",
		Quantity:    1,
		Status:      domain.OrderStatusPaid,
		PaymentID:   &paymentID,
		TotalAmount: decimal.NewFromInt(100),
	}
	user := &domain.User{ID: "u1", Email: "alice@example.com"}

	m.orderRepo.EXPECT().GetByID(mock.Anything, "o1").Return(order, nil)
	m.orderRepo.EXPECT().Cancel(mock.Anything, "o1").Return(nil)
	m.gateway.EXPECT().Refund(mock.Anything, "pay_abc", mock.Anything, "order canceled").
		Return(domain.PaymentResult{Succeeded: false, FailureReason: "refund could not be processed"})
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.notifier.EXPECT().OrderCancellation(mock.Anything, order, user).Return()

	_, err := svc.Cancel(context.Background(), alice, "o1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestOrderService_Cancel_AlreadyCanceled(t *testing.T) {
	svc, m := newOrderService(t)

	order := &domain.Order{ID: "o1", UserID: "u1", Status: domain.OrderStatusCanceled}
	m.orderRepo.EXPECT().GetByID(mock.Anything, "o1").Return(order, nil)
	m.orderRepo.EXPECT().Cancel(mock.Anything, "o1").Return(domain.ErrAlreadyCanceled)

	_, err := svc.Cancel(context.Background(), alice, "o1")

	assert.ErrorIs(t, err, domain.ErrAlreadyCanceled)
}

func TestOrderService_Cancel_ConcurrentLoserSkipsRefund(t *testing.T) {
	svc, m := newOrderService(t)

	paymentID := "pay_abc"
	order := &domain.Order{
		ID:          "o1",
		UserID:      "u1",
		Status:      domain.OrderStatusPaid,
		PaymentID:   &paymentID,
		TotalAmount: decimal.NewFromInt(100),
	}

	// Another cancel won the status race. The loser must not touch the
	// gateway, or the charge would be refunded twice.
	m.orderRepo.EXPECT().GetByID(mock.Anything, "o1").Return(order, nil)
	m.orderRepo.EXPECT().Cancel(mock.Anything, "o1").Return(domain.ErrAlreadyCanceled)

	_, err := svc.Cancel(context.Background(), alice, "o1")

	assert.ErrorIs(t, err, domain.ErrAlreadyCanceled)
}

func TestOrderService_Refund_Success(t *testing.T) {
	svc, m := newOrderService(t)

	paymentID := "pay_abc"
	order := &domain.Order{
		ID:          "o1",
		UserID:      "u1",
		EventID:     "e1",
		Quantity:    3,
		Status:      domain.OrderStatusPaid,
		PaymentID:   &paymentID,
		TotalAmount: decimal.NewFromInt(150),
	}
	user := &domain.User{ID: "u1", Email: "alice@example.com"}

	m.orderRepo.EXPECT().GetByID(mock.Anything, "o1").Return(order, nil)
	m.gateway.EXPECT().Refund(mock.Anything, "pay_abc", mock.Anything, "admin refund").
		Return(domain.PaymentResult{RefundID: "ref_xyz", Succeeded: true})
	m.orderRepo.EXPECT().MarkRefunded(mock.Anything, "o1", "ref_xyz").Return(nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.notifier.EXPECT().OrderCancellation(mock.Anything, order, user).Return()

	_, err := svc.Refund(context.Background(), "o1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestOrderService_Refund_NotPaid(t *testing.T) {
	svc, m := newOrderService(t)

	order := &domain.Order{ID: "o1", UserID: "u1", Status: domain.OrderStatusPending}
	m.orderRepo.EXPECT().GetByID(mock.Anything, "o1").Return(order, nil)

	_, err := svc.Refund(context.Background(), "o1")

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestOrderService_Refund_GatewayFailure(t *testing.T) {
	svc, m := newOrderService(t)

	paymentID := "pay_abc"
	order := &domain.Order{
		ID:          "o1",
		UserID:      "u1",
		Status:      domain.OrderStatusPaid,
		PaymentID:   &paymentID,
		TotalAmount: decimal.NewFromInt(100),
	}

	m.orderRepo.EXPECT().GetByID(mock.Anything, "o1").Return(order, nil)
	m.gateway.EXPECT().Refund(mock.Anything, "pay_abc", mock.Anything, "admin refund").
		Return(domain.PaymentResult{Succeeded: false, FailureReason: "refund could not be processed"})

	_, err := svc.Refund(context.Background(), "o1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "refund could not be processed")
}

func TestOrderService_GetDetails_NotOwner(t *testing.T) {
	svc, m := newOrderService(t)

	details := &domain.OrderDetails{
		Order:      domain.Order{ID: "o1", UserID: "someone-else"},
		EventTitle: "Concert",
	}
	m.orderRepo.EXPECT().GetDetails(mock.Anything, "o1").Return(details, nil)

	_, err := svc.GetDetails(context.Background(), alice, "o1")

	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestOrderService_GetDetails_AdminSeesAny(t *testing.T) {
	svc, m := newOrderService(t)

	details := &domain.OrderDetails{
		Order:      domain.Order{ID: "o1", UserID: "someone-else"},
		EventTitle: "Concert",
	}
	m.orderRepo.EXPECT().GetDetails(mock.Anything, "o1").Return(details, nil)

	got, err := svc.GetDetails(context.Background(), admin, "o1")

	require.NoError(t, err)
	assert.Equal(t, "Concert", got.EventTitle)
}

func TestOrderService_ListAll_RepoError(t *testing.T) {
	svc, m := newOrderService(t)

	m.orderRepo.EXPECT().ListAll(mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.ListAll(context.Background(), domain.OrderFilter{})

	require.Error(t, err)
}
