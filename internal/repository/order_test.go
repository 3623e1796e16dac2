package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tickethub-io/tickethub/internal/domain"
)

const (
	orderReserveStmt = `UPDATE events SET available_tickets = available_tickets - \$2, updated_at = now\(\) WHERE id = \$1 AND is_published AND NOT is_canceled AND available_tickets >= \$2`
	orderReleaseStmt = `UPDATE events SET available_tickets = LEAST\(available_tickets \+ \$2, total_capacity\), updated_at = now\(\) WHERE id = \$1`
	transitionStmt   = `UPDATE orders SET status = \$2, payment_id = CASE WHEN \$3::text IS NOT NULL THEN COALESCE\(payment_id, ''\) \|\| ':refund:' \|\| \$3 ELSE payment_id END, updated_at = now\(\) WHERE id = \$1 AND status = ANY\(\$4\) RETURNING event_id, quantity`
	markPaidStmt     = `UPDATE orders SET status = \$3, payment_id = \$2, paid_at = now\(\), updated_at = now\(\) WHERE id = \$1 AND status = \$4`
	statusDiag       = `SELECT status FROM orders WHERE id = \$1`
)

func pendingOrder() *domain.Order {
	return &domain.Order{
		ID:            "o1",
		UserID:        "u1",
		EventID:       "e1",
		Quantity:      2,
		UnitPrice:     decimal.NewFromInt(50),
		TotalAmount:   decimal.NewFromInt(100),
		Status:        domain.OrderStatusPending,
		PaymentMethod: domain.PaymentMethodCard,
	}
}

// The reservation and the order insert commit together or not at all.
func TestOrderRepository_CreateWithReservation_Commits(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(orderReserveStmt).WithArgs("e1", 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO orders`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	o := pendingOrder()
	require.NoError(t, repo.CreateWithReservation(context.Background(), o))
	assert.False(t, o.CreatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

// A failed reservation must not leave an order row behind: the insert
// is never attempted and the transaction rolls back.
func TestOrderRepository_CreateWithReservation_SoldOutRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(orderReserveStmt).WithArgs("e1", 2).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT is_published, is_canceled, available_tickets FROM events WHERE id = \$1`).
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"is_published", "is_canceled", "available_tickets"}).
			AddRow(true, false, 1))
	mock.ExpectRollback()

	err := repo.CreateWithReservation(context.Background(), pendingOrder())
	assert.ErrorIs(t, err, domain.ErrInventoryExhausted)
	require.NoError(t, mock.ExpectationsWereMet())
}

// A failed insert rolls the reservation back with it.
func TestOrderRepository_CreateWithReservation_InsertFailureRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(orderReserveStmt).WithArgs("e1", 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO orders`).
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	err := repo.CreateWithReservation(context.Background(), pendingOrder())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert order")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_CreateWithReservation_UnpublishedEvent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(orderReserveStmt).WithArgs("e1", 2).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT is_published, is_canceled, available_tickets FROM events WHERE id = \$1`).
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"is_published", "is_canceled", "available_tickets"}).
			AddRow(false, false, 10))
	mock.ExpectRollback()

	err := repo.CreateWithReservation(context.Background(), pendingOrder())
	assert.ErrorIs(t, err, domain.ErrEventNotPublished)
	require.NoError(t, mock.ExpectationsWereMet())
}

// Cancel releases the reserved quantity exactly once, clamped at the
// event's total capacity, in the same transaction as the status flip.
func TestOrderRepository_Cancel_ReleasesInventoryOnce(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(transitionStmt).
		WillReturnRows(sqlmock.NewRows([]string{"event_id", "quantity"}).AddRow("e1", 2))
	mock.ExpectExec(orderReleaseStmt).WithArgs("e1", 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Cancel(context.Background(), "o1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

// A second cancel finds no active row to transition and is rejected
// before any inventory write.
func TestOrderRepository_Cancel_SecondCancelRejected(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(transitionStmt).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(statusDiag).WithArgs("o1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("canceled"))
	mock.ExpectRollback()

	assert.ErrorIs(t, repo.Cancel(context.Background(), "o1"), domain.ErrAlreadyCanceled)
	require.NoError(t, mock.ExpectationsWereMet())
}

// MarkPaid is a compare-and-set on the pending status: the first call
// transitions, the repeat sees zero rows and reports the paid state.
func TestOrderRepository_MarkPaid_CompareAndSet(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepo(db)

	mock.ExpectExec(markPaidStmt).WithArgs("o1", "pay_1", "paid", "pending").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(markPaidStmt).WithArgs("o1", "pay_2", "paid", "pending").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(statusDiag).WithArgs("o1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("paid"))

	require.NoError(t, repo.MarkPaid(context.Background(), "o1", "pay_1"))
	assert.ErrorIs(t, repo.MarkPaid(context.Background(), "o1", "pay_2"), domain.ErrAlreadyPaid)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_MarkPaid_OrderNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepo(db)

	mock.ExpectExec(markPaidStmt).WithArgs("missing", "pay_1", "paid", "pending").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(statusDiag).WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	assert.ErrorIs(t, repo.MarkPaid(context.Background(), "missing", "pay_1"), domain.ErrOrderNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

// MarkRefunded only moves paid orders and stamps the refund reference
// while releasing the tickets in the same transaction.
func TestOrderRepository_MarkRefunded_ReleasesAndStamps(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(transitionStmt).
		WillReturnRows(sqlmock.NewRows([]string{"event_id", "quantity"}).AddRow("e1", 3))
	mock.ExpectExec(orderReleaseStmt).WithArgs("e1", 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.MarkRefunded(context.Background(), "o1", "ref_1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_RecordRefund_AppendsReference(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepo(db)

	mock.ExpectExec(`UPDATE orders SET payment_id = COALESCE\(payment_id, ''\) \|\| ':refund:' \|\| \$2, updated_at = now\(\) WHERE id = \$1`).
		WithArgs("o1", "ref_1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.RecordRefund(context.Background(), "o1", "ref_1"))
	require.NoError(t, mock.ExpectationsWereMet())
}
