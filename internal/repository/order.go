package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/tickethub-io/tickethub/internal/domain"
)

const orderColumns = `id, user_id, event_id, quantity, unit_price, total_amount,
	status, payment_id, payment_method, created_at, updated_at, paid_at`

type OrderRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewOrderRepo(db *dbpg.DB) *OrderRepository {
	return &OrderRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// CreateWithReservation inserts the order and decrements the event's
// available tickets in one transaction. Either both writes commit or
// neither does: a failed insert rolls the reservation back, a failed
// reservation leaves no order row behind.
func (r *OrderRepository) CreateWithReservation(ctx context.Context, o *domain.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	reserveQuery := `UPDATE events
					 SET available_tickets = available_tickets - $2, updated_at = now()
					 WHERE id = $1
					   AND is_published
					   AND NOT is_canceled
					   AND available_tickets >= $2`
	res, err := tx.ExecContext(ctx, reserveQuery, o.EventID, o.Quantity)
	if err != nil {
		return fmt.Errorf("reserve tickets: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reserve rows affected: %w", err)
	}
	if rows == 0 {
		// Find out which precondition failed before rolling back.
		var published, canceled bool
		var available int
		checkQuery := `SELECT is_published, is_canceled, available_tickets FROM events WHERE id = $1`
		if err = tx.QueryRowContext(ctx, checkQuery, o.EventID).Scan(&published, &canceled, &available); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrEventNotFound
			}
			return fmt.Errorf("check event: %w", err)
		}
		switch {
		case canceled:
			return domain.ErrEventCanceled
		case !published:
			return domain.ErrEventNotPublished
		default:
			return domain.ErrInventoryExhausted
		}
	}

	insertQuery := `INSERT INTO orders (` + orderColumns + `)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	now := time.Now().UTC()
	_, err = tx.ExecContext(
		ctx, insertQuery,
		o.ID, o.UserID, o.EventID, o.Quantity, o.UnitPrice, o.TotalAmount,
		o.Status, o.PaymentID, o.PaymentMethod, now, now, o.PaidAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit order: %w", err)
	}

	o.CreatedAt = now
	o.UpdatedAt = now
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + `
			  FROM orders
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("scan order: %w", err)
	}

	return o, nil
}

// GetDetails returns the order joined with its event title and date.
func (r *OrderRepository) GetDetails(ctx context.Context, id string) (*domain.OrderDetails, error) {
	query := `SELECT o.id, o.user_id, o.event_id, o.quantity, o.unit_price, o.total_amount,
					 o.status, o.payment_id, o.payment_method, o.created_at, o.updated_at, o.paid_at,
					 e.title, e.start_date
			  FROM orders o
			  JOIN events e ON e.id = o.event_id
			  WHERE o.id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order details: %w", err)
	}

	var (
		d         domain.OrderDetails
		paymentID sql.NullString
		paidAt    sql.NullTime
	)
	err = row.Scan(
		&d.ID, &d.UserID, &d.EventID, &d.Quantity, &d.UnitPrice, &d.TotalAmount,
		&d.Status, &paymentID, &d.PaymentMethod, &d.CreatedAt, &d.UpdatedAt, &paidAt,
		&d.EventTitle, &d.EventDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("scan order details: %w", err)
	}
	if paymentID.Valid {
		d.PaymentID = &paymentID.String
	}
	if paidAt.Valid {
		t := paidAt.Time
		d.PaidAt = &t
	}

	return &d, nil
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID string, f domain.OrderFilter) ([]*domain.Order, error) {
	query := `SELECT ` + orderColumns + `
			  FROM orders
			  WHERE user_id = $1 AND ($2::text IS NULL OR status = $2)
			  ORDER BY created_at DESC
			  LIMIT $3 OFFSET $4`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query,
		userID, statusArg(f.Status), normalizeLimit(f.Limit), f.Offset)
	if err != nil {
		return nil, fmt.Errorf("list orders by user: %w", err)
	}
	defer rows.Close()

	return collectOrders(rows)
}

func (r *OrderRepository) ListAll(ctx context.Context, f domain.OrderFilter) ([]*domain.Order, error) {
	query := `SELECT ` + orderColumns + `
			  FROM orders
			  WHERE ($1::text IS NULL OR status = $1)
			  ORDER BY created_at DESC
			  LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query,
		statusArg(f.Status), normalizeLimit(f.Limit), f.Offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	return collectOrders(rows)
}

// MarkPaid moves a pending order to paid, stamping paid_at and the
// gateway payment id. The status predicate makes the transition a
// compare-and-set: a concurrent or repeated call sees zero rows and is
// classified instead of applied twice.
func (r *OrderRepository) MarkPaid(ctx context.Context, orderID, paymentID string) error {
	query := `UPDATE orders
			  SET status = $3, payment_id = $2, paid_at = now(), updated_at = now()
			  WHERE id = $1 AND status = $4`
	res, err := r.db.Master.ExecContext(ctx, query, orderID, paymentID,
		domain.OrderStatusPaid, domain.OrderStatusPending)
	if err != nil {
		return fmt.Errorf("mark order paid: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("order rows affected: %w", err)
	}
	if rows == 0 {
		return r.classifyTransitionFailure(ctx, orderID)
	}

	return nil
}

// Cancel releases the order's reserved quantity back to the event and
// marks the order canceled in one transaction. Orders already canceled
// or refunded are rejected without touching inventory, so a retried
// cancel can never double-release.
func (r *OrderRepository) Cancel(ctx context.Context, orderID string) error {
	return r.releaseTransition(ctx, orderID, nil,
		domain.OrderStatusCanceled, domain.ActiveStatuses)
}

// RecordRefund appends the gateway refund reference to the payment id
// as a ":refund:<id>" audit suffix.
func (r *OrderRepository) RecordRefund(ctx context.Context, orderID, refundID string) error {
	query := `UPDATE orders
			  SET payment_id = COALESCE(payment_id, '') || ':refund:' || $2, updated_at = now()
			  WHERE id = $1`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, orderID, refundID); err != nil {
		return fmt.Errorf("record refund: %w", err)
	}
	return nil
}

// MarkRefunded moves a paid order to refunded after the gateway
// confirmed the refund, releasing its inventory in the same
// transaction.
func (r *OrderRepository) MarkRefunded(ctx context.Context, orderID, refundID string) error {
	return r.releaseTransition(ctx, orderID, &refundID,
		domain.OrderStatusRefunded, []domain.OrderStatus{domain.OrderStatusPaid})
}

func (r *OrderRepository) releaseTransition(
	ctx context.Context,
	orderID string,
	refundID *string,
	to domain.OrderStatus,
	from []domain.OrderStatus,
) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	fromArgs := make([]string, len(from))
	for i, s := range from {
		fromArgs[i] = string(s)
	}

	updateQuery := `UPDATE orders
					SET status = $2,
					    payment_id = CASE
					        WHEN $3::text IS NOT NULL THEN COALESCE(payment_id, '') || ':refund:' || $3
					        ELSE payment_id
					    END,
					    updated_at = now()
					WHERE id = $1 AND status = ANY($4)
					RETURNING event_id, quantity`
	var (
		eventID  string
		quantity int
	)
	err = tx.QueryRowContext(ctx, updateQuery, orderID, to, refundID, pq.Array(fromArgs)).
		Scan(&eventID, &quantity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return r.classifyTransitionFailure(ctx, orderID)
		}
		return fmt.Errorf("update order status: %w", err)
	}

	releaseQuery := `UPDATE events
					 SET available_tickets = LEAST(available_tickets + $2, total_capacity),
					     updated_at = now()
					 WHERE id = $1`
	if _, err = tx.ExecContext(ctx, releaseQuery, eventID, quantity); err != nil {
		return fmt.Errorf("release tickets: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit cancellation: %w", err)
	}

	return nil
}

func (r *OrderRepository) classifyTransitionFailure(ctx context.Context, orderID string) error {
	var status domain.OrderStatus
	query := `SELECT status FROM orders WHERE id = $1`
	err := r.db.Master.QueryRowContext(ctx, query, orderID).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrOrderNotFound
		}
		return fmt.Errorf("check order status: %w", err)
	}

	switch status {
	case domain.OrderStatusPaid:
		return domain.ErrAlreadyPaid
	case domain.OrderStatusCanceled:
		return domain.ErrAlreadyCanceled
	default:
		return domain.ErrInvalidTransition
	}
}

func collectOrders(rows *sql.Rows) ([]*domain.Order, error) {
	var res []*domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		res = append(res, o)
	}
	return res, rows.Err()
}

func scanOrder(s scanner) (*domain.Order, error) {
	var (
		o         domain.Order
		paymentID sql.NullString
		paidAt    sql.NullTime
	)
	err := s.Scan(
		&o.ID, &o.UserID, &o.EventID, &o.Quantity, &o.UnitPrice, &o.TotalAmount,
		&o.Status, &paymentID, &o.PaymentMethod, &o.CreatedAt, &o.UpdatedAt, &paidAt,
	)
	if err != nil {
		return nil, err
	}
	if paymentID.Valid {
		o.PaymentID = &paymentID.String
	}
	if paidAt.Valid {
		t := paidAt.Time
		o.PaidAt = &t
	}
	return &o, nil
}

func statusArg(s *domain.OrderStatus) any {
	if s == nil {
		return nil
	}
	return string(*s)
}
