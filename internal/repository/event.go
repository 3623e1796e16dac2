package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/tickethub-io/tickethub/internal/domain"
)

const eventColumns = `id, title, description, location, start_date, end_date, image_url,
	total_capacity, available_tickets, ticket_price, is_published, is_canceled,
	reminder_sent, created_at, updated_at`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (` + eventColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Description, e.Location, e.StartDate, nullTime(e.EndDate), e.ImageURL,
		e.TotalCapacity, e.AvailableTickets, e.TicketPrice, e.IsPublished, e.IsCanceled,
		e.ReminderSent, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	e.CreatedAt = now
	e.UpdatedAt = now
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) List(ctx context.Context, f domain.EventFilter) ([]*domain.Event, error) {
	var (
		conds []string
		args  []any
	)
	if f.PublishedOnly {
		conds = append(conds, "is_published")
	}
	if f.Location != "" {
		args = append(args, "%"+f.Location+"%")
		conds = append(conds, fmt.Sprintf("location ILIKE $%d", len(args)))
	}
	if f.Upcoming != nil {
		if *f.Upcoming {
			conds = append(conds, "start_date > now()")
		} else {
			conds = append(conds, "start_date <= now()")
		}
	}

	query := `SELECT ` + eventColumns + ` FROM events`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY start_date"
	args = append(args, normalizeLimit(f.Limit), f.Offset)
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

// Update writes descriptive fields and flags. Capacity changes go
// through Resize so the available-tickets adjustment stays atomic.
func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events
			  SET title = $2, description = $3, location = $4, start_date = $5,
			      end_date = $6, image_url = $7, ticket_price = $8,
			      is_published = $9, is_canceled = $10, updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Description, e.Location, e.StartDate,
		nullTime(e.EndDate), e.ImageURL, e.TicketPrice, e.IsPublished, e.IsCanceled,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.Master.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func (r *EventRepository) HasOrders(ctx context.Context, eventID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM orders WHERE event_id = $1)`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return false, fmt.Errorf("check event orders: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan event orders: %w", err)
	}

	return exists, nil
}

// Reserve atomically decrements available tickets. The conditional
// update serializes concurrent reservations on the same event: of two
// requests racing for the last tickets, at most one matches the
// availability predicate.
func (r *EventRepository) Reserve(ctx context.Context, eventID string, quantity int) error {
	query := `UPDATE events
			  SET available_tickets = available_tickets - $2, updated_at = now()
			  WHERE id = $1
			    AND NOT is_canceled
			    AND available_tickets >= $2`
	res, err := r.db.Master.ExecContext(ctx, query, eventID, quantity)
	if err != nil {
		return fmt.Errorf("reserve tickets: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reserve rows affected: %w", err)
	}
	if rows == 0 {
		return r.classifyReserveFailure(ctx, eventID)
	}

	return nil
}

// Release returns quantity to the pool, clamped at total capacity so a
// double release can never inflate inventory past the cap.
func (r *EventRepository) Release(ctx context.Context, eventID string, quantity int) error {
	query := `UPDATE events
			  SET available_tickets = LEAST(available_tickets + $2, total_capacity),
			      updated_at = now()
			  WHERE id = $1`
	res, err := r.db.Master.ExecContext(ctx, query, eventID, quantity)
	if err != nil {
		return fmt.Errorf("release tickets: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("release rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

// Resize adjusts total capacity and shifts available tickets by the
// same delta in a single statement. Shrinking below the quantity
// already sold leaves the row untouched.
func (r *EventRepository) Resize(ctx context.Context, eventID string, newTotal int) error {
	query := `UPDATE events
			  SET available_tickets = available_tickets + ($2 - total_capacity),
			      total_capacity = $2,
			      updated_at = now()
			  WHERE id = $1
			    AND total_capacity - available_tickets <= $2`
	res, err := r.db.Master.ExecContext(ctx, query, eventID, newTotal)
	if err != nil {
		return fmt.Errorf("resize event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("resize rows affected: %w", err)
	}
	if rows == 0 {
		var exists bool
		checkQuery := `SELECT EXISTS (SELECT 1 FROM events WHERE id = $1)`
		if err := r.db.Master.QueryRowContext(ctx, checkQuery, eventID).Scan(&exists); err != nil {
			return fmt.Errorf("check event: %w", err)
		}
		if !exists {
			return domain.ErrEventNotFound
		}
		return domain.ErrCapacityViolation
	}

	return nil
}

// TicketHolderEmails lists distinct emails of users holding active
// orders for the event, for cancellation and reminder batches.
func (r *EventRepository) TicketHolderEmails(ctx context.Context, eventID string) ([]string, error) {
	query := `SELECT DISTINCT u.email
			  FROM orders o
			  JOIN users u ON u.id = o.user_id
			  WHERE o.event_id = $1 AND o.status IN ('pending', 'paid')`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list ticket holders: %w", err)
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err = rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("scan email: %w", err)
		}
		emails = append(emails, email)
	}

	return emails, rows.Err()
}

// UpcomingUnreminded returns published events starting within the
// window whose reminder batch has not gone out yet.
func (r *EventRepository) UpcomingUnreminded(ctx context.Context, window time.Duration) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE is_published
			    AND NOT is_canceled
			    AND NOT reminder_sent
			    AND start_date > now()
			    AND start_date <= now() + make_interval(secs => $1)`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, window.Seconds())
	if err != nil {
		return nil, fmt.Errorf("list upcoming events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func (r *EventRepository) MarkReminderSent(ctx context.Context, eventID string) error {
	query := `UPDATE events SET reminder_sent = TRUE, updated_at = now() WHERE id = $1`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, eventID); err != nil {
		return fmt.Errorf("mark reminder sent: %w", err)
	}
	return nil
}

func (r *EventRepository) classifyReserveFailure(ctx context.Context, eventID string) error {
	var (
		canceled  bool
		available int
	)
	query := `SELECT is_canceled, available_tickets FROM events WHERE id = $1`
	err := r.db.Master.QueryRowContext(ctx, query, eventID).Scan(&canceled, &available)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("check event: %w", err)
	}
	if canceled {
		return domain.ErrEventCanceled
	}
	return domain.ErrInventoryExhausted
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(s scanner) (*domain.Event, error) {
	var (
		e       domain.Event
		endDate sql.NullTime
	)
	err := s.Scan(
		&e.ID, &e.Title, &e.Description, &e.Location, &e.StartDate, &endDate,
		&e.ImageURL, &e.TotalCapacity, &e.AvailableTickets, &e.TicketPrice,
		&e.IsPublished, &e.IsCanceled, &e.ReminderSent, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if endDate.Valid {
		e.EndDate = endDate.Time
	}
	return &e, nil
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return 100
	}
	return limit
}
