package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"github.com/tickethub-io/tickethub/internal/domain"
)

func newMockDB(t *testing.T) (*dbpg.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &dbpg.DB{Master: db}, mock
}

const (
	reserveStmt = `UPDATE events SET available_tickets = available_tickets - \$2, updated_at = now\(\) WHERE id = \$1 AND NOT is_canceled AND available_tickets >= \$2`
	releaseStmt = `UPDATE events SET available_tickets = LEAST\(available_tickets \+ \$2, total_capacity\), updated_at = now\(\) WHERE id = \$1`
	resizeStmt  = `UPDATE events SET available_tickets = available_tickets \+ \(\$2 - total_capacity\), total_capacity = \$2, updated_at = now\(\) WHERE id = \$1 AND total_capacity - available_tickets <= \$2`
	reserveDiag = `SELECT is_canceled, available_tickets FROM events WHERE id = \$1`
)

// Two reservations race for the last tickets. The conditional update
// matches once: the second caller sees zero rows and is classified as
// sold out instead of driving availability negative.
func TestEventRepository_Reserve_ExhaustsWithoutOverselling(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepo(db)

	mock.ExpectExec(reserveStmt).WithArgs("e1", 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(reserveStmt).WithArgs("e1", 5).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(reserveDiag).WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"is_canceled", "available_tickets"}).AddRow(false, 0))

	require.NoError(t, repo.Reserve(context.Background(), "e1", 5))
	assert.ErrorIs(t, repo.Reserve(context.Background(), "e1", 5), domain.ErrInventoryExhausted)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_Reserve_CanceledEvent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepo(db)

	mock.ExpectExec(reserveStmt).WithArgs("e1", 1).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(reserveDiag).WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"is_canceled", "available_tickets"}).AddRow(true, 10))

	assert.ErrorIs(t, repo.Reserve(context.Background(), "e1", 1), domain.ErrEventCanceled)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_Reserve_EventNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepo(db)

	mock.ExpectExec(reserveStmt).WithArgs("missing", 1).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(reserveDiag).WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	assert.ErrorIs(t, repo.Reserve(context.Background(), "missing", 1), domain.ErrEventNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

// Release always goes through the LEAST clamp so a double release can
// never push availability past total capacity.
func TestEventRepository_Release_ClampedAtCapacity(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepo(db)

	mock.ExpectExec(releaseStmt).WithArgs("e1", 5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Release(context.Background(), "e1", 5))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_Release_EventNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepo(db)

	mock.ExpectExec(releaseStmt).WithArgs("missing", 5).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Release(context.Background(), "missing", 5), domain.ErrEventNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_Resize_ShiftsAvailability(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepo(db)

	mock.ExpectExec(resizeStmt).WithArgs("e1", 200).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Resize(context.Background(), "e1", 200))
	require.NoError(t, mock.ExpectationsWereMet())
}

// Shrinking below the quantity already sold must leave the row
// untouched and surface a capacity violation.
func TestEventRepository_Resize_BelowSold(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepo(db)

	mock.ExpectExec(resizeStmt).WithArgs("e1", 3).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM events WHERE id = \$1\)`).WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	assert.ErrorIs(t, repo.Resize(context.Background(), "e1", 3), domain.ErrCapacityViolation)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_Resize_EventNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepo(db)

	mock.ExpectExec(resizeStmt).WithArgs("missing", 50).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM events WHERE id = \$1\)`).WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	assert.ErrorIs(t, repo.Resize(context.Background(), "missing", 50), domain.ErrEventNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
