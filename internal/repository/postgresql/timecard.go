package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bizsupportc/teamtrack-backend-go/internal/domain/timecard"
	"github.com/bizsupportc/teamtrack-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type timeCardRepository struct {
	db *database.DB
}

// Create implements timecard.TimeCardRepository. The time_cards table
// carries a unique index on (employee_id, work_date); a violation maps
// to ErrAlreadyClockedIn so concurrent double-submission cannot open a
// second session for the same day.
func (r *timeCardRepository) Create(ctx context.Context, tc timecard.TimeCard) (timecard.TimeCard, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_cards (employee_id, work_date, clock_in, location, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, total_hours, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		tc.EmployeeID,
		tc.WorkDate,
		tc.ClockIn,
		tc.Location,
		tc.Notes,
		tc.Status,
	).Scan(&tc.ID, &tc.TotalHours, &tc.CreatedAt, &tc.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return timecard.TimeCard{}, timecard.ErrAlreadyClockedIn
		}
		return timecard.TimeCard{}, fmt.Errorf("failed to create time card: %w", err)
	}

	return tc, nil
}

// GetByID implements timecard.TimeCardRepository.
func (r *timeCardRepository) GetByID(ctx context.Context, id string) (timecard.TimeCard, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, work_date, clock_in, clock_out, total_hours,
			   status, location, notes, created_at, updated_at
		FROM time_cards
		WHERE id = $1
	`

	var tc timecard.TimeCard
	err := q.QueryRow(ctx, query, id).Scan(
		&tc.ID, &tc.EmployeeID, &tc.WorkDate, &tc.ClockIn, &tc.ClockOut, &tc.TotalHours,
		&tc.Status, &tc.Location, &tc.Notes, &tc.CreatedAt, &tc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timecard.TimeCard{}, timecard.ErrTimecardNotFound
		}
		return timecard.TimeCard{}, fmt.Errorf("failed to get time card: %w", err)
	}

	return tc, nil
}

// GetByEmployeeAndDate implements timecard.TimeCardRepository. Returns
// nil without error when no record exists for the day.
func (r *timeCardRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, workDate time.Time) (*timecard.TimeCard, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, work_date, clock_in, clock_out, total_hours,
			   status, location, notes, created_at, updated_at
		FROM time_cards
		WHERE employee_id = $1 AND work_date = $2
		LIMIT 1
	`

	var tc timecard.TimeCard
	err := q.QueryRow(ctx, query, employeeID, workDate).Scan(
		&tc.ID, &tc.EmployeeID, &tc.WorkDate, &tc.ClockIn, &tc.ClockOut, &tc.TotalHours,
		&tc.Status, &tc.Location, &tc.Notes, &tc.CreatedAt, &tc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get time card by date: %w", err)
	}

	return &tc, nil
}

// CloseSession implements timecard.TimeCardRepository.
func (r *timeCardRepository) CloseSession(ctx context.Context, tc timecard.TimeCard) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_cards
		SET clock_out = $2, total_hours = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	var updatedAt time.Time
	err := q.QueryRow(ctx, query, tc.ID, tc.ClockOut, tc.TotalHours).Scan(&updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timecard.ErrTimecardNotFound
		}
		return fmt.Errorf("failed to close time card session: %w", err)
	}

	return nil
}

// UpdateStatus implements timecard.TimeCardRepository.
func (r *timeCardRepository) UpdateStatus(ctx context.Context, id string, status timecard.ReviewStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE time_cards SET status = $2, updated_at = NOW() WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update time card status: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return timecard.ErrTimecardNotFound
	}

	return nil
}

// ListByEmployeeAndRange implements timecard.TimeCardRepository.
func (r *timeCardRepository) ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]timecard.TimeCard, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, work_date, clock_in, clock_out, total_hours,
			   status, location, notes, created_at, updated_at
		FROM time_cards
		WHERE employee_id = $1 AND work_date BETWEEN $2 AND $3
		ORDER BY work_date DESC
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list time cards: %w", err)
	}
	defer rows.Close()

	return scanTimeCards(rows, false)
}

// ListByRange implements timecard.TimeCardRepository. Joins the employee
// name for elevated list views.
func (r *timeCardRepository) ListByRange(ctx context.Context, start, end time.Time) ([]timecard.TimeCard, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT tc.id, tc.employee_id, tc.work_date, tc.clock_in, tc.clock_out, tc.total_hours,
			   tc.status, tc.location, tc.notes, tc.created_at, tc.updated_at,
			   e.first_name || ' ' || e.last_name AS employee_name
		FROM time_cards tc
		INNER JOIN employees e ON tc.employee_id = e.id
		WHERE tc.work_date BETWEEN $1 AND $2
		ORDER BY tc.work_date DESC, employee_name ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list time cards in range: %w", err)
	}
	defer rows.Close()

	return scanTimeCards(rows, true)
}

// ListByEmployeeIDsAndDate implements timecard.TimeCardRepository.
func (r *timeCardRepository) ListByEmployeeIDsAndDate(ctx context.Context, employeeIDs []string, workDate time.Time) ([]timecard.TimeCard, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, work_date, clock_in, clock_out, total_hours,
			   status, location, notes, created_at, updated_at
		FROM time_cards
		WHERE employee_id = ANY($1) AND work_date = $2
	`

	rows, err := q.Query(ctx, query, employeeIDs, workDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list time cards for employees: %w", err)
	}
	defer rows.Close()

	return scanTimeCards(rows, false)
}

func scanTimeCards(rows pgx.Rows, withName bool) ([]timecard.TimeCard, error) {
	var cards []timecard.TimeCard
	for rows.Next() {
		var tc timecard.TimeCard
		dest := []any{
			&tc.ID, &tc.EmployeeID, &tc.WorkDate, &tc.ClockIn, &tc.ClockOut, &tc.TotalHours,
			&tc.Status, &tc.Location, &tc.Notes, &tc.CreatedAt, &tc.UpdatedAt,
		}
		if withName {
			dest = append(dest, &tc.EmployeeName)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan time card: %w", err)
		}
		cards = append(cards, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read time card rows: %w", err)
	}
	return cards, nil
}

// DeleteByEmployee implements timecard.TimeCardRepository.
func (r *timeCardRepository) DeleteByEmployee(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM time_cards WHERE employee_id = $1`

	if _, err := q.Exec(ctx, query, employeeID); err != nil {
		return fmt.Errorf("failed to delete time cards for employee: %w", err)
	}

	return nil
}

func NewTimeCardRepository(db *database.DB) timecard.TimeCardRepository {
	return &timeCardRepository{db: db}
}
