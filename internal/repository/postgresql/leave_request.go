package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bizsupportc/teamtrack-backend-go/internal/domain/leave"
	"github.com/bizsupportc/teamtrack-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRepository struct {
	db *database.DB
}

// Create implements leave.LeaveRepository.
func (r *leaveRepository) Create(ctx context.Context, lr *leave.LeaveRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (employee_id, type, start_date, end_date, reason, backup_spoke, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		lr.EmployeeID,
		lr.Type,
		lr.StartDate,
		lr.EndDate,
		lr.Reason,
		lr.BackupSpoke,
		lr.Status,
	).Scan(&lr.ID, &lr.CreatedAt, &lr.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create leave request: %w", err)
	}

	return nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepository) GetByID(ctx context.Context, id string) (*leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.type, lr.start_date, lr.end_date, lr.reason,
			   lr.backup_spoke, lr.status, lr.manager_notes, lr.approved_by_id,
			   lr.created_at, lr.updated_at,
			   e.first_name || ' ' || e.last_name AS employee_name
		FROM leave_requests lr
		INNER JOIN employees e ON lr.employee_id = e.id
		WHERE lr.id = $1
	`

	var lr leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&lr.ID, &lr.EmployeeID, &lr.Type, &lr.StartDate, &lr.EndDate, &lr.Reason,
		&lr.BackupSpoke, &lr.Status, &lr.ManagerNotes, &lr.ApprovedByID,
		&lr.CreatedAt, &lr.UpdatedAt, &lr.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, leave.ErrLeaveNotFound
		}
		return nil, fmt.Errorf("failed to get leave request: %w", err)
	}

	return &lr, nil
}

// List implements leave.LeaveRepository.
func (r *leaveRepository) List(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.type, lr.start_date, lr.end_date, lr.reason,
			   lr.backup_spoke, lr.status, lr.manager_notes, lr.approved_by_id,
			   lr.created_at, lr.updated_at,
			   e.first_name || ' ' || e.last_name AS employee_name
		FROM leave_requests lr
		INNER JOIN employees e ON lr.employee_id = e.id
		WHERE ($1 = '' OR lr.employee_id::text = $1)
		  AND ($2 = '' OR lr.status = $2)
		  AND (NULLIF($3, '') IS NULL OR lr.end_date >= NULLIF($3, '')::date)
		  AND (NULLIF($4, '') IS NULL OR lr.start_date <= NULLIF($4, '')::date)
		ORDER BY lr.created_at DESC
	`

	rows, err := q.Query(ctx, query, filter.EmployeeID, filter.Status,
		filter.StartDate, filter.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	return scanLeaveRequests(rows, true)
}

// ListByEmployee implements leave.LeaveRepository.
func (r *leaveRepository) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, type, start_date, end_date, reason,
			   backup_spoke, status, manager_notes, approved_by_id,
			   created_at, updated_at
		FROM leave_requests
		WHERE employee_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests for employee: %w", err)
	}
	defer rows.Close()

	return scanLeaveRequests(rows, false)
}

// HasApprovedOverlap implements leave.LeaveRepository. The interval test
// is inclusive on both endpoints, matching the submission rule that only
// approved requests block.
func (r *leaveRepository) HasApprovedOverlap(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM leave_requests
			WHERE employee_id = $1
			  AND status = 'approved'
			  AND start_date <= $3
			  AND end_date >= $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, start, end).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check leave overlap: %w", err)
	}

	return exists, nil
}

// UpdateStatus implements leave.LeaveRepository.
func (r *leaveRepository) UpdateStatus(ctx context.Context, id string, status leave.Status, reviewerID string, managerNotes *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2, approved_by_id = $3, manager_notes = $4, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id, status, reviewerID, managerNotes)
	if err != nil {
		return fmt.Errorf("failed to update leave request status: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}

	return nil
}

// Delete implements leave.LeaveRepository.
func (r *leaveRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM leave_requests WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete leave request: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}

	return nil
}

// ListApprovedInRange implements leave.LeaveRepository.
func (r *leaveRepository) ListApprovedInRange(ctx context.Context, employeeIDs []string, start, end time.Time) ([]leave.LeaveRequest, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, type, start_date, end_date, reason,
			   backup_spoke, status, manager_notes, approved_by_id,
			   created_at, updated_at
		FROM leave_requests
		WHERE employee_id = ANY($1)
		  AND status = 'approved'
		  AND start_date <= $3
		  AND end_date >= $2
	`

	rows, err := q.Query(ctx, query, employeeIDs, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leave in range: %w", err)
	}
	defer rows.Close()

	return scanLeaveRequests(rows, false)
}

func scanLeaveRequests(rows pgx.Rows, withName bool) ([]leave.LeaveRequest, error) {
	var requests []leave.LeaveRequest
	for rows.Next() {
		var lr leave.LeaveRequest
		dest := []any{
			&lr.ID, &lr.EmployeeID, &lr.Type, &lr.StartDate, &lr.EndDate, &lr.Reason,
			&lr.BackupSpoke, &lr.Status, &lr.ManagerNotes, &lr.ApprovedByID,
			&lr.CreatedAt, &lr.UpdatedAt,
		}
		if withName {
			dest = append(dest, &lr.EmployeeName)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, lr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leave request rows: %w", err)
	}
	return requests, nil
}

// DeleteByEmployee implements leave.LeaveRepository.
func (r *leaveRepository) DeleteByEmployee(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM leave_requests WHERE employee_id = $1`

	if _, err := q.Exec(ctx, query, employeeID); err != nil {
		return fmt.Errorf("failed to delete leave requests for employee: %w", err)
	}

	return nil
}

// NullifyApprover implements leave.LeaveRepository.
func (r *leaveRepository) NullifyApprover(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE leave_requests SET approved_by_id = NULL WHERE approved_by_id = $1`

	if _, err := q.Exec(ctx, query, employeeID); err != nil {
		return fmt.Errorf("failed to clear approver reference: %w", err)
	}

	return nil
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}
