package timecard

import (
	"context"
	"time"
)

// TimeCardRepository defines data access methods for timecard records.
type TimeCardRepository interface {
	// Create inserts a new timecard. The (employee_id, work_date) unique
	// constraint is the authoritative guard against double clock-in; a
	// violation surfaces as ErrAlreadyClockedIn.
	Create(ctx context.Context, tc TimeCard) (TimeCard, error)

	GetByID(ctx context.Context, id string) (TimeCard, error)

	// GetByEmployeeAndDate returns nil when no record exists for that day.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, workDate time.Time) (*TimeCard, error)

	// CloseSession sets clock_out and total_hours on an open session.
	CloseSession(ctx context.Context, tc TimeCard) error

	UpdateStatus(ctx context.Context, id string, status ReviewStatus) error

	// ListByEmployeeAndRange returns records ordered by work_date desc.
	ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]TimeCard, error)

	// ListByRange returns all employees' records in the interval with names joined.
	ListByRange(ctx context.Context, start, end time.Time) ([]TimeCard, error)

	// ListByEmployeeIDsAndDate fetches one day's records for a set of employees.
	ListByEmployeeIDsAndDate(ctx context.Context, employeeIDs []string, workDate time.Time) ([]TimeCard, error)
	// DeleteByEmployee removes every time card the employee owns, used
	// when the employee record itself is deleted.
	DeleteByEmployee(ctx context.Context, employeeID string) error
}

// TimeCardService defines business logic for clock operations.
type TimeCardService interface {
	// ClockIn opens today's session; fails with ErrAlreadyClockedIn when a
	// record already exists for (employee, today).
	ClockIn(ctx context.Context, req ClockInRequest) (TimeCardResponse, error)

	// ClockOut closes today's session and computes total hours.
	ClockOut(ctx context.Context) (TimeCardResponse, error)

	// Today returns today's timecard, or nil when the employee has not
	// clocked in yet.
	Today(ctx context.Context) (*TimeCardResponse, error)

	// History returns the caller's timecards over a date range.
	History(ctx context.Context, filter RangeFilter) ([]TimeCardResponse, error)

	// List returns timecards over a range: all employees for admins, the
	// caller's own otherwise.
	List(ctx context.Context, filter RangeFilter) ([]TimeCardResponse, error)

	// ListForEmployee returns one employee's timecards over a range
	// (manager/admin access).
	ListForEmployee(ctx context.Context, employeeID string, filter RangeFilter) ([]TimeCardResponse, error)

	// Review approves or rejects a pending timecard.
	Review(ctx context.Context, req ReviewRequest) (TimeCardResponse, error)
}
