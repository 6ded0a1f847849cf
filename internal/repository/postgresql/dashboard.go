package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/bizsupportc/teamtrack-backend-go/internal/domain/dashboard"
	"github.com/bizsupportc/teamtrack-backend-go/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

// CountEmployees implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountEmployees(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}

	return count, nil
}

// CountClockedIn implements dashboard.DashboardRepository. An employee
// counts as clocked in when today's time card has no clock-out yet.
func (r *dashboardRepository) CountClockedIn(ctx context.Context, workDate time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM time_cards
		WHERE work_date = $1 AND clock_out IS NULL
	`

	var count int
	if err := q.QueryRow(ctx, query, workDate).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count clocked in employees: %w", err)
	}

	return count, nil
}

// CountPendingLeave implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountPendingLeave(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests WHERE status = 'pending'`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending leave: %w", err)
	}

	return count, nil
}

// CountTasksInProgress implements dashboard.DashboardRepository. Counts
// by effective status, so a stored todo whose start date has arrived is
// already in progress for the widget.
func (r *dashboardRepository) CountTasksInProgress(ctx context.Context, today time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM tasks
		WHERE status = 'ongoing'
		   OR (status = 'todo' AND start_date <= $1)
	`

	var count int
	if err := q.QueryRow(ctx, query, today).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count tasks in progress: %w", err)
	}

	return count, nil
}

// PodStats implements dashboard.DashboardRepository. Employees without a
// pod are bucketed under Unassigned.
func (r *dashboardRepository) PodStats(ctx context.Context) ([]dashboard.PodStat, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(pod_name, 'Unassigned') AS pod_name, COUNT(*) AS employee_count
		FROM employees
		GROUP BY COALESCE(pod_name, 'Unassigned')
		ORDER BY employee_count DESC, pod_name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query pod stats: %w", err)
	}
	defer rows.Close()

	var stats []dashboard.PodStat
	for rows.Next() {
		var s dashboard.PodStat
		if err := rows.Scan(&s.PodName, &s.EmployeeCount); err != nil {
			return nil, fmt.Errorf("failed to scan pod stat: %w", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read pod stat rows: %w", err)
	}

	return stats, nil
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}
