package dashboard

import (
	"context"
	"time"
)

// DashboardRepository serves the count queries behind the stats widgets.
// Each count runs against the current persisted state, no summary tables.
type DashboardRepository interface {
	CountEmployees(ctx context.Context) (int, error)
	CountClockedIn(ctx context.Context, workDate time.Time) (int, error)
	CountPendingLeave(ctx context.Context) (int, error)
	CountTasksInProgress(ctx context.Context, today time.Time) (int, error)
	PodStats(ctx context.Context) ([]PodStat, error)
}

type DashboardService interface {
	Stats(ctx context.Context) (*Stats, error)
	PodStats(ctx context.Context) ([]PodStat, error)
	EmployeeStatuses(ctx context.Context) ([]EmployeeStatus, error)
	PodAttendanceCalendar(ctx context.Context, req *PodCalendarRequest) ([]CalendarDay, error)
}
