package dashboard

import (
	"context"
	"time"

	"github.com/bizsupportc/teamtrack-backend-go/internal/domain/dashboard"
	"github.com/bizsupportc/teamtrack-backend-go/internal/domain/employee"
	"github.com/bizsupportc/teamtrack-backend-go/internal/domain/task"
	"github.com/bizsupportc/teamtrack-backend-go/internal/domain/timecard"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	employeeRepo employee.EmployeeRepository
	timeCardRepo timecard.TimeCardRepository
	taskRepo     task.TaskRepository
	now          func() time.Time
}

func NewDashboardService(
	repo dashboard.DashboardRepository,
	employeeRepo employee.EmployeeRepository,
	timeCardRepo timecard.TimeCardRepository,
	taskRepo task.TaskRepository,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
		employeeRepo:        employeeRepo,
		timeCardRepo:        timeCardRepo,
		taskRepo:            taskRepo,
		now:                 time.Now,
	}
}

// Stats implements dashboard.DashboardService. The four counts are
// independent queries, fanned out concurrently.
func (s *DashboardServiceImpl) Stats(ctx context.Context) (*dashboard.Stats, error) {
	today := timecard.WorkDateOf(s.now())
	stats := &dashboard.Stats{}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.DashboardRepository.CountEmployees(gCtx)
		if err != nil {
			return err
		}
		stats.TotalEmployees = count
		return nil
	})

	g.Go(func() error {
		count, err := s.DashboardRepository.CountClockedIn(gCtx, today)
		if err != nil {
			return err
		}
		stats.ClockedInCount = count
		return nil
	})

	g.Go(func() error {
		count, err := s.DashboardRepository.CountPendingLeave(gCtx)
		if err != nil {
			return err
		}
		stats.PendingLeave = count
		return nil
	})

	g.Go(func() error {
		count, err := s.DashboardRepository.CountTasksInProgress(gCtx, today)
		if err != nil {
			return err
		}
		stats.TasksInProgress = count
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return stats, nil
}

// PodStats implements dashboard.DashboardService.
func (s *DashboardServiceImpl) PodStats(ctx context.Context) ([]dashboard.PodStat, error) {
	return s.DashboardRepository.PodStats(ctx)
}

// EmployeeStatuses implements dashboard.DashboardService. Joins today's
// time card onto every employee; current location is surfaced only while
// the employee is clocked in. Each row also carries the employee's open
// task count so the manager view shows workload at a glance.
func (s *DashboardServiceImpl) EmployeeStatuses(ctx context.Context) ([]dashboard.EmployeeStatus, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	today := timecard.WorkDateOf(s.now())

	ids := make([]string, 0, len(employees))
	for _, emp := range employees {
		ids = append(ids, emp.ID)
	}

	cards, err := s.timeCardRepo.ListByEmployeeIDsAndDate(ctx, ids, today)
	if err != nil {
		return nil, err
	}

	byEmployee := make(map[string]*timecard.TimeCard, len(cards))
	for i := range cards {
		byEmployee[cards[i].EmployeeID] = &cards[i]
	}

	statuses := make([]dashboard.EmployeeStatus, 0, len(employees))
	for _, emp := range employees {
		status := dashboard.EmployeeStatus{
			EmployeeID: emp.ID,
			Name:       emp.FullName(),
			PodName:    emp.PodName,
			Status:     dashboard.StateClockedOut,
		}

		if tc, ok := byEmployee[emp.ID]; ok {
			clockIn := tc.ClockIn.Format(time.RFC3339)
			status.LastClockIn = &clockIn

			if tc.ClockOut != nil {
				clockOut := tc.ClockOut.Format(time.RFC3339)
				status.LastClockOut = &clockOut
			} else {
				status.Status = dashboard.StateClockedIn
				if tc.Location != nil {
					loc := string(*tc.Location)
					status.CurrentLocation = &loc
				}
			}
		}

		openTasks, err := s.taskRepo.CountOpenByAssignee(ctx, emp.ID)
		if err != nil {
			return nil, err
		}
		status.OpenTaskCount = openTasks

		statuses = append(statuses, status)
	}

	return statuses, nil
}

// PodAttendanceCalendar implements dashboard.DashboardService. Runs the
// day classifier for every pod member over the range and groups the
// labels per day. Weekend days carry no cells.
func (s *DashboardServiceImpl) PodAttendanceCalendar(ctx context.Context, req *dashboard.PodCalendarRequest) ([]dashboard.CalendarDay, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start, end := req.Dates()
	if start.After(end) {
		return nil, timecard.ErrInvalidRange
	}

	members, err := s.employeeRepo.ListByPod(ctx, req.PodName)
	if err != nil {
		return nil, err
	}

	days := make(map[string]*dashboard.CalendarDay)
	var order []string

	for _, member := range members {
		cards, err := s.timeCardRepo.ListByEmployeeAndRange(ctx, member.ID, start, end)
		if err != nil {
			return nil, err
		}

		cells, err := timecard.CollectRange(start, end, cards)
		if err != nil {
			return nil, err
		}

		for _, cell := range cells {
			if cell.Label == timecard.DayWeekend {
				continue
			}

			key := cell.Date.Format("2006-01-02")
			day, ok := days[key]
			if !ok {
				day = &dashboard.CalendarDay{Date: key}
				days[key] = day
				order = append(order, key)
			}
			day.Cells = append(day.Cells, dashboard.CalendarCell{
				EmployeeID:   member.ID,
				EmployeeName: member.FullName(),
				Label:        cell.Label,
			})
		}
	}

	out := make([]dashboard.CalendarDay, 0, len(order))
	for _, key := range order {
		out = append(out, *days[key])
	}

	return out, nil
}
