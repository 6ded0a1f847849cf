package dashboard

import (
	"time"

	"github.com/bizsupportc/teamtrack-backend-go/internal/domain/timecard"
	"github.com/bizsupportc/teamtrack-backend-go/internal/pkg/validator"
)

type Stats struct {
	TotalEmployees  int `json:"total_employees"`
	ClockedInCount  int `json:"clocked_in_count"`
	PendingLeave    int `json:"pending_leave_count"`
	TasksInProgress int `json:"tasks_in_progress_count"`
}

type PodStat struct {
	PodName       string `json:"pod_name"`
	EmployeeCount int    `json:"employee_count"`
}

type ClockState string

const (
	StateClockedIn  ClockState = "clocked_in"
	StateClockedOut ClockState = "clocked_out"
)

type EmployeeStatus struct {
	EmployeeID      string     `json:"employee_id"`
	Name            string     `json:"name"`
	PodName         *string    `json:"pod_name,omitempty"`
	Status          ClockState `json:"status"`
	LastClockIn     *string    `json:"last_clock_in,omitempty"`
	LastClockOut    *string    `json:"last_clock_out,omitempty"`
	CurrentLocation *string    `json:"current_location,omitempty"`
	OpenTaskCount   int        `json:"open_task_count"`
}

// CalendarCell is one employee on one workday of the pod calendar.
// Weekend days are omitted from the calendar entirely.
type CalendarCell struct {
	EmployeeID   string            `json:"employee_id"`
	EmployeeName string            `json:"employee_name"`
	Label        timecard.DayLabel `json:"label"`
}

type CalendarDay struct {
	Date  string         `json:"date"`
	Cells []CalendarCell `json:"cells"`
}

type PodCalendarRequest struct {
	PodName   string
	StartDate string
	EndDate   string
}

func (r *PodCalendarRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PodName) {
		errs = append(errs, validator.ValidationError{
			Field:   "pod_name",
			Message: "pod_name is required",
		})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be formatted YYYY-MM-DD",
		})
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be formatted YYYY-MM-DD",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Dates returns the parsed interval bounds. Call Validate first.
func (r *PodCalendarRequest) Dates() (start, end time.Time) {
	start, _ = validator.IsValidDate(r.StartDate)
	end, _ = validator.IsValidDate(r.EndDate)
	return start, end
}
