package timecard

import (
	"time"

	"github.com/bizsupportc/teamtrack-backend-go/internal/pkg/validator"
)

// ========================================
// TIMECARD DTOs
// ========================================

type ClockInRequest struct {
	EmployeeID string  `json:"-"`
	Location   *string `json:"location"`
	Notes      *string `json:"notes"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Location != nil && !ValidLocation(*r.Location) {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "location must be Home or Office",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReviewRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *ReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != string(ReviewApproved) && r.Status != string(ReviewRejected) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be approved or rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RangeFilter is a closed calendar-date interval.
type RangeFilter struct {
	StartDate string
	EndDate   string
}

// Parse validates the filter and returns the interval bounds. Empty bounds
// default to today.
func (f RangeFilter) Parse() (time.Time, time.Time, error) {
	var errs validator.ValidationErrors

	now := time.Now()
	start, end := WorkDateOf(now), WorkDateOf(now)

	if f.StartDate != "" {
		parsed, ok := validator.IsValidDate(f.StartDate)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "startDate",
				Message: "startDate must be formatted YYYY-MM-DD",
			})
		} else {
			start = parsed
		}
	}
	if f.EndDate != "" {
		parsed, ok := validator.IsValidDate(f.EndDate)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "endDate",
				Message: "endDate must be formatted YYYY-MM-DD",
			})
		} else {
			end = parsed
		}
	}

	if len(errs) > 0 {
		return time.Time{}, time.Time{}, errs
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, ErrInvalidRange
	}

	return start, end, nil
}

type TimeCardResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	WorkDate     string  `json:"work_date"`
	ClockIn      string  `json:"clock_in"`
	ClockOut     *string `json:"clock_out"`
	TotalHours   float64 `json:"total_hours"`
	Status       string  `json:"status"`
	Location     *string `json:"location"`
	Notes        *string `json:"notes,omitempty"`
}

// ToResponse converts a TimeCard entity to its API shape.
func ToResponse(tc TimeCard) TimeCardResponse {
	var clockOut *string
	if tc.ClockOut != nil {
		formatted := tc.ClockOut.Format(time.RFC3339)
		clockOut = &formatted
	}

	var location *string
	if tc.Location != nil {
		loc := string(*tc.Location)
		location = &loc
	}

	hours, _ := tc.TotalHours.Float64()

	return TimeCardResponse{
		ID:           tc.ID,
		EmployeeID:   tc.EmployeeID,
		EmployeeName: tc.EmployeeName,
		WorkDate:     tc.WorkDate.Format("2006-01-02"),
		ClockIn:      tc.ClockIn.Format(time.RFC3339),
		ClockOut:     clockOut,
		TotalHours:   hours,
		Status:       string(tc.Status),
		Location:     location,
		Notes:        tc.Notes,
	}
}
