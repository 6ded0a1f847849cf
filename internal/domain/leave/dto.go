package leave

import (
	"time"

	"github.com/bizsupportc/teamtrack-backend-go/internal/pkg/validator"
)

type SubmitLeaveRequest struct {
	EmployeeID string `json:"-"`
	Type       string `json:"type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`
	// BackupSpoke names the colleague covering the leave, free text.
	BackupSpoke *string `json:"backup_spoke"`
}

func (r *SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type is required",
		})
	} else if !ValidLeaveType(LeaveType(r.Type)) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of vacation, sick, personal, other",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be formatted YYYY-MM-DD",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be formatted YYYY-MM-DD",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Dates returns the parsed interval bounds. Call Validate first.
func (r *SubmitLeaveRequest) Dates() (start, end time.Time) {
	start, _ = validator.IsValidDate(r.StartDate)
	end, _ = validator.IsValidDate(r.EndDate)
	return start, end
}

type ReviewLeaveRequest struct {
	ID           string `json:"-"`
	ReviewerID   string `json:"-"`
	Status       string `json:"status"`
	ManagerNotes string `json:"manager_notes"`
}

func (r *ReviewLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != string(StatusApproved) && r.Status != string(StatusRejected) {
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

// ListFilter narrows the leave-request listing. StartDate and EndDate
// select requests whose leave interval overlaps the given window.
type ListFilter struct {
	EmployeeID string
	Status     string
	StartDate  string
	EndDate    string
}

func (f ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsEmpty(f.Status) &&
		!validator.IsInSlice(f.Status, []string{string(StatusPending), string(StatusApproved), string(StatusRejected)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be pending, approved or rejected",
		})
	}

	var start, end time.Time
	if !validator.IsEmpty(f.StartDate) {
		parsed, ok := validator.IsValidDate(f.StartDate)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be formatted YYYY-MM-DD",
			})
		}
		start = parsed
	}
	if !validator.IsEmpty(f.EndDate) {
		parsed, ok := validator.IsValidDate(f.EndDate)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be formatted YYYY-MM-DD",
			})
		}
		end = parsed
	}
	if !start.IsZero() && !end.IsZero() && start.After(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must not be after end_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Type         string  `json:"type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	DayCount     int     `json:"day_count"`
	Reason       string  `json:"reason"`
	BackupSpoke  *string `json:"backup_spoke,omitempty"`
	Status       string  `json:"status"`
	ManagerNotes *string `json:"manager_notes,omitempty"`
	ApprovedByID *string `json:"approved_by_id,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

// ToResponse converts a LeaveRequest entity to its API shape.
func ToResponse(lr *LeaveRequest) LeaveResponse {
	return LeaveResponse{
		ID:           lr.ID,
		EmployeeID:   lr.EmployeeID,
		EmployeeName: lr.EmployeeName,
		Type:         string(lr.Type),
		StartDate:    lr.StartDate.Format("2006-01-02"),
		EndDate:      lr.EndDate.Format("2006-01-02"),
		DayCount:     lr.DayCount(),
		Reason:       lr.Reason,
		BackupSpoke:  lr.BackupSpoke,
		Status:       string(lr.Status),
		ManagerNotes: lr.ManagerNotes,
		ApprovedByID: lr.ApprovedByID,
		CreatedAt:    lr.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    lr.UpdatedAt.Format(time.RFC3339),
	}
}

func ToResponses(items []LeaveRequest) []LeaveResponse {
	out := make([]LeaveResponse, 0, len(items))
	for i := range items {
		out = append(out, ToResponse(&items[i]))
	}
	return out
}
