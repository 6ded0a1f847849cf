package task

import (
	"time"

	"github.com/bizsupportc/teamtrack-backend-go/internal/pkg/validator"
)

type CreateTaskRequest struct {
	AssignedByID   string   `json:"-"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	AssignedToID   string   `json:"assigned_to_id"`
	Priority       string   `json:"priority"`
	StartDate      string   `json:"start_date"`
	DueDate        string   `json:"due_date"`
	EstimatedHours *float64 `json:"estimated_hours"`
}

func (r *CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if validator.IsEmpty(r.AssignedToID) {
		errs = append(errs, validator.ValidationError{
			Field:   "assigned_to_id",
			Message: "assigned_to_id is required",
		})
	} else if !validator.IsValidUUID(r.AssignedToID) {
		errs = append(errs, validator.ValidationError{
			Field:   "assigned_to_id",
			Message: "assigned_to_id must be a valid id",
		})
	}

	if !ValidPriority(Priority(r.Priority)) {
		errs = append(errs, validator.ValidationError{
			Field:   "priority",
			Message: "priority must be low, medium or high",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be formatted YYYY-MM-DD",
		})
	}

	due, dueOK := validator.IsValidDate(r.DueDate)
	if !dueOK {
		errs = append(errs, validator.ValidationError{
			Field:   "due_date",
			Message: "due_date must be formatted YYYY-MM-DD",
		})
	}

	if startOK && dueOK && due.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "due_date",
			Message: "due_date must not be before start_date",
		})
	}

	if r.EstimatedHours != nil && *r.EstimatedHours <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "estimated_hours",
			Message: "estimated_hours must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Dates returns the parsed start and due dates. Call Validate first.
func (r *CreateTaskRequest) Dates() (start, due time.Time) {
	start, _ = validator.IsValidDate(r.StartDate)
	due, _ = validator.IsValidDate(r.DueDate)
	return start, due
}

type UpdateTaskRequest struct {
	ID             string   `json:"-"`
	Title          *string  `json:"title"`
	Description    *string  `json:"description"`
	AssignedToID   *string  `json:"assigned_to_id"`
	Priority       *string  `json:"priority"`
	StartDate      *string  `json:"start_date"`
	DueDate        *string  `json:"due_date"`
	EstimatedHours *float64 `json:"estimated_hours"`
}

func (r *UpdateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not be empty",
		})
	}
	if r.AssignedToID != nil && !validator.IsValidUUID(*r.AssignedToID) {
		errs = append(errs, validator.ValidationError{
			Field:   "assigned_to_id",
			Message: "assigned_to_id must be a valid id",
		})
	}
	if r.Priority != nil && !ValidPriority(Priority(*r.Priority)) {
		errs = append(errs, validator.ValidationError{
			Field:   "priority",
			Message: "priority must be low, medium or high",
		})
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be formatted YYYY-MM-DD",
			})
		}
	}
	if r.DueDate != nil {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "due_date",
				Message: "due_date must be formatted YYYY-MM-DD",
			})
		}
	}
	if r.EstimatedHours != nil && *r.EstimatedHours <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "estimated_hours",
			Message: "estimated_hours must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !ValidStatus(Status(r.Status)) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be todo, ongoing, completed or blocked",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListFilter struct {
	AssignedToID string
	Status       string
	Priority     string
	CreatedFrom  string
	CreatedTo    string
}

func (f ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsEmpty(f.Status) && !ValidStatus(Status(f.Status)) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be todo, ongoing, completed or blocked",
		})
	}

	if !validator.IsEmpty(f.Priority) && !ValidPriority(Priority(f.Priority)) {
		errs = append(errs, validator.ValidationError{
			Field:   "priority",
			Message: "priority must be low, medium or high",
		})
	}

	var from, to time.Time
	if !validator.IsEmpty(f.CreatedFrom) {
		parsed, ok := validator.IsValidDate(f.CreatedFrom)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "created_from",
				Message: "created_from must be formatted YYYY-MM-DD",
			})
		}
		from = parsed
	}
	if !validator.IsEmpty(f.CreatedTo) {
		parsed, ok := validator.IsValidDate(f.CreatedTo)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "created_to",
				Message: "created_to must be formatted YYYY-MM-DD",
			})
		}
		to = parsed
	}
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		errs = append(errs, validator.ValidationError{
			Field:   "created_from",
			Message: "created_from must not be after created_to",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TaskResponse struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	AssignedToID   string   `json:"assigned_to_id"`
	AssigneeName   *string  `json:"assignee_name,omitempty"`
	AssignedByID   *string  `json:"assigned_by_id,omitempty"`
	Status         string   `json:"status"`
	Priority       string   `json:"priority"`
	StartDate      string   `json:"start_date"`
	DueDate        string   `json:"due_date"`
	CreatedDate    string   `json:"created_date"`
	EstimatedHours *float64 `json:"estimated_hours,omitempty"`
	CompletedAt    *string  `json:"completed_at,omitempty"`
	Delayed        bool     `json:"delayed"`
}

// ToResponse converts a Task entity to its API shape, deriving the
// effective status and the delayed flag for the given day.
func ToResponse(t *Task, today time.Time) TaskResponse {
	var completedAt *string
	if t.CompletedAt != nil {
		formatted := t.CompletedAt.Format(time.RFC3339)
		completedAt = &formatted
	}

	return TaskResponse{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		AssignedToID:   t.AssignedToID,
		AssigneeName:   t.AssigneeName,
		AssignedByID:   t.AssignedByID,
		Status:         string(t.EffectiveStatus(today)),
		Priority:       string(t.Priority),
		StartDate:      t.StartDate.Format("2006-01-02"),
		DueDate:        t.DueDate.Format("2006-01-02"),
		CreatedDate:    t.CreatedDate.Format("2006-01-02"),
		EstimatedHours: t.EstimatedHours,
		CompletedAt:    completedAt,
		Delayed:        t.IsDelayed(today),
	}
}

func ToResponses(items []Task, today time.Time) []TaskResponse {
	out := make([]TaskResponse, 0, len(items))
	for i := range items {
		out = append(out, ToResponse(&items[i], today))
	}
	return out
}
