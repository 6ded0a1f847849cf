package task

import "time"

type Status string

const (
	StatusTodo      Status = "todo"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
	StatusBlocked   Status = "blocked"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusTodo, StatusOngoing, StatusCompleted, StatusBlocked:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func ValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Task struct {
	ID             string
	Title          string
	Description    string
	AssignedToID   string
	AssignedByID   *string
	Status         Status
	Priority       Priority
	StartDate      time.Time
	DueDate        time.Time
	CreatedDate    time.Time
	EstimatedHours *float64
	CompletedAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined for list views.
	AssigneeName *string
}

// EffectiveStatus derives the display status for the given day. A stored
// todo whose start date has arrived reads as ongoing; every other status
// passes through unchanged.
func (t *Task) EffectiveStatus(today time.Time) Status {
	if t.Status == StatusTodo && !truncateDay(t.StartDate).After(truncateDay(today)) {
		return StatusOngoing
	}
	return t.Status
}

// IsDelayed reports whether the task is overdue: past its due date and
// not completed. Derived on read, never stored.
func (t *Task) IsDelayed(today time.Time) bool {
	return truncateDay(t.DueDate).Before(truncateDay(today)) && t.Status != StatusCompleted
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
