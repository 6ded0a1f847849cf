package task

import (
	"context"
	"time"
)

type TaskRepository interface {
	Create(ctx context.Context, t *Task) error
	GetByID(ctx context.Context, id string) (*Task, error)
	List(ctx context.Context, filter ListFilter) ([]Task, error)
	Update(ctx context.Context, t *Task) error
	// MaterializeOngoing persists the todo to ongoing transition for a
	// task whose start date has arrived. Updating a task that is no
	// longer todo is a no-op.
	MaterializeOngoing(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, status Status, completedAt *time.Time) error
	Delete(ctx context.Context, id string) error
	CountOpenByAssignee(ctx context.Context, employeeID string) (int, error)
	DeleteByAssignee(ctx context.Context, employeeID string) error
	// NullifyAssigner clears assigned_by_id on tasks the employee handed
	// out, keeping the tasks themselves with their assignees.
	NullifyAssigner(ctx context.Context, employeeID string) error
}

type TaskService interface {
	Create(ctx context.Context, req *CreateTaskRequest) (*Task, error)
	Get(ctx context.Context, id string) (*Task, error)
	List(ctx context.Context, filter ListFilter) ([]Task, error)
	Update(ctx context.Context, req *UpdateTaskRequest) (*Task, error)
	UpdateStatus(ctx context.Context, req *UpdateStatusRequest) (*Task, error)
	Delete(ctx context.Context, id string) error
}
