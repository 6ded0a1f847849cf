package task

import (
	"context"
	"fmt"
	"time"

	"github.com/bizsupportc/teamtrack-backend-go/internal/domain/employee"
	"github.com/bizsupportc/teamtrack-backend-go/internal/domain/task"
	"github.com/bizsupportc/teamtrack-backend-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
)

type TaskServiceImpl struct {
	task.TaskRepository
	now func() time.Time
}

func NewTaskService(repo task.TaskRepository) task.TaskService {
	return &TaskServiceImpl{
		TaskRepository: repo,
		now:            time.Now,
	}
}

func callerFromContext(ctx context.Context) (string, employee.Role, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	role, _ := claims["role"].(string)

	return employeeID, employee.Role(role), nil
}

// Create implements task.TaskService.
func (s *TaskServiceImpl) Create(ctx context.Context, req *task.CreateTaskRequest) (*task.Task, error) {
	callerID, role, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	req.AssignedByID = callerID
	if req.AssignedToID == "" {
		req.AssignedToID = callerID
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Non-elevated callers can only put tasks on their own board.
	if req.AssignedToID != callerID && !role.Elevated() {
		return nil, employee.ErrForbidden
	}

	start, due := req.Dates()
	today := s.today()

	t := &task.Task{
		Title:          req.Title,
		Description:    req.Description,
		AssignedToID:   req.AssignedToID,
		AssignedByID:   &callerID,
		Status:         task.StatusTodo,
		Priority:       task.Priority(req.Priority),
		StartDate:      start,
		DueDate:        due,
		CreatedDate:    today,
		EstimatedHours: req.EstimatedHours,
	}

	if err := s.TaskRepository.Create(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

// Get implements task.TaskService. Fetching a task whose start date has
// arrived materializes the todo to ongoing transition before returning.
func (s *TaskServiceImpl) Get(ctx context.Context, id string) (*task.Task, error) {
	callerID, role, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	t, err := s.TaskRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.AssignedToID != callerID && !role.Elevated() {
		return nil, task.ErrNotTaskOwner
	}

	if err := s.materialize(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

// List implements task.TaskService. Non-elevated callers see only tasks
// assigned to them.
func (s *TaskServiceImpl) List(ctx context.Context, filter task.ListFilter) ([]task.Task, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	callerID, role, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !role.Elevated() {
		filter.AssignedToID = callerID
	}

	tasks, err := s.TaskRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	for i := range tasks {
		if err := s.materialize(ctx, &tasks[i]); err != nil {
			return nil, err
		}
	}

	return tasks, nil
}

// Update implements task.TaskService. Assignees may edit their own tasks,
// elevated roles anyone's.
func (s *TaskServiceImpl) Update(ctx context.Context, req *task.UpdateTaskRequest) (*task.Task, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	callerID, role, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	t, err := s.TaskRepository.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if t.AssignedToID != callerID && !role.Elevated() {
		return nil, task.ErrNotTaskOwner
	}

	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.AssignedToID != nil {
		t.AssignedToID = *req.AssignedToID
		t.AssigneeName = nil
	}
	if req.Priority != nil {
		t.Priority = task.Priority(*req.Priority)
	}
	if req.StartDate != nil {
		start, _ := validator.IsValidDate(*req.StartDate)
		t.StartDate = start
	}
	if req.DueDate != nil {
		due, _ := validator.IsValidDate(*req.DueDate)
		t.DueDate = due
	}
	if req.EstimatedHours != nil {
		t.EstimatedHours = req.EstimatedHours
	}

	if err := s.TaskRepository.Update(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

// UpdateStatus implements task.TaskService. Entering completed stamps
// completed_at; leaving it clears the stamp.
func (s *TaskServiceImpl) UpdateStatus(ctx context.Context, req *task.UpdateStatusRequest) (*task.Task, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	callerID, role, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	t, err := s.TaskRepository.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if t.AssignedToID != callerID && !role.Elevated() {
		return nil, task.ErrNotTaskOwner
	}

	status := task.Status(req.Status)

	var completedAt *time.Time
	switch {
	case status == task.StatusCompleted && t.Status != task.StatusCompleted:
		now := s.now()
		completedAt = &now
	case status == task.StatusCompleted:
		completedAt = t.CompletedAt
	}

	if err := s.TaskRepository.UpdateStatus(ctx, t.ID, status, completedAt); err != nil {
		return nil, err
	}

	t.Status = status
	t.CompletedAt = completedAt

	return t, nil
}

// Delete implements task.TaskService.
func (s *TaskServiceImpl) Delete(ctx context.Context, id string) error {
	_, role, err := callerFromContext(ctx)
	if err != nil {
		return err
	}
	if !role.Elevated() {
		return employee.ErrForbidden
	}

	return s.TaskRepository.Delete(ctx, id)
}

func (s *TaskServiceImpl) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// materialize persists the lazy todo to ongoing transition when the start
// date has arrived. Safe to call repeatedly; the repository update is
// guarded on the stored status.
func (s *TaskServiceImpl) materialize(ctx context.Context, t *task.Task) error {
	effective := t.EffectiveStatus(s.today())
	if effective == t.Status {
		return nil
	}

	if err := s.TaskRepository.MaterializeOngoing(ctx, t.ID); err != nil {
		return err
	}
	t.Status = effective

	return nil
}
