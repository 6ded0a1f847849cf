package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bizsupportc/teamtrack-backend-go/internal/domain/task"
	"github.com/bizsupportc/teamtrack-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type taskRepository struct {
	db *database.DB
}

// Create implements task.TaskRepository.
func (r *taskRepository) Create(ctx context.Context, t *task.Task) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tasks (title, description, assigned_to_id, assigned_by_id, status,
						   priority, start_date, due_date, created_date, estimated_hours)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		t.Title,
		t.Description,
		t.AssignedToID,
		t.AssignedByID,
		t.Status,
		t.Priority,
		t.StartDate,
		t.DueDate,
		t.CreatedDate,
		t.EstimatedHours,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

// GetByID implements task.TaskRepository.
func (r *taskRepository) GetByID(ctx context.Context, id string) (*task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.title, t.description, t.assigned_to_id, t.assigned_by_id, t.status,
			   t.priority, t.start_date, t.due_date, t.created_date, t.estimated_hours,
			   t.completed_at, t.created_at, t.updated_at,
			   e.first_name || ' ' || e.last_name AS assignee_name
		FROM tasks t
		INNER JOIN employees e ON t.assigned_to_id = e.id
		WHERE t.id = $1
	`

	var tk task.Task
	err := q.QueryRow(ctx, query, id).Scan(
		&tk.ID, &tk.Title, &tk.Description, &tk.AssignedToID, &tk.AssignedByID, &tk.Status,
		&tk.Priority, &tk.StartDate, &tk.DueDate, &tk.CreatedDate, &tk.EstimatedHours,
		&tk.CompletedAt, &tk.CreatedAt, &tk.UpdatedAt, &tk.AssigneeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, task.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return &tk, nil
}

// List implements task.TaskRepository.
func (r *taskRepository) List(ctx context.Context, filter task.ListFilter) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.title, t.description, t.assigned_to_id, t.assigned_by_id, t.status,
			   t.priority, t.start_date, t.due_date, t.created_date, t.estimated_hours,
			   t.completed_at, t.created_at, t.updated_at,
			   e.first_name || ' ' || e.last_name AS assignee_name
		FROM tasks t
		INNER JOIN employees e ON t.assigned_to_id = e.id
		WHERE ($1 = '' OR t.assigned_to_id::text = $1)
		  AND ($2 = '' OR t.status = $2)
		  AND ($3 = '' OR t.priority = $3)
		  AND (NULLIF($4, '') IS NULL OR t.created_date >= NULLIF($4, '')::date)
		  AND (NULLIF($5, '') IS NULL OR t.created_date <= NULLIF($5, '')::date)
		ORDER BY t.due_date ASC, t.priority DESC
	`

	rows, err := q.Query(ctx, query, filter.AssignedToID, filter.Status,
		filter.Priority, filter.CreatedFrom, filter.CreatedTo)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		var tk task.Task
		err := rows.Scan(
			&tk.ID, &tk.Title, &tk.Description, &tk.AssignedToID, &tk.AssignedByID, &tk.Status,
			&tk.Priority, &tk.StartDate, &tk.DueDate, &tk.CreatedDate, &tk.EstimatedHours,
			&tk.CompletedAt, &tk.CreatedAt, &tk.UpdatedAt, &tk.AssigneeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, tk)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read task rows: %w", err)
	}

	return tasks, nil
}

// Update implements task.TaskRepository.
func (r *taskRepository) Update(ctx context.Context, t *task.Task) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tasks
		SET title = $2, description = $3, assigned_to_id = $4, priority = $5,
			start_date = $6, due_date = $7, estimated_hours = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		t.ID, t.Title, t.Description, t.AssignedToID, t.Priority,
		t.StartDate, t.DueDate, t.EstimatedHours,
	).Scan(&t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.ErrTaskNotFound
		}
		return fmt.Errorf("failed to update task: %w", err)
	}

	return nil
}

// MaterializeOngoing implements task.TaskRepository. The status guard in
// the WHERE clause makes the lazy transition idempotent: a task that is
// no longer todo is left untouched, completed_at included.
func (r *taskRepository) MaterializeOngoing(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tasks
		SET status = 'ongoing', updated_at = NOW()
		WHERE id = $1 AND status = 'todo'
	`

	if _, err := q.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to materialize ongoing status: %w", err)
	}

	return nil
}

// UpdateStatus implements task.TaskRepository.
func (r *taskRepository) UpdateStatus(ctx context.Context, id string, status task.Status, completedAt *time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tasks
		SET status = $2, completed_at = $3, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id, status, completedAt)
	if err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}

	return nil
}

// Delete implements task.TaskRepository.
func (r *taskRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM tasks WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}

	return nil
}

// CountOpenByAssignee implements task.TaskRepository.
func (r *taskRepository) CountOpenByAssignee(ctx context.Context, employeeID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM tasks
		WHERE assigned_to_id = $1 AND status != 'completed'
	`

	var count int
	if err := q.QueryRow(ctx, query, employeeID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count open tasks: %w", err)
	}

	return count, nil
}

// DeleteByAssignee implements task.TaskRepository.
func (r *taskRepository) DeleteByAssignee(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM tasks WHERE assigned_to_id = $1`

	if _, err := q.Exec(ctx, query, employeeID); err != nil {
		return fmt.Errorf("failed to delete tasks for assignee: %w", err)
	}

	return nil
}

// NullifyAssigner implements task.TaskRepository.
func (r *taskRepository) NullifyAssigner(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE tasks SET assigned_by_id = NULL WHERE assigned_by_id = $1`

	if _, err := q.Exec(ctx, query, employeeID); err != nil {
		return fmt.Errorf("failed to clear assigner reference: %w", err)
	}

	return nil
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepository{db: db}
}
