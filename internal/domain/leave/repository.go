package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	Create(ctx context.Context, lr *LeaveRequest) error
	GetByID(ctx context.Context, id string) (*LeaveRequest, error)
	List(ctx context.Context, filter ListFilter) ([]LeaveRequest, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	// HasApprovedOverlap reports whether the employee already holds an
	// approved request sharing at least one day with [start, end].
	HasApprovedOverlap(ctx context.Context, employeeID string, start, end time.Time) (bool, error)
	UpdateStatus(ctx context.Context, id string, status Status, reviewerID string, managerNotes *string) error
	Delete(ctx context.Context, id string) error
	ListApprovedInRange(ctx context.Context, employeeIDs []string, start, end time.Time) ([]LeaveRequest, error)
	DeleteByEmployee(ctx context.Context, employeeID string) error
	// NullifyApprover clears approved_by_id on requests the employee
	// reviewed, keeping the requests themselves intact.
	NullifyApprover(ctx context.Context, employeeID string) error
}

type LeaveService interface {
	Submit(ctx context.Context, req *SubmitLeaveRequest) (*LeaveRequest, error)
	Get(ctx context.Context, id string) (*LeaveRequest, error)
	ListMine(ctx context.Context) ([]LeaveRequest, error)
	List(ctx context.Context, filter ListFilter) ([]LeaveRequest, error)
	Review(ctx context.Context, req *ReviewLeaveRequest) (*LeaveRequest, error)
	Cancel(ctx context.Context, id string) error
}
