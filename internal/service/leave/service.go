package leave

import (
	"context"
	"fmt"

	"github.com/bizsupportc/teamtrack-backend-go/internal/domain/employee"
	"github.com/bizsupportc/teamtrack-backend-go/internal/domain/leave"
	"github.com/bizsupportc/teamtrack-backend-go/internal/pkg/database"
	"github.com/bizsupportc/teamtrack-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.LeaveRepository
	runInTx func(ctx context.Context, db *database.DB, fn func(context.Context) error) error
}

func NewLeaveService(db *database.DB, repo leave.LeaveRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		db:              db,
		LeaveRepository: repo,
		runInTx:         postgresql.WithTransaction,
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

// Submit implements leave.LeaveService. The overlap check and the insert
// run inside one transaction so a concurrent approval cannot slip an
// overlapping request past the check.
func (s *LeaveServiceImpl) Submit(ctx context.Context, req *leave.SubmitLeaveRequest) (*leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	employeeID, _, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	start, end := req.Dates()

	lr := &leave.LeaveRequest{
		EmployeeID:  employeeID,
		Type:        leave.LeaveType(req.Type),
		StartDate:   start,
		EndDate:     end,
		Reason:      req.Reason,
		BackupSpoke: req.BackupSpoke,
		Status:      leave.StatusPending,
	}

	err = s.runInTx(ctx, s.db, func(txCtx context.Context) error {
		overlaps, err := s.LeaveRepository.HasApprovedOverlap(txCtx, employeeID, start, end)
		if err != nil {
			return err
		}
		if overlaps {
			return leave.ErrOverlappingLeave
		}
		return s.LeaveRepository.Create(txCtx, lr)
	})
	if err != nil {
		return nil, err
	}

	return lr, nil
}

// Get implements leave.LeaveService. Employees can only read their own
// requests; elevated roles read any.
func (s *LeaveServiceImpl) Get(ctx context.Context, id string) (*leave.LeaveRequest, error) {
	employeeID, role, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	lr, err := s.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !role.Elevated() && lr.EmployeeID != employeeID {
		return nil, leave.ErrNotRequestOwner
	}

	return lr, nil
}

// ListMine implements leave.LeaveService.
func (s *LeaveServiceImpl) ListMine(ctx context.Context) ([]leave.LeaveRequest, error) {
	employeeID, _, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return s.LeaveRepository.ListByEmployee(ctx, employeeID)
}

// List implements leave.LeaveService. Non-elevated callers are scoped to
// their own requests regardless of the filter.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveRequest, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	employeeID, role, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if !role.Elevated() {
		filter.EmployeeID = employeeID
	}

	return s.LeaveRepository.List(ctx, filter)
}

// Review implements leave.LeaveService. Only pending requests accept a
// decision; a second review fails instead of silently rewriting the first.
func (s *LeaveServiceImpl) Review(ctx context.Context, req *leave.ReviewLeaveRequest) (*leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	reviewerID, role, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !role.Elevated() {
		return nil, employee.ErrForbidden
	}
	req.ReviewerID = reviewerID

	lr, err := s.LeaveRepository.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if lr.Status != leave.StatusPending {
		return nil, leave.ErrLeaveAlreadyProcessed
	}

	var notes *string
	if req.ManagerNotes != "" {
		notes = &req.ManagerNotes
	}

	status := leave.Status(req.Status)
	if err := s.LeaveRepository.UpdateStatus(ctx, lr.ID, status, reviewerID, notes); err != nil {
		return nil, err
	}

	lr.Status = status
	lr.ApprovedByID = &reviewerID
	lr.ManagerNotes = notes

	return lr, nil
}

// Cancel implements leave.LeaveService. Owners may withdraw a request
// while it is still pending.
func (s *LeaveServiceImpl) Cancel(ctx context.Context, id string) error {
	employeeID, role, err := callerFromContext(ctx)
	if err != nil {
		return err
	}

	lr, err := s.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if lr.EmployeeID != employeeID && !role.Elevated() {
		return leave.ErrNotRequestOwner
	}
	if lr.Status != leave.StatusPending {
		return leave.ErrCancelProcessed
	}

	return s.LeaveRepository.Delete(ctx, id)
}
