package employee

import (
	"context"
	"fmt"

	"github.com/bizsupportc/teamtrack-backend-go/internal/domain/employee"
	"github.com/bizsupportc/teamtrack-backend-go/internal/domain/leave"
	"github.com/bizsupportc/teamtrack-backend-go/internal/domain/task"
	"github.com/bizsupportc/teamtrack-backend-go/internal/domain/timecard"
	"github.com/bizsupportc/teamtrack-backend-go/internal/pkg/database"
	"github.com/bizsupportc/teamtrack-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	timeCardRepo timecard.TimeCardRepository
	leaveRepo    leave.LeaveRepository
	taskRepo     task.TaskRepository
	runInTx      func(ctx context.Context, db *database.DB, fn func(context.Context) error) error
}

func NewEmployeeService(
	db *database.DB,
	repo employee.EmployeeRepository,
	timeCardRepo timecard.TimeCardRepository,
	leaveRepo leave.LeaveRepository,
	taskRepo task.TaskRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: repo,
		timeCardRepo:       timeCardRepo,
		leaveRepo:          leaveRepo,
		taskRepo:           taskRepo,
		runInTx:            postgresql.WithTransaction,
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

// List implements employee.EmployeeService. Manager or admin.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	_, role, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !role.Elevated() {
		return nil, employee.ErrForbidden
	}

	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		out = append(out, employee.ToResponse(emp))
	}

	return out, nil
}

// Get implements employee.EmployeeService. Own profile, or any profile
// for elevated callers.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	callerID, role, err := callerFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if id != callerID && !role.Elevated() {
		return employee.EmployeeResponse{}, employee.ErrForbidden
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(emp), nil
}

// Update implements employee.EmployeeService. Fields outside the caller's
// role whitelist are dropped; non-elevated callers can only touch their
// own profile.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	callerID, role, err := callerFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if req.ID != callerID && !role.Elevated() {
		return employee.EmployeeResponse{}, employee.ErrForbidden
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FirstName != nil && employee.CanUpdateField(role, "firstName") {
		emp.FirstName = *req.FirstName
	}
	if req.LastName != nil && employee.CanUpdateField(role, "lastName") {
		emp.LastName = *req.LastName
	}
	if req.Email != nil && employee.CanUpdateField(role, "email") {
		emp.Email = *req.Email
	}
	if req.PodName != nil && employee.CanUpdateField(role, "podName") {
		emp.PodName = req.PodName
	}
	if req.Position != nil && employee.CanUpdateField(role, "position") {
		emp.Position = *req.Position
	}
	if req.Phone != nil && employee.CanUpdateField(role, "phone") {
		emp.Phone = req.Phone
	}
	if req.Address != nil && employee.CanUpdateField(role, "address") {
		emp.Address = req.Address
	}

	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Role != nil && employee.CanUpdateField(role, "role") {
		newRole := employee.Role(*req.Role)
		if err := s.EmployeeRepository.UpdateRole(ctx, emp.ID, newRole); err != nil {
			return employee.EmployeeResponse{}, err
		}
		emp.Role = newRole
	}

	return employee.ToResponse(emp), nil
}

// UpdateRole implements employee.EmployeeService. Admin only.
func (s *EmployeeServiceImpl) UpdateRole(ctx context.Context, req employee.UpdateRoleRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	_, role, err := callerFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if role != employee.RoleAdmin {
		return employee.EmployeeResponse{}, employee.ErrForbidden
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	newRole := employee.Role(req.Role)
	if err := s.EmployeeRepository.UpdateRole(ctx, emp.ID, newRole); err != nil {
		return employee.EmployeeResponse{}, err
	}
	emp.Role = newRole

	return employee.ToResponse(emp), nil
}

// UpdatePod implements employee.EmployeeService. Admin only.
func (s *EmployeeServiceImpl) UpdatePod(ctx context.Context, req employee.UpdatePodRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	_, role, err := callerFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if role != employee.RoleAdmin {
		return employee.EmployeeResponse{}, employee.ErrForbidden
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.EmployeeRepository.UpdatePod(ctx, emp.ID, req.PodName); err != nil {
		return employee.EmployeeResponse{}, err
	}
	emp.PodName = &req.PodName

	return employee.ToResponse(emp), nil
}

// Delete implements employee.EmployeeService. Owned time cards, leave
// requests and assigned tasks go with the employee; records where the
// employee was only an approver or an assigner keep the record and lose
// the back-reference. The whole cascade runs in one transaction.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	callerID, role, err := callerFromContext(ctx)
	if err != nil {
		return err
	}
	if role != employee.RoleAdmin {
		return employee.ErrForbidden
	}
	if callerID == id {
		return employee.ErrSelfDeletion
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, id); err != nil {
		return err
	}

	return s.runInTx(ctx, s.db, func(txCtx context.Context) error {
		if err := s.timeCardRepo.DeleteByEmployee(txCtx, id); err != nil {
			return err
		}
		if err := s.leaveRepo.DeleteByEmployee(txCtx, id); err != nil {
			return err
		}
		if err := s.leaveRepo.NullifyApprover(txCtx, id); err != nil {
			return err
		}
		if err := s.taskRepo.DeleteByAssignee(txCtx, id); err != nil {
			return err
		}
		if err := s.taskRepo.NullifyAssigner(txCtx, id); err != nil {
			return err
		}
		return s.EmployeeRepository.Delete(txCtx, id)
	})
}
