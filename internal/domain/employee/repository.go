package employee

import (
	"context"
)

// EmployeeRepository defines data access methods for employee records.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)

	// ListByPod returns employees (role employee) assigned to a POD.
	ListByPod(ctx context.Context, podName string) ([]Employee, error)

	Update(ctx context.Context, emp Employee) error
	UpdateRole(ctx context.Context, id string, role Role) error
	UpdatePod(ctx context.Context, id string, podName string) error

	// Delete removes the employee row only; the service is responsible for
	// cascading owned records inside a transaction first.
	Delete(ctx context.Context, id string) error

	CountByRole(ctx context.Context, role Role) (int64, error)
	CountByPod(ctx context.Context, podName string) (int64, error)
}

// EmployeeService defines business logic for employee management.
type EmployeeService interface {
	List(ctx context.Context) ([]EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	UpdateRole(ctx context.Context, req UpdateRoleRequest) (EmployeeResponse, error)
	UpdatePod(ctx context.Context, req UpdatePodRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}
