package employee

import (
	"github.com/bizsupportc/teamtrack-backend-go/internal/pkg/validator"
)

type EmployeeResponse struct {
	ID           string  `json:"id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Email        string  `json:"email"`
	EmployeeCode *string `json:"employee_code,omitempty"`
	Role         string  `json:"role"`
	PodName      *string `json:"pod_name"`
	Position     string  `json:"position"`
	Phone        *string `json:"phone,omitempty"`
	Address      *string `json:"address,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

type UpdateEmployeeRequest struct {
	ID        string  `json:"-"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	PodName   *string `json:"pod_name"`
	Position  *string `json:"position"`
	Role      *string `json:"role"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if r.Role != nil && !ValidRole(*r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be employee, manager, or admin",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateRoleRequest struct {
	ID   string `json:"-"`
	Role string `json:"role"`
}

func (r *UpdateRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if !ValidRole(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be employee, manager, or admin",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdatePodRequest struct {
	ID      string `json:"-"`
	PodName string `json:"pod_name"`
}

func (r *UpdatePodRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PodName) {
		errs = append(errs, validator.ValidationError{
			Field:   "pod_name",
			Message: "pod_name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToResponse converts an Employee entity to its API shape.
func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Email:        e.Email,
		EmployeeCode: e.EmployeeCode,
		Role:         string(e.Role),
		PodName:      e.PodName,
		Position:     e.Position,
		Phone:        e.Phone,
		Address:      e.Address,
		CreatedAt:    e.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
