package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmailExists      = errors.New("email already registered")
	ErrInvalidRole      = errors.New("invalid role: must be employee, manager, or admin")
	ErrSelfDeletion     = errors.New("you cannot delete your own account")
	ErrForbidden        = errors.New("you can only access your own resources")
)
