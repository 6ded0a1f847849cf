package employee

import (
	"time"
)

type Employee struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	EmployeeCode *string
	PasswordHash string
	Role         Role
	PodName      *string
	Position     string
	Phone        *string
	Address      *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName joins first and last name for display.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

// ValidRole reports whether s names a known role.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleEmployee, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// Elevated reports whether the role carries manager-level read access.
func (r Role) Elevated() bool {
	return r == RoleManager || r == RoleAdmin
}
