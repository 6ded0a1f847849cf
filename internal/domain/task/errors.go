package task

import "errors"

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrInvalidStatus     = errors.New("invalid task status")
	ErrInvalidTransition = errors.New("task status transition not allowed")
	ErrNotTaskOwner      = errors.New("task is assigned to another employee")
)
