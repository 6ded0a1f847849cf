package leave

import "errors"

var (
	ErrLeaveNotFound         = errors.New("leave request not found")
	ErrOverlappingLeave      = errors.New("an approved leave already covers part of this period")
	ErrLeaveAlreadyProcessed = errors.New("leave request has already been reviewed")
	ErrNotRequestOwner       = errors.New("leave request belongs to another employee")
	ErrCancelProcessed       = errors.New("only pending leave requests can be cancelled")
)
