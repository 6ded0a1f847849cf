package response

import (
	"errors"
	"net/http"

	"github.com/bizsupportc/teamtrack-backend-go/internal/domain/auth"
	"github.com/bizsupportc/teamtrack-backend-go/internal/domain/employee"
	"github.com/bizsupportc/teamtrack-backend-go/internal/domain/leave"
	"github.com/bizsupportc/teamtrack-backend-go/internal/domain/pod"
	"github.com/bizsupportc/teamtrack-backend-go/internal/domain/task"
	"github.com/bizsupportc/teamtrack-backend-go/internal/domain/timecard"
	"github.com/bizsupportc/teamtrack-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. State conflicts
// (double clock-in, overlapping leave, re-review) respond 400: the client
// request is wrong for the current state, and the frontend surfaces them
// as form errors.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrEmailDomainNotAllowed):
		Forbidden(w, err.Error())

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		BadRequest(w, "Email already registered", nil)
	case errors.Is(err, employee.ErrSelfDeletion):
		BadRequest(w, "You cannot delete your own account", nil)
	case errors.Is(err, employee.ErrForbidden):
		Forbidden(w, "You do not have access to this resource")

	// Timecard domain errors
	case errors.Is(err, timecard.ErrAlreadyClockedIn):
		BadRequest(w, "Already clocked in today", nil)
	case errors.Is(err, timecard.ErrNoActiveSession):
		BadRequest(w, "No active session to clock out from", nil)
	case errors.Is(err, timecard.ErrAlreadyClockedOut):
		BadRequest(w, "Already clocked out today", nil)
	case errors.Is(err, timecard.ErrAlreadyReviewed):
		BadRequest(w, "Timecard has already been reviewed", nil)
	case errors.Is(err, timecard.ErrTimecardNotFound):
		NotFound(w, "Timecard not found")
	case errors.Is(err, timecard.ErrInvalidRange):
		BadRequest(w, "Start date must not be after end date", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrOverlappingLeave):
		BadRequest(w, "An approved leave already covers part of this period", nil)
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		BadRequest(w, "Leave request has already been reviewed", nil)
	case errors.Is(err, leave.ErrCancelProcessed):
		BadRequest(w, "Only pending leave requests can be cancelled", nil)
	case errors.Is(err, leave.ErrNotRequestOwner):
		Forbidden(w, "Leave request belongs to another employee")

	// Task domain errors
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")
	case errors.Is(err, task.ErrNotTaskOwner):
		Forbidden(w, "Task is assigned to another employee")
	case errors.Is(err, task.ErrInvalidStatus),
		errors.Is(err, task.ErrInvalidTransition):
		BadRequest(w, err.Error(), nil)

	// Pod domain errors
	case errors.Is(err, pod.ErrPodNotFound):
		NotFound(w, "Pod not found")
	case errors.Is(err, pod.ErrPodExists):
		BadRequest(w, "A pod with this name already exists", nil)
	case errors.Is(err, pod.ErrPodInUse):
		BadRequest(w, "Pod still has members assigned", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
