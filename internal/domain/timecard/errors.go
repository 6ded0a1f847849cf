package timecard

import "errors"

// Timecard domain errors
var (
	// Clock errors
	ErrAlreadyClockedIn  = errors.New("already clocked in today")
	ErrNoActiveSession   = errors.New("no clock-in record found for today")
	ErrAlreadyClockedOut = errors.New("already clocked out")

	// General errors
	ErrTimecardNotFound = errors.New("timecard not found")
	ErrAlreadyReviewed  = errors.New("timecard has already been approved or rejected")
	ErrInvalidRange     = errors.New("start date must not be after end date")
)
