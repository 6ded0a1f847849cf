package timecard

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimeCard is one employee's attendance record for one calendar day. WorkDate
// carries the logical attendance day at midnight; ClockIn/ClockOut are the
// absolute timestamps.
type TimeCard struct {
	ID         string
	EmployeeID string
	WorkDate   time.Time
	ClockIn    time.Time
	ClockOut   *time.Time
	TotalHours decimal.Decimal
	Status     ReviewStatus
	Location   *Location
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName *string
}

type Location string

const (
	LocationHome   Location = "Home"
	LocationOffice Location = "Office"
)

// ValidLocation reports whether s names a known clock-in location.
func ValidLocation(s string) bool {
	switch Location(s) {
	case LocationHome, LocationOffice:
		return true
	}
	return false
}

// ReviewStatus is the approval state of a timecard, independent of whether
// the session is open or closed.
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
)

// TotalHoursBetween computes worked hours for a closed session, rounded
// half-up to 2 decimal places and clamped at zero.
func TotalHoursBetween(clockIn, clockOut time.Time) decimal.Decimal {
	hours := clockOut.Sub(clockIn).Hours()
	if hours < 0 {
		hours = 0
	}
	return decimal.NewFromFloat(hours).Round(2)
}

// WorkDateOf truncates t to its calendar day in t's location.
func WorkDateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
