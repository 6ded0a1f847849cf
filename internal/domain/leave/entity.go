package leave

import "time"

type LeaveType string

const (
	TypeVacation LeaveType = "vacation"
	TypeSick     LeaveType = "sick"
	TypePersonal LeaveType = "personal"
	TypeOther    LeaveType = "other"
)

func ValidLeaveType(t LeaveType) bool {
	switch t {
	case TypeVacation, TypeSick, TypePersonal, TypeOther:
		return true
	}
	return false
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type LeaveRequest struct {
	ID           string
	EmployeeID   string
	Type         LeaveType
	StartDate    time.Time
	EndDate      time.Time
	Reason       string
	BackupSpoke  *string
	Status       Status
	ManagerNotes *string
	ApprovedByID *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined for list views, not persisted on the request row.
	EmployeeName *string
}

// DayCount is the inclusive number of calendar days the request spans.
// A single-day request counts as 1.
func (lr *LeaveRequest) DayCount() int {
	return DayCount(lr.StartDate, lr.EndDate)
}

func DayCount(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours()/24) + 1
}

// Overlaps reports whether the two closed date intervals share at least
// one day. Touching endpoints count as overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}
