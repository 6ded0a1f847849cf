package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDayCount(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"single day", date(2025, 4, 7), date(2025, 4, 7), 1},
		{"monday to wednesday", date(2025, 4, 7), date(2025, 4, 9), 3},
		{"full week", date(2025, 4, 7), date(2025, 4, 13), 7},
		{"across month boundary", date(2025, 4, 29), date(2025, 5, 2), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DayCount(tt.start, tt.end))
		})
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		aStart time.Time
		aEnd   time.Time
		bStart time.Time
		bEnd   time.Time
		want   bool
	}{
		{"disjoint before", date(2025, 4, 1), date(2025, 4, 3), date(2025, 4, 4), date(2025, 4, 6), false},
		{"disjoint after", date(2025, 4, 10), date(2025, 4, 12), date(2025, 4, 4), date(2025, 4, 6), false},
		{"shared endpoint", date(2025, 4, 1), date(2025, 4, 4), date(2025, 4, 4), date(2025, 4, 6), true},
		{"contained", date(2025, 4, 1), date(2025, 4, 10), date(2025, 4, 4), date(2025, 4, 6), true},
		{"partial", date(2025, 4, 1), date(2025, 4, 5), date(2025, 4, 4), date(2025, 4, 8), true},
		{"identical", date(2025, 4, 4), date(2025, 4, 6), date(2025, 4, 4), date(2025, 4, 6), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// Overlap is symmetric.
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestSubmitLeaveRequestValidate(t *testing.T) {
	valid := SubmitLeaveRequest{
		Type:      "vacation",
		StartDate: "2025-04-07",
		EndDate:   "2025-04-09",
		Reason:    "family trip",
	}
	assert.NoError(t, valid.Validate())

	badType := valid
	badType.Type = "holiday"
	assert.Error(t, badType.Validate())

	reversed := valid
	reversed.StartDate, reversed.EndDate = reversed.EndDate, reversed.StartDate
	assert.Error(t, reversed.Validate())

	noReason := valid
	noReason.Reason = ""
	assert.Error(t, noReason.Validate())
}
