package timecard

import (
	"iter"
	"time"
)

// DayLabel classifies one calendar day of an employee's attendance.
type DayLabel string

const (
	DayWeekend       DayLabel = "weekend"
	DayPresentOffice DayLabel = "present_office"
	DayPresentHome   DayLabel = "present_home"
	DayAbsent        DayLabel = "absent"
)

// DayLabelFor classifies a single day given the employee's timecard for that
// day, or nil when none exists. A recorded day with no location renders as
// Office; that mirrors how the calendar has always displayed unspecified
// locations and is kept as a documented default.
func DayLabelFor(day time.Time, tc *TimeCard) DayLabel {
	if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return DayWeekend
	}
	if tc == nil {
		return DayAbsent
	}
	if tc.Location != nil && *tc.Location == LocationHome {
		return DayPresentHome
	}
	return DayPresentOffice
}

// ClassifyRange yields one (day, label) pair per calendar day in
// [start, end], matching records against their WorkDate. The sequence is
// finite and recomputed per call; nothing is cached. Returns ErrInvalidRange
// when start is after end.
func ClassifyRange(start, end time.Time, records []TimeCard) (iter.Seq2[time.Time, DayLabel], error) {
	start = WorkDateOf(start)
	end = WorkDateOf(end)
	if start.After(end) {
		return nil, ErrInvalidRange
	}

	byDay := make(map[string]*TimeCard, len(records))
	for i := range records {
		byDay[records[i].WorkDate.Format("2006-01-02")] = &records[i]
	}

	return func(yield func(time.Time, DayLabel) bool) {
		for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
			tc := byDay[day.Format("2006-01-02")]
			if !yield(day, DayLabelFor(day, tc)) {
				return
			}
		}
	}, nil
}

// DayClassification is a materialized classifier cell.
type DayClassification struct {
	Date  time.Time
	Label DayLabel
}

// CollectRange materializes ClassifyRange for callers that want a slice.
func CollectRange(start, end time.Time, records []TimeCard) ([]DayClassification, error) {
	seq, err := ClassifyRange(start, end, records)
	if err != nil {
		return nil, err
	}
	var out []DayClassification
	for day, label := range seq {
		out = append(out, DayClassification{Date: day, Label: label})
	}
	return out, nil
}
