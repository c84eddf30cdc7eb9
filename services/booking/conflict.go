package booking

import (
	"time"

	"barberbook/models"
)

// Interval is a half-open occupied range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether the candidate range [candStart, candEnd) overlaps
// any occupied interval. Half-open semantics: back-to-back ranges that merely
// touch do not conflict.
func Overlaps(candStart, candEnd time.Time, occupied []Interval) bool {
	for _, occ := range occupied {
		if candStart.Before(occ.End) && candEnd.After(occ.Start) {
			return true
		}
	}
	return false
}

// OccupiedIntervals projects appointments onto their occupied time ranges.
func OccupiedIntervals(appts []models.Appointment) []Interval {
	intervals := make([]Interval, 0, len(appts))
	for i := range appts {
		intervals = append(intervals, Interval{
			Start: appts[i].StartTime,
			End:   appts[i].EndTime(),
		})
	}
	return intervals
}
