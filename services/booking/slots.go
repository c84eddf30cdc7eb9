package booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"barberbook/models"
)

// ParseClock converts a wall-clock "HH:MM" string to minutes from midnight.
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return h*60 + m, nil
}

// clockAt anchors a minutes-from-midnight offset onto the given calendar day.
func clockAt(day time.Time, minutes int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 0, minutes, 0, 0, day.Location())
}

// GenerateSlots computes the bookable start times for one calendar day.
//
// For every open interval of the weekday entry a cursor sweeps from the
// interval start in granularity steps; a candidate is emitted unless the slot
// would overlap an occupied interval. Slots whose end would pass the interval
// end are never emitted. When day is today the cursor starts no earlier than
// now, rounded up to the next granularity multiple, so past times are never
// offered. Output is ascending "HH:MM"; an empty weekday entry yields an
// empty (non-nil-safe) result, not an error.
func GenerateSlots(day time.Time, entry *models.AvailabilityDay, occupied []Interval, now time.Time, granularity time.Duration) ([]string, error) {
	if entry == nil {
		return []string{}, nil
	}

	var slots []string
	for _, iv := range entry.Intervals {
		startMin, err := ParseClock(iv.Start)
		if err != nil {
			return nil, err
		}
		endMin, err := ParseClock(iv.End)
		if err != nil {
			return nil, err
		}

		cursor := clockAt(day, startMin)
		intervalEnd := clockAt(day, endMin)

		// Never offer a slot in the past: clamp to now, then round up
		// to the next granularity boundary.
		if cursor.Before(now) {
			cursor = now.Truncate(time.Minute)
			if rem := time.Duration(cursor.Minute())*time.Minute % granularity; rem != 0 {
				cursor = cursor.Add(granularity - rem)
			}
		}

		for !cursor.Add(granularity).After(intervalEnd) {
			if !Overlaps(cursor, cursor.Add(granularity), occupied) {
				slots = append(slots, cursor.Format("15:04"))
			}
			cursor = cursor.Add(granularity)
		}
	}

	if slots == nil {
		slots = []string{}
	}
	return slots, nil
}
