package booking

import (
	"fmt"
	"sort"
	"time"

	"barberbook/models"
)

// Reason codes for an empty available-times result.
const (
	ReasonNoTemplate        = "no_template"
	ReasonNoEntryForWeekday = "no_entry_for_weekday"
)

// AvailableTimesResult carries the bookable starts for one day, plus a reason
// when the emptiness is structural rather than fully-booked.
type AvailableTimesResult struct {
	Times  []string `json:"availableTimes"`
	Reason string   `json:"reason,omitempty"`
}

// AvailableTimes computes the bookable slot starts for an employee on a date.
// A stale read here only risks offering a slot a concurrent writer is taking;
// InitiateBooking remains the authoritative gate.
func (e *Engine) AvailableTimes(employeeID string, date time.Time) (*AvailableTimesResult, error) {
	tmpl, err := e.Availabilities.GetByEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	if tmpl == nil {
		return &AvailableTimesResult{Times: []string{}, Reason: ReasonNoTemplate}, nil
	}

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	entry := tmpl.DayFor(day.Weekday())
	if entry == nil {
		return &AvailableTimesResult{Times: []string{}, Reason: ReasonNoEntryForWeekday}, nil
	}

	appts, err := e.Appointments.ListOccupyingInWindow(employeeID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	times, err := GenerateSlots(day, entry, OccupiedIntervals(appts), e.now(), e.Granularity)
	if err != nil {
		return nil, err
	}
	return &AvailableTimesResult{Times: times}, nil
}

// ReplaceTemplate validates and saves an employee's full weekly schedule.
// Intervals on a day must be well-formed and non-overlapping.
func (e *Engine) ReplaceTemplate(establishmentID, employeeID string, days []models.AvailabilityDay) (*models.Availability, error) {
	emp, err := e.Employees.GetByID(employeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil || emp.EstablishmentID != establishmentID {
		return nil, NewInvalidReference("employee not found or does not belong to your establishment")
	}

	for _, d := range days {
		if d.DayOfWeek < 0 || d.DayOfWeek > 6 {
			return nil, fmt.Errorf("invalid day of week %d", d.DayOfWeek)
		}
		if err := validateIntervals(d.Intervals); err != nil {
			return nil, fmt.Errorf("day %d: %w", d.DayOfWeek, err)
		}
	}

	return e.Availabilities.Replace(employeeID, days)
}

// Template returns the stored weekly schedule, nil when not configured.
func (e *Engine) Template(employeeID string) (*models.Availability, error) {
	return e.Availabilities.GetByEmployee(employeeID)
}

func validateIntervals(intervals []models.AvailabilityInterval) error {
	type span struct{ start, end int }
	spans := make([]span, 0, len(intervals))

	for _, iv := range intervals {
		start, err := ParseClock(iv.Start)
		if err != nil {
			return err
		}
		end, err := ParseClock(iv.End)
		if err != nil {
			return err
		}
		if end <= start {
			return fmt.Errorf("interval %s-%s ends before it starts", iv.Start, iv.End)
		}
		spans = append(spans, span{start, end})
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
	for i := 1; i < len(spans); i++ {
		if spans[i].start < spans[i-1].end {
			return fmt.Errorf("intervals overlap")
		}
	}
	return nil
}
