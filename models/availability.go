package models

import "time"

// AvailabilityInterval is one open window on a weekday, wall-clock "HH:MM".
type AvailabilityInterval struct {
	Start string `bson:"start" json:"start" binding:"required"`
	End   string `bson:"end" json:"end" binding:"required"`
}

// AvailabilityDay holds the open intervals for one day of week (0 = Sunday).
type AvailabilityDay struct {
	DayOfWeek int                    `bson:"dayOfWeek" json:"dayOfWeek"`
	Intervals []AvailabilityInterval `bson:"intervals" json:"intervals"`
}

// Availability is an employee's recurring weekly schedule. One document per
// employee; saves replace the whole template.
type Availability struct {
	EmployeeID string            `bson:"employeeId" json:"employeeId"`
	Days       []AvailabilityDay `bson:"days" json:"days"`
	UpdatedAt  time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// DayFor returns the entry for the given weekday, or nil when the employee has
// no availability that day.
func (a *Availability) DayFor(dow time.Weekday) *AvailabilityDay {
	for i := range a.Days {
		if a.Days[i].DayOfWeek == int(dow) {
			return &a.Days[i]
		}
	}
	return nil
}
