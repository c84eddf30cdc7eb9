package models

import "time"

// Appointment statuses. pending_payment and confirmed occupy their time
// range; cancelled frees it; completed is historical.
const (
	StatusPendingPayment = "pending_payment"
	StatusConfirmed      = "confirmed"
	StatusCompleted      = "completed"
	StatusCancelled      = "cancelled"
)

// ValidStatus reports whether s is a member of the closed status enum.
func ValidStatus(s string) bool {
	switch s {
	case StatusPendingPayment, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Occupying reports whether an appointment in status s blocks its time range
// from being offered again.
func Occupying(s string) bool {
	return s == StatusPendingPayment || s == StatusConfirmed
}

// Appointment is a reservation of an employee's time. TotalAmount and
// TotalDurationMin are snapshotted at creation from the referenced services
// and never recomputed, so historical records stay stable when the catalog
// changes.
type Appointment struct {
	ID               string    `bson:"id" json:"id"`
	EstablishmentID  string    `bson:"establishmentId" json:"establishmentId"`
	EmployeeID       string    `bson:"employeeId" json:"employeeId"`
	ServiceIDs       []string  `bson:"serviceIds" json:"serviceIds"`
	ClientName       string    `bson:"clientName" json:"clientName"`
	ClientPhone      string    `bson:"clientPhone" json:"clientPhone"`
	StartTime        time.Time `bson:"appointmentDate" json:"appointmentDate"`
	TotalDurationMin int       `bson:"totalDuration" json:"totalDuration"`
	TotalAmount      float64   `bson:"totalAmount" json:"totalAmount"`
	PaymentID        string    `bson:"paymentId,omitempty" json:"paymentId,omitempty"`
	Status           string    `bson:"status" json:"status"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt" json:"updatedAt"`
}

// EndTime is the exclusive end of the occupied range.
func (a *Appointment) EndTime() time.Time {
	return a.StartTime.Add(time.Duration(a.TotalDurationMin) * time.Minute)
}
