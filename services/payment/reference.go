package payment

import (
	"fmt"
	"regexp"

	"barberbook/models"
)

// ReferenceKind discriminates what an external reference points at.
type ReferenceKind int

const (
	RefAppointment ReferenceKind = iota
	RefPlan
)

// Reference is a parsed external reference carried through the gateway and
// echoed back on notifications.
type Reference struct {
	Kind          ReferenceKind
	AppointmentID string
	PlanType      string
	UserID        string
}

var (
	appointmentRefPattern = regexp.MustCompile(`^[0-9a-f]{24}$`)
	planRefPattern        = regexp.MustCompile(`^plano_(mensal|anual)_user_(.+)$`)
)

// ErrUnrecognizedReference marks a reference that matches neither scheme.
// Reconciliation logs and acknowledges these instead of retrying.
type ErrUnrecognizedReference struct {
	Raw string
}

func (e *ErrUnrecognizedReference) Error() string {
	return fmt.Sprintf("unrecognized external reference %q", e.Raw)
}

// AppointmentReference mints the external reference for an appointment
// checkout. The raw object id hex is the reference.
func AppointmentReference(appointmentID string) string {
	return appointmentID
}

// PlanReference mints the external reference for a subscription checkout.
func PlanReference(planType, userID string) string {
	return fmt.Sprintf("plano_%s_user_%s", planType, userID)
}

// ParseReference decodes an external reference back into what it points at.
func ParseReference(raw string) (*Reference, error) {
	if m := planRefPattern.FindStringSubmatch(raw); m != nil {
		return &Reference{Kind: RefPlan, PlanType: m[1], UserID: m[2]}, nil
	}
	if appointmentRefPattern.MatchString(raw) {
		return &Reference{Kind: RefAppointment, AppointmentID: raw}, nil
	}
	return nil, &ErrUnrecognizedReference{Raw: raw}
}

// PlanTypeValid reports whether the parsed plan type is one we sell.
func PlanTypeValid(planType string) bool {
	return planType == models.PlanMonthly || planType == models.PlanAnnual
}
