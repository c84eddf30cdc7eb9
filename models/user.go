package models

import "time"

// Account roles.
const (
	RoleEstablishment = "establishment"
	RoleEmployee      = "employee"
)

// Subscription plan cycles.
const (
	PlanMonthly = "mensal"
	PlanAnnual  = "anual"
)

// User represents an account that can sign in: either an establishment owner
// or a staff member linked to one. Plan activation lives on the owner account.
type User struct {
	ID              string     `bson:"id" json:"id"`
	Email           string     `bson:"email" json:"email"`
	PasswordHash    string     `bson:"passwordHash" json:"-"`
	Role            string     `bson:"role" json:"role"`
	EstablishmentID string     `bson:"establishmentId,omitempty" json:"establishmentId,omitempty"`
	PlanActive      bool       `bson:"planActive" json:"planActive"`
	PlanExpiresAt   *time.Time `bson:"planExpiresAt,omitempty" json:"planExpiresAt,omitempty"`
	TokenHash       string     `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt       time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time  `bson:"updatedAt" json:"updatedAt"`
}
