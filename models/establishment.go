package models

import "time"

// Establishment is a business profile that exposes staff and services for
// public booking.
type Establishment struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Address     string    `bson:"address" json:"address"`
	Phone       string    `bson:"phone" json:"phone"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	PublicLink  string    `bson:"publicLink" json:"publicLink"`
	OwnerID     string    `bson:"ownerId" json:"ownerId"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Employee is a staff member whose time can be booked.
type Employee struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Email           string    `bson:"email,omitempty" json:"email,omitempty"`
	Phone           string    `bson:"phone,omitempty" json:"phone,omitempty"`
	EstablishmentID string    `bson:"establishmentId" json:"establishmentId"`
	UserID          string    `bson:"userId,omitempty" json:"userId,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Service is a bookable offering with a price and duration in minutes.
type Service struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Price           float64   `bson:"price" json:"price"`
	DurationMin     int       `bson:"duration" json:"duration"`
	EstablishmentID string    `bson:"establishmentId" json:"establishmentId"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}
