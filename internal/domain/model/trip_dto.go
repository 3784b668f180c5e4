package model

import "time"

// CreateTripDTO is the request body for creating a trip.
type CreateTripDTO struct {
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
}

// UpdateTripDTO is the request body for updating a trip. Nil fields are left
// untouched.
type UpdateTripDTO struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
}
