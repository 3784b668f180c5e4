package model

import "time"

// CreateDestinationDTO is the request body for adding a destination to a trip.
type CreateDestinationDTO struct {
	City          string     `json:"city" validate:"required"`
	Country       string     `json:"country" validate:"required"`
	ArrivalDate   *time.Time `json:"arrivalDate"`
	DepartureDate *time.Time `json:"departureDate"`
	Latitude      *float64   `json:"latitude"`
	Longitude     *float64   `json:"longitude"`
	TripID        uint       `json:"tripId" validate:"required"`
}

// UpdateDestinationDTO is the request body for updating a destination. Nil
// fields are left untouched.
type UpdateDestinationDTO struct {
	City          *string    `json:"city"`
	Country       *string    `json:"country"`
	ArrivalDate   *time.Time `json:"arrivalDate"`
	DepartureDate *time.Time `json:"departureDate"`
	Latitude      *float64   `json:"latitude"`
	Longitude     *float64   `json:"longitude"`
}
