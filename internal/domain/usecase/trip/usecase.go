package trip

import (
	"errors"

	"travel-api/internal/domain/entity"
	"travel-api/internal/domain/model"
)

var (
	// ErrTripNotFound is returned when the trip does not exist.
	ErrTripNotFound = errors.New("trip not found")
	// ErrNotOwner is returned when the trip belongs to another user.
	ErrNotOwner = errors.New("trip does not belong to user")
)

// UseCase manages trips on behalf of their owning user. Every operation
// scoped to a trip verifies ownership before acting.
type UseCase interface {
	GetTrip(userID uint, tripID uint) (*entity.Trip, error)
	ListTrips(userID uint, page int, size int) (*model.Page[entity.Trip], error)
	CreateTrip(userID uint, dto model.CreateTripDTO) (*entity.Trip, error)
	UpdateTrip(userID uint, tripID uint, dto model.UpdateTripDTO) (*entity.Trip, error)
	DeleteTrip(userID uint, tripID uint) error
}
